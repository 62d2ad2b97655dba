/*
 * Copyright © 2020, G.Ralph Kuntz, MD.
 *
 * Licensed under the Apache License, Version 2.0(the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIC
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package qrcodegen

// GF(2^8) arithmetic under the primitive polynomial x^8+x^4+x^3+x^2+1
// (0x11D), and the Reed-Solomon machinery built on top of it.

// gfMultiply returns the product of x and y in GF(2^8)/0x11D, computed by
// Russian-peasant multiplication.
func gfMultiply(x, y byte) byte {
	z := 0
	for i := 7; i >= 0; i-- {
		z = z<<1 ^ z>>7*0x11D
		z ^= int(y >> i & 1 * x)
	}

	return byte(z)
}

// computeDivisor returns the coefficients (highest-to-lowest power,
// excluding the leading 1) of the generator polynomial
// prod_{i=0..degree-1}(x - α^i), α = 0x02, used as the Reed-Solomon
// divisor for a block carrying degree ECC codewords.
//
// Panics if degree is outside [1, 255].
func computeDivisor(degree int) []byte {
	if degree < 1 || degree > 255 {
		panic(newError(ValueOutOfRange, "RS degree %d out of range [1, 255]", degree))
	}

	// Coefficients are stored highest-to-lowest power, excluding the
	// leading term (always 1). Start at the monomial x^0.
	result := make([]byte, degree)
	result[degree-1] = 1

	root := byte(1)
	for i := 0; i < degree; i++ {
		// Multiply the running product by (x - root).
		for j := 0; j < len(result); j++ {
			result[j] = gfMultiply(result[j], root)
			if j+1 < len(result) {
				result[j] ^= result[j+1]
			}
		}
		root = gfMultiply(root, 0x02)
	}

	return result
}

// computeRemainder returns the len(divisor)-element Reed-Solomon ECC
// codewords for data under the given divisor polynomial, by polynomial
// long division.
func computeRemainder(data, divisor []byte) []byte {
	result := make([]byte, len(divisor))
	for _, b := range data {
		factor := b ^ result[0]
		copy(result[0:], result[1:])
		result[len(result)-1] = 0
		for i := 0; i < len(result); i++ {
			result[i] ^= gfMultiply(divisor[i], factor)
		}
	}

	return result
}
