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

// bitBuffer is a growable ordered sequence of 0/1 bytes, appended to
// MSB-first by appendBits.
type bitBuffer []byte

// appendBits appends the low length bits of value, in MSB-first order.
//
// Panics if length is outside [0, 31] or value doesn't fit in length bits.
func (bb *bitBuffer) appendBits(value int, length int8) {
	if length < 0 || length > 31 || value>>length != 0 {
		panic(newError(ValueOutOfRange, "value %d does not fit in %d bits", value, length))
	}

	for i := length - 1; i >= 0; i-- { // Append data bit by bit.
		*bb = append(*bb, byte(value>>i&1))
	}
}
