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

// drawAlignmentPattern draws a 5x5 alignment pattern centered at (x, y).
func (q *QRCode) drawAlignmentPattern(x, y int) {
	for dy := -2; dy <= 2; dy++ {
		for dx := -2; dx <= 2; dx++ {
			q.setFunctionModule(x+dx, y+dy, maxInt(abs(dx), abs(dy)) != 1)
		}
	}
}

// drawCodewords draws the given sequence of interleaved data+ECC
// codewords onto every non-function module, in the standard boustrophedon
// (zig-zag) column-pair scan. Function modules must already be marked.
func (q *QRCode) drawCodewords(data []byte) {
	invariant(len(data) == numRawDataModules[q.Version]/8, "incorrect codeword data length")

	i := 0 // Bit index into data.

	for right := q.Size - 1; right >= 1; right -= 2 {
		if right == 6 { // Skip the vertical timing column.
			right = 5
		}
		for vert := 0; vert < q.Size; vert++ {
			for j := 0; j < 2; j++ {
				x := right - j
				upward := (right+1)&2 == 0

				var y int
				if upward {
					y = q.Size - 1 - vert
				} else {
					y = vert
				}

				if !q.isFunction[y][x] && i < len(data)*8 {
					q.Modules[y][x] = Module(getBit(int(data[i>>3]), 7-(i&7)))
					i++
				}
				// Any remainder bits (0-7) were left 0/light at
				// allocation and stay that way.
			}
		}
	}

	invariant(i == len(data)*8, "did not consume every codeword bit")
}

// drawFinderPattern draws a 9x9 finder pattern, including its border
// separator, centered at (x, y). Cells outside the symbol are skipped.
func (q *QRCode) drawFinderPattern(x, y int) {
	for dy := -4; dy <= 4; dy++ {
		for dx := -4; dx <= 4; dx++ {
			dist := maxInt(abs(dx), abs(dy))
			xx := x + dx
			yy := y + dy
			if 0 <= xx && xx < q.Size && 0 <= yy && yy < q.Size {
				q.setFunctionModule(xx, yy, dist != 2 && dist != 4)
			}
		}
	}
}

// drawFunctionPatterns draws every function pattern (timing, finders,
// alignment, format stub, version) that isn't part of the message data.
func (q *QRCode) drawFunctionPatterns() {
	// Timing patterns.
	for i := 0; i < q.Size; i++ {
		q.setFunctionModule(6, i, i%2 == 0)
		q.setFunctionModule(i, 6, i%2 == 0)
	}

	// Finder patterns at all corners except bottom-right (overwrites some
	// timing modules, which is expected).
	q.drawFinderPattern(3, 3)
	q.drawFinderPattern(q.Size-4, 3)
	q.drawFinderPattern(3, q.Size-4)

	// Alignment patterns, skipping the three finder corners.
	alignPatPos := alignmentPatternPositions[q.Version]
	numAlign := len(alignPatPos)
	for i := 0; i < numAlign; i++ {
		for j := 0; j < numAlign; j++ {
			if !(i == 0 && j == 0 || i == 0 && j == numAlign-1 || i == numAlign-1 && j == 0) {
				q.drawAlignmentPattern(int(alignPatPos[i]), int(alignPatPos[j]))
			}
		}
	}

	// Format bit stub (mask=0; the real value is burned in once the mask
	// is chosen, see handleConstructorMasking) and version information.
	q.drawFormatBits(0)
	q.drawVersion()
}

// drawVersion draws two copies of the 18-bit version information (6 data
// bits + 12-bit BCH remainder under generator 0x1F25), for version >= 7
// only.
func (q *QRCode) drawVersion() {
	if q.Version < 7 {
		return
	}

	rem := int(q.Version)
	for i := 0; i < 12; i++ {
		rem = rem<<1 ^ rem>>11*0x1F25
	}
	bits := int(q.Version)<<12 | rem
	invariant(bits>>18 == 0, "version bits overflow 18 bits")

	for i := 0; i < 18; i++ {
		bit := getBitAsBool(bits, i)
		a := q.Size - 11 + i%3
		b := i / 3
		q.setFunctionModule(a, b, bit)
		q.setFunctionModule(b, a, bit)
	}
}

// getAlignmentPatternPositions returns the ascending list of alignment
// pattern center coordinates (shared by both axes) for the given version.
func getAlignmentPatternPositions(version Version) []byte {
	if version == 1 {
		return []byte{}
	}

	numAlign := int(version)/7 + 2
	var step int
	if version == 32 { // The standard's own special case; the general
		step = 26 // formula already agrees with it for every other version.
	} else {
		step = (int(version)*4 + numAlign*2 + 1) / (numAlign*2 - 2) * 2
	}

	result := make([]byte, numAlign)
	result[0] = 6
	for i, pos := len(result)-1, int(version)*4+17-7; i >= 1; i-- {
		result[i] = byte(pos)
		pos -= step
	}

	return result
}
