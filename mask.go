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

import "math"

// Mask is one of the eight QR Code mask patterns, or -1 meaning
// "choose automatically" (only valid as an EncodeSegments option, never
// on a finalized symbol).
type Mask int8

// Penalty weights for the four-term mask scoring heuristic.
const (
	penaltyN1 = 3
	penaltyN2 = 3
	penaltyN3 = 40
	penaltyN4 = 10
)

// applyMask XORs every non-function module with the given mask's
// predicate. Applying the same mask twice is a no-op (XOR is its own
// inverse), which auto-selection relies on to try each candidate and
// undo it cheaply.
func (q *QRCode) applyMask(mask Mask) {
	for y := 0; y < q.Size; y++ {
		for x := 0; x < q.Size; x++ {
			var invert bool
			switch mask {
			case 0:
				invert = (x+y)%2 == 0
			case 1:
				invert = y%2 == 0
			case 2:
				invert = x%3 == 0
			case 3:
				invert = (x+y)%3 == 0
			case 4:
				invert = (x/3+y/2)%2 == 0
			case 5:
				invert = x*y%2+x*y%3 == 0
			case 6:
				invert = (x*y%2+x*y%3)%2 == 0
			case 7:
				invert = ((x+y)%2+x*y%3)%2 == 0
			default:
				invariant(false, "illegal mask value %d", mask)
			}
			q.Modules[y][x] ^= Module(bToI(invert && !q.isFunction[y][x]))
		}
	}
}

// drawFormatBits computes the 15-bit format word (5 data bits -
// error-correction level and mask - plus a 10-bit BCH remainder under
// generator 0x537, XORed with the fixed mask 0x5412) and draws its two
// copies. Always leaves (8, size-8) dark.
func (q *QRCode) drawFormatBits(mask Mask) {
	data := q.ErrorCorrectionLevel.formatBits()<<3 | int(mask)
	rem := data
	for i := 0; i < 10; i++ {
		rem = rem<<1 ^ rem>>9*0x537
	}
	bits := data<<10 | rem ^ 0x5412
	invariant(bits>>15 == 0, "format bits overflow 15 bits")

	// First copy.
	for i := 0; i <= 5; i++ {
		q.setFunctionModule(8, i, getBitAsBool(bits, i))
	}
	q.setFunctionModule(8, 7, getBitAsBool(bits, 6))
	q.setFunctionModule(8, 8, getBitAsBool(bits, 7))
	q.setFunctionModule(7, 8, getBitAsBool(bits, 8))
	for i := 9; i < 15; i++ {
		q.setFunctionModule(14-i, 8, getBitAsBool(bits, i))
	}

	// Second copy.
	for i := 0; i < 8; i++ {
		q.setFunctionModule(q.Size-1-i, 8, getBitAsBool(bits, i))
	}
	for i := 8; i < 15; i++ {
		q.setFunctionModule(8, q.Size-15+i, getBitAsBool(bits, i))
	}
	q.setFunctionModule(8, q.Size-8, true) // Always dark.
}

// finderPenaltyAddHistory pushes currentRunLength to the front of the
// 7-slot run history, in place, dropping the oldest entry. A virtual
// light run the width of the symbol is added to the very first entry
// pushed, modeling the border beyond either end of a row/column.
func (q *QRCode) finderPenaltyAddHistory(currentRunLength int, runHistory *[7]int) {
	if runHistory[0] == 0 {
		currentRunLength += q.Size
	}

	copy(runHistory[1:], runHistory[0:])
	runHistory[0] = currentRunLength
}

// finderPenaltyCountPatterns checks the run history for the finder
// signature 1:1:3:1:1 (unit width n) bordered by a light run at least 4n
// modules wide on one or both sides, returning 0, 1, or 2 accordingly.
func (q *QRCode) finderPenaltyCountPatterns(runHistory *[7]int) int {
	n := runHistory[1]
	invariant(n <= q.Size*3, "run history entry exceeds plausible bound")

	core := n > 0 && runHistory[2] == n && runHistory[3] == n*3 && runHistory[4] == n && runHistory[5] == n

	return bToI(core && runHistory[0] >= n*4 && runHistory[6] >= n) +
		bToI(core && runHistory[6] >= n*4 && runHistory[0] >= n)
}

// finderPenaltyTerminateAndCount closes out the last run of a row/column
// (adding the virtual light border run) and returns its N3 penalty
// count.
func (q *QRCode) finderPenaltyTerminateAndCount(runColor Module, runLength int, runHistory *[7]int) int {
	if runColor == 1 { // Terminate a dark run.
		q.finderPenaltyAddHistory(runLength, runHistory)
		runLength = 0
	}
	runLength += q.Size // Add the light border to the final run.
	q.finderPenaltyAddHistory(runLength, runHistory)

	return q.finderPenaltyCountPatterns(runHistory)
}

// getPenaltyScore computes the sum of the four standard penalty terms
// (N1: same-color runs, N2: 2x2 blocks, N3: finder-like patterns, N4:
// dark/light balance) over the symbol's current module state.
func (q *QRCode) getPenaltyScore() int {
	result := 0

	// N1 + N3 over rows.
	for y := 0; y < q.Size; y++ {
		runColor := Module(0)
		runX := 0
		var runHistory [7]int
		for x := 0; x < q.Size; x++ {
			if q.Modules[y][x] == runColor {
				runX++
				if runX == 5 {
					result += penaltyN1
				} else if runX > 5 {
					result++
				}
			} else {
				q.finderPenaltyAddHistory(runX, &runHistory)
				if runColor == 0 {
					result += q.finderPenaltyCountPatterns(&runHistory) * penaltyN3
				}
				runColor = q.Modules[y][x]
				runX = 1
			}
		}
		result += q.finderPenaltyTerminateAndCount(runColor, runX, &runHistory) * penaltyN3
	}

	// N1 + N3 over columns.
	for x := 0; x < q.Size; x++ {
		runColor := Module(0)
		runY := 0
		var runHistory [7]int
		for y := 0; y < q.Size; y++ {
			if q.Modules[y][x] == runColor {
				runY++
				if runY == 5 {
					result += penaltyN1
				} else if runY > 5 {
					result++
				}
			} else {
				q.finderPenaltyAddHistory(runY, &runHistory)
				if runColor == 0 {
					result += q.finderPenaltyCountPatterns(&runHistory) * penaltyN3
				}
				runColor = q.Modules[y][x]
				runY = 1
			}
		}
		result += q.finderPenaltyTerminateAndCount(runColor, runY, &runHistory) * penaltyN3
	}

	// N2: 2x2 blocks of uniform color.
	for y := 0; y < q.Size-1; y++ {
		for x := 0; x < q.Size-1; x++ {
			color := q.Modules[y][x]
			if color == q.Modules[y][x+1] && color == q.Modules[y+1][x] && color == q.Modules[y+1][x+1] {
				result += penaltyN2
			}
		}
	}

	// N4: balance of dark vs. light modules.
	black := 0
	for _, row := range q.Modules {
		for _, color := range row {
			if color == 1 {
				black++
			}
		}
	}
	total := q.Size * q.Size
	k := (abs(black*20-total*10)+total-1)/total - 1
	result += k * penaltyN4

	return result
}

// handleConstructorMasking applies mask (or, if mask == -1, the mask with
// the lowest penalty score among all eight) and burns in its format bits
// for real. Returns the mask that was applied.
func (q *QRCode) handleConstructorMasking(mask Mask) Mask {
	if mask == -1 {
		minPenalty := math.MaxInt32
		for i := Mask(0); i < 8; i++ {
			q.applyMask(i)
			q.drawFormatBits(i)
			penalty := q.getPenaltyScore()
			if penalty < minPenalty {
				mask = i
				minPenalty = penalty
			}
			q.applyMask(i) // Undo the trial mask (XOR is its own inverse).
		}
	}

	invariant(mask >= 0 && mask <= 7, "illegal mask value %d", mask)

	q.applyMask(mask)
	q.drawFormatBits(mask)

	return mask
}
