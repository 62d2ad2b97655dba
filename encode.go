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

// chooseVersion finds the smallest version in [minVersion, maxVersion]
// that can hold segs at ecl, returning that version and the exact number
// of data bits segs occupies at it.
func chooseVersion(segs []*QRSegment, ecl Ecl, minVersion, maxVersion Version) (Version, int, error) {
	version := minVersion
	for {
		dataCapacityBits := getNumDataCodewords(version, ecl) * 8
		dataUsedBits := getTotalBits(segs, version)
		if dataUsedBits != -1 && dataUsedBits <= dataCapacityBits {
			return version, dataUsedBits, nil
		}

		if version >= maxVersion {
			if dataUsedBits != -1 {
				return 0, 0, newError(DataTooLong, "data length = %d bits, max capacity = %d bits", dataUsedBits, dataCapacityBits)
			}
			return 0, 0, newError(DataTooLong, "data too long to fit any version in range")
		}
		version++
	}
}

// boostErrorCorrectionLevel raises ecl through Medium, Quartile, High (in
// that order) as long as the data still fits at version without needing
// to re-search for a version.
func boostErrorCorrectionLevel(ecl Ecl, version Version, dataUsedBits int) Ecl {
	for newEcl := Medium; newEcl <= High; newEcl++ {
		if dataUsedBits <= getNumDataCodewords(version, newEcl)*8 {
			ecl = newEcl
		}
	}

	return ecl
}

// assembleCodewords concatenates every segment's header (mode indicator +
// character count) and payload into one bit stream, appends the
// terminator and padding, and packs the result into data codeword bytes
// MSB-first.
func assembleCodewords(segs []*QRSegment, version Version, ecl Ecl, dataUsedBits int) []byte {
	bb := make(bitBuffer, 0)
	for _, seg := range segs {
		bb.appendBits(int(seg.modeBits), 4)
		bb.appendBits(seg.NumChars, seg.Mode.numCharCountBits(version))
		bb = append(bb, seg.Data...)
	}
	invariant(len(bb) == dataUsedBits, "assembled %d bits, expected %d", len(bb), dataUsedBits)

	dataCapacityBits := getNumDataCodewords(version, ecl) * 8
	invariant(len(bb) <= dataCapacityBits, "assembled data overflows capacity")

	// Terminator: up to 4 zero bits, fewer if capacity is tight.
	bb.appendBits(0, int8(minInt(4, dataCapacityBits-len(bb))))
	// Pad to a byte boundary.
	bb.appendBits(0, int8((8-len(bb)%8)%8))
	invariant(len(bb)%8 == 0, "padded bit stream is not byte-aligned")

	// Pad with alternating 0xEC/0x11 bytes until capacity is reached.
	for padByte := int16(0xEC); len(bb) < dataCapacityBits; padByte ^= 0xEC ^ 0x11 {
		bb.appendBits(int(padByte), 8)
	}

	dataCodewords := make([]byte, len(bb)/8)
	for i := 0; i < len(bb); i++ {
		dataCodewords[i>>3] |= bb[i] << (7 - i&7)
	}

	return dataCodewords
}

// addECCAndInterleave splits data into blocks per the standard rule,
// appends Reed-Solomon ECC codewords to each block, and interleaves the
// blocks byte-by-byte into the final raw codeword sequence.
func (q *QRCode) addECCAndInterleave(data []byte) []byte {
	invariant(len(data) == getNumDataCodewords(q.Version, q.ErrorCorrectionLevel), "data is not the expected length")

	numBlocks := numErrorCorrectionBlocks[q.ErrorCorrectionLevel][q.Version]
	blockECCLen := eccCodewordsPerBlock[q.ErrorCorrectionLevel][q.Version]
	rawCodewords := numRawDataModules[q.Version] / 8
	shortBlockLen := rawCodewords / numBlocks
	numShortBlocks := numBlocks - rawCodewords%numBlocks

	// Split data into blocks and append ECC to each.
	blocks := make([][]byte, numBlocks)
	rsDiv := reedSolomonDivisors[blockECCLen]
	for i, k := 0, 0; i < numBlocks; i++ {
		length := shortBlockLen - blockECCLen + bToI(i >= numShortBlocks)
		dat := data[k : k+length]
		k += length

		block := make([]byte, shortBlockLen+1)
		copy(block, dat)
		ecc := computeRemainder(dat, rsDiv)
		copy(block[len(block)-len(ecc):], ecc)
		blocks[i] = block
	}

	// Interleave: byte 0 of every block, then byte 1, etc. Short blocks
	// are one data byte shorter, so skip them at that one column.
	result := make([]byte, rawCodewords)
	for i, k := 0, 0; i < len(blocks[0]); i++ {
		for j := 0; j < len(blocks); j++ {
			if i != shortBlockLen-blockECCLen || j >= numShortBlocks {
				result[k] = blocks[j][i]
				k++
			}
		}
	}

	return result
}
