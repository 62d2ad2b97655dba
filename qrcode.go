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
 *
 * Modeled after https://github.com/nayuki/QR-Code-generator.
 * See https://www.thonky.com/qr-code-tutorial/introduction and
 * https://en.wikipedia.org/wiki/QR_code for an explanation of how QR codes
 * are formatted.
 */

package qrcodegen

import (
	"fmt"
	"strings"
)

// Module is a single cell of a QR Code symbol: 1 (dark) or 0 (light).
type Module int8

// QRCode represents a finalized, immutable QR Code (Model 2) symbol.
type QRCode struct {
	Version                    // The symbol version, in [1, 40].
	Size                 int   // The width and height of the symbol, in modules.
	ErrorCorrectionLevel Ecl   // The error correction level used.
	Mask                       // The mask pattern applied, in [0, 7].
	Modules              [][]Module // The finalized module grid (1 = dark).
	DataCodewords        []byte     // The pre-ECC data codewords used to build this symbol.

	// isFunction marks cells belonging to function patterns during
	// construction. It is discarded (set to nil) once the symbol is
	// finalized, so the public value only ever exposes Modules.
	isFunction [][]bool
}

// EncodeBinary encodes a byte slice into a symbol with the given error
// correction level, using a single Byte-mode segment.
func EncodeBinary(data []byte, ecl Ecl) (*QRCode, error) {
	return EncodeSegments([]*QRSegment{MakeBytes(data)}, ecl)
}

// EncodeText encodes Unicode text into a symbol with the given error
// correction level, automatically choosing Numeric, Alphanumeric, or Byte
// mode (see MakeSegments).
func EncodeText(text string, ecl Ecl) (*QRCode, error) {
	return EncodeSegments(MakeSegments(text), ecl)
}

// EncodeSegments builds a symbol from one or more pre-built segments.
//
// By default the smallest fitting version is chosen starting at version
// 1, the error correction level is boosted when the chosen version still
// has room, and the mask is chosen automatically. Override any of this
// with WithMinVersion, WithMaxVersion, WithMask/WithAutoMask, and
// WithBoostECL.
//
// Returns *QRError{InvalidArgument} for a malformed version range or mask
// value, and *QRError{DataTooLong} if segs cannot fit in any version in
// range at the requested (pre-boost) level.
func EncodeSegments(segs []*QRSegment, ecl Ecl, options ...func(*segmentEncoder)) (*QRCode, error) {
	s := segmentEncoder{
		boostECL:   true,
		mask:       -1,
		maxVersion: MaxVersion,
		minVersion: MinVersion,
	}
	for _, o := range options {
		o(&s)
	}

	if s.minVersion < MinVersion || MaxVersion < s.maxVersion || s.maxVersion < s.minVersion {
		return nil, newError(InvalidArgument, "invalid version range [%d, %d]", s.minVersion, s.maxVersion)
	}

	if s.mask < -1 || s.mask > 7 {
		return nil, newError(InvalidArgument, "mask value %d out of range", s.mask)
	}

	version, dataUsedBits, err := chooseVersion(segs, ecl, s.minVersion, s.maxVersion)
	if err != nil {
		return nil, err
	}

	if s.boostECL {
		ecl = boostErrorCorrectionLevel(ecl, version, dataUsedBits)
	}

	dataCodewords := assembleCodewords(segs, version, ecl, dataUsedBits)

	size := version.Size()
	qrCode := QRCode{
		Version:              version,
		Size:                 size,
		ErrorCorrectionLevel: ecl,
		DataCodewords:        dataCodewords,
		Modules:              make([][]Module, size),
		isFunction:           make([][]bool, size),
	}

	for i := 0; i < size; i++ {
		qrCode.Modules[i] = make([]Module, size)
		qrCode.isFunction[i] = make([]bool, size)
	}

	qrCode.drawFunctionPatterns()
	allCodewords := qrCode.addECCAndInterleave(dataCodewords)
	qrCode.drawCodewords(allCodewords)
	qrCode.Mask = qrCode.handleConstructorMasking(s.mask)

	qrCode.isFunction = nil

	return &qrCode, nil
}

// GetModule reports whether the module at (x, y) is dark. Out-of-bounds
// coordinates are always light (false).
func (q *QRCode) GetModule(x, y int) bool {
	if x < 0 || y < 0 || x >= q.Size || y >= q.Size {
		return false
	}

	return q.Modules[y][x] != 0
}

func (q *QRCode) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "QRCode{Version: %d, Size: %d, ErrorCorrectionLevel: %d, Mask: %d}\n", q.Version, q.Size, q.ErrorCorrectionLevel, q.Mask)
	for y := 0; y < q.Size; y++ {
		for x := 0; x < q.Size; x++ {
			if q.GetModule(x, y) {
				sb.WriteString("██")
			} else {
				sb.WriteString("  ")
			}
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

func (q *QRCode) setFunctionModule(x, y int, isBlack bool) {
	q.Modules[y][x] = bToModule(isBlack)
	q.isFunction[y][x] = true
}
