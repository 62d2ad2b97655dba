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

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEncodeTextChoosesSmallestVersion(t *testing.T) {
	qr, err := EncodeText("HELLO", Low)
	assert.NoError(t, err)
	assert.Equal(t, Version(1), qr.Version)
	assert.Equal(t, 21, qr.Size)

	// The three finder patterns' centers are always dark.
	assert.True(t, qr.GetModule(3, 3))
	assert.True(t, qr.GetModule(qr.Size-4, 3))
	assert.True(t, qr.GetModule(3, qr.Size-4))
}

func TestEncodeTextNumericMode(t *testing.T) {
	qr, err := EncodeText("12345", Low)
	assert.NoError(t, err)
	assert.Equal(t, Version(1), qr.Version)
}

func TestEncodeTextBytePadding(t *testing.T) {
	qr, err := EncodeText("", Low)
	assert.NoError(t, err)
	assert.Equal(t, Version(1), qr.Version)

	n := getNumDataCodewords(qr.Version, qr.ErrorCorrectionLevel)
	assert.Equal(t, n, len(qr.DataCodewords))
	assert.Equal(t, byte(0xEC), qr.DataCodewords[0])
	for i, b := range qr.DataCodewords {
		if i%2 == 0 {
			assert.Equal(t, byte(0xEC), b)
		} else {
			assert.Equal(t, byte(0x11), b)
		}
	}
}

func TestEncodeTextByteMode(t *testing.T) {
	qr, err := EncodeSegments(MakeSegments("abc"), Low, WithMinVersion(NewVersion(1)), WithMaxVersion(NewVersion(1)))
	assert.NoError(t, err)
	assert.Equal(t, Version(1), qr.Version)
}

func TestEncodeSegmentsDataTooLong(t *testing.T) {
	seg := MakeBytes(make([]byte, 1000))
	_, err := EncodeSegments([]*QRSegment{seg}, Low, WithMinVersion(NewVersion(1)), WithMaxVersion(NewVersion(1)))
	assert.Error(t, err)

	var qrErr *QRError
	assert.ErrorAs(t, err, &qrErr)
	assert.Equal(t, DataTooLong, qrErr.Kind)
}

func TestEncodeSegmentsInvalidVersionRange(t *testing.T) {
	_, err := EncodeSegments(MakeSegments("x"), Low, WithMinVersion(NewVersion(10)), WithMaxVersion(NewVersion(5)))
	assert.Error(t, err)

	var qrErr *QRError
	assert.ErrorAs(t, err, &qrErr)
	assert.Equal(t, InvalidArgument, qrErr.Kind)
}

func TestEncodeSegmentsExplicitMask(t *testing.T) {
	for m := Mask(0); m <= 7; m++ {
		qr, err := EncodeSegments(MakeSegments("Explicit mask test"), Medium, WithMask(m))
		assert.NoError(t, err)
		assert.Equal(t, m, qr.Mask)
	}
}

func TestEncodeSegmentsAutoMaskIsDeterministic(t *testing.T) {
	a, err := EncodeSegments(MakeSegments("Deterministic output test"), Quartile, WithAutoMask())
	assert.NoError(t, err)
	b, err := EncodeSegments(MakeSegments("Deterministic output test"), Quartile, WithAutoMask())
	assert.NoError(t, err)

	assert.Equal(t, a.Mask, b.Mask)
	assert.Equal(t, a.Modules, b.Modules)
}

func TestEncodeSegmentsBoostECL(t *testing.T) {
	// "A" needs 19 bits, which still fits version 1 at High (72 bits).
	qr, err := EncodeText("A", Low)
	assert.NoError(t, err)
	assert.Equal(t, High, qr.ErrorCorrectionLevel)
}

func TestEncodeSegmentsNoBoostECL(t *testing.T) {
	qr, err := EncodeSegments(MakeSegments("A"), Low, WithBoostECL(false))
	assert.NoError(t, err)
	assert.Equal(t, Low, qr.ErrorCorrectionLevel)
}

func TestGetModuleOutOfBounds(t *testing.T) {
	qr, err := EncodeText("x", Low)
	assert.NoError(t, err)
	assert.False(t, qr.GetModule(-1, 0))
	assert.False(t, qr.GetModule(0, -1))
	assert.False(t, qr.GetModule(qr.Size, 0))
	assert.False(t, qr.GetModule(0, qr.Size))
}

func TestEncodeAllVersionsRoundTripsThroughMaxVersion(t *testing.T) {
	// A long, repeating numeric string forces a larger version (3000
	// digits need version 40 at High); confirm every error correction
	// level still produces a well-formed symbol.
	text := ""
	for i := 0; i < 300; i++ {
		text += "0123456789"
	}

	for ecl := Low; ecl <= High; ecl++ {
		qr, err := EncodeText(text, ecl)
		assert.NoError(t, err)
		assert.True(t, qr.Size >= 21)
		assert.Equal(t, qr.Size, len(qr.Modules))
	}
}
