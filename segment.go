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
	"math"
	"regexp"
	"strconv"
	"strings"
)

// QRSegment represents a single segment of a QR Code's data stream. A
// symbol may be built from more than one segment (numeric, alphanumeric,
// byte, or ECI).
type QRSegment struct {
	Mode            // The mode of this segment.
	NumChars int    // The pre-encoding character count (digits/chars/bytes).
	Data     []byte // The encoded payload bits (0/1 bytes), header excluded.
}

const alphanumericCharset = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ $%*+-./:"

var (
	alphanumericRegexp = regexp.MustCompile(`^[A-Z0-9 $%*+./:-]*$`)
	numericRegexp      = regexp.MustCompile(`^[0-9]*$`)
)

// getTotalBits returns the total number of bits segs would occupy at the
// given version (mode indicator + character count + payload, summed over
// every segment), or -1 if any segment's character count overflows its
// count field, or if the sum itself would overflow an int32.
func getTotalBits(segs []*QRSegment, version Version) int {
	result := int64(0)
	for _, seg := range segs {
		ccBits := seg.Mode.numCharCountBits(version)
		if seg.NumChars >= 1<<ccBits {
			return -1 // The segment's length does not fit the field's bit width.
		}

		result += int64(4 + int(ccBits) + len(seg.Data))
		if result > math.MaxInt32 {
			return -1 // The sum would overflow.
		}
	}

	return int(result)
}

// MakeAlphanumeric creates an alphanumeric segment from text, which must
// consist only of characters in the alphanumeric set
// "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ $%*+-./:".
//
// Panics if text contains a character outside that set.
func MakeAlphanumeric(text string) *QRSegment {
	if !alphanumericRegexp.MatchString(text) {
		panic(newError(InvalidArgument, "string contains non-alphanumeric characters"))
	}

	bb := make(bitBuffer, 0, len(text)*5+(len(text)+1)/2)
	var i int
	for i = 0; i <= len(text)-2; i += 2 { // Process groups of 2 characters.
		temp := strings.Index(alphanumericCharset, text[i:i+1]) * 45
		temp += strings.Index(alphanumericCharset, text[i+1:i+2])
		bb.appendBits(temp, 11)
	}

	if i < len(text) { // 1 character remaining.
		bb.appendBits(strings.Index(alphanumericCharset, text[i:i+1]), 6)
	}

	return &QRSegment{
		Mode:     Alphanumeric,
		NumChars: len(text),
		Data:     bb,
	}
}

// MakeBytes encodes a byte slice into a Byte-mode segment, 8 bits per
// byte.
func MakeBytes(data []byte) *QRSegment {
	bb := make(bitBuffer, 0, len(data)*8)
	for _, b := range data {
		bb.appendBits(int(b), 8)
	}

	return &QRSegment{
		Mode:     Byte,
		NumChars: len(data),
		Data:     bb,
	}
}

// MakeECI creates a segment representing an Extended Channel
// Interpretation (ECI) designator, which changes how subsequent byte
// segments are interpreted.
//
// Returns an *QRError{InvalidArgument} if assignValue can't be encoded
// (>= 1,000,000).
func MakeECI(assignValue int) (*QRSegment, error) {
	bb := make(bitBuffer, 0, 24)
	switch {
	case assignValue < 1<<7:
		bb.appendBits(assignValue, 8)
	case assignValue < 1<<14:
		bb.appendBits(2, 2)
		bb.appendBits(assignValue, 14)
	case assignValue < 1_000_000:
		bb.appendBits(6, 3)
		bb.appendBits(assignValue, 21)
	default:
		return nil, newError(InvalidArgument, "ECI assignment value %d out of range", assignValue)
	}

	return &QRSegment{
		Mode:     ECI,
		NumChars: 0,
		Data:     bb,
	}, nil
}

// MakeNumeric creates a numeric segment from a string of decimal digits.
//
// Panics if digits contains a non-digit character.
func MakeNumeric(digits string) *QRSegment {
	if !numericRegexp.MatchString(digits) {
		panic(newError(InvalidArgument, "string contains non-numeric characters"))
	}

	bb := make(bitBuffer, 0, len(digits)*3+(len(digits)+2)/3)
	for i := 0; i < len(digits); {
		n := minInt(len(digits)-i, 3)
		d, err := strconv.Atoi(digits[i : i+n])
		invariant(err == nil, "non-digit slipped past numericRegexp: %v", err)
		bb.appendBits(d, int8(n*3+1))
		i += n
	}

	return &QRSegment{
		Mode:     Numeric,
		NumChars: len(digits),
		Data:     bb,
	}
}

// MakeSegments auto-selects the most compact single-segment encoding for
// text: Numeric if every character is a digit, Alphanumeric if every
// character lies in the alphanumeric set, otherwise Byte mode over the
// UTF-8 encoding of text.
func MakeSegments(text string) []*QRSegment {
	if len(text) == 0 {
		return []*QRSegment{}
	}

	if numericRegexp.MatchString(text) {
		return []*QRSegment{MakeNumeric(text)}
	}

	if alphanumericRegexp.MatchString(text) {
		return []*QRSegment{MakeAlphanumeric(text)}
	}

	return []*QRSegment{MakeBytes([]byte(text))}
}
