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

// segmentEncoder holds the options for EncodeSegments.
type segmentEncoder struct {
	boostECL   bool // Boost the error correction level if the chosen version still fits at a higher level.
	mask       Mask // -1 selects the mask automatically.
	maxVersion Version
	minVersion Version
}

// WithAutoMask sets automatic mask selection (the default): the mask
// that yields the lowest penalty score is chosen.
func WithAutoMask() func(*segmentEncoder) {
	return func(s *segmentEncoder) {
		s.mask = -1
	}
}

// WithBoostECL controls whether the error correction level is
// automatically increased when the chosen version still has room for it
// (default true).
func WithBoostECL(boost bool) func(*segmentEncoder) {
	return func(s *segmentEncoder) {
		s.boostECL = boost
	}
}

// WithMask forces a specific mask pattern in [0, 7], bypassing automatic
// selection.
func WithMask(mask Mask) func(*segmentEncoder) {
	return func(s *segmentEncoder) {
		s.mask = mask
	}
}

// WithMaxVersion sets the maximum version the encoder may choose.
func WithMaxVersion(version Version) func(*segmentEncoder) {
	return func(s *segmentEncoder) {
		s.maxVersion = version
	}
}

// WithMinVersion sets the minimum version the encoder may choose.
func WithMinVersion(version Version) func(*segmentEncoder) {
	return func(s *segmentEncoder) {
		s.minVersion = version
	}
}
