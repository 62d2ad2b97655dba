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

// Version is a QR Code Model 2 symbol version, a number in [1, 40]. Larger
// versions hold more data and have a larger module grid.
type Version int8

// The minimum and maximum symbol version supported by this package.
const (
	MinVersion = Version(1)
	MaxVersion = Version(40)
)

// NewVersion creates a Version from the given number.
//
// Panics if the number is outside [MinVersion, MaxVersion].
func NewVersion(v int) Version {
	if v < int(MinVersion) || int(MaxVersion) < v {
		panic(newError(ValueOutOfRange, "version %d out of range [%d, %d]", v, MinVersion, MaxVersion))
	}

	return Version(v)
}

// Size returns the width and height, in modules, of a symbol of this
// version: size = 4*version + 17, always odd, in [21, 177].
func (v Version) Size() int {
	return int(v)*4 + 17
}
