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

import "fmt"

// ErrorKind closes the set of failure classes the core can raise.
type ErrorKind int8

// ErrorKind values.
const (
	// InvalidArgument means a caller-supplied argument (version, mask,
	// segment characters, border, hex color) is malformed.
	InvalidArgument ErrorKind = iota
	// DataTooLong means no version in the caller's requested range can
	// hold the given segments at the requested error correction level.
	DataTooLong
	// ValueOutOfRange means a programmer misused a low-level primitive
	// (appendBits, a GF(2^8) operand, a Reed-Solomon degree).
	ValueOutOfRange
	// InternalInvariant means an assertion that should never fire did;
	// it indicates a bug in this package, not in caller input.
	InternalInvariant
)

func (k ErrorKind) String() string {
	switch k {
	case InvalidArgument:
		return "InvalidArgument"
	case DataTooLong:
		return "DataTooLong"
	case ValueOutOfRange:
		return "ValueOutOfRange"
	case InternalInvariant:
		return "InternalInvariant"
	default:
		return "UnknownErrorKind"
	}
}

// QRError is the single error type returned or panicked by this package.
// InvalidArgument and DataTooLong are returned as ordinary errors, except
// that MakeNumeric and MakeAlphanumeric panic with InvalidArgument on a
// character outside their mode's set; ValueOutOfRange and
// InternalInvariant are raised via panic, since both signal a programmer
// error rather than something a caller can meaningfully recover from.
type QRError struct {
	Kind ErrorKind
	Msg  string
}

func (e *QRError) Error() string {
	return fmt.Sprintf("qrcodegen: %s: %s", e.Kind, e.Msg)
}

// Is reports whether target is a *QRError with the same Kind, so callers
// can write errors.Is(err, &QRError{Kind: DataTooLong}).
func (e *QRError) Is(target error) bool {
	other, ok := target.(*QRError)
	return ok && other.Kind == e.Kind
}

func newError(kind ErrorKind, format string, args ...any) *QRError {
	return &QRError{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

// invariant panics with an InternalInvariant error if cond is false.
func invariant(cond bool, format string, args ...any) {
	if !cond {
		panic(newError(InternalInvariant, format, args...))
	}
}
