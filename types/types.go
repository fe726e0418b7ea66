/*
Copyright 2025 The Textcodec Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package types

// Charset is a fixed text encoding that can decode and encode one code
// point at a time. Implementations are stateless values; all methods are
// safe for concurrent use.
type Charset interface {
	// Name returns the canonical lowercase name of this charset.
	Name() string

	// SupportsSupplementaryChars returns whether this charset can
	// represent code points outside the Basic Multilingual Plane.
	SupportsSupplementaryChars() bool

	// IsSuperset returns whether any byte sequence valid in `other` is
	// also valid, with identical meaning, in this charset.
	IsSuperset(other Charset) bool

	// DecodeRune decodes the leading code point in the given byte slice
	// and returns it along with the number of bytes consumed. A slice
	// that is too short for a full unit yields (RuneError, 0); a
	// malformed sequence yields (RuneError, 1). A genuine U+FFFD in the
	// input decodes with its full width, so failure is the pair
	// (RuneError, width < 2) for every charset but UTF-8, where the
	// standard width < 3 test applies.
	DecodeRune([]byte) (rune, int)

	// EncodeRune writes the encoding of r at the start of dst, which
	// must have room for MaxWidth bytes, and returns the number of
	// bytes written, or -1 if r has no representation in this charset.
	EncodeRune(dst []byte, r rune) int

	// MaxWidth returns the widest encoding of a single code point.
	MaxWidth() int
}
