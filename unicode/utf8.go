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

package unicode

import (
	"unicode/utf8"

	"github.com/textcodec/charset/types"
)

const RuneError = utf8.RuneError

type Charset_utf8 struct{}

func (Charset_utf8) Name() string {
	return "utf-8"
}

func (Charset_utf8) IsSuperset(other types.Charset) bool {
	switch other.(type) {
	case Charset_utf8:
		return true
	default:
		return false
	}
}

func (Charset_utf8) SupportsSupplementaryChars() bool {
	return true
}

// EncodeRune delegates to the standard library primitive: out-of-range
// and surrogate inputs encode as U+FFFD rather than failing.
func (Charset_utf8) EncodeRune(dst []byte, r rune) int {
	return utf8.EncodeRune(dst, r)
}

func (Charset_utf8) DecodeRune(p []byte) (rune, int) {
	return utf8.DecodeRune(p)
}

func (Charset_utf8) MaxWidth() int {
	return utf8.UTFMax
}

func (Charset_utf8) Validate(p []byte) bool {
	return utf8.Valid(p)
}

func (Charset_utf8) Length(p []byte) int {
	return utf8.RuneCount(p)
}
