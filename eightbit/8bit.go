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

package eightbit

import (
	"unicode/utf8"

	"github.com/textcodec/charset/types"
)

// Charset_8bit is a one-byte code page: bytes below 0x80 map to
// themselves, bytes 0x80 through 0xFF map through a fixed 128-entry
// table. The encode direction is derived from the table once, at
// construction, and both directions are immutable afterwards.
type Charset_8bit struct {
	name        string
	toUnicode   *[128]uint16
	fromUnicode map[rune]byte
}

func new8bit(name string, toUnicode *[128]uint16) *Charset_8bit {
	cs := &Charset_8bit{
		name:        name,
		toUnicode:   toUnicode,
		fromUnicode: make(map[rune]byte, len(toUnicode)),
	}
	for i, cp := range toUnicode {
		cs.fromUnicode[rune(cp)] = byte(0x80 + i)
	}
	return cs
}

func (e *Charset_8bit) Name() string {
	return e.name
}

func (e *Charset_8bit) IsSuperset(other types.Charset) bool {
	return e == other
}

func (e *Charset_8bit) SupportsSupplementaryChars() bool {
	return false
}

// DecodeRune is total: every byte has a mapping, so it can only fail on
// an empty slice.
func (e *Charset_8bit) DecodeRune(bytes []byte) (rune, int) {
	if len(bytes) < 1 {
		return utf8.RuneError, 0
	}
	if b := bytes[0]; b >= 0x80 {
		return rune(e.toUnicode[b-0x80]), 1
	}
	return rune(bytes[0]), 1
}

func (e *Charset_8bit) EncodeRune(dst []byte, r rune) int {
	if r >= 0 && r < 0x80 {
		dst[0] = byte(r)
		return 1
	}
	if b, ok := e.fromUnicode[r]; ok {
		dst[0] = b
		return 1
	}
	return -1
}

func (e *Charset_8bit) MaxWidth() int {
	return 1
}
