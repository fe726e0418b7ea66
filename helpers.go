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

package charset

import "unicode/utf8"

// Decode expands `src` into its code points, in buffer order. UTF-8
// buffers take a single-pass bulk path; the per-rune loop is only
// entered for other charsets, or to locate the offset of a malformed
// sequence.
func Decode(cs Charset, src []byte) ([]rune, error) {
	if _, ok := cs.(Charset_utf8); ok && utf8.Valid(src) {
		return []rune(string(src)), nil
	}
	dst := make([]rune, 0, len(src))
	pos := 0
	for pos < len(src) {
		cp, width := cs.DecodeRune(src[pos:])
		if cp == RuneError && width < 2 {
			return nil, ErrInvalidSequence(pos)
		}
		dst = append(dst, cp)
		pos += width
	}
	return dst, nil
}

// Encode concatenates the encodings of the given code points, appending
// to `dst` if it is not nil. A code point outside the charset's domain
// yields ErrUnencodable and no partial output.
func Encode(dst []byte, cs Charset, src []rune) ([]byte, error) {
	if _, ok := cs.(Charset_utf8); ok {
		return append(dst, string(src)...), nil
	}
	if dst == nil {
		dst = make([]byte, 0, len(src)*cs.MaxWidth())
	}
	var scratch [4]byte
	for _, cp := range src {
		w := cs.EncodeRune(scratch[:], cp)
		if w < 0 {
			return nil, ErrUnencodable
		}
		dst = append(dst, scratch[:w]...)
	}
	return dst, nil
}

// Length returns the number of code points in `src`.
func Length(cs Charset, src []byte) int {
	if l, ok := cs.(interface{ Length([]byte) int }); ok {
		return l.Length(src)
	}
	count := 0
	for len(src) > 0 {
		_, width := cs.DecodeRune(src)
		if width <= 0 {
			break
		}
		src = src[width:]
		count++
	}
	return count
}

// Validate returns whether the whole buffer decodes cleanly in `cs`.
func Validate(cs Charset, src []byte) bool {
	if v, ok := cs.(interface{ Validate([]byte) bool }); ok {
		return v.Validate(src)
	}
	for len(src) > 0 {
		cp, width := cs.DecodeRune(src)
		if cp == RuneError && width < 2 {
			return false
		}
		src = src[width:]
	}
	return true
}

// Slice returns the bytes spanning code points [from, to) of `src`.
// Out-of-range bounds are clamped.
func Slice(cs Charset, src []byte, from, to int) []byte {
	if from < 0 {
		from = 0
	}
	if from >= to {
		return nil
	}
	start, pos, n := 0, 0, 0
	for pos < len(src) && n < to {
		if n == from {
			start = pos
		}
		_, width := cs.DecodeRune(src[pos:])
		if width <= 0 {
			break
		}
		pos += width
		n++
	}
	if n <= from {
		return nil
	}
	return src[start:pos]
}
