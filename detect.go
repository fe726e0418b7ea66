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

// Detection labels. Detect always returns one of these.
const (
	DetectedASCII   = "ascii"
	DetectedUTF8    = "utf-8"
	DetectedUTF16BE = "utf-16be"
	DetectedUTF16LE = "utf-16le"
	DetectedOther   = "other"
)

// DefaultDetectLimit is how many leading bytes Detect inspects.
const DefaultDetectLimit = 100

// Detect guesses the encoding family of `src` from its first
// DefaultDetectLimit bytes.
func Detect(src []byte) string {
	return DetectWithLimit(src, DefaultDetectLimit)
}

// DetectWithLimit guesses the encoding family of `src`, inspecting at
// most `limit` leading bytes. It never fails.
//
// The heuristic is a single forward scan with no backtracking. A BOM
// decides immediately. Otherwise the first NUL byte decides by its
// parity: a NUL in an even 1-based position is read as the high byte of
// a little-endian 16-bit unit, an odd one as big-endian — even when
// bytes seen earlier suggested something else. Failing that, the verdict
// rests on whether any byte above 0x7F was seen and whether every such
// byte started a valid UTF-8 sequence.
func DetectWithLimit(src []byte, limit int) string {
	if limit > len(src) {
		limit = len(src)
	}
	if limit >= 2 {
		switch {
		case src[0] == 0xFF && src[1] == 0xFE:
			return DetectedUTF16LE
		case src[0] == 0xFE && src[1] == 0xFF:
			return DetectedUTF16BE
		case limit >= 3 && src[0] == 0xEF && src[1] == 0xBB && src[2] == 0xBF:
			return DetectedUTF8
		}
	}
	var high bool
	isUTF8 := true
	for pos := 0; pos < limit-1; {
		switch b := src[pos]; {
		case b == 0x00:
			if pos%2 == 1 {
				return DetectedUTF16LE
			}
			return DetectedUTF16BE
		case b > 0x7F:
			high = true
			if !isUTF8 {
				pos++
				break
			}
			// The decode may run past the limit; the limit caps how
			// far the scan walks, not how far one sequence reaches.
			cp, width := utf8.DecodeRune(src[pos:])
			if cp == utf8.RuneError && width < 3 {
				isUTF8 = false
				pos++
			} else {
				pos += width
			}
		default:
			pos++
		}
	}
	if !high {
		return DetectedASCII
	}
	if isUTF8 {
		return DetectedUTF8
	}
	return DetectedOther
}
