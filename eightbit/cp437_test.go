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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCP437DecodeRune(t *testing.T) {
	testCases := []struct {
		in byte
		cp rune
	}{
		{0x00, 0x0000},
		{'b', 'b'},
		{0x7F, 0x007F},
		{0x80, 0x00C7}, // Ç
		{0x81, 0x00FC}, // ü
		{0x9B, 0x00A2}, // ¢
		{0xB0, 0x2591}, // light shade
		{0xCD, 0x2550}, // double horizontal
		{0xE1, 0x00DF}, // ß
		{0xEC, 0x221E}, // ∞
		{0xF7, 0x2248}, // ≈
		{0xFF, 0x00A0}, // no-break space
	}

	for _, tc := range testCases {
		cp, width := Charset_cp437.DecodeRune([]byte{tc.in})
		assert.Equal(t, tc.cp, cp, "decode of 0x%02X", tc.in)
		assert.Equal(t, 1, width)
	}
}

func TestCP437EncodeRune(t *testing.T) {
	var buf [1]byte

	w := Charset_cp437.EncodeRune(buf[:], 0x221E)
	require.Equal(t, 1, w)
	assert.Equal(t, byte(0xEC), buf[0])

	w = Charset_cp437.EncodeRune(buf[:], 'x')
	require.Equal(t, 1, w)
	assert.Equal(t, byte('x'), buf[0])

	for _, cp := range []rune{-1, 0x0100, 0x65E5, 0x12345, 0x2603} {
		assert.Equal(t, -1, Charset_cp437.EncodeRune(buf[:], cp), "%U", cp)
	}
}

// Every byte value must survive a decode/encode round trip; the upper
// half of the table is bijective, so the derived inverse is exact.
func TestCP437RoundTrip(t *testing.T) {
	var buf [1]byte
	seen := make(map[rune]bool)
	for b := 0; b <= 0xFF; b++ {
		cp, width := Charset_cp437.DecodeRune([]byte{byte(b)})
		require.Equal(t, 1, width)
		require.False(t, seen[cp], "duplicate mapping for %U", cp)
		seen[cp] = true

		w := Charset_cp437.EncodeRune(buf[:], cp)
		require.Equal(t, 1, w, "%U", cp)
		require.Equal(t, byte(b), buf[0], "round trip of 0x%02X", b)
	}
}

func TestCP437Truncated(t *testing.T) {
	cp, width := Charset_cp437.DecodeRune(nil)
	assert.Equal(t, rune(0xFFFD), cp)
	assert.Equal(t, 0, width)
}

func TestBinaryCharset(t *testing.T) {
	var buf [1]byte
	for b := 0; b <= 0xFF; b++ {
		cp, width := Charset_binary{}.DecodeRune([]byte{byte(b)})
		require.Equal(t, rune(b), cp)
		require.Equal(t, 1, width)
		require.Equal(t, 1, Charset_binary{}.EncodeRune(buf[:], cp))
		require.Equal(t, byte(b), buf[0])
	}
	assert.Equal(t, -1, Charset_binary{}.EncodeRune(buf[:], 0x100))
	assert.Equal(t, -1, Charset_binary{}.EncodeRune(buf[:], -1))
	assert.True(t, Charset_binary{}.IsSuperset(Charset_cp437))
}
