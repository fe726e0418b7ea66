package eightbit

import (
	"unicode/utf8"

	"github.com/textcodec/charset/types"
)

// Charset_binary is the identity charset: every byte is its own code
// point. It is a superset of every encoding, since it accepts any byte
// sequence verbatim.
type Charset_binary struct{}

func (Charset_binary) Name() string {
	return "binary"
}

func (Charset_binary) IsSuperset(_ types.Charset) bool {
	return true
}

func (Charset_binary) SupportsSupplementaryChars() bool {
	return true
}

func (Charset_binary) EncodeRune(dst []byte, r rune) int {
	if uint32(r) > 0xFF {
		return -1
	}
	dst[0] = byte(r)
	return 1
}

func (Charset_binary) DecodeRune(bytes []byte) (rune, int) {
	if len(bytes) < 1 {
		return utf8.RuneError, 0
	}
	return rune(bytes[0]), 1
}

func (Charset_binary) MaxWidth() int {
	return 1
}

func (Charset_binary) Convert(_, in []byte, _ types.Charset) ([]byte, error) {
	return in, nil
}
