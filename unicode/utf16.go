package unicode

import (
	"golang.org/x/text/encoding/unicode"

	"github.com/textcodec/charset/types"
)

// 0xd800-0xdc00 encodes the high 10 bits of a pair.
// 0xdc00-0xe000 encodes the low 10 bits of a pair.
// the value is those 20 bits plus 0x10000.
const (
	surr1    = 0xd800
	surr2    = 0xdc00
	surr3    = 0xe000
	surrSelf = 0x10000

	maxRune = '\U0010FFFF'
)

var (
	utf16LittleEndian = unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)
	utf16BigEndian    = unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM)
)

type Charset_utf16le struct{}

func (Charset_utf16le) Name() string {
	return "utf-16le"
}

func (Charset_utf16le) IsSuperset(other types.Charset) bool {
	switch other.(type) {
	case Charset_utf16le:
		return true
	default:
		return false
	}
}

func (Charset_utf16le) SupportsSupplementaryChars() bool {
	return true
}

func (Charset_utf16le) EncodeRune(dst []byte, r rune) int {
	if uint32(r) > maxRune {
		return -1
	}
	if r <= 0xFFFF {
		// Surrogate-range values are emitted as-is; the caller gets a
		// single unpaired unit back when decoding them.
		dst[0], dst[1] = byte(r), byte(r>>8)
		return 2
	}
	r -= surrSelf
	hi, lo := surr1+(r>>10), surr2+(r&0x3FF)
	dst[0], dst[1] = byte(hi), byte(hi>>8)
	dst[2], dst[3] = byte(lo), byte(lo>>8)
	return 4
}

// DecodeRune treats any leading unit in the surrogate block as the high
// half of a pair and combines it with the following unit without
// validating it. Lone or out-of-order surrogates therefore decode to a
// nonsensical code point instead of failing; only a truncated buffer
// yields (RuneError, 0).
func (Charset_utf16le) DecodeRune(p []byte) (rune, int) {
	if len(p) < 2 {
		return RuneError, 0
	}
	r1 := rune(p[0]) | rune(p[1])<<8
	if r1 < surr1 || surr3 <= r1 {
		return r1, 2
	}
	if len(p) < 4 {
		return RuneError, 0
	}
	r2 := rune(p[2]) | rune(p[3])<<8
	return surrSelf + (r1-surr1)<<10 + (r2 - surr2), 4
}

func (Charset_utf16le) MaxWidth() int {
	return 4
}

func (Charset_utf16le) EncodeFromUTF8(in []byte) ([]byte, error) {
	return utf16LittleEndian.NewEncoder().Bytes(in)
}

type Charset_utf16be struct{}

func (Charset_utf16be) Name() string {
	return "utf-16be"
}

func (Charset_utf16be) IsSuperset(other types.Charset) bool {
	switch other.(type) {
	case Charset_utf16be:
		return true
	default:
		return false
	}
}

func (Charset_utf16be) SupportsSupplementaryChars() bool {
	return true
}

func (Charset_utf16be) EncodeRune(dst []byte, r rune) int {
	if uint32(r) > maxRune {
		return -1
	}
	if r <= 0xFFFF {
		dst[0], dst[1] = byte(r>>8), byte(r)
		return 2
	}
	r -= surrSelf
	hi, lo := surr1+(r>>10), surr2+(r&0x3FF)
	dst[0], dst[1] = byte(hi>>8), byte(hi)
	dst[2], dst[3] = byte(lo>>8), byte(lo)
	return 4
}

// DecodeRune has the same unpaired-surrogate behavior as the
// little-endian variant.
func (Charset_utf16be) DecodeRune(p []byte) (rune, int) {
	if len(p) < 2 {
		return RuneError, 0
	}
	r1 := rune(p[0])<<8 | rune(p[1])
	if r1 < surr1 || surr3 <= r1 {
		return r1, 2
	}
	if len(p) < 4 {
		return RuneError, 0
	}
	r2 := rune(p[2])<<8 | rune(p[3])
	return surrSelf + (r1-surr1)<<10 + (r2 - surr2), 4
}

func (Charset_utf16be) MaxWidth() int {
	return 4
}

func (Charset_utf16be) EncodeFromUTF8(in []byte) ([]byte, error) {
	return utf16BigEndian.NewEncoder().Bytes(in)
}
