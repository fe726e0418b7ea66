package charset

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

// ErrInvalidSequence reports a byte sequence that cannot form a valid
// unit in the source charset. Its value is the byte offset of the
// offending sequence.
type ErrInvalidSequence int

func (e ErrInvalidSequence) Error() string {
	return fmt.Sprintf("invalid byte sequence at offset %d", int(e))
}

// ErrUnencodable is returned when a code point has no representation in
// the destination charset.
var ErrUnencodable = errors.New("cannot encode all codepoints in this encoding")

// Convertible charsets supply their own whole-buffer conversion instead
// of the generic per-rune loop.
type Convertible interface {
	Charset
	Convert(dst, src []byte, from Charset) ([]byte, error)
}

// bulkEncoder charsets can encode a whole valid UTF-8 buffer in one
// pass; the UTF-16 variants do this through x/text.
type bulkEncoder interface {
	EncodeFromUTF8(in []byte) ([]byte, error)
}

// Convert transforms `src`, encoded with Charset `srcCharset`, and
// changes its encoding so that it becomes encoded with `dstCharset`.
// The result is appended to `dst` if `dst` is not nil; otherwise
// a new byte slice will be allocated to store the result.
//
// A malformed sequence in `src` yields ErrInvalidSequence; a code point
// with no representation in `dstCharset` yields ErrUnencodable. Convert
// introduces no error kinds of its own.
func Convert(dst []byte, dstCharset Charset, src []byte, srcCharset Charset) ([]byte, error) {
	if dstCharset.IsSuperset(srcCharset) {
		return src, nil
	}
	if trans, ok := dstCharset.(Convertible); ok {
		return trans.Convert(dst, src, srcCharset)
	}
	switch srcCharset.(type) {
	case Charset_utf8:
		return convertFromUTF8(dst, dstCharset, src)
	default:
		if _, ok := dstCharset.(Charset_utf8); ok {
			return convertToUTF8(dst, src, srcCharset)
		}
		return convertSlow(dst, dstCharset, src, srcCharset)
	}
}

// convertFromUTF8 iterates the source code points with the bulk UTF-8
// primitive. The validity gate keeps the fast path's failure behavior
// identical to the per-rune loop: a malformed sequence is a recoverable
// error, never a silent U+FFFD substitution.
func convertFromUTF8(dst []byte, dstCharset Charset, src []byte) ([]byte, error) {
	if !utf8.Valid(src) {
		return nil, ErrInvalidSequence(invalidOffset(src))
	}
	if bulk, ok := dstCharset.(bulkEncoder); ok && dst == nil {
		return bulk.EncodeFromUTF8(src)
	}
	if dst == nil {
		dst = make([]byte, 0, len(src)*dstCharset.MaxWidth())
	}
	var scratch [4]byte
	for _, cp := range string(src) {
		w := dstCharset.EncodeRune(scratch[:], cp)
		if w < 0 {
			return nil, ErrUnencodable
		}
		dst = append(dst, scratch[:w]...)
	}
	return dst, nil
}

func convertToUTF8(dst []byte, src []byte, srcCharset Charset) ([]byte, error) {
	if dst == nil {
		dst = make([]byte, 0, len(src)*utf8.UTFMax)
	}
	pos := 0
	for pos < len(src) {
		cp, width := srcCharset.DecodeRune(src[pos:])
		if cp == RuneError && width < 2 {
			return nil, ErrInvalidSequence(pos)
		}
		dst = utf8.AppendRune(dst, cp)
		pos += width
	}
	return dst, nil
}

func convertSlow(dst []byte, dstCharset Charset, src []byte, srcCharset Charset) ([]byte, error) {
	if dst == nil {
		dst = make([]byte, 0, len(src)*dstCharset.MaxWidth())
	}
	var scratch [4]byte
	pos := 0
	for pos < len(src) {
		cp, width := srcCharset.DecodeRune(src[pos:])
		if cp == RuneError && width < 2 {
			return nil, ErrInvalidSequence(pos)
		}
		w := dstCharset.EncodeRune(scratch[:], cp)
		if w < 0 {
			return nil, ErrUnencodable
		}
		dst = append(dst, scratch[:w]...)
		pos += width
	}
	return dst, nil
}

// invalidOffset returns the offset of the first malformed UTF-8
// sequence in p. A genuine U+FFFD decodes with width 3 and is skipped.
func invalidOffset(p []byte) int {
	pos := 0
	for pos < len(p) {
		cp, width := utf8.DecodeRune(p[pos:])
		if cp == utf8.RuneError && width < 3 {
			return pos
		}
		pos += width
	}
	return pos
}

// UTF16ToUTF8 converts a little-endian UTF-16 buffer to UTF-8.
func UTF16ToUTF8(src []byte) ([]byte, error) {
	return Convert(nil, Charset_utf8{}, src, Charset_utf16le{})
}

// UTF8ToUTF16 converts a UTF-8 buffer to little-endian UTF-16.
func UTF8ToUTF16(src []byte) ([]byte, error) {
	return Convert(nil, Charset_utf16le{}, src, Charset_utf8{})
}
