// Package charset converts byte buffers between a small set of fixed
// text encodings (UTF-8, UTF-16 in either byte order, CP437 and raw
// binary) and heuristically detects the encoding of a buffer. All
// operations are pure functions over their arguments and are safe for
// concurrent use.
package charset

import (
	"unicode/utf8"

	"github.com/textcodec/charset/eightbit"
	"github.com/textcodec/charset/types"
	"github.com/textcodec/charset/unicode"
)

type Charset = types.Charset

type Charset_utf8 = unicode.Charset_utf8
type Charset_utf16le = unicode.Charset_utf16le
type Charset_utf16be = unicode.Charset_utf16be
type Charset_binary = eightbit.Charset_binary
type Charset_8bit = eightbit.Charset_8bit

// Charset_cp437 is IBM Code Page 437.
var Charset_cp437 = eightbit.Charset_cp437

const RuneError = utf8.RuneError
