// Package textenc decodes raw document bytes into UTF-8 text, sniffing
// the source charset. Detection is best-effort and never a hard
// dependency of anything downstream: undetectable input degrades to a
// raw pass-through rather than an error.
package textenc

import (
	"unicode/utf8"

	"golang.org/x/net/html/charset"
	"golang.org/x/text/encoding"
	"golang.org/x/text/transform"
)

// Decode converts raw bytes into a UTF-8 string. Valid UTF-8 passes
// through untouched; everything else goes through charset detection
// (which defaults to windows-1252 when nothing identifies the
// encoding). Decode never fails; if the transform breaks the bytes are
// returned as-is.
func Decode(raw []byte) string {
	if utf8.Valid(raw) {
		return string(raw)
	}
	enc, _, _ := charset.DetermineEncoding(raw, "")
	return decodeWith(enc, raw)
}

// DecodeResponse converts an HTTP response body into a UTF-8 string.
// A charset declared in the Content-Type header (or a BOM) wins over
// sniffing; without one the body goes through Decode.
func DecodeResponse(raw []byte, contentType string) string {
	enc, _, certain := charset.DetermineEncoding(raw, contentType)
	if !certain {
		return Decode(raw)
	}
	return decodeWith(enc, raw)
}

func decodeWith(enc encoding.Encoding, raw []byte) string {
	out, _, err := transform.Bytes(enc.NewDecoder(), raw)
	if err != nil {
		return string(raw)
	}
	return string(out)
}
