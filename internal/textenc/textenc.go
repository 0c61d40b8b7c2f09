// Package textenc decodes raw payment-file bytes into text. The export
// format carries no encoding declaration, so the charset is inferred from
// byte statistics before decoding.
package textenc

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/saintfish/chardet"
	"golang.org/x/text/encoding/ianaindex"
)

// ErrUndecodable marks input whose bytes could not be decoded to text.
// Callers must abort the import: parsing a mis-decoded file yields garbage
// rows instead of a diagnosable error.
var ErrUndecodable = errors.New("file content is not decodable text")

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Decode infers the text encoding of raw and decodes it. Valid UTF-8 is
// passed through (after BOM stripping) without running the detector.
func Decode(raw []byte) (string, error) {
	raw = bytes.TrimPrefix(raw, utf8BOM)
	if utf8.Valid(raw) {
		return string(raw), nil
	}

	result, err := chardet.NewTextDetector().DetectBest(raw)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUndecodable, err)
	}

	enc, err := ianaindex.IANA.Encoding(result.Charset)
	if err != nil || enc == nil {
		return "", fmt.Errorf("%w: unsupported charset %q", ErrUndecodable, result.Charset)
	}

	decoded, err := enc.NewDecoder().Bytes(raw)
	if err != nil {
		return "", fmt.Errorf("%w: decoding as %s: %v", ErrUndecodable, result.Charset, err)
	}

	text := string(decoded)
	if strings.ContainsRune(text, utf8.RuneError) {
		return "", fmt.Errorf("%w: undecodable bytes under inferred charset %s", ErrUndecodable, result.Charset)
	}
	return text, nil
}
