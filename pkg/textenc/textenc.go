// pkg/textenc/textenc.go

// Package textenc converts between raw bytes and Go strings using the
// character encodings provided by golang.org/x/text.
package textenc

import (
	"strings"

	cerr "github.com/cockroachdb/errors"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/unicode"

	"github.com/CodeMonkeyCybersecurity/helpers/pkg/helper_err"
)

// Default is used whenever no encoding is supplied.
var Default encoding.Encoding = unicode.UTF8

// AsString decodes b with enc. A nil enc means UTF-8; invalid sequences
// become U+FFFD. A nil slice is rejected, an empty one decodes to "".
func AsString(b []byte, enc encoding.Encoding) (string, error) {
	if b == nil {
		return "", helper_err.NewInvalidArgumentError("bytes", "must not be nil")
	}
	if enc == nil {
		enc = Default
	}

	out, err := enc.NewDecoder().Bytes(b)
	if err != nil {
		return "", cerr.Wrap(err, "decode bytes")
	}
	return string(out), nil
}

// AsStringNamed decodes b using the encoding registered under label,
// e.g. "iso-8859-1", "windows-1252" or "utf-16le". An empty label means UTF-8.
func AsStringNamed(b []byte, label string) (string, error) {
	enc, err := Lookup(label)
	if err != nil {
		return "", err
	}
	return AsString(b, enc)
}

// FromString encodes s with enc, defaulting to UTF-8.
func FromString(s string, enc encoding.Encoding) ([]byte, error) {
	if enc == nil {
		enc = Default
	}
	out, err := enc.NewEncoder().Bytes([]byte(s))
	if err != nil {
		return nil, cerr.Wrapf(err, "encode string as %s", Name(enc))
	}
	return out, nil
}

// Lookup resolves a WHATWG/IANA encoding label.
func Lookup(label string) (encoding.Encoding, error) {
	label = strings.TrimSpace(label)
	if label == "" {
		return Default, nil
	}
	enc, err := htmlindex.Get(label)
	if err != nil {
		return nil, helper_err.NewInvalidArgumentError("encoding", "unknown encoding label "+label)
	}
	return enc, nil
}

// Name returns the canonical label of enc, or "unknown".
func Name(enc encoding.Encoding) string {
	if enc == nil {
		enc = Default
	}
	name, err := htmlindex.Name(enc)
	if err != nil {
		return "unknown"
	}
	return name
}
