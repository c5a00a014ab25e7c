package fileops

import (
	"crypto/rand"
	"math/big"
	"strings"

	cerr "github.com/cockroachdb/errors"
	"github.com/google/uuid"
)

// tokenCharset is lower case only so suffixes stay distinct on
// case-insensitive filesystems.
const tokenCharset = "abcdefghijklmnopqrstuvwxyz0123456789"

// TokenSource returns a fresh random suffix on every call.
type TokenSource func() (string, error)

// AlphanumericTokens returns tokens of n characters from [a-z0-9].
func AlphanumericTokens(n int) TokenSource {
	return func() (string, error) {
		if n <= 0 {
			return "", cerr.Newf("token length must be positive, got %d", n)
		}
		b := make([]byte, n)
		for i := range b {
			c, err := randomChar(tokenCharset)
			if err != nil {
				return "", cerr.Wrap(err, "generate random token")
			}
			b[i] = c
		}
		return string(b), nil
	}
}

// UUIDTokens returns the first n hex digits of a random (v4) UUID, n <= 32.
func UUIDTokens(n int) TokenSource {
	return func() (string, error) {
		if n <= 0 || n > 32 {
			return "", cerr.Newf("uuid token length must be within 1..32, got %d", n)
		}
		id, err := uuid.NewRandom()
		if err != nil {
			return "", cerr.Wrap(err, "generate uuid token")
		}
		return strings.ReplaceAll(id.String(), "-", "")[:n], nil
	}
}

func randomChar(charset string) (byte, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(int64(len(charset))))
	if err != nil {
		return 0, err
	}
	return charset[n.Int64()], nil
}
