// Package hex converts between digest bytes and hexadecimal text.
//
// It differs from encoding/hex in two ways: encoding can produce upper case
// digits, and decoding accepts odd-length input by assuming a leading zero
// nibble. Empty text decodes to an empty byte slice.
package hex

import (
	"encoding/hex"
	"strings"

	"github.com/storacha/go-hashfn/core/failure"
)

// Encode returns two hex digits per byte of b.
func Encode(b []byte, upper bool) string {
	s := hex.EncodeToString(b)
	if upper {
		return strings.ToUpper(s)
	}
	return s
}

// Decode parses hexadecimal text of either case.
func Decode(s string) ([]byte, error) {
	if len(s) == 0 {
		return []byte{}, nil
	}
	if len(s)%2 == 1 {
		s = "0" + s
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, failure.NewInvalidArgumentError("hex", err)
	}
	return b, nil
}
