package security

import (
	"crypto/rand"
	"errors"
	"math/big"
)

// tempPasswordAlphabet omits look-alike characters (0/O, 1/l/I); the value
// is read out of an email and typed by hand.
const tempPasswordAlphabet = "abcdefghijkmnpqrstuvwxyzABCDEFGHJKLMNPQRSTUVWXYZ23456789"

const tempPasswordLength = 12

// RandomString returns a cryptographically secure, unbiased string of the
// requested length drawn from the given alphabet.
func RandomString(length int, alphabet string) (string, error) {
	if length < 0 {
		return "", errors.New("length must be non-negative")
	}
	if length == 0 {
		return "", nil
	}
	if len(alphabet) == 0 {
		return "", errors.New("alphabet must not be empty")
	}

	max := big.NewInt(int64(len(alphabet)))
	out := make([]byte, length)
	for i := range out {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		out[i] = alphabet[n.Int64()]
	}
	return string(out), nil
}

// TempPassword generates a temporary password for the forgot-password flow.
func TempPassword() (string, error) {
	return RandomString(tempPasswordLength, tempPasswordAlphabet)
}
