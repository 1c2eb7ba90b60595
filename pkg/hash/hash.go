// Package hash wraps credential hashing. The rest of the system only sees the
// opaque credential string and the pass/fail contract of Verify; plaintext
// secrets are never stored or logged.
package hash

import "golang.org/x/crypto/bcrypt"

const bcryptCost = 10

func Password(secret string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(secret), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func Verify(credential, secret string) bool {
	return bcrypt.CompareHashAndPassword([]byte(credential), []byte(secret)) == nil
}
