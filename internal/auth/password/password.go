// Package password wraps bcrypt hashing for admin credentials.
package password

import "golang.org/x/crypto/bcrypt"

// Hash derives a bcrypt hash from a plaintext password.
func Hash(plain string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// Compare checks a plaintext password against a stored hash.
func Compare(hash, plain string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain))
}
