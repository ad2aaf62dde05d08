package password

import "golang.org/x/crypto/bcrypt"

// DefaultCost is the bcrypt cost used for all stored hashes.
const DefaultCost = 12

// MinLength is the minimum accepted password length.
const MinLength = 8

// Hash hashes a plaintext password with bcrypt.
func Hash(plain string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plain), DefaultCost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Verify reports whether plain matches the stored hash.
func Verify(plain, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
