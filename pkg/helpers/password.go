package helpers

import "golang.org/x/crypto/bcrypt"

// HashPassword bcrypt-hashes a plain password at the default cost (10).
func HashPassword(plain string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// CompareHashAndPassword reports whether plain matches the stored hash.
func CompareHashAndPassword(hash, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
