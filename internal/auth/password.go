package auth

import "golang.org/x/crypto/bcrypt"

// HashPassword is the only place a plaintext password is turned into what
// gets stored; the plaintext itself is never persisted or logged.
func HashPassword(p string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(p), bcrypt.DefaultCost)
	return string(b), err
}

func VerifyPassword(plain, hash string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain))
}
