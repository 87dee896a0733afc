package utilities

import "golang.org/x/crypto/bcrypt"

// HashPassword hashes the given plain password with bcrypt at the default
// cost. Each call salts independently, equal inputs produce distinct hashes.
func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// VerifyPassword reports whether the plain password matches the stored
// bcrypt hash. The comparison inside bcrypt is constant time.
func VerifyPassword(password, hashedPassword string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password)) == nil
}
