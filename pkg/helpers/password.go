package helpers

import "golang.org/x/crypto/bcrypt"

// bcrypt work factor; DefaultCost keeps login latency in the tens of
// milliseconds while staying resistant to offline cracking.
const passwordHashCost = bcrypt.DefaultCost

// HashPassword derives a bcrypt hash from the plain-text password.
func HashPassword(plain string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plain), passwordHashCost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// CompareHashAndPassword reports whether plain matches the stored hash.
func CompareHashAndPassword(hash, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
