package utils

import "golang.org/x/crypto/bcrypt"

// HashPassword hashes an account password for users.password_hash.  Staff
// and self-registered guests always have one; walk-in guests are created
// by the front desk without a password and store NULL instead.
func HashPassword(plain string, cost int) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plain), cost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// VerifyPassword reports whether plain matches the stored hash.  A nil or
// empty hash belongs to a walk-in guest who cannot log in, so it never
// matches.
func VerifyPassword(hash *string, plain string) bool {
	if hash == nil || *hash == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(*hash), []byte(plain)) == nil
}
