package auth

import (
	"golang.org/x/crypto/bcrypt"
)

// HashCode создает bcrypt хеш кода подтверждения
func HashCode(code string, cost int) (string, error) {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	bytes, err := bcrypt.GenerateFromPassword([]byte(code), cost)
	return string(bytes), err
}

// CheckCodeHash проверяет код против хеша
func CheckCodeHash(code, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(code)) == nil
}
