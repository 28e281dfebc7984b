package utils

import (
	"os"
	"strconv"

	"golang.org/x/crypto/bcrypt"
)

func bcryptCost() int {
	if v, err := strconv.Atoi(os.Getenv("BCRYPT_COST")); err == nil && v >= bcrypt.MinCost && v <= bcrypt.MaxCost {
		return v
	}
	return bcrypt.DefaultCost
}

func HashPassword(password string) ([]byte, error) {
	return bcrypt.GenerateFromPassword([]byte(password), bcryptCost())
}

func ComparePassword(hashed string, plain string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain))
}
