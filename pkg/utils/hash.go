package utils

import (
	"golang.org/x/crypto/bcrypt"
)

// HashCode hashes a plain access code using bcrypt.
func HashCode(code string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(code), bcrypt.DefaultCost)
	return string(bytes), err
}

// CheckCode compares a plain access code with its bcrypt hash.
func CheckCode(plain, hashed string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain))
	return err == nil
}
