package password

import (
	"golang.org/x/crypto/bcrypt"
)

const DefaultCost = 10

// Bcrypt implementa users.PasswordHasher.
type Bcrypt struct {
	Cost int
}

func NewBcrypt(cost int) *Bcrypt {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = DefaultCost
	}
	return &Bcrypt{Cost: cost}
}

func (b *Bcrypt) Hash(password string) (string, error) {
	h, err := bcrypt.GenerateFromPassword([]byte(password), b.Cost)
	if err != nil {
		return "", err
	}
	return string(h), nil
}

func (b *Bcrypt) Compare(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}
