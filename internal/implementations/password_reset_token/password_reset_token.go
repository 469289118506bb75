package passwordresettoken

import (
	"crypto/rand"
	"encoding/hex"
	"taskhub/internal/core/domain/user"
)

const tokenByteLen = 20

// Generator produces hex-encoded tokens with 160 bits of entropy.
type Generator struct{}

func NewGenerator() *Generator {
	return &Generator{}
}

func (g *Generator) GeneratePasswordResetToken() user.PasswordResetToken {
	b := make([]byte, tokenByteLen)
	if _, err := rand.Read(b); err != nil {
		panic(err)
	}
	return user.PasswordResetToken(hex.EncodeToString(b))
}
