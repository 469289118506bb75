package passwordresettoken

import (
	"taskhub/internal/core/domain/user"
	"testing"
)

func TestTokenGenerator(t *testing.T) {
	generator := NewGenerator()
	tokens := make(map[user.PasswordResetToken]struct{})
	for i := 0; i < 100; i++ {
		token := generator.GeneratePasswordResetToken()
		if string(token) == "" {
			t.Fatal("token must not be empty")
		}
		if len(string(token)) != tokenByteLen*2 {
			t.Fatalf("unexpected token length: %v", token)
		}
		if _, ok := tokens[token]; ok {
			t.Fatalf("token %v already exists (%v)", token, tokens)
		}
		tokens[token] = struct{}{}
	}
}
