package user

import "context"

type PasswordResetToken string

type PasswordResetTokenGenerator interface {
	GeneratePasswordResetToken() PasswordResetToken
}

type PasswordResetTokenSender interface {
	SendPasswordResetToken(ctx context.Context, u User, token PasswordResetToken) error
}
