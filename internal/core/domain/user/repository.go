package user

import (
	"context"
	c "taskhub/internal/core/domain/common"
	"time"
)

type CreateUserInput struct {
	Email        c.Email
	Name         string
	PasswordHash PasswordHash
	CreatedAt    time.Time
}

type UpdateUserInput struct {
	ID               ID
	DoNameUpdate     bool
	Name             string
	DoPasswordUpdate bool
	PasswordHash     PasswordHash
}

type UserRepository interface {
	Create(ctx context.Context, input CreateUserInput) (User, error)
	GetByID(ctx context.Context, id ID) (User, error)
	GetByEmail(ctx context.Context, email c.Email) (User, error)
	Update(ctx context.Context, input UpdateUserInput) (User, error)

	// GetByPasswordResetToken locks the matched row when called within
	// a transaction.
	GetByPasswordResetToken(ctx context.Context, token PasswordResetToken) (User, error)
	SetPasswordResetToken(ctx context.Context, id ID, token PasswordResetToken, expiresAt time.Time) error
	ClearPasswordResetToken(ctx context.Context, id ID) error
	// ConsumePasswordResetToken sets the new password hash and clears the
	// reset token in a single statement keyed by the exact token value.
	// Returns ErrInvalidPasswordResetToken if no row holds the token.
	ConsumePasswordResetToken(ctx context.Context, token PasswordResetToken, password PasswordHash) error
}
