package user

import (
	"fmt"
	c "taskhub/internal/core/domain/common"
	e "taskhub/internal/core/domain/errors"
	"time"
)

type ID int64

type PasswordHash string

func (p PasswordHash) String() string {
	return "***"
}

type RawPassword string

func (p RawPassword) String() string {
	return "***"
}

type User struct {
	ID                     ID
	Email                  c.Email
	Name                   string
	PasswordHash           PasswordHash
	CreatedAt              time.Time
	PasswordResetToken     c.Optional[PasswordResetToken]
	PasswordResetExpiresAt c.Optional[time.Time]
}

func (u *User) Validate() error {
	if u.Email == "" {
		return e.NewInvalidStateError(fmt.Sprintf("email is not set for user %d", u.ID))
	}
	if u.PasswordHash == "" {
		return e.NewInvalidStateError(fmt.Sprintf("password hash is not set for user %d", u.ID))
	}
	if u.PasswordResetToken.IsPresent != u.PasswordResetExpiresAt.IsPresent {
		return e.NewInvalidStateError(
			fmt.Sprintf("password reset token and expiry must be set together for user %d", u.ID),
		)
	}
	return nil
}

func (u *User) HasPendingPasswordReset() bool {
	return u.PasswordResetToken.IsPresent
}
