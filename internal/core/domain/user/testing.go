package user

import (
	"context"
	"crypto/md5"
	"fmt"
	"io"
	"sync"
	c "taskhub/internal/core/domain/common"
	"time"
)

type FakePasswordHasher struct{}

func NewFakePasswordHasher() *FakePasswordHasher {
	return &FakePasswordHasher{}
}

func (h *FakePasswordHasher) HashPassword(password RawPassword) (PasswordHash, error) {
	hash := md5.New()
	io.WriteString(hash, string(password))
	return PasswordHash(fmt.Sprintf("%x", hash.Sum(nil))), nil
}

func (h *FakePasswordHasher) ValidatePassword(password RawPassword, hash PasswordHash) bool {
	actualHash, err := h.HashPassword(password)
	if err != nil {
		return false
	}
	return actualHash == hash
}

type FakeSessionManager struct {
	Token       SessionToken
	Claims      SessionClaims
	VerifyError error
	IssueError  error
}

func NewFakeSessionManager(token string) *FakeSessionManager {
	return &FakeSessionManager{Token: SessionToken(token)}
}

func (m *FakeSessionManager) IssueToken(u User, at time.Time) (SessionToken, error) {
	if m.IssueError != nil {
		return SessionToken(""), m.IssueError
	}
	return m.Token, nil
}

func (m *FakeSessionManager) VerifyToken(token SessionToken) (claims SessionClaims, err error) {
	if m.VerifyError != nil {
		return claims, m.VerifyError
	}
	if token != m.Token {
		return claims, ErrInvalidSessionToken
	}
	return m.Claims, nil
}

type FakePasswordResetTokenGenerator struct {
	Token PasswordResetToken
}

func NewFakePasswordResetTokenGenerator(token string) *FakePasswordResetTokenGenerator {
	return &FakePasswordResetTokenGenerator{Token: PasswordResetToken(token)}
}

func (g *FakePasswordResetTokenGenerator) GeneratePasswordResetToken() PasswordResetToken {
	return g.Token
}

type FakePasswordResetTokenSender struct {
	Sent        []PasswordResetToken
	SentTo      []User
	ReturnError bool
	lock        sync.Mutex
}

func NewFakePasswordResetTokenSender() *FakePasswordResetTokenSender {
	return &FakePasswordResetTokenSender{}
}

func (s *FakePasswordResetTokenSender) SendPasswordResetToken(
	ctx context.Context,
	u User,
	token PasswordResetToken,
) error {
	if s.ReturnError {
		return fmt.Errorf("could not send password reset token")
	}
	s.lock.Lock()
	defer s.lock.Unlock()
	s.Sent = append(s.Sent, token)
	s.SentTo = append(s.SentTo, u)
	return nil
}

func (s *FakePasswordResetTokenSender) SentCount() int {
	return len(s.Sent)
}

type FakeUserRepository struct {
	Users       []User
	ReturnError bool
	lock        sync.Mutex
}

func NewFakeUserRepository() *FakeUserRepository {
	return &FakeUserRepository{Users: make([]User, 0, 10)}
}

func (r *FakeUserRepository) Create(ctx context.Context, input CreateUserInput) (u User, err error) {
	if r.ReturnError {
		return u, fmt.Errorf("could not create user %v", input)
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	maxID := ID(0)
	for _, u := range r.Users {
		if u.Email == input.Email {
			return u, ErrEmailAlreadyExists
		}
		maxID = u.ID
	}
	u = User{
		ID:           maxID + 1,
		Email:        input.Email,
		Name:         input.Name,
		PasswordHash: input.PasswordHash,
		CreatedAt:    input.CreatedAt,
	}
	r.Users = append(r.Users, u)
	return u, nil
}

func (r *FakeUserRepository) GetByID(ctx context.Context, id ID) (u User, err error) {
	r.lock.Lock()
	defer r.lock.Unlock()
	for _, u := range r.Users {
		if u.ID == id {
			return u, nil
		}
	}
	return u, ErrUserDoesNotExist
}

func (r *FakeUserRepository) GetByEmail(ctx context.Context, email c.Email) (u User, err error) {
	r.lock.Lock()
	defer r.lock.Unlock()
	for _, u := range r.Users {
		if u.Email == email {
			return u, nil
		}
	}
	return u, ErrUserDoesNotExist
}

func (r *FakeUserRepository) Update(ctx context.Context, input UpdateUserInput) (u User, err error) {
	if r.ReturnError {
		return u, fmt.Errorf("could not update user %v", input)
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	for ix, u := range r.Users {
		if u.ID == input.ID {
			if input.DoNameUpdate {
				r.Users[ix].Name = input.Name
			}
			if input.DoPasswordUpdate {
				r.Users[ix].PasswordHash = input.PasswordHash
			}
			return r.Users[ix], nil
		}
	}
	return u, ErrUserDoesNotExist
}

func (r *FakeUserRepository) GetByPasswordResetToken(
	ctx context.Context,
	token PasswordResetToken,
) (u User, err error) {
	r.lock.Lock()
	defer r.lock.Unlock()
	for _, u := range r.Users {
		if u.PasswordResetToken.IsPresent && u.PasswordResetToken.Value == token {
			return u, nil
		}
	}
	return u, ErrInvalidPasswordResetToken
}

func (r *FakeUserRepository) SetPasswordResetToken(
	ctx context.Context,
	id ID,
	token PasswordResetToken,
	expiresAt time.Time,
) error {
	if r.ReturnError {
		return fmt.Errorf("could not set password reset token")
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	for ix, u := range r.Users {
		if u.ID == id {
			r.Users[ix].PasswordResetToken = c.NewOptional(token, true)
			r.Users[ix].PasswordResetExpiresAt = c.NewOptional(expiresAt, true)
			return nil
		}
	}
	return ErrUserDoesNotExist
}

func (r *FakeUserRepository) ClearPasswordResetToken(ctx context.Context, id ID) error {
	r.lock.Lock()
	defer r.lock.Unlock()
	for ix, u := range r.Users {
		if u.ID == id {
			r.Users[ix].PasswordResetToken = c.NewOptional(PasswordResetToken(""), false)
			r.Users[ix].PasswordResetExpiresAt = c.NewOptional(time.Time{}, false)
			return nil
		}
	}
	return ErrUserDoesNotExist
}

func (r *FakeUserRepository) ConsumePasswordResetToken(
	ctx context.Context,
	token PasswordResetToken,
	password PasswordHash,
) error {
	r.lock.Lock()
	defer r.lock.Unlock()
	for ix, u := range r.Users {
		if u.PasswordResetToken.IsPresent && u.PasswordResetToken.Value == token {
			r.Users[ix].PasswordHash = password
			r.Users[ix].PasswordResetToken = c.NewOptional(PasswordResetToken(""), false)
			r.Users[ix].PasswordResetExpiresAt = c.NewOptional(time.Time{}, false)
			return nil
		}
	}
	return ErrInvalidPasswordResetToken
}
