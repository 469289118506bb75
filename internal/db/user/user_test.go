package user

import (
	"context"
	c "taskhub/internal/core/domain/common"
	"taskhub/internal/core/domain/user"
	"taskhub/internal/db"
	"testing"
	"time"

	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/stretchr/testify/suite"
)

const (
	EMAIL                = "test@test.test"
	NAME                 = "Test User"
	PASSWORD_HASH        = "test-password-hash"
	PASSWORD_RESET_TOKEN = "test-password-reset-token"
)

var NOW time.Time = time.Date(2020, 6, 6, 15, 30, 30, 0, time.UTC)

type testSuite struct {
	suite.Suite
	pool *pgxpool.Pool
	repo *PgxUserRepository
}

func (suite *testSuite) SetupSuite() {
	suite.pool = db.CreateTestPool()
	suite.repo = NewPgxRepository(suite.pool)
}

func (suite *testSuite) TearDownSuite() {
	suite.pool.Close()
}

func (suite *testSuite) TearDownTest() {
	db.TruncateTables(suite.pool)
}

func TestPgxUserRepository(t *testing.T) {
	suite.Run(t, new(testSuite))
}

func (suite *testSuite) createUser() user.User {
	u, err := suite.repo.Create(
		context.Background(),
		user.CreateUserInput{
			Email:        c.Email(EMAIL),
			Name:         NAME,
			PasswordHash: user.PasswordHash(PASSWORD_HASH),
			CreatedAt:    NOW,
		},
	)
	suite.Require().Nil(err)
	return u
}

func (suite *testSuite) TestCreateSuccess() {
	u := suite.createUser()

	assert := suite.Require()
	assert.NotEqual(user.ID(0), u.ID)
	assert.Equal(c.Email(EMAIL), u.Email)
	assert.Equal(NAME, u.Name)
	assert.Equal(user.PasswordHash(PASSWORD_HASH), u.PasswordHash)
	assert.True(NOW.Equal(u.CreatedAt))
	assert.False(u.PasswordResetToken.IsPresent)
	assert.False(u.PasswordResetExpiresAt.IsPresent)
}

func (suite *testSuite) TestEmailAlreadyExistsError() {
	suite.createUser()

	_, err := suite.repo.Create(
		context.Background(),
		user.CreateUserInput{
			Email:        c.Email(EMAIL),
			Name:         "Another User",
			PasswordHash: user.PasswordHash("another-hash"),
			CreatedAt:    NOW,
		},
	)

	suite.Require().ErrorIs(err, user.ErrEmailAlreadyExists)
}

func (suite *testSuite) TestGetByID() {
	created := suite.createUser()

	u, err := suite.repo.GetByID(context.Background(), created.ID)

	assert := suite.Require()
	assert.Nil(err)
	assert.Equal(created.ID, u.ID)
	assert.Equal(created.Email, u.Email)
}

func (suite *testSuite) TestGetByIDNotFound() {
	_, err := suite.repo.GetByID(context.Background(), user.ID(111))

	suite.Require().ErrorIs(err, user.ErrUserDoesNotExist)
}

func (suite *testSuite) TestGetByEmail() {
	created := suite.createUser()

	u, err := suite.repo.GetByEmail(context.Background(), c.Email(EMAIL))

	assert := suite.Require()
	assert.Nil(err)
	assert.Equal(created.ID, u.ID)
}

func (suite *testSuite) TestGetByEmailNotFound() {
	_, err := suite.repo.GetByEmail(context.Background(), c.Email("unknown@test.test"))

	suite.Require().ErrorIs(err, user.ErrUserDoesNotExist)
}

func (suite *testSuite) TestUpdateName() {
	created := suite.createUser()

	u, err := suite.repo.Update(
		context.Background(),
		user.UpdateUserInput{ID: created.ID, DoNameUpdate: true, Name: "New Name"},
	)

	assert := suite.Require()
	assert.Nil(err)
	assert.Equal("New Name", u.Name)
	assert.Equal(created.PasswordHash, u.PasswordHash)
}

func (suite *testSuite) TestUpdatePassword() {
	created := suite.createUser()

	u, err := suite.repo.Update(
		context.Background(),
		user.UpdateUserInput{
			ID:               created.ID,
			DoPasswordUpdate: true,
			PasswordHash:     user.PasswordHash("new-password-hash"),
		},
	)

	assert := suite.Require()
	assert.Nil(err)
	assert.Equal(created.Name, u.Name)
	assert.Equal(user.PasswordHash("new-password-hash"), u.PasswordHash)
}

func (suite *testSuite) TestUpdateNotFound() {
	_, err := suite.repo.Update(
		context.Background(),
		user.UpdateUserInput{ID: user.ID(111), DoNameUpdate: true, Name: "New Name"},
	)

	suite.Require().ErrorIs(err, user.ErrUserDoesNotExist)
}

func (suite *testSuite) TestSetAndGetByPasswordResetToken() {
	created := suite.createUser()
	expiresAt := NOW.Add(time.Hour)

	err := suite.repo.SetPasswordResetToken(
		context.Background(),
		created.ID,
		user.PasswordResetToken(PASSWORD_RESET_TOKEN),
		expiresAt,
	)
	suite.Require().Nil(err)

	u, err := suite.repo.GetByPasswordResetToken(
		context.Background(),
		user.PasswordResetToken(PASSWORD_RESET_TOKEN),
	)

	assert := suite.Require()
	assert.Nil(err)
	assert.Equal(created.ID, u.ID)
	assert.True(u.PasswordResetToken.IsPresent)
	assert.Equal(user.PasswordResetToken(PASSWORD_RESET_TOKEN), u.PasswordResetToken.Value)
	assert.True(u.PasswordResetExpiresAt.IsPresent)
	assert.True(expiresAt.Equal(u.PasswordResetExpiresAt.Value))
}

func (suite *testSuite) TestGetByPasswordResetTokenNotFound() {
	_, err := suite.repo.GetByPasswordResetToken(
		context.Background(),
		user.PasswordResetToken("unknown-token"),
	)

	suite.Require().ErrorIs(err, user.ErrInvalidPasswordResetToken)
}

func (suite *testSuite) TestClearPasswordResetToken() {
	created := suite.createUser()
	err := suite.repo.SetPasswordResetToken(
		context.Background(),
		created.ID,
		user.PasswordResetToken(PASSWORD_RESET_TOKEN),
		NOW.Add(time.Hour),
	)
	suite.Require().Nil(err)

	err = suite.repo.ClearPasswordResetToken(context.Background(), created.ID)

	assert := suite.Require()
	assert.Nil(err)
	u, err := suite.repo.GetByID(context.Background(), created.ID)
	assert.Nil(err)
	assert.False(u.PasswordResetToken.IsPresent)
	assert.False(u.PasswordResetExpiresAt.IsPresent)
}

func (suite *testSuite) TestConsumePasswordResetToken() {
	created := suite.createUser()
	err := suite.repo.SetPasswordResetToken(
		context.Background(),
		created.ID,
		user.PasswordResetToken(PASSWORD_RESET_TOKEN),
		NOW.Add(time.Hour),
	)
	suite.Require().Nil(err)

	err = suite.repo.ConsumePasswordResetToken(
		context.Background(),
		user.PasswordResetToken(PASSWORD_RESET_TOKEN),
		user.PasswordHash("new-password-hash"),
	)

	assert := suite.Require()
	assert.Nil(err)
	u, err := suite.repo.GetByID(context.Background(), created.ID)
	assert.Nil(err)
	assert.Equal(user.PasswordHash("new-password-hash"), u.PasswordHash)
	assert.False(u.PasswordResetToken.IsPresent)
	assert.False(u.PasswordResetExpiresAt.IsPresent)

	err = suite.repo.ConsumePasswordResetToken(
		context.Background(),
		user.PasswordResetToken(PASSWORD_RESET_TOKEN),
		user.PasswordHash("another-hash"),
	)
	assert.ErrorIs(err, user.ErrInvalidPasswordResetToken)
}
