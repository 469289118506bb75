package sendpasswordresettoken

import (
	"context"
	"errors"
	c "taskhub/internal/core/domain/common"
	"taskhub/internal/core/domain/logging"
	"taskhub/internal/core/domain/user"
	"taskhub/internal/core/services"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

const (
	EMAIL                = c.Email("test@test.test")
	PASSWORD_RESET_TOKEN = "test-password-reset-token"
	VALID_DURATION       = time.Hour
)

var NOW time.Time = time.Now().UTC()

type testSuite struct {
	suite.Suite
	Logger         *logging.FakeLogger
	UserRepository *user.FakeUserRepository
	TokenGenerator *user.FakePasswordResetTokenGenerator
	TokenSender    *user.FakePasswordResetTokenSender
	Service        services.Service[Input, Result]
}

func (suite *testSuite) SetupTest() {
	suite.Logger = logging.NewFakeLogger()
	suite.UserRepository = user.NewFakeUserRepository()
	suite.TokenGenerator = user.NewFakePasswordResetTokenGenerator(PASSWORD_RESET_TOKEN)
	suite.TokenSender = user.NewFakePasswordResetTokenSender()
	suite.Service = New(
		suite.Logger,
		suite.UserRepository,
		suite.TokenGenerator,
		suite.TokenSender,
		VALID_DURATION,
		func() time.Time { return NOW },
	)
}

func TestSendPasswordResetTokenService(t *testing.T) {
	suite.Run(t, new(testSuite))
}

func (suite *testSuite) createUser() user.User {
	u, err := suite.UserRepository.Create(
		context.Background(),
		user.CreateUserInput{
			Email:        EMAIL,
			Name:         "Test User",
			PasswordHash: user.PasswordHash("test"),
			CreatedAt:    NOW,
		},
	)
	suite.Require().Nil(err)
	return u
}

func (suite *testSuite) TestSuccess() {
	u := suite.createUser()

	_, err := suite.Service.Run(context.Background(), Input{Email: EMAIL})

	assert := suite.Require()
	assert.Nil(err)
	assert.Equal(1, suite.TokenSender.SentCount())
	assert.Equal(user.PasswordResetToken(PASSWORD_RESET_TOKEN), suite.TokenSender.Sent[0])
	assert.Equal(u.ID, suite.TokenSender.SentTo[0].ID)

	storedUser, err := suite.UserRepository.GetByID(context.Background(), u.ID)
	assert.Nil(err)
	assert.True(storedUser.PasswordResetToken.IsPresent)
	assert.Equal(user.PasswordResetToken(PASSWORD_RESET_TOKEN), storedUser.PasswordResetToken.Value)
	assert.True(storedUser.PasswordResetExpiresAt.IsPresent)
	assert.Equal(NOW.Add(VALID_DURATION), storedUser.PasswordResetExpiresAt.Value)
}

func (suite *testSuite) TestUserDoesNotExist() {
	_, err := suite.Service.Run(context.Background(), Input{Email: EMAIL})

	assert := suite.Require()
	assert.NotNil(err)
	assert.True(errors.Is(err, user.ErrUserDoesNotExist))
	assert.Equal(0, suite.TokenSender.SentCount())
}

func (suite *testSuite) TestTokenOverwritesEarlierOne() {
	u := suite.createUser()
	err := suite.UserRepository.SetPasswordResetToken(
		context.Background(),
		u.ID,
		user.PasswordResetToken("earlier-token"),
		NOW.Add(time.Minute),
	)
	suite.Require().Nil(err)

	_, err = suite.Service.Run(context.Background(), Input{Email: EMAIL})

	assert := suite.Require()
	assert.Nil(err)
	storedUser, err := suite.UserRepository.GetByID(context.Background(), u.ID)
	assert.Nil(err)
	assert.Equal(user.PasswordResetToken(PASSWORD_RESET_TOKEN), storedUser.PasswordResetToken.Value)
}

func (suite *testSuite) TestSendingError() {
	suite.createUser()
	suite.TokenSender.ReturnError = true

	_, err := suite.Service.Run(context.Background(), Input{Email: EMAIL})

	assert := suite.Require()
	assert.NotNil(err)
	assert.Equal(0, suite.TokenSender.SentCount())
}
