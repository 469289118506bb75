package updateprofile

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
	EMAIL        = c.Email("test@test.test")
	NEW_NAME     = "New Name"
	NEW_PASSWORD = user.RawPassword("new-password")
)

var NOW time.Time = time.Now().UTC()

type testSuite struct {
	suite.Suite
	Logger         *logging.FakeLogger
	UserRepository *user.FakeUserRepository
	PasswordHasher *user.FakePasswordHasher
	Service        services.Service[Input, Result]
}

func (suite *testSuite) SetupTest() {
	suite.Logger = logging.NewFakeLogger()
	suite.UserRepository = user.NewFakeUserRepository()
	suite.PasswordHasher = user.NewFakePasswordHasher()
	suite.Service = New(
		suite.Logger,
		suite.UserRepository,
		suite.PasswordHasher,
	)
}

func TestUpdateProfileService(t *testing.T) {
	suite.Run(t, new(testSuite))
}

func (suite *testSuite) createUser() user.User {
	u, err := suite.UserRepository.Create(
		context.Background(),
		user.CreateUserInput{
			Email:        EMAIL,
			Name:         "Test User",
			PasswordHash: user.PasswordHash("old-password-hash"),
			CreatedAt:    NOW,
		},
	)
	suite.Require().Nil(err)
	return u
}

func (suite *testSuite) TestNameUpdated() {
	u := suite.createUser()

	result, err := suite.Service.Run(
		context.Background(),
		Input{User: u, DoNameUpdate: true, Name: NEW_NAME},
	)

	assert := suite.Require()
	assert.Nil(err)
	assert.Equal(NEW_NAME, result.User.Name)
	assert.Equal(user.PasswordHash("old-password-hash"), result.User.PasswordHash)
}

func (suite *testSuite) TestPasswordUpdated() {
	u := suite.createUser()

	result, err := suite.Service.Run(
		context.Background(),
		Input{User: u, DoPasswordUpdate: true, NewPassword: NEW_PASSWORD},
	)

	assert := suite.Require()
	assert.Nil(err)
	assert.Equal(u.Name, result.User.Name)
	assert.True(suite.PasswordHasher.ValidatePassword(NEW_PASSWORD, result.User.PasswordHash))
}

func (suite *testSuite) TestNameAndPasswordUpdated() {
	u := suite.createUser()

	result, err := suite.Service.Run(
		context.Background(),
		Input{
			User:             u,
			DoNameUpdate:     true,
			Name:             NEW_NAME,
			DoPasswordUpdate: true,
			NewPassword:      NEW_PASSWORD,
		},
	)

	assert := suite.Require()
	assert.Nil(err)
	assert.Equal(NEW_NAME, result.User.Name)
	assert.True(suite.PasswordHasher.ValidatePassword(NEW_PASSWORD, result.User.PasswordHash))
}

func (suite *testSuite) TestUserDoesNotExist() {
	_, err := suite.Service.Run(
		context.Background(),
		Input{User: user.User{ID: user.ID(111)}, DoNameUpdate: true, Name: NEW_NAME},
	)

	assert := suite.Require()
	assert.NotNil(err)
	assert.True(errors.Is(err, user.ErrUserDoesNotExist))
}
