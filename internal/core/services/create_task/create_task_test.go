package createtask

import (
	"context"
	c "taskhub/internal/core/domain/common"
	"taskhub/internal/core/domain/logging"
	"taskhub/internal/core/domain/task"
	"taskhub/internal/core/domain/user"
	"taskhub/internal/core/services"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

const (
	USER_ID = user.ID(1)
	TITLE   = "Test task"
)

var NOW time.Time = time.Now().UTC()

type testSuite struct {
	suite.Suite
	Logger         *logging.FakeLogger
	TaskRepository *task.FakeTaskRepository
	Service        services.Service[Input, Result]
}

func (suite *testSuite) SetupTest() {
	suite.Logger = logging.NewFakeLogger()
	suite.TaskRepository = task.NewFakeTaskRepository()
	suite.Service = New(
		suite.Logger,
		suite.TaskRepository,
		func() time.Time { return NOW },
	)
}

func TestCreateTaskService(t *testing.T) {
	suite.Run(t, new(testSuite))
}

func (suite *testSuite) TestSuccess() {
	result, err := suite.Service.Run(
		context.Background(),
		Input{
			User:        user.User{ID: USER_ID},
			Title:       TITLE,
			Description: c.NewOptional("Test description", true),
		},
	)

	assert := suite.Require()
	assert.Nil(err)
	assert.NotEqual(task.ID(0), result.Task.ID)
	assert.Equal(USER_ID, result.Task.CreatedBy)
	assert.Equal(TITLE, result.Task.Title)
	assert.True(result.Task.Description.IsPresent)
	assert.Equal("Test description", result.Task.Description.Value)
	assert.Equal(NOW, result.Task.CreatedAt)
}

func (suite *testSuite) TestSuccessWithoutDescription() {
	result, err := suite.Service.Run(
		context.Background(),
		Input{User: user.User{ID: USER_ID}, Title: TITLE},
	)

	assert := suite.Require()
	assert.Nil(err)
	assert.Equal(TITLE, result.Task.Title)
	assert.False(result.Task.Description.IsPresent)
}

func (suite *testSuite) TestRepositoryError() {
	suite.TaskRepository.ReturnError = true

	_, err := suite.Service.Run(
		context.Background(),
		Input{User: user.User{ID: USER_ID}, Title: TITLE},
	)

	suite.Require().NotNil(err)
}
