package listusertasks

import (
	"context"
	"taskhub/internal/core/domain/logging"
	"taskhub/internal/core/domain/task"
	"taskhub/internal/core/domain/user"
	"taskhub/internal/core/services"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

const (
	USER_ID       = user.ID(1)
	OTHER_USER_ID = user.ID(2)
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
	)
}

func TestListUserTasksService(t *testing.T) {
	suite.Run(t, new(testSuite))
}

func (suite *testSuite) createTask(createdBy user.ID, title string, createdAt time.Time) task.Task {
	t, err := suite.TaskRepository.Create(
		context.Background(),
		task.CreateInput{CreatedBy: createdBy, Title: title, CreatedAt: createdAt},
	)
	suite.Require().Nil(err)
	return t
}

func (suite *testSuite) TestNoTasks() {
	result, err := suite.Service.Run(context.Background(), Input{User: user.User{ID: USER_ID}})

	assert := suite.Require()
	assert.Nil(err)
	assert.Len(result.Tasks, 0)
}

func (suite *testSuite) TestReturnsOnlyUserTasks() {
	suite.createTask(USER_ID, "task-1", NOW)
	suite.createTask(OTHER_USER_ID, "task-2", NOW)
	suite.createTask(USER_ID, "task-3", NOW)

	result, err := suite.Service.Run(context.Background(), Input{User: user.User{ID: USER_ID}})

	assert := suite.Require()
	assert.Nil(err)
	assert.Len(result.Tasks, 2)
	for _, t := range result.Tasks {
		assert.Equal(USER_ID, t.CreatedBy)
	}
}

func (suite *testSuite) TestNewestTasksFirst() {
	suite.createTask(USER_ID, "oldest", NOW.Add(-2*time.Hour))
	suite.createTask(USER_ID, "newest", NOW)
	suite.createTask(USER_ID, "middle", NOW.Add(-time.Hour))

	result, err := suite.Service.Run(context.Background(), Input{User: user.User{ID: USER_ID}})

	assert := suite.Require()
	assert.Nil(err)
	assert.Len(result.Tasks, 3)
	assert.Equal("newest", result.Tasks[0].Title)
	assert.Equal("middle", result.Tasks[1].Title)
	assert.Equal("oldest", result.Tasks[2].Title)
}
