package uow

import (
	"context"
	c "taskhub/internal/core/domain/common"
	"taskhub/internal/core/domain/task"
	"taskhub/internal/core/domain/user"
	"taskhub/internal/db"
	dbuser "taskhub/internal/db/user"
	"testing"
	"time"

	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/stretchr/testify/suite"
)

var NOW time.Time = time.Date(2020, 6, 6, 15, 30, 30, 0, time.UTC)

type testSuite struct {
	suite.Suite
	pool *pgxpool.Pool
	uow  *PgxUnitOfWork
}

func (suite *testSuite) SetupSuite() {
	suite.pool = db.CreateTestPool()
	suite.uow = NewPgxUnitOfWork(suite.pool)
}

func (suite *testSuite) TearDownSuite() {
	suite.pool.Close()
}

func (suite *testSuite) TearDownTest() {
	db.TruncateTables(suite.pool)
}

func TestPgxUnitOfWork(t *testing.T) {
	suite.Run(t, new(testSuite))
}

func (s *testSuite) TestCommitPersistsChanges() {
	ctx := context.Background()
	uow, err := s.uow.Begin(ctx)
	s.Require().Nil(err)
	defer uow.Rollback(ctx)

	createdUser, err := uow.Users().Create(ctx, user.CreateUserInput{
		Email:        c.Email("test@test.test"),
		Name:         "Test User",
		PasswordHash: user.PasswordHash("test"),
		CreatedAt:    NOW,
	})
	s.Require().Nil(err)
	s.Require().Nil(uow.Commit(ctx))

	repo := dbuser.NewPgxRepository(s.pool)
	u, err := repo.GetByID(ctx, createdUser.ID)
	s.Require().Nil(err)
	s.Require().Equal(createdUser.Email, u.Email)
}

func (s *testSuite) TestRollbackDiscardsChanges() {
	ctx := context.Background()
	uow, err := s.uow.Begin(ctx)
	s.Require().Nil(err)

	createdUser, err := uow.Users().Create(ctx, user.CreateUserInput{
		Email:        c.Email("test@test.test"),
		Name:         "Test User",
		PasswordHash: user.PasswordHash("test"),
		CreatedAt:    NOW,
	})
	s.Require().Nil(err)
	s.Require().Nil(uow.Rollback(ctx))

	repo := dbuser.NewPgxRepository(s.pool)
	_, err = repo.GetByID(ctx, createdUser.ID)
	s.Require().ErrorIs(err, user.ErrUserDoesNotExist)
}

func (s *testSuite) TestTaskRepositoryWithinTransaction() {
	ctx := context.Background()
	uow, err := s.uow.Begin(ctx)
	s.Require().Nil(err)
	defer uow.Rollback(ctx)

	createdUser, err := uow.Users().Create(ctx, user.CreateUserInput{
		Email:        c.Email("test@test.test"),
		Name:         "Test User",
		PasswordHash: user.PasswordHash("test"),
		CreatedAt:    NOW,
	})
	s.Require().Nil(err)

	tasks, err := uow.Tasks().Read(
		ctx,
		task.ReadOptions{CreatedByEquals: createdUser.ID},
	)
	s.Require().Nil(err)
	s.Require().Len(tasks, 0)
}
