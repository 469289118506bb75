package task

import (
	"context"
	"database/sql"
	"errors"
	"taskhub/internal/db"
	"time"

	c "taskhub/internal/core/domain/common"
	e "taskhub/internal/core/domain/errors"
	"taskhub/internal/core/domain/task"
	"taskhub/internal/core/domain/user"

	"github.com/jackc/pgx/v4"
)

const taskColumns = `id, user_id, title, description, created_at`

type PgxTaskRepository struct {
	db db.Querier
}

func NewPgxTaskRepository(db db.Querier) *PgxTaskRepository {
	if db == nil {
		panic(e.NewNilArgumentError("db"))
	}
	return &PgxTaskRepository{db: db}
}

func (r *PgxTaskRepository) Create(ctx context.Context, input task.CreateInput) (t task.Task, err error) {
	row := r.db.QueryRow(
		ctx,
		`INSERT INTO task (user_id, title, description, created_at)
		 VALUES ($1, $2, $3, $4)
		 RETURNING `+taskColumns,
		int64(input.CreatedBy),
		input.Title,
		encodeDescription(input.Description),
		input.CreatedAt,
	)
	return scanTask(row)
}

func (r *PgxTaskRepository) Read(ctx context.Context, options task.ReadOptions) (tasks []task.Task, err error) {
	rows, err := r.db.Query(
		ctx,
		`SELECT `+taskColumns+` FROM task WHERE user_id = $1 ORDER BY created_at DESC, id DESC`,
		int64(options.CreatedByEquals),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tasks = make([]task.Task, 0)
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

func (r *PgxTaskRepository) Update(ctx context.Context, input task.UpdateInput) (t task.Task, err error) {
	row := r.db.QueryRow(
		ctx,
		`UPDATE task
		 SET title = CASE WHEN $3 THEN $4 ELSE title END,
		     description = CASE WHEN $5 THEN $6 ELSE description END
		 WHERE id = $1 AND user_id = $2
		 RETURNING `+taskColumns,
		int64(input.ID),
		int64(input.CreatedBy),
		input.DoTitleUpdate,
		input.Title,
		input.DoDescriptionUpdate,
		encodeDescription(input.Description),
	)
	t, err = scanTask(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return t, task.ErrTaskDoesNotExist
	}
	return t, err
}

func (r *PgxTaskRepository) Delete(ctx context.Context, id task.ID, createdBy user.ID) error {
	tag, err := r.db.Exec(
		ctx,
		`DELETE FROM task WHERE id = $1 AND user_id = $2`,
		int64(id),
		int64(createdBy),
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return task.ErrTaskDoesNotExist
	}
	return nil
}

func encodeDescription(description c.Optional[string]) sql.NullString {
	return sql.NullString{String: description.Value, Valid: description.IsPresent}
}

func scanTask(row pgx.Row) (t task.Task, err error) {
	var id, userID int64
	var title string
	var description sql.NullString
	var createdAt time.Time

	err = row.Scan(&id, &userID, &title, &description, &createdAt)
	if err != nil {
		return t, err
	}
	return task.Task{
		ID:          task.ID(id),
		CreatedBy:   user.ID(userID),
		Title:       title,
		Description: c.NewOptional(description.String, description.Valid),
		CreatedAt:   createdAt,
	}, nil
}
