package user

import (
	"context"
	"database/sql"
	"errors"
	"taskhub/internal/db"
	"time"

	c "taskhub/internal/core/domain/common"
	e "taskhub/internal/core/domain/errors"
	"taskhub/internal/core/domain/user"

	"github.com/jackc/pgconn"
	"github.com/jackc/pgx/v4"
)

const PG_UNIQUE_CONSTRAINT_ERR_CODE = "23505"
const EMAIL_CONSTRAINT_NAME = "user_email_idx"

const userColumns = `id, email, name, password_hash, created_at, password_reset_token, password_reset_expires_at`

type PgxUserRepository struct {
	db db.Querier
}

func NewPgxRepository(db db.Querier) *PgxUserRepository {
	if db == nil {
		panic(e.NewNilArgumentError("db"))
	}
	return &PgxUserRepository{db: db}
}

func (r *PgxUserRepository) Create(ctx context.Context, input user.CreateUserInput) (u user.User, err error) {
	row := r.db.QueryRow(
		ctx,
		`INSERT INTO "user" (email, name, password_hash, created_at)
		 VALUES ($1, $2, $3, $4)
		 RETURNING `+userColumns,
		string(input.Email),
		input.Name,
		string(input.PasswordHash),
		input.CreatedAt,
	)
	u, err = scanUser(row)

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == PG_UNIQUE_CONSTRAINT_ERR_CODE && pgErr.ConstraintName == EMAIL_CONSTRAINT_NAME {
			return u, user.ErrEmailAlreadyExists
		}
	}
	if err != nil {
		return u, err
	}
	if err = u.Validate(); err != nil {
		return u, err
	}
	return u, nil
}

func (r *PgxUserRepository) GetByID(ctx context.Context, id user.ID) (u user.User, err error) {
	row := r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM "user" WHERE id = $1`, int64(id))
	u, err = scanUser(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return u, user.ErrUserDoesNotExist
	}
	if err != nil {
		return u, err
	}
	return u, u.Validate()
}

func (r *PgxUserRepository) GetByEmail(ctx context.Context, email c.Email) (u user.User, err error) {
	row := r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM "user" WHERE email = $1`, string(email))
	u, err = scanUser(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return u, user.ErrUserDoesNotExist
	}
	if err != nil {
		return u, err
	}
	return u, u.Validate()
}

func (r *PgxUserRepository) Update(ctx context.Context, input user.UpdateUserInput) (u user.User, err error) {
	row := r.db.QueryRow(
		ctx,
		`UPDATE "user"
		 SET name = CASE WHEN $2 THEN $3 ELSE name END,
		     password_hash = CASE WHEN $4 THEN $5 ELSE password_hash END
		 WHERE id = $1
		 RETURNING `+userColumns,
		int64(input.ID),
		input.DoNameUpdate,
		input.Name,
		input.DoPasswordUpdate,
		string(input.PasswordHash),
	)
	u, err = scanUser(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return u, user.ErrUserDoesNotExist
	}
	if err != nil {
		return u, err
	}
	return u, u.Validate()
}

func (r *PgxUserRepository) GetByPasswordResetToken(
	ctx context.Context,
	token user.PasswordResetToken,
) (u user.User, err error) {
	row := r.db.QueryRow(
		ctx,
		`SELECT `+userColumns+` FROM "user" WHERE password_reset_token = $1 FOR UPDATE`,
		string(token),
	)
	u, err = scanUser(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return u, user.ErrInvalidPasswordResetToken
	}
	if err != nil {
		return u, err
	}
	return u, u.Validate()
}

func (r *PgxUserRepository) SetPasswordResetToken(
	ctx context.Context,
	id user.ID,
	token user.PasswordResetToken,
	expiresAt time.Time,
) error {
	tag, err := r.db.Exec(
		ctx,
		`UPDATE "user" SET password_reset_token = $2, password_reset_expires_at = $3 WHERE id = $1`,
		int64(id),
		string(token),
		expiresAt,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return user.ErrUserDoesNotExist
	}
	return nil
}

func (r *PgxUserRepository) ClearPasswordResetToken(ctx context.Context, id user.ID) error {
	tag, err := r.db.Exec(
		ctx,
		`UPDATE "user" SET password_reset_token = NULL, password_reset_expires_at = NULL WHERE id = $1`,
		int64(id),
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return user.ErrUserDoesNotExist
	}
	return nil
}

func (r *PgxUserRepository) ConsumePasswordResetToken(
	ctx context.Context,
	token user.PasswordResetToken,
	password user.PasswordHash,
) error {
	tag, err := r.db.Exec(
		ctx,
		`UPDATE "user"
		 SET password_hash = $2, password_reset_token = NULL, password_reset_expires_at = NULL
		 WHERE password_reset_token = $1`,
		string(token),
		string(password),
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return user.ErrInvalidPasswordResetToken
	}
	return nil
}

func scanUser(row pgx.Row) (u user.User, err error) {
	var email, name, passwordHash string
	var id int64
	var createdAt time.Time
	var resetToken sql.NullString
	var resetExpiresAt sql.NullTime

	err = row.Scan(&id, &email, &name, &passwordHash, &createdAt, &resetToken, &resetExpiresAt)
	if err != nil {
		return u, err
	}
	return user.User{
		ID:                     user.ID(id),
		Email:                  c.Email(email),
		Name:                   name,
		PasswordHash:           user.PasswordHash(passwordHash),
		CreatedAt:              createdAt,
		PasswordResetToken:     c.NewOptional(user.PasswordResetToken(resetToken.String), resetToken.Valid),
		PasswordResetExpiresAt: c.NewOptional(resetExpiresAt.Time, resetExpiresAt.Valid),
	}, nil
}
