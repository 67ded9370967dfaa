package mysql

import (
	"context"
	"database/sql"
	"errors"

	"github.com/sns-consultancy/Travel-Planner-Backend/internal/model"
	"github.com/sns-consultancy/Travel-Planner-Backend/internal/repository"
)

// UserRepo is a MySQL-backed repository.UserRepository. Uniqueness of
// full_name is enforced by a unique index so concurrent registration races
// resolve in the database.
type UserRepo struct {
	db *sql.DB
}

func NewUserRepo(db *sql.DB) *UserRepo {
	return &UserRepo{db: db}
}

func (r *UserRepo) Create(ctx context.Context, user *model.User) error {
	query := `INSERT INTO users
		(id, full_name, dob, email, mobile, country, photo_filename,
		 consent_gmail, consent_phone, password_hash, account_type)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	_, err := r.db.ExecContext(ctx, query,
		user.ID, user.FullName, user.DOB, user.Email, user.Mobile,
		user.Country, user.PhotoFilename, user.ConsentGmail,
		user.ConsentPhone, user.PasswordHash, string(user.Account),
	)
	if err != nil {
		if isDuplicateEntryError(err) {
			return repository.ErrDuplicateUser
		}
		return err
	}
	return nil
}

func (r *UserRepo) GetByName(ctx context.Context, fullName string) (*model.User, error) {
	query := `SELECT id, full_name, dob, email, mobile, country, photo_filename,
		consent_gmail, consent_phone, password_hash, account_type, created_at
		FROM users WHERE full_name = ?`

	user := &model.User{}
	var account string
	err := r.db.QueryRowContext(ctx, query, fullName).Scan(
		&user.ID, &user.FullName, &user.DOB, &user.Email, &user.Mobile,
		&user.Country, &user.PhotoFilename, &user.ConsentGmail,
		&user.ConsentPhone, &user.PasswordHash, &account, &user.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrUserNotFound
		}
		return nil, err
	}
	user.Account = model.AccountType(account)

	return user, nil
}
