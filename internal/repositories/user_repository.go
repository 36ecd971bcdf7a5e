package repositories

import (
	"context"
	"database/sql"

	intconfig "shuttle-backend/internal/config"
	"shuttle-backend/internal/domain/models"
)

type UserRepository struct {
	DB *sql.DB
}

func (r UserRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

const userColumns = `id, first_name, last_name, student_id, email, password_hash, role, phone, verified, created_at, updated_at`

func scanUser(row *sql.Row) (models.User, error) {
	var u models.User
	err := row.Scan(
		&u.ID,
		&u.FirstName,
		&u.LastName,
		&u.StudentID,
		&u.Email,
		&u.PasswordHash,
		&u.Role,
		&u.Phone,
		&u.Verified,
		&u.CreatedAt,
		&u.UpdatedAt,
	)
	return u, err
}

func (r UserRepository) GetByID(ctx context.Context, id int64) (models.User, error) {
	row := r.db().QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE id=?`, id)
	return scanUser(row)
}

func (r UserRepository) GetByEmail(ctx context.Context, email string) (models.User, error) {
	row := r.db().QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE email=?`, email)
	return scanUser(row)
}

func (r UserRepository) Exists(ctx context.Context, email string, studentID int64) (bool, error) {
	var count int
	err := r.db().QueryRowContext(ctx, `
		SELECT COUNT(*) FROM users WHERE email=? OR student_id=?
	`, email, studentID).Scan(&count)
	return count > 0, err
}

// Create inserts a user through q so registration can share a transaction
// with the wallet insert.
func (r UserRepository) Create(ctx context.Context, q Querier, u models.User) (int64, error) {
	res, err := q.ExecContext(ctx, `
		INSERT INTO users (first_name, last_name, student_id, email, password_hash, role, phone, verified)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, u.FirstName, u.LastName, u.StudentID, u.Email, u.PasswordHash, u.Role, u.Phone, u.Verified)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}
