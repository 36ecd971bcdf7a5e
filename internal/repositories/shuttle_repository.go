package repositories

import (
	"context"
	"database/sql"

	intconfig "shuttle-backend/internal/config"
	"shuttle-backend/internal/domain/models"
)

type ShuttleRepository struct {
	DB *sql.DB
}

func (r ShuttleRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

func (r ShuttleRepository) Create(ctx context.Context, number string) (int64, error) {
	res, err := r.db().ExecContext(ctx, `INSERT INTO shuttles (number) VALUES (?)`, number)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r ShuttleRepository) List(ctx context.Context) ([]models.Shuttle, error) {
	rows, err := r.db().QueryContext(ctx, `SELECT id, number FROM shuttles ORDER BY id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Shuttle{}
	for rows.Next() {
		var s models.Shuttle
		if err := rows.Scan(&s.ID, &s.Number); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}
