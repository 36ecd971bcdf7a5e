package repositories

import (
	"context"
	"database/sql"

	intconfig "shuttle-backend/internal/config"
	"shuttle-backend/internal/domain/models"
)

type RouteRepository struct {
	DB *sql.DB
}

func (r RouteRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

func (r RouteRepository) Create(ctx context.Context, route models.Route) (int64, error) {
	res, err := r.db().ExecContext(ctx, `
		INSERT INTO routes (start_location, end_location, fare) VALUES (?, ?, ?)
	`, route.StartLocation, route.EndLocation, route.Fare)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r RouteRepository) GetByID(ctx context.Context, id int64) (models.Route, error) {
	var route models.Route
	err := r.db().QueryRowContext(ctx, `
		SELECT id, start_location, end_location, fare FROM routes WHERE id=?
	`, id).Scan(&route.ID, &route.StartLocation, &route.EndLocation, &route.Fare)
	return route, err
}

func (r RouteRepository) List(ctx context.Context) ([]models.Route, error) {
	rows, err := r.db().QueryContext(ctx, `
		SELECT id, start_location, end_location, fare FROM routes ORDER BY id ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Route{}
	for rows.Next() {
		var route models.Route
		if err := rows.Scan(&route.ID, &route.StartLocation, &route.EndLocation, &route.Fare); err != nil {
			return nil, err
		}
		out = append(out, route)
	}
	return out, rows.Err()
}

func (r RouteRepository) Update(ctx context.Context, route models.Route) error {
	_, err := r.db().ExecContext(ctx, `
		UPDATE routes SET start_location=?, end_location=?, fare=? WHERE id=?
	`, route.StartLocation, route.EndLocation, route.Fare, route.ID)
	return err
}

func (r RouteRepository) Delete(ctx context.Context, id int64) error {
	_, err := r.db().ExecContext(ctx, `DELETE FROM routes WHERE id=?`, id)
	return err
}
