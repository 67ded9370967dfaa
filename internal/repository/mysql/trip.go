package mysql

import (
	"context"
	"database/sql"
	"errors"

	"github.com/sns-consultancy/Travel-Planner-Backend/internal/model"
	"github.com/sns-consultancy/Travel-Planner-Backend/internal/repository"
)

// TripRepo is a MySQL-backed repository.TripRepository. Listing order is by
// the auto-increment seq column, which matches insertion order.
type TripRepo struct {
	db *sql.DB
}

func NewTripRepo(db *sql.DB) *TripRepo {
	return &TripRepo{db: db}
}

func (r *TripRepo) Create(ctx context.Context, trip *model.Trip) error {
	query := `INSERT INTO trips (id, destination, start_date, days, plan, owner)
		VALUES (?, ?, ?, ?, ?, ?)`

	_, err := r.db.ExecContext(ctx, query,
		trip.ID, trip.Destination, trip.StartDate, trip.Days, trip.Plan, trip.Owner,
	)
	if err != nil {
		if isDuplicateEntryError(err) {
			return repository.ErrDuplicateTrip
		}
		return err
	}
	return nil
}

func (r *TripRepo) GetByID(ctx context.Context, id string) (*model.Trip, error) {
	query := `SELECT id, destination, start_date, days, plan, owner, created_at
		FROM trips WHERE id = ?`

	trip := &model.Trip{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&trip.ID, &trip.Destination, &trip.StartDate, &trip.Days,
		&trip.Plan, &trip.Owner, &trip.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrTripNotFound
		}
		return nil, err
	}

	return trip, nil
}

func (r *TripRepo) ListByOwner(ctx context.Context, owner string) ([]model.Trip, error) {
	query := `SELECT id, destination, start_date, days, plan, owner, created_at
		FROM trips WHERE owner = ? ORDER BY seq ASC`

	rows, err := r.db.QueryContext(ctx, query, owner)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	trips := make([]model.Trip, 0)
	for rows.Next() {
		var t model.Trip
		if err := rows.Scan(
			&t.ID, &t.Destination, &t.StartDate, &t.Days,
			&t.Plan, &t.Owner, &t.CreatedAt,
		); err != nil {
			return nil, err
		}
		trips = append(trips, t)
	}

	return trips, rows.Err()
}
