package mysql

import (
	"context"
	"database/sql"

	"github.com/sns-consultancy/Travel-Planner-Backend/internal/model"
)

// LeadRepo is a MySQL-backed repository.LeadRepository.
type LeadRepo struct {
	db *sql.DB
}

func NewLeadRepo(db *sql.DB) *LeadRepo {
	return &LeadRepo{db: db}
}

func (r *LeadRepo) Add(ctx context.Context, lead *model.Lead) error {
	query := `INSERT INTO leads (vendor, details) VALUES (?, ?)`
	_, err := r.db.ExecContext(ctx, query, lead.Vendor, lead.Details)
	return err
}

func (r *LeadRepo) List(ctx context.Context) ([]model.Lead, error) {
	query := `SELECT vendor, details, created_at FROM leads ORDER BY id ASC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	leads := make([]model.Lead, 0)
	for rows.Next() {
		var l model.Lead
		if err := rows.Scan(&l.Vendor, &l.Details, &l.CreatedAt); err != nil {
			return nil, err
		}
		leads = append(leads, l)
	}

	return leads, rows.Err()
}
