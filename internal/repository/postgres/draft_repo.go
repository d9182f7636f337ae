package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"eventplanner/internal/domain"
)

type draftRepository struct {
	DB *sql.DB
}

func NewDraftRepository(db *sql.DB) domain.DraftRepository {
	return &draftRepository{
		DB: db,
	}
}

func nullDate(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func categoryStrings(cs []domain.CategoryID) []string {
	out := make([]string, len(cs))
	for i, c := range cs {
		out[i] = string(c)
	}
	return out
}

// Save upserts the draft and replaces its bookings in one transaction.
func (r *draftRepository) Save(ctx context.Context, d *domain.EventDraft) (err error) {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	query := `
		INSERT INTO event_drafts (id, session_id, mode, single_date, range_start, range_end, dates, included_categories, contact_email, created_at, updated_at)
		VALUES ($1, $2, $3, $4::date, $5::date, $6::date, $7::date[], $8, $9, $10, $11)
		ON CONFLICT (id) DO UPDATE
		SET mode = EXCLUDED.mode, single_date = EXCLUDED.single_date, range_start = EXCLUDED.range_start,
			range_end = EXCLUDED.range_end, dates = EXCLUDED.dates, included_categories = EXCLUDED.included_categories,
			contact_email = EXCLUDED.contact_email, updated_at = EXCLUDED.updated_at
	`
	if _, err = tx.ExecContext(ctx, query,
		d.ID, d.SessionID, string(d.Mode), nullDate(d.Date), nullDate(d.RangeStart), nullDate(d.RangeEnd),
		pq.Array(d.Dates), pq.Array(categoryStrings(d.IncludedCategories)), d.ContactEmail, d.CreatedAt, d.UpdatedAt,
	); err != nil {
		return fmt.Errorf("upsert draft: %w", err)
	}
	if _, err = tx.ExecContext(ctx, `DELETE FROM draft_bookings WHERE draft_id = $1`, d.ID); err != nil {
		return fmt.Errorf("clear draft bookings: %w", err)
	}
	for _, b := range d.Bookings {
		if _, err = tx.ExecContext(ctx,
			`INSERT INTO draft_bookings (draft_id, provider_id, category, dates) VALUES ($1, $2, $3, $4::date[])`,
			d.ID, b.ProviderID, string(b.Category), pq.Array(b.Dates),
		); err != nil {
			return fmt.Errorf("insert draft booking %s: %w", b.ProviderID, err)
		}
	}
	return tx.Commit()
}

func (r *draftRepository) GetByID(ctx context.Context, id string) (*domain.EventDraft, error) {
	query := `
		SELECT id, session_id, mode, single_date::text, range_start::text, range_end::text,
			dates::text[], included_categories, contact_email, created_at, updated_at
		FROM event_drafts
		WHERE id = $1
	`
	d := &domain.EventDraft{}
	var mode string
	var single, start, end sql.NullString
	var categories []string
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&d.ID, &d.SessionID, &mode, &single, &start, &end,
		pq.Array(&d.Dates), pq.Array(&categories), &d.ContactEmail, &d.CreatedAt, &d.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrDraftNotFound
		}
		return nil, err
	}
	d.Mode = domain.SelectionMode(mode)
	d.Date, d.RangeStart, d.RangeEnd = single.String, start.String, end.String
	for _, c := range categories {
		d.IncludedCategories = append(d.IncludedCategories, domain.CategoryID(c))
	}

	rows, err := r.DB.QueryContext(ctx,
		`SELECT provider_id, category, dates::text[] FROM draft_bookings WHERE draft_id = $1 ORDER BY category`, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	d.Bookings = []domain.DraftBooking{}
	for rows.Next() {
		var b domain.DraftBooking
		var category string
		if err := rows.Scan(&b.ProviderID, &category, pq.Array(&b.Dates)); err != nil {
			return nil, err
		}
		b.Category = domain.CategoryID(category)
		d.Bookings = append(d.Bookings, b)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return d, nil
}
