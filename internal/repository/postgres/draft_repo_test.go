package postgres

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"eventplanner/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDraft() *domain.EventDraft {
	ts := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	return &domain.EventDraft{
		ID:                 "draft-1",
		SessionID:          "session-1",
		Mode:               domain.ModeRange,
		RangeStart:         "2024-06-01",
		RangeEnd:           "2024-06-02",
		Dates:              []string{"2024-06-01", "2024-06-02"},
		IncludedCategories: []domain.CategoryID{domain.CategoryVenue, domain.CategoryDJ},
		Bookings: []domain.DraftBooking{
			{ProviderID: "venue-1", Category: domain.CategoryVenue, Dates: []string{"2024-06-01", "2024-06-02"}},
			{ProviderID: "dj-1", Category: domain.CategoryDJ, Dates: []string{"2024-06-01"}},
		},
		ContactEmail: "host@example.com",
		CreatedAt:    ts,
		UpdatedAt:    ts,
	}
}

func TestDraftRepository_Save(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		mock    func(mock sqlmock.Sqlmock)
		wantErr string
	}{
		{
			name: "success",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec(`INSERT INTO event_drafts`).
					WithArgs("draft-1", "session-1", "range", sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(),
						sqlmock.AnyArg(), sqlmock.AnyArg(), "host@example.com", sqlmock.AnyArg(), sqlmock.AnyArg()).
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectExec(`DELETE FROM draft_bookings WHERE draft_id = \$1`).
					WithArgs("draft-1").
					WillReturnResult(sqlmock.NewResult(0, 2))
				mock.ExpectExec(`INSERT INTO draft_bookings`).
					WithArgs("draft-1", "venue-1", "venue", sqlmock.AnyArg()).
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectExec(`INSERT INTO draft_bookings`).
					WithArgs("draft-1", "dj-1", "dj", sqlmock.AnyArg()).
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectCommit()
			},
		},
		{
			name: "begin fails",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin().WillReturnError(sql.ErrConnDone)
			},
			wantErr: sql.ErrConnDone.Error(),
		},
		{
			name: "upsert fails rolls back",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec(`INSERT INTO event_drafts`).WillReturnError(errors.New("constraint"))
				mock.ExpectRollback()
			},
			wantErr: "upsert draft",
		},
		{
			name: "booking insert fails rolls back",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec(`INSERT INTO event_drafts`).WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectExec(`DELETE FROM draft_bookings`).WillReturnResult(sqlmock.NewResult(0, 0))
				mock.ExpectExec(`INSERT INTO draft_bookings`).WillReturnError(errors.New("fk violation"))
				mock.ExpectRollback()
			},
			wantErr: "insert draft booking venue-1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			tt.mock(mock)
			repo := NewDraftRepository(db)
			err = repo.Save(ctx, testDraft())
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			} else {
				require.NoError(t, err)
			}
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestDraftRepository_GetByID(t *testing.T) {
	ctx := context.Background()
	ts := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	draftColumns := []string{"id", "session_id", "mode", "single_date", "range_start", "range_end",
		"dates", "included_categories", "contact_email", "created_at", "updated_at"}

	t.Run("success", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`FROM event_drafts`).
			WithArgs("draft-1").
			WillReturnRows(sqlmock.NewRows(draftColumns).AddRow(
				"draft-1", "session-1", "range", nil, "2024-06-01", "2024-06-02",
				"{2024-06-01,2024-06-02}", "{venue,dj}", "host@example.com", ts, ts,
			))
		mock.ExpectQuery(`FROM draft_bookings WHERE draft_id = \$1`).
			WithArgs("draft-1").
			WillReturnRows(sqlmock.NewRows([]string{"provider_id", "category", "dates"}).
				AddRow("dj-1", "dj", "{2024-06-01}").
				AddRow("venue-1", "venue", "{2024-06-01,2024-06-02}"))

		got, err := NewDraftRepository(db).GetByID(ctx, "draft-1")
		require.NoError(t, err)
		assert.Equal(t, domain.ModeRange, got.Mode)
		assert.Empty(t, got.Date)
		assert.Equal(t, "2024-06-01", got.RangeStart)
		assert.Equal(t, "2024-06-02", got.RangeEnd)
		assert.Equal(t, []string{"2024-06-01", "2024-06-02"}, got.Dates)
		assert.Equal(t, []domain.CategoryID{domain.CategoryVenue, domain.CategoryDJ}, got.IncludedCategories)
		require.Len(t, got.Bookings, 2)
		assert.Equal(t, domain.DraftBooking{ProviderID: "dj-1", Category: domain.CategoryDJ, Dates: []string{"2024-06-01"}}, got.Bookings[0])
		assert.Equal(t, ts, got.CreatedAt)

		sel, err := got.Selection()
		require.NoError(t, err)
		assert.Equal(t, []string{"2024-06-01", "2024-06-02"}, sel.EventDates().Strings())
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not found", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`FROM event_drafts`).
			WithArgs("missing").
			WillReturnRows(sqlmock.NewRows(draftColumns))

		_, err = NewDraftRepository(db).GetByID(ctx, "missing")
		require.ErrorIs(t, err, domain.ErrDraftNotFound)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("bookings query fails", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`FROM event_drafts`).
			WillReturnRows(sqlmock.NewRows(draftColumns).AddRow(
				"draft-1", "session-1", "single", "2024-06-01", nil, nil,
				"{2024-06-01}", "{venue}", "", ts, ts,
			))
		mock.ExpectQuery(`FROM draft_bookings`).WillReturnError(sql.ErrConnDone)

		_, err = NewDraftRepository(db).GetByID(ctx, "draft-1")
		require.ErrorIs(t, err, sql.ErrConnDone)
	})
}
