package postgres

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"snapevents/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
)

var eventColumnNames = []string{
	"id", "slug", "status", "title", "excerpt", "content", "thumbnail_url",
	"start_date", "end_date", "venue", "city", "state", "country", "created_at", "updated_at",
}

var fixedTime = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

func addEventRow(rows *sqlmock.Rows, id, slug, start string) *sqlmock.Rows {
	return rows.AddRow(id, slug, domain.StatusPublish, "Title "+id, "", "", "", start, "", "Hall", "Austin", "TX", "USA", fixedTime, fixedTime)
}

func TestStartOn(t *testing.T) {
	got := startOn("20260115")
	require.True(t, got.Valid)
	require.Equal(t, time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC), got.Time)

	require.False(t, startOn("2026011").Valid)
	require.False(t, startOn("20261399").Valid)
}

func TestEventRepository_Create(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		event   *domain.Event
		mock    func(mock sqlmock.Sqlmock)
		wantID  string
		wantErr bool
	}{
		{
			name: "success",
			event: &domain.Event{
				Slug: "jazz-night", Status: domain.StatusPublish, Title: "Jazz Night",
				StartDate: "20270115", City: "Austin",
				CreatedAt: fixedTime, UpdatedAt: fixedTime,
			},
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`INSERT INTO events \(slug, status, title`).
					WithArgs("jazz-night", domain.StatusPublish, "Jazz Night", "", "", "", "20270115", "", "", "Austin", "", "", sqlmock.AnyArg(), fixedTime, fixedTime).
					WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("ev-uuid-1"))
			},
			wantID: "ev-uuid-1",
		},
		{
			name:  "db error",
			event: &domain.Event{Slug: "x", CreatedAt: fixedTime, UpdatedAt: fixedTime},
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`INSERT INTO events`).
					WillReturnError(sql.ErrConnDone)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			tt.mock(mock)
			repo := NewEventRepository(db)
			err = repo.Create(ctx, tt.event)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.wantID, tt.event.ID)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestEventRepository_Update(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		rows    int64
		wantErr error
	}{
		{name: "success", rows: 1},
		{name: "not found", rows: 0, wantErr: domain.ErrNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			mock.ExpectExec(`UPDATE events SET slug = \$1`).
				WillReturnResult(sqlmock.NewResult(0, tt.rows))

			repo := NewEventRepository(db)
			err = repo.Update(ctx, &domain.Event{ID: "ev-1", Slug: "s", StartDate: "bad", UpdatedAt: fixedTime})
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
			}
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestEventRepository_GetBySlug(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		mock    func(mock sqlmock.Sqlmock)
		wantID  string
		wantErr error
	}{
		{
			name: "success",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT id, slug, status, title`).
					WithArgs("jazz-night").
					WillReturnRows(addEventRow(sqlmock.NewRows(eventColumnNames), "ev-1", "jazz-night", "20270115"))
			},
			wantID: "ev-1",
		},
		{
			name: "not found",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT id, slug, status, title`).
					WithArgs("jazz-night").
					WillReturnError(sql.ErrNoRows)
			},
			wantErr: domain.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			tt.mock(mock)
			repo := NewEventRepository(db)
			got, err := repo.GetBySlug(ctx, "jazz-night")
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				require.Nil(t, got)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.wantID, got.ID)
			require.Equal(t, "Hall", got.Venue)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestEventRepository_ListUpcoming(t *testing.T) {
	ctx := context.Background()
	today := "20261018"

	tests := []struct {
		name     string
		criteria domain.ListingCriteria
		mock     func(mock sqlmock.Sqlmock)
		wantIDs  []string
		wantErr  bool
	}{
		{
			name:     "first page ascending",
			criteria: domain.ListingCriteria{PageSize: 2, Page: 1, Order: domain.SortAsc},
			mock: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows(eventColumnNames)
				addEventRow(rows, "ev-1", "a", "20261018")
				addEventRow(rows, "ev-2", "b", "20261101")
				mock.ExpectQuery(regexp.QuoteMeta(`WHERE status = $1 AND start_on IS NOT NULL AND start_date >= $2 ORDER BY start_on ASC, id ASC LIMIT $3 OFFSET $4`)).
					WithArgs(domain.StatusPublish, today, 2, 0).
					WillReturnRows(rows)
			},
			wantIDs: []string{"ev-1", "ev-2"},
		},
		{
			name:     "filtered descending third page",
			criteria: domain.ListingCriteria{PageSize: 6, Page: 3, Order: domain.SortDesc, City: "Austin", Country: "USA"},
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(regexp.QuoteMeta(`AND start_date >= $2 AND city = $3 AND country = $4 ORDER BY start_on DESC, id ASC LIMIT $5 OFFSET $6`)).
					WithArgs(domain.StatusPublish, today, "Austin", "USA", 6, 12).
					WillReturnRows(sqlmock.NewRows(eventColumnNames))
			},
			wantIDs: []string{},
		},
		{
			name:     "all events has no limit",
			criteria: domain.ListingCriteria{PageSize: domain.AllEvents, Page: 1, Order: domain.SortAsc, State: "TX"},
			mock: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows(eventColumnNames)
				addEventRow(rows, "ev-9", "z", "20270101")
				mock.ExpectQuery(regexp.QuoteMeta(`AND state = $3 ORDER BY start_on ASC, id ASC`) + `$`).
					WithArgs(domain.StatusPublish, today, "TX").
					WillReturnRows(rows)
			},
			wantIDs: []string{"ev-9"},
		},
		{
			name:     "db error",
			criteria: domain.ListingCriteria{PageSize: 6, Page: 1, Order: domain.SortAsc},
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT id, slug`).WillReturnError(sql.ErrConnDone)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			tt.mock(mock)
			repo := NewEventRepository(db)
			got, err := repo.ListUpcoming(ctx, today, tt.criteria)
			if tt.wantErr {
				require.Error(t, err)
				require.Nil(t, got)
				return
			}
			require.NoError(t, err)
			ids := make([]string, 0, len(got))
			for _, e := range got {
				ids = append(ids, e.ID)
			}
			require.Equal(t, tt.wantIDs, ids)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestEventRepository_CountUpcoming(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*) FROM events WHERE status = $1 AND start_on IS NOT NULL AND start_date >= $2 AND city = $3 AND state = $4`)).
		WithArgs(domain.StatusPublish, "20261018", "Austin", "TX").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(7))

	repo := NewEventRepository(db)
	// page and size do not affect the count
	total, err := repo.CountUpcoming(context.Background(), "20261018", domain.ListingCriteria{PageSize: 2, Page: 4, City: "Austin", State: "TX"})
	require.NoError(t, err)
	require.Equal(t, 7, total)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestEventRepository_SlugExists(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`SELECT EXISTS`).
		WithArgs("jazz-night", "ev-1").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	repo := NewEventRepository(db)
	exists, err := repo.SlugExists(context.Background(), "jazz-night", "ev-1")
	require.NoError(t, err)
	require.True(t, exists)
	require.NoError(t, mock.ExpectationsWereMet())
}
