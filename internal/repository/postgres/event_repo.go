package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"snapevents/internal/domain"
)

const eventColumns = `id, slug, status, title, excerpt, content, thumbnail_url, start_date, end_date, venue, city, state, country, created_at, updated_at`

type eventRepository struct {
	DB *sql.DB
}

func NewEventRepository(db *sql.DB) domain.EventRepository {
	return &eventRepository{
		DB: db,
	}
}

// startOn derives the indexed start date. Malformed dates are stored as NULL
// and therefore never match the upcoming filter.
func startOn(raw string) sql.NullTime {
	t, ok := domain.ParseEventDate(raw)
	if !ok {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: t, Valid: true}
}

func (r *eventRepository) Create(ctx context.Context, e *domain.Event) error {
	query := `
		INSERT INTO events (slug, status, title, excerpt, content, thumbnail_url, start_date, end_date, venue, city, state, country, start_on, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		RETURNING id
	`
	return r.DB.QueryRowContext(ctx, query,
		e.Slug, e.Status, e.Title, e.Excerpt, e.Content, e.ThumbnailURL,
		e.StartDate, e.EndDate, e.Venue, e.City, e.State, e.Country,
		startOn(e.StartDate), e.CreatedAt, e.UpdatedAt,
	).Scan(&e.ID)
}

func (r *eventRepository) Update(ctx context.Context, e *domain.Event) error {
	query := `
		UPDATE events SET slug = $1, status = $2, title = $3, excerpt = $4, content = $5, thumbnail_url = $6,
			start_date = $7, end_date = $8, venue = $9, city = $10, state = $11, country = $12,
			start_on = $13, updated_at = $14
		WHERE id = $15
	`
	result, err := r.DB.ExecContext(ctx, query,
		e.Slug, e.Status, e.Title, e.Excerpt, e.Content, e.ThumbnailURL,
		e.StartDate, e.EndDate, e.Venue, e.City, e.State, e.Country,
		startOn(e.StartDate), e.UpdatedAt, e.ID,
	)
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *eventRepository) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE id = $1`
	return r.getOne(ctx, query, id)
}

func (r *eventRepository) GetBySlug(ctx context.Context, slug string) (*domain.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE slug = $1`
	return r.getOne(ctx, query, slug)
}

func (r *eventRepository) getOne(ctx context.Context, query string, arg any) (*domain.Event, error) {
	e, err := scanEvent(r.DB.QueryRowContext(ctx, query, arg))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return e, nil
}

func (r *eventRepository) SlugExists(ctx context.Context, slug, excludeID string) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM events WHERE slug = $1 AND id::text <> $2)`
	var exists bool
	if err := r.DB.QueryRowContext(ctx, query, slug, excludeID).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

// upcomingWhere builds the shared predicate of the page and count queries.
// Placeholders start at $1.
func upcomingWhere(today string, c domain.ListingCriteria) (string, []any) {
	clauses := []string{"status = $1", "start_on IS NOT NULL", "start_date >= $2"}
	args := []any{domain.StatusPublish, today}
	add := func(column, value string) {
		if value == "" {
			return
		}
		args = append(args, value)
		clauses = append(clauses, fmt.Sprintf("%s = $%d", column, len(args)))
	}
	add("city", c.City)
	add("state", c.State)
	add("country", c.Country)
	return strings.Join(clauses, " AND "), args
}

func (r *eventRepository) ListUpcoming(ctx context.Context, today string, c domain.ListingCriteria) ([]*domain.Event, error) {
	where, args := upcomingWhere(today, c)
	dir := "ASC"
	if c.Order == domain.SortDesc {
		dir = "DESC"
	}
	query := fmt.Sprintf(`SELECT %s FROM events WHERE %s ORDER BY start_on %s, id ASC`, eventColumns, where, dir)
	if p := c.Pagination(); p.PageSize > 0 {
		args = append(args, p.PageSize, p.Offset())
		query += fmt.Sprintf(` LIMIT $%d OFFSET $%d`, len(args)-1, len(args))
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	events := make([]*domain.Event, 0)
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

func (r *eventRepository) CountUpcoming(ctx context.Context, today string, c domain.ListingCriteria) (int, error) {
	where, args := upcomingWhere(today, c)
	var total int
	err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM events WHERE `+where, args...).Scan(&total)
	if err != nil {
		return 0, err
	}
	return total, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEvent(row rowScanner) (*domain.Event, error) {
	e := &domain.Event{}
	err := row.Scan(
		&e.ID, &e.Slug, &e.Status, &e.Title, &e.Excerpt, &e.Content, &e.ThumbnailURL,
		&e.StartDate, &e.EndDate, &e.Venue, &e.City, &e.State, &e.Country,
		&e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return e, nil
}
