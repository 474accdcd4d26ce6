package memory

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"snapevents/internal/domain"
)

// SeedEvent is one event entry of a YAML fixtures file.
type SeedEvent struct {
	ID           string `yaml:"id"`
	Slug         string `yaml:"slug"`
	Status       string `yaml:"status"`
	Title        string `yaml:"title"`
	Excerpt      string `yaml:"excerpt"`
	Content      string `yaml:"content"`
	ThumbnailURL string `yaml:"thumbnail_url"`
	StartDate    string `yaml:"start_date"`
	EndDate      string `yaml:"end_date"`
	Venue        string `yaml:"venue"`
	City         string `yaml:"city"`
	State        string `yaml:"state"`
	Country      string `yaml:"country"`
}

// SeedFile is the top-level shape of a fixtures file.
type SeedFile struct {
	Events []SeedEvent `yaml:"events"`
}

// LoadSeedFile reads fixtures from path and stores them in repo.
func LoadSeedFile(ctx context.Context, repo domain.EventRepository, path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("open seed file: %w", err)
	}
	defer f.Close()
	return Seed(ctx, repo, f)
}

// Seed decodes YAML fixtures from r and stores them in repo. Entries without a
// status are published. Dates are stored as written, malformed or not.
func Seed(ctx context.Context, repo domain.EventRepository, r io.Reader) (int, error) {
	var file SeedFile
	if err := yaml.NewDecoder(r).Decode(&file); err != nil {
		if err == io.EOF {
			return 0, nil
		}
		return 0, fmt.Errorf("decode seed file: %w", err)
	}
	now := time.Now()
	for i, s := range file.Events {
		if s.Slug == "" {
			return i, fmt.Errorf("seed event %d: slug is required: %w", i, domain.ErrInvalidInput)
		}
		status := s.Status
		if status == "" {
			status = domain.StatusPublish
		}
		e := &domain.Event{
			ID:           s.ID,
			Slug:         s.Slug,
			Status:       status,
			Title:        s.Title,
			Excerpt:      s.Excerpt,
			Content:      s.Content,
			ThumbnailURL: s.ThumbnailURL,
			StartDate:    s.StartDate,
			EndDate:      s.EndDate,
			Venue:        s.Venue,
			City:         s.City,
			State:        s.State,
			Country:      s.Country,
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		if err := repo.Create(ctx, e); err != nil {
			return i, fmt.Errorf("seed event %q: %w", s.Slug, err)
		}
	}
	return len(file.Events), nil
}
