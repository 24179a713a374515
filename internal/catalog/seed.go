package catalog

import "fmt"

// SeedEntry is an entry loaded at session start. Unlike entries added by
// users, seeds may start out watched.
type SeedEntry struct {
	NewEntry
	Watched bool
}

func intPtr(n int) *int { return &n }

// DefaultSeed returns the sample catalog a new session starts with.
func DefaultSeed() []SeedEntry {
	return []SeedEntry{
		{
			NewEntry: NewEntry{
				Title:              "Космическая Одиссея",
				CoverURL:           "https://cdn.poehali.dev/projects/5b286b17-0f31-4f74-be53-ee524b61ade7/files/b4b43625-fe55-447c-8d61-4d48bca951cf.jpg",
				Type:               MediaMovie,
				Year:               2024,
				Rating:             8.9,
				Description:        "Захватывающее путешествие через галактику, где команда исследователей сталкивается с невероятными открытиями.",
				OwnedByCurrentUser: true,
			},
		},
		{
			NewEntry: NewEntry{
				Title:              "Атака Титанов",
				CoverURL:           "https://cdn.poehali.dev/projects/5b286b17-0f31-4f74-be53-ee524b61ade7/files/ef2ba2bd-ef07-42a0-b2a6-fef10f62dbcf.jpg",
				Type:               MediaAnime,
				Year:               2023,
				Rating:             9.2,
				EpisodeCount:       intPtr(24),
				OwnedByCurrentUser: true,
			},
		},
		{
			NewEntry: NewEntry{
				Title:        "Тёмные Воды",
				CoverURL:     "https://cdn.poehali.dev/projects/5b286b17-0f31-4f74-be53-ee524b61ade7/files/645f0ad3-5048-4365-b481-9807ee697f41.jpg",
				Type:         MediaSeries,
				Year:         2024,
				Rating:       8.5,
				EpisodeCount: intPtr(10),
			},
			Watched: true,
		},
	}
}

// Seed inserts seeds in order within a single transaction.
func Seed(s *Store, seeds []SeedEntry) (err error) {
	tx, err := s.Begin()
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	for i := range seeds {
		e, err := tx.AddEntry(&seeds[i].NewEntry)
		if err != nil {
			return fmt.Errorf("seed %q: %w", seeds[i].Title, err)
		}
		if seeds[i].Watched {
			if _, err := tx.ToggleWatched(e.ID); err != nil {
				return fmt.Errorf("seed %q: %w", seeds[i].Title, err)
			}
		}
	}
	return tx.Commit()
}
