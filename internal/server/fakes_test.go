package server

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"shorturl-be/internal/entities"
	"shorturl-be/internal/repository"
)

// memStore is an in-memory stand-in for the Postgres repositories
type memStore struct {
	mu        sync.Mutex
	now       time.Time
	users     map[string]*entities.User
	links     map[int64]*entities.ShortURL
	history   []*entities.AccessRecord
	historyID map[int64]int64 // history_id -> shorturl_id
	nextID    int64
	pingErr   error
}

func newMemStore() *memStore {
	return &memStore{
		now:       time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		users:     map[string]*entities.User{},
		links:     map[int64]*entities.ShortURL{},
		historyID: map[int64]int64{},
	}
}

// tick advances the store clock so rows get distinct, ordered timestamps
func (m *memStore) tick() time.Time {
	m.now = m.now.Add(time.Second)
	m.nextID++
	return m.now
}

func (m *memStore) PingContext(context.Context) error {
	return m.pingErr
}

type memUserRepository struct{ *memStore }

func (r memUserRepository) Create(_ context.Context, username, passwordHash string, role entities.Role) (*entities.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[username]; ok {
		return nil, fmt.Errorf("username %q: %w", username, repository.ErrDuplicate)
	}

	createdAt := r.tick()
	user := &entities.User{
		ID:           fmt.Sprintf("user-%d", r.nextID),
		Username:     username,
		PasswordHash: passwordHash,
		Role:         role,
		CreatedAt:    createdAt,
	}
	r.users[username] = user
	return user, nil
}

func (r memUserRepository) FindByUsername(_ context.Context, username string) (*entities.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[username]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return user, nil
}

type memURLRepository struct{ *memStore }

func (r memURLRepository) Create(_ context.Context, originalURL, shortURL, qrCode, userID string) (*entities.ShortURL, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, link := range r.links {
		if link.ShortURL == shortURL {
			return nil, repository.ErrDuplicate
		}
	}

	createdAt := r.tick()
	link := &entities.ShortURL{
		ID:          r.nextID,
		OriginalURL: originalURL,
		ShortURL:    shortURL,
		QRCode:      qrCode,
		UserID:      userID,
		CreatedAt:   createdAt,
	}
	r.links[link.ID] = link
	return link, nil
}

func (r memURLRepository) FindByShortURL(_ context.Context, shortURL string) (*entities.ShortURL, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, link := range r.links {
		if link.ShortURL == shortURL {
			return link, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r memURLRepository) FindByID(_ context.Context, id int64) (*entities.ShortURL, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	link, ok := r.links[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return link, nil
}

func (r memURLRepository) RecordAccess(_ context.Context, id int64, accessedBy string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	link, ok := r.links[id]
	if !ok {
		return fmt.Errorf("shorturl %d does not exist", id)
	}

	accessTime := r.tick()
	r.history = append(r.history, &entities.AccessRecord{
		ID:          r.nextID,
		AccessTime:  accessTime,
		AccessedBy:  accessedBy,
		ShortURL:    link.ShortURL,
		OriginalURL: link.OriginalURL,
	})
	r.historyID[r.nextID] = id
	return nil
}

func (r memURLRepository) GetHistory(_ context.Context, id int64) ([]*entities.AccessRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	history := []*entities.AccessRecord{}
	for i := len(r.history) - 1; i >= 0; i-- {
		if r.historyID[r.history[i].ID] == id {
			history = append(history, r.history[i])
		}
	}
	return history, nil
}

func (r memURLRepository) ListSummaries(_ context.Context, userID *string) ([]*entities.LinkSummary, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	summaries := []*entities.LinkSummary{}
	for _, link := range r.links {
		if userID != nil && link.UserID != *userID {
			continue
		}

		summary := &entities.LinkSummary{
			ID:          link.ID,
			OriginalURL: link.OriginalURL,
			ShortURL:    link.ShortURL,
			CreatedAt:   link.CreatedAt,
		}
		for _, record := range r.history {
			if r.historyID[record.ID] != link.ID {
				continue
			}
			summary.TotalVisits++
			if summary.LastAccessed == nil || record.AccessTime.After(*summary.LastAccessed) {
				accessTime := record.AccessTime
				summary.LastAccessed = &accessTime
			}
		}
		summaries = append(summaries, summary)
	}

	sort.Slice(summaries, func(i, j int) bool {
		return summaries[i].CreatedAt.After(summaries[j].CreatedAt)
	})
	return summaries, nil
}

func (r memURLRepository) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.links[id]; !ok {
		return repository.ErrNotFound
	}

	kept := r.history[:0]
	for _, record := range r.history {
		if r.historyID[record.ID] == id {
			delete(r.historyID, record.ID)
			continue
		}
		kept = append(kept, record)
	}
	r.history = kept
	delete(r.links, id)
	return nil
}
