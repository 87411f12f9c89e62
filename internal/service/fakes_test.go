package service

import (
	"context"
	"sort"
	"sync"

	"github.com/passforge/passforge-go/internal/model"
	"github.com/passforge/passforge-go/internal/repository"
)

type fakeUserStore struct {
	mu     sync.Mutex
	nextID int64
	users  map[int64]*model.User
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: make(map[int64]*model.User)}
}

func (f *fakeUserStore) Create(_ context.Context, user *model.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Email == user.Email {
			return repository.ErrDuplicateEmail
		}
	}
	f.nextID++
	user.ID = f.nextID
	stored := *user
	f.users[user.ID] = &stored
	return nil
}

func (f *fakeUserStore) GetByEmail(_ context.Context, email string) (*model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Email == email {
			found := *u
			return &found, nil
		}
	}
	return nil, repository.ErrUserNotFound
}

func (f *fakeUserStore) GetByID(_ context.Context, id int64) (*model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	found := *u
	return &found, nil
}

type fakeProfileStore struct {
	mu       sync.Mutex
	nextID   int64
	profiles map[int64]model.Profile
}

func newFakeProfileStore() *fakeProfileStore {
	return &fakeProfileStore{profiles: make(map[int64]model.Profile)}
}

func (f *fakeProfileStore) nameTaken(p *model.Profile) bool {
	for _, existing := range f.profiles {
		if existing.UserID == p.UserID && existing.Name == p.Name && existing.ID != p.ID {
			return true
		}
	}
	return false
}

func (f *fakeProfileStore) Create(_ context.Context, p *model.Profile) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.nameTaken(p) {
		return repository.ErrDuplicateProfile
	}
	f.nextID++
	p.ID = f.nextID
	f.profiles[p.ID] = *p
	return nil
}

func (f *fakeProfileStore) GetByID(_ context.Context, userID, id int64) (*model.Profile, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.profiles[id]
	if !ok || p.UserID != userID {
		return nil, repository.ErrProfileNotFound
	}
	return &p, nil
}

func (f *fakeProfileStore) ListByUser(_ context.Context, userID int64) ([]model.Profile, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []model.Profile
	for _, p := range f.profiles {
		if p.UserID == userID {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (f *fakeProfileStore) Update(_ context.Context, p *model.Profile) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if existing, ok := f.profiles[p.ID]; !ok || existing.UserID != p.UserID {
		return repository.ErrProfileNotFound
	}
	if f.nameTaken(p) {
		return repository.ErrDuplicateProfile
	}
	f.profiles[p.ID] = *p
	return nil
}

func (f *fakeProfileStore) Delete(_ context.Context, userID, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.profiles[id]
	if !ok || p.UserID != userID {
		return repository.ErrProfileNotFound
	}
	delete(f.profiles, id)
	return nil
}
