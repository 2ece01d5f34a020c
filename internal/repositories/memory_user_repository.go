package repositories

import (
	"sync"
	"time"

	"authgate/internal/models"
)

// MemoryUserRepository is an in-memory UserRepository used by tests
// and local experiments. It mirrors the Postgres semantics: exact
// email matching, expiry-filtered fingerprint lookup, single-update
// consume.
type MemoryUserRepository struct {
	mu     sync.Mutex
	nextID int
	users  map[int]*models.User
}

func NewMemoryUserRepository() *MemoryUserRepository {
	return &MemoryUserRepository{nextID: 1, users: make(map[int]*models.User)}
}

func (r *MemoryUserRepository) Create(user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	now := time.Now()
	user.ID = r.nextID
	r.nextID++
	user.CreatedAt = now
	user.UpdatedAt = now
	cp := *user
	r.users[user.ID] = &cp
	return nil
}

func (r *MemoryUserRepository) GetByID(id int) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r *MemoryUserRepository) GetByEmail(email string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *MemoryUserRepository) SetResetToken(userID int, fingerprint string, expiresAt time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[userID]
	if !ok {
		return nil
	}
	fp := fingerprint
	exp := expiresAt
	u.ResetTokenFingerprint = &fp
	u.ResetTokenExpiresAt = &exp
	u.UpdatedAt = time.Now()
	return nil
}

func (r *MemoryUserRepository) ClearResetToken(userID int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if u, ok := r.users[userID]; ok {
		u.ResetTokenFingerprint = nil
		u.ResetTokenExpiresAt = nil
		u.UpdatedAt = time.Now()
	}
	return nil
}

func (r *MemoryUserRepository) GetByResetFingerprint(fingerprint string, now time.Time) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.ResetTokenFingerprint != nil && *u.ResetTokenFingerprint == fingerprint &&
			u.ResetTokenExpiresAt != nil && u.ResetTokenExpiresAt.After(now) {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *MemoryUserRepository) ConsumeResetToken(userID int, passwordHash string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if u, ok := r.users[userID]; ok {
		u.PasswordHash = passwordHash
		u.ResetTokenFingerprint = nil
		u.ResetTokenExpiresAt = nil
		u.UpdatedAt = time.Now()
	}
	return nil
}

// ExpireResetToken force-expires an open reset window; test helper.
func (r *MemoryUserRepository) ExpireResetToken(userID int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if u, ok := r.users[userID]; ok && u.ResetTokenExpiresAt != nil {
		past := time.Now().Add(-time.Minute)
		u.ResetTokenExpiresAt = &past
	}
}
