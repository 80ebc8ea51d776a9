// Package users holds the user repository: an in-memory ordered collection
// of accounts backed by the persistent store.
package users

import (
	"context"
	"strings"

	"github.com/anonsen/anonsen/internal/common"
	"github.com/anonsen/anonsen/internal/logging"
	"github.com/anonsen/anonsen/internal/models"
	"github.com/anonsen/anonsen/internal/storage"
	"github.com/anonsen/anonsen/internal/timex"
)

// Demo account credentials, created when the store holds no users.
const (
	DemoEmail    = "demo@anonsen.com"
	DemoPassword = "demo123456"
	TestEmail    = "test@example.com"
	TestPassword = "test123456"
)

// Repository is the sole mutator of the users collection. It is not safe
// for concurrent use; all operations run synchronously on the caller's
// goroutine.
type Repository struct {
	collection *storage.Collection[models.User]
	clock      timex.Clock
	users      []models.User
}

func NewRepository(backend storage.Backend, clock timex.Clock, log logging.Logger) *Repository {
	return &Repository{
		collection: storage.NewCollection[models.User](backend, storage.UsersKey, log),
		clock:      clock,
	}
}

// Init loads the persisted users. When nothing valid is stored (never
// saved, or discarded as corrupt) it seeds the two demo accounts and
// persists them immediately. Seeding never runs when users already exist.
func (r *Repository) Init(ctx context.Context) error {
	r.users = r.collection.Load(ctx)
	if len(r.users) > 0 {
		return nil
	}

	now := r.clock.Now()
	r.users = []models.User{
		{
			ID:         1,
			Username:   "demo_user",
			Email:      DemoEmail,
			Password:   DemoPassword,
			JoinDate:   now,
			IsVerified: true,
		},
		{
			ID:         2,
			Username:   "test_user",
			Email:      TestEmail,
			Password:   TestPassword,
			JoinDate:   now,
			IsVerified: true,
		},
	}
	return r.collection.Save(ctx, r.users)
}

// Count returns the number of registered users.
func (r *Repository) Count() int {
	return len(r.users)
}

func (r *Repository) findIndex(match func(*models.User) bool) int {
	for i := range r.users {
		if match(&r.users[i]) {
			return i
		}
	}
	return -1
}

// FindByEmail returns a copy of the first user whose email matches
// case-insensitively.
func (r *Repository) FindByEmail(email string) (*models.User, bool) {
	i := r.findIndex(func(u *models.User) bool {
		return strings.EqualFold(u.Email, email)
	})
	if i < 0 {
		return nil, false
	}
	u := r.users[i]
	return &u, true
}

// FindByUsername returns a copy of the first user whose username matches
// case-insensitively.
func (r *Repository) FindByUsername(username string) (*models.User, bool) {
	i := r.findIndex(func(u *models.User) bool {
		return strings.EqualFold(u.Username, username)
	})
	if i < 0 {
		return nil, false
	}
	u := r.users[i]
	return &u, true
}

// FindByID returns a copy of the user with the given id.
func (r *Repository) FindByID(id int64) (*models.User, bool) {
	i := r.findIndex(func(u *models.User) bool { return u.ID == id })
	if i < 0 {
		return nil, false
	}
	u := r.users[i]
	return &u, true
}

// Register creates a new account. The email uniqueness check runs before
// the username check, so a request violating both reports ErrEmailTaken.
// The new record is appended in memory before persisting; a persist
// failure is returned but does not roll the append back.
func (r *Repository) Register(ctx context.Context, username, email, password string) (*models.User, error) {
	if _, ok := r.FindByEmail(email); ok {
		return nil, common.ErrEmailTaken
	}
	if _, ok := r.FindByUsername(username); ok {
		return nil, common.ErrUsernameTaken
	}

	user := models.User{
		ID:         int64(len(r.users)) + 1,
		Username:   username,
		Email:      email,
		Password:   password,
		JoinDate:   r.clock.Now(),
		IsVerified: true,
	}
	r.users = append(r.users, user)

	if err := r.collection.Save(ctx, r.users); err != nil {
		return nil, err
	}
	return &user, nil
}

// Authenticate resolves identifier as an email first, then as a username,
// and checks the password byte-exactly. On success it returns a copy of
// the record so callers cannot mutate repository state.
func (r *Repository) Authenticate(identifier, password string) (*models.User, error) {
	user, ok := r.FindByEmail(identifier)
	if !ok {
		user, ok = r.FindByUsername(identifier)
	}
	if !ok || user.Password != password {
		return nil, common.ErrInvalidCredentials
	}
	return user, nil
}

// Update merges the supplied profile fields into the stored record.
// Identity fields (id, email, username, join date) cannot be changed
// through this path.
func (r *Repository) Update(ctx context.Context, userID int64, upd models.UserUpdate) (*models.User, error) {
	i := r.findIndex(func(u *models.User) bool { return u.ID == userID })
	if i < 0 {
		return nil, common.ErrNotFound
	}

	if upd.Bio != nil {
		r.users[i].Bio = *upd.Bio
	}
	if upd.ProfilePicture != nil {
		r.users[i].ProfilePicture = upd.ProfilePicture
	}

	if err := r.collection.Save(ctx, r.users); err != nil {
		return nil, err
	}
	u := r.users[i]
	return &u, nil
}
