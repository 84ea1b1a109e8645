package service

import (
	"context"
	"iter"
	"slices"

	"github.com/rs/zerolog"

	"github.com/campusdesk/portal/internal/core/domain"
	"github.com/campusdesk/portal/internal/core/ports"
	"github.com/campusdesk/portal/internal/core/state"
)

// CredentialStore is the read view over two ordered user sequences: the
// fixed seed list, then the persisted registered users. The seed list is
// never written to the durable store.
type CredentialStore struct {
	seed       []domain.User
	registered *state.Cell[[]domain.User]
}

func NewCredentialStore(ctx context.Context, store ports.DurableStore, seed []domain.User, log zerolog.Logger) *CredentialStore {
	return &CredentialStore{
		seed:       slices.Clone(seed),
		registered: state.NewCell(ctx, store, KeyRegisteredUsers, []domain.User{}, log),
	}
}

// Users yields seed users followed by registered users.
func (c *CredentialStore) Users() iter.Seq[domain.User] {
	registered := c.registered.Value()
	return func(yield func(domain.User) bool) {
		for _, u := range c.seed {
			if !yield(u) {
				return
			}
		}
		for _, u := range registered {
			if !yield(u) {
				return
			}
		}
	}
}

// Registered returns a copy of the runtime-registered users.
func (c *CredentialStore) Registered() []domain.User {
	return slices.Clone(c.registered.Value())
}

// Authenticate returns the first user whose username and password both match
// exactly, searching seed users before registered ones.
func (c *CredentialStore) Authenticate(username, password string) (domain.User, bool) {
	for u := range c.Users() {
		if u.Username == username && u.Password == password {
			return u, true
		}
	}
	return domain.User{}, false
}

// Exists reports whether username is taken in either sequence.
func (c *CredentialStore) Exists(username string) bool {
	return c.taken(c.registered.Value(), username)
}

// Register appends u to the registered users unless its username is already
// taken. The check and the append happen under the cell lock.
func (c *CredentialStore) Register(ctx context.Context, u domain.User) bool {
	return c.registered.Modify(ctx, func(prev []domain.User) ([]domain.User, bool) {
		if c.taken(prev, u.Username) {
			return prev, false
		}
		next := make([]domain.User, 0, len(prev)+1)
		next = append(next, prev...)
		return append(next, u), true
	})
}

func (c *CredentialStore) taken(registered []domain.User, username string) bool {
	byName := func(u domain.User) bool { return u.Username == username }
	return slices.ContainsFunc(c.seed, byName) || slices.ContainsFunc(registered, byName)
}
