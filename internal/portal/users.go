package portal

import (
	"context"
	"time"

	"github.com/daniilsolovey/truck-portal/internal/db"
)

// SignIn describes a successful session check.
type SignIn struct {
	OpenID      string
	Name        string
	LoginMethod string
	Admin       bool
}

// UpsertSession records a sign-in and returns the stored user.
// Admin promotes the user; it never demotes an existing admin.
func (m *Manager) UpsertSession(ctx context.Context, in SignIn) (*User, error) {
	row := &db.User{
		OpenID:       in.OpenID,
		LastSignedIn: time.Now(),
	}
	if in.Name != "" {
		row.Name = &in.Name
	}
	if in.LoginMethod != "" {
		row.LoginMethod = &in.LoginMethod
	}
	if in.Admin {
		row.Role = db.RoleAdmin
	}

	user, err := m.db.UpsertUser(ctx, row)
	if err != nil {
		return nil, m.writeFailed(ctx, "upsert user", err)
	}

	return NewUser(user), nil
}

func (m *Manager) UserByOpenID(ctx context.Context, openID string) (*User, error) {
	user, err := m.db.UserByOpenID(ctx, openID)
	if err != nil {
		return nil, m.readFailed(ctx, "user by open id", err)
	}

	return NewUser(user), nil
}
