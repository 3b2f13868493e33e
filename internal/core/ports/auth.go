package ports

import (
	"context"

	"github.com/thaalam/admin-system/internal/core/domain"
)

// MemberRepository extends the generic member collection with the lookup the
// login path needs.
type MemberRepository interface {
	ResourceRepository[*domain.Member]
	FindByUsername(ctx context.Context, username string) (*domain.Member, error)
}

// SessionStore persists login sessions. Sessions are written at login,
// deleted at logout, and otherwise only read.
type SessionStore interface {
	Save(ctx context.Context, sess *domain.Session) error
	Find(ctx context.Context, id string) (*domain.Session, error)
	Delete(ctx context.Context, id string) error
}

// AuthService implements login and logout.
type AuthService interface {
	Login(ctx context.Context, username, password string) (token string, sess *domain.Session, err error)
	Logout(ctx context.Context, sessionID string) error
}
