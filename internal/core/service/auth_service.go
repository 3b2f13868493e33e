package service

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/thaalam/admin-system/internal/core/domain"
	"github.com/thaalam/admin-system/internal/core/ports"
)

// AuthService implements login and logout. A successful login writes the
// session (identity plus the member's module grants, loaded once) to the
// session store and issues a JWT carrying the session id.
type AuthService struct {
	members   ports.MemberRepository
	sessions  ports.SessionStore
	jwtSecret string
	tokenTTL  time.Duration
	log       zerolog.Logger
}

func NewAuthService(members ports.MemberRepository, sessions ports.SessionStore, jwtSecret string, tokenTTL time.Duration, log zerolog.Logger) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 12 * time.Hour
	}
	return &AuthService{
		members:   members,
		sessions:  sessions,
		jwtSecret: jwtSecret,
		tokenTTL:  tokenTTL,
		log:       log,
	}
}

func (s *AuthService) Login(ctx context.Context, username, password string) (string, *domain.Session, error) {
	if username == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	member, err := s.members.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}
	if member.Status == domain.MemberDisabled {
		return "", nil, domain.ErrInvalidCredentials
	}

	if bcrypt.CompareHashAndPassword([]byte(member.PasswordHash), []byte(password)) != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	sess := &domain.Session{
		ID:          uuid.NewString(),
		MemberID:    member.ID,
		Username:    member.Username,
		DisplayName: member.Name,
		Role:        member.Role,
		Grants:      member.Grants,
		LoggedInAt:  time.Now().UTC(),
	}
	if err := s.sessions.Save(ctx, sess); err != nil {
		return "", nil, err
	}

	token, err := s.generateToken(sess)
	if err != nil {
		return "", nil, err
	}

	s.log.Info().Str("username", member.Username).Str("session_id", sess.ID).Msg("member logged in")
	return token, sess, nil
}

func (s *AuthService) Logout(ctx context.Context, sessionID string) error {
	if err := s.sessions.Delete(ctx, sessionID); err != nil {
		return err
	}
	s.log.Info().Str("session_id", sessionID).Msg("session destroyed")
	return nil
}

func (s *AuthService) generateToken(sess *domain.Session) (string, error) {
	claims := jwt.MapClaims{
		"sid":      sess.ID,
		"username": sess.Username,
		"role":     sess.Role,
		"exp":      time.Now().Add(s.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}
