package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/thaalam/admin-system/internal/core/domain"
	"github.com/thaalam/admin-system/internal/core/ports"
)

var ErrPasswordRequired = errors.New("password is required")

// MemberService wraps the generic resource service with credential handling:
// plaintext passwords are hashed on the way in and never persisted.
type MemberService struct {
	*Resource[*domain.Member]
}

func NewMemberService(repo ports.MemberRepository, pageSize int, log zerolog.Logger) *MemberService {
	return &MemberService{
		Resource: NewResource[*domain.Member](domain.ModuleMembers, repo, pageSize, log),
	}
}

func (s *MemberService) Create(ctx context.Context, m *domain.Member) (*domain.Member, error) {
	if m.Password == "" {
		return nil, ErrPasswordRequired
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(m.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	m.PasswordHash = string(hash)
	m.Password = ""
	if m.Status == "" {
		m.Status = domain.MemberActive
	}
	return s.Resource.Create(ctx, m)
}

// Update rehashes only when a new password was supplied; an empty password
// keeps the stored hash.
func (s *MemberService) Update(ctx context.Context, m *domain.Member) (*domain.Member, error) {
	if m.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(m.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		m.PasswordHash = string(hash)
		m.Password = ""
	}
	return s.Resource.Update(ctx, m)
}
