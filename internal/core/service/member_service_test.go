package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/thaalam/admin-system/internal/core/domain"
)

func TestMemberCreate_HashesPassword(t *testing.T) {
	repo := newStubMemberRepo()
	svc := NewMemberService(repo, 20, zerolog.Nop())

	created, err := svc.Create(context.Background(), &domain.Member{
		Name:     "Eve",
		Username: "eve",
		Email:    "eve@example.com",
		Role:     domain.RoleStaff,
		Password: "plaintext",
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if created.Password != "" {
		t.Fatalf("plaintext password must be cleared")
	}
	if created.PasswordHash == "" || created.PasswordHash == "plaintext" {
		t.Fatalf("expected hashed password, got %q", created.PasswordHash)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(created.PasswordHash), []byte("plaintext")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
	if created.Status != domain.MemberActive {
		t.Fatalf("expected default active status, got %q", created.Status)
	}
}

func TestMemberCreate_PasswordRequired(t *testing.T) {
	svc := NewMemberService(newStubMemberRepo(), 20, zerolog.Nop())

	if _, err := svc.Create(context.Background(), &domain.Member{Username: "frank"}); err != ErrPasswordRequired {
		t.Fatalf("expected ErrPasswordRequired, got %v", err)
	}
}

func TestMemberUpdate_KeepsHashWhenPasswordEmpty(t *testing.T) {
	repo := newStubMemberRepo()
	svc := NewMemberService(repo, 20, zerolog.Nop())

	created, err := svc.Create(context.Background(), &domain.Member{
		Name:     "Grace",
		Username: "grace",
		Email:    "grace@example.com",
		Role:     domain.RoleStaff,
		Password: "original",
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	originalHash := created.PasswordHash

	created.Phone = "555-0100"
	updated, err := svc.Update(context.Background(), created)
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if updated.PasswordHash != originalHash {
		t.Fatalf("hash must be preserved when no new password is given")
	}

	updated.Password = "rotated"
	rotated, err := svc.Update(context.Background(), updated)
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if rotated.PasswordHash == originalHash {
		t.Fatalf("hash must change when a new password is given")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(rotated.PasswordHash), []byte("rotated")); err != nil {
		t.Fatalf("new hash does not match new password: %v", err)
	}
}
