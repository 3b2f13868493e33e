package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/thaalam/admin-system/internal/core/ports"
)

// SequenceService formats server-assigned document numbers, e.g.
// PAY-2026-00042. The numeric part comes from a named atomic counter, so a
// number handed out is never handed out again.
type SequenceService struct {
	repo ports.SequenceRepository
}

func NewSequenceService(repo ports.SequenceRepository) *SequenceService {
	return &SequenceService{repo: repo}
}

func (s *SequenceService) NextDocumentNumber(ctx context.Context, prefix string) (string, error) {
	n, err := s.repo.Next(ctx, strings.ToLower(prefix))
	if err != nil {
		return "", fmt.Errorf("next document number: %w", err)
	}
	return fmt.Sprintf("%s-%d-%05d", strings.ToUpper(prefix), time.Now().UTC().Year(), n), nil
}
