package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"

	"github.com/thaalam/admin-system/internal/core/domain"
	"github.com/thaalam/admin-system/internal/core/ports"
)

// MediaProcessorService consumes queued media jobs: it checksums the stored
// file and flips the podcast's media status from pending to ready, or to
// failed when the file cannot be read back.
type MediaProcessorService struct {
	repo ports.ResourceRepository[*domain.Podcast]
	log  zerolog.Logger
}

func NewMediaProcessorService(repo ports.ResourceRepository[*domain.Podcast], log zerolog.Logger) *MediaProcessorService {
	return &MediaProcessorService{repo: repo, log: log}
}

func (s *MediaProcessorService) Process(ctx context.Context, job ports.MediaJob) error {
	pod, err := s.repo.FindByID(ctx, job.PodcastID)
	if err != nil {
		return fmt.Errorf("process media: %w", err)
	}
	if pod.Media == nil {
		return fmt.Errorf("process media: %w", domain.ErrMediaNotAttached)
	}

	checksum, err := checksumFile(job.Path)
	if err != nil {
		pod.Media.Status = domain.MediaFailed
		if updateErr := s.repo.Update(ctx, pod); updateErr != nil {
			s.log.Error().Err(updateErr).Str("podcast_id", pod.ID).Msg("failed to record media failure")
		}
		return fmt.Errorf("process media: %w", err)
	}

	pod.Media.Status = domain.MediaReady
	pod.Media.Checksum = checksum
	if err := s.repo.Update(ctx, pod); err != nil {
		return fmt.Errorf("process media: %w", err)
	}

	s.log.Info().Str("podcast_id", pod.ID).Str("checksum", checksum).Msg("media processed")
	return nil
}

func checksumFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}
