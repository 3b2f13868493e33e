package service

import (
	"context"
	"mime/multipart"

	"github.com/rs/zerolog"

	"github.com/thaalam/admin-system/internal/core/domain"
	"github.com/thaalam/admin-system/internal/core/ports"
)

// PodcastService is the podcasts resource plus the second step of the
// two-step flow: details are created first, the media file is attached
// afterwards against the known record id and processed asynchronously.
type PodcastService struct {
	*Resource[*domain.Podcast]
	repo  ports.ResourceRepository[*domain.Podcast]
	media *MediaService
	queue ports.MediaQueue
	log   zerolog.Logger
}

func NewPodcastService(
	repo ports.ResourceRepository[*domain.Podcast],
	media *MediaService,
	queue ports.MediaQueue,
	pageSize int,
	log zerolog.Logger,
) *PodcastService {
	return &PodcastService{
		Resource: NewResource[*domain.Podcast](domain.ModulePodcasts, repo, pageSize, log),
		repo:     repo,
		media:    media,
		queue:    queue,
		log:      log,
	}
}

func (s *PodcastService) Create(ctx context.Context, p *domain.Podcast) (*domain.Podcast, error) {
	if p.Status == "" {
		p.Status = "draft"
	}
	return s.Resource.Create(ctx, p)
}

// AttachMedia stores the uploaded audio/video file against an existing
// podcast and enqueues its processing job. The record goes out with media in
// the pending state; the worker flips it to ready (or failed) later.
func (s *PodcastService) AttachMedia(ctx context.Context, id string, file *multipart.FileHeader) (*domain.Podcast, error) {
	pod, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	ref, err := s.media.Store(file, KindAudio, KindVideo)
	if err != nil {
		return nil, err
	}

	pod.Media = &domain.MediaRef{FileRef: *ref, Status: domain.MediaPending}
	if _, err := s.Resource.Update(ctx, pod); err != nil {
		return nil, err
	}

	s.queue.Enqueue(ports.MediaJob{PodcastID: pod.ID, Path: ref.Path})
	s.log.Info().Str("podcast_id", pod.ID).Str("file", ref.FileName).Msg("media attached, processing queued")
	return pod, nil
}

// AttachCover stores the episode cover image. Covers are small enough to
// handle synchronously, no queue involved.
func (s *PodcastService) AttachCover(ctx context.Context, id string, file *multipart.FileHeader) (*domain.Podcast, error) {
	pod, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	ref, err := s.media.Store(file, KindImage)
	if err != nil {
		return nil, err
	}

	pod.Cover = ref
	return s.Resource.Update(ctx, pod)
}
