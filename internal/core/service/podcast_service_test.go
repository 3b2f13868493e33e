package service

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"

	"github.com/thaalam/admin-system/internal/core/domain"
	"github.com/thaalam/admin-system/internal/core/ports"
)

type stubPodcastRepo struct {
	podcasts map[string]*domain.Podcast
}

func newStubPodcastRepo() *stubPodcastRepo {
	return &stubPodcastRepo{podcasts: make(map[string]*domain.Podcast)}
}

func (r *stubPodcastRepo) List(_ context.Context, _ ports.ListQuery) ([]*domain.Podcast, int64, error) {
	out := make([]*domain.Podcast, 0, len(r.podcasts))
	for _, p := range r.podcasts {
		out = append(out, p)
	}
	return out, int64(len(out)), nil
}

func (r *stubPodcastRepo) FindByID(_ context.Context, id string) (*domain.Podcast, error) {
	p, ok := r.podcasts[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return p, nil
}

func (r *stubPodcastRepo) Insert(_ context.Context, p *domain.Podcast) error {
	r.podcasts[p.ID] = p
	return nil
}

func (r *stubPodcastRepo) Update(_ context.Context, p *domain.Podcast) error {
	if _, ok := r.podcasts[p.ID]; !ok {
		return domain.ErrNotFound
	}
	r.podcasts[p.ID] = p
	return nil
}

func (r *stubPodcastRepo) Delete(_ context.Context, id string) error {
	delete(r.podcasts, id)
	return nil
}

type stubQueue struct {
	jobs []ports.MediaJob
}

func (q *stubQueue) Enqueue(job ports.MediaJob) {
	q.jobs = append(q.jobs, job)
}

func newPodcastService(repo *stubPodcastRepo, dir string, queue *stubQueue) *PodcastService {
	media := NewMediaService(dir, 1<<20, zerolog.Nop())
	return NewPodcastService(repo, media, queue, 20, zerolog.Nop())
}

func TestPodcastAttachMedia_TwoStepFlow(t *testing.T) {
	repo := newStubPodcastRepo()
	queue := &stubQueue{}
	svc := newPodcastService(repo, t.TempDir(), queue)

	// Step one: create the episode details without any file.
	created, err := svc.Create(context.Background(), &domain.Podcast{
		Title:    "Episode 1",
		Host:     "Priya",
		Language: "ta",
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if created.Status != "draft" {
		t.Fatalf("expected draft status, got %q", created.Status)
	}
	if created.Media != nil {
		t.Fatalf("no media should exist before the attach step")
	}

	// Step two: attach the media file against the known id.
	pod, err := svc.AttachMedia(context.Background(), created.ID,
		uploadHeader(t, "ep1.mp3", "audio/mpeg", []byte("audio")))
	if err != nil {
		t.Fatalf("AttachMedia returned error: %v", err)
	}
	if pod.Media == nil {
		t.Fatalf("expected media on podcast")
	}
	if pod.Media.Status != domain.MediaPending {
		t.Fatalf("attached media must start pending, got %s", pod.Media.Status)
	}
	if len(queue.jobs) != 1 {
		t.Fatalf("expected 1 queued job, got %d", len(queue.jobs))
	}
	if queue.jobs[0].PodcastID != created.ID {
		t.Fatalf("job carries wrong podcast id: %s", queue.jobs[0].PodcastID)
	}
}

func TestPodcastAttachMedia_UnknownPodcast(t *testing.T) {
	svc := newPodcastService(newStubPodcastRepo(), t.TempDir(), &stubQueue{})

	_, err := svc.AttachMedia(context.Background(), "missing",
		uploadHeader(t, "ep1.mp3", "audio/mpeg", []byte("audio")))
	if err != domain.ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestPodcastAttachMedia_RejectsImage(t *testing.T) {
	repo := newStubPodcastRepo()
	queue := &stubQueue{}
	svc := newPodcastService(repo, t.TempDir(), queue)

	created, err := svc.Create(context.Background(), &domain.Podcast{Title: "Episode 2", Host: "Priya", Language: "ta"})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	_, err = svc.AttachMedia(context.Background(), created.ID,
		uploadHeader(t, "cover.png", "image/png", []byte("png")))
	if err != domain.ErrUnsupportedMedia {
		t.Fatalf("expected ErrUnsupportedMedia, got %v", err)
	}
	if len(queue.jobs) != 0 {
		t.Fatalf("rejected upload must not be queued")
	}
}

func TestMediaProcessor_MarksReady(t *testing.T) {
	repo := newStubPodcastRepo()
	queue := &stubQueue{}
	svc := newPodcastService(repo, t.TempDir(), queue)

	created, err := svc.Create(context.Background(), &domain.Podcast{Title: "Episode 3", Host: "Priya", Language: "ta"})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if _, err := svc.AttachMedia(context.Background(), created.ID,
		uploadHeader(t, "ep3.mp3", "audio/mpeg", []byte("audio-content"))); err != nil {
		t.Fatalf("AttachMedia returned error: %v", err)
	}

	processor := NewMediaProcessorService(repo, zerolog.Nop())
	if err := processor.Process(context.Background(), queue.jobs[0]); err != nil {
		t.Fatalf("Process returned error: %v", err)
	}

	stored, _ := repo.FindByID(context.Background(), created.ID)
	if stored.Media.Status != domain.MediaReady {
		t.Fatalf("expected ready status, got %s", stored.Media.Status)
	}
	if stored.Media.Checksum == "" {
		t.Fatalf("expected checksum to be recorded")
	}
}

func TestMediaProcessor_MarksFailedWhenFileGone(t *testing.T) {
	repo := newStubPodcastRepo()
	queue := &stubQueue{}
	dir := t.TempDir()
	svc := newPodcastService(repo, dir, queue)

	created, err := svc.Create(context.Background(), &domain.Podcast{Title: "Episode 4", Host: "Priya", Language: "ta"})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if _, err := svc.AttachMedia(context.Background(), created.ID,
		uploadHeader(t, "ep4.mp3", "audio/mpeg", []byte("audio"))); err != nil {
		t.Fatalf("AttachMedia returned error: %v", err)
	}

	// Delete the stored file out from under the worker.
	if err := os.Remove(filepath.Clean(queue.jobs[0].Path)); err != nil {
		t.Fatalf("remove stored file: %v", err)
	}

	processor := NewMediaProcessorService(repo, zerolog.Nop())
	if err := processor.Process(context.Background(), queue.jobs[0]); err == nil {
		t.Fatalf("expected processing error")
	}

	stored, _ := repo.FindByID(context.Background(), created.ID)
	if stored.Media.Status != domain.MediaFailed {
		t.Fatalf("expected failed status, got %s", stored.Media.Status)
	}
}
