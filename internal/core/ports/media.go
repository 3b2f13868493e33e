package ports

import "context"

// MediaJob is a queued processing task for media attached to a podcast.
type MediaJob struct {
	PodcastID string
	Path      string
}

// MediaProcessor consumes queued media jobs.
type MediaProcessor interface {
	Process(ctx context.Context, job MediaJob) error
}

// MediaQueue is the enqueue side of the media pipeline.
type MediaQueue interface {
	Enqueue(job MediaJob)
}
