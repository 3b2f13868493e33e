package domain

import "time"

// FileRef describes an uploaded file kept outside the record itself.
type FileRef struct {
	FileName    string    `json:"file_name" bson:"file_name"`
	ContentType string    `json:"content_type" bson:"content_type"`
	SizeBytes   int64     `json:"size_bytes" bson:"size_bytes"`
	Path        string    `json:"-" bson:"path"`
	UploadedAt  time.Time `json:"uploaded_at" bson:"uploaded_at"`
}

// MediaStatus tracks the processing lifecycle of attached podcast media.
type MediaStatus string

const (
	MediaPending    MediaStatus = "pending"
	MediaProcessing MediaStatus = "processing"
	MediaReady      MediaStatus = "ready"
	MediaFailed     MediaStatus = "failed"
)

// MediaRef is a FileRef plus the processing state filled in asynchronously
// after the attach step.
type MediaRef struct {
	FileRef         `bson:",inline"`
	Status          MediaStatus `json:"status" bson:"status"`
	Checksum        string      `json:"checksum,omitempty" bson:"checksum,omitempty"`
	DurationSeconds int         `json:"duration_seconds,omitempty" bson:"duration_seconds,omitempty"`
}
