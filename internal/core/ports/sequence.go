package ports

import "context"

// SequenceRepository hands out monotonically increasing values per named
// counter. Backs server-assigned document numbers.
type SequenceRepository interface {
	Next(ctx context.Context, name string) (int64, error)
}
