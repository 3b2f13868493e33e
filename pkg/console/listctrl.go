package console

import (
	"context"
	"sync"
	"time"
)

const defaultSearchDebounce = 450 * time.Millisecond

// ListController drives one paginated list screen: it owns the query state
// (page, search, filters), fetches pages through the client, and exposes the
// current records and pagination for rendering.
//
// Fetches are tagged with a generation counter. A response only lands if no
// newer fetch was issued while it was in flight, so rapid filter or search
// changes can never leave the screen showing results for an older query.
type ListController[T any] struct {
	client   *Client
	path     string
	debounce time.Duration
	onChange func()
	notifier Notifier

	mu         sync.Mutex
	query      Query
	gen        uint64
	timer      *time.Timer
	records    []T
	total      int64
	totalPages int
	loading    bool
	loaded     bool
	err        error
}

// ListOption configures a ListController.
type ListOption func(*listOptions)

type listOptions struct {
	pageSize int
	debounce time.Duration
	filters  map[string]string
	onChange func()
	notifier Notifier
}

// WithPageSize sets the page size requested from the server.
func WithPageSize(n int) ListOption {
	return func(o *listOptions) { o.pageSize = n }
}

// WithSearchDebounce overrides the delay between the last keystroke and the
// search request. Mostly useful in tests.
func WithSearchDebounce(d time.Duration) ListOption {
	return func(o *listOptions) { o.debounce = d }
}

// WithInitialFilters seeds the filter state before the first fetch.
func WithInitialFilters(filters map[string]string) ListOption {
	return func(o *listOptions) { o.filters = filters }
}

// WithOnChange registers a callback invoked after every state change, for
// triggering a re-render.
func WithOnChange(fn func()) ListOption {
	return func(o *listOptions) { o.onChange = fn }
}

// WithListNotifier sets the notifier told about fetch failures.
func WithListNotifier(n Notifier) ListOption {
	return func(o *listOptions) { o.notifier = n }
}

func NewListController[T any](client *Client, path string, opts ...ListOption) *ListController[T] {
	o := listOptions{debounce: defaultSearchDebounce, notifier: NopNotifier{}}
	for _, opt := range opts {
		opt(&o)
	}
	filters := make(map[string]string, len(o.filters))
	for k, v := range o.filters {
		filters[k] = v
	}
	return &ListController[T]{
		client:   client,
		path:     path,
		debounce: o.debounce,
		onChange: o.onChange,
		notifier: o.notifier,
		query: Query{
			Page:     1,
			PageSize: o.pageSize,
			Filters:  filters,
		},
	}
}

// Refetch reloads the current query. On failure the previous records stay on
// screen and Err reports the failure.
func (l *ListController[T]) Refetch(ctx context.Context) {
	l.mu.Lock()
	l.fetchLocked(ctx)
}

// SetPage moves to page n, clamped to the known page range, and fetches.
func (l *ListController[T]) SetPage(ctx context.Context, n int) {
	l.mu.Lock()
	if n < 1 {
		n = 1
	}
	if l.totalPages > 0 && n > l.totalPages {
		n = l.totalPages
	}
	l.query.Page = n
	l.fetchLocked(ctx)
}

// SetFilter changes one filter value, resets to page 1, and fetches. An empty
// value clears the filter.
func (l *ListController[T]) SetFilter(ctx context.Context, key, value string) {
	l.mu.Lock()
	if l.query.Filters == nil {
		l.query.Filters = make(map[string]string)
	}
	if value == "" {
		delete(l.query.Filters, key)
	} else {
		l.query.Filters[key] = value
	}
	l.query.Page = 1
	l.fetchLocked(ctx)
}

// SetSearch updates the search term. The fetch is debounced: only after the
// term has been stable for the debounce window does a single request go out,
// so typing a word issues one query, not one per keystroke.
func (l *ListController[T]) SetSearch(ctx context.Context, term string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.query.Search = term
	l.query.Page = 1
	if l.timer != nil {
		l.timer.Stop()
	}
	l.timer = time.AfterFunc(l.debounce, func() {
		l.mu.Lock()
		l.fetchLocked(ctx)
	})
}

// Close stops any pending debounced fetch.
func (l *ListController[T]) Close() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.timer != nil {
		l.timer.Stop()
		l.timer = nil
	}
}

// fetchLocked issues a fetch for the current query. The caller must hold the
// lock; it is released while the request is in flight and re-taken to apply
// the response, which is dropped if a newer fetch was issued meanwhile.
func (l *ListController[T]) fetchLocked(ctx context.Context) {
	l.gen++
	gen := l.gen
	l.loading = true

	q := l.query
	q.Filters = make(map[string]string, len(l.query.Filters))
	for k, v := range l.query.Filters {
		q.Filters[k] = v
	}
	l.mu.Unlock()

	page, err := List[T](ctx, l.client, l.path, q)

	l.mu.Lock()
	defer l.mu.Unlock()
	if gen != l.gen {
		return
	}
	l.loading = false
	l.loaded = true
	if err != nil {
		l.err = err
		l.notifier.Error(err.Error())
		l.notify()
		return
	}
	l.err = nil
	l.records = page.Records
	l.total = page.TotalRecords
	l.totalPages = page.TotalPages
	if page.CurrentPage > 0 {
		l.query.Page = page.CurrentPage
	}
	l.notify()
}

func (l *ListController[T]) notify() {
	if l.onChange != nil {
		l.onChange()
	}
}

// Records returns the records currently on screen.
func (l *ListController[T]) Records() []T {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]T, len(l.records))
	copy(out, l.records)
	return out
}

// Total returns the total record count across all pages.
func (l *ListController[T]) Total() int64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.total
}

// Page returns the current 1-based page number.
func (l *ListController[T]) Page() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.query.Page
}

// TotalPages returns the page count from the last successful fetch.
func (l *ListController[T]) TotalPages() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.totalPages
}

// Search returns the current search term.
func (l *ListController[T]) Search() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.query.Search
}

// Loading reports whether a fetch is in flight.
func (l *ListController[T]) Loading() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.loading
}

// Err returns the error from the last fetch, nil after a success.
func (l *ListController[T]) Err() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.err
}

// Empty reports whether the list has loaded and genuinely has no records.
// It stays false while the first fetch is still in flight, so screens can
// distinguish "nothing matched" from "still loading".
func (l *ListController[T]) Empty() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.loaded && !l.loading && l.err == nil && len(l.records) == 0
}
