package console

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"
)

type newsItem struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

func writeListPage(w http.ResponseWriter, records []newsItem, total int64, currentPage, totalPages int) {
	_ = json.NewEncoder(w).Encode(map[string]any{
		"data": records,
		"pagination": map[string]any{
			"total_records": total,
			"current_page":  currentPage,
			"total_pages":   totalPages,
		},
	})
}

func TestListController_FetchAdoptsServerPagination(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("page"); got != "5" {
			t.Fatalf("expected page=5, got %q", got)
		}
		// 45 records at 20 per page: the server clamps page 5 to the last
		// page and reports it back.
		writeListPage(w, []newsItem{{ID: "n41", Title: "last"}}, 45, 3, 3)
	}))
	defer srv.Close()

	l := NewListController[newsItem](NewClient(srv.URL), "/v1/news")
	l.SetPage(context.Background(), 5)

	if l.Page() != 3 {
		t.Fatalf("controller must adopt the server's clamped page, got %d", l.Page())
	}
	if l.TotalPages() != 3 || l.Total() != 45 {
		t.Fatalf("unexpected pagination: pages=%d total=%d", l.TotalPages(), l.Total())
	}
	if len(l.Records()) != 1 {
		t.Fatalf("expected 1 record, got %d", len(l.Records()))
	}
}

func TestListController_SetPageClampsLocally(t *testing.T) {
	var gotPage string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPage = r.URL.Query().Get("page")
		writeListPage(w, nil, 45, 3, 3)
	}))
	defer srv.Close()

	l := NewListController[newsItem](NewClient(srv.URL), "/v1/news")
	l.Refetch(context.Background())

	// Page range is known after the first fetch, so an out-of-range request
	// never leaves the client.
	l.SetPage(context.Background(), 9)
	if gotPage != "3" {
		t.Fatalf("expected clamped request for page 3, got %q", gotPage)
	}
}

func TestListController_SearchDebounce(t *testing.T) {
	var mu sync.Mutex
	var searches []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		searches = append(searches, r.URL.Query().Get("search"))
		mu.Unlock()
		writeListPage(w, nil, 0, 1, 0)
	}))
	defer srv.Close()

	l := NewListController[newsItem](NewClient(srv.URL), "/v1/news",
		WithSearchDebounce(30*time.Millisecond))

	// Typing a word letter by letter must produce one request carrying the
	// final term, not one per keystroke.
	for _, term := range []string{"c", "co", "cou", "coup"} {
		l.SetSearch(context.Background(), term)
		time.Sleep(5 * time.Millisecond)
	}
	time.Sleep(100 * time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	if len(searches) != 1 {
		t.Fatalf("expected exactly 1 search request, got %d: %v", len(searches), searches)
	}
	if searches[0] != "coup" {
		t.Fatalf("expected final term, got %q", searches[0])
	}
}

func TestListController_StaleResponseDiscarded(t *testing.T) {
	firstArrived := make(chan struct{})
	releaseFirst := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query().Get("category")
		if q == "first" {
			close(firstArrived)
			<-releaseFirst
		}
		writeListPage(w, []newsItem{{ID: q, Title: q}}, 1, 1, 1)
	}))
	defer srv.Close()

	l := NewListController[newsItem](NewClient(srv.URL), "/v1/news")

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		l.SetFilter(context.Background(), "category", "first")
	}()
	<-firstArrived

	// A second filter change goes out while the first response is still in
	// flight and completes before it.
	l.SetFilter(context.Background(), "category", "second")

	close(releaseFirst)
	wg.Wait()

	records := l.Records()
	if len(records) != 1 || records[0].ID != "second" {
		t.Fatalf("stale first response must be discarded, got %+v", records)
	}
}

func TestListController_ErrorKeepsRecords(t *testing.T) {
	fail := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if fail {
			w.WriteHeader(http.StatusInternalServerError)
			_ = json.NewEncoder(w).Encode(map[string]string{"error": "internal server error"})
			return
		}
		writeListPage(w, []newsItem{{ID: "n1", Title: "keep me"}}, 1, 1, 1)
	}))
	defer srv.Close()

	l := NewListController[newsItem](NewClient(srv.URL), "/v1/news")
	l.Refetch(context.Background())
	if l.Err() != nil {
		t.Fatalf("first fetch failed: %v", l.Err())
	}

	fail = true
	l.Refetch(context.Background())

	if l.Err() == nil {
		t.Fatalf("expected error from failed fetch")
	}
	records := l.Records()
	if len(records) != 1 || records[0].Title != "keep me" {
		t.Fatalf("failed fetch must keep previous records, got %+v", records)
	}
}

type recordingNotifier struct {
	mu     sync.Mutex
	errors []string
}

func (n *recordingNotifier) Success(string) {}

func (n *recordingNotifier) Error(msg string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.errors = append(n.errors, msg)
}

func TestListController_FetchFailureNotifies(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "internal server error"})
	}))
	defer srv.Close()

	notifier := &recordingNotifier{}
	l := NewListController[newsItem](NewClient(srv.URL), "/v1/news",
		WithListNotifier(notifier))
	l.Refetch(context.Background())

	if l.Err() == nil {
		t.Fatalf("expected error from failed fetch")
	}
	notifier.mu.Lock()
	defer notifier.mu.Unlock()
	if len(notifier.errors) != 1 {
		t.Fatalf("expected one failure notification, got %v", notifier.errors)
	}
}

func TestListController_EmptyState(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeListPage(w, nil, 0, 1, 0)
	}))
	defer srv.Close()

	l := NewListController[newsItem](NewClient(srv.URL), "/v1/news")

	if l.Empty() {
		t.Fatalf("Empty must be false before the first fetch completes")
	}
	l.Refetch(context.Background())
	if !l.Empty() {
		t.Fatalf("Empty must be true after an empty successful fetch")
	}
}

func TestListController_FilterChangeResetsPage(t *testing.T) {
	pages := make(chan string, 4)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		pages <- fmt.Sprintf("%s|%s", r.URL.Query().Get("page"), r.URL.Query().Get("status"))
		writeListPage(w, nil, 45, 1, 3)
	}))
	defer srv.Close()

	l := NewListController[newsItem](NewClient(srv.URL), "/v1/news")
	l.Refetch(context.Background())
	l.SetPage(context.Background(), 3)
	l.SetFilter(context.Background(), "status", "published")

	<-pages
	<-pages
	if got := <-pages; got != "1|published" {
		t.Fatalf("filter change must reset to page 1, got %q", got)
	}
}
