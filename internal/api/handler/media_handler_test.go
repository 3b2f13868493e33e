package handler

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/thaalam/admin-system/internal/core/domain"
	"github.com/thaalam/admin-system/internal/core/ports"
	"github.com/thaalam/admin-system/internal/core/service"
)

type stubBannerService struct {
	createFn func(ctx context.Context, rec *domain.Banner) (*domain.Banner, error)
}

func (s *stubBannerService) List(ctx context.Context, q ports.ListQuery) (*ports.Page[*domain.Banner], error) {
	return nil, nil
}

func (s *stubBannerService) Get(ctx context.Context, id string) (*domain.Banner, error) {
	return nil, domain.ErrNotFound
}

func (s *stubBannerService) Create(ctx context.Context, rec *domain.Banner) (*domain.Banner, error) {
	return s.createFn(ctx, rec)
}

func (s *stubBannerService) Update(ctx context.Context, rec *domain.Banner) (*domain.Banner, error) {
	return rec, nil
}

func (s *stubBannerService) Delete(ctx context.Context, id string) error {
	return nil
}

func bannerForm(t *testing.T, fields map[string]string, withImage bool) (*http.Request, *httptest.ResponseRecorder) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		_ = w.WriteField(k, v)
	}
	if withImage {
		part, err := w.CreatePart(map[string][]string{
			"Content-Disposition": {`form-data; name="image"; filename="home.png"`},
			"Content-Type":        {"image/png"},
		})
		if err != nil {
			t.Fatalf("create image part: %v", err)
		}
		_, _ = part.Write([]byte("png bytes"))
	}
	_ = w.Close()

	req := httptest.NewRequest(http.MethodPost, "/v1/banners", &buf)
	req.Header.Set(echo.HeaderContentType, w.FormDataContentType())
	return req, httptest.NewRecorder()
}

func TestBannerCreate_StoresImageWithFields(t *testing.T) {
	e := echo.New()
	e.Validator = NewValidator()
	dir := t.TempDir()
	media := service.NewMediaService(dir, 1<<20, zerolog.Nop())

	stub := &stubBannerService{
		createFn: func(ctx context.Context, rec *domain.Banner) (*domain.Banner, error) {
			if rec.Image == nil {
				t.Fatalf("expected image reference on the banner")
			}
			rec.ID = "b1"
			return rec, nil
		},
	}
	h := NewBannerHandler(stub, media)

	req, rec := bannerForm(t, map[string]string{
		"title":    "Home takeover",
		"position": "top",
		"language": "ta",
	}, true)
	c := e.NewContext(req, rec)

	if err := h.Create(c); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read upload dir: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected 1 stored file, got %d", len(entries))
	}
}

func TestBannerCreate_ValidationFailureStoresNothing(t *testing.T) {
	e := echo.New()
	e.Validator = NewValidator()
	dir := t.TempDir()
	media := service.NewMediaService(dir, 1<<20, zerolog.Nop())

	stub := &stubBannerService{
		createFn: func(ctx context.Context, rec *domain.Banner) (*domain.Banner, error) {
			t.Fatalf("invalid banner must never reach the service")
			return nil, nil
		},
	}
	h := NewBannerHandler(stub, media)

	// Title missing, so the draft fails validation even though an image file
	// rides along in the same submission.
	req, rec := bannerForm(t, map[string]string{
		"position": "top",
		"language": "ta",
	}, true)
	c := e.NewContext(req, rec)

	err := h.Create(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %v", err)
	}
	entries, readErr := os.ReadDir(dir)
	if readErr != nil {
		t.Fatalf("read upload dir: %v", readErr)
	}
	if len(entries) != 0 {
		t.Fatalf("rejected draft must leave no file behind, found %d", len(entries))
	}
}
