package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/thaalam/admin-system/internal/api/metrics"
	"github.com/thaalam/admin-system/internal/core/domain"
	"github.com/thaalam/admin-system/internal/core/ports"
	"github.com/thaalam/admin-system/internal/core/service"
)

// BannerHandler accepts the banner create/update as multipart, image file
// alongside the other fields in the same submission.
type BannerHandler struct {
	banners ports.ResourceService[*domain.Banner]
	media   *service.MediaService
}

func NewBannerHandler(banners ports.ResourceService[*domain.Banner], media *service.MediaService) *BannerHandler {
	return &BannerHandler{banners: banners, media: media}
}

// Create handles POST /v1/banners (JSON or multipart).
func (h *BannerHandler) Create(c echo.Context) error {
	banner := &domain.Banner{}
	if err := c.Bind(banner); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	// Validate the fields before the image is stored, so a rejected draft
	// leaves no file behind.
	if err := c.Validate(banner); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	if file, err := c.FormFile("image"); err == nil {
		ref, err := h.media.Store(file, service.KindImage)
		if err != nil {
			return err
		}
		metrics.UploadsTotal.WithLabelValues(string(service.KindImage)).Inc()
		banner.Image = ref
	}

	created, err := h.banners.Create(c.Request().Context(), banner)
	if err != nil {
		return err
	}
	metrics.RecordsMutatedTotal.WithLabelValues(domain.ModuleBanners, "create").Inc()

	return c.JSON(http.StatusCreated, dataResponse[*domain.Banner]{Data: created})
}

// AttachImage handles POST /v1/banners/:id/image, replacing the banner image.
func (h *BannerHandler) AttachImage(c echo.Context) error {
	file, err := c.FormFile("image")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "image file is required")
	}

	banner, err := h.banners.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}

	ref, err := h.media.Store(file, service.KindImage)
	if err != nil {
		return err
	}
	metrics.UploadsTotal.WithLabelValues(string(service.KindImage)).Inc()

	banner.Image = ref
	updated, err := h.banners.Update(c.Request().Context(), banner)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dataResponse[*domain.Banner]{Data: updated})
}

// AgreementHandler attaches the signed PDF to an existing agreement.
type AgreementHandler struct {
	agreements ports.ResourceService[*domain.Agreement]
	media      *service.MediaService
}

func NewAgreementHandler(agreements ports.ResourceService[*domain.Agreement], media *service.MediaService) *AgreementHandler {
	return &AgreementHandler{agreements: agreements, media: media}
}

// AttachDocument handles PUT /v1/agreements/:id/document.
func (h *AgreementHandler) AttachDocument(c echo.Context) error {
	file, err := c.FormFile("document")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "document file is required")
	}

	agreement, err := h.agreements.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}

	ref, err := h.media.Store(file, service.KindDocument)
	if err != nil {
		return err
	}
	metrics.UploadsTotal.WithLabelValues(string(service.KindDocument)).Inc()

	agreement.Document = ref
	updated, err := h.agreements.Update(c.Request().Context(), agreement)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dataResponse[*domain.Agreement]{Data: updated})
}

// PodcastHandler implements the second step of the two-step podcast flow.
type PodcastHandler struct {
	podcasts *service.PodcastService
}

func NewPodcastHandler(podcasts *service.PodcastService) *PodcastHandler {
	return &PodcastHandler{podcasts: podcasts}
}

// AttachMedia handles POST /v1/podcasts/:id/media. Processing happens
// asynchronously, so the response is 202 with media still pending.
func (h *PodcastHandler) AttachMedia(c echo.Context) error {
	file, err := c.FormFile("media")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "media file is required")
	}

	pod, err := h.podcasts.AttachMedia(c.Request().Context(), c.Param("id"), file)
	if err != nil {
		return err
	}
	metrics.UploadsTotal.WithLabelValues(string(service.KindAudio)).Inc()

	return c.JSON(http.StatusAccepted, dataResponse[*domain.Podcast]{Data: pod})
}

// AttachCover handles POST /v1/podcasts/:id/cover.
func (h *PodcastHandler) AttachCover(c echo.Context) error {
	file, err := c.FormFile("cover")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "cover file is required")
	}

	pod, err := h.podcasts.AttachCover(c.Request().Context(), c.Param("id"), file)
	if err != nil {
		return err
	}
	metrics.UploadsTotal.WithLabelValues(string(service.KindImage)).Inc()

	return c.JSON(http.StatusOK, dataResponse[*domain.Podcast]{Data: pod})
}
