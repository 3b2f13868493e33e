package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/thaalam/admin-system/internal/api/metrics"
	"github.com/thaalam/admin-system/internal/core/domain"
	"github.com/thaalam/admin-system/internal/core/ports"
)

// paginationResponse mirrors the envelope every list screen consumes.
type paginationResponse struct {
	TotalRecords int64 `json:"total_records"`
	CurrentPage  int   `json:"current_page"`
	TotalPages   int   `json:"total_pages"`
}

type listResponse[T any] struct {
	Data       []T                `json:"data"`
	Pagination paginationResponse `json:"pagination"`
}

type dataResponse[T any] struct {
	Data T `json:"data"`
}

// ResourceHandler serves the uniform list/get/create/update/delete surface
// shared by every entity screen. Entity-specific behavior lives in the
// service behind it, never here.
type ResourceHandler[T domain.Record] struct {
	service    ports.ResourceService[T]
	newRecord  func() T
	module     string
	filterKeys []string
}

func NewResourceHandler[T domain.Record](
	module string,
	service ports.ResourceService[T],
	newRecord func() T,
	filterKeys []string,
) *ResourceHandler[T] {
	return &ResourceHandler[T]{
		service:    service,
		newRecord:  newRecord,
		module:     module,
		filterKeys: filterKeys,
	}
}

// List handles GET /v1/<entity>.
//
// @Summary      List a page of records
// @Produce      json
// @Security     BearerAuth
// @Param        page       query     int     false  "1-based page number"
// @Param        page_size  query     int     false  "Records per page (capped server-side)"
// @Param        search     query     string  false  "Free-text search"
// @Success      200        {object}  map[string]any
// @Failure      401        {object}  map[string]string
// @Failure      403        {object}  map[string]string
func (h *ResourceHandler[T]) List(c echo.Context) error {
	q := ports.ListQuery{
		Page:     intQueryParam(c, "page", 1),
		PageSize: intQueryParam(c, "page_size", 0),
		Search:   c.QueryParam("search"),
		Filters:  make(map[string]string, len(h.filterKeys)),
	}
	for _, key := range h.filterKeys {
		if v := c.QueryParam(key); v != "" {
			q.Filters[key] = v
		}
	}

	page, err := h.service.List(c.Request().Context(), q)
	if err != nil {
		return err
	}
	metrics.ListQueriesTotal.WithLabelValues(h.module).Inc()

	return c.JSON(http.StatusOK, listResponse[T]{
		Data: page.Records,
		Pagination: paginationResponse{
			TotalRecords: page.TotalRecords,
			CurrentPage:  page.CurrentPage,
			TotalPages:   page.TotalPages,
		},
	})
}

// Get handles GET /v1/<entity>/:id.
func (h *ResourceHandler[T]) Get(c echo.Context) error {
	rec, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dataResponse[T]{Data: rec})
}

// Create handles POST /v1/<entity>.
func (h *ResourceHandler[T]) Create(c echo.Context) error {
	rec := h.newRecord()
	if err := c.Bind(rec); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(rec); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	created, err := h.service.Create(c.Request().Context(), rec)
	if err != nil {
		return err
	}
	metrics.RecordsMutatedTotal.WithLabelValues(h.module, "create").Inc()

	return c.JSON(http.StatusCreated, dataResponse[T]{Data: created})
}

// Update handles PUT /v1/<entity>/:id. The stored record is loaded first and
// the payload bound over it, so identity and creation time survive a partial
// body.
func (h *ResourceHandler[T]) Update(c echo.Context) error {
	rec, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	if err := c.Bind(rec); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(rec); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	updated, err := h.service.Update(c.Request().Context(), rec)
	if err != nil {
		return err
	}
	metrics.RecordsMutatedTotal.WithLabelValues(h.module, "update").Inc()

	return c.JSON(http.StatusOK, dataResponse[T]{Data: updated})
}

// Delete handles DELETE /v1/<entity>/:id. Deletion is hard; the only
// safeguard is the confirmation step on the console side.
func (h *ResourceHandler[T]) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	metrics.RecordsMutatedTotal.WithLabelValues(h.module, "delete").Inc()
	return c.NoContent(http.StatusNoContent)
}

func intQueryParam(c echo.Context, name string, fallback int) int {
	raw := c.QueryParam(name)
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return n
}
