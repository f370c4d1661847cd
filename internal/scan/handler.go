package scan

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"lexwatch-backend/internal/shared/server/middleware"
	"lexwatch-backend/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the scan service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches scan routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/scans", h.start)
	rg.GET("/scans/:id", h.get)
}

type startScanRequest struct {
	Kind      string  `json:"kind"`
	Query     string  `json:"query"`
	Threshold float64 `json:"threshold"`
	Folder    string  `json:"folder"`
	Limit     int     `json:"limit"`
}

func (h *Handler) start(c *gin.Context) {
	var req startScanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	ctx := WithRequestID(c.Request.Context(), middleware.RequestIDFromContext(c))
	job, err := h.Svc.Start(ctx, req.Kind, req.Query, req.Threshold, req.Folder, req.Limit)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to start scan", nil)
		}
		return
	}

	respond.JSON(c, http.StatusAccepted, gin.H{
		"jobId":  job.ID,
		"kind":   job.Kind,
		"status": job.Status,
		"total":  job.Total,
	})
}

func (h *Handler) get(c *gin.Context) {
	job, err := h.Svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "scan job not found", nil)
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to fetch scan job", nil)
		}
		return
	}

	respond.JSON(c, http.StatusOK, job)
}
