package analyses

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"lexwatch-backend/internal/analyzer"
	"lexwatch-backend/internal/documents"
	"lexwatch-backend/internal/shared/server/respond"
)

// Handler exposes the document analysis operations over HTTP.
type Handler struct {
	Analyzer *analyzer.Analyzer
	Docs     documents.DocumentsRepo
}

// NewHandler constructs a Handler.
func NewHandler(an *analyzer.Analyzer, docs documents.DocumentsRepo) *Handler {
	return &Handler{Analyzer: an, Docs: docs}
}

// RegisterRoutes attaches analysis routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/analyses/comprehensive", h.comprehensive)
	rg.POST("/analyses/search", h.search)
	rg.POST("/analyses/tracking", h.tracking)
	rg.POST("/analyses/summary", h.summary)
	rg.POST("/analyses/structure", h.structure)
	rg.POST("/analyses/compliance", h.compliance)
}

// resolveText returns the document text for a request, loading it from the
// corpus when only a document ID was sent. The bool result reports whether a
// response has already been written.
func (h *Handler) resolveText(c *gin.Context, req analyzeRequest) (string, bool) {
	if strings.TrimSpace(req.Text) != "" {
		return req.Text, false
	}
	if req.DocumentID == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "documentId or text is required", nil)
		return "", true
	}
	doc, err := h.Docs.GetByID(c.Request.Context(), req.DocumentID)
	if err != nil {
		switch {
		case errors.Is(err, documents.ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "document not found", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to load document", nil)
		}
		return "", true
	}
	return doc.Text, false
}

func bindAnalyzeRequest(c *gin.Context) (analyzeRequest, bool) {
	var req analyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return analyzeRequest{}, false
	}
	return req, true
}

func (h *Handler) comprehensive(c *gin.Context) {
	req, ok := bindAnalyzeRequest(c)
	if !ok {
		return
	}
	text, done := h.resolveText(c, req)
	if done {
		return
	}
	result := h.Analyzer.ComprehensiveDocumentAnalysis(c.Request.Context(), text)
	respond.JSON(c, http.StatusOK, result)
}

func (h *Handler) search(c *gin.Context) {
	req, ok := bindAnalyzeRequest(c)
	if !ok {
		return
	}
	if strings.TrimSpace(req.Query) == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "query is required", nil)
		return
	}
	text, done := h.resolveText(c, req)
	if done {
		return
	}
	result := h.Analyzer.AIPoweredSearch(c.Request.Context(), text, req.Query)
	respond.JSON(c, http.StatusOK, result)
}

func (h *Handler) tracking(c *gin.Context) {
	req, ok := bindAnalyzeRequest(c)
	if !ok {
		return
	}
	if strings.TrimSpace(req.Topic) == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "topic is required", nil)
		return
	}
	text, done := h.resolveText(c, req)
	if done {
		return
	}
	result := h.Analyzer.AIRegulatoryTracking(c.Request.Context(), text, req.Topic)
	respond.JSON(c, http.StatusOK, result)
}

func (h *Handler) summary(c *gin.Context) {
	req, ok := bindAnalyzeRequest(c)
	if !ok {
		return
	}
	text, done := h.resolveText(c, req)
	if done {
		return
	}
	result := h.Analyzer.GenerateAISummary(c.Request.Context(), text)
	respond.JSON(c, http.StatusOK, result)
}

func (h *Handler) structure(c *gin.Context) {
	req, ok := bindAnalyzeRequest(c)
	if !ok {
		return
	}
	text, done := h.resolveText(c, req)
	if done {
		return
	}
	result := h.Analyzer.ExtractDocumentStructure(c.Request.Context(), text)
	respond.JSON(c, http.StatusOK, result)
}

func (h *Handler) compliance(c *gin.Context) {
	req, ok := bindAnalyzeRequest(c)
	if !ok {
		return
	}
	if len(req.Sectors) == 0 {
		respond.Error(c, http.StatusBadRequest, "validation_error", "sectors is required", nil)
		return
	}
	text, done := h.resolveText(c, req)
	if done {
		return
	}
	result := h.Analyzer.AssessComplianceImpact(c.Request.Context(), text, req.Sectors)
	respond.JSON(c, http.StatusOK, result)
}
