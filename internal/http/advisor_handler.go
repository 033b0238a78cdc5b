package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"smart-advisor/internal/domain"
	"smart-advisor/internal/service"
)

// AdvisorHandler holds dependencies for the advisory endpoints.
type AdvisorHandler struct {
	logger  *zap.Logger
	advisor *service.AdvisorService
	limiter service.ScoreRateLimiter
}

// NewAdvisorHandler creates an AdvisorHandler. limiter may be nil, in
// which case scoring is not rate limited.
func NewAdvisorHandler(logger *zap.Logger, advisor *service.AdvisorService, limiter service.ScoreRateLimiter) *AdvisorHandler {
	return &AdvisorHandler{logger: logger, advisor: advisor, limiter: limiter}
}

// Health handles GET /healthz.
func (h *AdvisorHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":        "ok",
		"questions":     h.advisor.Questionnaire().Len(),
		"catalog_items": h.advisor.Catalog().Len(),
	})
}

// GetQuestionnaire handles GET /questionnaire and returns the ordered
// question set for a front end to render.
func (h *AdvisorHandler) GetQuestionnaire(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"questions": h.advisor.Questionnaire().Questions()})
}

// GetCatalog handles GET /catalog and returns the loaded items.
func (h *AdvisorHandler) GetCatalog(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"traits": h.advisor.Catalog().Space().Dimensions(),
		"items":  h.advisor.Catalog().Items(),
	})
}

// Score handles POST /score. The body maps question id to the selected
// option id and must cover every question. With ?format=text the ranked
// result sheet is returned as plain text instead of JSON.
func (h *AdvisorHandler) Score(c *gin.Context) {
	var req struct {
		Answers map[string]string `json:"answers" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid score request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	if h.limiter != nil && !h.limiter.Allow(c.ClientIP()) {
		c.JSON(http.StatusTooManyRequests, gin.H{"error": "too many scoring requests"})
		return
	}

	rec, err := h.advisor.Score(req.Answers)
	if err != nil {
		if errors.Is(err, domain.ErrIncompleteResponse) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
			return
		}
		h.logger.Error("score failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not score answers"})
		return
	}

	if c.Query("format") == "text" {
		c.String(http.StatusOK, h.advisor.FormatReport(rec))
		return
	}
	c.JSON(http.StatusOK, rec)
}
