package handler

import (
	"net/http"

	"github.com/cgabhane/author-website/internal/service"
)

// InsightHandler serves the latest articles from the feed
type InsightHandler struct {
	insightSvc *service.InsightService
}

func NewInsightHandler(insightSvc *service.InsightService) *InsightHandler {
	return &InsightHandler{insightSvc: insightSvc}
}

// List handles GET /api/insights. It always answers 200.
func (h *InsightHandler) List(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.insightSvc.GetInsights(r.Context()))
}
