package handler

import (
	"net/http"

	"github.com/cgabhane/author-website/internal/logger"
	"github.com/cgabhane/author-website/internal/service"
	"github.com/gorilla/mux"
)

// ContentHandler serves blog posts and the press kit
type ContentHandler struct {
	contentSvc *service.ContentService
	log        logger.Logger
}

func NewContentHandler(contentSvc *service.ContentService, log logger.Logger) *ContentHandler {
	return &ContentHandler{contentSvc: contentSvc, log: log}
}

// ListPosts handles GET /api/posts
func (h *ContentHandler) ListPosts(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.contentSvc.ListPosts())
}

// GetPost handles GET /api/posts/{slug}
func (h *ContentHandler) GetPost(w http.ResponseWriter, r *http.Request) {
	post, err := h.contentSvc.GetPost(mux.Vars(r)["slug"])
	if err != nil {
		writeAppError(w, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, post)
}

// PressKit handles GET /api/press-kit
func (h *ContentHandler) PressKit(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.contentSvc.PressKit())
}
