package handler

import (
	"net/http"

	"github.com/cgabhane/author-website/internal/logger"
	"github.com/cgabhane/author-website/internal/model"
	"github.com/cgabhane/author-website/internal/service"
)

// SubscriptionHandler handles newsletter endpoints
type SubscriptionHandler struct {
	subSvc *service.SubscriptionService
	log    logger.Logger
}

func NewSubscriptionHandler(subSvc *service.SubscriptionService, log logger.Logger) *SubscriptionHandler {
	return &SubscriptionHandler{subSvc: subSvc, log: log}
}

type subscribeResponse struct {
	Response
	SubscriberID string `json:"subscriberId"`
}

// Subscribe handles POST /api/subscribe
func (h *SubscriptionHandler) Subscribe(w http.ResponseWriter, r *http.Request) {
	var req model.SubscribeRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeAppError(w, h.log, err)
		return
	}

	sub, err := h.subSvc.Subscribe(r.Context(), req)
	if err != nil {
		writeAppError(w, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, subscribeResponse{
		Response:     Response{Success: true, Message: "Successfully subscribed! Check your inbox for a welcome email."},
		SubscriberID: sub.ID,
	})
}

// List handles GET /api/subscribers
func (h *SubscriptionHandler) List(w http.ResponseWriter, r *http.Request) {
	subs, err := h.subSvc.List(r.Context())
	if err != nil {
		writeAppError(w, h.log, err)
		return
	}
	if subs == nil {
		subs = []*model.Subscriber{}
	}
	writeJSON(w, http.StatusOK, subs)
}

type countResponse struct {
	Count int64 `json:"count"`
}

// Count handles GET /api/subscribers/count
func (h *SubscriptionHandler) Count(w http.ResponseWriter, r *http.Request) {
	n, err := h.subSvc.Count(r.Context())
	if err != nil {
		writeAppError(w, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, countResponse{Count: n})
}
