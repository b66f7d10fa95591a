package handler

import (
	"net/http"

	"github.com/cgabhane/author-website/internal/assessment"
	"github.com/cgabhane/author-website/internal/logger"
	"github.com/cgabhane/author-website/internal/model"
	"github.com/cgabhane/author-website/internal/service"
	"github.com/gorilla/mux"
)

// AssessmentHandler handles the career readiness assessment endpoints
type AssessmentHandler struct {
	assessmentSvc *service.AssessmentService
	sessionSvc    *service.SessionService
	log           logger.Logger
}

func NewAssessmentHandler(assessmentSvc *service.AssessmentService, sessionSvc *service.SessionService, log logger.Logger) *AssessmentHandler {
	return &AssessmentHandler{
		assessmentSvc: assessmentSvc,
		sessionSvc:    sessionSvc,
		log:           log,
	}
}

type assessmentResponse struct {
	Response
	AssessmentID string `json:"assessmentId"`
}

// SubmitSessionRequest is the body of POST /sessions/{id}/submit
type SubmitSessionRequest struct {
	Email string `json:"email"`
}

// Save handles POST /api/assessments
func (h *AssessmentHandler) Save(w http.ResponseWriter, r *http.Request) {
	var req model.SaveAssessmentRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeAppError(w, h.log, err)
		return
	}

	rec, err := h.assessmentSvc.SaveResult(r.Context(), req)
	if err != nil {
		writeAppError(w, h.log, err)
		return
	}
	h.writeSaved(w, rec)
}

// List handles GET /api/assessments
func (h *AssessmentHandler) List(w http.ResponseWriter, r *http.Request) {
	recs, err := h.assessmentSvc.List(r.Context())
	if err != nil {
		writeAppError(w, h.log, err)
		return
	}
	if recs == nil {
		recs = []*model.AssessmentRecord{}
	}
	writeJSON(w, http.StatusOK, recs)
}

// Get handles GET /api/assessments/{id}
func (h *AssessmentHandler) Get(w http.ResponseWriter, r *http.Request) {
	rec, err := h.assessmentSvc.Get(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeAppError(w, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

// Questions handles GET /api/assessment/questions
func (h *AssessmentHandler) Questions(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, assessment.PublicQuestions())
}

// Levels handles GET /api/assessment/levels
func (h *AssessmentHandler) Levels(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, assessment.Levels())
}

// CreateSession handles POST /api/assessment/sessions
func (h *AssessmentHandler) CreateSession(w http.ResponseWriter, r *http.Request) {
	view, err := h.sessionSvc.Create(r.Context())
	if err != nil {
		writeAppError(w, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, view)
}

// GetSession handles GET /api/assessment/sessions/{id}
func (h *AssessmentHandler) GetSession(w http.ResponseWriter, r *http.Request) {
	h.writeView(w)(h.sessionSvc.Get(r.Context(), mux.Vars(r)["id"]))
}

// StartSession handles POST /api/assessment/sessions/{id}/start
func (h *AssessmentHandler) StartSession(w http.ResponseWriter, r *http.Request) {
	h.writeView(w)(h.sessionSvc.Start(r.Context(), mux.Vars(r)["id"]))
}

// Answer handles POST /api/assessment/sessions/{id}/answer
func (h *AssessmentHandler) Answer(w http.ResponseWriter, r *http.Request) {
	var req model.AnswerRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeAppError(w, h.log, err)
		return
	}
	h.writeView(w)(h.sessionSvc.Answer(r.Context(), mux.Vars(r)["id"], req))
}

// Next handles POST /api/assessment/sessions/{id}/next
func (h *AssessmentHandler) Next(w http.ResponseWriter, r *http.Request) {
	h.writeView(w)(h.sessionSvc.Next(r.Context(), mux.Vars(r)["id"]))
}

// Previous handles POST /api/assessment/sessions/{id}/previous
func (h *AssessmentHandler) Previous(w http.ResponseWriter, r *http.Request) {
	h.writeView(w)(h.sessionSvc.Previous(r.Context(), mux.Vars(r)["id"]))
}

// Restart handles POST /api/assessment/sessions/{id}/restart
func (h *AssessmentHandler) Restart(w http.ResponseWriter, r *http.Request) {
	h.writeView(w)(h.sessionSvc.Restart(r.Context(), mux.Vars(r)["id"]))
}

// DiscardSession handles DELETE /api/assessment/sessions/{id}
func (h *AssessmentHandler) DiscardSession(w http.ResponseWriter, r *http.Request) {
	if err := h.sessionSvc.Discard(r.Context(), mux.Vars(r)["id"]); err != nil {
		writeAppError(w, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, Response{Success: true, Message: "Assessment session discarded."})
}

// Submit handles POST /api/assessment/sessions/{id}/submit
func (h *AssessmentHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req SubmitSessionRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeAppError(w, h.log, err)
		return
	}

	rec, err := h.sessionSvc.Submit(r.Context(), mux.Vars(r)["id"], req.Email)
	if err != nil {
		writeAppError(w, h.log, err)
		return
	}
	h.writeSaved(w, rec)
}

func (h *AssessmentHandler) writeSaved(w http.ResponseWriter, rec *model.AssessmentRecord) {
	msg := "Assessment saved."
	if rec.Email != nil {
		msg = "Assessment saved! Your results are on their way to your inbox."
	}
	writeJSON(w, http.StatusOK, assessmentResponse{
		Response:     Response{Success: true, Message: msg},
		AssessmentID: rec.ID,
	})
}

func (h *AssessmentHandler) writeView(w http.ResponseWriter) func(*model.SessionView, error) {
	return func(view *model.SessionView, err error) {
		if err != nil {
			writeAppError(w, h.log, err)
			return
		}
		writeJSON(w, http.StatusOK, view)
	}
}
