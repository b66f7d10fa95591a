package handler

import (
	"net/http"

	"github.com/cgabhane/author-website/internal/logger"
	"github.com/cgabhane/author-website/internal/model"
	"github.com/cgabhane/author-website/internal/service"
	"github.com/gorilla/mux"
)

// AppointmentHandler handles booking endpoints
type AppointmentHandler struct {
	apptSvc *service.AppointmentService
	log     logger.Logger
}

func NewAppointmentHandler(apptSvc *service.AppointmentService, log logger.Logger) *AppointmentHandler {
	return &AppointmentHandler{apptSvc: apptSvc, log: log}
}

type appointmentResponse struct {
	Response
	AppointmentID string `json:"appointmentId"`
}

// Create handles POST /api/appointments
func (h *AppointmentHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req model.CreateAppointmentRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeAppError(w, h.log, err)
		return
	}

	appt, err := h.apptSvc.Book(r.Context(), req)
	if err != nil {
		writeAppError(w, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, appointmentResponse{
		Response:      Response{Success: true, Message: "Appointment request received! Check your email for confirmation."},
		AppointmentID: appt.ID,
	})
}

// List handles GET /api/appointments
func (h *AppointmentHandler) List(w http.ResponseWriter, r *http.Request) {
	appts, err := h.apptSvc.List(r.Context())
	if err != nil {
		writeAppError(w, h.log, err)
		return
	}
	if appts == nil {
		appts = []*model.Appointment{}
	}
	writeJSON(w, http.StatusOK, appts)
}

// Get handles GET /api/appointments/{id}
func (h *AppointmentHandler) Get(w http.ResponseWriter, r *http.Request) {
	appt, err := h.apptSvc.Get(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeAppError(w, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, appt)
}
