package model

import "time"

// SessionType is the kind of session a visitor can book
type SessionType string

const (
	SessionConsulting SessionType = "consulting"
	SessionMentoring  SessionType = "mentoring"
	SessionGuidance   SessionType = "guidance"
)

// DisplayName is the human label used in emails
func (t SessionType) DisplayName() string {
	switch t {
	case SessionConsulting:
		return "Strategic Guidance Session"
	case SessionMentoring:
		return "Mentoring Session"
	case SessionGuidance:
		return "Advisory Consultation"
	}
	return string(t)
}

// AppointmentStatus tracks the operator's handling of a booking
type AppointmentStatus string

const AppointmentPending AppointmentStatus = "pending"

// Appointment is a booking request from a visitor
type Appointment struct {
	ID          string            `json:"id" bson:"_id"`
	Name        string            `json:"name" bson:"name"`
	Email       string            `json:"email" bson:"email"`
	SessionType SessionType       `json:"sessionType" bson:"sessionType"`
	Date        string            `json:"date" bson:"date"`
	Time        string            `json:"time" bson:"time"`
	Message     *string           `json:"message" bson:"message,omitempty"`
	Status      AppointmentStatus `json:"status" bson:"status"`
	CreatedAt   time.Time         `json:"createdAt" bson:"createdAt"`
}

// CreateAppointmentRequest is the request body for POST /api/appointments
type CreateAppointmentRequest struct {
	Name        string `json:"name" validate:"required,min=2"`
	Email       string `json:"email" validate:"required,email"`
	SessionType string `json:"sessionType" validate:"required,oneof=consulting mentoring guidance"`
	Date        string `json:"date" validate:"required"`
	Time        string `json:"time" validate:"required"`
	Message     string `json:"message,omitempty"`
}
