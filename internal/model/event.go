package model

// EventType names an operator-facing event on the admin feed
type EventType string

const (
	EventAppointmentBooked EventType = "appointment_booked"
	EventSubscriberAdded   EventType = "subscriber_added"
	EventAssessmentSaved   EventType = "assessment_saved"
)
