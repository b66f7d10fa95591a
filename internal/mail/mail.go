// Package mail renders the site's transactional emails and hands them to a
// delivery backend.
package mail

import (
	"context"
	"errors"
)

// Kind names an email template; used as a metrics label
type Kind string

const (
	KindAppointmentNotification Kind = "appointment_notification"
	KindAppointmentConfirmation Kind = "appointment_confirmation"
	KindWelcome                 Kind = "welcome"
	KindAssessmentResults       Kind = "assessment_results"
)

// Message is a rendered email ready for delivery
type Message struct {
	Kind    Kind
	From    string
	To      string
	Subject string
	HTML    string
}

// Email is one of the typed email records below
type Email interface {
	Kind() Kind
	Render() (Message, error)
}

// Sender delivers a rendered message
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

var ErrNoRecipient = errors.New("email has no recipient")
