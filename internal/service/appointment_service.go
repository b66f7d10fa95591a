package service

import (
	"context"
	"strings"

	"github.com/cgabhane/author-website/internal/apperror"
	"github.com/cgabhane/author-website/internal/logger"
	"github.com/cgabhane/author-website/internal/mail"
	"github.com/cgabhane/author-website/internal/metrics"
	"github.com/cgabhane/author-website/internal/model"
	"github.com/cgabhane/author-website/internal/repository"
)

// AppointmentService handles booking requests
type AppointmentService struct {
	repo        repository.AppointmentRepo
	validator   *Validator
	notifier    *Notifier
	mail        MailSettings
	log         logger.Logger
	broadcaster Broadcaster
}

func NewAppointmentService(
	repo repository.AppointmentRepo,
	validator *Validator,
	notifier *Notifier,
	mail MailSettings,
	log logger.Logger,
) *AppointmentService {
	return &AppointmentService{
		repo:        repo,
		validator:   validator,
		notifier:    notifier,
		mail:        mail,
		log:         log,
		broadcaster: noopBroadcaster{},
	}
}

// SetBroadcaster sets the admin event broadcaster
func (s *AppointmentService) SetBroadcaster(b Broadcaster) {
	s.broadcaster = b
}

// Book stores a pending appointment and notifies both the operator and the
// visitor. Email delivery happens in the background.
func (s *AppointmentService) Book(ctx context.Context, req model.CreateAppointmentRequest) (*model.Appointment, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	req.Date = strings.TrimSpace(req.Date)
	req.Time = strings.TrimSpace(req.Time)
	if err := s.validator.Struct(req); err != nil {
		return nil, err
	}

	appt := &model.Appointment{
		Name:        req.Name,
		Email:       req.Email,
		SessionType: model.SessionType(req.SessionType),
		Date:        req.Date,
		Time:        req.Time,
		Status:      model.AppointmentPending,
	}
	if msg := strings.TrimSpace(req.Message); msg != "" {
		appt.Message = &msg
	}

	if err := s.repo.Create(ctx, appt); err != nil {
		return nil, apperror.Internal(err)
	}
	metrics.RecordsCreated.WithLabelValues("appointment").Inc()
	s.log.Info("appointment booked", map[string]interface{}{
		"appointment_id": appt.ID,
		"session_type":   string(appt.SessionType),
	})

	s.notifier.Notify(ctx,
		mail.AppointmentNotification{From: s.mail.From, Operator: s.mail.Operator, Appointment: *appt},
		mail.AppointmentConfirmation{From: s.mail.From, Appointment: *appt},
	)
	s.broadcaster.Publish(model.EventAppointmentBooked, appt)

	return appt, nil
}

// List returns every appointment, newest first
func (s *AppointmentService) List(ctx context.Context) ([]*model.Appointment, error) {
	appts, err := s.repo.List(ctx)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return appts, nil
}

// Get returns one appointment
func (s *AppointmentService) Get(ctx context.Context, id string) (*model.Appointment, error) {
	appt, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if appt == nil {
		return nil, apperror.NotFound("Appointment not found")
	}
	return appt, nil
}
