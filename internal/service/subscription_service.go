package service

import (
	"context"
	"errors"
	"strings"

	"github.com/cgabhane/author-website/internal/apperror"
	"github.com/cgabhane/author-website/internal/logger"
	"github.com/cgabhane/author-website/internal/mail"
	"github.com/cgabhane/author-website/internal/metrics"
	"github.com/cgabhane/author-website/internal/model"
	"github.com/cgabhane/author-website/internal/repository"
)

const msgAlreadySubscribed = "Email already subscribed"

// SubscriptionService manages newsletter sign-ups
type SubscriptionService struct {
	repo        repository.SubscriberRepo
	validator   *Validator
	notifier    *Notifier
	mail        MailSettings
	log         logger.Logger
	broadcaster Broadcaster
}

func NewSubscriptionService(
	repo repository.SubscriberRepo,
	validator *Validator,
	notifier *Notifier,
	mail MailSettings,
	log logger.Logger,
) *SubscriptionService {
	return &SubscriptionService{
		repo:        repo,
		validator:   validator,
		notifier:    notifier,
		mail:        mail,
		log:         log,
		broadcaster: noopBroadcaster{},
	}
}

// SetBroadcaster sets the admin event broadcaster
func (s *SubscriptionService) SetBroadcaster(b Broadcaster) {
	s.broadcaster = b
}

// NormalizeEmail is the canonical form emails are stored and compared in
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Subscribe adds a subscriber and sends the welcome email. A second
// subscription for the same email is rejected as a conflict.
func (s *SubscriptionService) Subscribe(ctx context.Context, req model.SubscribeRequest) (*model.Subscriber, error) {
	req.Email = NormalizeEmail(req.Email)
	req.Interests = dedupe(req.Interests)
	if err := s.validator.Struct(req); err != nil {
		return nil, err
	}

	existing, err := s.repo.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if existing != nil {
		return nil, apperror.Conflict(msgAlreadySubscribed)
	}

	sub := &model.Subscriber{
		Email:     req.Email,
		Interests: req.Interests,
	}
	if err := s.repo.Create(ctx, sub); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, apperror.Conflict(msgAlreadySubscribed)
		}
		return nil, apperror.Internal(err)
	}
	metrics.RecordsCreated.WithLabelValues("subscriber").Inc()
	s.log.Info("subscriber added", map[string]interface{}{"subscriber_id": sub.ID})

	s.notifier.Notify(ctx, mail.WelcomeEmail{
		From:       s.mail.From,
		SiteURL:    s.mail.SiteURL,
		Subscriber: *sub,
	})
	s.broadcaster.Publish(model.EventSubscriberAdded, sub)

	return sub, nil
}

// List returns every subscriber, newest first
func (s *SubscriptionService) List(ctx context.Context) ([]*model.Subscriber, error) {
	subs, err := s.repo.List(ctx)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return subs, nil
}

func (s *SubscriptionService) Count(ctx context.Context) (int64, error) {
	n, err := s.repo.Count(ctx)
	if err != nil {
		return 0, apperror.Internal(err)
	}
	return n, nil
}

func dedupe(values []string) []string {
	if values == nil {
		return nil
	}
	seen := make(map[string]bool, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		v = strings.ToLower(strings.TrimSpace(v))
		if seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	return out
}
