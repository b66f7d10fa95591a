package service

import (
	"context"
	"fmt"

	"github.com/cgabhane/author-website/internal/apperror"
	"github.com/cgabhane/author-website/internal/assessment"
	"github.com/cgabhane/author-website/internal/logger"
	"github.com/cgabhane/author-website/internal/mail"
	"github.com/cgabhane/author-website/internal/metrics"
	"github.com/cgabhane/author-website/internal/model"
	"github.com/cgabhane/author-website/internal/repository"
)

// AssessmentService stores assessment results
type AssessmentService struct {
	repo        repository.AssessmentRepo
	validator   *Validator
	notifier    *Notifier
	mail        MailSettings
	log         logger.Logger
	broadcaster Broadcaster
}

func NewAssessmentService(
	repo repository.AssessmentRepo,
	validator *Validator,
	notifier *Notifier,
	mail MailSettings,
	log logger.Logger,
) *AssessmentService {
	return &AssessmentService{
		repo:        repo,
		validator:   validator,
		notifier:    notifier,
		mail:        mail,
		log:         log,
		broadcaster: noopBroadcaster{},
	}
}

// SetBroadcaster sets the admin event broadcaster
func (s *AssessmentService) SetBroadcaster(b Broadcaster) {
	s.broadcaster = b
}

// SaveResult validates a submitted result, stores it with the level
// classified from its score and, when an email is given, sends the results
// email.
func (s *AssessmentService) SaveResult(ctx context.Context, req model.SaveAssessmentRequest) (*model.AssessmentRecord, error) {
	req.Email = NormalizeEmail(req.Email)
	if err := s.validator.Struct(req); err != nil {
		return nil, err
	}

	if _, ok := assessment.LevelByID(req.Level); !ok {
		return nil, apperror.Validation(invalidInputMessage, apperror.FieldError{
			Field:   "level",
			Message: fieldMessages["level"],
		})
	}
	score := req.Score.ScoreBreakdown
	if fe := checkScore(score); fe != nil {
		return nil, apperror.Validation(invalidInputMessage, *fe)
	}

	// the stored level is always derived from the score
	level := assessment.Classify(score.Total, assessment.TotalMaxScore)
	if level.Level != req.Level {
		s.log.Debug("submitted level differs from classified level", map[string]interface{}{
			"submitted":  req.Level,
			"classified": level.Level,
			"total":      score.Total,
		})
	}

	rec := &model.AssessmentRecord{
		Score: score,
		Level: level.Level,
	}
	if req.Email != "" {
		email := req.Email
		rec.Email = &email
	}
	if err := s.repo.Create(ctx, rec); err != nil {
		return nil, apperror.Internal(err)
	}
	metrics.RecordsCreated.WithLabelValues("assessment").Inc()
	s.log.Info("assessment saved", map[string]interface{}{
		"assessment_id": rec.ID,
		"level":         rec.Level,
		"total":         rec.Score.Total,
	})

	if rec.Email != nil {
		s.notifier.Notify(ctx, mail.AssessmentResults{
			From:  s.mail.From,
			To:    *rec.Email,
			Score: score,
			Level: level,
		})
	}
	s.broadcaster.Publish(model.EventAssessmentSaved, rec)

	return rec, nil
}

// List returns every stored result, newest first
func (s *AssessmentService) List(ctx context.Context) ([]*model.AssessmentRecord, error) {
	recs, err := s.repo.List(ctx)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return recs, nil
}

// Get returns one stored result
func (s *AssessmentService) Get(ctx context.Context, id string) (*model.AssessmentRecord, error) {
	rec, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if rec == nil {
		return nil, apperror.NotFound("Assessment result not found")
	}
	return rec, nil
}

// checkScore enforces pillar ranges and total = sum of pillars
func checkScore(b model.ScoreBreakdown) *apperror.FieldError {
	for _, p := range model.Pillars {
		v := b.Pillar(p)
		if v < 0 || v > assessment.MaxScorePerPillar {
			return &apperror.FieldError{
				Field:   "score",
				Message: fmt.Sprintf("%s score must be between 0 and %d", p, assessment.MaxScorePerPillar),
			}
		}
	}
	if b.Total != b.PillarSum() {
		return &apperror.FieldError{Field: "score", Message: "Total must equal the sum of pillar scores"}
	}
	return nil
}
