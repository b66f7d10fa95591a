package service

import (
	"context"
	"errors"
	"time"

	"github.com/cgabhane/author-website/internal/apperror"
	"github.com/cgabhane/author-website/internal/assessment"
	"github.com/cgabhane/author-website/internal/cache"
	"github.com/cgabhane/author-website/internal/model"
	"github.com/google/uuid"
)

// SessionService runs assessment flows on behalf of visitors, keeping each
// flow's state in the session cache between requests.
type SessionService struct {
	cache       cache.SessionCache
	validator   *Validator
	assessments *AssessmentService
	questions   []model.Question
	now         func() time.Time
}

func NewSessionService(c cache.SessionCache, validator *Validator, assessments *AssessmentService) *SessionService {
	return &SessionService{
		cache:       c,
		validator:   validator,
		assessments: assessments,
		questions:   assessment.Questions(),
		now:         time.Now,
	}
}

// Create opens a session positioned on the first question
func (s *SessionService) Create(ctx context.Context) (*model.SessionView, error) {
	flow := assessment.NewFlow(s.questions)
	if err := flow.Start(); err != nil {
		return nil, apperror.Internal(err)
	}
	now := s.now().UTC()
	sess := &model.AssessmentSession{
		ID:        uuid.NewString(),
		StartedAt: now,
	}
	return s.save(ctx, sess, flow)
}

// Get returns the current view of a session
func (s *SessionService) Get(ctx context.Context, id string) (*model.SessionView, error) {
	_, flow, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	v := flow.View(id)
	return &v, nil
}

// Start begins the flow again from the first question
func (s *SessionService) Start(ctx context.Context, id string) (*model.SessionView, error) {
	return s.apply(ctx, id, func(f *assessment.Flow) error { return f.Start() })
}

// Answer records an option for the current question
func (s *SessionService) Answer(ctx context.Context, id string, req model.AnswerRequest) (*model.SessionView, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, err
	}
	return s.apply(ctx, id, func(f *assessment.Flow) error {
		return f.Answer(req.QuestionID, *req.OptionIndex)
	})
}

// Next moves forward, finishing the assessment after the last question
func (s *SessionService) Next(ctx context.Context, id string) (*model.SessionView, error) {
	return s.apply(ctx, id, func(f *assessment.Flow) error { return f.Next() })
}

// Previous moves back one question
func (s *SessionService) Previous(ctx context.Context, id string) (*model.SessionView, error) {
	return s.apply(ctx, id, func(f *assessment.Flow) error { return f.Previous() })
}

// Restart leaves the results page and returns to the landing stage
func (s *SessionService) Restart(ctx context.Context, id string) (*model.SessionView, error) {
	return s.apply(ctx, id, func(f *assessment.Flow) error { return f.Restart() })
}

// Submit stores the result of a finished session using the server-side
// score, optionally emailing it to the visitor.
func (s *SessionService) Submit(ctx context.Context, id, email string) (*model.AssessmentRecord, error) {
	_, flow, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	score, level, ok := flow.Result()
	if !ok {
		return nil, apperror.InvalidState("Please complete the assessment first", assessment.ErrInvalidState)
	}
	return s.assessments.SaveResult(ctx, model.SaveAssessmentRequest{
		Email: email,
		Score: &model.SerializedScore{ScoreBreakdown: score},
		Level: level.Level,
	})
}

// Discard drops a session, e.g. when the visitor closes the assessment
func (s *SessionService) Discard(ctx context.Context, id string) error {
	if _, _, err := s.load(ctx, id); err != nil {
		return err
	}
	if err := s.cache.Delete(ctx, id); err != nil {
		return apperror.Internal(err)
	}
	return nil
}

func (s *SessionService) apply(ctx context.Context, id string, op func(*assessment.Flow) error) (*model.SessionView, error) {
	sess, flow, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := op(flow); err != nil {
		return nil, flowError(err)
	}
	return s.save(ctx, sess, flow)
}

func (s *SessionService) load(ctx context.Context, id string) (*model.AssessmentSession, *assessment.Flow, error) {
	sess, err := s.cache.Get(ctx, id)
	if err != nil {
		return nil, nil, apperror.Internal(err)
	}
	if sess == nil {
		return nil, nil, apperror.NotFound("Assessment session not found or expired")
	}
	flow := assessment.NewFlow(s.questions)
	if err := flow.Restore(sess.State); err != nil {
		return nil, nil, apperror.Internal(err)
	}
	return sess, flow, nil
}

func (s *SessionService) save(ctx context.Context, sess *model.AssessmentSession, flow *assessment.Flow) (*model.SessionView, error) {
	sess.State = flow.Snapshot()
	sess.UpdatedAt = s.now().UTC()
	if err := s.cache.Set(ctx, sess); err != nil {
		return nil, apperror.Internal(err)
	}
	v := flow.View(sess.ID)
	return &v, nil
}

func flowError(err error) error {
	switch {
	case errors.Is(err, assessment.ErrNoAnswer):
		return apperror.InvalidState("Please select an answer before continuing", err)
	case errors.Is(err, assessment.ErrNotCurrentQuestion):
		return apperror.Validation(invalidInputMessage, apperror.FieldError{
			Field: "questionId", Message: "Only the current question can be answered",
		})
	case errors.Is(err, assessment.ErrInvalidOption):
		return apperror.Validation(invalidInputMessage, apperror.FieldError{
			Field: "optionIndex", Message: "Please select one of the listed options",
		})
	case errors.Is(err, assessment.ErrInvalidState):
		return apperror.InvalidState("That action is not available at this stage", err)
	default:
		return apperror.Internal(err)
	}
}
