package assessment

import (
	"errors"
	"fmt"

	"github.com/cgabhane/author-website/internal/model"
)

var (
	// ErrNoAnswer is returned by Next when the current question is unanswered
	ErrNoAnswer = errors.New("current question has not been answered")
	// ErrInvalidState is returned when an operation is not allowed in the current stage
	ErrInvalidState = errors.New("operation not allowed in current stage")
	// ErrNotCurrentQuestion is returned when answering a question other than the current one
	ErrNotCurrentQuestion = errors.New("question is not the current question")
	// ErrInvalidOption is returned when the option index is out of range
	ErrInvalidOption = errors.New("option index out of range")
)

// Flow drives one visitor through the question bank.
// A Flow is not safe for concurrent use.
type Flow struct {
	questions []model.Question
	state     model.FlowState
}

// NewFlow creates a flow on the landing stage over the given questions
func NewFlow(questions []model.Question) *Flow {
	return &Flow{
		questions: questions,
		state:     model.FlowState{Stage: model.StageLanding},
	}
}

// Stage returns the current stage
func (f *Flow) Stage() model.FlowStage {
	return f.state.Stage
}

// QuestionIndex returns the index of the current question
func (f *Flow) QuestionIndex() int {
	return f.state.QuestionIndex
}

// Current returns the question being shown, if in progress
func (f *Flow) Current() (model.Question, bool) {
	if f.state.Stage != model.StageInProgress {
		return model.Question{}, false
	}
	return f.questions[f.state.QuestionIndex], true
}

// Answers returns a copy of the recorded answers
func (f *Flow) Answers() []model.Answer {
	return append([]model.Answer(nil), f.state.Answers...)
}

// Start begins (or begins again) at the first question with no answers
func (f *Flow) Start() error {
	if len(f.questions) == 0 {
		return fmt.Errorf("%w: no questions", ErrInvalidState)
	}
	f.state = model.FlowState{
		Stage:         model.StageInProgress,
		QuestionIndex: 0,
		Answers:       []model.Answer{},
	}
	return nil
}

// Answer records the selected option for the current question, replacing
// any earlier selection. It does not advance.
func (f *Flow) Answer(questionID, optionIndex int) error {
	q, ok := f.Current()
	if !ok {
		return ErrInvalidState
	}
	if q.ID != questionID {
		return ErrNotCurrentQuestion
	}
	if optionIndex < 0 || optionIndex >= len(q.Options) {
		return ErrInvalidOption
	}

	a := model.Answer{
		QuestionID:     q.ID,
		SelectedOption: optionIndex,
		Points:         q.Options[optionIndex].Points,
	}
	for i := range f.state.Answers {
		if f.state.Answers[i].QuestionID == q.ID {
			f.state.Answers[i] = a
			return nil
		}
	}
	f.state.Answers = append(f.state.Answers, a)
	return nil
}

// SelectedOption returns the recorded option for a question
func (f *Flow) SelectedOption(questionID int) (int, bool) {
	for _, a := range f.state.Answers {
		if a.QuestionID == questionID {
			return a.SelectedOption, true
		}
	}
	return 0, false
}

// Next advances to the following question, or to results after the last one
func (f *Flow) Next() error {
	q, ok := f.Current()
	if !ok {
		return ErrInvalidState
	}
	if _, answered := f.SelectedOption(q.ID); !answered {
		return ErrNoAnswer
	}

	if f.state.QuestionIndex < len(f.questions)-1 {
		f.state.QuestionIndex++
		return nil
	}

	score := Score(f.state.Answers, f.questions)
	level := Classify(score.Total, maxTotal(f.questions))
	f.state.Stage = model.StageResults
	f.state.Score = &score
	f.state.Level = &level
	return nil
}

// Previous goes back one question; it is a no-op on the first question
func (f *Flow) Previous() error {
	if f.state.Stage != model.StageInProgress {
		return ErrInvalidState
	}
	if f.state.QuestionIndex > 0 {
		f.state.QuestionIndex--
	}
	return nil
}

// Restart returns from results to the landing stage, discarding answers
func (f *Flow) Restart() error {
	if f.state.Stage != model.StageResults {
		return ErrInvalidState
	}
	f.state = model.FlowState{Stage: model.StageLanding}
	return nil
}

// Result returns the score and level once the flow reached results
func (f *Flow) Result() (model.ScoreBreakdown, model.SkillLevel, bool) {
	if f.state.Stage != model.StageResults || f.state.Score == nil || f.state.Level == nil {
		return model.ScoreBreakdown{}, model.SkillLevel{}, false
	}
	return *f.state.Score, *f.state.Level, true
}

// Snapshot returns a copy of the flow state for storage
func (f *Flow) Snapshot() model.FlowState {
	s := f.state
	s.Answers = append([]model.Answer(nil), f.state.Answers...)
	if f.state.Score != nil {
		score := *f.state.Score
		s.Score = &score
	}
	if f.state.Level != nil {
		level := cloneLevel(*f.state.Level)
		s.Level = &level
	}
	return s
}

// Restore replaces the flow state with a stored snapshot
func (f *Flow) Restore(s model.FlowState) error {
	switch s.Stage {
	case model.StageLanding, model.StageResults:
	case model.StageInProgress:
		if s.QuestionIndex < 0 || s.QuestionIndex >= len(f.questions) {
			return fmt.Errorf("%w: question index %d", ErrInvalidState, s.QuestionIndex)
		}
	default:
		return fmt.Errorf("%w: unknown stage %q", ErrInvalidState, s.Stage)
	}
	f.state = s
	f.state.Answers = append([]model.Answer(nil), s.Answers...)
	return nil
}

// View renders the flow for a visitor
func (f *Flow) View(id string) model.SessionView {
	v := model.SessionView{
		ID:             id,
		Stage:          f.state.Stage,
		QuestionIndex:  f.state.QuestionIndex,
		TotalQuestions: len(f.questions),
		Answered:       len(f.state.Answers),
		Score:          f.state.Score,
		Level:          f.state.Level,
	}
	if q, ok := f.Current(); ok {
		pub := q.Public()
		v.CurrentQuestion = &pub
		if opt, ok := f.SelectedOption(q.ID); ok {
			v.SelectedOption = &opt
		}
	}
	return v
}

func maxTotal(questions []model.Question) int {
	total := 0
	for _, q := range questions {
		best := 0
		for _, o := range q.Options {
			if o.Points > best {
				best = o.Points
			}
		}
		total += best
	}
	return total
}
