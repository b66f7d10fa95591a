package model

import "time"

// FlowStage is the stage of an assessment flow
type FlowStage string

const (
	StageLanding    FlowStage = "landing"
	StageInProgress FlowStage = "in_progress"
	StageResults    FlowStage = "results"
)

// FlowState is the serializable state of one assessment flow
type FlowState struct {
	Stage         FlowStage       `json:"stage"`
	QuestionIndex int             `json:"questionIndex"`
	Answers       []Answer        `json:"answers"`
	Score         *ScoreBreakdown `json:"score,omitempty"`
	Level         *SkillLevel     `json:"level,omitempty"`
}

// AssessmentSession is a flow owned by one visitor, kept in the session cache
type AssessmentSession struct {
	ID        string    `json:"id"`
	State     FlowState `json:"state"`
	StartedAt time.Time `json:"startedAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// SessionView is what the session endpoints return
type SessionView struct {
	ID              string          `json:"id"`
	Stage           FlowStage       `json:"stage"`
	QuestionIndex   int             `json:"questionIndex"`
	TotalQuestions  int             `json:"totalQuestions"`
	CurrentQuestion *PublicQuestion `json:"currentQuestion,omitempty"`
	SelectedOption  *int            `json:"selectedOption,omitempty"`
	Answered        int             `json:"answered"`
	Score           *ScoreBreakdown `json:"score,omitempty"`
	Level           *SkillLevel     `json:"level,omitempty"`
}

// AnswerRequest selects an option for a question in a session
type AnswerRequest struct {
	QuestionID  int  `json:"questionId" validate:"required,gt=0"`
	OptionIndex *int `json:"optionIndex" validate:"required,gte=0"`
}
