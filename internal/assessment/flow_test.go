package assessment

import (
	"testing"

	"github.com/cgabhane/author-website/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func startedFlow(t *testing.T) *Flow {
	t.Helper()
	f := NewFlow(Questions())
	require.NoError(t, f.Start())
	return f
}

func answerCurrent(t *testing.T, f *Flow, option int) {
	t.Helper()
	q, ok := f.Current()
	require.True(t, ok)
	require.NoError(t, f.Answer(q.ID, option))
}

func TestFlow_StartsOnLanding(t *testing.T) {
	f := NewFlow(Questions())
	assert.Equal(t, model.StageLanding, f.Stage())

	_, ok := f.Current()
	assert.False(t, ok)
	assert.ErrorIs(t, f.Answer(1, 0), ErrInvalidState)
	assert.ErrorIs(t, f.Next(), ErrInvalidState)
	assert.ErrorIs(t, f.Restart(), ErrInvalidState)
}

func TestFlow_StartWithoutQuestions(t *testing.T) {
	f := NewFlow(nil)
	assert.ErrorIs(t, f.Start(), ErrInvalidState)
}

func TestFlow_AnswerDoesNotAdvance(t *testing.T) {
	f := startedFlow(t)

	require.NoError(t, f.Answer(1, 1))

	assert.Equal(t, 0, f.QuestionIndex())
	assert.Equal(t, model.StageInProgress, f.Stage())
}

func TestFlow_ReanswerKeepsOneAnswer(t *testing.T) {
	f := startedFlow(t)

	require.NoError(t, f.Answer(1, 1))
	require.NoError(t, f.Answer(1, 3))

	answers := f.Answers()
	require.Len(t, answers, 1)
	assert.Equal(t, 3, answers[0].SelectedOption)
	assert.Equal(t, 1, answers[0].Points)
}

func TestFlow_AnswerRejectsBadInput(t *testing.T) {
	f := startedFlow(t)

	assert.ErrorIs(t, f.Answer(2, 0), ErrNotCurrentQuestion)
	assert.ErrorIs(t, f.Answer(999, 0), ErrNotCurrentQuestion)
	assert.ErrorIs(t, f.Answer(1, 4), ErrInvalidOption)
	assert.ErrorIs(t, f.Answer(1, -1), ErrInvalidOption)
	assert.Empty(t, f.Answers())
}

func TestFlow_NextRequiresAnswer(t *testing.T) {
	f := startedFlow(t)
	before := f.Snapshot()

	err := f.Next()

	assert.ErrorIs(t, err, ErrNoAnswer)
	assert.Equal(t, before, f.Snapshot())
}

func TestFlow_PreviousAndNext(t *testing.T) {
	f := startedFlow(t)

	require.NoError(t, f.Previous())
	assert.Equal(t, 0, f.QuestionIndex())

	answerCurrent(t, f, 1)
	require.NoError(t, f.Next())
	assert.Equal(t, 1, f.QuestionIndex())

	require.NoError(t, f.Previous())
	assert.Equal(t, 0, f.QuestionIndex())

	opt, ok := f.SelectedOption(1)
	require.True(t, ok)
	assert.Equal(t, 1, opt)
}

func TestFlow_CompletesWithResults(t *testing.T) {
	f := startedFlow(t)

	for i := 0; i < 15; i++ {
		q, _ := f.Current()
		best := 0
		for j, o := range q.Options {
			if o.Points > q.Options[best].Points {
				best = j
			}
		}
		require.NoError(t, f.Answer(q.ID, best))
		require.NoError(t, f.Next())
	}

	assert.Equal(t, model.StageResults, f.Stage())
	score, level, ok := f.Result()
	require.True(t, ok)
	assert.Equal(t, 60, score.Total)
	assert.Equal(t, 12, score.Cloud)
	assert.Equal(t, "leader", level.Level)

	assert.ErrorIs(t, f.Next(), ErrInvalidState)
	assert.ErrorIs(t, f.Previous(), ErrInvalidState)
}

func TestFlow_RestartFromResults(t *testing.T) {
	f := startedFlow(t)
	for i := 0; i < 15; i++ {
		answerCurrent(t, f, 0)
		require.NoError(t, f.Next())
	}
	require.Equal(t, model.StageResults, f.Stage())

	require.NoError(t, f.Restart())

	assert.Equal(t, model.StageLanding, f.Stage())
	assert.Empty(t, f.Answers())
	_, _, ok := f.Result()
	assert.False(t, ok)
}

func TestFlow_RestartRejectedInProgress(t *testing.T) {
	f := startedFlow(t)
	answerCurrent(t, f, 1)

	assert.ErrorIs(t, f.Restart(), ErrInvalidState)
	assert.Len(t, f.Answers(), 1)
}

func TestFlow_StartClearsAnswers(t *testing.T) {
	f := startedFlow(t)
	answerCurrent(t, f, 1)
	require.NoError(t, f.Next())

	require.NoError(t, f.Start())

	assert.Equal(t, 0, f.QuestionIndex())
	assert.Empty(t, f.Answers())
}

func TestFlow_SnapshotRestore(t *testing.T) {
	f := startedFlow(t)
	answerCurrent(t, f, 1)
	require.NoError(t, f.Next())
	answerCurrent(t, f, 0)

	snap := f.Snapshot()

	g := NewFlow(Questions())
	require.NoError(t, g.Restore(snap))
	assert.Equal(t, 1, g.QuestionIndex())
	assert.Equal(t, f.Answers(), g.Answers())

	// snapshot is independent of later changes
	answerCurrent(t, f, 3)
	assert.Equal(t, 0, g.Answers()[1].SelectedOption)
}

func TestFlow_RestoreRejectsBadState(t *testing.T) {
	f := NewFlow(Questions())

	assert.ErrorIs(t, f.Restore(model.FlowState{Stage: "bogus"}), ErrInvalidState)
	assert.ErrorIs(t, f.Restore(model.FlowState{Stage: model.StageInProgress, QuestionIndex: 15}), ErrInvalidState)
	assert.Equal(t, model.StageLanding, f.Stage())
}

func TestFlow_View(t *testing.T) {
	f := startedFlow(t)
	answerCurrent(t, f, 2)

	v := f.View("abc")

	assert.Equal(t, "abc", v.ID)
	assert.Equal(t, model.StageInProgress, v.Stage)
	assert.Equal(t, 15, v.TotalQuestions)
	require.NotNil(t, v.CurrentQuestion)
	assert.Equal(t, 1, v.CurrentQuestion.ID)
	require.NotNil(t, v.SelectedOption)
	assert.Equal(t, 2, *v.SelectedOption)
	assert.Equal(t, 1, v.Answered)
	assert.Nil(t, v.Score)
}
