package service

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/cgabhane/author-website/internal/apperror"
	"github.com/cgabhane/author-website/internal/logger"
	"github.com/cgabhane/author-website/internal/mail"
	"github.com/cgabhane/author-website/internal/model"
	"github.com/cgabhane/author-website/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAssessmentService(t *testing.T, sender mail.Sender) (*AssessmentService, repository.AssessmentRepo, *Notifier) {
	repo := repository.NewMemoryAssessmentRepo()
	n := newTestNotifier(t, sender)
	return NewAssessmentService(repo, NewValidator(), n, testMail, logger.NewTestLogger(t)), repo, n
}

func score(cloud, ai, devops, security, realworld int) *model.SerializedScore {
	b := model.ScoreBreakdown{Cloud: cloud, AI: ai, DevOps: devops, Security: security, RealWorld: realworld}
	b.Total = b.PillarSum()
	return &model.SerializedScore{ScoreBreakdown: b}
}

func TestSaveResult_Anonymous(t *testing.T) {
	sender := newRecordingSender()
	svc, repo, n := newAssessmentService(t, sender)
	events := &recordingBroadcaster{}
	svc.SetBroadcaster(events)

	// 30 of 60 is 50%, which is "emerging"
	rec, err := svc.SaveResult(context.Background(), model.SaveAssessmentRequest{
		Score: score(6, 6, 6, 6, 6),
		Level: "emerging",
	})
	require.NoError(t, err)
	n.Wait()

	assert.NotEmpty(t, rec.ID)
	assert.Nil(t, rec.Email)
	assert.Equal(t, 30, rec.Score.Total)
	assert.Zero(t, sender.Calls())
	assert.Equal(t, []string{string(model.EventAssessmentSaved)}, events.events)

	stored, err := repo.GetByID(context.Background(), rec.ID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, "emerging", stored.Level)
}

func TestSaveResult_WithEmailSendsResults(t *testing.T) {
	sender := newRecordingSender()
	svc, _, n := newAssessmentService(t, sender)

	rec, err := svc.SaveResult(context.Background(), model.SaveAssessmentRequest{
		Email: " Visitor@Example.com",
		Score: score(12, 12, 12, 12, 12),
		Level: "leader",
	})
	require.NoError(t, err)
	n.Wait()

	require.NotNil(t, rec.Email)
	assert.Equal(t, "visitor@example.com", *rec.Email)
	require.Len(t, sender.Sent(), 1)
	msg := sender.Sent()[0]
	assert.Equal(t, mail.KindAssessmentResults, msg.Kind)
	assert.Equal(t, "visitor@example.com", msg.To)
	assert.Contains(t, msg.Subject, "Leader")
}

func TestSaveResult_StringEncodedScore(t *testing.T) {
	svc, _, n := newAssessmentService(t, newRecordingSender())

	body := `{"score":"{\"cloud\":0,\"ai\":0,\"devops\":0,\"security\":0,\"realworld\":0,\"total\":0}","level":"foundation"}`
	var req model.SaveAssessmentRequest
	require.NoError(t, json.Unmarshal([]byte(body), &req))

	rec, err := svc.SaveResult(context.Background(), req)
	n.Wait()

	require.NoError(t, err)
	assert.Equal(t, "foundation", rec.Level)
}

func TestSaveResult_StoresClassifiedLevel(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		submitted string
		stored    string
	}{
		// 35/60 is 58.33%; the unrounded percentage reads as skilled, rounding gives 58
		{
			name:      "boundary total from the site client",
			body:      `{"score":"{\"cloud\":7,\"ai\":7,\"devops\":7,\"security\":7,\"realworld\":7,\"total\":35}","level":"skilled"}`,
			submitted: "skilled",
			stored:    "emerging",
		},
		{
			name:      "stale level",
			body:      `{"score":{"cloud":12,"ai":12,"devops":12,"security":12,"realworld":12,"total":60},"level":"foundation"}`,
			submitted: "foundation",
			stored:    "leader",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo, n := newAssessmentService(t, newRecordingSender())
			var req model.SaveAssessmentRequest
			require.NoError(t, json.Unmarshal([]byte(tt.body), &req))
			require.Equal(t, tt.submitted, req.Level)

			rec, err := svc.SaveResult(context.Background(), req)
			n.Wait()

			require.NoError(t, err)
			assert.Equal(t, tt.stored, rec.Level)
			stored, err := repo.GetByID(context.Background(), rec.ID)
			require.NoError(t, err)
			require.NotNil(t, stored)
			assert.Equal(t, tt.stored, stored.Level)
		})
	}
}

func TestSaveResult_Rejects(t *testing.T) {
	mismatch := score(4, 4, 4, 4, 4)
	mismatch.Total = 25

	tests := []struct {
		name  string
		req   model.SaveAssessmentRequest
		field string
	}{
		{"missing score", model.SaveAssessmentRequest{Level: "foundation"}, "score"},
		{"unknown level", model.SaveAssessmentRequest{Score: score(0, 0, 0, 0, 0), Level: "guru"}, "level"},
		{"bad email", model.SaveAssessmentRequest{Email: "nope", Score: score(0, 0, 0, 0, 0), Level: "foundation"}, "email"},
		{"pillar out of range", model.SaveAssessmentRequest{Score: score(13, 0, 0, 0, 0), Level: "foundation"}, "score"},
		{"negative pillar", model.SaveAssessmentRequest{Score: score(-1, 0, 0, 0, 0), Level: "foundation"}, "score"},
		{"total mismatch", model.SaveAssessmentRequest{Score: mismatch, Level: "skilled"}, "score"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sender := newRecordingSender()
			svc, repo, n := newAssessmentService(t, sender)

			_, err := svc.SaveResult(context.Background(), tt.req)
			n.Wait()

			appErr := apperror.From(err)
			require.Equal(t, apperror.CodeValidation, appErr.Code)
			require.NotEmpty(t, appErr.Fields)
			assert.Equal(t, tt.field, appErr.Fields[0].Field)

			list, _ := repo.List(context.Background())
			assert.Empty(t, list)
			assert.Zero(t, sender.Calls())
		})
	}
}

func TestAssessmentGet(t *testing.T) {
	ctx := context.Background()
	svc, _, n := newAssessmentService(t, newRecordingSender())

	rec, err := svc.SaveResult(ctx, model.SaveAssessmentRequest{Score: score(10, 10, 10, 10, 10), Level: "skilled"})
	require.NoError(t, err)
	n.Wait()

	got, err := svc.Get(ctx, rec.ID)
	require.NoError(t, err)
	assert.Equal(t, 50, got.Score.Total)
	assert.Equal(t, rec.Level, got.Level)

	_, err = svc.Get(ctx, "missing")
	assert.True(t, apperror.Is(err, apperror.CodeNotFound))
}
