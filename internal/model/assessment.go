package model

import (
	"bytes"
	"encoding/json"
	"time"
)

// AssessmentRecord is a saved assessment result
type AssessmentRecord struct {
	ID        string         `json:"id" bson:"_id"`
	Email     *string        `json:"email" bson:"email,omitempty"`
	Score     ScoreBreakdown `json:"score" bson:"score"`
	Level     string         `json:"level" bson:"level"`
	CreatedAt time.Time      `json:"createdAt" bson:"createdAt"`
}

// SerializedScore accepts a ScoreBreakdown either as an object or as a
// JSON-encoded string, which is how the site's client posts it.
type SerializedScore struct {
	ScoreBreakdown
}

func (s *SerializedScore) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var raw string
		if err := json.Unmarshal(data, &raw); err != nil {
			return err
		}
		data = []byte(raw)
	}
	return json.Unmarshal(data, &s.ScoreBreakdown)
}

// SaveAssessmentRequest is the request body for POST /api/assessments
type SaveAssessmentRequest struct {
	Email string           `json:"email,omitempty" validate:"omitempty,email"`
	Score *SerializedScore `json:"score" validate:"required"`
	Level string           `json:"level" validate:"required"`
}
