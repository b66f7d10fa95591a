package model

import "time"

// Interests a visitor can pick on the newsletter form
var Interests = []string{"cloud", "ai", "leadership", "compliance"}

// Subscriber is a newsletter subscriber, unique by email
type Subscriber struct {
	ID           string    `json:"id" bson:"_id"`
	Email        string    `json:"email" bson:"email"`
	Interests    []string  `json:"interests" bson:"interests"`
	SubscribedAt time.Time `json:"subscribedAt" bson:"subscribedAt"`
}

// SubscribeRequest is the request body for POST /api/subscribe
type SubscribeRequest struct {
	Email     string   `json:"email" validate:"required,email"`
	Interests []string `json:"interests" validate:"required,min=1,dive,oneof=cloud ai leadership compliance"`
}
