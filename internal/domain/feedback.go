package domain

import (
	"context"
	"time"
)

var FeedbackTypes = []string{"feature", "improvement", "bug", "other"}

type Feedback struct {
	ID          string    `json:"id"`
	UserID      *string   `json:"user_id"`
	Type        string    `json:"type"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Email       *string   `json:"email"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

type FeedbackRepository interface {
	Create(ctx context.Context, fb *Feedback) error
}

type FeedbackUsecase interface {
	SubmitFeedback(ctx context.Context, fb *Feedback) error
}
