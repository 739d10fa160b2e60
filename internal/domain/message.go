package domain

import (
	"context"
	"time"
)

// Message is a flat directed edge between two profiles. There is no thread
// entity; the UI groups by counterpart.
type Message struct {
	ID          string    `json:"id"`
	SenderID    string    `json:"sender_id"`
	RecipientID string    `json:"recipient_id"`
	Subject     *string   `json:"subject"`
	Body        string    `json:"message"`
	Read        bool      `json:"read"`
	CreatedAt   time.Time `json:"created_at"`
}

type MessageWithParties struct {
	Message
	SenderName         *string `json:"sender_name"`
	SenderAvatarURL    *string `json:"sender_avatar_url"`
	SenderUserType     string  `json:"sender_user_type"`
	RecipientName      *string `json:"recipient_name"`
	RecipientAvatarURL *string `json:"recipient_avatar_url"`
	RecipientUserType  string  `json:"recipient_user_type"`
}

type MessageRepository interface {
	Create(ctx context.Context, msg *Message) error
	GetByID(ctx context.Context, id string) (*Message, error)
	// FetchByUser returns all messages the user sent or received, newest first.
	FetchByUser(ctx context.Context, userID string) ([]MessageWithParties, error)
	MarkRead(ctx context.Context, id string) error
}

type MessageUsecase interface {
	SendMessage(ctx context.Context, recipientID, subject, body string) (*Message, error)
	ListMyMessages(ctx context.Context) ([]MessageWithParties, error)
	MarkRead(ctx context.Context, messageID string) error
}
