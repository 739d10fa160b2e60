package usecase

import (
	"context"
	"errors"
	"strings"

	"go-gladiator-backend/internal/domain"
	"go-gladiator-backend/pkg/apperror"
)

type messageUsecase struct {
	messageRepo domain.MessageRepository
	profileRepo domain.ProfileRepository
}

func NewMessageUsecase(messageRepo domain.MessageRepository, profileRepo domain.ProfileRepository) domain.MessageUsecase {
	return &messageUsecase{
		messageRepo: messageRepo,
		profileRepo: profileRepo,
	}
}

func (u *messageUsecase) SendMessage(ctx context.Context, recipientID, subject, body string) (*domain.Message, error) {
	senderID, _, err := identityFromContext(ctx)
	if err != nil {
		return nil, err
	}

	body = strings.TrimSpace(body)
	if body == "" {
		return nil, apperror.BadRequest("Message body is required")
	}

	if _, err := u.profileRepo.GetByID(ctx, recipientID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Recipient not found")
		}
		return nil, err
	}

	msg := &domain.Message{
		SenderID:    senderID,
		RecipientID: recipientID,
		Body:        body,
	}
	if s := strings.TrimSpace(subject); s != "" {
		msg.Subject = &s
	}

	if err := u.messageRepo.Create(ctx, msg); err != nil {
		return nil, err
	}
	return msg, nil
}

func (u *messageUsecase) ListMyMessages(ctx context.Context) ([]domain.MessageWithParties, error) {
	userID, _, err := identityFromContext(ctx)
	if err != nil {
		return nil, err
	}
	return u.messageRepo.FetchByUser(ctx, userID)
}

// MarkRead flips the read flag. Only the recipient may do so; a sender
// marking their own outgoing message read would corrupt the unread badge.
func (u *messageUsecase) MarkRead(ctx context.Context, messageID string) error {
	userID, _, err := identityFromContext(ctx)
	if err != nil {
		return err
	}

	msg, err := u.messageRepo.GetByID(ctx, messageID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Message not found")
		}
		return err
	}
	if msg.RecipientID != userID {
		return apperror.Forbidden("Only the recipient can mark a message as read")
	}

	if err := u.messageRepo.MarkRead(ctx, messageID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Message not found")
		}
		return err
	}
	return nil
}
