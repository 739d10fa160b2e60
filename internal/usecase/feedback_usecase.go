package usecase

import (
	"context"
	"strings"

	"go-gladiator-backend/internal/domain"
	"go-gladiator-backend/pkg/apperror"
	"go-gladiator-backend/pkg/email"
	"go-gladiator-backend/pkg/logger"
)

type feedbackUsecase struct {
	feedbackRepo domain.FeedbackRepository
	emailService *email.EmailService
}

func NewFeedbackUsecase(feedbackRepo domain.FeedbackRepository, emailService *email.EmailService) domain.FeedbackUsecase {
	return &feedbackUsecase{
		feedbackRepo: feedbackRepo,
		emailService: emailService,
	}
}

// SubmitFeedback stores the submission and, when SMTP is configured, sends a
// notification. Anonymous feedback is allowed; the user id is attached only
// when the caller is authenticated.
func (u *feedbackUsecase) SubmitFeedback(ctx context.Context, fb *domain.Feedback) error {
	fb.Type = strings.TrimSpace(fb.Type)
	fb.Title = strings.TrimSpace(fb.Title)
	fb.Description = strings.TrimSpace(fb.Description)

	if !validFeedbackType(fb.Type) {
		return apperror.BadRequest("Invalid feedback type")
	}
	if fb.Title == "" {
		return apperror.BadRequest("Title is required")
	}
	if fb.Description == "" {
		return apperror.BadRequest("Description is required")
	}

	if userID, ok := ctx.Value(domain.KeyUserID).(string); ok && userID != "" {
		fb.UserID = &userID
		if fb.Email == nil {
			if em, ok := ctx.Value(domain.KeyUserEmail).(string); ok && em != "" {
				fb.Email = &em
			}
		}
	}
	fb.Status = "pending"

	if err := u.feedbackRepo.Create(ctx, fb); err != nil {
		return err
	}

	if u.emailService != nil && u.emailService.IsConfigured() {
		data := email.FeedbackEmailData{
			Type:        fb.Type,
			Title:       fb.Title,
			Description: fb.Description,
		}
		if fb.Email != nil {
			data.SenderEmail = *fb.Email
		}
		// Notification failure must not fail the submission
		if err := u.emailService.SendFeedbackEmail(data); err != nil {
			logger.Log.Warn("Failed to send feedback notification", "error", err)
		}
	}

	return nil
}

func validFeedbackType(t string) bool {
	for _, v := range domain.FeedbackTypes {
		if t == v {
			return true
		}
	}
	return false
}
