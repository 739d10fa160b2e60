package usecase

import (
	"context"
	"errors"
	"strings"

	"go-gladiator-backend/internal/domain"
	"go-gladiator-backend/pkg/apperror"
)

type reviewUsecase struct {
	reviewRepo domain.ReviewRepository
	ratingRepo domain.RatingRepository
}

func NewReviewUsecase(reviewRepo domain.ReviewRepository, ratingRepo domain.RatingRepository) domain.ReviewUsecase {
	return &reviewUsecase{
		reviewRepo: reviewRepo,
		ratingRepo: ratingRepo,
	}
}

func identityFromContext(ctx context.Context) (userID, role string, err error) {
	userID, ok := ctx.Value(domain.KeyUserID).(string)
	if !ok || userID == "" {
		return "", "", apperror.Unauthorized("User not authenticated")
	}
	role, _ = ctx.Value(domain.KeyUserRole).(string)
	return userID, role, nil
}

// commentOrNil trims the comment and maps an empty result to NULL, matching
// how the reviews table stores absent comments.
func commentOrNil(comment string) *string {
	trimmed := strings.TrimSpace(comment)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

func (u *reviewUsecase) SubmitReview(ctx context.Context, professionalID string, rating int, comment string) (*domain.Review, error) {
	clientID, role, err := identityFromContext(ctx)
	if err != nil {
		return nil, err
	}
	if role != domain.RoleClient {
		return nil, apperror.Forbidden("Only clients can leave reviews")
	}
	if rating < 1 || rating > 5 {
		return nil, apperror.BadRequest("Rating must be between 1 and 5")
	}

	review := &domain.Review{
		ProfessionalID: professionalID,
		ClientID:       clientID,
		Rating:         rating,
		Comment:        commentOrNil(comment),
	}
	if err := u.reviewRepo.Create(ctx, review); err != nil {
		return nil, err
	}
	return review, nil
}

func (u *reviewUsecase) UpdateReview(ctx context.Context, reviewID string, rating int, comment string) (*domain.Review, error) {
	clientID, _, err := identityFromContext(ctx)
	if err != nil {
		return nil, err
	}
	if rating < 1 || rating > 5 {
		return nil, apperror.BadRequest("Rating must be between 1 and 5")
	}

	review, err := u.reviewRepo.GetByID(ctx, reviewID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Review not found")
		}
		return nil, err
	}

	// Ownership is enforced here, not just hidden in the UI
	if review.ClientID != clientID {
		return nil, apperror.Forbidden("You can only edit your own review")
	}

	review.Rating = rating
	review.Comment = commentOrNil(comment)
	if err := u.reviewRepo.Update(ctx, review); err != nil {
		// The review can vanish between the ownership read and the write
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Review not found")
		}
		return nil, err
	}
	return review, nil
}

func (u *reviewUsecase) DeleteReview(ctx context.Context, reviewID string) error {
	clientID, _, err := identityFromContext(ctx)
	if err != nil {
		return err
	}

	review, err := u.reviewRepo.GetByID(ctx, reviewID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Review not found")
		}
		return err
	}

	if review.ClientID != clientID {
		return apperror.Forbidden("You can only delete your own review")
	}

	if err := u.reviewRepo.Delete(ctx, reviewID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Review not found")
		}
		return err
	}
	return nil
}

func (u *reviewUsecase) ListByProfessional(ctx context.Context, professionalID string) ([]domain.ReviewWithClient, error) {
	return u.reviewRepo.FetchByProfessional(ctx, professionalID)
}

func (u *reviewUsecase) GetRating(ctx context.Context, professionalID string) (*domain.RatingAggregate, error) {
	return u.ratingRepo.GetRating(ctx, professionalID)
}
