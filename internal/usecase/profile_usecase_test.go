package usecase_test

import (
	"context"
	"testing"

	"go-gladiator-backend/internal/domain"
	"go-gladiator-backend/internal/usecase"
	"go-gladiator-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockUploader records uploads instead of talking to S3.
type MockUploader struct {
	mock.Mock
}

func (m *MockUploader) Upload(ctx context.Context, bucket, path string, body []byte, contentType string) (string, error) {
	args := m.Called(ctx, bucket, path, body, contentType)
	return args.String(0), args.Error(1)
}

func newValidator() *validator.Validate {
	v := validator.New()
	validation.RegisterValidators(v)
	return v
}

func fullAuthCtx(userID, email, role string) context.Context {
	ctx := authCtx(userID, role)
	return context.WithValue(ctx, domain.KeyUserEmail, email)
}

func TestEnsureProfile(t *testing.T) {
	t.Run("Should create a profile from the token identity", func(t *testing.T) {
		profileRepo := new(MockProfileRepo)
		uc := usecase.NewProfileUsecase(profileRepo, new(MockUploader), newValidator())

		profileRepo.On("GetByID", mock.Anything, "user-1").Return(nil, domain.ErrNotFound)
		profileRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Profile")).Return(nil)

		profile, err := uc.EnsureProfile(fullAuthCtx("user-1", "a@example.com", ""), domain.RoleProfessional, "Anna Kovacs")
		assert.NoError(t, err)
		assert.Equal(t, "user-1", profile.ID)
		assert.Equal(t, "a@example.com", profile.Email)
		assert.Equal(t, domain.RoleProfessional, profile.UserType)
		assert.Equal(t, "Anna Kovacs", *profile.FullName)
	})

	t.Run("Should be idempotent when the profile already exists", func(t *testing.T) {
		profileRepo := new(MockProfileRepo)
		uc := usecase.NewProfileUsecase(profileRepo, new(MockUploader), newValidator())

		existing := &domain.Profile{ID: "user-1", Email: "a@example.com", UserType: domain.RoleClient}
		profileRepo.On("GetByID", mock.Anything, "user-1").Return(existing, nil)

		profile, err := uc.EnsureProfile(fullAuthCtx("user-1", "a@example.com", domain.RoleClient), domain.RoleProfessional, "")
		assert.NoError(t, err)
		// The stored role wins over whatever the repeat call sends
		assert.Equal(t, domain.RoleClient, profile.UserType)
		profileRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Should reject an unknown user type", func(t *testing.T) {
		profileRepo := new(MockProfileRepo)
		uc := usecase.NewProfileUsecase(profileRepo, new(MockUploader), newValidator())

		_, err := uc.EnsureProfile(fullAuthCtx("user-1", "a@example.com", ""), "admin", "")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "professional or client")
	})
}

func TestUpdateMyProfile(t *testing.T) {
	t.Run("Should apply professional fields for professionals", func(t *testing.T) {
		profileRepo := new(MockProfileRepo)
		uc := usecase.NewProfileUsecase(profileRepo, new(MockUploader), newValidator())

		stored := &domain.Profile{ID: "user-1", UserType: domain.RoleProfessional}
		profileRepo.On("GetByID", mock.Anything, "user-1").Return(stored, nil)
		profileRepo.On("Update", mock.Anything, mock.AnythingOfType("*domain.Profile")).Return(nil)

		profile, err := uc.UpdateMyProfile(authCtx("user-1", domain.RoleProfessional), &domain.ProfileUpdate{
			HourlyRate:  floatPtr(75),
			Category:    strPtr("it"),
			Skills:      []string{"Go"},
			CompanyName: strPtr("Should Be Ignored Ltd"),
		})
		assert.NoError(t, err)
		assert.Equal(t, 75.0, *profile.HourlyRate)
		assert.Equal(t, "it", *profile.Category)
		assert.Nil(t, profile.CompanyName)
	})

	t.Run("Should apply company fields for clients and ignore rate", func(t *testing.T) {
		profileRepo := new(MockProfileRepo)
		uc := usecase.NewProfileUsecase(profileRepo, new(MockUploader), newValidator())

		stored := &domain.Profile{ID: "user-2", UserType: domain.RoleClient}
		profileRepo.On("GetByID", mock.Anything, "user-2").Return(stored, nil)
		profileRepo.On("Update", mock.Anything, mock.Anything).Return(nil)

		profile, err := uc.UpdateMyProfile(authCtx("user-2", domain.RoleClient), &domain.ProfileUpdate{
			CompanyName: strPtr("Acme GmbH"),
			HourlyRate:  floatPtr(500),
		})
		assert.NoError(t, err)
		assert.Equal(t, "Acme GmbH", *profile.CompanyName)
		assert.Nil(t, profile.HourlyRate)
	})

	t.Run("Should reject an invalid category", func(t *testing.T) {
		profileRepo := new(MockProfileRepo)
		uc := usecase.NewProfileUsecase(profileRepo, new(MockUploader), newValidator())

		_, err := uc.UpdateMyProfile(authCtx("user-1", domain.RoleProfessional), &domain.ProfileUpdate{
			Category: strPtr("astrology"),
		})
		assert.Error(t, err)
		profileRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})
}

func TestUpdateAvatar(t *testing.T) {
	t.Run("Should upload under a fixed per-user key and persist the URL", func(t *testing.T) {
		profileRepo := new(MockProfileRepo)
		uploader := new(MockUploader)
		uc := usecase.NewProfileUsecase(profileRepo, uploader, newValidator())

		stored := &domain.Profile{ID: "user-1", UserType: domain.RoleProfessional}
		profileRepo.On("GetByID", mock.Anything, "user-1").Return(stored, nil)
		profileRepo.On("Update", mock.Anything, mock.Anything).Return(nil)
		uploader.On("Upload", mock.Anything, "avatars", "user-1/avatar.png", mock.Anything, "image/png").
			Return("https://cdn.example.com/avatars/user-1/avatar.png", nil)

		url, err := uc.UpdateAvatar(authCtx("user-1", domain.RoleProfessional), "selfie.png", []byte{1, 2, 3}, "image/png")
		assert.NoError(t, err)
		assert.Equal(t, "https://cdn.example.com/avatars/user-1/avatar.png", url)
	})

	t.Run("Should reject oversized images", func(t *testing.T) {
		uploader := new(MockUploader)
		uc := usecase.NewProfileUsecase(new(MockProfileRepo), uploader, newValidator())

		big := make([]byte, 5*1024*1024+1)
		_, err := uc.UpdateAvatar(authCtx("user-1", domain.RoleProfessional), "big.png", big, "image/png")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "less than 5MB")
		uploader.AssertNotCalled(t, "Upload", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}
