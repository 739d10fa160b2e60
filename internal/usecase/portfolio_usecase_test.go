package usecase_test

import (
	"testing"

	"go-gladiator-backend/internal/domain"
	"go-gladiator-backend/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestAddPortfolioItem(t *testing.T) {
	t.Run("Should create an item with an uploaded image", func(t *testing.T) {
		pfRepo := new(MockPortfolioRepo)
		uploader := new(MockUploader)
		uc := usecase.NewPortfolioUsecase(pfRepo, uploader, newValidator())

		uploader.On("Upload", mock.Anything, "portfolio", mock.AnythingOfType("string"), mock.Anything, "image/jpeg").
			Return("https://cdn.example.com/portfolio/x.jpg", nil)
		pfRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.PortfolioItem")).Return(nil)

		item, err := uc.AddItem(authCtx("pro-1", domain.RoleProfessional), &domain.PortfolioInput{
			Title:            "  Shop redesign  ",
			Description:      "Full storefront rework",
			Tags:             []string{" ecommerce ", "", "ux"},
			ImageFilename:    "shot.jpg",
			ImageData:        []byte{1, 2, 3},
			ImageContentType: "image/jpeg",
		})
		assert.NoError(t, err)
		assert.Equal(t, "Shop redesign", item.Title)
		assert.Equal(t, "https://cdn.example.com/portfolio/x.jpg", *item.ImageURL)
		assert.Equal(t, []string{"ecommerce", "ux"}, item.Tags)
	})

	t.Run("Should create an item without an image", func(t *testing.T) {
		pfRepo := new(MockPortfolioRepo)
		uploader := new(MockUploader)
		uc := usecase.NewPortfolioUsecase(pfRepo, uploader, newValidator())

		pfRepo.On("Create", mock.Anything, mock.Anything).Return(nil)

		item, err := uc.AddItem(authCtx("pro-1", domain.RoleProfessional), &domain.PortfolioInput{
			Title: "API design",
		})
		assert.NoError(t, err)
		assert.Nil(t, item.ImageURL)
		uploader.AssertNotCalled(t, "Upload", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Should reject clients", func(t *testing.T) {
		pfRepo := new(MockPortfolioRepo)
		uc := usecase.NewPortfolioUsecase(pfRepo, new(MockUploader), newValidator())

		_, err := uc.AddItem(authCtx("client-1", domain.RoleClient), &domain.PortfolioInput{Title: "x"})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Only professionals")
		pfRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Should reject a missing title", func(t *testing.T) {
		uc := usecase.NewPortfolioUsecase(new(MockPortfolioRepo), new(MockUploader), newValidator())

		_, err := uc.AddItem(authCtx("pro-1", domain.RoleProfessional), &domain.PortfolioInput{Title: "   "})
		assert.Error(t, err)
	})

	t.Run("Should reject oversized images", func(t *testing.T) {
		uploader := new(MockUploader)
		uc := usecase.NewPortfolioUsecase(new(MockPortfolioRepo), uploader, newValidator())

		_, err := uc.AddItem(authCtx("pro-1", domain.RoleProfessional), &domain.PortfolioInput{
			Title:     "Big one",
			ImageData: make([]byte, 5*1024*1024+1),
		})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "less than 5MB")
		uploader.AssertNotCalled(t, "Upload", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestDeletePortfolioItem(t *testing.T) {
	stored := &domain.PortfolioItem{ID: "item-1", UserID: "pro-owner", Title: "x"}

	t.Run("Should forbid deleting someone else's item", func(t *testing.T) {
		pfRepo := new(MockPortfolioRepo)
		uc := usecase.NewPortfolioUsecase(pfRepo, new(MockUploader), newValidator())

		pfRepo.On("GetByID", mock.Anything, "item-1").Return(stored, nil)

		err := uc.DeleteItem(authCtx("pro-other", domain.RoleProfessional), "item-1")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "your own portfolio items")
		pfRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("Should let the owner delete", func(t *testing.T) {
		pfRepo := new(MockPortfolioRepo)
		uc := usecase.NewPortfolioUsecase(pfRepo, new(MockUploader), newValidator())

		pfRepo.On("GetByID", mock.Anything, "item-1").Return(stored, nil)
		pfRepo.On("Delete", mock.Anything, "item-1").Return(nil)

		err := uc.DeleteItem(authCtx("pro-owner", domain.RoleProfessional), "item-1")
		assert.NoError(t, err)
	})
}
