package usecase_test

import (
	"testing"

	"go-gladiator-backend/internal/domain"
	"go-gladiator-backend/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestSendMessage(t *testing.T) {
	recipient := &domain.Profile{ID: "user-2", Email: "b@example.com", UserType: domain.RoleProfessional}

	t.Run("Should send a message to an existing recipient", func(t *testing.T) {
		msgRepo := new(MockMessageRepo)
		profileRepo := new(MockProfileRepo)
		uc := usecase.NewMessageUsecase(msgRepo, profileRepo)

		profileRepo.On("GetByID", mock.Anything, "user-2").Return(recipient, nil)
		msgRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Message")).Return(nil)

		msg, err := uc.SendMessage(authCtx("user-1", domain.RoleClient), "user-2", "Project inquiry", "Hi there")
		assert.NoError(t, err)
		assert.Equal(t, "user-1", msg.SenderID)
		assert.Equal(t, "user-2", msg.RecipientID)
		assert.Equal(t, "Project inquiry", *msg.Subject)
		assert.Equal(t, "Hi there", msg.Body)
	})

	t.Run("Should store empty subject as nil", func(t *testing.T) {
		msgRepo := new(MockMessageRepo)
		profileRepo := new(MockProfileRepo)
		uc := usecase.NewMessageUsecase(msgRepo, profileRepo)

		profileRepo.On("GetByID", mock.Anything, "user-2").Return(recipient, nil)
		msgRepo.On("Create", mock.Anything, mock.Anything).Return(nil)

		msg, err := uc.SendMessage(authCtx("user-1", domain.RoleClient), "user-2", "  ", "Hi")
		assert.NoError(t, err)
		assert.Nil(t, msg.Subject)
	})

	t.Run("Should reject an empty body", func(t *testing.T) {
		msgRepo := new(MockMessageRepo)
		uc := usecase.NewMessageUsecase(msgRepo, new(MockProfileRepo))

		_, err := uc.SendMessage(authCtx("user-1", domain.RoleClient), "user-2", "", "   ")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "body is required")
		msgRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Should reject an unknown recipient", func(t *testing.T) {
		msgRepo := new(MockMessageRepo)
		profileRepo := new(MockProfileRepo)
		uc := usecase.NewMessageUsecase(msgRepo, profileRepo)

		profileRepo.On("GetByID", mock.Anything, "ghost").Return(nil, domain.ErrNotFound)

		_, err := uc.SendMessage(authCtx("user-1", domain.RoleClient), "ghost", "", "Hi")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Recipient not found")
		msgRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestMarkRead(t *testing.T) {
	stored := &domain.Message{ID: "msg-1", SenderID: "user-1", RecipientID: "user-2", Body: "Hi"}

	t.Run("Should let the recipient mark read", func(t *testing.T) {
		msgRepo := new(MockMessageRepo)
		uc := usecase.NewMessageUsecase(msgRepo, new(MockProfileRepo))

		msgRepo.On("GetByID", mock.Anything, "msg-1").Return(stored, nil)
		msgRepo.On("MarkRead", mock.Anything, "msg-1").Return(nil)

		err := uc.MarkRead(authCtx("user-2", domain.RoleProfessional), "msg-1")
		assert.NoError(t, err)
	})

	t.Run("Should forbid the sender from marking read", func(t *testing.T) {
		msgRepo := new(MockMessageRepo)
		uc := usecase.NewMessageUsecase(msgRepo, new(MockProfileRepo))

		msgRepo.On("GetByID", mock.Anything, "msg-1").Return(stored, nil)

		err := uc.MarkRead(authCtx("user-1", domain.RoleClient), "msg-1")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Only the recipient")
		msgRepo.AssertNotCalled(t, "MarkRead", mock.Anything, mock.Anything)
	})

	t.Run("Should map a missing message to not found", func(t *testing.T) {
		msgRepo := new(MockMessageRepo)
		uc := usecase.NewMessageUsecase(msgRepo, new(MockProfileRepo))

		msgRepo.On("GetByID", mock.Anything, "msg-missing").Return(nil, domain.ErrNotFound)

		err := uc.MarkRead(authCtx("user-2", domain.RoleProfessional), "msg-missing")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Message not found")
	})
}
