package v1

import (
	"io"
	"net/http"

	"go-gladiator-backend/internal/delivery/http/response"
	"go-gladiator-backend/internal/domain"
	"go-gladiator-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type ProfileHandler struct {
	profileUC domain.ProfileUsecase
}

// NewProfileHandler registers the authenticated profile routes.
func NewProfileHandler(protected *gin.RouterGroup, profileUC domain.ProfileUsecase) {
	handler := &ProfileHandler{profileUC: profileUC}

	profiles := protected.Group("/profiles")
	{
		profiles.POST("/sync", handler.Sync)
		profiles.GET("/me", handler.GetMe)
		profiles.PUT("/me", handler.UpdateMe)
		profiles.POST("/me/avatar", handler.UploadAvatar)
	}
}

type syncProfileRequest struct {
	UserType string `json:"user_type" binding:"required"`
	FullName string `json:"full_name"`
}

// Sync godoc
// @Summary      Ensure a profile row exists for the authenticated user
// @Description  Idempotent. Called once after auth-provider signup; returns the existing profile on repeat calls.
// @Tags         profiles
// @Accept       json
// @Produce      json
// @Param        request  body      syncProfileRequest  true  "Role and display name"
// @Success      200      {object}  response.Response{data=domain.Profile}
// @Failure      400      {object}  response.Response
// @Security     BearerAuth
// @Router       /profiles/sync [post]
func (h *ProfileHandler) Sync(c *gin.Context) {
	var req syncProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest("Invalid request body: " + err.Error()))
		return
	}

	profile, err := h.profileUC.EnsureProfile(c, req.UserType, req.FullName)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Profile synced", profile)
}

// GetMe godoc
// @Summary      Get my profile
// @Tags         profiles
// @Produce      json
// @Success      200  {object}  response.Response{data=domain.Profile}
// @Failure      404  {object}  response.Response
// @Security     BearerAuth
// @Router       /profiles/me [get]
func (h *ProfileHandler) GetMe(c *gin.Context) {
	profile, err := h.profileUC.GetMyProfile(c)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Profile", profile)
}

// UpdateMe godoc
// @Summary      Update my profile
// @Description  Professionals can set rate, skills and category; clients can set company fields. Fields outside the caller's role are ignored.
// @Tags         profiles
// @Accept       json
// @Produce      json
// @Param        request  body      domain.ProfileUpdate  true  "Fields to update"
// @Success      200      {object}  response.Response{data=domain.Profile}
// @Failure      400      {object}  response.Response
// @Security     BearerAuth
// @Router       /profiles/me [put]
func (h *ProfileHandler) UpdateMe(c *gin.Context) {
	var update domain.ProfileUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		c.Error(apperror.BadRequest("Invalid request body: " + err.Error()))
		return
	}

	profile, err := h.profileUC.UpdateMyProfile(c, &update)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Profile updated", profile)
}

// UploadAvatar godoc
// @Summary      Upload my avatar
// @Description  Multipart form with an "avatar" file part, max 5MB
// @Tags         profiles
// @Accept       multipart/form-data
// @Produce      json
// @Param        avatar  formData  file  true  "Avatar image (jpeg, png or webp)"
// @Success      200     {object}  response.Response
// @Failure      400     {object}  response.Response
// @Security     BearerAuth
// @Router       /profiles/me/avatar [post]
func (h *ProfileHandler) UploadAvatar(c *gin.Context) {
	file, err := c.FormFile("avatar")
	if err != nil {
		c.Error(apperror.BadRequest("avatar file is required"))
		return
	}

	src, err := file.Open()
	if err != nil {
		c.Error(apperror.BadRequest("Failed to read uploaded image"))
		return
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		c.Error(apperror.BadRequest("Failed to read uploaded image"))
		return
	}

	url, err := h.profileUC.UpdateAvatar(c, file.Filename, data, file.Header.Get("Content-Type"))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Avatar updated", gin.H{"avatar_url": url})
}
