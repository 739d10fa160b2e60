package v1

import (
	"io"
	"net/http"
	"strings"

	"go-gladiator-backend/internal/delivery/http/response"
	"go-gladiator-backend/internal/domain"
	"go-gladiator-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type PortfolioHandler struct {
	portfolioUC domain.PortfolioUsecase
}

// NewPortfolioHandler registers the authenticated portfolio routes.
func NewPortfolioHandler(protected *gin.RouterGroup, portfolioUC domain.PortfolioUsecase) {
	handler := &PortfolioHandler{portfolioUC: portfolioUC}

	portfolio := protected.Group("/portfolio")
	{
		portfolio.POST("", handler.Add)
		portfolio.DELETE("/:id", handler.Delete)
	}
}

// Add godoc
// @Summary      Add a portfolio item
// @Description  Professionals only. Multipart form; the image part is optional, max 5MB.
// @Tags         portfolio
// @Accept       multipart/form-data
// @Produce      json
// @Param        title        formData  string  true   "Title"
// @Param        description  formData  string  false  "Description"
// @Param        project_url  formData  string  false  "Project URL"
// @Param        tags         formData  string  false  "Comma-separated tags"
// @Param        image        formData  file    false  "Image (jpeg, png or webp)"
// @Success      201  {object}  response.Response{data=domain.PortfolioItem}
// @Failure      400  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Security     BearerAuth
// @Router       /portfolio [post]
func (h *PortfolioHandler) Add(c *gin.Context) {
	input := &domain.PortfolioInput{
		Title:       c.PostForm("title"),
		Description: c.PostForm("description"),
		ProjectURL:  c.PostForm("project_url"),
	}
	if tags := c.PostForm("tags"); tags != "" {
		input.Tags = strings.Split(tags, ",")
	}

	if file, err := c.FormFile("image"); err == nil {
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
		input.ImageFilename = file.Filename
		input.ImageData = data
		input.ImageContentType = file.Header.Get("Content-Type")
	}

	item, err := h.portfolioUC.AddItem(c, input)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Portfolio item added", item)
}

// Delete godoc
// @Summary      Delete my portfolio item
// @Tags         portfolio
// @Produce      json
// @Param        id   path      string  true  "Portfolio item ID"
// @Success      200  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Security     BearerAuth
// @Router       /portfolio/{id} [delete]
func (h *PortfolioHandler) Delete(c *gin.Context) {
	if err := h.portfolioUC.DeleteItem(c, c.Param("id")); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Portfolio item deleted", nil)
}
