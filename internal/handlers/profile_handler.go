package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/hourbook/hourbook/internal/httperr"
	"github.com/hourbook/hourbook/internal/middleware"
	"github.com/hourbook/hourbook/internal/models"
	"github.com/hourbook/hourbook/internal/storage"
)

type ProfileHandler struct {
	db      *gorm.DB
	avatars *storage.AvatarStorage
}

func NewProfileHandler(db *gorm.DB, avatars *storage.AvatarStorage) *ProfileHandler {
	return &ProfileHandler{db: db, avatars: avatars}
}

// GET /me
func (h *ProfileHandler) GetMe(c *gin.Context) {
	userID := c.GetString(middleware.ContextUserID)

	var user models.User
	if err := h.db.First(&user, "id = ?", userID).Error; err != nil {
		httperr.NotFound(c, "user_not_found", "Usuário não encontrado.")
		return
	}

	c.JSON(http.StatusOK, user)
}

// PATCH /users/avatar — multipart field "avatar"
func (h *ProfileHandler) UpdateAvatar(c *gin.Context) {
	userID := c.GetString(middleware.ContextUserID)

	var user models.User
	if err := h.db.First(&user, "id = ?", userID).Error; err != nil {
		httperr.NotFound(c, "user_not_found", "Usuário não encontrado.")
		return
	}

	file, _, err := c.Request.FormFile("avatar")
	if err != nil {
		httperr.BadRequest(c, "missing_avatar_file", "Arquivo de avatar obrigatório.")
		return
	}
	defer file.Close()

	url, err := h.avatars.Upload(c.Request.Context(), file)
	if err != nil {
		httperr.Internal(c, "failed_to_upload_avatar", "Erro ao enviar avatar.")
		return
	}

	user.AvatarURL = &url
	if err := h.db.Save(&user).Error; err != nil {
		httperr.Internal(c, "failed_to_update_user", "Erro ao atualizar usuário.")
		return
	}

	c.JSON(http.StatusOK, user)
}
