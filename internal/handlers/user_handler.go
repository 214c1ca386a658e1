package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/AuMiauServices/petshop-api/internal/httperr"
	"github.com/AuMiauServices/petshop-api/internal/middleware"
	"github.com/AuMiauServices/petshop-api/internal/models"
	"github.com/AuMiauServices/petshop-api/internal/validators"
)

type UserHandler struct {
	db         *gorm.DB
	bcryptCost int
}

func NewUserHandler(db *gorm.DB, bcryptCost int) *UserHandler {
	return &UserHandler{db: db, bcryptCost: bcryptCost}
}

// --------- Requests ---------

type UpdateUserRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	CPF   string `json:"cpf"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
	ConfirmPassword string `json:"confirmPassword"`
}

// --------- Handlers ---------

// Get devolve o perfil da própria conta, sem senha e sem CPF.
func (h *UserHandler) Get(c *gin.Context) {
	userID := middleware.UserID(c)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.NotFound(c, "Usuário não encontrado!")
		return
	}
	if uint(id) != userID {
		httperr.Forbidden(c, "Acesso negado!")
		return
	}

	var user models.User
	if err := h.db.First(&user, userID).Error; err != nil {
		httperr.NotFound(c, "Usuário não encontrado!")
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user})
}

// Update edita nome, email e CPF da própria conta. O papel nunca é
// editável por aqui.
func (h *UserHandler) Update(c *gin.Context) {
	userID := middleware.UserID(c)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || uint(id) != userID {
		httperr.Forbidden(c, "Acesso negado!")
		return
	}

	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Unprocessable(c, "Dados inválidos!")
		return
	}

	if req.Name == "" {
		httperr.Unprocessable(c, "O nome é obrigatório!")
		return
	}
	if req.Email == "" {
		httperr.Unprocessable(c, "O email é obrigatório!")
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	if !validators.IsValidEmail(email) {
		httperr.Unprocessable(c, "Email inválido!")
		return
	}

	var user models.User
	if err := h.db.First(&user, userID).Error; err != nil {
		httperr.NotFound(c, "Usuário não encontrado!")
		return
	}

	if email != user.Email {
		var count int64
		h.db.Model(&models.User{}).
			Where("email = ? AND id <> ?", email, user.ID).
			Count(&count)
		if count > 0 {
			httperr.Unprocessable(c, "Usuário com este email já existe!")
			return
		}
	}

	if req.CPF != "" {
		cpf := validators.NormalizeCPF(req.CPF)
		if !validators.IsValidCPF(cpf) {
			httperr.Unprocessable(c, "CPF inválido, utilize um CPF válido!")
			return
		}
		user.CPF = cpf
	}

	user.Name = req.Name
	user.Email = email

	if err := h.db.Save(&user).Error; err != nil {
		httperr.Internal(c)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"msg":  "Usuário atualizado com sucesso!",
		"user": user,
	})
}

// ChangePassword troca a senha da conta autenticada mediante a senha
// atual e a política de força.
func (h *UserHandler) ChangePassword(c *gin.Context) {
	userID := middleware.UserID(c)

	var req ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Unprocessable(c, "Dados inválidos!")
		return
	}

	if req.CurrentPassword == "" || req.NewPassword == "" {
		httperr.Unprocessable(c, "A senha atual e a nova senha são obrigatórias!")
		return
	}
	if req.NewPassword != req.ConfirmPassword {
		httperr.Unprocessable(c, "As senhas não conferem!")
		return
	}
	if !validators.IsStrongPassword(req.NewPassword) {
		httperr.Unprocessable(c, "A senha deve ter no mínimo 8 caracteres, com maiúscula, minúscula, número e símbolo!")
		return
	}

	var user models.User
	if err := h.db.First(&user, userID).Error; err != nil {
		httperr.NotFound(c, "Usuário não encontrado!")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.CurrentPassword)); err != nil {
		httperr.Unprocessable(c, "Senha atual inválida!")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), h.bcryptCost)
	if err != nil {
		httperr.Internal(c)
		return
	}

	if err := h.db.Model(&user).Update("password_hash", string(hashed)).Error; err != nil {
		httperr.Internal(c)
		return
	}

	c.JSON(http.StatusOK, gin.H{"msg": "Senha alterada com sucesso!"})
}
