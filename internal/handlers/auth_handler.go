package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/AuMiauServices/petshop-api/internal/audit"
	"github.com/AuMiauServices/petshop-api/internal/httperr"
	"github.com/AuMiauServices/petshop-api/internal/mailer"
	"github.com/AuMiauServices/petshop-api/internal/models"
	"github.com/AuMiauServices/petshop-api/internal/resetcode"
	"github.com/AuMiauServices/petshop-api/internal/token"
	"github.com/AuMiauServices/petshop-api/internal/validators"
)

type AuthHandler struct {
	db         *gorm.DB
	tokens     *token.Manager
	codes      *resetcode.Store
	mail       mailer.Mailer
	audit      audit.Recorder
	bcryptCost int
}

func NewAuthHandler(
	db *gorm.DB,
	tokens *token.Manager,
	codes *resetcode.Store,
	mail mailer.Mailer,
	recorder audit.Recorder,
	bcryptCost int,
) *AuthHandler {
	return &AuthHandler{
		db:         db,
		tokens:     tokens,
		codes:      codes,
		mail:       mail,
		audit:      recorder,
		bcryptCost: bcryptCost,
	}
}

// --------- Requests ---------

type RegisterRequest struct {
	Name            string `json:"name"`
	CPF             string `json:"cpf"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email"`
}

type VerifyCodeRequest struct {
	Email string `json:"email"`
	Code  string `json:"code"`
}

type ResetPasswordRequest struct {
	Email           string `json:"email"`
	Code            string `json:"code"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

// --------- Handlers ---------

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Unprocessable(c, "Dados inválidos!")
		return
	}

	if req.Name == "" {
		httperr.Unprocessable(c, "O nome é obrigatório!")
		return
	}
	if req.CPF == "" {
		httperr.Unprocessable(c, "O CPF é obrigatório!")
		return
	}
	if req.Email == "" {
		httperr.Unprocessable(c, "O email é obrigatório!")
		return
	}
	if req.Password == "" {
		httperr.Unprocessable(c, "A senha é obrigatória!")
		return
	}
	if req.Password != req.ConfirmPassword {
		httperr.Unprocessable(c, "As senhas não conferem!")
		return
	}

	cpf := validators.NormalizeCPF(req.CPF)
	if !validators.IsValidCPF(cpf) {
		httperr.Unprocessable(c, "CPF inválido, utilize um CPF válido!")
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	if !validators.IsValidEmail(email) {
		httperr.Unprocessable(c, "Email inválido!")
		return
	}

	if !validators.IsStrongPassword(req.Password) {
		httperr.Unprocessable(c, "A senha deve ter no mínimo 8 caracteres, com maiúscula, minúscula, número e símbolo!")
		return
	}

	var count int64
	h.db.Model(&models.User{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		httperr.Unprocessable(c, "Usuário com este email já existe!")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), h.bcryptCost)
	if err != nil {
		httperr.Internal(c)
		return
	}

	user := models.User{
		Name:         req.Name,
		CPF:          cpf,
		Email:        email,
		PasswordHash: string(hashed),
		Role:         models.RoleCustomer,
	}

	if err := h.db.Create(&user).Error; err != nil {
		httperr.Internal(c)
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &user.ID,
		Action:   "user_registered",
		Entity:   "user",
		EntityID: &user.ID,
	})

	c.JSON(http.StatusCreated, gin.H{"msg": "Usuário criado com sucesso!"})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Unprocessable(c, "Dados inválidos!")
		return
	}

	if req.Email == "" {
		httperr.Unprocessable(c, "O email é obrigatório!")
		return
	}
	if req.Password == "" {
		httperr.Unprocessable(c, "A senha é obrigatória!")
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	var user models.User
	if err := h.db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "Usuário não encontrado!")
			return
		}
		httperr.Internal(c)
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		httperr.NotFound(c, "Senha inválida!")
		return
	}

	signed, _, err := h.tokens.Generate(user.ID)
	if err != nil {
		httperr.Internal(c)
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &user.ID,
		Action:   "user_logged_in",
		Entity:   "user",
		EntityID: &user.ID,
	})

	c.JSON(http.StatusOK, gin.H{
		"msg":   "Autenticação realizada com sucesso!",
		"token": signed,
	})
}

func (h *AuthHandler) ForgotPassword(c *gin.Context) {
	var req ForgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Email == "" {
		httperr.Unprocessable(c, "O email é obrigatório!")
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	var user models.User
	if err := h.db.Where("email = ?", email).First(&user).Error; err != nil {
		httperr.NotFound(c, "Usuário não encontrado!")
		return
	}

	code, err := h.codes.Issue(c.Request.Context(), user.ID)
	if err != nil {
		httperr.Internal(c)
		return
	}

	if err := h.mail.SendResetCode(user.Email, code); err != nil {
		httperr.Internal(c)
		return
	}

	c.JSON(http.StatusOK, gin.H{"msg": "Código de redefinição enviado para o seu email!"})
}

func (h *AuthHandler) VerifyCode(c *gin.Context) {
	var req VerifyCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Email == "" || req.Code == "" {
		httperr.Unprocessable(c, "Email e código são obrigatórios!")
		return
	}

	user, ok := h.userByEmail(c, req.Email)
	if !ok {
		return
	}

	if err := h.codes.Verify(c.Request.Context(), user.ID, req.Code); err != nil {
		if errors.Is(err, resetcode.ErrInvalidCode) {
			httperr.BadRequest(c, "Código inválido ou expirado!")
			return
		}
		httperr.Internal(c)
		return
	}

	c.JSON(http.StatusOK, gin.H{"msg": "Código válido!"})
}

func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var req ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Email == "" || req.Code == "" {
		httperr.Unprocessable(c, "Email e código são obrigatórios!")
		return
	}

	if req.Password == "" {
		httperr.Unprocessable(c, "A senha é obrigatória!")
		return
	}
	if req.Password != req.ConfirmPassword {
		httperr.Unprocessable(c, "As senhas não conferem!")
		return
	}
	if !validators.IsStrongPassword(req.Password) {
		httperr.Unprocessable(c, "A senha deve ter no mínimo 8 caracteres, com maiúscula, minúscula, número e símbolo!")
		return
	}

	user, ok := h.userByEmail(c, req.Email)
	if !ok {
		return
	}

	if err := h.codes.Consume(c.Request.Context(), user.ID, req.Code); err != nil {
		if errors.Is(err, resetcode.ErrInvalidCode) {
			httperr.BadRequest(c, "Código inválido ou expirado!")
			return
		}
		httperr.Internal(c)
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), h.bcryptCost)
	if err != nil {
		httperr.Internal(c)
		return
	}

	if err := h.db.Model(&models.User{}).
		Where("id = ?", user.ID).
		Update("password_hash", string(hashed)).Error; err != nil {
		httperr.Internal(c)
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &user.ID,
		Action:   "password_reset",
		Entity:   "user",
		EntityID: &user.ID,
	})

	c.JSON(http.StatusOK, gin.H{"msg": "Senha redefinida com sucesso!"})
}

func (h *AuthHandler) userByEmail(c *gin.Context, email string) (*models.User, bool) {
	email = strings.ToLower(strings.TrimSpace(email))

	var user models.User
	if err := h.db.Where("email = ?", email).First(&user).Error; err != nil {
		httperr.NotFound(c, "Usuário não encontrado!")
		return nil, false
	}
	return &user, true
}
