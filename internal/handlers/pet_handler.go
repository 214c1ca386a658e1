package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/AuMiauServices/petshop-api/internal/httperr"
	"github.com/AuMiauServices/petshop-api/internal/httpresp"
	"github.com/AuMiauServices/petshop-api/internal/middleware"
	"github.com/AuMiauServices/petshop-api/internal/models"
)

type PetHandler struct {
	db *gorm.DB
}

func NewPetHandler(db *gorm.DB) *PetHandler {
	return &PetHandler{db: db}
}

// --------- Requests ---------

// A atualização de pet é full-replace: todos os campos são exigidos
// de novo a cada PUT, por isso criação e edição compartilham o request.
type PetRequest struct {
	Name  string `json:"name"`
	Size  string `json:"size"`
	Age   *int   `json:"age"`
	Breed string `json:"breed"`
	Notes string `json:"notes"`
}

func validatePetRequest(req *PetRequest) string {
	if req.Name == "" {
		return "O nome é obrigatório!"
	}
	if !models.IsValidPetSize(req.Size) {
		return "Porte inválido! Use: pequeno, médio ou grande."
	}
	if req.Age == nil {
		return "A idade é obrigatória!"
	}
	if *req.Age < 0 {
		return "A idade deve ser maior ou igual a zero!"
	}
	if req.Breed == "" {
		return "A raça é obrigatória!"
	}
	return ""
}

func paramID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}

// --------- Handlers ---------

func (h *PetHandler) Create(c *gin.Context) {
	userID := middleware.UserID(c)

	var req PetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Unprocessable(c, "Dados inválidos!")
		return
	}
	if msg := validatePetRequest(&req); msg != "" {
		httperr.Unprocessable(c, msg)
		return
	}

	var count int64
	h.db.Model(&models.Pet{}).
		Where("user_id = ? AND name = ?", userID, req.Name).
		Count(&count)
	if count > 0 {
		httperr.Unprocessable(c, "Você já possui um pet com esse nome!")
		return
	}

	pet := models.Pet{
		UserID: userID,
		Name:   req.Name,
		Size:   req.Size,
		Age:    *req.Age,
		Breed:  req.Breed,
		Notes:  req.Notes,
	}

	if err := h.db.Create(&pet).Error; err != nil {
		httperr.Internal(c)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"msg": "Pet cadastrado com sucesso!",
		"pet": pet,
	})
}

func (h *PetHandler) List(c *gin.Context) {
	userID := middleware.UserID(c)

	var pets []models.Pet
	if err := h.db.
		Where("user_id = ?", userID).
		Order("name ASC").
		Find(&pets).Error; err != nil {
		httperr.Internal(c)
		return
	}

	httpresp.List(c, "pets", pets)
}

func (h *PetHandler) Get(c *gin.Context) {
	userID := middleware.UserID(c)

	id, ok := paramID(c)
	if !ok {
		httperr.NotFound(c, "Pet não encontrado!")
		return
	}

	// escopo sempre por dono: o pet de outra conta responde como
	// inexistente, não como proibido
	var pet models.Pet
	if err := h.db.
		Where("id = ? AND user_id = ?", id, userID).
		First(&pet).Error; err != nil {
		httperr.NotFound(c, "Pet não encontrado!")
		return
	}

	c.JSON(http.StatusOK, gin.H{"pet": pet})
}

func (h *PetHandler) Update(c *gin.Context) {
	userID := middleware.UserID(c)

	id, ok := paramID(c)
	if !ok {
		httperr.NotFound(c, "Pet não encontrado!")
		return
	}

	var pet models.Pet
	if err := h.db.
		Where("id = ? AND user_id = ?", id, userID).
		First(&pet).Error; err != nil {
		httperr.NotFound(c, "Pet não encontrado!")
		return
	}

	var req PetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Unprocessable(c, "Dados inválidos!")
		return
	}
	if msg := validatePetRequest(&req); msg != "" {
		httperr.Unprocessable(c, msg)
		return
	}

	var count int64
	h.db.Model(&models.Pet{}).
		Where("user_id = ? AND name = ? AND id <> ?", userID, req.Name, pet.ID).
		Count(&count)
	if count > 0 {
		httperr.Unprocessable(c, "Você já possui um pet com esse nome!")
		return
	}

	pet.Name = req.Name
	pet.Size = req.Size
	pet.Age = *req.Age
	pet.Breed = req.Breed
	pet.Notes = req.Notes

	if err := h.db.Save(&pet).Error; err != nil {
		httperr.Internal(c)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"msg": "Pet atualizado com sucesso!",
		"pet": pet,
	})
}

func (h *PetHandler) Delete(c *gin.Context) {
	userID := middleware.UserID(c)

	id, ok := paramID(c)
	if !ok {
		httperr.NotFound(c, "Pet não encontrado!")
		return
	}

	result := h.db.
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&models.Pet{})
	if result.Error != nil {
		httperr.Internal(c)
		return
	}
	if result.RowsAffected == 0 {
		httperr.NotFound(c, "Pet não encontrado!")
		return
	}

	c.JSON(http.StatusOK, gin.H{"msg": "Pet removido com sucesso!"})
}
