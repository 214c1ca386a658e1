package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/AuMiauServices/petshop-api/internal/httperr"
	"github.com/AuMiauServices/petshop-api/internal/httpresp"
	"github.com/AuMiauServices/petshop-api/internal/models"
)

type CategoryHandler struct {
	db *gorm.DB
}

func NewCategoryHandler(db *gorm.DB) *CategoryHandler {
	return &CategoryHandler{db: db}
}

type CategoryRequest struct {
	Name string `json:"name"`
}

func (h *CategoryHandler) List(c *gin.Context) {
	var categories []models.Category
	if err := h.db.Order("name ASC").Find(&categories).Error; err != nil {
		httperr.Internal(c)
		return
	}

	httpresp.List(c, "categories", categories)
}

func (h *CategoryHandler) Get(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		httperr.NotFound(c, "Categoria não encontrada!")
		return
	}

	var category models.Category
	if err := h.db.First(&category, id).Error; err != nil {
		httperr.NotFound(c, "Categoria não encontrada!")
		return
	}

	c.JSON(http.StatusOK, gin.H{"category": category})
}

func (h *CategoryHandler) Create(c *gin.Context) {
	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Name == "" {
		httperr.Unprocessable(c, "O nome é obrigatório!")
		return
	}

	var count int64
	h.db.Model(&models.Category{}).Where("name = ?", req.Name).Count(&count)
	if count > 0 {
		httperr.Unprocessable(c, "Categoria com esse nome já existe!")
		return
	}

	category := models.Category{Name: req.Name}
	if err := h.db.Create(&category).Error; err != nil {
		httperr.Internal(c)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"msg":      "Categoria criada com sucesso!",
		"category": category,
	})
}

func (h *CategoryHandler) Update(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		httperr.NotFound(c, "Categoria não encontrada!")
		return
	}

	var category models.Category
	if err := h.db.First(&category, id).Error; err != nil {
		httperr.NotFound(c, "Categoria não encontrada!")
		return
	}

	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Name == "" {
		httperr.Unprocessable(c, "O nome é obrigatório!")
		return
	}

	var count int64
	h.db.Model(&models.Category{}).
		Where("name = ? AND id <> ?", req.Name, category.ID).
		Count(&count)
	if count > 0 {
		httperr.Unprocessable(c, "Categoria com esse nome já existe!")
		return
	}

	category.Name = req.Name
	if err := h.db.Save(&category).Error; err != nil {
		httperr.Internal(c)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"msg":      "Categoria atualizada com sucesso!",
		"category": category,
	})
}

func (h *CategoryHandler) Delete(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		httperr.NotFound(c, "Categoria não encontrada!")
		return
	}

	var products int64
	h.db.Model(&models.Product{}).Where("category_id = ?", id).Count(&products)
	if products > 0 {
		httperr.Conflict(c, "Não é possível excluir uma categoria com produtos!")
		return
	}

	result := h.db.Delete(&models.Category{}, id)
	if result.Error != nil {
		httperr.Internal(c)
		return
	}
	if result.RowsAffected == 0 {
		httperr.NotFound(c, "Categoria não encontrada!")
		return
	}

	c.JSON(http.StatusOK, gin.H{"msg": "Categoria removida com sucesso!"})
}
