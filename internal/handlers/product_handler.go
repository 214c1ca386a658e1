package handlers

import (
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/AuMiauServices/petshop-api/internal/httperr"
	"github.com/AuMiauServices/petshop-api/internal/httpresp"
	"github.com/AuMiauServices/petshop-api/internal/models"
	"github.com/AuMiauServices/petshop-api/internal/storage"
)

type ProductHandler struct {
	db     *gorm.DB
	images *storage.ImageStore
	log    *zap.Logger
}

func NewProductHandler(db *gorm.DB, images *storage.ImageStore, log *zap.Logger) *ProductHandler {
	return &ProductHandler{db: db, images: images, log: log}
}

// --------- Handlers ---------

func (h *ProductHandler) List(c *gin.Context) {
	q := h.db.Model(&models.Product{}).Preload("Category")

	if categoryID := strings.TrimSpace(c.Query("category")); categoryID != "" {
		q = q.Where("category_id = ?", categoryID)
	}

	if query := strings.ToLower(strings.TrimSpace(c.Query("query"))); query != "" {
		like := "%" + query + "%"
		q = q.Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", like, like)
	}

	var products []models.Product
	if err := q.Order("id ASC").Find(&products).Error; err != nil {
		httperr.Internal(c)
		return
	}

	httpresp.List(c, "products", products)
}

func (h *ProductHandler) Get(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		httperr.NotFound(c, "Produto não encontrado!")
		return
	}

	var product models.Product
	if err := h.db.Preload("Category").First(&product, id).Error; err != nil {
		httperr.NotFound(c, "Produto não encontrado!")
		return
	}

	c.JSON(http.StatusOK, gin.H{"product": product})
}

// Image faz o streaming binário da imagem do produto.
func (h *ProductHandler) Image(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		httperr.NotFound(c, "Produto não encontrado!")
		return
	}

	var product models.Product
	if err := h.db.First(&product, id).Error; err != nil {
		httperr.NotFound(c, "Produto não encontrado!")
		return
	}
	if product.ImageKey == "" {
		httperr.NotFound(c, "Produto não possui imagem!")
		return
	}

	body, contentType, length, err := h.images.Get(c.Request.Context(), product.ImageKey)
	if err != nil {
		httperr.Internal(c)
		return
	}
	defer body.Close()

	c.DataFromReader(http.StatusOK, length, contentType, body, nil)
}

// Create recebe multipart/form-data com os campos do produto e um
// arquivo "image" opcional.
func (h *ProductHandler) Create(c *gin.Context) {
	name := strings.TrimSpace(c.PostForm("name"))
	if name == "" {
		httperr.Unprocessable(c, "O nome é obrigatório!")
		return
	}

	price, err := strconv.ParseFloat(c.PostForm("price"), 64)
	if err != nil || price < 0 {
		httperr.Unprocessable(c, "O preço deve ser maior ou igual a zero!")
		return
	}

	quantity, err := strconv.Atoi(c.PostForm("quantity"))
	if err != nil || quantity < 0 {
		httperr.Unprocessable(c, "A quantidade deve ser maior ou igual a zero!")
		return
	}

	categoryID, err := strconv.ParseUint(c.PostForm("categoryId"), 10, 64)
	if err != nil {
		httperr.Unprocessable(c, "A categoria é obrigatória!")
		return
	}

	var category models.Category
	if err := h.db.First(&category, categoryID).Error; err != nil {
		httperr.NotFound(c, "Categoria não encontrada!")
		return
	}

	product := models.Product{
		Name:        name,
		Description: c.PostForm("description"),
		Price:       price,
		Quantity:    quantity,
		CategoryID:  uint(categoryID),
	}

	if file, err := c.FormFile("image"); err == nil {
		key, ok := h.uploadImage(c, file)
		if !ok {
			return
		}
		product.ImageKey = key
	}

	if err := h.db.Create(&product).Error; err != nil {
		httperr.Internal(c)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"msg":     "Produto criado com sucesso!",
		"product": product,
	})
}

// Update é parcial: só os campos presentes no form são mesclados.
func (h *ProductHandler) Update(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		httperr.NotFound(c, "Produto não encontrado!")
		return
	}

	var product models.Product
	if err := h.db.First(&product, id).Error; err != nil {
		httperr.NotFound(c, "Produto não encontrado!")
		return
	}

	if name, ok := c.GetPostForm("name"); ok {
		if strings.TrimSpace(name) == "" {
			httperr.Unprocessable(c, "O nome é obrigatório!")
			return
		}
		product.Name = strings.TrimSpace(name)
	}

	if description, ok := c.GetPostForm("description"); ok {
		product.Description = description
	}

	if raw, ok := c.GetPostForm("price"); ok {
		price, err := strconv.ParseFloat(raw, 64)
		if err != nil || price < 0 {
			httperr.Unprocessable(c, "O preço deve ser maior ou igual a zero!")
			return
		}
		product.Price = price
	}

	if raw, ok := c.GetPostForm("quantity"); ok {
		quantity, err := strconv.Atoi(raw)
		if err != nil || quantity < 0 {
			httperr.Unprocessable(c, "A quantidade deve ser maior ou igual a zero!")
			return
		}
		product.Quantity = quantity
	}

	if raw, ok := c.GetPostForm("categoryId"); ok {
		categoryID, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			httperr.Unprocessable(c, "Categoria inválida!")
			return
		}
		var category models.Category
		if err := h.db.First(&category, categoryID).Error; err != nil {
			httperr.NotFound(c, "Categoria não encontrada!")
			return
		}
		product.CategoryID = uint(categoryID)
	}

	if file, err := c.FormFile("image"); err == nil {
		oldKey := product.ImageKey

		key, ok := h.uploadImage(c, file)
		if !ok {
			return
		}
		product.ImageKey = key

		if oldKey != "" {
			if err := h.images.Delete(c.Request.Context(), oldKey); err != nil {
				h.log.Warn("failed to delete replaced product image",
					zap.String("key", oldKey), zap.Error(err))
			}
		}
	}

	if err := h.db.Save(&product).Error; err != nil {
		httperr.Internal(c)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"msg":     "Produto atualizado com sucesso!",
		"product": product,
	})
}

func (h *ProductHandler) Delete(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		httperr.NotFound(c, "Produto não encontrado!")
		return
	}

	var product models.Product
	if err := h.db.First(&product, id).Error; err != nil {
		httperr.NotFound(c, "Produto não encontrado!")
		return
	}

	if err := h.db.Delete(&product).Error; err != nil {
		httperr.Internal(c)
		return
	}

	if product.ImageKey != "" {
		if err := h.images.Delete(c.Request.Context(), product.ImageKey); err != nil {
			h.log.Warn("failed to delete product image",
				zap.String("key", product.ImageKey), zap.Error(err))
		}
	}

	c.JSON(http.StatusOK, gin.H{"msg": "Produto removido com sucesso!"})
}

// --------- Helpers ---------

func (h *ProductHandler) uploadImage(c *gin.Context, file *multipart.FileHeader) (string, bool) {
	src, err := file.Open()
	if err != nil {
		httperr.Unprocessable(c, "Imagem inválida!")
		return "", false
	}
	defer src.Close()

	data, err := storage.EncodeWebP(src)
	if err != nil {
		httperr.Unprocessable(c, "Imagem inválida!")
		return "", false
	}

	key, err := h.images.Put(c.Request.Context(), data)
	if err != nil {
		httperr.Internal(c)
		return "", false
	}
	return key, true
}
