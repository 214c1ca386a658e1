package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/AuMiauServices/petshop-api/internal/httperr"
	"github.com/AuMiauServices/petshop-api/internal/httpresp"
	"github.com/AuMiauServices/petshop-api/internal/models"
)

type ServiceHandler struct {
	db *gorm.DB
}

func NewServiceHandler(db *gorm.DB) *ServiceHandler {
	return &ServiceHandler{db: db}
}

// --------- Requests ---------

// Criação e edição são full-replace, como nos pets.
type ServiceRequest struct {
	Name          string   `json:"name"`
	Price         *float64 `json:"price"`
	EstimatedTime *int     `json:"estimatedTime"`
}

func validateServiceRequest(req *ServiceRequest) string {
	if req.Name == "" {
		return "O nome é obrigatório!"
	}
	if req.Price == nil {
		return "O preço é obrigatório!"
	}
	if *req.Price < 0 {
		return "O preço deve ser maior ou igual a zero!"
	}
	if req.EstimatedTime == nil || *req.EstimatedTime < 1 {
		return "O tempo estimado deve ser de ao menos 1 minuto!"
	}
	return ""
}

// --------- Handlers ---------

func (h *ServiceHandler) List(c *gin.Context) {
	var services []models.Service
	if err := h.db.Order("name ASC").Find(&services).Error; err != nil {
		httperr.Internal(c)
		return
	}

	httpresp.List(c, "services", services)
}

func (h *ServiceHandler) Get(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		httperr.NotFound(c, "Serviço não encontrado!")
		return
	}

	var service models.Service
	if err := h.db.First(&service, id).Error; err != nil {
		httperr.NotFound(c, "Serviço não encontrado!")
		return
	}

	c.JSON(http.StatusOK, gin.H{"service": service})
}

func (h *ServiceHandler) Create(c *gin.Context) {
	var req ServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Unprocessable(c, "Dados inválidos!")
		return
	}
	if msg := validateServiceRequest(&req); msg != "" {
		httperr.Unprocessable(c, msg)
		return
	}

	service := models.Service{
		Name:          req.Name,
		Price:         *req.Price,
		EstimatedTime: *req.EstimatedTime,
	}

	if err := h.db.Create(&service).Error; err != nil {
		httperr.Internal(c)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"msg":     "Serviço criado com sucesso!",
		"service": service,
	})
}

// Update troca todos os campos do serviço. Agendamentos já criados
// não mudam: eles carregam snapshots, não referências.
func (h *ServiceHandler) Update(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		httperr.NotFound(c, "Serviço não encontrado!")
		return
	}

	var service models.Service
	if err := h.db.First(&service, id).Error; err != nil {
		httperr.NotFound(c, "Serviço não encontrado!")
		return
	}

	var req ServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Unprocessable(c, "Dados inválidos!")
		return
	}
	if msg := validateServiceRequest(&req); msg != "" {
		httperr.Unprocessable(c, msg)
		return
	}

	service.Name = req.Name
	service.Price = *req.Price
	service.EstimatedTime = *req.EstimatedTime

	if err := h.db.Save(&service).Error; err != nil {
		httperr.Internal(c)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"msg":     "Serviço atualizado com sucesso!",
		"service": service,
	})
}

func (h *ServiceHandler) Delete(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		httperr.NotFound(c, "Serviço não encontrado!")
		return
	}

	result := h.db.Delete(&models.Service{}, id)
	if result.Error != nil {
		httperr.Internal(c)
		return
	}
	if result.RowsAffected == 0 {
		httperr.NotFound(c, "Serviço não encontrado!")
		return
	}

	c.JSON(http.StatusOK, gin.H{"msg": "Serviço removido com sucesso!"})
}
