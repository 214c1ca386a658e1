package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/AuMiauServices/petshop-api/internal/httperr"
	"github.com/AuMiauServices/petshop-api/internal/httpresp"
	"github.com/AuMiauServices/petshop-api/internal/models"
)

type AuditLogsHandler struct {
	db *gorm.DB
}

func NewAuditLogsHandler(db *gorm.DB) *AuditLogsHandler {
	return &AuditLogsHandler{db: db}
}

// List devolve os registros mais recentes primeiro.
func (h *AuditLogsHandler) List(c *gin.Context) {
	limit := 100
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > 1000 {
			httperr.Unprocessable(c, "Limite inválido!")
			return
		}
		limit = n
	}

	var logs []models.AuditLog
	if err := h.db.Order("id DESC").Limit(limit).Find(&logs).Error; err != nil {
		httperr.Internal(c)
		return
	}

	httpresp.List(c, "logs", logs)
}
