package middleware

import (
	"context"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/AuMiauServices/petshop-api/internal/httperr"
	"github.com/AuMiauServices/petshop-api/internal/models"
)

// RoleLookup resolve o papel da conta autenticada.
type RoleLookup func(ctx context.Context, userID uint) (string, error)

// RoleByAccount consulta o papel direto na tabela de usuários.
func RoleByAccount(db *gorm.DB) RoleLookup {
	return func(ctx context.Context, userID uint) (string, error) {
		var user models.User
		if err := db.WithContext(ctx).First(&user, userID).Error; err != nil {
			return "", err
		}
		return user.Role, nil
	}
}

// RequireRoles só deixa a requisição seguir se o papel da conta
// estiver no conjunto permitido. Conta inexistente também responde
// 403: a porta falha fechada e não revela a existência de contas.
func RequireRoles(lookup RoleLookup, roles ...string) gin.HandlerFunc {
	allowed := make(map[string]struct{}, len(roles))
	for _, role := range roles {
		allowed[role] = struct{}{}
	}

	return func(c *gin.Context) {
		role, err := lookup(c.Request.Context(), UserID(c))
		if err != nil {
			httperr.Forbidden(c, "Acesso negado!")
			c.Abort()
			return
		}

		if _, ok := allowed[role]; !ok {
			httperr.Forbidden(c, "Acesso negado!")
			c.Abort()
			return
		}

		c.Next()
	}
}
