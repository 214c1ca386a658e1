package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/AuMiauServices/petshop-api/internal/httperr"
	"github.com/AuMiauServices/petshop-api/internal/token"
)

const ContextUserID = "userID"

// AuthMiddleware valida o bearer token e coloca o id da conta no
// contexto da requisição. Token ausente responde 401, token
// malformado, expirado ou com assinatura inválida responde 400.
func AuthMiddleware(tokens *token.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			httperr.Unauthorized(c, "Acesso negado!")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			httperr.Unauthorized(c, "Acesso negado!")
			c.Abort()
			return
		}

		userID, err := tokens.Parse(parts[1])
		if err != nil {
			httperr.BadRequest(c, "Token inválido!")
			c.Abort()
			return
		}

		c.Set(ContextUserID, userID)
		c.Next()
	}
}

// UserID devolve o id da conta autenticada na requisição atual.
func UserID(c *gin.Context) uint {
	return c.MustGet(ContextUserID).(uint)
}
