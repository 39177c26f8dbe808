package middleware

import (
	"context"
	"net/http"
	"strings"

	"stockroute/internal/domain"
	apperror "stockroute/internal/errors"
	"stockroute/internal/pkg/token"
)

// ContextKey é o tipo das chaves de contexto deste pacote.
// Usamos um tipo próprio para não colidir com chaves de outros pacotes.
type ContextKey int

const (
	OperatorClaimsKey ContextKey = iota
	RequestIDKey
)

// OperatorClaims representa os dados do operador extraídos do token JWT.
type OperatorClaims struct {
	OperatorID string
	Role       domain.OperatorRole
}

// TokenService define o contrato de validação necessário para o middleware.
type TokenService interface {
	ValidateToken(tokenString string) (*token.CustomClaims, error)
}

// NewAuthMiddleware valida o JWT do header Authorization e exige a role de operador.
func NewAuthMiddleware(tokenSvc TokenService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// 1. Extrair o Token do Header Authorization: Bearer <token>
			tokenString, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
			if !ok || tokenString == "" {
				http.Error(w, apperror.NewUnauthorizedError("Token de autorização ausente ou malformado.").Error(), http.StatusUnauthorized)
				return
			}

			// 2. Validar o Token
			claims, err := tokenSvc.ValidateToken(tokenString)
			if err != nil {
				http.Error(w, apperror.NewUnauthorizedError("Token inválido ou expirado.").Error(), http.StatusUnauthorized)
				return
			}

			// 3. Verificar a role
			if domain.OperatorRole(claims.Role) != domain.RoleOperator {
				forbidden := apperror.NewForbiddenError("Você não tem a permissão necessária.")
				http.Error(w, forbidden.Error(), forbidden.HTTPStatus())
				return
			}

			// 4. Anexar Claims ao Contexto
			ctx := context.WithValue(r.Context(), OperatorClaimsKey, OperatorClaims{
				OperatorID: claims.OperatorID,
				Role:       domain.OperatorRole(claims.Role),
			})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetOperatorClaimsFromContext extrai as claims anexadas pelo middleware.
func GetOperatorClaimsFromContext(ctx context.Context) (OperatorClaims, bool) {
	claims, ok := ctx.Value(OperatorClaimsKey).(OperatorClaims)
	return claims, ok
}
