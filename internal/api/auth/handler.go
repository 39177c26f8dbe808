package auth

import (
	"context"
	"net/http"

	"stockroute/internal/api/response"
	"stockroute/internal/domain"
	"stockroute/internal/pkg/logger"
)

// AuthService define o contrato de autenticação esperado pelo Handler.
type AuthService interface {
	Login(ctx context.Context, credentials domain.Credentials) (string, error)
}

// LoginResponse devolve o token JWT emitido.
type LoginResponse struct {
	Token string `json:"token"`
}

// Handler agrupa os handlers de autenticação.
type Handler struct {
	Service AuthService
	Logger  logger.Logger
}

// NewHandler cria uma nova instância do Handler, injetando o Service e o Logger.
func NewHandler(svc AuthService, log logger.Logger) *Handler {
	return &Handler{
		Service: svc,
		Logger:  log,
	}
}

// LoginHandler lida com a requisição POST /v1/auth/login.
// @Summary Autentica o operador
// @Description Troca e-mail e senha do operador por um token JWT.
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body domain.Credentials true "Credenciais do operador"
// @Success 200 {object} LoginResponse "Token emitido"
// @Failure 401 {object} domain.ErrorResponse "Credenciais inválidas"
// @Router /auth/login [post]
func (h *Handler) LoginHandler(w http.ResponseWriter, r *http.Request) {
	var credentials domain.Credentials
	if err := response.DecodeJSON(r, &credentials); err != nil {
		response.Write(w, r, h.Logger, nil, err, http.StatusBadRequest)
		return
	}

	tokenString, err := h.Service.Login(r.Context(), credentials)
	if err != nil {
		response.Write(w, r, h.Logger, nil, err, http.StatusOK)
		return
	}

	response.Write(w, r, h.Logger, LoginResponse{Token: tokenString}, nil, http.StatusOK)
}
