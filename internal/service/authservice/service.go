package authservice

import (
	"context"
	"crypto/subtle"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"stockroute/internal/domain"
	apperror "stockroute/internal/errors"
	"stockroute/internal/pkg/logger"
)

// TokenService é o contrato da camada de token (internal/pkg/token).
type TokenService interface {
	GenerateToken(operatorID string, role string) (string, error)
}

// Service autentica o operador configurado e emite o JWT das rotas de escrita.
type Service struct {
	operator domain.Operator
	tokenSvc TokenService
	logger   logger.Logger
}

// NewService cria o serviço para o operador informado (e-mail + hash bcrypt).
func NewService(operator domain.Operator, tokenSvc TokenService, logger logger.Logger) *Service {
	if operator.Role == "" {
		operator.Role = domain.RoleOperator
	}
	return &Service{operator: operator, tokenSvc: tokenSvc, logger: logger}
}

// HashPassword gera o hash bcrypt usado em OPERATOR_PASSWORD_HASH.
func HashPassword(password string) (string, error) {
	if password == "" {
		return "", apperror.NewValidationError("A senha não pode ser vazia.")
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", apperror.NewInternalError("Falha ao gerar hash da senha.", err)
	}
	return string(hashed), nil
}

// Login verifica as credenciais e devolve um JWT assinado.
func (s *Service) Login(ctx context.Context, credentials domain.Credentials) (string, error) {
	// 1. Validação Básica
	if strings.TrimSpace(credentials.Email) == "" || credentials.Password == "" {
		return "", apperror.NewUnauthorizedError("Email e senha são obrigatórios.")
	}

	// 2. O operador precisa estar configurado
	if s.operator.Email == "" || s.operator.PasswordHash == "" {
		s.logger.Warn("Login recusado: operador não configurado.", nil)
		return "", apperror.NewUnauthorizedError("Credenciais inválidas.")
	}

	// 3. Comparar e-mail e senha
	emailMatch := subtle.ConstantTimeCompare(
		[]byte(strings.ToLower(credentials.Email)), []byte(strings.ToLower(s.operator.Email))) == 1
	passwordErr := bcrypt.CompareHashAndPassword([]byte(s.operator.PasswordHash), []byte(credentials.Password))
	if !emailMatch || passwordErr != nil {
		s.logger.Warn("Tentativa de login inválida.", map[string]interface{}{"email": credentials.Email})
		return "", apperror.NewUnauthorizedError("Credenciais inválidas.")
	}

	// 4. Gerar JWT
	tokenString, err := s.tokenSvc.GenerateToken(s.operator.Email, string(s.operator.Role))
	if err != nil {
		s.logger.Error("Falha ao gerar token.", err)
		return "", apperror.NewInternalError("Falha ao gerar token de autenticação.", err)
	}

	s.logger.Info("Operador autenticado.", map[string]interface{}{"email": s.operator.Email})
	return tokenString, nil
}
