package authservice_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"stockroute/internal/domain"
	apperror "stockroute/internal/errors"
	"stockroute/internal/pkg/logger"
	"stockroute/internal/service/authservice"
)

// MockTokenService é uma implementação mock da interface TokenService.
type MockTokenService struct {
	mock.Mock
}

func (m *MockTokenService) GenerateToken(operatorID string, role string) (string, error) {
	args := m.Called(operatorID, role)
	return args.String(0), args.Error(1)
}

func newOperator(t *testing.T) domain.Operator {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("s3nha-forte"), bcrypt.MinCost)
	require.NoError(t, err)
	return domain.Operator{Email: "op@stockroute.local", PasswordHash: string(hash)}
}

func TestLogin_Success(t *testing.T) {
	tokens := new(MockTokenService)
	tokens.On("GenerateToken", "op@stockroute.local", "operator").Return("jwt-assinado", nil)
	svc := authservice.NewService(newOperator(t), tokens, logger.Discard())

	tok, err := svc.Login(context.Background(), domain.Credentials{Email: "OP@stockroute.local", Password: "s3nha-forte"})

	assert.NoError(t, err)
	assert.Equal(t, "jwt-assinado", tok)
	tokens.AssertExpectations(t)
}

func TestLogin_Fail_WrongPassword(t *testing.T) {
	tokens := new(MockTokenService)
	svc := authservice.NewService(newOperator(t), tokens, logger.Discard())

	_, err := svc.Login(context.Background(), domain.Credentials{Email: "op@stockroute.local", Password: "errada"})

	assert.IsType(t, &apperror.UnauthorizedError{}, err)
	tokens.AssertNotCalled(t, "GenerateToken", mock.Anything, mock.Anything)
}

func TestLogin_Fail_MissingFields(t *testing.T) {
	svc := authservice.NewService(newOperator(t), new(MockTokenService), logger.Discard())

	_, err := svc.Login(context.Background(), domain.Credentials{})

	assert.IsType(t, &apperror.UnauthorizedError{}, err)
	assert.Contains(t, err.Error(), "obrigatórios")
}

func TestLogin_Fail_OperatorNotConfigured(t *testing.T) {
	svc := authservice.NewService(domain.Operator{}, new(MockTokenService), logger.Discard())

	_, err := svc.Login(context.Background(), domain.Credentials{Email: "a@b", Password: "x"})

	assert.IsType(t, &apperror.UnauthorizedError{}, err)
}

func TestLogin_Fail_TokenError(t *testing.T) {
	tokens := new(MockTokenService)
	tokens.On("GenerateToken", mock.Anything, mock.Anything).Return("", errors.New("sem chave"))
	svc := authservice.NewService(newOperator(t), tokens, logger.Discard())

	_, err := svc.Login(context.Background(), domain.Credentials{Email: "op@stockroute.local", Password: "s3nha-forte"})

	assert.IsType(t, &apperror.InternalError{}, err)
}

func TestHashPassword_RoundTrip(t *testing.T) {
	hash, err := authservice.HashPassword("outra-senha")
	require.NoError(t, err)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte("outra-senha")))

	_, err = authservice.HashPassword("")
	assert.IsType(t, &apperror.ValidationError{}, err)
}
