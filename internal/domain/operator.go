package domain

// OperatorRole é o papel carregado no token do operador.
type OperatorRole string

// RoleOperator é o único papel aceito nas rotas que alteram a rede.
const RoleOperator OperatorRole = "operator"

// Operator é a conta configurada que pode operar a rede via API.
type Operator struct {
	Email        string       `json:"email"`
	PasswordHash string       `json:"-"` // Oculta o hash da senha no JSON de resposta
	Role         OperatorRole `json:"role"`
}

// Credentials representa o payload de entrada do login.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
