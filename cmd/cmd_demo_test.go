package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunDemo_PrintsLogAndSummary(t *testing.T) {
	var out bytes.Buffer

	require.NoError(t, runDemo(&out))

	text := out.String()
	assert.Contains(t, text, "=== ANÁLISE DA REDE DE ARMAZÉNS ===")
	assert.Contains(t, text, "Início da otimização dos armazéns de triagem...")
	assert.Contains(t, text, "Procurando e movendo produtos vencidos...")
	assert.Contains(t, text, "Otimização: 5 movidos, 0 falhas. Descarte: 1 movidos, 0 falhas.")
	assert.Contains(t, text, "Armazém 4 (descarte)")
}
