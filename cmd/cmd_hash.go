package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"stockroute/internal/service/authservice"
)

// stockroute hash-password <senha>: gera o valor de OPERATOR_PASSWORD_HASH.
var hashPasswordCmd = &cobra.Command{
	Use:   "hash-password <senha>",
	Short: "Gera o hash bcrypt da senha do operador para OPERATOR_PASSWORD_HASH",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runHashPassword(cmd.OutOrStdout(), args[0])
	},
}

func runHashPassword(out io.Writer, password string) error {
	hashed, err := authservice.HashPassword(password)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(out, hashed)
	return err
}
