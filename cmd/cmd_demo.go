package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"stockroute/internal/pkg/logger"
	"stockroute/internal/service/seed"
)

// stockroute demo: roda o ciclo completo na rede de demonstração e imprime o log.
var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Executa análise, otimização e descarte na rede de demonstração",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDemo(cmd.OutOrStdout())
	},
}

func runDemo(out io.Writer) error {
	network, events := newNetwork(logger.Discard(), nil)
	if _, err := seed.DemoNetwork(network); err != nil {
		return err
	}

	network.AnalyzeNetwork(nil)
	optimized := network.OptimizeSortingWarehouses(nil)
	swept := network.MoveExpiredProducts(nil)
	network.AnalyzeNetwork(nil)

	for _, line := range events.Lines() {
		fmt.Fprintln(out, line)
	}
	fmt.Fprintf(out, "\nOtimização: %d movidos, %d falhas. Descarte: %d movidos, %d falhas.\n",
		optimized.Moved, optimized.Failed, swept.Moved, swept.Failed)

	for _, s := range network.Snapshots() {
		fmt.Fprintf(out, "Armazém %d (%s) - %s: %.2f/%.2f ocupado, %d produtos, valor %.2f\n",
			s.ID, s.TypeLabel, s.Address, s.UsedVolume, s.Volume, len(s.Products), s.TotalValue)
	}
	return nil
}
