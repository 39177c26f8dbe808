package main

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"stockroute/config"
	"stockroute/internal/eventlog"
	"stockroute/internal/pkg/idgen"
	"stockroute/internal/pkg/logger"
	"stockroute/internal/service/routingservice"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "stockroute",
	Short: "StockRoute: motor de roteamento de produtos entre armazéns",
	Long:  "StockRoute distribui entregas entre armazéns por tipo, otimiza os armazéns de triagem e leva produtos vencidos para o descarte.",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// O godotenv.Load() procura por um arquivo chamado .env na raiz.
		// Sem o arquivo, seguimos apenas com as variáveis do ambiente (ex: Docker).
		if err := godotenv.Load(); err != nil {
			log.Println("⚠️ Aviso: Arquivo .env não encontrado ou erro de leitura. Carregando configs apenas do ambiente do sistema.")
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(demoCmd)
	rootCmd.AddCommand(hashPasswordCmd)
}

// newNetwork monta o gerenciador da rede com seu log de eventos e alocador de IDs.
func newNetwork(log logger.Logger, recorder routingservice.Recorder) (*routingservice.Service, *eventlog.Log) {
	events := eventlog.New(nil)
	return routingservice.NewService(events, idgen.New(1), log, recorder), events
}

func loadConfig() (*config.Config, logger.Logger) {
	cfg := config.LoadConfig()
	log := logger.NewLogger(cfg.LogLevel)
	log.Info("Configurações carregadas.", map[string]interface{}{"env": cfg.Environment})
	return cfg, log
}
