package report

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"stockroute/internal/api/response"
	"stockroute/internal/domain"
	apperror "stockroute/internal/errors"
	"stockroute/internal/eventlog"
	"stockroute/internal/pkg/logger"
	netreport "stockroute/internal/report"
)

// xlsxContentType é o MIME type de planilhas do Excel.
const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// NetworkSource fornece o estado que entra no relatório.
type NetworkSource interface {
	Snapshots() []domain.WarehouseSnapshot
	Log() []eventlog.Entry
}

// Handler exporta relatórios da rede.
type Handler struct {
	Source NetworkSource
	Logger logger.Logger
	now    func() time.Time
}

// NewHandler cria uma nova instância do Handler.
func NewHandler(source NetworkSource, log logger.Logger) *Handler {
	return &Handler{Source: source, Logger: log, now: time.Now}
}

// NetworkReportHandler lida com a requisição GET /v1/reports/network.
// @Summary Exporta a rede em xlsx
// @Description Planilha com as abas Armazens, Produtos e Eventos.
// @Tags reports
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success 200 {file} file "Planilha xlsx"
// @Failure 500 {object} domain.ErrorResponse "Falha ao gerar a planilha"
// @Router /reports/network [get]
func (h *Handler) NetworkReportHandler(w http.ResponseWriter, r *http.Request) {
	data, err := netreport.NetworkWorkbook(h.Source.Snapshots(), h.Source.Log())
	if err != nil {
		response.Write(w, r, h.Logger, nil, apperror.NewInternalError("Falha ao gerar a planilha.", err), http.StatusOK)
		return
	}

	fileName := fmt.Sprintf("rede_%s.xlsx", h.now().Format("20060102_150405"))
	w.Header().Set("Content-Type", xlsxContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", fileName))
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(data); err != nil {
		h.Logger.Error("Falha ao enviar a planilha.", err)
	}
}
