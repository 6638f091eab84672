package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/diillson/dfc-dashboard-go/internal/adapter/driving/api/responses"
	"github.com/diillson/dfc-dashboard-go/internal/domain/dfc"
	"github.com/diillson/dfc-dashboard-go/internal/domain/entity"
	"github.com/diillson/dfc-dashboard-go/internal/shared/types"
	"github.com/gin-gonic/gin"
)

// ReportBuilder monta o relatório do DFC para um filtro.
type ReportBuilder interface {
	BuildReport(ctx context.Context, filters entity.ReportFilters) (*entity.DfcReport, error)
}

// DfcHandler lida com as requisições do relatório de fluxo de caixa.
type DfcHandler struct {
	builder ReportBuilder
}

// NewDfcHandler cria um novo handler do DFC.
func NewDfcHandler(builder ReportBuilder) *DfcHandler {
	return &DfcHandler{builder: builder}
}

// HandleDfc responde GET /api/v1/dfc com o relatório do período.
func (h *DfcHandler) HandleDfc(c *gin.Context) {
	filters := entity.ReportFilters{
		EmpresaID: c.Query("empresa"),
		Ano:       c.DefaultQuery("ano", strconv.Itoa(time.Now().Year())),
		MesInicio: c.DefaultQuery("mes_inicio", "01"),
		MesFim:    c.DefaultQuery("mes_fim", "12"),
		Receita:   c.Query("receita"),
		Despesa:   c.Query("despesa"),
		Linha:     c.Query("linha"),
	}

	report, err := h.builder.BuildReport(c.Request.Context(), filters)
	if err != nil {
		if isValidationError(err) {
			responses.Error(c, http.StatusBadRequest, "Filtros inválidos", err.Error())
			return
		}
		responses.Error(c, http.StatusInternalServerError, "Falha ao carregar o DFC", err.Error())
		return
	}

	message := ""
	if report.Layout.NoData {
		message = "Nenhum dado encontrado para o período selecionado."
	} else if dfc.IsSwapped(filters.MesInicio, filters.MesFim) {
		message = "Mês final ajustado: o período foi invertido."
	}
	responses.Success(c, report, message)
}

func isValidationError(err error) bool {
	return errors.Is(err, types.ErrMissingEmpresa) ||
		errors.Is(err, dfc.ErrInvalidMonth) ||
		errors.Is(err, dfc.ErrInvalidYear) ||
		errors.Is(err, types.ErrInvalidQueryField)
}
