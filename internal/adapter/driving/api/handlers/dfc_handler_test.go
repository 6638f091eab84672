package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/diillson/dfc-dashboard-go/internal/domain/dfc"
	"github.com/diillson/dfc-dashboard-go/internal/domain/entity"
	"github.com/diillson/dfc-dashboard-go/internal/shared/types"
	"github.com/gin-gonic/gin"
)

type fakeBuilder struct {
	report *entity.DfcReport
	err    error
	got    entity.ReportFilters
}

func (f *fakeBuilder) BuildReport(_ context.Context, filters entity.ReportFilters) (*entity.DfcReport, error) {
	f.got = filters
	return f.report, f.err
}

func newTestRouter(b ReportBuilder) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/api/v1/dfc", NewDfcHandler(b).HandleDfc)
	return r
}

func TestHandleDfc(t *testing.T) {
	tests := []struct {
		name        string
		url         string
		builder     *fakeBuilder
		wantStatus  int
		wantStatusS string
		wantMessage string
	}{
		{
			name:        "success",
			url:         "/api/v1/dfc?empresa=emp-1&ano=2024&mes_inicio=01&mes_fim=03&linha=1",
			builder:     &fakeBuilder{report: &entity.DfcReport{Months: []string{"2024-01-01"}}},
			wantStatus:  http.StatusOK,
			wantStatusS: "success",
		},
		{
			name:        "no data",
			url:         "/api/v1/dfc?empresa=emp-1&ano=2024",
			builder:     &fakeBuilder{report: &entity.DfcReport{Layout: entity.DfcLayout{NoData: true}}},
			wantStatus:  http.StatusOK,
			wantStatusS: "success",
			wantMessage: "Nenhum dado encontrado para o período selecionado.",
		},
		{
			name:        "missing empresa",
			url:         "/api/v1/dfc?ano=2024",
			builder:     &fakeBuilder{err: types.ErrMissingEmpresa},
			wantStatus:  http.StatusBadRequest,
			wantStatusS: "error",
			wantMessage: "Filtros inválidos",
		},
		{
			name:        "invalid month",
			url:         "/api/v1/dfc?empresa=e&ano=2024&mes_inicio=13",
			builder:     &fakeBuilder{err: dfc.ErrInvalidMonth},
			wantStatus:  http.StatusBadRequest,
			wantStatusS: "error",
			wantMessage: "Filtros inválidos",
		},
		{
			name:        "data source failure",
			url:         "/api/v1/dfc?empresa=e&ano=2024",
			builder:     &fakeBuilder{err: context.DeadlineExceeded},
			wantStatus:  http.StatusInternalServerError,
			wantStatusS: "error",
			wantMessage: "Falha ao carregar o DFC",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, tt.url, nil)
			newTestRouter(tt.builder).ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d (%s)", w.Code, tt.wantStatus, w.Body.String())
			}
			var body struct {
				Status  string `json:"status"`
				Message string `json:"message"`
			}
			if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
				t.Fatalf("invalid JSON body: %v", err)
			}
			if body.Status != tt.wantStatusS {
				t.Errorf("status field = %q, want %q", body.Status, tt.wantStatusS)
			}
			if body.Message != tt.wantMessage {
				t.Errorf("message = %q, want %q", body.Message, tt.wantMessage)
			}
		})
	}
}

func TestHandleDfcFilters(t *testing.T) {
	b := &fakeBuilder{report: &entity.DfcReport{}}
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/dfc?empresa=emp-1&ano=2024&receita=1&despesa=2", nil)
	newTestRouter(b).ServeHTTP(w, req)

	want := entity.ReportFilters{EmpresaID: "emp-1", Ano: "2024", MesInicio: "01", MesFim: "12", Receita: "1", Despesa: "2"}
	if b.got != want {
		t.Errorf("filters = %+v, want %+v", b.got, want)
	}
}
