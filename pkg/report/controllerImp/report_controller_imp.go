package controllerImp

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/xuri/excelize/v2"

	catsvc "brushfuel/pkg/catalog/service"
	"brushfuel/pkg/export"
	"brushfuel/pkg/fuellog/repository"
	logsvc "brushfuel/pkg/fuellog/service"
	"brushfuel/pkg/metrics"
	"brushfuel/pkg/report"
)

// rankingLimit caps the efficiency ranking like the on-screen table did.
const rankingLimit = 50

type ReportCtrl struct {
	logs logsvc.FuelLogService
	cat  catsvc.CatalogService
}

func New(logs logsvc.FuelLogService, cat catsvc.CatalogService) *ReportCtrl {
	return &ReportCtrl{logs: logs, cat: cat}
}

// Dashboard answers the KPI block and the L/h trend for an optional
// brand/model filter.
func (h *ReportCtrl) Dashboard(c echo.Context) error {
	recs, err := h.logs.List(repository.Filter{
		Brand: c.QueryParam("brand"),
		Model: c.QueryParam("model"),
	})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"summary": report.Summarize(recs),
		"trend":   report.Trend(recs),
	})
}

func (h *ReportCtrl) Monthly(c echo.Context) error {
	recs, err := h.allRecords()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, report.Monthly(recs))
}

func (h *ReportCtrl) Equipment(c echo.Context) error {
	recs, err := h.allRecords()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, report.PerEquipment(recs))
}

func (h *ReportCtrl) Ranking(c echo.Context) error {
	recs, err := h.allRecords()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, report.RankByEfficiency(recs, limitFrom(c)))
}

func (h *ReportCtrl) Comparison(c echo.Context) error {
	rows, err := h.comparisonRows()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, rows)
}

func (h *ReportCtrl) ExportMonthly(c echo.Context) error {
	recs, err := h.allRecords()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	f, err := export.MonthlyReport(report.Monthly(recs))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return h.send(c, "consolidado_mensal.xlsx", f)
}

func (h *ReportCtrl) ExportEquipment(c echo.Context) error {
	recs, err := h.allRecords()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	f, err := export.EquipmentReport(report.PerEquipment(recs))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return h.send(c, "por_equipamento.xlsx", f)
}

func (h *ReportCtrl) ExportRanking(c echo.Context) error {
	recs, err := h.allRecords()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	f, err := export.RankingReport(report.RankByEfficiency(recs, limitFrom(c)))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return h.send(c, "ranking_eficiencia.xlsx", f)
}

func (h *ReportCtrl) ExportComparison(c echo.Context) error {
	rows, err := h.comparisonRows()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	f, err := export.ComparisonReport(rows)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return h.send(c, "real_vs_fabricante.xlsx", f)
}

func (h *ReportCtrl) allRecords() ([]metrics.DerivedRecord, error) {
	return h.logs.List(repository.Filter{})
}

func (h *ReportCtrl) comparisonRows() ([]report.ComparisonRow, error) {
	recs, err := h.allRecords()
	if err != nil {
		return nil, err
	}
	models, err := h.cat.List("")
	if err != nil {
		return nil, err
	}
	return report.CompareRealVsRated(recs, models), nil
}

func (h *ReportCtrl) send(c echo.Context, filename string, f *excelize.File) error {
	b, err := export.Bytes(f)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf(`attachment; filename=%q`, filename))
	return c.Blob(http.StatusOK, export.ContentType, b)
}

func limitFrom(c echo.Context) int {
	limit := rankingLimit
	if v := c.QueryParam("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			limit = n
		}
	}
	return limit
}
