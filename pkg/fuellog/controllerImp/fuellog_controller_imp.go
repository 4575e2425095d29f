package controllerImp

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"brushfuel/entities"
	"brushfuel/pkg/export"
	"brushfuel/pkg/fuellog/repository"
	svc "brushfuel/pkg/fuellog/service"
	"brushfuel/pkg/importer"
)

type LogCtrl struct{ s svc.FuelLogService }

func New(s svc.FuelLogService) *LogCtrl { return &LogCtrl{s} }

func (h *LogCtrl) Create(c echo.Context) error {
	var in entities.FuelLog
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid json"})
	}
	out, err := h.s.Create(&in)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, out)
}

func (h *LogCtrl) List(c echo.Context) error {
	recs, err := h.s.List(filterFrom(c))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, recs)
}

func (h *LogCtrl) Patch(c echo.Context) error {
	id, err := parseUint(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	var p svc.LogPatch
	if err := c.Bind(&p); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid json"})
	}
	out, err := h.s.UpdatePartial(uint(id), p)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "not found"})
	}
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, out)
}

func (h *LogCtrl) Delete(c echo.Context) error {
	id, err := parseUint(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	if err := h.s.Delete(uint(id)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.NoContent(http.StatusNoContent)
}

// Export streams the filtered history as the workbook the old spreadsheet
// flow produced, filename included.
func (h *LogCtrl) Export(c echo.Context) error {
	recs, err := h.s.List(filterFrom(c))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	f, err := export.History(recs)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	b, err := export.Bytes(f)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return sendWorkbook(c, "historico_consumo_rocadeira.xlsx", b)
}

// Import accepts an xlsx upload and creates what it can, row by row.
func (h *LogCtrl) Import(c echo.Context) error {
	fh, err := c.FormFile("file")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "file is required"})
	}
	src, err := fh.Open()
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	defer src.Close()

	rows, rowErrs, err := importer.ParseFuelLogs(src)
	if err != nil {
		return c.JSON(http.StatusUnprocessableEntity, echo.Map{"error": err.Error()})
	}
	imported := 0
	for _, row := range rows {
		l := row.Log
		if _, err := h.s.Create(&l); err != nil {
			rowErrs = append(rowErrs, importer.RowError{Row: row.Row, Reason: err.Error()})
			continue
		}
		imported++
	}
	return c.JSON(http.StatusOK, echo.Map{
		"batch_id": uuid.NewString(),
		"imported": imported,
		"skipped":  len(rowErrs),
		"errors":   rowErrs,
	})
}

func filterFrom(c echo.Context) repository.Filter {
	return repository.Filter{
		Brand: c.QueryParam("brand"),
		Model: c.QueryParam("model"),
		Query: c.QueryParam("q"),
	}
}

func sendWorkbook(c echo.Context, filename string, b []byte) error {
	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf(`attachment; filename=%q`, filename))
	return c.Blob(http.StatusOK, export.ContentType, b)
}

func parseUint(s string) (uint64, error) {
	return strconv.ParseUint(s, 10, 64)
}
