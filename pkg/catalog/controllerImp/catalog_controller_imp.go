package controllerImp

import (
	"bytes"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strings"

	"github.com/labstack/echo/v4"

	"brushfuel/pkg/catalog/controller"
	svc "brushfuel/pkg/catalog/service"
	"brushfuel/pkg/importer"
)

type CatalogCtrl struct {
	s     svc.CatalogService
	fetch importer.Fetcher
	allow map[string]bool
}

// New reads the URL-import allowlist from CATALOG_ALLOWED_DOMAINS
// (comma-separated hosts). An empty list disables URL imports.
func New(s svc.CatalogService, f importer.Fetcher) controller.CatalogController {
	allow := map[string]bool{}
	for _, h := range strings.Split(os.Getenv("CATALOG_ALLOWED_DOMAINS"), ",") {
		h = strings.TrimSpace(h)
		if h != "" {
			allow[strings.ToLower(h)] = true
		}
	}
	var mb int64 = 1500000
	if v := os.Getenv("CATALOG_MAX_BYTES_PER_PAGE"); v != "" {
		fmt.Sscanf(v, "%d", &mb)
	}
	if f == nil {
		f = importer.NewFetcher(mb)
	}
	return &CatalogCtrl{s: s, fetch: f, allow: allow}
}

func (h *CatalogCtrl) List(c echo.Context) error {
	list, err := h.s.List(c.QueryParam("brand"))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, list)
}

func (h *CatalogCtrl) Brands(c echo.Context) error {
	brands, err := h.s.Brands()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, brands)
}

// Rated backs the register form hint; unknown pairs answer with null.
func (h *CatalogCtrl) Rated(c echo.Context) error {
	brand, model := c.QueryParam("brand"), c.QueryParam("model")
	if brand == "" || model == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "brand and model are required"})
	}
	rated, err := h.s.RatedFor(brand, model)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, echo.Map{"brand": brand, "model": model, "rated_litres_per_hour": rated})
}

func (h *CatalogCtrl) Upsert(c echo.Context) error {
	var in svc.Entry
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid json"})
	}
	m, err := h.s.Upsert(in)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, m)
}

func (h *CatalogCtrl) ImportCSV(c echo.Context) error {
	fh, err := c.FormFile("file")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "file is required"})
	}
	src, err := fh.Open()
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	defer src.Close()

	rows, rowErrs, err := importer.ParseCatalogCSV(src)
	if err != nil {
		return c.JSON(http.StatusUnprocessableEntity, echo.Map{"error": err.Error()})
	}
	imported, skipped, err := h.s.ImportEntries(toEntries(rows))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"imported": imported,
		"skipped":  skipped + len(rowErrs),
		"errors":   rowErrs,
	})
}

func (h *CatalogCtrl) ImportURL(c echo.Context) error {
	var body struct {
		URL   string `json:"url"`
		Brand string `json:"brand"`
	}
	if err := c.Bind(&body); err != nil || body.URL == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "url required"})
	}
	u, err := url.Parse(body.URL)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "bad url"})
	}
	if !h.allow[strings.ToLower(u.Host)] {
		return c.JSON(http.StatusForbidden, echo.Map{"error": "domain not allowed"})
	}

	page, err := h.fetch.FetchHTML(c.Request().Context(), body.URL)
	if err != nil {
		return c.JSON(http.StatusBadGateway, echo.Map{"error": err.Error()})
	}
	rows, err := importer.ParseCatalogHTML(bytes.NewReader(page), body.Brand)
	if err != nil {
		return c.JSON(http.StatusUnprocessableEntity, echo.Map{"error": err.Error()})
	}
	imported, skipped, err := h.s.ImportEntries(toEntries(rows))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, echo.Map{"imported": imported, "skipped": skipped, "source": body.URL})
}

func toEntries(rows []importer.CatalogRow) []svc.Entry {
	out := make([]svc.Entry, 0, len(rows))
	for _, r := range rows {
		out = append(out, svc.Entry{Brand: r.Brand, Model: r.Model, Rated: r.Rated})
	}
	return out
}
