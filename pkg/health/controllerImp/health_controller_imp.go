package controllerImp

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"brushfuel/entities"
)

var appStart = time.Now()

type HealthCtrl struct {
	db *gorm.DB
}

func NewHealthCtrl(db *gorm.DB) *HealthCtrl { return &HealthCtrl{db: db} }

// Health pings the database and reports the register and catalog row counts.
// Only the database check gates the 503; an unseeded catalog is reported but
// not fatal.
func (h *HealthCtrl) Health(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 800*time.Millisecond)
	defer cancel()

	dbOK := true
	dbErr := ""
	if h.db != nil {
		sqlDB, err := h.db.DB()
		if err != nil {
			dbOK = false
			dbErr = "db.DB(): " + err.Error()
		} else if err := sqlDB.PingContext(ctx); err != nil {
			dbOK = false
			dbErr = "ping: " + err.Error()
		}
	} else {
		dbOK = false
		dbErr = "gorm db is nil"
	}

	var models, logs int64
	if dbOK {
		h.db.WithContext(ctx).Model(&entities.EquipmentModel{}).Count(&models)
		h.db.WithContext(ctx).Model(&entities.FuelLog{}).Count(&logs)
	}

	catErr := ""
	if models == 0 {
		catErr = "catalog empty"
	}

	status := http.StatusOK
	if !dbOK {
		status = http.StatusServiceUnavailable
	}

	type sub struct {
		OK  bool   `json:"ok"`
		Err string `json:"err,omitempty"`
	}

	resp := map[string]any{
		"status":     map[string]any{"ok": dbOK},
		"uptime_sec": int(time.Since(appStart).Seconds()),
		"checks": map[string]any{
			"database": sub{OK: dbOK, Err: dbErr},
			"catalog":  sub{OK: models > 0, Err: catErr},
		},
		"counts": map[string]any{"models": models, "fuel_logs": logs},
		"time":   time.Now().Format(time.RFC3339),
	}

	return c.JSON(status, resp)
}
