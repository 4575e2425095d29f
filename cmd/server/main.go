package main

import (
	"log"
	"os"

	"github.com/labstack/echo/v4"

	"brushfuel/config"
	"brushfuel/database"
	"brushfuel/pkg/logger"
	"brushfuel/router"
	"brushfuel/scheduler"

	// Fuel logs
	logCtrlImp "brushfuel/pkg/fuellog/controllerImp"
	logRepoImp "brushfuel/pkg/fuellog/repositoryImp"
	logSvcImp "brushfuel/pkg/fuellog/serviceImp"

	// Equipment catalog
	catCtrlImp "brushfuel/pkg/catalog/controllerImp"
	catRepoImp "brushfuel/pkg/catalog/repositoryImp"
	catSvcImp "brushfuel/pkg/catalog/serviceImp"

	// Reports
	repCtrlImp "brushfuel/pkg/report/controllerImp"

	// Health
	healthCtrlImp "brushfuel/pkg/health/controllerImp"
)

func main() {
	// 1) Config
	cfg := config.Load()

	// 2) Logger
	zl := logger.Must(logger.New())
	defer func() { _ = zl.Sync() }()

	// 3) DB (sqlite) + automigrate + catalog seed
	db := database.OpenSQLite(cfg.DBPath)
	if err := database.SeedCatalog(db); err != nil {
		log.Fatalf("seed catalog: %v", err)
	}

	// 4) Services
	logSvc := logSvcImp.New(logRepoImp.New(db))
	catSvc := catSvcImp.New(catRepoImp.New(db))

	// 5) Controllers (nil fetcher picks the default resty client)
	lCtrl := logCtrlImp.New(logSvc)
	cCtrl := catCtrlImp.New(catSvc, nil)
	rCtrl := repCtrlImp.New(logSvc, catSvc)
	hCtrl := healthCtrlImp.NewHealthCtrl(db)

	// 6) Router
	e := echo.New()
	r := router.New(e, lCtrl, cCtrl, rCtrl, hCtrl, zl)

	// Static (register form + dashboard page)
	r.Static("/static", "static")
	r.File("/", "static/index.html")
	if _, err := os.Stat("static/index.html"); err != nil {
		log.Printf("WARN: static/index.html not found: %v", err)
	}

	// 7) Snapshot scheduler (off unless ENABLE_SNAPSHOT=true)
	if cfg.EnableSnapshot {
		sched := scheduler.New(cfg, logSvc, logger.Named(zl, "scheduler"))
		sched.Start()
		defer sched.Stop()
	}

	// 8) Start
	log.Printf("listening on :%s", cfg.Port)
	if err := r.Start(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
