package main

import (
	"context"
	"log"
	"time"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"growlog/config"
	"growlog/database"
	"growlog/router"

	"growlog/pkg/media"
	"growlog/pkg/monitor"
	"growlog/pkg/nutrient/importer"

	// Cycle
	cycleCtrlImp "growlog/pkg/cycle/controllerImp"
	cycleRepoImp "growlog/pkg/cycle/repositoryImp"
	cycleSvcImp "growlog/pkg/cycle/serviceImp"

	// Daily log
	logCtrlImp "growlog/pkg/dailylog/controllerImp"
	logRepoImp "growlog/pkg/dailylog/repositoryImp"
	logSvcImp "growlog/pkg/dailylog/serviceImp"

	// Nutrient catalog
	nutrientCtrlImp "growlog/pkg/nutrient/controllerImp"
	nutrientRepoImp "growlog/pkg/nutrient/repositoryImp"
	nutrientSvcImp "growlog/pkg/nutrient/serviceImp"

	// Feeding + reservoir
	feedCtrlImp "growlog/pkg/feeding/controllerImp"
	feedRepoImp "growlog/pkg/feeding/repositoryImp"
	feedSvcImp "growlog/pkg/feeding/serviceImp"
	resCtrlImp "growlog/pkg/reservoir/controllerImp"
	resRepoImp "growlog/pkg/reservoir/repositoryImp"
	resSvcImp "growlog/pkg/reservoir/serviceImp"

	// Media, export, health
	exportCtrlImp "growlog/pkg/export/controllerImp"
	exportSvcImp "growlog/pkg/export/serviceImp"
	healthCtrlImp "growlog/pkg/health/controllerImp"
	mediaCtrlImp "growlog/pkg/media/controllerImp"
)

func main() {
	// 1) Config
	cfg := config.Load()
	if loc, err := time.LoadLocation(cfg.Timezone); err == nil {
		time.Local = loc
	} else {
		log.Printf("[cfg] unknown TZ %q: %v", cfg.Timezone, err)
	}

	// 2) DB (sqlite) + automigrate
	db := database.OpenSQLite(cfg.DBPath)

	// 3) Media store
	store := openMedia(cfg)

	// 4) Repos
	cRepo := cycleRepoImp.New(db)
	lRepo := logRepoImp.New(db)
	nRepo := nutrientRepoImp.New(db)
	fRepo := feedRepoImp.New(db)
	rRepo := resRepoImp.New(db)

	// 5) Services
	lSvc := logSvcImp.NewLogService(lRepo, cRepo)
	cSvc := cycleSvcImp.NewCycleService(cRepo, lRepo)
	nSvc := nutrientSvcImp.NewNutrientService(nRepo, importer.New(cfg.ImportAllowedDomains, cfg.ImportMaxBytes))
	fSvc := feedSvcImp.NewFeedingService(fRepo, lRepo, nRepo, rRepo)
	rSvc := resSvcImp.NewReservoirService(rRepo, lRepo)
	xSvc := exportSvcImp.NewExportService(cRepo, lSvc, fRepo, rRepo)

	// 6) Echo
	e := echo.New()
	e.HideBanner = true
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.BodyLimit("12M"))

	r := router.New(
		e,
		cycleCtrlImp.New(cSvc, lSvc),
		logCtrlImp.New(lSvc),
		feedCtrlImp.New(fSvc),
		resCtrlImp.New(rSvc),
		nutrientCtrlImp.New(nSvc),
		mediaCtrlImp.New(store, lSvc, nSvc),
		exportCtrlImp.New(xSvc),
		healthCtrlImp.NewHealthCtrl(db, store),
		monitor.Handler(),
	)

	// 7) Start
	log.Printf("listening on :%s", cfg.Port)
	if err := r.Start(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}

func openMedia(cfg config.AppConfig) media.Store {
	switch cfg.MediaDriver {
	case "s3":
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		s, err := media.NewS3Store(ctx, media.S3Config{
			Bucket:    cfg.MediaS3Bucket,
			Region:    cfg.MediaS3Region,
			Endpoint:  cfg.MediaS3Endpoint,
			PathStyle: cfg.MediaS3PathStyle,
		})
		if err != nil {
			log.Fatalf("[media] s3: %v", err)
		}
		return s
	case "fs":
		s, err := media.NewFSStore(cfg.MediaRoot)
		if err != nil {
			log.Fatalf("[media] fs: %v", err)
		}
		return s
	default:
		log.Fatalf("[media] unknown MEDIA_DRIVER %q", cfg.MediaDriver)
		return nil
	}
}
