package initialize

import (
	"fmt"
	"net/http"

	"notedeck/app/controllers"
	"notedeck/app/db"
	"notedeck/app/middleware"
	"notedeck/app/models"
	"notedeck/app/repo"
	"notedeck/app/services"
	"notedeck/config"
	"notedeck/global"
	"notedeck/router"

	"gorm.io/gorm"
)

type App struct {
	Cfg    config.Config
	DB     *gorm.DB
	Router http.Handler
}

// Build wires the whole process: config, storage, table creation, then the
// repo/service/controller chain and the router. Table creation is idempotent,
// running it on every start is safe.
func Build(configPath string) (*App, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	global.Config = *cfg
	SetupLogger(cfg.Log.Level)

	gdb, err := db.Connect(db.Config{
		Driver:            cfg.DB.Driver,
		Path:              cfg.DB.Path,
		Host:              cfg.DB.Host,
		Port:              cfg.DB.Port,
		User:              cfg.DB.User,
		Password:          cfg.DB.Pass,
		DBName:            cfg.DB.Name,
		CaseSensitiveLike: cfg.Search.CaseSensitive,
	})
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}
	global.Mdb = gdb

	if err := gdb.AutoMigrate(&models.User{}, &models.Note{}); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}

	// Repositories and services
	userRepo := repo.NewUserRepository(gdb)
	noteRepo := repo.NewNoteRepository(gdb)
	noteSvc := services.NewNoteService(noteRepo)
	userSvc := services.NewUserService(userRepo, noteRepo)

	// Controllers
	healthCtrl := controllers.NewHealthController()
	userCtrl := controllers.NewUserController(userSvc, noteSvc)
	noteCtrl := controllers.NewNoteController(noteSvc)

	// Router
	h := router.NewRouter(healthCtrl, userCtrl, noteCtrl)
	h = middleware.RequestID(h)
	h = middleware.Logging(h)

	return &App{Cfg: *cfg, DB: gdb, Router: h}, nil
}
