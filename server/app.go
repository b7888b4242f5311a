package server

import (
	"context"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"trackflow/config"
	"trackflow/internal/db"
	"trackflow/internal/health"
	"trackflow/internal/logs"
	"trackflow/internal/middleware"
	"trackflow/internal/models"
	"trackflow/internal/provision"
	"trackflow/internal/repo"

	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

type App struct {
	cfg        *config.Config
	db         *gorm.DB
	Router     *mux.Router
	httpServer *http.Server

	prov *provision.Provisioner

	ctx    context.Context
	cancel context.CancelFunc
}

func (a *App) Initialize(cfg *config.Config) {
	a.cfg = cfg

	/* 1) Логи */
	logs.Init(logs.Options{
		Level:  a.cfg.Logging.Level,
		Format: a.cfg.Logging.Format,
		File:   a.cfg.Logging.File,
	})

	/* 2) DB хоста (опционально; без driver — in-memory прогон) */
	if drv := a.cfg.Database.Driver; drv != "" {
		d, err := db.Open(drv, a.cfg.Database.DSN)
		if err != nil {
			log.Fatalf("db open failed: %v", err)
		}
		a.db = d

		// Таблицы записей, которые создаёт сам провижионер.
		// tab_internal_ip_range здесь нет: её поднимает стадия ensure-схемы
		// вместе с регистрацией DocType.
		if err := a.db.AutoMigrate(
			&models.InstalledApp{},
			&models.DocType{},
			&models.DocField{},
			&models.Role{},
			&models.CustomField{},
			&models.PropertySetter{},
			&models.DocPerm{},
			&models.SingleValue{},
			&models.Workspace{},
			&models.WorkspaceLink{},
		); err != nil {
			log.Fatalf("db migrate failed: %v", err)
		}
	}

	/* 3) Стор + провижионер */
	a.prov = provision.New(a.buildDeps())

	/* 4) Router + middleware */
	a.Router = mux.NewRouter().StrictSlash(true)
	a.Router.Use(
		middleware.RequestID,
		middleware.Recoverer,
		middleware.LoggerMW,
	)

	/* 5) Health */
	if a.db != nil {
		health.RegisterRoutesWithDB(a.Router, a.db) // /healthz, /readyz
	} else {
		health.RegisterRoutes(a.Router) // только /healthz
	}

	/* 6) Lifecycle-хуки по HTTP */
	registerHookRoutes(a.Router, a.prov, a.cfg.Hooks.SharedSecret)

	_ = a.Router.Walk(func(rt *mux.Route, _ *mux.Router, _ []*mux.Route) error {
		path, _ := rt.GetPathTemplate()
		methods, _ := rt.GetMethods()
		if len(methods) == 0 {
			methods = []string{"ANY"}
		}
		log.Printf("route: %-6v %s", methods, path)
		return nil
	})
}

// buildDeps собирает зависимости провижионера: GORM-сторы при наличии БД,
// иначе MemStore с посевом хоста для прогона «на сухую».
func (a *App) buildDeps() provision.Deps {
	if a.db != nil {
		ms := repo.NewMetaStore(a.db)
		return provision.Deps{
			Apps:       ms,
			DocTypes:   ms,
			Records:    repo.NewRecordStore(a.db),
			Singles:    repo.NewSingleStore(a.db),
			Workspaces: repo.NewWorkspaceStore(a.db),
		}
	}

	mem := repo.NewMemStore()
	mem.SeedApp("crm")
	for _, dt := range []string{"CRM Lead", "CRM Deal", "CRM Organization"} {
		mem.SeedDocType(&models.DocType{Name: dt, Module: "CRM"})
	}
	mem.SeedWorkspace("CRM")
	return provision.Deps{Apps: mem, DocTypes: mem, Records: mem, Singles: mem, Workspaces: mem}
}

// RunInstall — CLI-путь: before-install + after-install.
func (a *App) RunInstall(ctx context.Context) error {
	if _, err := a.prov.BeforeInstall(ctx); err != nil {
		return err
	}
	_, err := a.prov.AfterInstall(ctx)
	return err
}

// RunMigrate — CLI-путь: after-migrate.
func (a *App) RunMigrate(ctx context.Context) error {
	_, err := a.prov.AfterMigrate(ctx)
	return err
}

func (a *App) Run() error {
	if a.Router == nil || a.cfg == nil {
		return fmt.Errorf("server not initialized")
	}

	if a.cfg.Hooks.AutoInstall {
		if err := a.RunInstall(context.Background()); err != nil {
			return fmt.Errorf("auto install: %w", err)
		}
	}

	bind := net.JoinHostPort(a.cfg.Server.Address, a.cfg.Server.HTTPPort)

	a.ctx, a.cancel = context.WithCancel(context.Background())
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		s := <-sigs
		logs.Logger.Infof("shutdown signal: %s", s)
		a.cancel()
	}()

	// Жёсткие таймауты — это важно для production
	a.httpServer = &http.Server{
		Addr:              bind,
		Handler:           a.Router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logs.Logger.Infof("HTTP listening on %s", bind)
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logs.Logger.Fatalf("http server error: %v", err)
		}
	}()

	<-a.ctx.Done()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := a.httpServer.Shutdown(ctx); err != nil {
		logs.Logger.Errorf("http shutdown: %v", err)
	}
	return nil
}
