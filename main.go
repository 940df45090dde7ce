package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"VisitorIntake/config"
	"VisitorIntake/global"
	"VisitorIntake/metrics"
	"VisitorIntake/repositories"
	"VisitorIntake/routes"
	"VisitorIntake/services"
	"VisitorIntake/utils/redislog"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"gorm.io/gorm"
)

func main() {
	// 1) Load config from file and/or env.
	cfg := config.Load()
	log.Printf("[boot] %s %s starting in %s on :%s", cfg.AppName, global.AppVersion, cfg.Env, cfg.HTTPPort)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 2) Diagnostics: Redis-backed log list when enabled, stdout otherwise.
	rlog := redislog.New(nil, "", 0, 0)
	if cfg.RedisEnabled {
		rdb, err := config.InitRedis(ctx, cfg)
		if err != nil {
			log.Printf("[redis] disabled: %v", err)
		} else {
			defer rdb.Close()
			rlog = redislog.New(rdb, cfg.LogKey, cfg.LogMax, cfg.LogRetention)
		}
	}

	// 3) Store handle starts absent; the connect attempt runs after the listener is up.
	store := repositories.NewStoreHandle()

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(reg, store.Connected)

	// 4) Construct gateway and service (dependency injection).
	gateway := services.NewPersistenceGateway(store, rlog, m, services.GatewayOptions{
		WriteTimeout: cfg.DBWriteTimeout,
		Async:        cfg.PersistAsync,
	})
	visitorSvc := services.NewVisitorService(gateway, rlog, m)

	// 5) Create Gin engine and wire routes.
	if cfg.Env == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	_ = r.SetTrustedProxies(nil) // trust none (safe default)
	routes.Setup(r, routes.Deps{
		Visitors:    visitorSvc,
		Store:       store,
		Gatherer:    reg,
		CORSOrigins: cfg.CORSOrigins,
	})

	srv := &http.Server{Addr: ":" + cfg.HTTPPort, Handler: r}
	go func() {
		rlog.Info("http server start", map[string]string{"port": cfg.HTTPPort})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("[http] server error: %v", err)
		}
	}()

	// 6) Connect to the store in the background; requests are served either way.
	config.ConnectStore(ctx, func(ctx context.Context) (*gorm.DB, error) {
		return config.InitDB(ctx, cfg)
	}, cfg.DBConnectTimeout, store)

	<-ctx.Done()
	log.Printf("[boot] shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("[http] graceful shutdown failed: %v", err)
	}
	gateway.Wait() // let queued visitor writes finish
	rlog.Close()   // flush diagnostics before the Redis client closes
}
