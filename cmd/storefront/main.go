package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"

	"github.com/MikeMC777/storefront/internal/config"
	"github.com/MikeMC777/storefront/internal/events"
	"github.com/MikeMC777/storefront/internal/grpchealth"
	"github.com/MikeMC777/storefront/internal/logger"
	ord "github.com/MikeMC777/storefront/internal/order"
	"github.com/MikeMC777/storefront/internal/product"
	"github.com/MikeMC777/storefront/internal/storage"
)

func main() {
	cfg := config.Load()
	log := logger.New(logger.Options{Service: "storefront", Env: cfg.AppEnv, Level: cfg.LogLevel})

	if cfg.AppEnv == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.Error("storefront stopped", slog.Any("err", err))
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config.Config, log *slog.Logger) error {
	d := deps{
		log:              log,
		fetchConcurrency: cfg.FetchConcurrency,
		swagger:          cfg.SwaggerEnabled,
	}

	switch {
	case cfg.ProductsMongoURI != "":
		client, err := storage.OpenMongo(ctx, cfg.ProductsMongoURI)
		if err != nil {
			return err
		}
		defer func() { _ = client.Disconnect(context.Background()) }()
		coll := client.Database(cfg.ProductsMongoDB).Collection(cfg.ProductsCollection)
		d.products = product.NewCatalog(product.NewMongoStore(coll), cfg.FetchConcurrency)
		log.Info("product store: mongo", slog.String("db", cfg.ProductsMongoDB), slog.String("collection", cfg.ProductsCollection))
	case cfg.ProductsSeedFile != "":
		mem, err := product.LoadMemoryFile(cfg.ProductsSeedFile)
		if err != nil {
			return err
		}
		d.products = product.NewCatalog(mem, cfg.FetchConcurrency)
		log.Info("product store: memory", slog.String("seed", cfg.ProductsSeedFile))
	default:
		log.Warn("product store not configured")
	}

	if cfg.DatabaseURL != "" {
		pool, err := storage.OpenPostgres(ctx, cfg.DatabaseURL)
		if err != nil {
			return err
		}
		defer pool.Close()
		d.orders = ord.NewPGRepo(pool)
		log.Info("order store: postgres")
	} else {
		log.Warn("order store not configured")
	}

	if cfg.EventsAMQPURL != "" {
		pub, err := events.NewRabbitPublisher(cfg.EventsAMQPURL, cfg.EventsExchange)
		if err != nil {
			log.Warn("order events disabled", slog.Any("err", err))
		} else {
			defer pub.Close()
			d.events = pub
		}
	}

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           newRouter(d),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("http listening", slog.String("addr", cfg.HTTPAddr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		sctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		log.Info("shutting down")
		return srv.Shutdown(sctx)
	})

	if cfg.GRPCHealthAddr != "" {
		gs, hs := grpchealth.NewServer(grpchealth.Bindings{
			Products: d.products != nil,
			Orders:   d.orders != nil,
		})
		g.Go(func() error {
			return grpchealth.Serve(gctx, cfg.GRPCHealthAddr, gs, hs, log)
		})
	}

	return g.Wait()
}
