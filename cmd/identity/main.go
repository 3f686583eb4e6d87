package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/QuangTung97/user-replica/config"
	"github.com/QuangTung97/user-replica/pkg/eventbus"
	"github.com/QuangTung97/user-replica/pkg/httplib"
	"github.com/QuangTung97/user-replica/pkg/otellib"
	"github.com/QuangTung97/user-replica/repository"
	"github.com/QuangTung97/user-replica/service/identity"
	"github.com/QuangTung97/user-replica/service/publisher"
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
	"go.uber.org/zap"

	_ "github.com/go-sql-driver/mysql"
)

const serviceName = "identity"

func main() {
	rootCmd := cobra.Command{
		Use: serviceName,
	}
	rootCmd.AddCommand(
		startServerCommand(),
	)

	err := rootCmd.Execute()
	if err != nil {
		fmt.Println(err)
	}
}

func startServerCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "start",
		Short: "start the identity service",
		Run: func(cmd *cobra.Command, args []string) {
			startServer()
		},
	}
}

func startServer() {
	conf := config.Load()
	logger := config.NewLogger(conf.Log)
	defer func() { _ = logger.Sync() }()

	tracerProvider, shutdown := otellib.InitOtel(serviceName, conf.Jaeger)
	defer shutdown()

	otel.SetTracerProvider(tracerProvider)
	otel.SetTextMapPropagator(propagation.TraceContext{})

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	db := conf.MySQL.MustConnect(logger)
	defer func() { _ = db.Close() }()

	bus, err := eventbus.Connect(conf.NATS, logger)
	if err != nil {
		logger.Fatal("connect nats", zap.Error(err))
	}
	defer bus.Close()

	topo := eventbus.NewTopology(conf.Sync.Entity, serviceName)

	ctx, cancel := context.WithTimeout(context.Background(), conf.NATS.ConnectTimeout)
	err = bus.EnsureStream(ctx, topo)
	cancel()
	if err != nil {
		logger.Fatal("ensure stream", zap.Error(err))
	}

	pub := publisher.New(bus, topo, serviceName, logger, registry)

	var service identity.IService = identity.NewService(
		repository.NewProvider(db), repository.NewUser(), pub,
	)
	service = identity.NewIServiceWrapper(service, tracerProvider.Tracer(serviceName), "identity::")

	router := httplib.NewRouter(serviceName, logger, registry, func(r chi.Router) {
		identity.RegisterRoutes(r, service)
	})

	httpServer := &http.Server{
		Addr:    conf.Server.HTTP.ListenString(),
		Handler: router,
	}

	done := make(chan struct{})
	go func() {
		defer close(done)

		logger.Info("listening http", zap.String("addr", httpServer.Addr))
		err := httpServer.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			logger.Fatal("http server", zap.Error(err))
		}
		logger.Info("shutdown http server successfully")
	}()

	//--------------------------------
	// Graceful Shutdown
	//--------------------------------
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown http server", zap.Error(err))
	}
	<-done
}
