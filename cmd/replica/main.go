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
	"github.com/QuangTung97/user-replica/model"
	"github.com/QuangTung97/user-replica/pkg/cacheclient"
	"github.com/QuangTung97/user-replica/pkg/eventbus"
	"github.com/QuangTung97/user-replica/pkg/httplib"
	"github.com/QuangTung97/user-replica/pkg/memtable"
	"github.com/QuangTung97/user-replica/pkg/otellib"
	"github.com/QuangTung97/user-replica/repository"
	"github.com/QuangTung97/user-replica/service/reconciler"
	"github.com/QuangTung97/user-replica/service/replica"
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
	"go.uber.org/zap"

	_ "github.com/go-sql-driver/mysql"
)

func main() {
	rootCmd := cobra.Command{
		Use: "replica",
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
		Short: "start the replica consumer and read api of a service",
		Run: func(cmd *cobra.Command, args []string) {
			startServer()
		},
	}
}

func newReaderOptions(conf config.Config, logger *zap.Logger) ([]replica.ReaderOption, func()) {
	if !conf.Cache.Enabled {
		return nil, func() {}
	}

	options := []replica.ReaderOption{
		replica.WithLocalCache(memtable.New(conf.Cache.LocalSizeBytes)),
	}
	if !conf.Memcache.Enabled {
		return options, func() {}
	}

	client := cacheclient.New(conf.Memcache.Addr(), conf.Memcache.Conns())
	logger.Info("connected to memcached",
		zap.String("addr", conf.Memcache.Addr()),
		zap.Int("num_conns", conf.Memcache.Conns()),
	)
	return append(options, replica.WithRemoteCache(client)), func() { _ = client.Close() }
}

func startServer() {
	conf := config.Load()
	logger := config.NewLogger(conf.Log)
	defer func() { _ = logger.Sync() }()

	if conf.Sync.Service == "" {
		logger.Fatal("missing sync.service")
	}
	serviceName := conf.Sync.Service + "-replica"

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

	topo := eventbus.NewTopology(conf.Sync.Entity, conf.Sync.Service)

	ctx, cancel := context.WithTimeout(context.Background(), conf.NATS.ConnectTimeout)
	source, err := bus.EnsureConsumerTopology(ctx, topo, conf.Sync, model.AllEventTypes)
	cancel()
	if err != nil {
		logger.Fatal("ensure consumer topology", zap.Error(err))
	}

	provider := repository.NewProvider(db)
	replicaRepo := repository.NewReplica()

	readerOptions, closeCache := newReaderOptions(conf, logger)
	defer closeCache()

	reader := replica.NewReader(provider, replicaRepo, conf.Cache, logger, readerOptions...)
	rec := reconciler.NewReconciler(provider, replicaRepo, reader,
		conf.Sync.StaleVersionPolicy, logger, registry)

	consumer := eventbus.NewConsumer(source, bus, reconciler.NewHandler(rec, logger),
		topo, conf.Sync, logger, registry)
	consumer.Start(context.Background())

	router := httplib.NewRouter(serviceName, logger, registry, func(r chi.Router) {
		replica.RegisterRoutes(r, reader)
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

	consumer.Stop()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown http server", zap.Error(err))
	}
	<-done
}
