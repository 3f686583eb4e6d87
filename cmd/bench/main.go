package main

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/QuangTung97/user-replica/config"
	"github.com/QuangTung97/user-replica/model"
	"github.com/QuangTung97/user-replica/pkg/cacheclient"
	"github.com/QuangTung97/user-replica/pkg/eventbus"
	"github.com/QuangTung97/user-replica/pkg/memtable"
	"github.com/QuangTung97/user-replica/repository"
	"github.com/QuangTung97/user-replica/service/publisher"
	"github.com/QuangTung97/user-replica/service/replica"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "github.com/go-sql-driver/mysql"
)

const (
	numThreads  = 50
	numElements = 2000
	numUsers    = 1000
)

func main() {
	rootCmd := cobra.Command{
		Use: "bench",
	}
	rootCmd.AddCommand(
		benchPublishCommand(),
		benchReadCommand(),
	)

	err := rootCmd.Execute()
	if err != nil {
		fmt.Println(err)
	}
}

func runThreads(fn func(thread int, i int) error) {
	durations := make([][]time.Duration, numThreads)

	totalStart := time.Now()

	var wg sync.WaitGroup
	wg.Add(numThreads)
	for th := 0; th < numThreads; th++ {
		threadIndex := th
		go func() {
			defer wg.Done()

			for i := 0; i < numElements; i++ {
				start := time.Now()
				if err := fn(threadIndex, i); err != nil {
					fmt.Println("[ERROR]", err)
				}
				durations[threadIndex] = append(durations[threadIndex], time.Since(start))
			}
		}()
	}
	wg.Wait()
	fmt.Println("TOTAL TIME", time.Since(totalStart))

	printStats(durations)
}

func printStats(durations [][]time.Duration) {
	history := make([]time.Duration, 0, numThreads*numElements)

	total := time.Duration(0)
	for _, bucket := range durations {
		for _, d := range bucket {
			total += d
			history = append(history, d)
		}
	}

	sort.Slice(history, func(i, j int) bool {
		return history[i] < history[j]
	})

	numHistory := len(history)
	if numHistory == 0 {
		return
	}

	fmt.Println("P50:", history[numHistory*50/100])
	fmt.Println("P90:", history[numHistory*90/100])
	fmt.Println("P95:", history[numHistory*95/100])
	fmt.Println("P99:", history[numHistory*99/100])
	fmt.Println("P999:", history[numHistory*999/1000])
	fmt.Println("MAX:", history[numHistory-1])
	fmt.Println("AVG:", total/time.Duration(numHistory))
}

func benchUserID(thread int, i int) int64 {
	return int64((thread*numElements+i)%numUsers) + 1
}

func benchPublish() {
	conf := config.Load()
	logger := config.NewLogger(conf.Log)

	bus, err := eventbus.Connect(conf.NATS, logger)
	if err != nil {
		panic(err)
	}
	defer bus.Close()

	topo := eventbus.NewTopology(conf.Sync.Entity, "bench")
	if err := bus.EnsureStream(context.Background(), topo); err != nil {
		panic(err)
	}

	pub := publisher.New(bus, topo, "bench", zap.NewNop(), prometheus.NewRegistry())

	runThreads(func(thread int, i int) error {
		id := benchUserID(thread, i)
		pub.PublishUpdated(context.Background(), model.User{
			ID:        id,
			Username:  model.DefaultUsername(id),
			Email:     fmt.Sprintf("bench%d@example.com", id),
			Role:      model.RoleStudent,
			IsEnabled: true,
			Version:   int64(i + 1),
			UpdatedAt: time.Now(),
		})
		return nil
	})
}

func benchRead() {
	conf := config.Load()
	logger := config.NewLogger(conf.Log)

	fmt.Println("CACHE ENABLED:", conf.Cache.Enabled)
	fmt.Println("NUM CONNS:", conf.Memcache.Conns())
	fmt.Println("MEMCACHE ADDR:", conf.Memcache.Addr())

	db := conf.MySQL.MustConnect(logger)
	provider := repository.NewProvider(db)

	var options []replica.ReaderOption
	if conf.Cache.Enabled {
		client := cacheclient.New(conf.Memcache.Addr(), conf.Memcache.Conns())
		defer func() { _ = client.Close() }()

		options = append(options,
			replica.WithLocalCache(memtable.New(conf.Cache.LocalSizeBytes)),
			replica.WithRemoteCache(client),
		)
	}

	reader := replica.NewReader(provider, repository.NewReplica(), conf.Cache, zap.NewNop(), options...)

	runThreads(func(thread int, i int) error {
		_, err := reader.GetOrCreate(context.Background(), benchUserID(thread, i))
		return err
	})
}

func benchPublishCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "publish",
		Short: "benchmark publishing user events to nats",
		Run: func(cmd *cobra.Command, args []string) {
			benchPublish()
		},
	}
}

func benchReadCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "read",
		Short: "benchmark replica reads through the cache",
		Run: func(cmd *cobra.Command, args []string) {
			benchRead()
		},
	}
}
