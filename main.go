package main

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-firestore-catalog/internal/catalog"
	"go-firestore-catalog/internal/catalogcache"
	"go-firestore-catalog/internal/config"
	"go-firestore-catalog/internal/database"
	productEventPublisher "go-firestore-catalog/internal/eventpublisher/product"
	"go-firestore-catalog/internal/handler/admin"
	"go-firestore-catalog/internal/handler/storefront"
	"go-firestore-catalog/internal/repository"
	"go-firestore-catalog/internal/repository/inmemory"
	productRepository "go-firestore-catalog/internal/repository/product"
	"go-firestore-catalog/internal/server"
	"go-firestore-catalog/internal/session"
	"go-firestore-catalog/internal/tracing"

	Firestore "firebase.google.com/go/v4"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
	"google.golang.org/api/option"
)

func main() {

	cnf := config.LoadConfigOrPanic()
	setupLogger(cnf.Log)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	defer close(sigs)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)

	traceProvider, err := tracing.InitTracing(ctx, cnf.Tracing)
	if err != nil {
		panic(err)
	}
	defer func() {
		if err := traceProvider.Shutdown(context.Background()); err != nil {
			log.Error().Err(err).Msg("Failed to shutdown tracing")
		}
	}()

	var (
		repos    repository.Set
		notifier productRepository.Notifier
	)

	switch cnf.Storage.Driver {
	case config.StorageFirestore:
		app := createFirestoreAppOrPanic(ctx, cnf.Firebase)
		firestoreClient := createFirestoreClientOrPanic(ctx, app, cnf.Firebase.WriteTimeoutSecond)
		defer firestoreClient.Close()

		repos = repository.NewFirestoreSet(firestoreClient)
		notifier = productRepository.New(firestoreClient)
	default:
		log.Warn().Msg("using in-memory storage, data is lost on exit")
		repos = inmemory.NewSet()
	}

	cache := catalogcache.New(repos.Products, cnf.Catalog.CacheTTL)
	sessions := session.NewManager(cnf.Admin)

	srv := server.New(cnf.Server, traceProvider.Tracer(cnf.Tracing.ServiceName),
		storefront.New(repos, cache, catalog.NewRanker(cnf.Catalog.BrandTokens)),
		admin.New(repos, sessions, cache),
	)

	group, gctx := errgroup.WithContext(ctx)
	group.Go(func() error {
		return srv.Start(gctx)
	})

	if notifier != nil {
		catalogPublisher := productEventPublisher.ProductPublisherFactory(notifier).OnCatalogChange()
		group.Go(func() error {
			return catalogPublisher.Start(gctx)
		})
		group.Go(func() error {
			return cache.Run(gctx, catalogPublisher)
		})
	}

	select {
	case <-sigs:
		// Received a termination signal, continue to shutdown
	case <-gctx.Done():
		// errgroup encountered an error, continue to shutdown
	}

	cancel() // cancel the root context to signal all the consumers

	done := make(chan error, 1)
	go func() { done <- group.Wait() }()

	select {
	case err := <-done:
		if err != nil && !errors.Is(err, context.Canceled) {
			log.Error().Err(err).Msg("shutdown with error")
			os.Exit(1)
		}
	case <-time.After(cnf.Server.ShutdownTimeout):
		log.Error().Msg("shutdown timed out")
		os.Exit(1)
	case <-sigs:
		// Forcefully terminate the app with a signal
		os.Exit(1)
	}
}

func setupLogger(cnf config.Log) {
	level, err := zerolog.ParseLevel(cnf.Level)
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	if cnf.Pretty {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
		return
	}
	log.Logger = zerolog.New(os.Stdout).With().Timestamp().Logger()
}

func createFirestoreAppOrPanic(ctx context.Context, cnf config.Firebase) *Firestore.App {
	FirestoreCreds, err := json.Marshal(cnf)
	if err != nil {
		panic(err)
	}

	sa := option.WithCredentialsJSON(FirestoreCreds)
	app, err := Firestore.NewApp(ctx, nil, sa)
	if err != nil {
		panic(err)
	}
	return app
}

func createFirestoreClientOrPanic(ctx context.Context, app *Firestore.App, writeTimeout time.Duration) database.FirestoreClient {
	firestoreClient, err := app.Firestore(ctx)
	if err != nil {
		panic(err)
	}
	return database.New(firestoreClient, writeTimeout)
}
