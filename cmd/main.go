package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"gomoku_exe/internal/adapters"
	"gomoku_exe/internal/bootstrap"
	"gomoku_exe/internal/delivery"
	moveDelivery "gomoku_exe/internal/delivery/move"
	playDelivery "gomoku_exe/internal/delivery/play"
	"gomoku_exe/internal/engine"
	repo "gomoku_exe/internal/repository"
	moveUseCase "gomoku_exe/internal/usecase/move"
	engineRPC "gomoku_exe/microservices/proto"
	engineRepository "gomoku_exe/microservices/repository"
)

type dataBaseAdapters struct {
	redisAdapter *adapters.AdapterRedis
	mongoAdapter *adapters.AdapterMongo
}

func main() {
	cfg, err := bootstrap.Setup(".env")
	if err != nil {
		panic("failed to setup configuration: " + err.Error())
	}
	logger, err := bootstrap.NewLogger(cfg.LogLevel)
	if err != nil {
		panic("failed to initialize logger: " + err.Error())
	}
	defer func() { _ = logger.Sync() }()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go handleShutdown(cancel, logger)

	databaseAdapters := initDatabaseAdapters(ctx, logger, cfg)
	defer databaseAdapters.close(logger)

	engineImpl, closeEngine, err := initEngine(logger, cfg)
	if err != nil {
		logger.Fatalw("Failed to set up engine", zap.Error(err))
	}
	defer closeEngine()

	handlers := initializeDeliveryHandlers(*cfg, logger, engineImpl, databaseAdapters)
	server := &http.Server{
		Addr:              ":" + cfg.ServerPort,
		Handler:           handlers.Router(logger, cfg.IsLocalCors),
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Infof("Server is running on port %s", cfg.ServerPort)
		if err := server.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancelShutdown()
		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Errorw("Server stopped with error", zap.Error(err))
	}
}

// initDatabaseAdapters connects only the stores that are configured; an empty
// URL leaves the matching adapter nil.
func initDatabaseAdapters(ctx context.Context, log *zap.SugaredLogger, cfg *bootstrap.Config) *dataBaseAdapters {
	result := &dataBaseAdapters{}

	if cfg.MongoUri != "" {
		mongoAdapter := adapters.NewAdapterMongo(cfg, log)
		if err := mongoAdapter.Init(ctx); err != nil {
			log.Fatalw("Failed to initialize MongoDB", zap.Error(err))
		}
		result.mongoAdapter = mongoAdapter
	}

	if cfg.RedisUrl != "" {
		redisAdapter := adapters.NewAdapterRedis(cfg, log)
		if err := redisAdapter.Init(ctx); err != nil {
			log.Fatalw("Failed to initialize Redis", zap.Error(err))
		}
		result.redisAdapter = redisAdapter
	}

	log.Infof("Database adapters initialized (mongo: %t, redis: %t)", result.mongoAdapter != nil, result.redisAdapter != nil)
	return result
}

func (d *dataBaseAdapters) close(log *zap.SugaredLogger) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if d.mongoAdapter != nil {
		if err := d.mongoAdapter.Close(ctx); err != nil {
			log.Warnf("close mongo: %v", err)
		}
	}
	if d.redisAdapter != nil {
		if err := d.redisAdapter.Close(ctx); err != nil {
			log.Warnf("close redis: %v", err)
		}
	}
}

// initEngine dials the engine service when ENGINE_GRPC_ADDR is set and runs
// the search in-process otherwise.
func initEngine(log *zap.SugaredLogger, cfg *bootstrap.Config) (moveUseCase.Engine, func(), error) {
	if cfg.EngineGrpcAddr == "" {
		log.Infof("Using in-process engine (depth %d, mtd %t)", cfg.SearchDepth, cfg.UseMTD)
		return engineRepository.NewEngineRepository(cfg, log), func() {}, nil
	}

	conn, err := grpc.NewClient(cfg.EngineGrpcAddr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, nil, err
	}
	log.Infof("Using remote engine at %s", cfg.EngineGrpcAddr)
	closeConn := func() {
		if err := conn.Close(); err != nil {
			log.Warnf("close engine connection: %v", err)
		}
	}
	return repo.NewRemoteEngine(log, engineRPC.NewEngineServiceClient(conn)), closeConn, nil
}

func initializeDeliveryHandlers(
	cfg bootstrap.Config,
	log *zap.SugaredLogger,
	engineImpl moveUseCase.Engine,
	databaseAdapters *dataBaseAdapters,
) *delivery.Handlers {
	var cache moveUseCase.DecisionCache
	if databaseAdapters.redisAdapter != nil {
		cache = repo.NewDecisionCache(databaseAdapters.redisAdapter.GetClient(), cfg.CacheTTL)
	}
	var archive moveUseCase.DecisionArchive
	if databaseAdapters.mongoAdapter != nil {
		archive = repo.NewDecisionArchive(log, databaseAdapters.mongoAdapter.Database)
	}

	moveUC := moveUseCase.NewMoveUseCase(cfg, log, engineImpl, cache, archive)
	newStrategy := func() (engine.Strategy, error) {
		return engine.NewAlphaBeta(cfg.SearchDepth, engine.WithMTD(cfg.UseMTD), engine.WithLogger(log))
	}

	return &delivery.Handlers{
		Move: moveDelivery.NewMoveHandler(cfg, log, moveUC),
		Play: playDelivery.NewPlayHandler(cfg, log, newStrategy),
	}
}

func handleShutdown(cancelFunc context.CancelFunc, log *zap.SugaredLogger) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	<-sigs
	log.Info("Received shutdown signal")
	cancelFunc()
}
