package main

import (
	"context"
	"net"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"

	"gomoku_exe/internal/bootstrap"
	engineRPC "gomoku_exe/microservices/proto"
	"gomoku_exe/microservices/repository"
	"gomoku_exe/microservices/usecase"
)

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

	lis, err := net.Listen("tcp", ":"+cfg.GrpcPort)
	if err != nil {
		logger.Fatalw("cant listen port", zap.Error(err))
	}

	server := grpc.NewServer()
	engineStorage := repository.NewEngineRepository(cfg, logger)
	engineRPC.RegisterEngineServiceServer(server, usecase.NewEngineUseCase(engineStorage))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Infof("starting engine server at :%s (depth %d, mtd %t)", cfg.GrpcPort, cfg.SearchDepth, cfg.UseMTD)
		return server.Serve(lis)
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("Received shutdown signal")
		server.GracefulStop()
		return nil
	})

	if err := g.Wait(); err != nil {
		logger.Errorw("engine server stopped with error", zap.Error(err))
	}
}
