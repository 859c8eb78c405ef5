package main

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"

	grpc_logging "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/logging"
	grpc_recovery "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/recovery"

	"github.com/KirkDiggler/genesys-dice/internal/handlers/api/v1alpha1"
	"github.com/KirkDiggler/genesys-dice/internal/orchestrators/dice"
	"github.com/KirkDiggler/genesys-dice/internal/pkg/clock"
	"github.com/KirkDiggler/genesys-dice/internal/pkg/idgen"
	"github.com/KirkDiggler/genesys-dice/internal/redis"
	rollsession "github.com/KirkDiggler/genesys-dice/internal/repositories/roll_session"
	"github.com/KirkDiggler/genesys-dice/internal/roller"
)

var (
	grpcPort  int
	redisAddr string
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the gRPC server",
	Long:  `Start the genesys-dice gRPC server. Roll sessions are kept in Redis and saved rolls in a YAML file.`,
	RunE:  runServer,
}

func init() {
	serverCmd.Flags().IntVar(&grpcPort, "port", 50051, "gRPC server port (GENESYS_DICE_GRPC_PORT)")
	serverCmd.Flags().StringVar(&redisAddr, "redis", "localhost:6379", "Redis address (GENESYS_DICE_REDIS_ADDR)")
	addSavedRollsFlag(serverCmd)
}

func runServer(cmd *cobra.Command, _ []string) error {
	if !cmd.Flags().Changed("port") {
		grpcPort = cfg.GRPCPort
	}
	if !cmd.Flags().Changed("redis") {
		redisAddr = cfg.RedisAddr
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		slog.Info("Received shutdown signal, gracefully stopping")
		cancel()
	}()

	redisClient, err := redis.NewClient(redisAddr, &redis.Options{
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	if err != nil {
		return fmt.Errorf("failed to create redis client: %w", err)
	}
	defer func() {
		_ = redisClient.Close() // nolint:errcheck // safe to ignore on shutdown
	}()

	pingCtx, pingCancel := context.WithTimeout(ctx, 5*time.Second)
	defer pingCancel()
	if err := redis.Ping(pingCtx, redisClient); err != nil {
		return err
	}

	rollSessionRepo, err := rollsession.NewRedisRepository(&rollsession.Config{
		Client: redisClient,
		Clock:  clock.New(),
	})
	if err != nil {
		return fmt.Errorf("failed to create roll session repository: %w", err)
	}

	savedRollRepo, err := openSavedRolls(cmd)
	if err != nil {
		return err
	}

	diceService, err := dice.NewOrchestrator(&dice.Config{
		RollSessionRepo:     rollSessionRepo,
		SavedRollRepo:       savedRollRepo,
		Roller:              roller.New(&roller.Config{}),
		IDGenerator:         idgen.NewUUID("roll"),
		Clock:               clock.New(),
		SessionTTL:          cfg.SessionTTL,
		ShowDamageOnFailure: cfg.ShowDamageOnFailure,
	})
	if err != nil {
		return fmt.Errorf("failed to create dice orchestrator: %w", err)
	}

	diceHandler, err := v1alpha1.NewDiceHandler(&v1alpha1.DiceHandlerConfig{
		DiceService: diceService,
	})
	if err != nil {
		return fmt.Errorf("failed to create dice handler: %w", err)
	}

	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", grpcPort))
	if err != nil {
		return fmt.Errorf("failed to listen: %w", err)
	}

	srv := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			grpc_logging.UnaryServerInterceptor(grpc_logging.LoggerFunc(logFunc)),
			grpc_recovery.UnaryServerInterceptor(),
		),
		grpc.ChainStreamInterceptor(
			grpc_logging.StreamServerInterceptor(grpc_logging.LoggerFunc(logFunc)),
			grpc_recovery.StreamServerInterceptor(),
		),
	)

	v1alpha1.RegisterDiceServiceServer(srv, diceHandler)

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(srv, healthServer)

	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus(v1alpha1.ServiceName, grpc_health_v1.HealthCheckResponse_SERVING)

	errChan := make(chan error, 1)
	go func() {
		slog.Info("gRPC server starting", "port", grpcPort, "redis", redisAddr)
		if err := srv.Serve(lis); err != nil {
			errChan <- fmt.Errorf("failed to serve: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		slog.Info("Shutting down gRPC server")
		healthServer.Shutdown()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		stopped := make(chan struct{})
		go func() {
			srv.GracefulStop()
			close(stopped)
		}()

		select {
		case <-shutdownCtx.Done():
			slog.Warn("Graceful shutdown timeout exceeded, forcing stop")
			srv.Stop()
		case <-stopped:
			slog.Info("Server stopped gracefully")
		}

		return nil
	case err := <-errChan:
		return err
	}
}

func logFunc(ctx context.Context, level grpc_logging.Level, msg string, fields ...any) {
	slog.Log(ctx, slog.Level(level), msg, fields...)
}
