// Package server wires the zkauth server together: it builds the group and
// proof engine from configuration, starts the gRPC endpoint and the expired
// challenge sweeper, and shuts both down on SIGINT, SIGTERM or SIGQUIT.
package server

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dmitrijs2005/zkauth/internal/common"
	"github.com/dmitrijs2005/zkauth/internal/logging"
	"github.com/dmitrijs2005/zkauth/internal/server/challenges"
	"github.com/dmitrijs2005/zkauth/internal/server/config"
	"github.com/dmitrijs2005/zkauth/internal/server/registrations"
	"github.com/dmitrijs2005/zkauth/internal/server/services"
	"github.com/dmitrijs2005/zkauth/internal/zkp"
	"golang.org/x/sync/errgroup"

	gs "github.com/dmitrijs2005/zkauth/internal/server/grpc"
)

type App struct {
	config      *config.Config
	logger      logging.Logger
	authService *services.AuthService
}

func NewApp(c *config.Config) (*App, error) {
	level, err := logging.ParseLevel(c.LogLevel)
	if err != nil {
		return nil, err
	}
	logger := logging.NewJSONLogger(os.Stdout, level)
	return newApp(c, logger)
}

func newApp(c *config.Config, logger logging.Logger) (*App, error) {
	ctx := context.Background()

	group, err := loadGroup(c)
	if err != nil {
		return nil, fmt.Errorf("group init error: %w", err)
	}

	if c.SecretKey == "" {
		key, err := common.MakeRandHexString(32)
		if err != nil {
			return nil, fmt.Errorf("secret key init error: %w", err)
		}
		c.SecretKey = key
		logger.Warn(ctx, "No secret key configured, session tokens will not survive a restart")
	}

	as := services.NewAuthService(
		zkp.NewEngine(group),
		zkp.NewCryptoSource(),
		registrations.NewInMemoryRepository(),
		challenges.NewInMemoryRepository(),
		logger,
		c,
	)

	return &App{config: c, logger: logger, authService: as}, nil
}

func loadGroup(c *config.Config) (*zkp.Group, error) {
	if !c.HasCustomGroup() {
		return zkp.DefaultGroup()
	}
	return zkp.ParseGroup(c.GroupModulus, c.GroupOrder, c.GroupGeneratorA, c.GroupGeneratorB)
}

func (app *App) initSignalHandler(ctx context.Context, cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		defer signal.Stop(sigs)
		select {
		case <-sigs:
			cancelFunc()
		case <-ctx.Done():
		}
	}()
}

// sweepChallenges purges expired challenges every ChallengeSweepInterval
// until ctx is done. It returns at once when expiry is disabled.
func (app *App) sweepChallenges(ctx context.Context) error {
	ttl, interval := app.config.ChallengeTTL, app.config.ChallengeSweepInterval
	if ttl <= 0 || interval <= 0 {
		return nil
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			n, err := app.authService.PurgeExpiredChallenges(ctx, ttl)
			if err != nil {
				app.logger.Error(ctx, "challenge sweep failed", "error", err.Error())
				continue
			}
			if n > 0 {
				app.logger.Debug(ctx, "expired challenges purged", "count", n)
			}
		}
	}
}

// Run serves until ctx is cancelled or a termination signal arrives.
func (app *App) Run(ctx context.Context) error {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(ctx, cancelFunc)

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		s := gs.NewGRPCServer(app.config.EndpointAddrGRPC, app.logger, app.authService)
		return s.Run(ctx)
	})

	g.Go(func() error {
		return app.sweepChallenges(ctx)
	})

	err := g.Wait()
	app.logger.Info(context.Background(), "App stopped")
	return err
}
