package main

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"pkg.overseer.run/overseer/internal/api"
	"pkg.overseer.run/overseer/internal/config"
	"pkg.overseer.run/overseer/internal/discord"
	"pkg.overseer.run/overseer/internal/storage"
)

type app struct {
	ctx    context.Context
	cancel context.CancelFunc

	logConf zap.Config
	logger  *zap.Logger

	config *config.Config

	storage *storage.Storage
	discord *discord.Discord
	api     *api.API
}

func newApp(ctx context.Context, lcf zap.Config, log *zap.Logger) (*app, error) {
	ctx, cancel := context.WithCancel(ctx)
	a := &app{ctx: ctx, cancel: cancel, logConf: lcf, logger: log}
	var err error

	log.Debug("Loading configuration.")
	a.config, err = config.Read()
	if err != nil {
		return nil, fmt.Errorf("couldn't load configuration: %w", err)
	}

	log.Debug("Successfully loaded configuration (also switching log level.)")
	lcf.Level.SetLevel(a.config.Logging.Level)

	log.Debug("Initializing Storage struct.")
	a.storage = storage.NewStorage(ctx, log)

	log.Debug("Initializing Discord struct.")
	a.discord, err = discord.NewDiscord(ctx, log, a.config, storage.NewPins(a.storage), a.cancel)
	if err != nil {
		return nil, fmt.Errorf("couldn't initialize Discord struct: %w", err)
	}

	if a.config.Api.Port != 0 {
		log.Debug("Initializing API struct.")
		a.api = api.NewAPI(ctx, log, a.discord, storage.NewPins(a.storage), api.NewConfig(a.config.Api.Port))
	}

	return a, nil
}

func (a *app) Run() error {
	a.logger.Debug("Connecting to PostgreSQL storage.")
	if err := a.storage.Connect(a.config.Database.ConnectionString, a.config.Database.DatabaseName); err != nil {
		return fmt.Errorf("couldn't connect to storage: %w", err)
	}
	defer func() {
		a.logger.Debug("Closing PostgreSQL storage.")
		if err := a.storage.Close(); err != nil {
			a.logger.Sugar().Errorf("Couldn't close storage: %s.", err)
		}
	}()

	a.logger.Debug("Preparing storage schema.")
	if err := a.storage.Init(); err != nil {
		return fmt.Errorf("couldn't prepare storage schema: %w", err)
	}

	a.logger.Debug("Connecting to Discord API gateway.")
	if err := a.discord.Connect(); err != nil {
		return fmt.Errorf("couldn't connect to Discord: %w", err)
	}
	defer func() {
		a.logger.Debug("Closing connection with Discord API gateway.")
		if err := a.discord.Close(); err != nil {
			a.logger.Sugar().Errorf("Couldn't close Discord: %s.", err)
		}
	}()

	if a.api != nil {
		a.logger.Debug("Starting diagnostic API.")
		a.api.Listen()
		defer func() {
			if err := a.api.Close(); err != nil {
				a.logger.Sugar().Errorf("Couldn't close API: %s.", err)
			}
		}()
	}

	a.logger.Info("Launch complete. Send SIGINT to gracefully terminate.")
	<-a.ctx.Done()
	a.logger.Info("Terminating.")

	return a.ctx.Err()
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, os.Kill)
	defer cancel()

	rand.Seed(time.Now().UnixNano())

	lcf := zap.NewDevelopmentConfig() // to later switch level without reallocation
	lcf.Level.SetLevel(zapcore.DebugLevel)
	lcf.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	lcf.DisableCaller = true
	log, _ := lcf.Build()

	log.Info("Initializing application.")
	a, err := newApp(ctx, lcf, log)
	if err != nil {
		if !errors.Is(err, context.Canceled) {
			log.Sugar().Fatalf("Couldn't initialize application: %s.", err)
		}

		return
	}

	log.Debug("Initialization tasks complete, continuing with launch.")
	if err := a.Run(); err != nil {
		if !errors.Is(err, context.Canceled) {
			log.Sugar().Fatalf("Application crashed: %s.", err)
		}
	}
}
