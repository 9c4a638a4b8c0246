package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Config struct {
	Port uint16
}

func NewConfig(port uint16) *Config {
	return &Config{Port: port}
}

// Bot is the view of the running bot the diagnostic endpoint exposes.
type Bot interface {
	Uptime() time.Duration
	GuildCount() int
}

// PinCounter reports the pin-record total from storage.
type PinCounter interface {
	Count(ctx context.Context) (int64, error)
}

// API serves the diagnostic HTTP endpoint.
type API struct {
	ctx    context.Context
	logger *zap.SugaredLogger
	bot    Bot
	pins   PinCounter
	router *gin.Engine
	serv   *http.Server
}

func NewAPI(ctx context.Context, log *zap.Logger, bot Bot, pins PinCounter, config *Config) *API {
	a := &API{
		ctx:    ctx,
		logger: log.Sugar(),
		bot:    bot,
		pins:   pins,
		router: gin.New(),
	}
	a.serv = &http.Server{Addr: fmt.Sprintf(":%d", config.Port), Handler: a.router}
	return a
}

func (a *API) Listen() {
	a.registerStatus()
	go func() {
		if err := a.serv.ListenAndServe(); err != nil {
			if !errors.Is(err, http.ErrServerClosed) {
				a.logger.Errorf("Server returned with error: %s.", err)
			}
		}
	}()
}

func (a *API) Close() error {
	return a.serv.Close()
}
