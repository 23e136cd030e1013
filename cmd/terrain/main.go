// Package main is the entry point for the interactive terrain viewer.
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/wireterrain/internal/app"
	"github.com/Faultbox/wireterrain/internal/config"
	"github.com/Faultbox/wireterrain/internal/logger"
	"github.com/Faultbox/wireterrain/internal/sketch"
)

func main() {
	// Parse CLI flags first
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("=== wireterrain ===")
	logger.Sugar.Debugf("Config: %+v", cfg)

	a, err := app.New(cfg, sketch.New(cfg))
	if err != nil {
		logger.Error("failed to create app", zap.Error(err))
		os.Exit(1)
	}
	defer a.Close()

	if err := a.Run(); err != nil {
		logger.Error("render loop error", zap.Error(err))
		os.Exit(1)
	}

	logger.Info("closed normally")
}
