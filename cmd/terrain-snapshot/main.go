// Package main renders one terrain frame to a PNG or SVG file without
// opening a window.
package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/wireterrain/internal/config"
	"github.com/Faultbox/wireterrain/internal/engine/camera"
	"github.com/Faultbox/wireterrain/internal/export"
	"github.com/Faultbox/wireterrain/internal/logger"
	"github.com/Faultbox/wireterrain/internal/sketch"
)

var (
	flagElapsed    = flag.Duration("t", -1, "Elapsed time of the frame (default: snapshot.elapsed)")
	flagFormat     = flag.String("format", "", "Output format, png or svg (default: snapshot.format)")
	flagOut        = flag.String("out", "", "Output directory (default: snapshot.output_dir)")
	flagDumpConfig = flag.String("dump-config", "", "Write the effective config to this path and exit")
)

func main() {
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

	if *flagDumpConfig != "" {
		if err := cfg.SaveTo(*flagDumpConfig); err != nil {
			logger.Fatal("failed to write config", zap.Error(err))
		}
		logger.Info("config written", zap.String("path", *flagDumpConfig))
		return
	}

	if *flagElapsed >= 0 {
		cfg.Snapshot.Elapsed = *flagElapsed
	}
	if *flagFormat != "" {
		cfg.Snapshot.Format = *flagFormat
	}
	if *flagOut != "" {
		cfg.Snapshot.OutputDir = *flagOut
	}

	format, err := export.ParseFormat(cfg.Snapshot.Format)
	if err != nil {
		logger.Fatal("bad format", zap.Error(err))
	}

	sk := sketch.New(cfg)
	opts := export.Options{
		Format:  format,
		Width:   cfg.Graphics.Width,
		Height:  cfg.Graphics.Height,
		Elapsed: cfg.Snapshot.Elapsed,
		Camera:  camera.FromConfig(cfg, cfg.Graphics.Width, cfg.Graphics.Height),
	}

	path, res, err := export.SnapshotFile(sk, opts, cfg.Snapshot.OutputDir)
	if err != nil {
		logger.Fatal("snapshot failed", zap.Error(err))
	}

	fields := []zap.Field{
		zap.String("path", path),
		zap.Int("edges", res.Edges),
		zap.Int("culled", res.Culled),
	}
	if stats, err := sk.Stats(); err == nil {
		fields = append(fields,
			zap.Float64("height_min", stats.Min),
			zap.Float64("height_max", stats.Max),
			zap.Float64("height_mean", stats.Mean),
		)
	}
	logger.Info("snapshot written", fields...)
}
