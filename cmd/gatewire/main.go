// Command gatewire runs the multi-version Minecraft proxy: it terminates
// the legacy client protocol on one side and speaks the canonical backend
// protocol on the other.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"gatewire/internal/config"
	"gatewire/internal/proxy"
)

const serverVersion = "0.3.1"

func main() {
	var (
		configPath  = flag.String("config", "gatewire.yaml", "path to the configuration file")
		showVersion = flag.Bool("version", false, "print the version and exit")
	)
	flag.Parse()

	if *showVersion {
		fmt.Printf("Gatewire v%s\n", serverVersion)
		return
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			cfg = config.Default()
		} else {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}

	log, err := buildLogger(cfg.LogLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer log.Sync()

	srv, err := proxy.NewServer(cfg, log)
	if err != nil {
		log.Fatal("startup failed", zap.Error(err))
	}

	go func() {
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
		<-sig
		log.Info("shutting down")
		srv.Shutdown()
	}()

	if err := srv.Run(); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}

func buildLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.Encoding = "console"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	return cfg.Build()
}
