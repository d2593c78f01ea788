// Package main - Entry point for the tariff-cost API server
package main

import (
	"flag"
	"fmt"
	"net/http"
	"os"
	"time"

	"go.uber.org/zap"

	"tariff-cost/adapters/csvload"
	"tariff-cost/adapters/interpreter"
	"tariff-cost/api"
	"tariff-cost/core/engine"
	"tariff-cost/core/interpret"
	"tariff-cost/internal/config"
	"tariff-cost/internal/logging"
)

const version = "0.1.0"

func main() {
	cfgPath := flag.String("config", "", "config file path")
	addr := flag.String("addr", "", "listen address (overrides config)")
	dataDir := flag.String("data", "", "tariff dataset directory (overrides config)")
	flag.Parse()

	cfg := config.Get()
	if *cfgPath != "" {
		loaded, err := config.Load(*cfgPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
		cfg = loaded
		config.Set(cfg)
	}
	if *addr != "" {
		cfg.Server.Addr = *addr
	}
	if *dataDir != "" {
		cfg.Data.Directory = *dataDir
	}
	if err := logging.Initialize(cfg.Logging); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logging: %v\n", err)
	}
	defer logging.Sync()

	catalog, err := config.LoadScenarios(cfg.Data.ScenariosFile)
	if err != nil {
		logging.Fatal("load scenario catalog", zap.Error(err))
	}
	store, err := csvload.LoadStore(cfg.Data, catalog)
	if err != nil {
		logging.Fatal("load tariff datasets", zap.Error(err))
	}

	var interp interpret.Interpreter
	if cfg.Interpreter.Endpoint != "" {
		interp = interpreter.NewClient(cfg.Interpreter.Endpoint,
			time.Duration(cfg.Interpreter.TimeoutSeconds)*time.Second)
	} else {
		interp = interpreter.NewHeuristic()
	}

	eng := engine.New(store, catalog, interp)
	server := api.NewServer(eng, store, version)

	logging.Info("tariff-cost server listening",
		zap.String("addr", cfg.Server.Addr),
		zap.String("version", version))
	if err := http.ListenAndServe(cfg.Server.Addr, server); err != nil {
		logging.Fatal("server stopped", zap.Error(err))
	}
}
