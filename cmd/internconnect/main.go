package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"internconnect/internal/commands"
	"internconnect/internal/config"
)

const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

func main() {
	// Create config directory if it doesn't exist
	configDir, err := config.GetGlobalConfigDir()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error getting home directory: %v\n", err)
		os.Exit(1)
	}

	if err := os.MkdirAll(configDir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "Error creating config directory: %v\n", err)
		os.Exit(1)
	}

	// Load config
	configPath := filepath.Join(configDir, "config.json")
	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		// Continue with defaults; `config set` rewrites the file
		cfg = &config.Config{Env: envLocal}
	}

	// The UI owns the terminal, so logs go to a file
	logFile, err := os.OpenFile(cfg.ResolvedLogPath(configDir), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	var logOut io.Writer = io.Discard
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening log file: %v\n", err)
	} else {
		defer logFile.Close()
		logOut = logFile
	}

	log := setupLogger(cfg.Env, logOut)
	log.Debug("starting internconnect",
		slog.String("env", cfg.Env),
		slog.String("config", configPath))

	// Execute root command
	if err := commands.Execute(cfg, configPath, log); err != nil {
		log.Error("command failed", slog.String("error", err.Error()))
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		logFile.Close()
		os.Exit(1)
	}
}

// setupLogger returns a *slog.Logger configured for the given environment
func setupLogger(env string, w io.Writer) *slog.Logger {
	switch env {
	case envProd:
		return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: slog.LevelInfo}))
	case envDev:
		return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
	default:
		return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
}
