package cmd

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/gravitrone/cardgraph/internal/authoring"
	"github.com/gravitrone/cardgraph/internal/config"
	"github.com/gravitrone/cardgraph/internal/logging"
	"github.com/gravitrone/cardgraph/internal/storage"
)

// BindFlags registers the persistent flags every command understands.
// Their names match the keys config.Load maps onto the config file.
func BindFlags(root *cobra.Command) {
	f := root.PersistentFlags()
	f.String("db", "", "path to the card database")
	f.String("log-level", "", "log level (debug, info, warn, error)")
	f.String("log-file", "", "path to the log file")
	f.String("gemini-model", "", "Gemini model used for answer suggestions")
	f.String("theme", "", "color theme (dark, light)")
}

// Env is the opened state a command runs against.
type Env struct {
	Config *config.Config
	Store  *storage.Store
	Log    *slog.Logger

	logFile io.Closer
}

// Open loads the config with fs layered on top, sets up logging and opens
// the database. The caller must Close the result.
func Open(fs *pflag.FlagSet) (*Env, error) {
	cfg, err := config.Load(fs)
	if err != nil {
		return nil, err
	}
	log, logFile, err := logging.Setup(cfg.LogLevel, cfg.LogPath)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(cfg.DBPath), 0700); err != nil {
		logFile.Close()
		return nil, fmt.Errorf("create database dir: %w", err)
	}
	store, err := storage.Open(cfg.DBPath)
	if err != nil {
		log.Error("open database failed", "path", cfg.DBPath, "error", err)
		logFile.Close()
		return nil, err
	}
	log.Debug("database opened", "path", cfg.DBPath)
	return &Env{Config: cfg, Store: store, Log: log, logFile: logFile}, nil
}

// Writer returns a card writer over the env's store.
func (e *Env) Writer() *authoring.Writer {
	return authoring.NewWriter(e.Store, e.Log)
}

// Close releases the database and the log file.
func (e *Env) Close() error {
	return errors.Join(e.Store.Close(), e.logFile.Close())
}

// withEnv opens an Env from the command's flags around fn.
func withEnv(cmd *cobra.Command, fn func(*Env) error) error {
	env, err := Open(cmd.Flags())
	if err != nil {
		return err
	}
	defer env.Close()
	return fn(env)
}
