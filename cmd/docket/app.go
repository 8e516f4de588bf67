// Package main provides the entry point for the docket CLI.
package main

import (
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"

	"github.com/gorewood/docket/internal/config"
	"github.com/gorewood/docket/internal/document"
	"github.com/gorewood/docket/internal/history"
	"github.com/gorewood/docket/internal/output"
	"github.com/gorewood/docket/internal/settings"
	"github.com/gorewood/docket/internal/vault"
)

// app holds the per-invocation wiring shared by commands: resolved options,
// the loaded settings store and the template library.
type app struct {
	opts    config.Options
	store   *settings.Store
	library *document.Library
	locale  language.Tag
}

// loadApp resolves options from the environment and flags, then loads settings.
// Settings persistence errors propagate unchanged.
func loadApp(cmd *cobra.Command) (*app, error) {
	opts := config.FromEnv()
	if vaultDir := persistentFlag(cmd, "vault"); vaultDir != "" {
		opts.VaultDir = vaultDir
	}
	if settingsPath := persistentFlag(cmd, "settings"); settingsPath != "" {
		opts.SettingsPath = settingsPath
	}

	store := settings.NewStore(settings.NewFilePersister(opts.ResolvedSettingsPath()))
	if _, err := store.Load(cmd.Context()); err != nil {
		return nil, output.NewSystemError(err.Error(), err)
	}

	return &app{
		opts:  opts,
		store: store,
		library: document.NewLibrary(
			filepath.Join(config.VaultDataDir(opts.VaultDir), "templates"),
			config.GlobalTemplatesDir(),
		),
		locale: document.ParseLocale(opts.Locale),
	}, nil
}

// renderer returns a renderer for the configured locale and templates.
func (a *app) renderer() document.Renderer {
	return document.Renderer{Locale: a.locale, Library: a.library}
}

// creator returns the vault documents are created in.
func (a *app) creator(cmd *cobra.Command, overwrite bool) (vault.Creator, error) {
	switch a.opts.Storage {
	case config.StorageLocal:
		return vault.NewLocal(a.opts.VaultDir).WithOverwrite(overwrite), nil
	case config.StorageS3:
		s3Vault, err := vault.NewS3(cmd.Context(), vault.S3Config{
			Bucket: a.opts.S3Bucket,
			Prefix: a.opts.S3Prefix,
			Region: a.opts.S3Region,
		})
		if err != nil {
			return nil, err
		}
		return s3Vault.WithOverwrite(overwrite), nil
	default:
		return nil, output.NewUserError("unknown DOCKET_STORAGE " + a.opts.Storage + " (want local or s3)")
	}
}

// openHistory opens the history database. Returns nil, nil when history is off.
func (a *app) openHistory() (*history.Store, error) {
	if !a.opts.HistoryEnabled() {
		return nil, nil
	}
	store, err := history.Open(a.opts.HistoryPath)
	if err != nil {
		return nil, output.NewSystemError("failed to open history: "+err.Error(), err)
	}
	return store, nil
}

// persistentFlag returns a root persistent flag value, or "".
func persistentFlag(cmd *cobra.Command, name string) string {
	flag := cmd.Root().PersistentFlags().Lookup(name)
	if flag == nil {
		return ""
	}
	return strings.TrimSpace(flag.Value.String())
}

