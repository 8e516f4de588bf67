package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
)

// Storage backends for created documents.
const (
	StorageLocal = "local"
	StorageS3    = "s3"
)

// HistoryOff disables the generation history when set as DOCKET_HISTORY_DB.
const HistoryOff = "off"

// Options holds runtime options resolved from the environment.
// Command-line flags override individual fields after FromEnv.
type Options struct {
	VaultDir     string // directory documents are created in (local storage)
	SettingsPath string // settings file; empty means <vault>/.docket/settings.yaml
	Locale       string // raw locale string, e.g. "en_GB.UTF-8"
	Storage      string // StorageLocal or StorageS3
	S3Bucket     string
	S3Prefix     string
	S3Region     string
	Editor       string // command used to open created documents
	HistoryPath  string // sqlite database path, or HistoryOff
}

// FromEnv reads Options from environment variables.
//
//	DOCKET_VAULT       vault directory (default ".")
//	DOCKET_SETTINGS    settings file path
//	DOCKET_LOCALE      date locale (falls back to LC_ALL, LC_TIME, LANG)
//	DOCKET_STORAGE     "local" (default) or "s3"
//	DOCKET_S3_BUCKET   bucket for s3 storage
//	DOCKET_S3_PREFIX   key prefix for s3 storage
//	AWS_REGION         region for s3 storage
//	DOCKET_EDITOR      editor command (falls back to VISUAL, EDITOR)
//	DOCKET_HISTORY_DB  history database path, or "off"
func FromEnv() Options {
	opts := Options{
		VaultDir:     firstEnv("DOCKET_VAULT"),
		SettingsPath: firstEnv("DOCKET_SETTINGS"),
		Locale:       firstEnv("DOCKET_LOCALE", "LC_ALL", "LC_TIME", "LANG"),
		Storage:      strings.ToLower(firstEnv("DOCKET_STORAGE")),
		S3Bucket:     firstEnv("DOCKET_S3_BUCKET"),
		S3Prefix:     firstEnv("DOCKET_S3_PREFIX"),
		S3Region:     firstEnv("AWS_REGION", "AWS_DEFAULT_REGION"),
		Editor:       firstEnv("DOCKET_EDITOR", "VISUAL", "EDITOR"),
		HistoryPath:  firstEnv("DOCKET_HISTORY_DB"),
	}
	if opts.VaultDir == "" {
		opts.VaultDir = "."
	}
	if opts.Storage == "" {
		opts.Storage = StorageLocal
	}
	if opts.S3Region == "" {
		opts.S3Region = "us-east-1"
	}
	if opts.HistoryPath == "" {
		if dir := Dir(); dir != "" {
			opts.HistoryPath = filepath.Join(dir, "history.db")
		} else {
			opts.HistoryPath = HistoryOff
		}
	}
	return opts
}

// ResolvedSettingsPath returns the settings file to load and save.
func (o Options) ResolvedSettingsPath() string {
	if o.SettingsPath != "" {
		return o.SettingsPath
	}
	return filepath.Join(VaultDataDir(o.VaultDir), "settings.yaml")
}

// HistoryEnabled reports whether generations should be recorded.
func (o Options) HistoryEnabled() bool {
	return o.HistoryPath != "" && o.HistoryPath != HistoryOff
}

// LoadEnvFiles loads env files in priority order. First match for each
// variable wins; variables already set in the environment always win.
//
// Resolution order:
//  1. $CWD/.env.local
//  2. $CWD/.env
//  3. <config dir>/env (global fallback)
func LoadEnvFiles() {
	_ = godotenv.Load(".env.local")
	_ = godotenv.Load(".env")

	if dir := Dir(); dir != "" {
		_ = godotenv.Load(filepath.Join(dir, "env"))
	}
}

func firstEnv(keys ...string) string {
	for _, key := range keys {
		if val := strings.TrimSpace(os.Getenv(key)); val != "" {
			return val
		}
	}
	return ""
}
