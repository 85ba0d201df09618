// Package config reads runtime settings from the environment, after loading
// any .env file found in the working directory.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"unicode/utf8"

	"github.com/joho/godotenv"
)

const (
	EnvDB           = "EARTHMOVE_DB"
	EnvLogUseCases  = "EARTHMOVE_LOG_USECASES"
	EnvCSVDelimiter = "EARTHMOVE_CSV_DELIMITER"

	DefaultDelimiter = ';'
)

// Config holds runtime settings.
type Config struct {
	DBPath      string
	LogUseCases bool
	Delimiter   rune
}

// Load applies the given .env files (".env" when none are named) and then
// reads the environment. Variables already set in the process win over the
// files, and missing files are ignored.
func Load(envFiles ...string) (Config, error) {
	if err := godotenv.Load(envFiles...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("loading env file: %w", err)
	}

	cfg := Config{Delimiter: DefaultDelimiter}

	cfg.DBPath = os.Getenv(EnvDB)
	if cfg.DBPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return Config{}, fmt.Errorf("finding home directory: %w", err)
		}
		cfg.DBPath = filepath.Join(home, ".earthmove", "earthmove.db")
	}

	if v := os.Getenv(EnvLogUseCases); v != "" {
		cfg.LogUseCases, _ = strconv.ParseBool(v)
	}

	if v := os.Getenv(EnvCSVDelimiter); v != "" {
		d, err := parseDelimiter(v)
		if err != nil {
			return Config{}, err
		}
		cfg.Delimiter = d
	}
	return cfg, nil
}

func parseDelimiter(v string) (rune, error) {
	if v == `\t` {
		return '\t', nil
	}
	r, size := utf8.DecodeRuneInString(v)
	if size != len(v) || r == utf8.RuneError || r == '"' || r == '\r' || r == '\n' {
		return 0, fmt.Errorf("%s: invalid delimiter %q", EnvCSVDelimiter, v)
	}
	return r, nil
}
