// Package config loads telinput.toml.
//
//	[input]
//	default_country = "US"
//	buffer_size = 10
//	empty_digit = "_"
//
//	[display]
//	language = "en"
//
//	[batch]
//	jobs = 4
//
//	[trace]
//	level = "off"
//	mode = "stream"
//	output = "-"
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/BurntSushi/toml"
	"golang.org/x/text/language"

	"telinput/internal/phone"
	"telinput/internal/trace"
)

// FileName is the config file looked up from the working directory upward.
const FileName = "telinput.toml"

// Config is the decoded telinput.toml.
type Config struct {
	Path    string        `toml:"-"` // empty when defaults are used
	Input   InputConfig   `toml:"input"`
	Display DisplayConfig `toml:"display"`
	Batch   BatchConfig   `toml:"batch"`
	Trace   TraceConfig   `toml:"trace"`
}

type InputConfig struct {
	DefaultCountry string `toml:"default_country"`
	BufferSize     int    `toml:"buffer_size"`
	EmptyDigit     string `toml:"empty_digit"`
}

type DisplayConfig struct {
	Language string `toml:"language"`
}

type BatchConfig struct {
	Jobs int `toml:"jobs"`
}

type TraceConfig struct {
	Level  string `toml:"level"`
	Mode   string `toml:"mode"`
	Output string `toml:"output"`
}

// Default returns the settings used without a config file.
func Default() Config {
	return Config{
		Input: InputConfig{
			BufferSize: phone.DefaultBufferSize,
			EmptyDigit: string(phone.Placeholder),
		},
		Display: DisplayConfig{Language: "en"},
		Trace:   TraceConfig{Level: "off", Mode: "stream", Output: "-"},
	}
}

// Find looks for telinput.toml in startDir and its parents.
func Find(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, FileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// Discover loads the config found from startDir, or the defaults.
func Discover(startDir string) (Config, error) {
	path, ok, err := Find(startDir)
	if err != nil {
		return Config{}, err
	}
	if !ok {
		return Default(), nil
	}
	return Load(path)
}

// Load decodes path over the defaults and checks the result.
func Load(path string) (Config, error) {
	cfg := Default()
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("%s: unknown key %s", path, undecoded[0])
	}
	cfg.Path = path
	if err := cfg.validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if s := strings.TrimSpace(c.Input.DefaultCountry); s != "" {
		country, ok := phone.NormalizeCountry(s)
		if !ok {
			return fmt.Errorf("[input].default_country: %q is not a two-letter code", s)
		}
		c.Input.DefaultCountry = string(country)
	}
	if c.Input.BufferSize < 0 {
		return fmt.Errorf("[input].buffer_size must not be negative")
	}
	if utf8.RuneCountInString(c.Input.EmptyDigit) != 1 {
		return fmt.Errorf("[input].empty_digit must be a single character, got %q", c.Input.EmptyDigit)
	}
	if _, err := language.Parse(c.Display.Language); err != nil {
		return fmt.Errorf("[display].language: %w", err)
	}
	if c.Batch.Jobs < 0 {
		return fmt.Errorf("[batch].jobs must not be negative")
	}
	if _, err := trace.ParseLevel(c.Trace.Level); err != nil {
		return fmt.Errorf("[trace].level: %w", err)
	}
	if _, err := trace.ParseMode(c.Trace.Mode); err != nil {
		return fmt.Errorf("[trace].mode: %w", err)
	}
	return nil
}

// DefaultCountry returns [input].default_country.
func (c Config) DefaultCountry() phone.CountryCode {
	return phone.CountryCode(c.Input.DefaultCountry)
}

// EmptyDigit returns the [input].empty_digit rune.
func (c Config) EmptyDigit() rune {
	r, _ := utf8.DecodeRuneInString(c.Input.EmptyDigit)
	if r == utf8.RuneError {
		return phone.Placeholder
	}
	return r
}

// LanguageTag returns [display].language, English when unset or invalid.
func (c Config) LanguageTag() language.Tag {
	tag, err := language.Parse(c.Display.Language)
	if err != nil {
		return language.English
	}
	return tag
}
