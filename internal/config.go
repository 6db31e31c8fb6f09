package internal

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Log level names accepted in the config file.
const (
	LogLevelDebug = "debug"
	LogLevelInfo  = "info"
	LogLevelWarn  = "warn"
	LogLevelError = "error"
)

// DefaultBaseDirName is the directory created under $HOME when no base
// directory is configured.
const DefaultBaseDirName = ".nt"

// Config represents the application configuration.
type Config struct {
	App   ApplicationConfig `yaml:"app"`
	Notes NotesConfig       `yaml:"notes"`
	Tools ToolsConfig       `yaml:"tools"`
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if err := c.App.Validate(); err != nil {
		return err
	}
	return c.Notes.Validate()
}

// ApplicationConfig holds application-level configuration.
type ApplicationConfig struct {
	LogLevel string `yaml:"log_level"`
}

// Validate validates the application configuration.
func (c *ApplicationConfig) Validate() error {
	// Normalise an absent level to the default so hand-written files can
	// omit it.
	if c.LogLevel == "" {
		c.LogLevel = LogLevelWarn
	}
	return validation.ValidateStruct(c,
		validation.Field(&c.LogLevel, validation.Required,
			validation.In(LogLevelDebug, LogLevelInfo, LogLevelWarn, LogLevelError)),
	)
}

// Level maps the configured level name to a slog.Level.
func (c *ApplicationConfig) Level() slog.Level {
	switch c.LogLevel {
	case LogLevelDebug:
		return slog.LevelDebug
	case LogLevelInfo:
		return slog.LevelInfo
	case LogLevelError:
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

// NotesConfig holds the location of the note base directory.
type NotesConfig struct {
	Dir string `yaml:"dir"`
}

// Validate validates the notes configuration.
func (c *NotesConfig) Validate() error {
	c.Dir = expandHome(c.Dir)
	return validation.ValidateStruct(c,
		validation.Field(&c.Dir, validation.Required),
	)
}

// ToolsConfig wires the external programs nt delegates to. Command strings
// may carry arguments; they are split on whitespace at invocation time.
type ToolsConfig struct {
	Chooser  ChooserConfig  `yaml:"chooser"`
	Renderer RendererConfig `yaml:"renderer"`
	Editor   EditorConfig   `yaml:"editor"`
}

// ChooserConfig controls interactive note selection.
//
// Enabled turns `nt list` into a chooser session. Command names an external
// single-choice program (fzf style); when empty the built-in picker runs
// instead.
type ChooserConfig struct {
	Enabled bool   `yaml:"enabled"`
	Command string `yaml:"command"`
}

// RendererConfig controls how `nt view` displays a note. When enabled with
// no command, the built-in markdown renderer writes to stdout.
type RendererConfig struct {
	Enabled bool   `yaml:"enabled"`
	Command string `yaml:"command"`
}

// EditorConfig names the editor consulted when $EDITOR is unset.
type EditorConfig struct {
	Command string `yaml:"command"`
}

// NewDefaultConfig returns a new Config with sensible default values:
// notes under ~/.nt, plain listings, built-in rendering.
func NewDefaultConfig() *Config {
	home, _ := os.UserHomeDir()
	return &Config{
		App: ApplicationConfig{
			LogLevel: LogLevelWarn,
		},
		Notes: NotesConfig{
			Dir: filepath.Join(home, DefaultBaseDirName),
		},
		Tools: ToolsConfig{
			Renderer: RendererConfig{Enabled: true},
		},
	}
}

// DefaultConfigPath returns the default config file location, honouring
// XDG_CONFIG_HOME.
func DefaultConfigPath() string {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, _ := os.UserHomeDir()
		base = filepath.Join(home, ".config")
	}
	return filepath.Join(base, "nt", "config.yaml")
}

// expandHome rewrites a leading ~ to the user's home directory.
func expandHome(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, strings.TrimPrefix(path[1:], "/"))
		}
	}
	return path
}
