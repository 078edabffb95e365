package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"
)

const (
	DirName        = ".notepad"
	FileName       = "config.json"
	DefaultName    = "notepad"
	DefaultDelayMS = 1000
)

// Config holds user settings. Unset fields fall back to Default().
type Config struct {
	Store      string `json:"store,omitempty"`      // "file" (default) | "sqlite"
	StorePath  string `json:"store_path,omitempty"` // defaults under Dir()
	AutosaveMS int    `json:"autosave_ms,omitempty"`
	Filename   string `json:"filename,omitempty"`   // default export name, without .txt
	ExportDir  string `json:"export_dir,omitempty"` // where Save writes <filename>.txt
	Theme      string `json:"theme,omitempty"`      // "light" | "dark"
	Fullscreen bool   `json:"fullscreen,omitempty"`
	NoMouse    bool   `json:"no_mouse,omitempty"`
	LogFile    string `json:"log_file,omitempty"`
}

// Dir is the per-user state directory.
func Dir() string {
	if h, err := os.UserHomeDir(); err == nil && h != "" {
		return filepath.Join(h, DirName)
	}
	return filepath.Join(".", DirName)
}

// Path is the default config file location.
func Path() string { return filepath.Join(Dir(), FileName) }

func Default() Config {
	return Config{
		Store:      "file",
		AutosaveMS: DefaultDelayMS,
		Filename:   DefaultName,
		ExportDir:  ".",
		Theme:      "light",
	}
}

// Load reads path and fills missing fields with defaults. A missing file is
// not an error.
func Load(path string) (Config, error) {
	c := Default()
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return c, nil
	}
	if err != nil {
		return c, fmt.Errorf("read config: %w", err)
	}
	var fileCfg Config
	if err := json.Unmarshal(data, &fileCfg); err != nil {
		return c, fmt.Errorf("parse config JSON: %w", err)
	}
	c.Merge(fileCfg)
	if err := c.Validate(); err != nil {
		return Default(), err
	}
	return c, nil
}

// Merge overlays the non-zero fields of o onto c.
func (c *Config) Merge(o Config) {
	if o.Store != "" {
		c.Store = o.Store
	}
	if o.StorePath != "" {
		c.StorePath = o.StorePath
	}
	if o.AutosaveMS != 0 {
		c.AutosaveMS = o.AutosaveMS
	}
	if strings.TrimSpace(o.Filename) != "" {
		c.Filename = o.Filename
	}
	if o.ExportDir != "" {
		c.ExportDir = o.ExportDir
	}
	if o.Theme != "" {
		c.Theme = o.Theme
	}
	if o.LogFile != "" {
		c.LogFile = o.LogFile
	}
	c.Fullscreen = c.Fullscreen || o.Fullscreen
	c.NoMouse = c.NoMouse || o.NoMouse
}

func (c Config) Validate() error {
	switch c.Store {
	case "file", "sqlite":
	default:
		return fmt.Errorf("config: store must be file or sqlite, got %q", c.Store)
	}
	switch c.Theme {
	case "light", "dark":
	default:
		return fmt.Errorf("config: theme must be light or dark, got %q", c.Theme)
	}
	if c.AutosaveMS < 0 {
		return fmt.Errorf("config: autosave_ms must be positive, got %d", c.AutosaveMS)
	}
	return nil
}

// AutosaveDelay is the debounce window before an automatic write.
func (c Config) AutosaveDelay() time.Duration {
	if c.AutosaveMS <= 0 {
		return DefaultDelayMS * time.Millisecond
	}
	return time.Duration(c.AutosaveMS) * time.Millisecond
}

// ResolvedStorePath returns StorePath or the backend default under Dir().
func (c Config) ResolvedStorePath() string {
	if c.StorePath != "" {
		return expandPath(c.StorePath)
	}
	if c.Store == "sqlite" {
		return filepath.Join(Dir(), "notepad.db")
	}
	return filepath.Join(Dir(), "store.json")
}

func Save(path string, c Config) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "" {
		_ = os.MkdirAll(dir, 0o755)
	}
	return os.WriteFile(path, data, 0644)
}

func expandPath(p string) string {
	p = strings.TrimSpace(p)
	if strings.HasPrefix(p, "~/") {
		if h, err := os.UserHomeDir(); err == nil {
			p = filepath.Join(h, p[2:])
		}
	}
	return os.ExpandEnv(p)
}
