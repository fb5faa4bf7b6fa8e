// Package config handles configuration loading and management
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Viewport is a named browser viewport preset.
type Viewport struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// Config holds the immutable run configuration. It is built once by Load and
// passed by value into the lifecycle manager, scenario runner and scorer.
type Config struct {
	BaseURL      string
	StartCommand []string
	DemoEmail    string
	DemoPassword string

	Timeout         time.Duration // element waits
	LongTimeout     time.Duration // full page readiness
	HealthTimeout   time.Duration // per health-check attempt
	StartupAttempts int           // readiness polls, one per second
	StartupGrace    time.Duration // wait after first healthy response
	ShutdownWait    time.Duration // graceful terminate before kill
	SettleDelay     time.Duration // layout settle after viewport resize

	MinLoadTime float64 // seconds; pages slower than this are penalized

	Mobile  Viewport
	Tablet  Viewport
	Desktop Viewport

	OutputDir string
}

// fileConfig is the optional uxaudit.yaml overlay. Zero values leave the
// env-derived defaults untouched.
type fileConfig struct {
	BaseURL         string   `yaml:"base_url"`
	StartCommand    []string `yaml:"start_command"`
	MinLoadTime     float64  `yaml:"min_load_time"`
	StartupAttempts int      `yaml:"startup_attempts"`
	OutputDir       string   `yaml:"output_dir"`
	Mobile          Viewport `yaml:"mobile"`
	Tablet          Viewport `yaml:"tablet"`
	Desktop         Viewport `yaml:"desktop"`
}

// Load reads configuration from environment variables, the .env file and the
// optional uxaudit.yaml overlay (path overridable via UXAUDIT_CONFIG).
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil {
		// It's okay if the file doesn't exist
		if !os.IsNotExist(err) {
			return Config{}, fmt.Errorf("error loading .env file: %w", err)
		}
	}

	cfg := Config{
		BaseURL:         getEnv("APP_URL", "http://localhost:5000"),
		StartCommand:    strings.Fields(getEnv("START_COMMAND", "npm run demo")),
		DemoEmail:       getEnv("DEMO_EMAIL", "admin@example.com"),
		DemoPassword:    getEnv("DEMO_PASSWORD", "Admin1234"),
		Timeout:         10 * time.Second,
		LongTimeout:     30 * time.Second,
		HealthTimeout:   5 * time.Second,
		StartupGrace:    2 * time.Second,
		ShutdownWait:    10 * time.Second,
		SettleDelay:     time.Second,
		Mobile:          Viewport{Width: 375, Height: 800},
		Tablet:          Viewport{Width: 768, Height: 1024},
		Desktop:         Viewport{Width: 1920, Height: 1080},
		OutputDir:       getEnv("UXAUDIT_OUTPUT_DIR", "."),
	}

	attempts, err := strconv.Atoi(getEnv("STARTUP_ATTEMPTS", "60"))
	if err != nil {
		return Config{}, fmt.Errorf("invalid STARTUP_ATTEMPTS: %w", err)
	}
	cfg.StartupAttempts = attempts

	minLoad, err := strconv.ParseFloat(getEnv("MIN_LOAD_TIME", "2.0"), 64)
	if err != nil {
		return Config{}, fmt.Errorf("invalid MIN_LOAD_TIME: %w", err)
	}
	cfg.MinLoadTime = minLoad

	if err := applyFile(&cfg, getEnv("UXAUDIT_CONFIG", "uxaudit.yaml")); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// applyFile overlays the YAML config file onto cfg. A missing file is fine;
// a malformed one is an error.
func applyFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path) //nolint:gosec // config path from env is trusted
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("reading config file %s: %w", path, err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("parsing config file %s: %w", path, err)
	}

	if fc.BaseURL != "" {
		cfg.BaseURL = fc.BaseURL
	}
	if len(fc.StartCommand) > 0 {
		cfg.StartCommand = fc.StartCommand
	}
	if fc.MinLoadTime > 0 {
		cfg.MinLoadTime = fc.MinLoadTime
	}
	if fc.StartupAttempts > 0 {
		cfg.StartupAttempts = fc.StartupAttempts
	}
	if fc.OutputDir != "" {
		cfg.OutputDir = fc.OutputDir
	}
	if fc.Mobile.Width > 0 {
		cfg.Mobile = fc.Mobile
	}
	if fc.Tablet.Width > 0 {
		cfg.Tablet = fc.Tablet
	}
	if fc.Desktop.Width > 0 {
		cfg.Desktop = fc.Desktop
	}

	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func (c Config) String() string {
	return fmt.Sprintf(`Current Configuration:
======================
Application URL:   %s
Start Command:     %s
Startup Attempts:  %d
Element Timeout:   %s
Page Timeout:      %s
Min Load Time:     %.1fs
Viewports:         mobile %dx%d, tablet %dx%d, desktop %dx%d
Output Directory:  %s`,
		c.BaseURL,
		strings.Join(c.StartCommand, " "),
		c.StartupAttempts,
		c.Timeout,
		c.LongTimeout,
		c.MinLoadTime,
		c.Mobile.Width, c.Mobile.Height,
		c.Tablet.Width, c.Tablet.Height,
		c.Desktop.Width, c.Desktop.Height,
		c.OutputDir,
	)
}
