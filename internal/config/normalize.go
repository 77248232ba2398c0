package config

import (
	"fmt"
	"os"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	var err error
	c.Paths.ProfilePath = strings.TrimSpace(c.Paths.ProfilePath)
	if c.Paths.ProfilePath == "" {
		if value, ok := os.LookupEnv("PADHOST_PROFILE"); ok && strings.TrimSpace(value) != "" {
			c.Paths.ProfilePath = strings.TrimSpace(value)
		} else {
			c.Paths.ProfilePath = defaultProfilePath
		}
	}
	if c.Paths.ProfilePath, err = expandPath(c.Paths.ProfilePath); err != nil {
		return fmt.Errorf("paths.profile_path: %w", err)
	}
	c.Paths.LogDir = strings.TrimSpace(c.Paths.LogDir)
	if c.Paths.LogDir, err = expandPath(c.Paths.LogDir); err != nil {
		return fmt.Errorf("paths.log_dir: %w", err)
	}
	return nil
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	switch c.Logging.Format {
	case "", "console":
		c.Logging.Format = "console"
	case "json":
	default:
		c.Logging.Format = "console"
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
