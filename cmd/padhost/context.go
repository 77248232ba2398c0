package main

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"padhost/internal/config"
	"padhost/internal/deviceopts"
	"padhost/internal/logging"
	"padhost/internal/profile"
)

type commandContext struct {
	configFlag  *string
	profileFlag *string
	verboseFlag *bool

	configOnce   sync.Once
	config       *config.Config
	configPath   string
	configExists bool
	configErr    error

	loggerOnce sync.Once
	logger     *slog.Logger
}

func newCommandContext(configFlag, profileFlag *string, verboseFlag *bool) *commandContext {
	return &commandContext{
		configFlag:  configFlag,
		profileFlag: profileFlag,
		verboseFlag: verboseFlag,
	}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, resolved, exists, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		c.configPath = resolved
		c.configExists = exists
		if c.profileFlag != nil && strings.TrimSpace(*c.profileFlag) != "" {
			override, err := config.ExpandPath(strings.TrimSpace(*c.profileFlag))
			if err != nil {
				c.configErr = fmt.Errorf("resolve profile path: %w", err)
				return
			}
			cfg.Paths.ProfilePath = override
		}
		if err := cfg.EnsureDirectories(); err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

func (c *commandContext) verbose() bool {
	return c.verboseFlag != nil && *c.verboseFlag
}

func (c *commandContext) ensureLogger() *slog.Logger {
	c.loggerOnce.Do(func() {
		cfg, _ := c.ensureConfig()
		logger, err := logging.NewFromConfig(cfg, c.verbose())
		if err != nil {
			logger = logging.NewNop()
		}
		c.logger = logger
	})
	return c.logger
}

// withOptions opens and locks the profile, loads every family's options and
// hands both to fn. The lock is released when fn returns.
func (c *commandContext) withOptions(fn func(*profile.Store, *deviceopts.DeviceOptions) error) error {
	cfg, err := c.ensureConfig()
	if err != nil {
		return err
	}
	logger := c.ensureLogger()

	store, err := profile.Open(cfg.Paths.ProfilePath, logger, profile.WithBackup(cfg.Profile.BackupOnSave))
	if err != nil {
		if errors.Is(err, profile.ErrLocked) {
			return fmt.Errorf("open profile %s: another padhost process is editing it", cfg.Paths.ProfilePath)
		}
		return fmt.Errorf("open profile: %w", err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			logger.Warn("failed to release profile lock", logging.Error(err))
		}
	}()

	opts := deviceopts.New(logger)
	opts.VerboseLogMessages = c.verbose()
	store.Load(opts)
	return fn(store, opts)
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}

func yesNo(value bool) string {
	if value {
		return "yes"
	}
	return "no"
}
