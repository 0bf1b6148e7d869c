package commands

import (
	"fmt"
	"path/filepath"

	"github.com/simonhull/wren/pkg/catalog"
	"github.com/simonhull/wren/pkg/config"
	"github.com/simonhull/wren/pkg/definition"
	"github.com/simonhull/wren/pkg/logger"
	"github.com/simonhull/wren/pkg/output"
	"github.com/spf13/cobra"
)

// settings is the resolved configuration for one command invocation.
type settings struct {
	cfg        *config.Config
	log        logger.Logger
	definition string // definition path, empty for the built-in one
}

// source names the definition in messages.
func (s *settings) source() string {
	if s.definition == "" {
		return definition.DefaultSource
	}
	return s.definition
}

// baseDir is the directory references are resolved against.
func (s *settings) baseDir() string {
	if s.definition == "" {
		return "."
	}
	return filepath.Dir(s.definition)
}

// loadSettings reads config and persistent flags. Flags win over config,
// config wins over defaults.
func loadSettings(cmd *cobra.Command) (*settings, error) {
	configPath, _ := cmd.Flags().GetString("config")
	verbose, _ := cmd.Flags().GetBool("verbose")
	defPath, _ := cmd.Flags().GetString("definition")

	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	level, err := logger.ParseLevel(cfg.Log.Level)
	if err != nil {
		return nil, fmt.Errorf("log.level: %w", err)
	}
	if verbose {
		level = logger.LevelDebug
	}
	output.SetVerbose(verbose)

	log := logger.NewLogger(level, cmd.ErrOrStderr())
	logger.SetDefault(log)

	if defPath == "" {
		defPath = cfg.Definition
	}
	if cfg.Source != "" {
		log.Debug("loaded config", logger.F("file", cfg.Source))
	}

	return &settings{cfg: cfg, log: log, definition: defPath}, nil
}

// loadDefinition parses the configured definition or the built-in one.
func (s *settings) loadDefinition() (*definition.Definition, error) {
	if s.definition == "" {
		return definition.Default()
	}
	def, err := definition.Parse(s.definition)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", s.definition, err)
	}
	return def, nil
}

// loadCatalog parses and builds the catalog. Any failure means the catalog
// must not be used.
func (s *settings) loadCatalog() (*catalog.Catalog, error) {
	def, err := s.loadDefinition()
	if err != nil {
		return nil, err
	}

	cat, err := def.Build()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", s.source(), err)
	}

	s.log.Debug("catalog built",
		logger.F("source", s.source()),
		logger.F("name", def.Name),
		logger.F("patterns", cat.Len()))
	return cat, nil
}
