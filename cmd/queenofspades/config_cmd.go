package main

import (
	"fmt"
	"os"

	"github.com/lox/queenofspades/internal/config"
)

type ConfigCmd struct {
	Config string `kong:"default='queenofspades.hcl',help='HCL config file to read'"`
}

func (c *ConfigCmd) Run(g *Globals) error {
	cfg, err := config.Load(c.Config)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if g.LogLevel != "" {
		cfg.LogLevel = g.LogLevel
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	_, err = os.Stdout.Write(cfg.HCL())
	return err
}
