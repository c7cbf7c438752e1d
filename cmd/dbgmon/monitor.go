package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/soypat/dbgprint/internal/config"
	"github.com/soypat/dbgprint/internal/monitor"
	"github.com/soypat/dbgprint/internal/serial"
	"github.com/soypat/dbgprint/lax"
)

// loadConfig reads the config file, then applies command line flags over it.
func (c *MonitorCmd) loadConfig() (*config.Config, error) {
	cfg, err := config.Load(c.Config)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	cfg.Override(config.Config{Port: c.Port, Baud: c.Baud, Hex: c.Hex, Verbose: c.Verbose})
	return cfg, nil
}

func (c *MonitorCmd) Run() error {
	cfg, err := c.loadConfig()
	if err != nil {
		return err
	}
	lax.SDB = cfg.Verbose

	port, err := serial.Open(cfg.Port, cfg.Baud)
	if err != nil {
		return err
	}
	defer port.Close()
	lax.Log(lax.Strcat("open ", cfg.Port))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	go func() {
		<-ctx.Done()
		port.Close()
	}()

	return monitor.Copy(ctx, monitor.NewRenderer(stdout, cfg.Hex), port)
}
