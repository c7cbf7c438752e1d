package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/soypat/dbgprint/internal/monitor"
)

// stdout receives rendered output.
var stdout io.Writer = os.Stdout

func (c *ReplayCmd) Run() error {
	f, err := os.Open(c.File)
	if err != nil {
		return fmt.Errorf("failed to open capture: %w", err)
	}
	defer f.Close()
	return monitor.Copy(context.Background(), monitor.NewRenderer(stdout, c.Hex), f)
}
