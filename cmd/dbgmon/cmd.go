package main

// CLI defines the root command structure with subcommands
type CLI struct {
	Monitor MonitorCmd `cmd:"" help:"Stream a board's diagnostic channel to stdout"`
	Replay  ReplayCmd  `cmd:"" help:"Render a captured diagnostic stream"`
}

// MonitorCmd reads a serial port. Flags override the config file.
type MonitorCmd struct {
	Port    string `short:"p" help:"Serial device (default /dev/ttyUSB0)"`
	Baud    int    `short:"b" help:"Baud rate (default 9600)"`
	Hex     bool   `short:"x" help:"Show non-printable bytes as <XX>"`
	Verbose bool   `short:"v" help:"Trace raw reads to stderr"`
	Config  string `type:"path" help:"Path to TOML config file"`
}

// ReplayCmd renders a capture file
type ReplayCmd struct {
	File string `arg:"" type:"existingfile" help:"Capture file"`
	Hex  bool   `short:"x" help:"Show non-printable bytes as <XX>"`
}
