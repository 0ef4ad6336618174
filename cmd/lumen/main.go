// Command lumen is a minimal terminal text editor: a single buffer, a
// single window, no modes. See internal/core for the editing logic and
// internal/terminal for the raw-mode VT100 driver.
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-lumen/lumen/internal/core"
	"github.com/go-lumen/lumen/internal/logging"
	"github.com/go-lumen/lumen/internal/terminal"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "lumen:", err)
		os.Exit(1)
	}
}

func run() error {
	logPath := flag.String("log", os.Getenv("LUMEN_LOG"), "write debug log to this path (default $LUMEN_LOG)")
	flag.Parse()

	logger, logCloser, err := logging.Open(*logPath)
	if err != nil {
		return fmt.Errorf("open log: %w", err)
	}
	defer logCloser.Close()

	driver := terminal.New()
	if err := driver.Open(); err != nil {
		return fmt.Errorf("open terminal: %w", err)
	}
	defer driver.Close()

	// Restore the terminal on SIGINT/SIGTERM rather than leaving it in raw
	// mode and the alternate screen buffer (spec.md §6; supplemented beyond
	// the teacher's plain os.Exit handling, per SPEC_FULL.md §13.1).
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		driver.Close()
		os.Exit(1)
	}()

	ed, err := core.New(driver, driver, driver, logger)
	if err != nil {
		return fmt.Errorf("init editor: %w", err)
	}

	if args := flag.Args(); len(args) > 0 {
		if err := ed.Open(args[0]); err != nil {
			return fmt.Errorf("open %s: %w", args[0], err)
		}
	}

	return ed.Run()
}
