// cmd/tempwire/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.bug.st/serial"

	"github.com/tempwire/tempwire/internal/config"
	"github.com/tempwire/tempwire/internal/poller"
	"github.com/tempwire/tempwire/internal/poller/onewire"
	"github.com/tempwire/tempwire/internal/status"
	"github.com/tempwire/tempwire/internal/writer"
)

// Exit codes per failure category. Configuration and runtime errors
// exit 1 (cobra default); a missing physical adapter gets its own code.
const exitAdapterNotDetected = 2

func main() {
	if err := newRootCmd().Execute(); err != nil {
		if errors.Is(err, onewire.ErrAdapterNotDetected) {
			os.Exit(exitAdapterNotDetected)
		}
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tempwire",
		Short: "Log 1-Wire temperature sensors to per-device CSV files",
		Long: `tempwire polls DS18B20-family temperature sensors on a serial
1-Wire bus adapter and appends each reading to one CSV file per sensor
(columns: uid, timestamp, temperature).`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := buildConfig(cmd)
			if err != nil {
				return err
			}
			return run(cmd.Context(), cfg)
		},
	}

	fs := cmd.Flags()
	fs.StringP("config", "c", "", "optional YAML config file")
	fs.StringP("data", "d", "", "path for the data folder")
	fs.StringP("adapter-port", "p", "", "adapter serial port (e.g. COM3 or /dev/ttyUSB0)")
	fs.IntP("wait-time", "w", 0, "delay between scan passes in milliseconds")
	fs.StringP("adapter-name", "a", config.DefaultAdapterName, "adapter driver name")

	cmd.AddCommand(newPortsCmd())

	return cmd
}

// buildConfig merges the optional config file with explicit flags;
// flags win over file values, file values over defaults. Required
// options are checked only after the merge so a config file can
// satisfy them.
func buildConfig(cmd *cobra.Command) (*config.Config, error) {
	fs := cmd.Flags()

	cfg := config.Default()
	if path, _ := fs.GetString("config"); path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if fs.Changed("data") {
		cfg.DataDir, _ = fs.GetString("data")
	}
	if fs.Changed("adapter-port") {
		cfg.Port, _ = fs.GetString("adapter-port")
	}
	if fs.Changed("wait-time") {
		cfg.WaitTimeMs, _ = fs.GetInt("wait-time")
	}
	if fs.Changed("adapter-name") {
		cfg.AdapterName, _ = fs.GetString("adapter-name")
	}

	config.Normalize(cfg)
	if err := config.Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func run(ctx context.Context, cfg *config.Config) error {
	if err := config.EnsureDataDir(cfg); err != nil {
		return err
	}

	bus, err := onewire.Open(cfg.AdapterName, cfg.Port)
	if err != nil {
		return err
	}
	defer bus.Close()

	p, err := poller.New(poller.Config{Interval: cfg.Interval()}, bus)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	log.Printf("scanning %s via %s adapter, interval %v, data dir %s",
		bus.Port(), cfg.AdapterName, cfg.Interval(), cfg.DataDir)

	w := writer.New(cfg.DataDir)
	tracker := status.NewTracker()

	out := make(chan poller.ScanResult)
	errc := make(chan error, 1)
	go func() { errc <- p.Run(ctx, out) }()

	for {
		select {
		case res := <-out:
			record(res, w, tracker)
		case err := <-errc:
			if errors.Is(err, context.Canceled) {
				log.Printf("shutting down")
				return nil
			}
			return err
		}
	}
}

// record delivers one scan pass: samples to the CSV writer, faults and
// health transitions to the log. Per-device failures never abort the
// loop.
func record(res poller.ScanResult, w writer.Writer, tracker *status.Tracker) {
	if res.Err != nil {
		log.Printf("scan failed: %v", res.Err)
		return
	}

	for _, s := range res.Samples {
		if snap, changed := tracker.Observe(s.Address, s.At, nil); changed {
			log.Printf("device %s: %s", s.Address, snap.Health)
		}
		if err := w.Append(s); err != nil {
			log.Printf("record %s: %v", s.Address, err)
		}
	}

	for _, fault := range res.Faults {
		if snap, changed := tracker.Observe(fault.Address, res.At, fault.Err); changed {
			log.Printf("device %s: %s (%v)", fault.Address, snap.Health, fault.Err)
		} else {
			log.Printf("sample %s: %v", fault.Address, fault.Err)
		}
	}
}

func newPortsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ports",
		Short: "List serial ports present on this machine",
		RunE: func(cmd *cobra.Command, args []string) error {
			ports, err := serial.GetPortsList()
			if err != nil {
				return err
			}
			if len(ports) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "no serial ports found")
				return nil
			}
			for _, p := range ports {
				fmt.Fprintln(cmd.OutOrStdout(), p)
			}
			return nil
		},
	}
}
