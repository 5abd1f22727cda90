package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	cobra "github.com/spf13/cobra"

	"github.com/itohio/sunmon/pkg/config"
	"github.com/itohio/sunmon/pkg/gateway"
	"github.com/itohio/sunmon/pkg/metrics"
	"github.com/itohio/sunmon/pkg/onewire"
	"github.com/itohio/sunmon/pkg/power"
	"github.com/itohio/sunmon/pkg/report"
)

// newRunCommand creates the run sub-command which starts the sampling and
// reporting loop.
func newRunCommand() *cobra.Command {
	var (
		configPath string
		portFlag   string
		simFlag    bool
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Start the sampling and reporting loop",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return fmt.Errorf("load configuration: %w", err)
			}
			if portFlag != "" {
				cfg.Gateway.Port = portFlag
			}
			if product := os.Getenv("SUNMON_PRODUCT"); product != "" {
				cfg.Gateway.Product = product
			}

			gw, closeGw, err := newGateway(cfg, simFlag)
			if err != nil {
				return err
			}
			defer closeGw()

			if err := gw.Configure(gateway.SessionConfig{
				Product:      cfg.Gateway.Product,
				OutboundMins: cfg.Gateway.OutboundMins,
				InboundMins:  cfg.Gateway.InboundMins,
			}); err != nil {
				return fmt.Errorf("configure hub session: %w", err)
			}

			// TODO: attach INA219 and DS18B20 drivers here once the hardware
			// bus adapters land; until then the electrical and probe sides
			// run on the simulators.
			sensor := power.NewSim(cfg.Sim)
			bus := onewire.NewSimBusFromTemps(cfg.Sim.ProbeTempsC)

			ctrl := report.New(cfg, sensor, bus, gw)

			m := metrics.New()
			ctrl.OnFlush(m.ObserveFlush)
			ctrl.OnFlush(printFlush)

			if cfg.Metrics.Listen != "" {
				go func() {
					if err := m.Serve(cfg.Metrics.Listen); err != nil {
						log.Printf("metrics listener: %v", err)
					}
				}()
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			log.Printf("sampling every %ds, reporting every %ds via %s",
				cfg.Report.TickSeconds, cfg.Report.IntervalSeconds, cfg.Gateway.Port)

			if err := ctrl.Run(ctx); !errors.Is(err, context.Canceled) {
				return err
			}
			log.Println("shutting down")
			return nil
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "config.yaml", "Configuration file path")
	cmd.Flags().StringVarP(&portFlag, "port", "p", "", "Gateway serial port override")
	cmd.Flags().BoolVar(&simFlag, "sim", false, "Simulate the gateway module instead of opening a serial port")

	return cmd
}

// newGateway opens the serial gateway, or a mock when simulating.
func newGateway(cfg *config.Config, sim bool) (gateway.Gateway, func(), error) {
	if sim {
		return gateway.NewMock(28.0), func() {}, nil
	}

	sg := gateway.NewSerial(cfg.Gateway.Port, cfg.Gateway.BaudRate)
	if err := sg.Connect(); err != nil {
		return nil, nil, fmt.Errorf("connect gateway: %w", err)
	}
	return sg, func() {
		if err := sg.Close(); err != nil {
			log.Printf("close gateway: %v", err)
		}
	}, nil
}
