package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/blazity/rm/pkg/command"
	"github.com/blazity/rm/pkg/logging"
	"github.com/blazity/rm/pkg/settings"
)

var GlobalCtx context.Context
var GlobalCancel context.CancelFunc

func main() {
	GlobalCtx, GlobalCancel = context.WithCancel(context.Background())
	defer GlobalCancel()

	cfg, err := settings.Load()
	if err != nil {
		logging.GetLogger().Error(err.Error())
		os.Exit(1)
	}

	logging.InitLogger(logging.Options{
		Verbose:    cfg.Verbose,
		Timestamps: cfg.LogTimestamps,
	})
	logger := logging.GetLogger()

	setupSignalHandling(logger)

	cmd := command.NewRemoveCommand(logger)

	if err := command.Execute(GlobalCtx, cmd, os.Args[1:]); err != nil {
		logger.Error(err.Error())
		os.Exit(1)
	}
}

func setupSignalHandling(logger logging.Logger) {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		sig := <-c

		// Clear a pending confirmation prompt before logging.
		fmt.Print("\r\033[K")

		logger.Debug("Received signal", "signal", sig.String())
		GlobalCancel()

		os.Exit(1)
	}()
}
