package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/robfig/cron/v3"

	"github.com/goliatone/go-news-intake/cmd/intake/internal/bootstrap"
	intakecmd "github.com/goliatone/go-news-intake/internal/commands/intake"
)

var moduleBuilder = bootstrap.BuildModule

func main() {
	if err := runWatch(os.Args[1:]); err != nil {
		log.Fatalf("intake watch: %v", err)
	}
}

func runWatch(args []string) error {
	fs := flag.NewFlagSet("intake-watch", flag.ExitOnError)
	configFile := fs.String("config", "", "Path to the intake config file")
	root := fs.String("root", "", "Site repository root (overrides config)")
	intakeDir := fs.String("intake", "", "Directory polled for *.zip bundles (overrides config)")
	schedule := fs.String("schedule", "", "Cron schedule override (five fields)")

	if err := fs.Parse(args); err != nil {
		return err
	}

	module, err := moduleBuilder(bootstrap.Options{
		ConfigFile: *configFile,
		Root:       *root,
		IntakeDir:  *intakeDir,
	})
	if err != nil {
		return fmt.Errorf("bootstrap module: %w", err)
	}

	spec := module.Config.Watch.Schedule
	if *schedule != "" {
		spec = *schedule
	}

	handler := intakecmd.NewImportBatchHandler(module.Module.Importer(), module.Logger)
	msg := intakecmd.ImportBatchCommand{IntakeDir: module.Config.IntakeDir()}

	// Runs are serialized: a batch still in flight skips the next tick
	// instead of overlapping with it.
	scheduler := cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)))
	_, err = scheduler.AddFunc(spec, func() {
		if err := handler.Execute(context.Background(), msg); err != nil {
			module.Logger.Error("scheduled import failed", "error", err)
		}
	})
	if err != nil {
		return fmt.Errorf("schedule %q: %w", spec, err)
	}

	module.Logger.Info("watching intake directory", "dir", module.Config.IntakeDir(), "schedule", spec)
	scheduler.Start()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	ctx := scheduler.Stop()
	<-ctx.Done()
	return nil
}
