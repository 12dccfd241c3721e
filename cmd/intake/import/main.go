package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/goliatone/go-news-intake/cmd/intake/internal/bootstrap"
	intakecmd "github.com/goliatone/go-news-intake/internal/commands/intake"
)

var moduleBuilder = bootstrap.BuildModule

func main() {
	if err := runImport(os.Args[1:]); err != nil {
		log.Fatalf("intake import: %v", err)
	}
}

func runImport(args []string) error {
	fs := flag.NewFlagSet("intake-import", flag.ExitOnError)
	configFile := fs.String("config", "", "Path to the intake config file")
	root := fs.String("root", "", "Site repository root (overrides config)")
	intakeDir := fs.String("intake", "", "Directory polled for *.zip bundles (overrides config)")
	logLevel := fs.String("log-level", "", "Log level override")

	if err := fs.Parse(args); err != nil {
		return err
	}

	module, err := moduleBuilder(bootstrap.Options{
		ConfigFile: *configFile,
		Root:       *root,
		IntakeDir:  *intakeDir,
		LogLevel:   *logLevel,
	})
	if err != nil {
		return fmt.Errorf("bootstrap module: %w", err)
	}

	handler := intakecmd.NewImportBatchHandler(module.Module.Importer(), module.Logger)
	return handler.Execute(context.Background(), intakecmd.ImportBatchCommand{
		IntakeDir: module.Config.IntakeDir(),
	})
}
