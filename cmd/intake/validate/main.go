package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/goliatone/go-news-intake/cmd/intake/internal/bootstrap"
	intakecmd "github.com/goliatone/go-news-intake/internal/commands/intake"
)

var moduleBuilder = bootstrap.BuildModule

func main() {
	if err := runValidate(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "intake validate: %v\n", err)
		os.Exit(1)
	}
}

func runValidate(args []string) error {
	fs := flag.NewFlagSet("intake-validate", flag.ExitOnError)
	configFile := fs.String("config", "", "Path to the intake config file")
	root := fs.String("root", "", "Site repository root (overrides config)")
	intakeDir := fs.String("intake", "", "Directory holding *.zip bundles (overrides config)")

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

	msg := intakecmd.ValidateBundlesCommand{IntakeDir: module.Config.IntakeDir()}
	// A positional argument narrows the check to a single bundle.
	if fs.NArg() > 0 {
		msg.Bundle = fs.Arg(0)
	}

	handler := intakecmd.NewValidateBundlesHandler(os.Stdout, module.Logger)
	return handler.Execute(context.Background(), msg)
}
