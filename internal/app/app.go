// Package app runs one unread count: resolve the configuration, count each
// mailbox in order, and print the result.
package app

import (
	"fmt"
	"io"

	log "github.com/sirupsen/logrus"

	"github.com/mahyarmirrashed/tbunread/internal/config"
	"github.com/mahyarmirrashed/tbunread/internal/mork"
	"github.com/mahyarmirrashed/tbunread/internal/report"
	"github.com/mahyarmirrashed/tbunread/internal/resolver"
)

// App wires the resolver, the mailbox counter and the output.
type App struct {
	Resolver *resolver.Resolver
	Counter  *mork.Counter
	Stdout   io.Writer
}

// New returns an App on the operating system filesystem writing to stdout.
func New(stdout io.Writer) *App {
	return &App{
		Resolver: resolver.New(),
		Counter:  mork.NewCounter(),
		Stdout:   stdout,
	}
}

// Run resolves the configuration from args and prints the unread counts. In
// dump mode the configuration is printed instead, also when resolution fails.
func (a *App) Run(args config.Layer) error {
	cfg, err := a.Resolver.Resolve(args)
	if err != nil {
		if cfg.DumpConfig {
			a.dump(cfg)
		}
		return err
	}
	if cfg.DumpConfig {
		a.dump(cfg)
		return nil
	}

	results := make([]report.Result, 0, len(cfg.Files))
	for _, path := range cfg.Files {
		count, err := a.Counter.CountUnread(path)
		if err != nil {
			return err
		}
		log.Debugf("%s: %d unread", path, count)
		results = append(results, report.Result{Path: path, Count: count})
	}

	return report.Write(a.Stdout, cfg, results)
}

func (a *App) dump(cfg config.Config) {
	if _, err := fmt.Fprintln(a.Stdout, cfg); err != nil {
		log.Warnf("Could not print configuration: %v", err)
	}
}
