package main

import (
	"context"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v3"

	"github.com/mahyarmirrashed/tbunread/internal/app"
	"github.com/mahyarmirrashed/tbunread/internal/config"
)

// Set at build time: go build -ldflags "-X main.version=1.2.3"
var version = "dev"

func init() {
	log.SetOutput(os.Stderr)
	log.SetFormatter(&log.TextFormatter{DisableTimestamp: true})
}

func main() {
	cmd := newCommand()
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func newCommand() *cli.Command {
	return &cli.Command{
		Name:      "tbunread",
		Usage:     "Count unread messages in Thunderbird mailbox .msf files",
		Version:   version,
		ArgsUsage: "[FILES...]",
		Description: `Path to one or multiple mailbox .msf files, either absolute or relative to the
user profile directory. Directories are searched for a default Inbox.msf or
INBOX.msf file. Glob patterns such as "ImapMail/*/INBOX.msf" are expanded.

Examples:
   tbunread "Mail/pop3.live.com"
   tbunread "~/.thunderbird/abcd.default/ImapMail/imap.googlemail.com/INBOX.msf"`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "profile",
				Aliases: []string{"p"},
				Usage:   "path to Thunderbird user profile folder",
				Sources: cli.EnvVars("TBUNREAD_PROFILE"),
			},
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "configuration file with options in TOML (or YAML) format",
				Sources: cli.EnvVars("TBUNREAD_CONFIG"),
			},
			&cli.BoolFlag{
				Name:    "dump-config",
				Aliases: []string{"d"},
				Usage:   "print current active settings and exit",
			},
			&cli.BoolFlag{
				Name:    "no-config",
				Aliases: []string{"C"},
				Usage:   "ignore user configuration file",
			},
			&cli.BoolFlag{
				Name:    "no-zero",
				Aliases: []string{"z"},
				Usage:   "suppress output of number if mail count is 0",
			},
			&cli.BoolFlag{
				Name:    "no-newline",
				Aliases: []string{"n"},
				Usage:   "do not output final newline character",
			},
			&cli.BoolFlag{
				Name:    "trim",
				Aliases: []string{"t"},
				Usage:   "strip leading and trailing whitespace from output text",
			},
			&cli.StringFlag{
				Name:    "before",
				Aliases: []string{"b"},
				Usage:   "prepend text to the beginning of total count",
			},
			&cli.StringFlag{
				Name:    "after",
				Aliases: []string{"a"},
				Usage:   "append text to end of total count",
			},
			&cli.BoolFlag{
				Name:    "location",
				Aliases: []string{"l"},
				Usage:   "display file path for each input mailbox",
			},
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "logging level: debug, info, warn, error",
				Sources: cli.EnvVars("TBUNREAD_LOG_LEVEL"),
				Value:   "warn",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			setLogLevel(cmd.String("log-level"))
			return app.New(os.Stdout).Run(argsLayer(cmd))
		},
	}
}

// argsLayer collects the flags that were given on the command line or in the
// environment. Flags left at their default stay unset.
func argsLayer(cmd *cli.Command) config.Layer {
	var l config.Layer

	if files := cmd.Args().Slice(); len(files) > 0 {
		l.Files = files
	}

	strs := map[string]**string{
		"profile": &l.Profile,
		"config":  &l.Config,
		"before":  &l.Before,
		"after":   &l.After,
	}
	for name, dst := range strs {
		if cmd.IsSet(name) {
			*dst = config.String(cmd.String(name))
		}
	}

	bools := map[string]**bool{
		"dump-config": &l.DumpConfig,
		"no-config":   &l.NoConfig,
		"no-zero":     &l.NoZero,
		"no-newline":  &l.NoNewline,
		"trim":        &l.Trim,
		"location":    &l.Location,
	}
	for name, dst := range bools {
		if cmd.IsSet(name) {
			*dst = config.Bool(cmd.Bool(name))
		}
	}

	return l
}

func setLogLevel(level string) {
	switch level {
	case "debug":
		log.SetLevel(log.DebugLevel)
	case "info":
		log.SetLevel(log.InfoLevel)
	case "warn":
		log.SetLevel(log.WarnLevel)
	case "error":
		log.SetLevel(log.ErrorLevel)
	default:
		log.SetLevel(log.WarnLevel)
	}
}
