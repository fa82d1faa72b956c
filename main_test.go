package main

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/urfave/cli/v3"

	"github.com/mahyarmirrashed/tbunread/internal/config"
)

func parseArgs(t *testing.T, args ...string) config.Layer {
	t.Helper()
	var got config.Layer
	cmd := newCommand()
	cmd.Action = func(_ context.Context, c *cli.Command) error {
		got = argsLayer(c)
		return nil
	}
	if err := cmd.Run(context.Background(), append([]string{"tbunread"}, args...)); err != nil {
		t.Fatalf("Run(%q): %v", args, err)
	}
	return got
}

func TestArgsLayerUnset(t *testing.T) {
	if diff := cmp.Diff(config.Layer{}, parseArgs(t)); diff != "" {
		t.Errorf("argsLayer (-want +got):\n%s", diff)
	}
}

func TestArgsLayer(t *testing.T) {
	got := parseArgs(t,
		"-p", "~/.thunderbird/abcd.default",
		"--config", "/etc/tbunread.toml",
		"-d", "-z", "--trim=false", "-l",
		"-b", "Mail: ", "--after", "",
		"Mail/Local Folders", "ImapMail/imap.example.com",
	)
	want := config.Layer{
		Files:      []string{"Mail/Local Folders", "ImapMail/imap.example.com"},
		Profile:    config.String("~/.thunderbird/abcd.default"),
		Config:     config.String("/etc/tbunread.toml"),
		DumpConfig: config.Bool(true),
		NoZero:     config.Bool(true),
		Trim:       config.Bool(false),
		Before:     config.String("Mail: "),
		After:      config.String(""),
		Location:   config.Bool(true),
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("argsLayer (-want +got):\n%s", diff)
	}
}

func TestArgsLayerEnv(t *testing.T) {
	t.Setenv("TBUNREAD_PROFILE", "/profiles/env.default")
	got := parseArgs(t, "-C", "-n")
	want := config.Layer{
		Profile:   config.String("/profiles/env.default"),
		NoConfig:  config.Bool(true),
		NoNewline: config.Bool(true),
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("argsLayer (-want +got):\n%s", diff)
	}
}
