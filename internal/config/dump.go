package config

import (
	"strconv"
	"strings"
)

var tomlEscaper = strings.NewReplacer(
	`\`, `\\`,
	`"`, `\"`,
	"\n", `\n`,
	"\r", `\r`,
	"\t", `\t`,
)

func quote(s string) string {
	return `"` + tomlEscaper.Replace(s) + `"`
}

// String renders c in the config file format, one key per line.
func (c Config) String() string {
	var b strings.Builder

	b.WriteString("files = [")
	switch len(c.Files) {
	case 0:
	case 1:
		b.WriteString(quote(c.Files[0]))
	default:
		for _, f := range c.Files {
			b.WriteString("\n    ")
			b.WriteString(quote(f))
			b.WriteString(",")
		}
		b.WriteString("\n")
	}
	b.WriteString("]")

	line := func(key, value string) {
		b.WriteString("\n")
		b.WriteString(key)
		b.WriteString(" = ")
		b.WriteString(value)
	}
	line("profile", quote(c.Profile))
	line("config", quote(c.ConfigPath))
	line("dump_config", strconv.FormatBool(c.DumpConfig))
	line("no_config", strconv.FormatBool(c.NoConfig))
	line("no_zero", strconv.FormatBool(c.NoZero))
	line("no_newline", strconv.FormatBool(c.NoNewline))
	line("trim", strconv.FormatBool(c.Trim))
	line("before", quote(c.Before))
	line("after", quote(c.After))
	line("location", strconv.FormatBool(c.Location))

	return b.String()
}
