package config

import (
	"reflect"
)

// Layer is a sparse configuration record. A nil field is unset and never
// overrides a lower layer.
type Layer struct {
	Files      []string `toml:"files" yaml:"files"`
	Profile    *string  `toml:"profile" yaml:"profile"`
	Config     *string  `toml:"config" yaml:"config"`
	DumpConfig *bool    `toml:"dump_config" yaml:"dump_config"`
	NoConfig   *bool    `toml:"no_config" yaml:"no_config"`
	NoZero     *bool    `toml:"no_zero" yaml:"no_zero"`
	NoNewline  *bool    `toml:"no_newline" yaml:"no_newline"`
	Trim       *bool    `toml:"trim" yaml:"trim"`
	Before     *string  `toml:"before" yaml:"before"`
	After      *string  `toml:"after" yaml:"after"`
	Location   *bool    `toml:"location" yaml:"location"`
}

// Apply copies every field that is set in overlay onto base.
func Apply(base *Layer, overlay Layer) {
	dst := reflect.ValueOf(base).Elem()
	src := reflect.ValueOf(overlay)
	for i := 0; i < src.NumField(); i++ {
		if f := src.Field(i); !f.IsNil() {
			dst.Field(i).Set(f)
		}
	}
}

// Stack holds the three configuration sources in precedence order.
type Stack struct {
	Defaults Layer
	File     Layer
	Args     Layer
}

// Merge applies the file layer and then the argument layer over the defaults.
func (s Stack) Merge() Layer {
	var out Layer
	Apply(&out, s.Defaults)
	Apply(&out, s.File)
	Apply(&out, s.Args)
	return out
}

// Defaults returns the built-in layer. Every boolean is set so the merged
// result is total; profile, before and after stay unset.
func Defaults(configPath string) Layer {
	return Layer{
		Config:     &configPath,
		DumpConfig: Bool(false),
		NoConfig:   Bool(false),
		NoZero:     Bool(false),
		NoNewline:  Bool(false),
		Trim:       Bool(false),
		Location:   Bool(false),
	}
}

// Effective flattens the layer. Unset fields take their zero value.
func (l Layer) Effective() Config {
	return Config{
		Files:      append([]string(nil), l.Files...),
		Profile:    deref(l.Profile),
		ConfigPath: deref(l.Config),
		DumpConfig: deref(l.DumpConfig),
		NoConfig:   deref(l.NoConfig),
		NoZero:     deref(l.NoZero),
		NoNewline:  deref(l.NoNewline),
		Trim:       deref(l.Trim),
		Before:     deref(l.Before),
		After:      deref(l.After),
		Location:   deref(l.Location),
	}
}

// Bool returns a pointer to b.
func Bool(b bool) *bool { return &b }

// String returns a pointer to s.
func String(s string) *string { return &s }

func deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}
