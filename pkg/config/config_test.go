package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/matzehuels/holefit/pkg/errors"
	"github.com/matzehuels/holefit/pkg/physics"
)

func TestParsePartial(t *testing.T) {
	cfg, err := Parse([]byte(`
[physics]
inflate_max = 60

[session]
speed = 4
`))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	want := Default()
	want.Physics.InflateMax = 60
	want.Session.Speed = 4
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("Parse (-want +got):\n%s", diff)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"syntax", `[physics`},
		{"unknown key", "[physics]\nspringg = 3\n"},
		{"bad range", "[session]\nspeed = 0\n"},
		{"zero dt", "[physics]\ntime_step = 0.0\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse([]byte(tt.in)); !errors.Is(err, errors.ErrCodeInvalidConfig) {
				t.Errorf("err = %v, want INVALID_CONFIG", err)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()

	if _, err := Load(filepath.Join(dir, "missing.toml")); !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("explicit missing file: err = %v", err)
	}

	path := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(path, []byte("[store]\ndir = \"/tmp/sol\"\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Store.Dir != "/tmp/sol" || cfg.Physics != physics.DefaultConstants() {
		t.Errorf("Load = %+v", cfg)
	}
}

func TestEncodeRoundTrip(t *testing.T) {
	in := Default()
	in.Physics.Spring = 150
	in.Session.Seed = 99

	var buf bytes.Buffer
	if err := Encode(&buf, in); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	out, err := Parse(buf.Bytes())
	if err != nil {
		t.Fatalf("Parse: %v\n%s", err, buf.String())
	}
	if diff := cmp.Diff(in, out); diff != "" {
		t.Errorf("round trip (-want +got):\n%s", diff)
	}
}
