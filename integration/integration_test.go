package integration

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/javiermolinar/fecha/internal/calendar"
	"github.com/javiermolinar/fecha/internal/config"
	"github.com/javiermolinar/fecha/internal/ui"
)

// valentines is a Wednesday.
var valentines = time.Date(2024, time.February, 14, 9, 30, 0, 0, time.UTC)

// writeConfig writes a config file and loads it the way the binary does.
func writeConfig(t *testing.T, content string) *config.Config {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}
	cfg, err := config.LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom() error: %v", err)
	}
	return cfg
}

// runCLI executes the command line against cfg with a fixed clock.
func runCLI(t *testing.T, cfg *config.Config, args ...string) string {
	t.Helper()
	app := ui.NewApp(cfg, ui.WithClock(calendar.Fixed(valentines)))
	var out, errOut bytes.Buffer
	app.SetOutput(&out, &errOut)
	app.SetArgs(append([]string{"--no-color"}, args...))
	if err := app.Execute(); err != nil {
		t.Fatalf("%v: %v", args, err)
	}
	return strings.TrimSpace(out.String())
}

func TestCLI_ConfigDrivesOutput(t *testing.T) {
	cfg := writeConfig(t, `
[calendar]
timezone = "Asia/Tokyo"
week_start = "monday"

[output]
format = "Mon 2006-01-02 15:04 MST"
`)

	tests := []struct {
		args []string
		want string
	}{
		{[]string{"eval", "now"}, "Wed 2024-02-14 18:30 JST"},
		{[]string{"eval", "next", "friday"}, "Fri 2024-02-16 00:00 JST"},
		{[]string{"resolve", "last", "thursday"}, "Thu 2024-02-29 00:00 JST"},
		{[]string{"add", "1", "month", "--from", "2024-01-31"}, "Sat 2024-03-02 00:00 JST"},
		{[]string{"--tz", "UTC", "eval", "now"}, "Wed 2024-02-14 09:30 UTC"},
	}
	for _, tt := range tests {
		if got := runCLI(t, cfg, tt.args...); got != tt.want {
			t.Errorf("%v = %q, want %q", tt.args, got, tt.want)
		}
	}

	cal := runCLI(t, cfg, "cal")
	if !strings.Contains(cal, "Mo  Tu  We  Th  Fr  Sa  Su") {
		t.Errorf("cal should start weeks on monday:\n%s", cal)
	}
}

func TestCLI_EnvOverridesFile(t *testing.T) {
	t.Setenv("FECHA_FORMAT", "2006-01-02")
	t.Setenv("FECHA_TIMEZONE", "UTC")
	cfg := writeConfig(t, `
[calendar]
timezone = "Asia/Tokyo"

[output]
format = "Mon 2006-01-02 15:04 MST"
`)

	if got := runCLI(t, cfg, "eval", "yesterday"); got != "2024-02-13" {
		t.Errorf("eval yesterday = %q, want 2024-02-13", got)
	}
}

func TestCLI_SaveAndReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	cfg := config.Default()
	cfg.Calendar.Timezone = "America/Los_Angeles"
	cfg.Output.Format = time.Kitchen
	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo() error: %v", err)
	}

	loaded, err := config.LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom() error: %v", err)
	}
	if got := runCLI(t, loaded, "eval", "now"); got != "1:30AM" {
		t.Errorf("eval now = %q, want 1:30AM", got)
	}
}
