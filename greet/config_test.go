package greet

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
)

func TestWithConfig(t *testing.T) {
	o := NewOptions(WithConfig([]byte(`
mode:
  debug: true
log:
  level: warn
  format: json
`)))

	if !o.DebugMode {
		t.Errorf("DebugMode = false, want true")
	}
	if o.LogLevel != "warn" {
		t.Errorf("LogLevel = %q, want warn", o.LogLevel)
	}
	if o.LogFormat != LogFormatJSON {
		t.Errorf("LogFormat = %q, want json", o.LogFormat)
	}
}

func TestWithConfig_Defaults(t *testing.T) {
	o := NewOptions(WithConfig([]byte(`mode: {}`)))

	if o.DebugMode || o.LogLevel != "info" || o.LogFormat != LogFormatText {
		t.Errorf("Options = %+v", o)
	}
}

func TestWithConfig_DoesNotMutateDefaults(t *testing.T) {
	NewOptions(WithLogLevel("error"))

	if o := NewOptions(); o.LogLevel != "info" {
		t.Errorf("default LogLevel = %q after override", o.LogLevel)
	}
}

func TestWithConfig_Invalid(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("expected panic for invalid YAML")
		}
	}()
	NewOptions(WithConfig([]byte("mode: [")))
}

func TestWithConfig_UnknownFormat(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("expected panic for unknown log format")
		}
	}()
	NewOptions(WithConfig([]byte("log:\n  format: xml\n")))
}

func TestWithConfigFile(t *testing.T) {
	p := filepath.Join(t.TempDir(), "greet.yaml")
	if err := os.WriteFile(p, []byte("mode:\n  debug: true\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	if o := NewOptions(WithConfigFile(p)); !o.DebugMode {
		t.Errorf("DebugMode = false, want true")
	}
}

func TestWithConfigFile_Missing(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("expected panic for missing file")
		}
	}()
	NewOptions(WithConfigFile(filepath.Join(t.TempDir(), "nope.yaml")))
}

func TestNewLogger(t *testing.T) {
	l, err := NewLogger("debug", LogFormatJSON)
	if err != nil {
		t.Fatal(err)
	}
	if l.GetLevel() != logrus.DebugLevel {
		t.Errorf("level = %v", l.GetLevel())
	}
	if _, ok := l.Formatter.(*logrus.JSONFormatter); !ok {
		t.Errorf("formatter = %T", l.Formatter)
	}

	if _, err := NewLogger("loud", LogFormatText); err == nil {
		t.Errorf("expected error for bad level")
	}
	if _, err := NewLogger("info", "xml"); err == nil {
		t.Errorf("expected error for bad format")
	}
}

func TestNewEngine_DebugModeRaisesLevel(t *testing.T) {
	e := NewEngine(WithDebugMode())
	if e.log.Logger.GetLevel() != logrus.DebugLevel {
		t.Errorf("level = %v, want debug", e.log.Logger.GetLevel())
	}
}
