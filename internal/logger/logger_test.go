package logger

import "testing"

func TestNew(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		opts Options
	}{
		{name: "development console info", opts: Options{Env: "development"}},
		{name: "production json debug", opts: Options{Env: "production", JSON: true, Debug: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			log, err := New(tt.opts)
			if err != nil {
				t.Fatalf("New returned error: %v", err)
			}
			if got := log.Core().Enabled(-1); got != tt.opts.Debug {
				t.Fatalf("debug enabled = %v, want %v", got, tt.opts.Debug)
			}
		})
	}
}

func TestNewConfig_Presets(t *testing.T) {
	t.Parallel()

	dev := newConfig(Options{Service: "vetlink-api", Env: "development"})
	if !dev.Development || dev.Encoding != "console" {
		t.Errorf("development preset = development:%v encoding:%q", dev.Development, dev.Encoding)
	}
	if dev.InitialFields["service"] != "vetlink-api" || dev.InitialFields["env"] != "development" {
		t.Errorf("initial fields = %v", dev.InitialFields)
	}

	prod := newConfig(Options{Env: "production", JSON: true})
	if prod.Development || prod.Sampling == nil || prod.Encoding != "json" {
		t.Errorf("production preset = development:%v sampling:%v encoding:%q", prod.Development, prod.Sampling, prod.Encoding)
	}
	if _, ok := prod.InitialFields["service"]; ok {
		t.Error("empty service should not be logged")
	}
}
