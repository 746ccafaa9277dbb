package filterspirit

import "testing"

func TestLoadConfigFromBytes_ValidConfig(t *testing.T) {
	yaml := `
ruthlessMode: true
stopOnError: false
treatWarningsAsErrors: true
version: "1.0"
sourceTag: poe.ninja
leagueName: Settlers
attributionLines:
  - "price data courtesy of poe.ninja"
`
	cfg, err := LoadConfigFromBytes([]byte(yaml))
	if err != nil {
		t.Fatalf("LoadConfigFromBytes() failed: %v", err)
	}
	if !cfg.RuthlessMode {
		t.Errorf("RuthlessMode = false, want true")
	}
	if cfg.StopOnError {
		t.Errorf("StopOnError = true, want false")
	}
	if !cfg.TreatWarningsAsErrors {
		t.Errorf("TreatWarningsAsErrors = false, want true")
	}
	if cfg.SourceTag != "poe.ninja" {
		t.Errorf("SourceTag = %q, want poe.ninja", cfg.SourceTag)
	}
	if len(cfg.AttributionLines) != 1 {
		t.Fatalf("AttributionLines = %v, want 1 entry", cfg.AttributionLines)
	}
}

func TestLoadConfigFromBytes_MalformedYAML(t *testing.T) {
	_, err := LoadConfigFromBytes([]byte("ruthlessMode: [this is not a bool"))
	if err == nil {
		t.Fatal("LoadConfigFromBytes() succeeded, want error")
	}
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig("/nonexistent/path/to/config.yaml")
	if err == nil {
		t.Fatal("LoadConfig() succeeded, want error")
	}
}
