package agentview

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfig(t *testing.T) {
	t.Run("missing file returns defaults", func(t *testing.T) {
		config, err := LoadConfig(filepath.Join(t.TempDir(), ".agentview.yaml"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if config.Backend != string(BackendConverse) {
			t.Errorf("Backend = %q, want %q", config.Backend, BackendConverse)
		}
	})

	t.Run("valid yaml file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), ".agentview.yaml")
		content := `
backend: langgraph
agents:
  researcher: converse
  summarizer: langgraph
`
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatalf("failed to write config: %v", err)
		}

		config, err := LoadConfig(path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if config.Backend != "langgraph" {
			t.Errorf("Backend = %q, want %q", config.Backend, "langgraph")
		}
		if len(config.Agents) != 2 {
			t.Errorf("len(Agents) = %d, want 2", len(config.Agents))
		}
	})

	t.Run("empty backend falls back to default", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), ".agentview.yaml")
		if err := os.WriteFile(path, []byte("agents: {}\n"), 0644); err != nil {
			t.Fatalf("failed to write config: %v", err)
		}

		config, err := LoadConfig(path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if config.Backend != string(BackendConverse) {
			t.Errorf("Backend = %q, want %q", config.Backend, BackendConverse)
		}
	})

	t.Run("malformed yaml returns error", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), ".agentview.yaml")
		if err := os.WriteFile(path, []byte("backend: [\n"), 0644); err != nil {
			t.Fatalf("failed to write config: %v", err)
		}

		if _, err := LoadConfig(path); err == nil {
			t.Fatal("expected error for malformed yaml")
		}
	})
}

func TestBackendFor(t *testing.T) {
	config := &Config{
		Backend: "langgraph",
		Agents:  map[string]string{"researcher": "converse"},
	}

	if got := config.BackendFor("researcher"); got != BackendConverse {
		t.Errorf("BackendFor(researcher) = %q, want %q", got, BackendConverse)
	}
	if got := config.BackendFor("unknown-agent"); got != BackendLangGraph {
		t.Errorf("BackendFor(unknown-agent) = %q, want %q", got, BackendLangGraph)
	}
	if got := config.BackendFor(""); got != BackendLangGraph {
		t.Errorf("BackendFor(\"\") = %q, want %q", got, BackendLangGraph)
	}

	var nilConfig *Config
	if got := nilConfig.BackendFor("any"); got != BackendConverse {
		t.Errorf("nil config BackendFor = %q, want %q", got, BackendConverse)
	}
}
