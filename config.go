package agentview

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds stream source configuration from .agentview.yaml.
type Config struct {
	// Backend is the default wire format tag.
	Backend string `yaml:"backend"`
	// Agents maps an agent name to a backend tag, overriding Backend for
	// deployments that mix backend types.
	Agents map[string]string `yaml:"agents"`
}

// LoadConfig loads configuration from the given path.
// Returns a default config if the file doesn't exist.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return &Config{Backend: string(BackendConverse)}, nil
	}
	if err != nil {
		return nil, err
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, err
	}

	if config.Backend == "" {
		config.Backend = string(BackendConverse)
	}

	return &config, nil
}

// BackendFor resolves the backend tag for an agent name. An empty name, or a
// name with no override, resolves to the default backend.
func (c *Config) BackendFor(agent string) Backend {
	if c == nil {
		return BackendConverse
	}
	if agent != "" {
		if tag, ok := c.Agents[agent]; ok && tag != "" {
			return Backend(tag)
		}
	}
	return Backend(c.Backend)
}
