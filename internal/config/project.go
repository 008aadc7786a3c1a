package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Project is the optional pakhi.yaml project file. It names the main module
// and may override runtime knobs.
type Project struct {
	Main string   `yaml:"main"`
	GC   GCConfig `yaml:"gc"`
}

type GCConfig struct {
	Threshold int `yaml:"threshold"`
}

// LoadProject reads and validates a pakhi.yaml file. Absent or non-positive
// knobs fall back to their defaults.
func LoadProject(path string) (*Project, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var p Project
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	if p.Main == "" {
		return nil, fmt.Errorf("%s: main module is not set", path)
	}
	if !strings.HasSuffix(p.Main, SourceFileExt) {
		return nil, fmt.Errorf("%s: main module must have the %s extension", path, SourceFileExt)
	}
	if p.GC.Threshold <= 0 {
		p.GC.Threshold = GCThreshold
	}

	return &p, nil
}
