package filter

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/tinytelemetry/grist/internal/model"
)

// specFile is the YAML shape of a saved filter spec. Range boundaries
// are strings so the file accepts the same spellings as the flags.
type specFile struct {
	IP      string `yaml:"ip"`
	From    string `yaml:"from"`
	To      string `yaml:"to"`
	Method  string `yaml:"method"`
	Status  int    `yaml:"status"`
	Pattern string `yaml:"pattern"`
	MinSize *int64 `yaml:"min-size"`
}

// LoadSpec reads a FilterSpec from a YAML file. Any error here is a
// configuration error; nothing has been processed yet.
func LoadSpec(path string) (model.FilterSpec, error) {
	spec := model.FilterSpec{MinSize: -1}

	data, err := os.ReadFile(path)
	if err != nil {
		return spec, fmt.Errorf("reading filter file: %w", err)
	}

	var file specFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return spec, fmt.Errorf("parsing filter file %s: %w", path, err)
	}

	spec.IP = file.IP
	spec.Method = file.Method
	spec.Status = file.Status
	spec.Pattern = file.Pattern
	if file.MinSize != nil {
		spec.MinSize = *file.MinSize
	}
	if spec.From, err = ParseBoundary(file.From); err != nil {
		return spec, fmt.Errorf("filter file %s: %w", path, err)
	}
	if spec.To, err = ParseBoundary(file.To); err != nil {
		return spec, fmt.Errorf("filter file %s: %w", path, err)
	}

	return spec, nil
}
