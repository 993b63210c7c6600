package flow

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/posty-app/post-api/internal/infrastructure/logger"
)

//go:embed flow.yml
var defaultFlowYAML []byte

type flowDocument struct {
	Steps []Step `yaml:"steps"`
}

// Default returns the built-in seven step questionnaire.
func Default() *Flow {
	f, err := parse(defaultFlowYAML)
	if err != nil {
		// The embedded document is validated by tests; a parse failure here
		// is a build defect.
		panic(fmt.Sprintf("embedded flow document invalid: %v", err))
	}
	return f
}

// Load returns the flow defined by the yaml file at path, or the embedded
// default when path is empty.
func Load(path string) (*Flow, error) {
	if strings.TrimSpace(path) == "" {
		return Default(), nil
	}

	log := logger.GetLogger()
	cleanPath := filepath.Clean(path)
	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("read flow config %q: %w", cleanPath, err)
	}
	log.Info().Str("path", cleanPath).Msg("loading flow config file")

	return parse(data)
}

func parse(data []byte) (*Flow, error) {
	var doc flowDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse flow config: %w", err)
	}
	if err := validate(doc.Steps); err != nil {
		return nil, err
	}
	return &Flow{steps: doc.Steps}, nil
}
