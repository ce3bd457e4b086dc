package loader

import (
	"fmt"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/frherrer/atomic-docgen/internal/domain"
)

var techniqueIDPattern = regexp.MustCompile(`(?i)^T\d{4}(\.\d{3})?$`)

// rawTechnique mirrors the on-disk YAML schema.
type rawTechnique struct {
	AttackTechnique string    `yaml:"attack_technique"`
	DisplayName     string    `yaml:"display_name"`
	Name            string    `yaml:"name"` // legacy alias for display_name
	AtomicTests     []rawTest `yaml:"atomic_tests"`
}

type rawTest struct {
	Name               string        `yaml:"name"`
	Description        string        `yaml:"description"`
	SupportedPlatforms []string      `yaml:"supported_platforms"`
	AutoGeneratedGUID  string        `yaml:"auto_generated_guid"`
	InputArguments     orderedInputs `yaml:"input_arguments"`
	Executor           rawExecutor   `yaml:"executor"`
}

type rawExecutor struct {
	Name              string `yaml:"name"`
	ElevationRequired bool   `yaml:"elevation_required"`
	Command           string `yaml:"command"`
	CleanupCommand    string `yaml:"cleanup_command"`
}

// orderedInputs decodes an input_arguments mapping while preserving the
// document order of its keys. yaml.v3 decodes mappings into Go maps, which
// would lose the order the inputs table must be rendered in, so the mapping
// node is walked directly.
type orderedInputs []domain.InputArgument

func (o *orderedInputs) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode && node.Tag == "!!null" {
		return nil // "input_arguments:" with no entries
	}
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("input_arguments: expected a mapping, got %s", kindName(node.Kind))
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		keyNode := node.Content[i]
		valNode := node.Content[i+1]

		var spec struct {
			Description string    `yaml:"description"`
			Type        string    `yaml:"type"`
			Default     yaml.Node `yaml:"default"`
		}
		if err := valNode.Decode(&spec); err != nil {
			return fmt.Errorf("input_arguments.%s: %w", keyNode.Value, err)
		}

		*o = append(*o, domain.InputArgument{
			Name:        keyNode.Value,
			Description: spec.Description,
			Type:        spec.Type,
			Default:     scalarString(&spec.Default),
		})
	}
	return nil
}

// scalarString renders a YAML value to the string form used in command
// substitution and the inputs table. Null and absent values become "".
func scalarString(node *yaml.Node) string {
	switch node.Kind {
	case 0:
		return ""
	case yaml.ScalarNode:
		if node.Tag == "!!null" {
			return ""
		}
		return node.Value
	default:
		// Non-scalar defaults are rare; keep their YAML text form.
		out, err := yaml.Marshal(node)
		if err != nil {
			return ""
		}
		return strings.TrimRight(string(out), "\n")
	}
}

func kindName(k yaml.Kind) string {
	switch k {
	case yaml.DocumentNode:
		return "document"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.MappingNode:
		return "mapping"
	case yaml.ScalarNode:
		return "scalar"
	case yaml.AliasNode:
		return "alias"
	}
	return "unknown"
}

// Load parses technique YAML bytes into the domain model. The path is used
// for error context only; no file access happens here.
func Load(path string, data []byte) (*domain.Technique, error) {
	var raw rawTechnique
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, domain.NewError("load", path, "failed to parse technique YAML", err)
	}

	display := raw.DisplayName
	if display == "" {
		display = raw.Name
	}

	tech := &domain.Technique{
		ID:          strings.TrimSpace(raw.AttackTechnique),
		DisplayName: strings.TrimSpace(display),
	}
	for _, rt := range raw.AtomicTests {
		tech.Tests = append(tech.Tests, domain.Test{
			Name:               rt.Name,
			Description:        rt.Description,
			SupportedPlatforms: rt.SupportedPlatforms,
			AutoGeneratedGUID:  rt.AutoGeneratedGUID,
			InputArguments:     rt.InputArguments,
			Executor: domain.Executor{
				Name:              rt.Executor.Name,
				ElevationRequired: rt.Executor.ElevationRequired,
				Command:           rt.Executor.Command,
				CleanupCommand:    rt.Executor.CleanupCommand,
			},
		})
	}
	return tech, nil
}

// Validate checks the structural preconditions for rendering. Anything it
// does not reject degrades gracefully downstream.
func Validate(t *domain.Technique) error {
	if t.ID == "" {
		return domain.NewStructuralError("", "attack_technique", "missing technique id")
	}
	if t.DisplayName == "" {
		return domain.NewStructuralError(t.ID, "display_name", "missing display name")
	}
	if len(t.Tests) == 0 {
		return domain.NewStructuralError(t.ID, "atomic_tests", "no tests defined")
	}
	return nil
}

// ValidID reports whether the technique id matches the T####(.###) pattern.
// A mismatch is advisory only; rendering proceeds either way.
func ValidID(id string) bool {
	return techniqueIDPattern.MatchString(id)
}
