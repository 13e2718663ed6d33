// Package config loads named Levenshtein weight/cutoff profiles: the
// per-field tuning ("zip code" vs. "street address") record-linkage and
// deduplication callers need, per spec.md §1's named use cases. Profiles
// are YAML, validated against one embedded JSON Schema document — the
// teacher's schema-validated config pattern (logging.LoadConfig), trimmed
// of its crucible-catalog indirection since this module has a single,
// self-contained schema rather than a resolved multi-file catalog.
package config

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"

	"github.com/fulmenhq/strmetrics/distance/levenshtein"
)

//go:embed schema.json
var schemaJSON []byte

// Profile is one named weight/cutoff configuration for the Levenshtein
// engine: insert/delete/replace costs, plus optional score cutoffs a
// metric.Metric call can pass through.
type Profile struct {
	Weights          levenshtein.Weights
	ScoreCutoff      *int
	NormalizedCutoff *float64
}

// profileDoc is the YAML/JSON shape a profile is validated and decoded
// from — snake_case field names matching the embedded schema.
type profileDoc struct {
	InsertCost       int      `yaml:"insert_cost" json:"insert_cost"`
	DeleteCost       int      `yaml:"delete_cost" json:"delete_cost"`
	ReplaceCost      int      `yaml:"replace_cost" json:"replace_cost"`
	ScoreCutoff      *int     `yaml:"score_cutoff,omitempty" json:"score_cutoff,omitempty"`
	NormalizedCutoff *float64 `yaml:"normalized_cutoff,omitempty" json:"normalized_cutoff,omitempty"`
}

// DefaultProfiles returns the built-in profiles shipped with this module.
// LoadProfiles does not fall back to or merge in these profiles.
func DefaultProfiles() map[string]Profile {
	return map[string]Profile{
		"strict": {Weights: levenshtein.Uniform()},
		"zip_code": {
			Weights:     levenshtein.Weights{Ins: 1, Del: 1, Rep: 2},
			ScoreCutoff: intPtr(1),
		},
		"street_address": {
			Weights:     levenshtein.Uniform(),
			ScoreCutoff: intPtr(3),
		},
	}
}

func intPtr(v int) *int { return &v }

// LoadProfiles parses raw YAML bytes into a set of named profiles,
// validating the document against the embedded schema before decoding.
func LoadProfiles(yamlBytes []byte) (map[string]Profile, error) {
	var raw any
	if err := yaml.Unmarshal(yamlBytes, &raw); err != nil {
		return nil, fmt.Errorf("parsing profile YAML: %w", err)
	}

	// jsonschema validates against encoding/json-shaped values (plain
	// map[string]interface{}, float64, etc.); round-tripping through
	// encoding/json normalizes the types yaml.v3 produces (e.g. int vs.
	// float64) to what the validator expects.
	normalized, err := normalizeViaJSON(raw)
	if err != nil {
		return nil, fmt.Errorf("normalizing profile document: %w", err)
	}

	schema, err := compileSchema()
	if err != nil {
		return nil, fmt.Errorf("compiling profile schema: %w", err)
	}
	if err := schema.Validate(normalized); err != nil {
		return nil, fmt.Errorf("profile document failed schema validation: %w", err)
	}

	var docs map[string]profileDoc
	if err := yaml.Unmarshal(yamlBytes, &docs); err != nil {
		return nil, fmt.Errorf("decoding profile YAML: %w", err)
	}

	profiles := make(map[string]Profile, len(docs))
	for name, doc := range docs {
		profiles[name] = Profile{
			Weights:          levenshtein.Weights{Ins: doc.InsertCost, Del: doc.DeleteCost, Rep: doc.ReplaceCost},
			ScoreCutoff:      doc.ScoreCutoff,
			NormalizedCutoff: doc.NormalizedCutoff,
		}
	}
	return profiles, nil
}

func normalizeViaJSON(v any) (any, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var normalized any
	if err := json.Unmarshal(b, &normalized); err != nil {
		return nil, err
	}
	return normalized, nil
}

func compileSchema() (*jsonschema.Schema, error) {
	compiler := jsonschema.NewCompiler()
	const virtualURL = "memory://strmetrics/config/profile.schema.json"
	if err := compiler.AddResource(virtualURL, bytes.NewReader(schemaJSON)); err != nil {
		return nil, err
	}
	return compiler.Compile(virtualURL)
}
