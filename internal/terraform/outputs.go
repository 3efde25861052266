// Package terraform reads provisioning outputs produced by Terraform or
// OpenTofu and normalizes them into a flat key/value set.
//
// Two document shapes are accepted: the result of "terraform output
// -json", where each value may be wrapped in a {"value": ...} envelope,
// and a full terraform.tfstate file, whose outputs live under a
// top-level "outputs" key. Either way the caller sees plain values with
// all envelopes removed.
package terraform

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/mitchellh/mapstructure"
)

// Outputs is the flattened output set: one entry per top-level output
// with any metadata envelope already unwrapped. Values are whatever the
// JSON held, typically strings or lists of strings; type mismatches are
// left for the inventory builder to deal with.
type Outputs map[string]any

// stateOutput is one enveloped output as stored in a state file.
type stateOutput struct {
	Value     any  `mapstructure:"value"`
	Sensitive bool `mapstructure:"sensitive"`
}

// state is the subset of a terraform.tfstate document needed to lift
// its outputs.
type state struct {
	Version int                    `mapstructure:"version"`
	Outputs map[string]stateOutput `mapstructure:"outputs"`
}

// LoadOutputs reads the JSON document at path and returns the
// normalized output set.
func LoadOutputs(path string) (Outputs, error) {
	// #nosec G304
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read outputs file: %w", err)
	}

	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse outputs JSON: %w", err)
	}

	if st, ok := stateDocument(raw); ok {
		outs := make(Outputs, len(st.Outputs))
		for k, v := range st.Outputs {
			outs[k] = v.Value
		}
		return outs, nil
	}

	outs := make(Outputs, len(raw))
	for k, v := range raw {
		outs[k] = unwrap(v)
	}
	return outs, nil
}

// stateDocument decodes raw into a state struct if it looks like a
// terraform.tfstate document rather than "terraform output -json"
// output. A state file carries top-level "version" and "outputs" keys;
// a plain outputs dump carries neither.
func stateDocument(raw map[string]any) (*state, bool) {
	if _, ok := raw["version"]; !ok {
		return nil, false
	}
	if _, ok := raw["outputs"].(map[string]any); !ok {
		return nil, false
	}
	var st state
	if err := mapstructure.Decode(raw, &st); err != nil {
		return nil, false
	}
	return &st, true
}

// unwrap removes a one-level {"value": ...} envelope if present.
func unwrap(v any) any {
	m, ok := v.(map[string]any)
	if !ok {
		return v
	}
	inner, ok := m["value"]
	if !ok {
		return v
	}
	return inner
}
