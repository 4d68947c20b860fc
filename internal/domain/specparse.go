package domain

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"

	m "covlens.dev/pkg/covlens/internal/model"
)

// Parameter range defaults, applied when a spec entry omits a field.
const (
	defaultParamType = m.ParamInt
	defaultParamMin  = 0
	defaultParamMax  = 100
)

// rawParameterSpec is the wire shape of one parameter entry.
type rawParameterSpec struct {
	Type *string  `json:"type" yaml:"type"`
	Min  *float64 `json:"min"  yaml:"min"`
	Max  *float64 `json:"max"  yaml:"max"`
}

func (r rawParameterSpec) spec(name string) m.ParameterSpec {
	spec := m.ParameterSpec{
		Name: name,
		Type: defaultParamType,
		Min:  defaultParamMin,
		Max:  defaultParamMax,
	}

	if r.Type != nil {
		spec.Type = m.ParamType(*r.Type)
	}

	if r.Min != nil {
		spec.Min = *r.Min
	}

	if r.Max != nil {
		spec.Max = *r.Max
	}

	return spec
}

// ParseParameterSpecsJSON reads a parameter-range document of the form
// {"param": {"min": 0, "max": 100, "type": "int"}}. Decoding walks the token
// stream so the returned slice keeps document order; synthesized output must
// be byte-identical across calls and Go map iteration is not.
func ParseParameterSpecsJSON(data []byte) ([]m.ParameterSpec, error) {
	decoder := json.NewDecoder(bytes.NewReader(data))

	if err := expectDelim(decoder, '{'); err != nil {
		return nil, &InvalidSpecificationError{Err: err}
	}

	var specs []m.ParameterSpec

	for decoder.More() {
		token, err := decoder.Token()
		if err != nil {
			return nil, &InvalidSpecificationError{Err: err}
		}

		name, ok := token.(string)
		if !ok {
			return nil, &InvalidSpecificationError{Err: fmt.Errorf("expected parameter name, got %v", token)}
		}

		var raw rawParameterSpec
		if err := decoder.Decode(&raw); err != nil {
			return nil, &InvalidSpecificationError{Err: err}
		}

		specs = append(specs, raw.spec(name))
	}

	if err := expectDelim(decoder, '}'); err != nil {
		return nil, &InvalidSpecificationError{Err: err}
	}

	return specs, nil
}

// ParsePartitionGroupsJSON reads an equivalence-class document of the form
// {"valid": ["positive", "zero"], "invalid": ["negative"]}, keeping document
// order for both groups and labels.
func ParsePartitionGroupsJSON(data []byte) ([]m.PartitionGroup, error) {
	decoder := json.NewDecoder(bytes.NewReader(data))

	if err := expectDelim(decoder, '{'); err != nil {
		return nil, &InvalidSpecificationError{Err: err}
	}

	var groups []m.PartitionGroup

	for decoder.More() {
		token, err := decoder.Token()
		if err != nil {
			return nil, &InvalidSpecificationError{Err: err}
		}

		name, ok := token.(string)
		if !ok {
			return nil, &InvalidSpecificationError{Err: fmt.Errorf("expected group name, got %v", token)}
		}

		var labels []string
		if err := decoder.Decode(&labels); err != nil {
			return nil, &InvalidSpecificationError{Err: err}
		}

		groups = append(groups, m.PartitionGroup{Name: name, Labels: labels})
	}

	if err := expectDelim(decoder, '}'); err != nil {
		return nil, &InvalidSpecificationError{Err: err}
	}

	return groups, nil
}

func expectDelim(decoder *json.Decoder, want rune) error {
	token, err := decoder.Token()
	if err != nil {
		return err
	}

	delim, ok := token.(json.Delim)
	if !ok || rune(delim) != want {
		return fmt.Errorf("expected %q, got %v", want, token)
	}

	return nil
}

// ParseParameterSpecsYAML reads the same parameter-range shape from a YAML
// document via node walking; yaml.Node preserves mapping order where plain
// map decoding would not.
func ParseParameterSpecsYAML(data []byte) ([]m.ParameterSpec, error) {
	mapping, err := yamlMapping(data)
	if err != nil {
		return nil, err
	}

	if mapping == nil {
		return nil, nil
	}

	var specs []m.ParameterSpec

	for i := 0; i+1 < len(mapping.Content); i += 2 {
		key := mapping.Content[i]
		value := mapping.Content[i+1]

		var raw rawParameterSpec
		if err := value.Decode(&raw); err != nil {
			return nil, &InvalidSpecificationError{Err: err}
		}

		specs = append(specs, raw.spec(key.Value))
	}

	return specs, nil
}

// ParsePartitionGroupsYAML reads the equivalence-class shape from YAML,
// preserving order.
func ParsePartitionGroupsYAML(data []byte) ([]m.PartitionGroup, error) {
	mapping, err := yamlMapping(data)
	if err != nil {
		return nil, err
	}

	if mapping == nil {
		return nil, nil
	}

	var groups []m.PartitionGroup

	for i := 0; i+1 < len(mapping.Content); i += 2 {
		key := mapping.Content[i]
		value := mapping.Content[i+1]

		var labels []string
		if err := value.Decode(&labels); err != nil {
			return nil, &InvalidSpecificationError{Err: err}
		}

		groups = append(groups, m.PartitionGroup{Name: key.Value, Labels: labels})
	}

	return groups, nil
}

func yamlMapping(data []byte) (*yaml.Node, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, &InvalidSpecificationError{Err: err}
	}

	if len(doc.Content) == 0 {
		return nil, nil
	}

	mapping := doc.Content[0]
	if mapping.Kind != yaml.MappingNode {
		return nil, &InvalidSpecificationError{Err: fmt.Errorf("expected a mapping at the document root")}
	}

	return mapping, nil
}
