package domain

import (
	"testing"

	"github.com/stretchr/testify/require"

	m "covlens.dev/pkg/covlens/internal/model"
)

func TestParseParameterSpecsJSON_PreservesDocumentOrder(t *testing.T) {
	doc := `{
		"zeta":  {"min": 1, "max": 5, "type": "int"},
		"alpha": {"min": 0, "max": 10, "type": "double"},
		"mid":   {"type": "String"}
	}`

	specs, err := ParseParameterSpecsJSON([]byte(doc))
	require.NoError(t, err)
	require.Len(t, specs, 3)

	require.Equal(t, "zeta", specs[0].Name)
	require.Equal(t, "alpha", specs[1].Name)
	require.Equal(t, "mid", specs[2].Name)

	require.Equal(t, m.ParamDouble, specs[1].Type)
	require.Equal(t, 0.0, specs[1].Min)
	require.Equal(t, 10.0, specs[1].Max)
}

func TestParseParameterSpecsJSON_AppliesDefaults(t *testing.T) {
	specs, err := ParseParameterSpecsJSON([]byte(`{"n": {}}`))
	require.NoError(t, err)
	require.Len(t, specs, 1)

	require.Equal(t, m.ParamInt, specs[0].Type)
	require.Equal(t, 0.0, specs[0].Min)
	require.Equal(t, 100.0, specs[0].Max)
}

func TestParseParameterSpecsJSON_Invalid(t *testing.T) {
	for _, doc := range []string{
		`not json`,
		`["a", "b"]`,
		`{"n": {"min": "zero"}}`,
	} {
		_, err := ParseParameterSpecsJSON([]byte(doc))
		require.Error(t, err, doc)

		var invalid *InvalidSpecificationError
		require.ErrorAs(t, err, &invalid, doc)
	}
}

func TestParsePartitionGroupsJSON_PreservesOrder(t *testing.T) {
	doc := `{"valid": ["positive", "zero"], "invalid": ["negative", "overflow"]}`

	groups, err := ParsePartitionGroupsJSON([]byte(doc))
	require.NoError(t, err)
	require.Len(t, groups, 2)

	require.Equal(t, "valid", groups[0].Name)
	require.Equal(t, []string{"positive", "zero"}, groups[0].Labels)
	require.Equal(t, "invalid", groups[1].Name)
	require.Equal(t, []string{"negative", "overflow"}, groups[1].Labels)
}

func TestParsePartitionGroupsJSON_Invalid(t *testing.T) {
	_, err := ParsePartitionGroupsJSON([]byte(`{"valid": "not-a-list"}`))
	require.Error(t, err)

	var invalid *InvalidSpecificationError
	require.ErrorAs(t, err, &invalid)
}

func TestParseParameterSpecsYAML_PreservesDocumentOrder(t *testing.T) {
	doc := `
zeta:
  min: 1
  max: 5
alpha:
  type: String
`

	specs, err := ParseParameterSpecsYAML([]byte(doc))
	require.NoError(t, err)
	require.Len(t, specs, 2)

	require.Equal(t, "zeta", specs[0].Name)
	require.Equal(t, 1.0, specs[0].Min)
	require.Equal(t, 5.0, specs[0].Max)

	require.Equal(t, "alpha", specs[1].Name)
	require.Equal(t, m.ParamString, specs[1].Type)
}

func TestParseParameterSpecsYAML_EmptyDocument(t *testing.T) {
	specs, err := ParseParameterSpecsYAML(nil)
	require.NoError(t, err)
	require.Empty(t, specs)
}

func TestParseParameterSpecsYAML_NonMappingRoot(t *testing.T) {
	_, err := ParseParameterSpecsYAML([]byte("- a\n- b\n"))
	require.Error(t, err)

	var invalid *InvalidSpecificationError
	require.ErrorAs(t, err, &invalid)
}

func TestParsePartitionGroupsYAML(t *testing.T) {
	doc := `
valid:
  - positive amount
  - zero amount
invalid:
  - negative amount
`

	groups, err := ParsePartitionGroupsYAML([]byte(doc))
	require.NoError(t, err)
	require.Len(t, groups, 2)

	require.Equal(t, "valid", groups[0].Name)
	require.Equal(t, []string{"positive amount", "zero amount"}, groups[0].Labels)
	require.Equal(t, "invalid", groups[1].Name)
}
