package domain

import (
	"fmt"
	"math"
	"strconv"
	"unicode"

	m "covlens.dev/pkg/covlens/internal/model"
)

// Expectation labels rendered next to each synthesized case.
const (
	expectValid           = "Valid"
	expectValidOrSpecial  = "Valid or special handling"
	expectRejected        = "Exception or rejection"
	expectRejectedSpecial = "Exception or special handling"
)

// SynthesizeBoundary emits the canonical boundary-value case set for a
// method. Numeric parameters yield exactly seven cases in fixed order; the
// nominal value is the floor of the midpoint regardless of the declared
// numeric type. String and array parameters yield exactly three cases each
// (null, empty, single element). Parameters of unrecognized type produce no
// cases; covering them is the caller's responsibility.
func SynthesizeBoundary(methodName string, params []m.ParameterSpec) []m.BoundaryCase {
	var cases []m.BoundaryCase

	for _, param := range params {
		switch {
		case param.Type.Numeric():
			cases = append(cases, numericCases(methodName, param)...)
		case param.Type == m.ParamString:
			cases = append(cases, stringCases(methodName, param.Name)...)
		case param.Type == m.ParamArray:
			cases = append(cases, arrayCases(methodName, param.Name)...)
		}
	}

	return cases
}

func numericCases(method string, param m.ParameterSpec) []m.BoundaryCase {
	// Floor midpoint mirrors integer division, for negatives as well.
	nominal := math.Floor((param.Min + param.Max) / 2)

	values := []struct {
		label   string
		value   float64
		outcome m.Outcome
	}{
		{"BelowMin", param.Min - 1, m.OutcomeRejected},
		{"AtMin", param.Min, m.OutcomeValid},
		{"JustAboveMin", param.Min + 1, m.OutcomeValid},
		{"Nominal", nominal, m.OutcomeValid},
		{"JustBelowMax", param.Max - 1, m.OutcomeValid},
		{"AtMax", param.Max, m.OutcomeValid},
		{"AboveMax", param.Max + 1, m.OutcomeRejected},
	}

	cases := make([]m.BoundaryCase, 0, len(values))

	for _, v := range values {
		expectation := expectValid
		if v.outcome == m.OutcomeRejected {
			expectation = expectRejected
		}

		cases = append(cases, m.BoundaryCase{
			Name:        caseName(method, param.Name, v.label),
			Param:       param.Name,
			Value:       formatNumber(v.value),
			Outcome:     v.outcome,
			Expectation: expectation,
		})
	}

	return cases
}

func stringCases(method, param string) []m.BoundaryCase {
	return []m.BoundaryCase{
		{
			Name:        caseName(method, param, "Null"),
			Param:       param,
			Value:       "null",
			Outcome:     m.OutcomeRejected,
			Expectation: expectRejectedSpecial,
		},
		{
			Name:        caseName(method, param, "Empty"),
			Param:       param,
			Value:       `""`,
			Outcome:     m.OutcomeValid,
			Expectation: expectValidOrSpecial,
		},
		{
			Name:        caseName(method, param, "SingleChar"),
			Param:       param,
			Value:       `"a"`,
			Outcome:     m.OutcomeValid,
			Expectation: expectValid,
		},
	}
}

func arrayCases(method, param string) []m.BoundaryCase {
	return []m.BoundaryCase{
		{
			Name:        caseName(method, param, "Null"),
			Param:       param,
			Value:       "null",
			Outcome:     m.OutcomeRejected,
			Expectation: expectRejectedSpecial,
		},
		{
			Name:        caseName(method, param, "Empty"),
			Param:       param,
			Value:       "new int[]{}",
			Outcome:     m.OutcomeValid,
			Expectation: expectValidOrSpecial,
		},
		{
			Name:        caseName(method, param, "Single"),
			Param:       param,
			Value:       "new int[]{1}",
			Outcome:     m.OutcomeValid,
			Expectation: expectValid,
		},
	}
}

func caseName(method, param, label string) string {
	return fmt.Sprintf("test%s_%s_%s", capitalize(method), param, label)
}

// capitalize upper-cases the first rune and leaves the rest untouched, so
// camelCase method names survive in generated test names.
func capitalize(s string) string {
	if s == "" {
		return s
	}

	runes := []rune(s)
	runes[0] = unicode.ToUpper(runes[0])

	return string(runes)
}

// formatNumber renders a numeric boundary value as a literal: whole values
// print without a decimal point.
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
