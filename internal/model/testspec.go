package model

// ParamType is the declared type tag of a parameter under test.
type ParamType string

const (
	// ParamInt is a 32-bit integer parameter.
	ParamInt ParamType = "int"
	// ParamLong is a 64-bit integer parameter.
	ParamLong ParamType = "long"
	// ParamDouble is a double-precision parameter.
	ParamDouble ParamType = "double"
	// ParamFloat is a single-precision parameter.
	ParamFloat ParamType = "float"
	// ParamString is a string parameter.
	ParamString ParamType = "String"
	// ParamArray is an array parameter.
	ParamArray ParamType = "array"
)

// Numeric reports whether boundary synthesis treats the type as a bounded
// numeric range.
func (t ParamType) Numeric() bool {
	switch t {
	case ParamInt, ParamLong, ParamDouble, ParamFloat:
		return true
	case ParamString, ParamArray:
		return false
	}

	return false
}

// ParameterSpec declares the range and type of one method parameter.
// Min and Max apply to numeric types only. min <= max is assumed, not
// validated; inverted ranges pass through and yield an inverted nominal
// value.
type ParameterSpec struct {
	Name string
	Type ParamType
	Min  float64
	Max  float64
}

// Outcome classifies what a synthesized case expects of the unit under test.
type Outcome int

const (
	// OutcomeValid expects the input to be accepted.
	OutcomeValid Outcome = iota
	// OutcomeRejected expects the input to be rejected or to raise.
	OutcomeRejected
)

// BoundaryCase is one synthesized test case. Value is a literal or symbolic
// token (e.g. "null", `""`, `new int[]{}`); Expectation is the human-readable
// expectation rendered in reports.
type BoundaryCase struct {
	Name        string
	Param       string
	Value       string
	Outcome     Outcome
	Expectation string
}

// PartitionGroup is a named equivalence-class group with its partition
// labels, in document order.
type PartitionGroup struct {
	Name   string
	Labels []string
}
