package model

// SmellKind names a heuristic code-smell category.
type SmellKind string

const (
	// SmellLongMethod flags methods spanning more than 50 lines.
	SmellLongMethod SmellKind = "Long Method"
	// SmellLargeClass flags files longer than 500 lines.
	SmellLargeClass SmellKind = "Large Class"
	// SmellMagicNumber flags the first bare multi-digit literal in a file.
	SmellMagicNumber SmellKind = "Magic Number"
	// SmellDuplicateCode flags lines repeated more than twice.
	SmellDuplicateCode SmellKind = "Duplicate Code"
)

// Severity ranks how urgent a smell is.
type Severity int

const (
	// SeverityLow is informational.
	SeverityLow Severity = iota
	// SeverityMedium deserves attention.
	SeverityMedium
	// SeverityHigh should be addressed.
	SeverityHigh
)

// String returns the display label for the severity.
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "Low"
	case SeverityMedium:
		return "Medium"
	case SeverityHigh:
		return "High"
	}

	return "Unknown"
}

// CodeSmell is one detected smell. Location is a line reference or a
// file-scope marker; Unit is the method name or "N/A" for file-level smells.
type CodeSmell struct {
	Kind       SmellKind
	Location   string
	Unit       string
	Severity   Severity
	Suggestion string
}
