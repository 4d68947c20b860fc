// Package model defines the data structures for coverage analysis and
// test-case synthesis.
package model

// CounterKind identifies the metric a coverage counter tracks.
type CounterKind string

const (
	// CounterInstruction counts bytecode instructions.
	CounterInstruction CounterKind = "INSTRUCTION"
	// CounterBranch counts decision branches.
	CounterBranch CounterKind = "BRANCH"
	// CounterLine counts source lines.
	CounterLine CounterKind = "LINE"
	// CounterComplexity counts cyclomatic complexity.
	CounterComplexity CounterKind = "COMPLEXITY"
	// CounterMethod counts methods.
	CounterMethod CounterKind = "METHOD"
	// CounterClass counts classes.
	CounterClass CounterKind = "CLASS"
)

// CoverageCounter holds missed/covered counts for one metric within a scope.
type CoverageCounter struct {
	Kind    CounterKind
	Missed  int
	Covered int
}

// Total returns the number of probes of this kind in the scope.
func (c CoverageCounter) Total() int {
	return c.Missed + c.Covered
}

// Ratio returns covered/total. The boolean is false when the scope has no
// probes of this kind; such scopes are skipped in reporting rather than
// reported as covered.
func (c CoverageCounter) Ratio() (float64, bool) {
	total := c.Total()
	if total == 0 {
		return 0, false
	}

	return float64(c.Covered) / float64(total), true
}

// ScopeKind identifies a level in the coverage hierarchy.
type ScopeKind int

const (
	// ScopeRoot is the whole report.
	ScopeRoot ScopeKind = iota
	// ScopePackage is a Java package.
	ScopePackage
	// ScopeClass is a class within a package.
	ScopeClass
	// ScopeMethod is a method within a class.
	ScopeMethod
)

// ScopeNode is one named region of the coverage hierarchy. A root holds
// package children, a package holds class children, a class holds method
// children; methods never nest. Counters are unique by kind and kept in
// document encounter order.
type ScopeNode struct {
	Name     string
	Kind     ScopeKind
	Counters []CoverageCounter
	Children []*ScopeNode
}

// Counter returns the counter of the given kind, if the scope has one.
func (n *ScopeNode) Counter(kind CounterKind) (CoverageCounter, bool) {
	for _, c := range n.Counters {
		if c.Kind == kind {
			return c, true
		}
	}

	return CoverageCounter{}, false
}

// SetCounter adds a counter, replacing any earlier counter of the same kind.
// Replacement keeps document order semantics: scope totals appear after
// detail elements in the report format, so the last counter seen wins.
func (n *ScopeNode) SetCounter(c CoverageCounter) {
	for i := range n.Counters {
		if n.Counters[i].Kind == c.Kind {
			n.Counters[i] = c
			return
		}
	}

	n.Counters = append(n.Counters, c)
}

// CounterRow is one line of the overall coverage table.
type CounterRow struct {
	Kind    CounterKind
	Covered int
	Missed  int
	Percent float64
}

// Total returns covered+missed for the row.
func (r CounterRow) Total() int {
	return r.Covered + r.Missed
}

// PackageRow is one line of the package-level coverage listing.
type PackageRow struct {
	Name    string
	Percent float64
	Covered int
	Total   int
}

// UncoveredItem is a method whose line coverage falls below the reporting
// threshold.
type UncoveredItem struct {
	Package         string
	Class           string
	Method          string
	CoveragePercent float64
	LinesMissed     int
}
