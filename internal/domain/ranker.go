package domain

import (
	"sort"

	m "covlens.dev/pkg/covlens/internal/model"
)

// Defaults for uncovered-method ranking. Both are configurable knobs; the
// defaults match the reporting contract.
const (
	DefaultUncoveredThreshold = 50.0
	DefaultUncoveredLimit     = 20
)

// reportable is the skip policy for coverage counters: a scope with no
// probes of a kind is omitted from that kind's reporting. This guards the
// ratio against a zero denominator and avoids claiming full coverage for
// empty scopes.
func reportable(c m.CoverageCounter) bool {
	return c.Total() > 0
}

// RankOverall aggregates the report at the root: one row per distinct
// counter kind, in encounter order. Root-attributed counters are
// authoritative; kinds that only appear at package level are summed there.
func RankOverall(root *m.ScopeNode) []m.CounterRow {
	var rows []m.CounterRow

	seen := make(map[m.CounterKind]bool)

	for _, counter := range root.Counters {
		if !reportable(counter) {
			continue
		}

		rows = append(rows, counterRow(counter))
		seen[counter.Kind] = true
	}

	// Kinds missing at the root are summed across package scopes.
	sums := make(map[m.CounterKind]*m.CoverageCounter)

	var order []m.CounterKind

	for _, pkg := range root.Children {
		for _, counter := range pkg.Counters {
			if seen[counter.Kind] {
				continue
			}

			sum, ok := sums[counter.Kind]
			if !ok {
				sum = &m.CoverageCounter{Kind: counter.Kind}
				sums[counter.Kind] = sum
				order = append(order, counter.Kind)
			}

			sum.Missed += counter.Missed
			sum.Covered += counter.Covered
		}
	}

	for _, kind := range order {
		if counter := *sums[kind]; reportable(counter) {
			rows = append(rows, counterRow(counter))
		}
	}

	return rows
}

func counterRow(counter m.CoverageCounter) m.CounterRow {
	ratio, _ := counter.Ratio()

	return m.CounterRow{
		Kind:    counter.Kind,
		Covered: counter.Covered,
		Missed:  counter.Missed,
		Percent: ratio * 100,
	}
}

// RankByPackage lists line coverage per package in document encounter order.
// Packages without a defined LINE ratio are skipped. The list is an
// overview, not a priority ranking, so it is deliberately not sorted by
// value.
func RankByPackage(root *m.ScopeNode) []m.PackageRow {
	var rows []m.PackageRow

	for _, pkg := range root.Children {
		if pkg.Kind != m.ScopePackage {
			continue
		}

		counter, ok := pkg.Counter(m.CounterLine)
		if !ok || !reportable(counter) {
			continue
		}

		ratio, _ := counter.Ratio()
		rows = append(rows, m.PackageRow{
			Name:    pkg.Name,
			Percent: ratio * 100,
			Covered: counter.Covered,
			Total:   counter.Total(),
		})
	}

	return rows
}

// RankUncovered collects methods whose line coverage is strictly below
// threshold percent, sorted ascending by coverage with discovery order
// preserved on ties. At most limit items are returned; the second result is
// the total number found so callers can summarize the remainder.
func RankUncovered(root *m.ScopeNode, threshold float64, limit int) ([]m.UncoveredItem, int) {
	var items []m.UncoveredItem

	for _, pkg := range root.Children {
		for _, class := range pkg.Children {
			for _, method := range class.Children {
				if method.Kind != m.ScopeMethod {
					continue
				}

				counter, ok := method.Counter(m.CounterLine)
				if !ok || !reportable(counter) {
					continue
				}

				ratio, _ := counter.Ratio()
				percent := ratio * 100

				if percent >= threshold {
					continue
				}

				items = append(items, m.UncoveredItem{
					Package:         pkg.Name,
					Class:           class.Name,
					Method:          method.Name,
					CoveragePercent: percent,
					LinesMissed:     counter.Missed,
				})
			}
		}
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].CoveragePercent < items[j].CoveragePercent
	})

	total := len(items)
	if limit >= 0 && total > limit {
		items = items[:limit]
	}

	return items, total
}
