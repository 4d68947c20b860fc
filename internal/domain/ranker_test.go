package domain

import (
	"testing"

	"github.com/stretchr/testify/require"

	m "covlens.dev/pkg/covlens/internal/model"
)

func coverageTree() *m.ScopeNode {
	method := func(name string, missed, covered int) *m.ScopeNode {
		return &m.ScopeNode{
			Name: name,
			Kind: m.ScopeMethod,
			Counters: []m.CoverageCounter{
				{Kind: m.CounterLine, Missed: missed, Covered: covered},
			},
		}
	}

	return &m.ScopeNode{
		Name: "demo",
		Kind: m.ScopeRoot,
		Counters: []m.CoverageCounter{
			{Kind: m.CounterLine, Missed: 30, Covered: 70},
			{Kind: m.CounterBranch, Missed: 10, Covered: 10},
		},
		Children: []*m.ScopeNode{
			{
				Name: "com.example.core",
				Kind: m.ScopePackage,
				Counters: []m.CoverageCounter{
					{Kind: m.CounterLine, Missed: 20, Covered: 60},
					{Kind: m.CounterMethod, Missed: 2, Covered: 6},
				},
				Children: []*m.ScopeNode{
					{
						Name: "Engine",
						Kind: m.ScopeClass,
						Children: []*m.ScopeNode{
							method("start", 10, 0),
							method("stop", 5, 5),
							method("restart", 3, 7),
						},
					},
				},
			},
			{
				Name: "com.example.util",
				Kind: m.ScopePackage,
				Counters: []m.CoverageCounter{
					{Kind: m.CounterLine, Missed: 10, Covered: 10},
					{Kind: m.CounterMethod, Missed: 1, Covered: 3},
				},
				Children: []*m.ScopeNode{
					{
						Name: "Strings",
						Kind: m.ScopeClass,
						Children: []*m.ScopeNode{
							method("pad", 8, 2),
							method("trim", 0, 10),
						},
					},
				},
			},
		},
	}
}

func TestRankOverall_RootCountersAreAuthoritative(t *testing.T) {
	rows := RankOverall(coverageTree())

	require.Len(t, rows, 3)

	require.Equal(t, m.CounterLine, rows[0].Kind)
	require.Equal(t, 70, rows[0].Covered)
	require.Equal(t, 30, rows[0].Missed)
	require.InDelta(t, 70.0, rows[0].Percent, 0.001)

	require.Equal(t, m.CounterBranch, rows[1].Kind)
	require.InDelta(t, 50.0, rows[1].Percent, 0.001)
}

func TestRankOverall_MissingKindsSummedAcrossPackages(t *testing.T) {
	rows := RankOverall(coverageTree())

	// METHOD never appears at the root, so it is summed from the packages.
	require.Equal(t, m.CounterMethod, rows[2].Kind)
	require.Equal(t, 9, rows[2].Covered)
	require.Equal(t, 3, rows[2].Missed)
	require.InDelta(t, 75.0, rows[2].Percent, 0.001)
}

func TestRankOverall_SkipsEmptyCounters(t *testing.T) {
	root := &m.ScopeNode{
		Kind: m.ScopeRoot,
		Counters: []m.CoverageCounter{
			{Kind: m.CounterLine, Missed: 0, Covered: 0},
		},
	}

	require.Empty(t, RankOverall(root))
}

func TestRankByPackage_DocumentOrder(t *testing.T) {
	rows := RankByPackage(coverageTree())

	require.Len(t, rows, 2)
	require.Equal(t, "com.example.core", rows[0].Name)
	require.InDelta(t, 75.0, rows[0].Percent, 0.001)
	require.Equal(t, 60, rows[0].Covered)
	require.Equal(t, 80, rows[0].Total)

	require.Equal(t, "com.example.util", rows[1].Name)
	require.InDelta(t, 50.0, rows[1].Percent, 0.001)
}

func TestRankUncovered_StrictThreshold(t *testing.T) {
	items, total := RankUncovered(coverageTree(), 50.0, DefaultUncoveredLimit)

	// stop sits exactly at 50% and must not be listed.
	require.Equal(t, 2, total)
	require.Len(t, items, 2)

	require.Equal(t, "start", items[0].Method)
	require.InDelta(t, 0.0, items[0].CoveragePercent, 0.001)
	require.Equal(t, 10, items[0].LinesMissed)

	require.Equal(t, "pad", items[1].Method)
	require.InDelta(t, 20.0, items[1].CoveragePercent, 0.001)
}

func TestRankUncovered_SortedAscendingStable(t *testing.T) {
	root := &m.ScopeNode{
		Kind: m.ScopeRoot,
		Children: []*m.ScopeNode{
			{
				Name: "p",
				Kind: m.ScopePackage,
				Children: []*m.ScopeNode{
					{
						Name: "C",
						Kind: m.ScopeClass,
						Children: []*m.ScopeNode{
							{Name: "first", Kind: m.ScopeMethod, Counters: []m.CoverageCounter{{Kind: m.CounterLine, Missed: 3, Covered: 1}}},
							{Name: "second", Kind: m.ScopeMethod, Counters: []m.CoverageCounter{{Kind: m.CounterLine, Missed: 6, Covered: 2}}},
							{Name: "third", Kind: m.ScopeMethod, Counters: []m.CoverageCounter{{Kind: m.CounterLine, Missed: 9, Covered: 1}}},
						},
					},
				},
			},
		},
	}

	items, total := RankUncovered(root, 50.0, 20)
	require.Equal(t, 3, total)

	// third has the lowest coverage; first and second tie at 25% and keep
	// discovery order.
	require.Equal(t, "third", items[0].Method)
	require.Equal(t, "first", items[1].Method)
	require.Equal(t, "second", items[2].Method)
}

func TestRankUncovered_LimitTruncatesButTotalCounts(t *testing.T) {
	items, total := RankUncovered(coverageTree(), 60.0, 1)

	require.Equal(t, 3, total)
	require.Len(t, items, 1)
	require.Equal(t, "start", items[0].Method)
}

func TestRankUncovered_NoMethods(t *testing.T) {
	items, total := RankUncovered(&m.ScopeNode{Kind: m.ScopeRoot}, 50.0, 20)
	require.Zero(t, total)
	require.Empty(t, items)
}
