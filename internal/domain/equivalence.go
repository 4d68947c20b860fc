package domain

import m "covlens.dev/pkg/covlens/internal/model"

// SynthesizeEquivalence turns caller-supplied partition groups into one
// representative-test recommendation per label, preserving document order.
// Group names like "valid"/"invalid" are conventions, not enforced, and no
// check is made that the partitions are disjoint or exhaustive; correctness
// of the partitioning stays with the caller.
func SynthesizeEquivalence(groups []m.PartitionGroup) []m.PartitionGroup {
	out := make([]m.PartitionGroup, 0, len(groups))

	for _, group := range groups {
		labels := make([]string, len(group.Labels))
		copy(labels, group.Labels)
		out = append(out, m.PartitionGroup{Name: group.Name, Labels: labels})
	}

	return out
}
