package model

// GitStatusSummary buckets porcelain status lines by their index state.
// A line can appear in more than one bucket (e.g. staged with further
// unstaged edits).
type GitStatusSummary struct {
	Staged    []string
	Unstaged  []string
	Untracked []string
	Conflicts []string
}

// Clean reports whether the working tree has no changes.
func (s GitStatusSummary) Clean() bool {
	return len(s.Staged) == 0 && len(s.Unstaged) == 0 &&
		len(s.Untracked) == 0 && len(s.Conflicts) == 0
}
