package domain

import (
	"strings"

	m "covlens.dev/pkg/covlens/internal/model"
)

// ClassifyGitStatus parses `git status --porcelain` output into buckets.
func ClassifyGitStatus(porcelain string) m.GitStatusSummary {
	var summary m.GitStatusSummary

	for _, line := range strings.Split(strings.TrimSpace(porcelain), "\n") {
		if len(line) < 2 {
			continue
		}

		switch {
		case strings.HasPrefix(line, "??"):
			summary.Untracked = append(summary.Untracked, line)
			continue
		case strings.HasPrefix(line, "UU"):
			summary.Conflicts = append(summary.Conflicts, line)
			continue
		}

		if strings.ContainsRune("AMDR", rune(line[0])) {
			summary.Staged = append(summary.Staged, line)
		}

		if strings.ContainsRune("MD", rune(line[1])) {
			summary.Unstaged = append(summary.Unstaged, line)
		}
	}

	return summary
}
