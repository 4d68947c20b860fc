package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClassifyGitStatus_Buckets(t *testing.T) {
	porcelain := `M  staged.go
 M unstaged.go
A  added.go
?? newfile.go
UU conflicted.go
MM both.go
D  deleted.go
 D removed.go
R  renamed.go`

	summary := ClassifyGitStatus(porcelain)

	require.Equal(t, []string{"M  staged.go", "A  added.go", "MM both.go", "D  deleted.go", "R  renamed.go"}, summary.Staged)
	require.Equal(t, []string{" M unstaged.go", "MM both.go", " D removed.go"}, summary.Unstaged)
	require.Equal(t, []string{"?? newfile.go"}, summary.Untracked)
	require.Equal(t, []string{"UU conflicted.go"}, summary.Conflicts)
}

func TestClassifyGitStatus_CleanTree(t *testing.T) {
	summary := ClassifyGitStatus("")

	require.True(t, summary.Clean())
	require.Empty(t, summary.Staged)
	require.Empty(t, summary.Untracked)
}

func TestClassifyGitStatus_PartiallyStagedFileInBothBuckets(t *testing.T) {
	summary := ClassifyGitStatus("MM service.go")

	require.Equal(t, []string{"MM service.go"}, summary.Staged)
	require.Equal(t, []string{"MM service.go"}, summary.Unstaged)
	require.False(t, summary.Clean())
}
