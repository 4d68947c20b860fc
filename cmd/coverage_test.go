package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	m "covlens.dev/pkg/covlens/internal/model"
)

func TestCoverageCmd_UsesConfiguredReport(t *testing.T) {
	fake := &fakeWorkflow{}
	swapWorkflow(t, fake)

	cmd := baseRootCmd()
	cmd.AddCommand(newCoverageCmd())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"coverage"})

	err := cmd.Execute()
	require.NoError(t, err)

	require.NotNil(t, fake.coverageArgs)
	require.Equal(t, m.Path("target/site/jacoco/jacoco.xml"), fake.coverageArgs.Report)
}

func TestNewCoverageCmd(t *testing.T) {
	cmd := newCoverageCmd()

	require.Equal(t, "coverage", cmd.Use)
	require.NotEmpty(t, cmd.Short)
	require.NotEmpty(t, cmd.Long)
}
