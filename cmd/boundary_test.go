package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	m "covlens.dev/pkg/covlens/internal/model"
)

func TestBoundaryCmd(t *testing.T) {
	fake := &fakeWorkflow{}
	swapWorkflow(t, fake)

	cmd := baseRootCmd()
	cmd.AddCommand(newBoundaryCmd())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"boundary", "com/example/Order.java", "applyDiscount", "--spec", "ranges.yaml"})

	err := cmd.Execute()
	require.NoError(t, err)

	require.NotNil(t, fake.boundaryArgs)
	require.Equal(t, m.Path("com/example/Order.java"), fake.boundaryArgs.Path)
	require.Equal(t, "applyDiscount", fake.boundaryArgs.Method)
	require.Equal(t, m.Path("ranges.yaml"), fake.boundaryArgs.Spec)
}

func TestBoundaryCmd_SpecFlagRequired(t *testing.T) {
	swapWorkflow(t, &fakeWorkflow{})

	cmd := baseRootCmd()
	cmd.AddCommand(newBoundaryCmd())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"boundary", "Order.java", "applyDiscount"})

	err := cmd.Execute()
	require.Error(t, err)
}

func TestEquivalenceCmd(t *testing.T) {
	fake := &fakeWorkflow{}
	swapWorkflow(t, fake)

	cmd := baseRootCmd()
	cmd.AddCommand(newEquivalenceCmd())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"equivalence", "com/example/Order.java", "applyDiscount", "--spec", "classes.yaml"})

	err := cmd.Execute()
	require.NoError(t, err)

	require.NotNil(t, fake.equivalenceArgs)
	require.Equal(t, m.Path("classes.yaml"), fake.equivalenceArgs.Spec)
	require.Equal(t, "applyDiscount", fake.equivalenceArgs.Method)
}
