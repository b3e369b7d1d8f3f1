package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"fixturegen.dev/pkg/fixturegen/internal/domain"
	m "fixturegen.dev/pkg/fixturegen/internal/model"
)

func TestCheckCmd_UpToDate(t *testing.T) {
	mockWorkflow := useMockWorkflow(t)

	cmd := newRootCmd()
	cmd.AddCommand(newCheckCmd())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	mockWorkflow.On("Check", mock.Anything, mock.MatchedBy(func(args domain.GenerateArgs) bool {
		return args.Resources == m.Path("samples") && args.Suite == "Grammar"
	})).Return(nil, nil)

	cmd.SetArgs([]string{"check", "-r", "samples", "--suite", "Grammar"})
	err := cmd.Execute()
	require.NoError(t, err)

	mockWorkflow.AssertExpectations(t)
}

func TestCheckCmd_StaleFails(t *testing.T) {
	mockWorkflow := useMockWorkflow(t)

	cmd := newRootCmd()
	cmd.AddCommand(newCheckCmd())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	stale := []m.StaleFile{{Path: "samples/ast.a.json", Missing: true}}
	mockWorkflow.EXPECT().Check(mock.Anything, mock.Anything).Return(stale, domain.ErrStale)

	cmd.SetArgs([]string{"check"})
	err := cmd.Execute()
	require.ErrorIs(t, err, domain.ErrStale)
}
