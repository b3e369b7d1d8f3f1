package cmd

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"fixturegen.dev/pkg/fixturegen/internal/domain"
	domainmocks "fixturegen.dev/pkg/fixturegen/internal/domain/mocks"
	m "fixturegen.dev/pkg/fixturegen/internal/model"
)

func useMockWorkflow(t *testing.T) *domainmocks.MockWorkflow {
	t.Helper()

	mockWorkflow := domainmocks.NewMockWorkflow(t)

	originalWorkflow := workflow
	workflow = mockWorkflow
	t.Cleanup(func() { workflow = originalWorkflow })

	return mockWorkflow
}

func TestGenerateCmd_Defaults(t *testing.T) {
	mockWorkflow := useMockWorkflow(t)

	cmd := newRootCmd()
	cmd.AddCommand(newGenerateCmd())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	mockWorkflow.On("Generate", mock.Anything, mock.MatchedBy(func(args domain.GenerateArgs) bool {
		return args.Resources == m.Path("testdata/samples") &&
			args.Output == m.Path("fixtures_gen_test.go") &&
			args.Suite == "Fixtures" &&
			args.Parser == "go" &&
			args.Package == "" &&
			args.Extension == "" &&
			args.Parallel == uint(defaultParallel) &&
			args.Prune
	})).Return(m.Summary{}, nil)

	cmd.SetArgs([]string{"generate"})
	err := cmd.Execute()
	require.NoError(t, err)

	mockWorkflow.AssertExpectations(t)
}

func TestGenerateCmd_Flags(t *testing.T) {
	mockWorkflow := useMockWorkflow(t)

	cmd := newRootCmd()
	cmd.AddCommand(newGenerateCmd())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	mockWorkflow.On("Generate", mock.Anything, mock.MatchedBy(func(args domain.GenerateArgs) bool {
		return args.Resources == m.Path("res") &&
			args.Output == m.Path("out/gen_test.go") &&
			args.Parser == "yaml" &&
			args.Parallel == 2 &&
			len(args.Exclude) == 1 && args.Exclude[0] == "vendor"
	})).Return(m.Summary{}, nil)

	cmd.SetArgs([]string{"gen", "-r", "res", "-o", "out/gen_test.go", "--parser", "yaml", "-j", "2", "-x", "vendor"})
	err := cmd.Execute()
	require.NoError(t, err)

	mockWorkflow.AssertExpectations(t)
}

func TestGenerateCmd_Error(t *testing.T) {
	mockWorkflow := useMockWorkflow(t)

	cmd := newRootCmd()
	cmd.AddCommand(newGenerateCmd())
	stderr := &bytes.Buffer{}
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(stderr)

	failure := &domain.FaultError{Path: "res/a.go", Err: errors.New("parser state corrupted")}
	mockWorkflow.EXPECT().Generate(mock.Anything, mock.Anything).Return(m.Summary{}, failure)

	cmd.SetArgs([]string{"generate"})
	err := cmd.Execute()
	require.ErrorIs(t, err, failure)
	assert.Contains(t, stderr.String(), "res/a.go: parser state corrupted")
}

func TestGenerateCmd_RejectsArgs(t *testing.T) {
	useMockWorkflow(t)

	cmd := newRootCmd()
	cmd.AddCommand(newGenerateCmd())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	cmd.SetArgs([]string{"generate", "extra"})
	require.Error(t, cmd.Execute())
}
