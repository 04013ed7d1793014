package cmd

import (
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/huixin2022/allure-analysis-mcp/internal/domain"
	domainmocks "github.com/huixin2022/allure-analysis-mcp/internal/domain/mocks"
	m "github.com/huixin2022/allure-analysis-mcp/internal/model"
)

func TestViewCmd_UsesSummaryModeByDefault(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)
	useMockWorkflow(t, mockWorkflow)

	cmd, _ := newTestRootCmd(t, newViewCmd())

	mockWorkflow.EXPECT().View(mock.Anything, mock.MatchedBy(func(args domain.ViewArgs) bool {
		return args.Path == m.Path("./allure-report") && args.Mode == m.ModeSummary && args.StatusFilter == ""
	})).Return(nil).Once()

	cmd.SetArgs([]string{"view", "./allure-report"})
	require.NoError(t, cmd.Execute())
}

func TestViewCmd_ModeAndStatusArePassedThrough(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)
	useMockWorkflow(t, mockWorkflow)

	cmd, _ := newTestRootCmd(t, newViewCmd())

	mockWorkflow.EXPECT().View(mock.Anything, domain.ViewArgs{
		Path:         "./allure-results",
		Mode:         m.ModeCompact,
		StatusFilter: m.StatusFailed,
	}).Return(nil).Once()

	cmd.SetArgs([]string{"view", "./allure-results", "--mode", "compact", "--status", "FAILED"})
	require.NoError(t, cmd.Execute())
}

func TestViewCmd_RequiresDirectory(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)
	useMockWorkflow(t, mockWorkflow)

	cmd, _ := newTestRootCmd(t, newViewCmd())

	cmd.SetArgs([]string{"view"})
	require.Error(t, cmd.Execute())
}

func TestViewCmd_WorkflowErrorIsReturned(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)
	useMockWorkflow(t, mockWorkflow)

	cmd, _ := newTestRootCmd(t, newViewCmd())

	notFound := &domain.NotFoundError{Path: "missing"}
	mockWorkflow.EXPECT().View(mock.Anything, mock.Anything).Return(notFound).Once()

	cmd.SetArgs([]string{"view", "missing", "--mode", "summary"})
	err := cmd.Execute()
	require.ErrorIs(t, err, notFound)
}
