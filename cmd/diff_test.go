package cmd

import (
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/huixin2022/allure-analysis-mcp/internal/domain"
	domainmocks "github.com/huixin2022/allure-analysis-mcp/internal/domain/mocks"
	m "github.com/huixin2022/allure-analysis-mcp/internal/model"
)

func TestDiffCmd_PassesBothDirectories(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)
	useMockWorkflow(t, mockWorkflow)

	cmd, _ := newTestRootCmd(t, newDiffCmd())

	mockWorkflow.EXPECT().Diff(mock.Anything, domain.DiffArgs{
		Left:         "./allure-report",
		Right:        "./allure-results",
		StatusFilter: m.StatusFailed,
	}).Return(nil).Once()

	cmd.SetArgs([]string{"diff", "./allure-report", "./allure-results", "--status", "failed"})
	require.NoError(t, cmd.Execute())
}

func TestDiffCmd_RequiresTwoDirectories(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)
	useMockWorkflow(t, mockWorkflow)

	cmd, _ := newTestRootCmd(t, newDiffCmd())

	cmd.SetArgs([]string{"diff", "./allure-report"})
	require.Error(t, cmd.Execute())
}
