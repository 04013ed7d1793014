package controller

import (
	"bytes"

	"github.com/spf13/cobra"

	m "github.com/huixin2022/allure-analysis-mcp/internal/model"
)

func newBufferedCmd() (*cobra.Command, *bytes.Buffer) {
	var buf bytes.Buffer

	cmd := &cobra.Command{}
	cmd.SetOut(&buf)

	return cmd, &buf
}

func sampleTree() *m.Tree {
	return &m.Tree{
		Metadata: m.Metadata{SourceType: m.SourceResults, SourcePath: "/tmp/allure-results"},
		Suites: []m.Suite{
			{
				Name:   "tests.test_login",
				Status: m.StatusFailed,
				TestCases: []m.TestCase{
					{Name: "tests.test_login.test_ok", Status: m.StatusPassed},
					{Name: "tests.test_login.test_bad", Status: m.StatusFailed},
				},
			},
			{
				Name:      "Cart",
				Status:    m.StatusBroken,
				TestCases: []m.TestCase{{Name: "shop.cart.test_add", Status: m.StatusBroken}},
			},
		},
	}
}
