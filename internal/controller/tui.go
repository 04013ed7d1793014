package controller

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	m "github.com/huixin2022/allure-analysis-mcp/internal/model"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63"))
	footerStyle = lipgloss.NewStyle().Faint(true)

	statusStyles = map[m.Status]lipgloss.Style{
		m.StatusPassed:  lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
		m.StatusFailed:  lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true),
		m.StatusBroken:  lipgloss.NewStyle().Foreground(lipgloss.Color("3")).Bold(true),
		m.StatusSkipped: lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		m.StatusUnknown: lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
	}
)

// styledStatus renders a status label in its status colour.
func styledStatus(status m.Status) string {
	style, ok := statusStyles[status]
	if !ok {
		return titleStatus(status)
	}

	return style.Render(titleStatus(status))
}

// TUI implements UI using Bubble Tea. Output is shown in a scrollable pager
// when interactive, otherwise the styled text is printed as is.
type TUI struct {
	output      io.Writer
	interactive bool
	renderer
}

// NewTUI creates a new TUI.
func NewTUI(output io.Writer, interactive bool) *TUI {
	return &TUI{
		output:      output,
		interactive: interactive,
		renderer:    renderer{statusLabel: styledStatus},
	}
}

// DisplayDetection shows the detected layout of path.
func (p *TUI) DisplayDetection(ctx context.Context, path m.Path, sourceType m.SourceType) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	// A single line never needs the pager.
	_, err := fmt.Fprint(p.output, p.detection(path, sourceType))

	return err
}

// DisplayTree shows a per-suite table of the tree.
func (p *TUI) DisplayTree(ctx context.Context, tree *m.Tree) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return p.show(ctx, "Allure results", p.tree(tree))
}

// DisplayView shows a projected view.
func (p *TUI) DisplayView(ctx context.Context, view m.View) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return p.show(ctx, fmt.Sprintf("Allure results (%s)", view.ViewMode()), p.view(view))
}

// DisplayDiff shows the unified diff between two trees.
func (p *TUI) DisplayDiff(ctx context.Context, left, right m.Path, diff string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return p.show(ctx, fmt.Sprintf("%s vs %s", left, right), p.diff(left, right, diff))
}

func (p *TUI) show(ctx context.Context, title, content string) error {
	if !p.interactive {
		_, err := fmt.Fprint(p.output, content)
		return err
	}

	program := tea.NewProgram(newPagerModel(title, content),
		tea.WithOutput(p.output),
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("run pager: %w", err)
	}

	return nil
}

// pagerModel is the Bubble Tea model scrolling rendered output.
type pagerModel struct {
	title    string
	content  string
	viewport viewport.Model
	ready    bool
	quitting bool
}

func newPagerModel(title, content string) pagerModel {
	return pagerModel{title: title, content: content}
}

func (pm pagerModel) Init() tea.Cmd {
	return nil
}

func (pm pagerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		height := msg.Height - pm.chromeHeight()
		if height < 1 {
			height = 1
		}

		if !pm.ready {
			pm.viewport = viewport.New(msg.Width, height)
			pm.viewport.SetContent(pm.content)
			pm.ready = true
		} else {
			pm.viewport.Width = msg.Width
			pm.viewport.Height = height
		}

		return pm, nil

	case tea.KeyMsg:
		return pm.handleKeyPress(msg)
	}

	return pm, nil
}

//nolint:exhaustive // We only handle specific navigation keys
func (pm pagerModel) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		pm.quitting = true
		return pm, tea.Quit
	default:
		// Handle other key types in the string switch below
	}

	switch msg.String() {
	case "q":
		pm.quitting = true
		return pm, tea.Quit

	case "g", "home":
		pm.viewport.GotoTop()
		return pm, nil

	case "G", "end":
		pm.viewport.GotoBottom()
		return pm, nil
	}

	var cmd tea.Cmd
	pm.viewport, cmd = pm.viewport.Update(msg)

	return pm, cmd
}

// chromeHeight is the number of lines used by the header and footer.
func (pm pagerModel) chromeHeight() int {
	return lipgloss.Height(pm.header()) + lipgloss.Height(pm.footer())
}

func (pm pagerModel) header() string {
	return headerStyle.Render(pm.title) + "\n"
}

func (pm pagerModel) footer() string {
	percent := 100.0
	if pm.ready {
		percent = pm.viewport.ScrollPercent() * 100
	}

	return "\n" + footerStyle.Render(fmt.Sprintf("%3.0f%% | ↑/k: up | ↓/j: down | g: top | G: bottom | q: quit", percent))
}

func (pm pagerModel) View() string {
	if pm.quitting {
		return ""
	}

	if !pm.ready {
		return "Loading...\n"
	}

	var b strings.Builder

	b.WriteString(pm.header())
	b.WriteString(pm.viewport.View())
	b.WriteString(pm.footer())

	return b.String()
}
