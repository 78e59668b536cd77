package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/ton-community/fpm/internal/manifest"
	"github.com/ton-community/fpm/internal/resolver"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true)
	errStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	selectedStyle = lipgloss.NewStyle().Bold(true).Underline(true)
)

// --- inputModel: bubbletea model for text input with validation ---

type inputModel struct {
	textInput textinput.Model
	title     string
	validate  func(string) error
	errMsg    string
	done      bool
	aborted   bool
}

func (m inputModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m inputModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.aborted = true
			return m, tea.Quit
		case "enter":
			val := m.textInput.Value()
			if m.validate != nil {
				if err := m.validate(val); err != nil {
					m.errMsg = err.Error()
					return m, nil
				}
			}
			m.done = true
			return m, tea.Quit
		}
	}
	m.errMsg = ""
	var cmd tea.Cmd
	m.textInput, cmd = m.textInput.Update(msg)
	return m, cmd
}

func (m inputModel) View() string {
	if m.done {
		return ""
	}
	var b strings.Builder
	b.WriteString(titleStyle.Render(m.title) + "\n")
	b.WriteString(m.textInput.View() + "\n")
	if m.errMsg != "" {
		b.WriteString(errStyle.Render(m.errMsg) + "\n")
	}
	return b.String()
}

// --- confirmModel: bubbletea model for yes/no confirmation ---

type confirmModel struct {
	title   string
	value   bool
	done    bool
	aborted bool
}

func (m confirmModel) Init() tea.Cmd {
	return nil
}

func (m confirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.aborted = true
			return m, tea.Quit
		case "enter":
			m.done = true
			return m, tea.Quit
		case "y", "Y":
			m.value = true
			m.done = true
			return m, tea.Quit
		case "n", "N":
			m.value = false
			m.done = true
			return m, tea.Quit
		case "left", "right", "tab", "h", "l":
			m.value = !m.value
		}
	}
	return m, nil
}

func (m confirmModel) View() string {
	if m.done {
		return ""
	}
	yes := " Yes "
	no := " No "
	if m.value {
		yes = selectedStyle.Render(" Yes ")
	} else {
		no = selectedStyle.Render(" No ")
	}
	return fmt.Sprintf("%s %s / %s\n", titleStyle.Render(m.title), yes, no)
}

// --- prompt helpers ---

func promptInput(title, placeholder string, validate func(string) error) (string, error) {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Focus()

	m := inputModel{
		textInput: ti,
		title:     title,
		validate:  validate,
	}

	result, err := tea.NewProgram(m).Run()
	if err != nil {
		return "", err
	}
	rm := result.(inputModel)
	if rm.aborted {
		return "", fmt.Errorf("user aborted")
	}
	return rm.textInput.Value(), nil
}

func promptConfirm(title string) (bool, error) {
	m := confirmModel{
		title: title,
	}

	result, err := tea.NewProgram(m).Run()
	if err != nil {
		return false, err
	}
	rm := result.(confirmModel)
	if rm.aborted {
		return false, fmt.Errorf("user aborted")
	}
	return rm.value, nil
}

// interactiveNewPackage collects a package name, contracts directory and
// an optional list of dependencies from the user.
func interactiveNewPackage(defaultName string) (*manifest.Package, error) {
	name, err := promptInput("Package name", defaultName, validatePackageName)
	if err != nil {
		return nil, err
	}
	name = strings.TrimSpace(name)
	if name == "" {
		name = defaultName
	}

	contracts, err := promptInput("Contracts directory (empty for default)", manifest.DefaultContractsDir, nil)
	if err != nil {
		return nil, err
	}
	contracts = strings.TrimSpace(contracts)
	if contracts == manifest.DefaultContractsDir {
		contracts = ""
	}

	pkg := &manifest.Package{Name: name, Contracts: contracts}

	for {
		addMore, err := promptConfirm("Add a dependency?")
		if err != nil {
			return nil, err
		}
		if !addMore {
			break
		}
		if err := promptDependency(pkg); err != nil {
			return nil, err
		}
	}

	return pkg, nil
}

func validatePackageName(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil // empty falls back to the default
	}
	if s == "." || s == ".." {
		return fmt.Errorf("invalid package name %q", s)
	}
	if strings.ContainsAny(s, "/\\") {
		return fmt.Errorf("package name must not contain path separators")
	}
	return nil
}

// promptDependency asks for one url+ref pair and appends it to the
// package, rejecting identifiers that collide with already-added ones.
func promptDependency(pkg *manifest.Package) error {
	seen := make(map[string]bool, pkg.Deps().Len())
	for _, url := range pkg.Deps().URLs() {
		name, err := resolver.LocalName(url)
		if err != nil {
			return err
		}
		seen[name] = true
	}

	url, err := promptInput(
		"Dependency repository URL",
		"https://github.com/org/pkg.git",
		func(s string) error {
			s = strings.TrimSpace(s)
			if s == "" {
				return fmt.Errorf("repository URL is required")
			}
			if pkg.Deps().Has(s) {
				return fmt.Errorf("dependency %s is already added", s)
			}
			name, err := resolver.LocalName(s)
			if err != nil {
				return err
			}
			if seen[name] {
				return fmt.Errorf("local name %q is already taken", name)
			}
			return nil
		},
	)
	if err != nil {
		return err
	}
	url = strings.TrimSpace(url)

	ref, err := promptInput("Version ref (tag, branch or commit)", "v1.0.0", func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("version ref is required")
		}
		return nil
	})
	if err != nil {
		return err
	}

	pkg.Deps().Set(url, strings.TrimSpace(ref))

	name, _ := resolver.LocalName(url)
	fmt.Printf("  → %s @ %s\n", name, strings.TrimSpace(ref))
	return nil
}
