// Copyright 2025 Lachstec
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Lachstec/avl-tree/avl"
)

// Styles holds all the styling for the explorer.
type Styles struct {
	Border         lipgloss.Style
	Title          lipgloss.Style
	InputPrompt    lipgloss.Style
	HelpKey        lipgloss.Style
	HelpDesc       lipgloss.Style
	SuccessMessage lipgloss.Style
	ErrorMessage   lipgloss.Style
}

// NewStyles creates the default styles
func NewStyles() *Styles {
	return &Styles{
		Border: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")),
		Title: lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")).
			Padding(0, 1).
			Bold(true),
		InputPrompt: lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true),
		HelpKey: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Bold(true),
		HelpDesc: lipgloss.NewStyle().
			Foreground(lipgloss.Color("243")),
		SuccessMessage: lipgloss.NewStyle().
			Foreground(lipgloss.Color("46")).
			Bold(true),
		ErrorMessage: lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true),
	}
}

// Model is the Bubble Tea state of the interactive explorer.
type Model struct {
	ready bool

	input    textinput.Model
	treeView viewport.Model

	tree   *avl.Tree[int]
	config *Config

	status  string
	statusE bool // status is an error

	styles *Styles

	width  int
	height int
}

// NewExplorerModel builds the explorer around an existing tree, so
// `explore -v 10 20 30` starts with those keys already inserted.
func NewExplorerModel(tree *avl.Tree[int], config *Config) Model {
	ti := textinput.New()
	ti.Placeholder = "insert 42 | delete 42 | search 42 | clear"
	ti.Focus()
	ti.CharLimit = 120

	return Model{
		input:  ti,
		tree:   tree,
		config: config,
		status: "Type a command and press enter.",
		styles: NewStyles(),
	}
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.treeView = viewport.New(msg.Width-4, max(msg.Height-8, 3))
		m.treeView.SetContent(renderASCIITree(m.tree))
		m.ready = true
		return m, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyCtrlY:
			dotSrc := treeToDot(m.tree, &m.config.Graph)
			if err := clipboard.WriteAll(dotSrc); err != nil {
				m.setStatus(fmt.Sprintf("Clipboard error: %v", err), true)
			} else {
				m.setStatus("Copied DOT source to clipboard.", false)
			}
			return m, nil
		case tea.KeyEnter:
			m.execute(strings.TrimSpace(m.input.Value()))
			m.input.SetValue("")
			if m.ready {
				m.treeView.SetContent(renderASCIITree(m.tree))
			}
			return m, nil
		}
	}

	var cmds []tea.Cmd
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	cmds = append(cmds, cmd)
	m.treeView, cmd = m.treeView.Update(msg)
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

func (m *Model) setStatus(msg string, isErr bool) {
	m.status = msg
	m.statusE = isErr
}

// execute parses and runs one explorer command against the tree.
func (m *Model) execute(line string) {
	if line == "" {
		return
	}
	fields := strings.Fields(line)
	verb := strings.ToLower(fields[0])

	switch verb {
	case "clear":
		m.tree = avl.New[int]()
		m.setStatus("Cleared the tree.", false)
		return
	case "quit", "exit":
		// handled by the caller through the quit keys; treat as a hint
		m.setStatus("Press esc or ctrl+c to quit.", false)
		return
	}

	keys, err := parseKeys(fields[1:])
	if err != nil {
		m.setStatus(err.Error(), true)
		return
	}
	if len(keys) == 0 {
		m.setStatus(fmt.Sprintf("%s needs at least one integer key", verb), true)
		return
	}

	switch verb {
	case "insert", "add", "i":
		added := 0
		for _, key := range keys {
			if m.tree.Insert(key) {
				added++
			}
		}
		m.setStatus(fmt.Sprintf("Inserted %d of %d key(s); %d already present.",
			added, len(keys), len(keys)-added), false)
	case "delete", "del", "remove", "d":
		removed := 0
		for _, key := range keys {
			if m.tree.Delete(key) {
				removed++
			}
		}
		m.setStatus(fmt.Sprintf("Removed %d of %d key(s).", removed, len(keys)), false)
	case "search", "find", "s":
		if n, ok := m.tree.Search(keys[0]); ok {
			m.setStatus(fmt.Sprintf("Found %d (subtree height %d).", n.Key(), n.Height()), false)
		} else {
			m.setStatus(fmt.Sprintf("%d is not in the tree.", keys[0]), true)
		}
	default:
		m.setStatus(fmt.Sprintf("Unknown command %q. Try insert, delete, search or clear.", verb), true)
	}
}

func parseKeys(args []string) ([]int, error) {
	keys := make([]int, 0, len(args))
	for _, arg := range args {
		key, err := strconv.Atoi(arg)
		if err != nil {
			return nil, fmt.Errorf("%q is not an integer key", arg)
		}
		keys = append(keys, key)
	}
	return keys, nil
}

func (m Model) View() string {
	if !m.ready {
		return "Starting explorer..."
	}

	title := m.styles.Title.Render(fmt.Sprintf("AVL explorer — %d key(s), height %d",
		m.tree.Count(), m.tree.Height()))

	input := m.styles.Border.Width(m.width - 2).Render(m.input.View())
	treePane := m.styles.Border.Width(m.width - 2).Render(m.treeView.View())

	status := m.styles.SuccessMessage.Render(m.status)
	if m.statusE {
		status = m.styles.ErrorMessage.Render(m.status)
	}

	help := lipgloss.JoinHorizontal(lipgloss.Top,
		m.styles.HelpKey.Render("enter"), m.styles.HelpDesc.Render(" run · "),
		m.styles.HelpKey.Render("ctrl+y"), m.styles.HelpDesc.Render(" copy DOT · "),
		m.styles.HelpKey.Render("esc"), m.styles.HelpDesc.Render(" quit"),
	)

	return lipgloss.JoinVertical(lipgloss.Left, title, input, treePane, status, help)
}

// runExplorer starts the interactive TUI.
func runExplorer(tree *avl.Tree[int], config *Config) error {
	p := tea.NewProgram(NewExplorerModel(tree, config), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
