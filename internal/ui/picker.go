// Package ui contains the Bubble Tea models used by the CLI.
package ui

import (
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"machtarget/internal/deploy"
	"machtarget/internal/target"
	"machtarget/internal/triple"
)

type targetItem struct {
	key    target.Key
	triple string
}

func (i targetItem) Title() string       { return i.key.String() }
func (i targetItem) Description() string { return i.triple }
func (i targetItem) FilterValue() string { return i.key.String() + " " + i.triple }

type pickerModel struct {
	list   list.Model
	choice *target.Key
}

// NewPickerModel returns a Bubble Tea model that lets the user pick a
// target from the supported catalog. The chosen key is retrievable via
// Choice after the program finishes.
func NewPickerModel(env deploy.Env, keys []target.Key) tea.Model {
	items := make([]list.Item, 0, len(keys))
	for _, key := range keys {
		items = append(items, targetItem{
			key:    key,
			triple: triple.Build(env, key.OS, key.Arch, key.ABI),
		})
	}

	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.
		Foreground(lipgloss.Color("6")).
		BorderLeftForeground(lipgloss.Color("6"))
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedDesc.
		Foreground(lipgloss.Color("14")).
		BorderLeftForeground(lipgloss.Color("6"))

	l := list.New(items, delegate, 0, 0)
	l.Title = "supported Apple targets"
	l.SetShowStatusBar(false)

	return &pickerModel{list: l}
}

func (m *pickerModel) Init() tea.Cmd {
	return nil
}

func (m *pickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.list.SetSize(msg.Width, msg.Height)
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "enter":
			if item, ok := m.list.SelectedItem().(targetItem); ok {
				key := item.key
				m.choice = &key
			}
			return m, tea.Quit
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		}
	}
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m *pickerModel) View() string {
	return m.list.View()
}

// Choice returns the picked target, if any.
func Choice(model tea.Model) (target.Key, bool) {
	picker, ok := model.(*pickerModel)
	if !ok || picker.choice == nil {
		return target.Key{}, false
	}
	return *picker.choice, true
}
