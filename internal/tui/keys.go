package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	PrevCategory key.Binding
	NextCategory key.Binding
	Up           key.Binding
	Down         key.Binding
	NextPage     key.Binding
	PrevPage     key.Binding
	JumpPage     key.Binding
	Read         key.Binding
	Close        key.Binding
	Open         key.Binding
	Save         key.Binding
	Translate    key.Binding
	TranslateAll key.Binding
	Refresh      key.Binding
	Help         key.Binding
	Quit         key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		PrevCategory: key.NewBinding(key.WithKeys("h", "left"), key.WithHelp("h/←", "prev category")),
		NextCategory: key.NewBinding(key.WithKeys("l", "right"), key.WithHelp("l/→", "next category")),
		Up:           key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("k/↑", "up")),
		Down:         key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("j/↓", "down")),
		NextPage:     key.NewBinding(key.WithKeys("n", "pgdown"), key.WithHelp("n", "next page")),
		PrevPage:     key.NewBinding(key.WithKeys("p", "pgup"), key.WithHelp("p", "prev page")),
		JumpPage:     key.NewBinding(key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"), key.WithHelp("1-9", "go to page")),
		Read:         key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "read")),
		Close:        key.NewBinding(key.WithKeys("esc", "q"), key.WithHelp("esc", "close")),
		Open:         key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "open source")),
		Save:         key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "save/unsave")),
		Translate:    key.NewBinding(key.WithKeys("u"), key.WithHelp("u", "urdu/english")),
		TranslateAll: key.NewBinding(key.WithKeys("T"), key.WithHelp("T", "translate all")),
		Refresh:      key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
		Help:         key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:         key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp is shown in the status bar.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextCategory, k.Read, k.Save, k.Translate, k.Refresh, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.PrevCategory, k.NextCategory, k.Up, k.Down},
		{k.NextPage, k.PrevPage, k.JumpPage},
		{k.Read, k.Close, k.Open, k.Save},
		{k.Translate, k.TranslateAll, k.Refresh, k.Help, k.Quit},
	}
}
