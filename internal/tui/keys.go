package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Add     key.Binding
	Remove  key.Binding
	Flip    key.Binding
	History key.Binding
	Open    key.Binding
	Export  key.Binding
	Help    key.Binding
	Quit    key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Add:     key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+", "add glass")),
		Remove:  key.NewBinding(key.WithKeys("-", "_"), key.WithHelp("-", "remove glass")),
		Flip:    key.NewBinding(key.WithKeys("tab", " "), key.WithHelp("tab", "gauge/graph")),
		History: key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "history")),
		Open:    key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "open csv")),
		Export:  key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "export svg")),
		Help:    key.NewBinding(key.WithKeys("h"), key.WithHelp("h", "help")),
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Add, k.Remove, k.Flip, k.History, k.Open, k.Export, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Add, k.Remove, k.Flip},
		{k.History, k.Open, k.Export},
		{k.Help, k.Quit},
	}
}
