package app

import "github.com/charmbracelet/bubbles/key"

// keyMap описывает горячие клавиши плеера
type keyMap struct {
	Next     key.Binding
	Previous key.Binding
	Toggle   key.Binding
	Help     key.Binding
	Quit     key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Next: key.NewBinding(
			key.WithKeys("right", "down", "n", "l"),
			key.WithHelp("→/↓", "следующий"),
		),
		Previous: key.NewBinding(
			key.WithKeys("left", "up", "p", "h"),
			key.WithHelp("←/↑", "предыдущий"),
		),
		Toggle: key.NewBinding(
			key.WithKeys(" ", "enter"),
			key.WithHelp("пробел", "пауза/воспроизведение"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "справка"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "выход"),
		),
	}
}

// ShortHelp реализует help.KeyMap
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.Next, k.Previous, k.Quit}
}

// FullHelp реализует help.KeyMap
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Toggle, k.Next, k.Previous},
		{k.Help, k.Quit},
	}
}
