// Package tracklist содержит модель списка треков для TUI
package tracklist

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/hazadus/go-ricarmix/internal/data"
	"github.com/hazadus/go-ricarmix/internal/utils"
)

var (
	titleStyle        = lipgloss.NewStyle().MarginLeft(2)
	itemStyle         = lipgloss.NewStyle().PaddingLeft(4)
	selectedItemStyle = lipgloss.NewStyle().PaddingLeft(2).Foreground(lipgloss.Color("170"))
	paginationStyle   = list.DefaultStyles().PaginationStyle.PaddingLeft(4)
)

// trackItem реализует интерфейс list.Item для трека
type trackItem struct {
	position int
	track    data.Track
}

func (i trackItem) FilterValue() string {
	return i.track.Title
}

// trackItemDelegate реализует отображение элементов списка
type trackItemDelegate struct{}

func (d trackItemDelegate) Height() int                             { return 1 }
func (d trackItemDelegate) Spacing() int                            { return 0 }
func (d trackItemDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }
func (d trackItemDelegate) Render(w io.Writer, m list.Model, index int, listItem list.Item) {
	i, ok := listItem.(trackItem)
	if !ok {
		return
	}

	// Номер | Название | Продолжительность
	str := fmt.Sprintf("%-4d %-50s %s",
		i.position+1,
		utils.TruncateString(i.track.Title, 50),
		utils.FormatClock(i.track.Duration))

	fn := itemStyle.Render
	if index == m.Index() {
		fn = func(s ...string) string {
			return selectedItemStyle.Render("> " + strings.Join(s, " "))
		}
	}

	fmt.Fprint(w, fn(str))
}

// Model показывает плейлист и подсвечивает трек под курсором.
// Клавиши в список не передаются: курсор двигает только сессия.
type Model struct {
	list list.Model
}

// NewModel создает список из треков плейлиста
func NewModel(tracks []data.Track) *Model {
	items := make([]list.Item, len(tracks))
	for i, t := range tracks {
		items[i] = trackItem{position: i, track: t}
	}

	l := list.New(items, trackItemDelegate{}, 0, 0)
	l.Title = "Треки"
	l.SetShowStatusBar(false)
	l.SetShowTitle(true)
	l.SetShowHelp(false)
	l.SetFilteringEnabled(false)
	l.Styles.Title = titleStyle
	l.Styles.PaginationStyle = paginationStyle

	return &Model{list: l}
}

// Select переводит подсветку на трек с указанным индексом
func (m *Model) Select(index int) {
	if index < 0 || index >= len(m.list.Items()) {
		return
	}
	m.list.Select(index)
}

// Index возвращает индекс подсвеченного трека
func (m *Model) Index() int {
	return m.list.Index()
}

// Len возвращает количество треков в списке
func (m *Model) Len() int {
	return len(m.list.Items())
}

// SetSize задает размеры списка
func (m *Model) SetSize(width, height int) {
	m.list.SetSize(width, max(height, 1))
}

// View отображает список
func (m *Model) View() string {
	return m.list.View()
}
