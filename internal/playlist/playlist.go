// Package playlist содержит двусвязный список треков с курсором
package playlist

import (
	"github.com/hazadus/go-ricarmix/internal/data"
)

// none обозначает отсутствие соседнего узла или курсора
const none = -1

// node хранит трек и индексы соседей в массиве узлов
type node struct {
	track data.Track
	next  int
	prev  int
}

// Store представляет упорядоченный плейлист с текущей позицией.
// Узлы хранятся в срезе, связи выражены индексами.
// Store не безопасен для конкурентного использования.
type Store struct {
	nodes  []node
	head   int
	tail   int
	cursor int
}

// New создает плейлист и заполняет его переданными треками
func New(tracks ...data.Track) *Store {
	s := &Store{
		nodes:  make([]node, 0, len(tracks)),
		head:   none,
		tail:   none,
		cursor: none,
	}
	for _, t := range tracks {
		s.Append(t)
	}
	return s
}

// Append добавляет трек в конец списка.
// Курсор меняется только при добавлении в пустой список.
func (s *Store) Append(track data.Track) {
	idx := len(s.nodes)
	s.nodes = append(s.nodes, node{track: track, next: none, prev: s.tail})

	if s.head == none {
		s.head = idx
		s.tail = idx
		s.cursor = idx
		return
	}

	s.nodes[s.tail].next = idx
	s.tail = idx
}

// Advance переводит курсор на следующий трек, если он есть,
// и возвращает трек под курсором. На последнем треке ничего не меняет.
func (s *Store) Advance() (data.Track, bool) {
	if s.cursor == none {
		return data.Track{}, false
	}
	if next := s.nodes[s.cursor].next; next != none {
		s.cursor = next
	}
	return s.nodes[s.cursor].track, true
}

// Retreat переводит курсор на предыдущий трек, если он есть,
// и возвращает трек под курсором. На первом треке ничего не меняет.
func (s *Store) Retreat() (data.Track, bool) {
	if s.cursor == none {
		return data.Track{}, false
	}
	if prev := s.nodes[s.cursor].prev; prev != none {
		s.cursor = prev
	}
	return s.nodes[s.cursor].track, true
}

// Current возвращает трек под курсором; false для пустого списка
func (s *Store) Current() (data.Track, bool) {
	if s.cursor == none {
		return data.Track{}, false
	}
	return s.nodes[s.cursor].track, true
}

// IsEmpty сообщает, пуст ли список
func (s *Store) IsEmpty() bool {
	return s.head == none
}

// Len возвращает количество треков
func (s *Store) Len() int {
	return len(s.nodes)
}

// Index возвращает позицию курсора от начала списка или -1
func (s *Store) Index() int {
	// Узлы только добавляются в хвост, поэтому индекс узла совпадает с позицией
	return s.cursor
}

// Tracks возвращает треки в порядке от головы к хвосту
func (s *Store) Tracks() []data.Track {
	tracks := make([]data.Track, 0, len(s.nodes))
	for i := s.head; i != none; i = s.nodes[i].next {
		tracks = append(tracks, s.nodes[i].track)
	}
	return tracks
}
