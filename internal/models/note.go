package models

import (
	"html"
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"
)

// EmptyNoteBody тело новой заметки
const EmptyNoteBody = "<p></p>"

// maxTitleLen максимальная длина заголовка, выведенного из тела
const maxTitleLen = 120

// NoteEntry представляет запись индекса заметок.
// Индекс является источником истины о существовании, порядке и метаданных заметок.
// JSON имена полей совпадают с форматом index.json на удаленном хранилище.
type NoteEntry struct {
	ID        string `json:"id"`        // ID уникальный идентификатор заметки (UUID)
	Title     string `json:"title"`     // Title заголовок заметки
	Created   int64  `json:"created"`   // Created время создания, unix ms
	Modified  int64  `json:"modified"`  // Modified время последнего изменения, unix ms
	Pinned    bool   `json:"pinned"`    // Pinned закрепленная заметка
	CursorPos int    `json:"cursorPos"` // CursorPos позиция курсора в редакторе
}

// Index упорядоченный список записей индекса
type Index []NoteEntry

// Sort сортирует индекс: сначала закрепленные, затем по времени изменения
// (новые выше), затем по времени создания.
func (idx Index) Sort() {
	sort.SliceStable(idx, func(i, j int) bool {
		a, b := idx[i], idx[j]
		if a.Pinned != b.Pinned {
			return a.Pinned
		}
		if a.Modified != b.Modified {
			return a.Modified > b.Modified
		}
		return a.Created > b.Created
	})
}

// Find возвращает позицию записи с заданным id или -1
func (idx Index) Find(id string) int {
	for i := range idx {
		if idx[i].ID == id {
			return i
		}
	}
	return -1
}

// Contains сообщает, есть ли в индексе запись с заданным id
func (idx Index) Contains(id string) bool {
	return idx.Find(id) >= 0
}

// Remove возвращает копию индекса без записи с заданным id
func (idx Index) Remove(id string) Index {
	out := make(Index, 0, len(idx))
	for _, e := range idx {
		if e.ID != id {
			out = append(out, e)
		}
	}
	return out
}

// IDs возвращает идентификаторы заметок в порядке индекса
func (idx Index) IDs() []string {
	ids := make([]string, 0, len(idx))
	for _, e := range idx {
		ids = append(ids, e.ID)
	}
	return ids
}

// MergeIndex объединяет локальный и удаленный индексы по идентификатору.
// Локальные записи имеют приоритет при конфликте метаданных; порядок:
// сначала локальные записи, затем записи, присутствующие только удаленно,
// в удаленном порядке.
func MergeIndex(local, remote Index) Index {
	merged := make(Index, 0, len(local)+len(remote))
	seen := make(map[string]struct{}, len(local))

	for _, e := range local {
		if _, ok := seen[e.ID]; ok {
			continue
		}
		seen[e.ID] = struct{}{}
		merged = append(merged, e)
	}

	for _, e := range remote {
		if _, ok := seen[e.ID]; ok {
			continue
		}
		seen[e.ID] = struct{}{}
		merged = append(merged, e)
	}

	return merged
}

var (
	tagRe      = regexp.MustCompile(`<[^>]+>`)
	newlinesRe = regexp.MustCompile(`\n+`)
)

// DeriveTitle выводит заголовок из тела заметки: первая непустая строка текста
// без разметки, не длиннее 120 символов.
func DeriveTitle(body string) string {
	text := tagRe.ReplaceAllString(body, "\n")
	text = newlinesRe.ReplaceAllString(text, "\n")

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(html.UnescapeString(line))
		if line == "" {
			continue
		}
		if utf8.RuneCountInString(line) > maxTitleLen {
			runes := []rune(line)
			line = string(runes[:maxTitleLen])
		}
		return line
	}

	return ""
}
