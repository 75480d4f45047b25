package validation

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

// NoteIDPattern определяет допустимый формат идентификатора заметки.
// Идентификатор входит в ключ notes/<id>.html, поэтому '/' и '.' запрещены.
var NoteIDPattern = regexp.MustCompile(`^[a-zA-Z0-9][a-zA-Z0-9_-]{0,63}$`)

const (
	// MaxTitleLen максимальная длина заголовка, заданного вручную
	MaxTitleLen = 200
	// MaxTodoLen максимальная длина текста задачи
	MaxTodoLen = 500
)

// ValidateNoteID проверяет идентификатор заметки
func ValidateNoteID(id string) error {
	if id == "" {
		return fmt.Errorf("note id cannot be empty")
	}

	if !NoteIDPattern.MatchString(id) {
		return fmt.Errorf("note id %q can only contain letters, numbers, '-' and '_' (max 64)", id)
	}

	return nil
}

// ValidateTitle проверяет заголовок заметки. Пустой заголовок допустим.
func ValidateTitle(title string) error {
	if utf8.RuneCountInString(title) > MaxTitleLen {
		return fmt.Errorf("title must not exceed %d characters", MaxTitleLen)
	}
	if strings.ContainsAny(title, "\n\r") {
		return fmt.Errorf("title must be a single line")
	}
	return nil
}

// ValidateTodoText проверяет текст задачи
func ValidateTodoText(text string) error {
	if strings.TrimSpace(text) == "" {
		return fmt.Errorf("todo text cannot be empty")
	}

	if utf8.RuneCountInString(text) > MaxTodoLen {
		return fmt.Errorf("todo text must not exceed %d characters", MaxTodoLen)
	}

	return nil
}
