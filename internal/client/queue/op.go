package queue

import (
	"time"

	"github.com/iudanet/lightnotes/internal/models"
)

// Kind тип отложенной операции
type Kind string

const (
	KindPutNote    Kind = "put_note"
	KindPutIndex   Kind = "put_index"
	KindDeleteNote Kind = "delete_note"
	KindPutTodos   Kind = "put_todos"
)

// Op отложенная операция удаленного хранилища.
// Очередь строго FIFO, записи одного пути не схлопываются.
type Op struct {
	EnqueuedAt time.Time     `json:"enqueuedAt"`
	Index      *models.Index `json:"index,omitempty"` // для put_index и, опционально, delete_note
	Kind       Kind          `json:"kind"`
	NoteID     string        `json:"noteId,omitempty"`
	Body       string        `json:"body,omitempty"`
	Todos      []models.Todo `json:"todos,omitempty"`
}

// PutNote создает операцию записи тела заметки
func PutNote(id, body string) Op {
	return Op{Kind: KindPutNote, NoteID: id, Body: body}
}

// PutIndex создает операцию записи индекса
func PutIndex(idx models.Index) Op {
	return Op{Kind: KindPutIndex, Index: &idx}
}

// DeleteNote создает операцию удаления заметки; idx, если не nil, записывается после удаления
func DeleteNote(id string, idx *models.Index) Op {
	return Op{Kind: KindDeleteNote, NoteID: id, Index: idx}
}

// PutTodos создает операцию записи списка задач
func PutTodos(todos []models.Todo) Op {
	return Op{Kind: KindPutTodos, Todos: todos}
}

// Target возвращает описание цели операции для логов
func (o Op) Target() string {
	if o.NoteID != "" {
		return o.NoteID
	}
	return string(o.Kind)
}
