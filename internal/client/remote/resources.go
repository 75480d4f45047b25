package remote

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/iudanet/lightnotes/internal/models"
	"github.com/iudanet/lightnotes/pkg/api"
)

// ReadIndex выполняет условное чтение index.json.
// unchanged=true если индекс не менялся с последнего чтения или записи.
func (c *Client) ReadIndex(ctx context.Context) (idx models.Index, unchanged bool, err error) {
	res, err := c.Read(ctx, api.IndexPath)
	if err != nil {
		return nil, false, err
	}
	if res.Unchanged {
		return nil, true, nil
	}

	if err := json.Unmarshal(res.Data, &idx); err != nil {
		return nil, false, &Error{Kind: KindCorrupt, Err: fmt.Errorf("failed to decode remote index: %w", err)}
	}
	if idx == nil {
		idx = models.Index{}
	}
	return idx, false, nil
}

// ReadTodos выполняет условное чтение todos.json
func (c *Client) ReadTodos(ctx context.Context) (todos []models.Todo, unchanged bool, err error) {
	res, err := c.Read(ctx, api.TodosPath)
	if err != nil {
		return nil, false, err
	}
	if res.Unchanged {
		return nil, true, nil
	}

	if err := json.Unmarshal(res.Data, &todos); err != nil {
		return nil, false, &Error{Kind: KindCorrupt, Err: fmt.Errorf("failed to decode remote todos: %w", err)}
	}
	if todos == nil {
		todos = []models.Todo{}
	}
	return todos, false, nil
}

// ReadNote читает тело заметки условно, а при fresh=true безусловно
func (c *Client) ReadNote(ctx context.Context, id string, fresh bool) (*ReadResult, error) {
	if fresh {
		return c.ReadFresh(ctx, api.NotePath(id))
	}
	return c.Read(ctx, api.NotePath(id))
}

// PutNote записывает тело заметки через PutWithMatch
func (c *Client) PutNote(ctx context.Context, id, body string) (string, error) {
	return c.PutWithMatch(ctx, api.NotePath(id), []byte(body))
}

// DeleteNote удаляет тело заметки
func (c *Client) DeleteNote(ctx context.Context, id string) error {
	return c.Remove(ctx, api.NotePath(id))
}

// PutIndex записывает индекс через PutWithMatch
func (c *Client) PutIndex(ctx context.Context, idx models.Index) (string, error) {
	data, err := EncodeIndex(idx)
	if err != nil {
		return "", err
	}
	return c.PutWithMatch(ctx, api.IndexPath, data)
}

// PutTodos записывает список задач через PutWithMatch
func (c *Client) PutTodos(ctx context.Context, todos []models.Todo) (string, error) {
	data, err := EncodeTodos(todos)
	if err != nil {
		return "", err
	}
	return c.PutWithMatch(ctx, api.TodosPath, data)
}

// EncodeIndex сериализует индекс; nil кодируется как []
func EncodeIndex(idx models.Index) ([]byte, error) {
	if idx == nil {
		idx = models.Index{}
	}
	data, err := json.Marshal(idx)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal index: %w", err)
	}
	return data, nil
}

// EncodeTodos сериализует список задач; nil кодируется как []
func EncodeTodos(todos []models.Todo) ([]byte, error) {
	if todos == nil {
		todos = []models.Todo{}
	}
	data, err := json.Marshal(todos)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal todos: %w", err)
	}
	return data, nil
}
