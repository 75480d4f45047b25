package remote

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/lightnotes/internal/models"
	"github.com/iudanet/lightnotes/pkg/api"
)

func TestPutWithMatch_CreatesAbsent(t *testing.T) {
	c, fake := newTestClient(t)

	tag, err := c.PutWithMatch(context.Background(), api.NotePath("x"), []byte("<p>x</p>"))
	require.NoError(t, err)

	obj, ok := fake.get("notes/x.html")
	require.True(t, ok)
	assert.Equal(t, obj.tag, tag)
	assert.Equal(t, []string{
		"HEAD notes/x.html -",
		"PUT notes/x.html create-only",
	}, fake.log())
}

func TestPutWithMatch_UsesProbedTagNotCache(t *testing.T) {
	c, fake := newTestClient(t)
	ctx := context.Background()

	_, err := c.PutWithMatch(ctx, api.IndexPath, []byte("[]"))
	require.NoError(t, err)

	// Другой клиент изменил индекс; кешированный тег устарел
	fake.set("index.json", []byte(`[{"id":"other"}]`))

	_, err = c.PutWithMatch(ctx, api.IndexPath, []byte(`[{"id":"mine"}]`))
	require.NoError(t, err)

	log := fake.log()
	// HEAD + PUT if-match без повтора: тег взят из HEAD, конфликта нет
	assert.Equal(t, []string{"HEAD index.json -", "PUT index.json if-match"}, log[len(log)-2:])

	obj, _ := fake.get("index.json")
	assert.Equal(t, `[{"id":"mine"}]`, string(obj.body))
}

// Объект меняется между HEAD и PUT: If-Match дает 412, безусловный повтор побеждает
func TestPutWithMatch_StaleProbeFallsBackUnconditional(t *testing.T) {
	c, fake := newTestClient(t)
	ctx := context.Background()
	fake.set("notes/x.html", []byte("<p>v1</p>"))

	raced := false
	fake.beforePut = func(key string) {
		if raced {
			return
		}
		raced = true
		fake.set(key, []byte("<p>remote</p>"))
	}

	tag, err := c.PutWithMatch(ctx, api.NotePath("x"), []byte("<p>local</p>"))
	require.NoError(t, err)

	obj, _ := fake.get("notes/x.html")
	assert.Equal(t, "<p>local</p>", string(obj.body))
	assert.Equal(t, obj.tag, tag)

	cached, err := c.Cache().Get(ctx, api.NotePath("x"))
	require.NoError(t, err)
	assert.Equal(t, obj.tag, cached)

	assert.Equal(t, []string{
		"HEAD notes/x.html -",
		"PUT notes/x.html if-match",
		"PUT notes/x.html -",
	}, fake.log())
}

// Объект создан параллельно между HEAD и create-only PUT: конфликт отдается вызывающему
func TestPutWithMatch_CreateConflictReturned(t *testing.T) {
	c, fake := newTestClient(t)
	ctx := context.Background()

	fake.beforePut = func(key string) {
		fake.mu.Lock()
		if _, ok := fake.objects[key]; !ok {
			fake.setLocked(key, []byte("<p>theirs</p>"))
		}
		fake.mu.Unlock()
	}

	_, err := c.PutWithMatch(ctx, api.NotePath("y"), []byte("<p>mine</p>"))
	require.Error(t, err)
	assert.True(t, IsConflict(err))

	obj, _ := fake.get("notes/y.html")
	assert.Equal(t, "<p>theirs</p>", string(obj.body))

	cached, err := c.Cache().Get(ctx, api.NotePath("y"))
	require.NoError(t, err)
	assert.Empty(t, cached)
}

func TestResources_IndexRoundTrip(t *testing.T) {
	c, _ := newTestClient(t)
	ctx := context.Background()

	idx := models.Index{{ID: "a", Title: "A", Modified: 2}, {ID: "b", Title: "B", Modified: 1}}
	_, err := c.PutIndex(ctx, idx)
	require.NoError(t, err)

	// Запись закешировала тег: условное чтение дает unchanged
	_, unchanged, err := c.ReadIndex(ctx)
	require.NoError(t, err)
	assert.True(t, unchanged)

	require.NoError(t, c.Cache().Evict(ctx, api.IndexPath))
	got, unchanged, err := c.ReadIndex(ctx)
	require.NoError(t, err)
	assert.False(t, unchanged)
	assert.Equal(t, idx, got)
}

func TestResources_CorruptIndex(t *testing.T) {
	c, fake := newTestClient(t)
	fake.set("index.json", []byte("{broken"))

	_, _, err := c.ReadIndex(context.Background())
	require.Error(t, err)
	assert.True(t, IsCorrupt(err))
	assert.False(t, IsRetryable(err))
}

func TestResources_Todos(t *testing.T) {
	c, fake := newTestClient(t)
	ctx := context.Background()

	_, err := c.PutTodos(ctx, nil)
	require.NoError(t, err)

	obj, _ := fake.get("todos.json")
	assert.Equal(t, "[]", string(obj.body))

	require.NoError(t, c.Cache().Evict(ctx, api.TodosPath))
	todos, unchanged, err := c.ReadTodos(ctx)
	require.NoError(t, err)
	assert.False(t, unchanged)
	assert.Empty(t, todos)
}
