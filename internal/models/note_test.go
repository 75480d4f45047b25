package models

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMergeIndex_LocalWins(t *testing.T) {
	local := Index{
		{ID: "A", Title: "local A", Modified: 10},
		{ID: "B", Title: "local B", Modified: 20, Pinned: true},
	}
	remote := Index{
		{ID: "B", Title: "remote B", Modified: 99},
		{ID: "C", Title: "remote C", Modified: 30},
	}

	merged := MergeIndex(local, remote)

	assert.Equal(t, []string{"A", "B", "C"}, merged.IDs())
	assert.Equal(t, "local A", merged[0].Title)
	assert.Equal(t, "local B", merged[1].Title)
	assert.Equal(t, int64(20), merged[1].Modified)
	assert.True(t, merged[1].Pinned)
	assert.Equal(t, "remote C", merged[2].Title)
}

func TestMergeIndex_Empty(t *testing.T) {
	tests := []struct {
		name   string
		local  Index
		remote Index
		want   []string
	}{
		{name: "both empty", want: []string{}},
		{name: "only local", local: Index{{ID: "A"}}, want: []string{"A"}},
		{name: "only remote", remote: Index{{ID: "C"}, {ID: "D"}}, want: []string{"C", "D"}},
		{name: "duplicate ids collapse", local: Index{{ID: "A"}, {ID: "A"}}, remote: Index{{ID: "A"}}, want: []string{"A"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MergeIndex(tt.local, tt.remote).IDs())
		})
	}
}

func TestIndex_Sort(t *testing.T) {
	idx := Index{
		{ID: "old", Modified: 1, Created: 1},
		{ID: "pinned-old", Modified: 2, Pinned: true},
		{ID: "new", Modified: 50},
		{ID: "pinned-new", Modified: 40, Pinned: true},
		{ID: "same-mod-newer-created", Modified: 1, Created: 5},
	}

	idx.Sort()

	assert.Equal(t, []string{"pinned-new", "pinned-old", "new", "same-mod-newer-created", "old"}, idx.IDs())
}

func TestIndex_FindRemove(t *testing.T) {
	idx := Index{{ID: "a"}, {ID: "b"}, {ID: "c"}}

	assert.Equal(t, 1, idx.Find("b"))
	assert.Equal(t, -1, idx.Find("zzz"))
	assert.True(t, idx.Contains("c"))

	out := idx.Remove("b")
	assert.Equal(t, []string{"a", "c"}, out.IDs())
	// исходный индекс не изменяется
	assert.Equal(t, []string{"a", "b", "c"}, idx.IDs())
}

func TestDeriveTitle(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{name: "empty note", body: EmptyNoteBody, want: ""},
		{name: "first paragraph", body: "<p>Shopping</p><p>milk</p>", want: "Shopping"},
		{name: "skips blank lines", body: "<p> </p><p><b>Plan</b> for today</p>", want: "Plan"},
		{name: "unescapes entities", body: "<p>Tom &amp; Jerry</p>", want: "Tom & Jerry"},
		{name: "plain text", body: "hello\nworld", want: "hello"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DeriveTitle(tt.body))
		})
	}
}

func TestDeriveTitle_Truncates(t *testing.T) {
	long := strings.Repeat("я", 200)
	title := DeriveTitle("<p>" + long + "</p>")
	assert.Equal(t, 120, len([]rune(title)))
}
