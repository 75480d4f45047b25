package api

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeETag(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "bare", in: "abc", want: "abc"},
		{name: "quoted", in: `"abc"`, want: "abc"},
		{name: "weak", in: `W/"abc"`, want: "abc"},
		{name: "spaces", in: ` "abc" `, want: "abc"},
		{name: "empty", in: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeETag(tt.in))
		})
	}
}

func TestQuoteETag(t *testing.T) {
	assert.Equal(t, `"abc"`, QuoteETag(`W/"abc"`))
	assert.Equal(t, `"abc"`, QuoteETag("abc"))
}

func TestNotePath(t *testing.T) {
	assert.Equal(t, "notes/n1.html", NotePath("n1"))

	id, ok := NoteIDFromPath("notes/n1.html")
	assert.True(t, ok)
	assert.Equal(t, "n1", id)

	for _, p := range []string{"index.json", "notes/.html", "notes/a/b.html", "notes/x.txt"} {
		_, ok := NoteIDFromPath(p)
		assert.False(t, ok, p)
	}
}

func TestContentTypeFor(t *testing.T) {
	assert.Equal(t, ContentTypeJSON, ContentTypeFor(IndexPath))
	assert.Equal(t, ContentTypeHTML, ContentTypeFor(NotePath("x")))
	assert.Equal(t, ContentTypeBinary, ContentTypeFor("blob"))
}
