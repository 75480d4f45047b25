package iocli

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStdio(t *testing.T) {
	stdio := NewStdio()
	assert.NotNil(t, stdio)
}

func TestStdio_Output(t *testing.T) {
	var out bytes.Buffer
	s := NewStreams(strings.NewReader(""), &out)

	s.Println("hello", "world")
	s.Printf("test %d %s\n", 1, "abc")
	n, err := s.Write([]byte("<p>body</p>"))
	require.NoError(t, err)
	assert.Equal(t, 11, n)

	assert.Equal(t, "hello world\ntest 1 abc\n<p>body</p>", out.String())
}

// Несколько запросов подряд читают последовательные строки одного потока
func TestStdio_ReadInput_Sequential(t *testing.T) {
	var out bytes.Buffer
	s := NewStreams(strings.NewReader("  first \nsecond\nlast"), &out)

	tests := []struct {
		want    string
		wantErr error
	}{
		{want: "first"},
		{want: "second"},
		{want: "last"},
		{wantErr: io.EOF},
	}
	for _, tt := range tests {
		got, err := s.ReadInput("> ")
		if tt.wantErr != nil {
			assert.ErrorIs(t, err, tt.wantErr)
			continue
		}
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}
	assert.Equal(t, "> > > > ", out.String())
}

func TestStdio_ReadPassword_NotTerminal(t *testing.T) {
	var out bytes.Buffer
	s := NewStreams(strings.NewReader("s3cret\n"), &out)

	got, err := s.ReadPassword("Token: ")
	require.NoError(t, err)
	assert.Equal(t, "s3cret", got)
	assert.Equal(t, "Token: ", out.String())
}
