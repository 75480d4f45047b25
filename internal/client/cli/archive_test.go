package cli

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/lightnotes/internal/client/remote"
	"github.com/iudanet/lightnotes/internal/client/storage/memory"
	"github.com/iudanet/lightnotes/internal/client/sync"
	"github.com/iudanet/lightnotes/internal/models"
)

func TestCli_ExportImport(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)
	clock := func() time.Time { return now }
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	path := filepath.Join(t.TempDir(), "backup.zip")

	src := memory.NewNoteStore()
	require.NoError(t, src.SaveIndex(ctx, models.Index{{ID: "a", Title: "A"}}))
	require.NoError(t, src.WriteBody(ctx, "a", "<p>a</p>"))
	srcMeta := memory.NewMetadata()

	mockIO, out := newTestIO()
	exporter := New(Deps{IO: mockIO, Store: src, Meta: srcMeta, Now: clock, Logger: logger})
	require.NoError(t, exporter.runExport(ctx, []string{path}))
	assert.Contains(t, out.String(), "Exported 1 note(s)")

	last, err := srcMeta.GetLastBackupTimestamp(ctx)
	require.NoError(t, err)
	assert.Equal(t, now.UnixMilli(), last)

	tests := []struct {
		resetErr error
		name     string
		wantMsg  string
		wantErr  bool
	}{
		{name: "remote replaced", wantMsg: "Remote storage replaced"},
		{name: "not configured", resetErr: remote.ErrNotConfigured, wantMsg: "not configured"},
		{name: "reset fails", resetErr: &remote.Error{Kind: remote.KindNetwork}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dst := memory.NewNoteStore()
			mockSync := &sync.ServiceMock{
				FullResetSyncFunc: func(ctx context.Context) error { return tt.resetErr },
			}
			mockIO, out := newTestIO()
			importer := New(Deps{IO: mockIO, Store: dst, Syncer: mockSync, Logger: logger})

			err := importer.runImport(ctx, []string{"-y", path})
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.Contains(t, out.String(), tt.wantMsg)
			}
			assert.Len(t, mockSync.FullResetSyncCalls(), 1)

			body, err := dst.ReadBody(ctx, "a")
			require.NoError(t, err)
			assert.Equal(t, "<p>a</p>", body)
		})
	}
}

func TestCli_runImport_Cancelled(t *testing.T) {
	mockIO, out := newTestIO("no")
	c := New(Deps{IO: mockIO, Store: memory.NewNoteStore()})

	require.NoError(t, c.runImport(context.Background(), []string{"whatever.zip"}))
	assert.Contains(t, out.String(), "Import cancelled.")
}

func TestCli_runImport_LocalOnly(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "backup.zip")
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	mockIO, _ := newTestIO()
	require.NoError(t, New(Deps{IO: mockIO, Store: memory.NewNoteStore()}).runExport(ctx, []string{path}))

	mockIO, out := newTestIO()
	c := New(Deps{IO: mockIO, Store: memory.NewNoteStore(), Logger: logger, LockedDB: true})
	require.NoError(t, c.runImport(ctx, []string{"-y", path}))
	assert.Contains(t, out.String(), "daemon uploads")
}

func TestCli_runSnooze(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)
	meta := memory.NewMetadata()

	mockIO, out := newTestIO()
	c := New(Deps{IO: mockIO, Meta: meta, Now: func() time.Time { return now }})

	require.NoError(t, c.runSnooze(ctx))
	assert.Contains(t, out.String(), "postponed for 3 days")

	until, err := meta.GetReminderSnoozedUntil(ctx)
	require.NoError(t, err)
	assert.Equal(t, now.Add(72*time.Hour).UnixMilli(), until)
}
