package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"kiosk/models"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *FileStore {
	t.Helper()
	store, err := NewFileStore(filepath.Join(t.TempDir(), "uploads"))
	require.NoError(t, err)
	return store
}

func listFiles(t *testing.T, dir string) []string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names
}

func TestNewFileStoreCreatesDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b")
	store, err := NewFileStore(dir)
	require.NoError(t, err)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
	assert.Equal(t, DriverFile, store.Driver())
}

func TestFileStoreSaveSelfie(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.SaveSelfie(ctx, "selfie_Jo_1.jpg", []byte("jpeg-bytes")))

	data, err := os.ReadFile(filepath.Join(store.Dir(), "selfie_Jo_1.jpg"))
	require.NoError(t, err)
	assert.Equal(t, []byte("jpeg-bytes"), data)
	assert.Equal(t, []string{"selfie_Jo_1.jpg"}, listFiles(t, store.Dir()), "no temp files left behind")
}

func TestFileStoreNeverOverwrites(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.SaveSelfie(ctx, "selfie_Jo_1.jpg", []byte("first")))
	err := store.SaveSelfie(ctx, "selfie_Jo_1.jpg", []byte("second"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrExists)

	data, err := os.ReadFile(filepath.Join(store.Dir(), "selfie_Jo_1.jpg"))
	require.NoError(t, err)
	assert.Equal(t, []byte("first"), data)

	require.NoError(t, store.SaveRecord(ctx, "record_Jo_1.json", &models.CheckinRecord{Name: "first"}))
	err = store.SaveRecord(ctx, "record_Jo_1.json", &models.CheckinRecord{Name: "second"})
	assert.ErrorIs(t, err, ErrExists)

	assert.ElementsMatch(t, []string{"selfie_Jo_1.jpg", "record_Jo_1.json"}, listFiles(t, store.Dir()), "no temp files left behind")
}

func TestFileStoreSaveRecord(t *testing.T) {
	store := newTestStore(t)
	record := &models.CheckinRecord{
		Name:           "Jo Lee",
		Phone:          "555-1234",
		Timestamp:      "2026-10-18T09:30:05.123Z",
		SelfieFilename: "selfie_JoLee_1.jpg",
		WaiverVersion:  "v1.0",
		AgreedToTerms:  true,
		ClientIP:       "192.0.2.1",
	}

	require.NoError(t, store.SaveRecord(context.Background(), "record_JoLee_1.json", record))

	data, err := os.ReadFile(filepath.Join(store.Dir(), "record_JoLee_1.json"))
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(data), "\n  \"name\": \"Jo Lee\""), "record is indented")

	var got models.CheckinRecord
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, *record, got)
}

func TestFileStoreRemoveSelfie(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.SaveSelfie(ctx, "selfie_Jo_1.jpg", []byte("x")))
	require.NoError(t, store.RemoveSelfie(ctx, "selfie_Jo_1.jpg"))
	assert.Empty(t, listFiles(t, store.Dir()))

	assert.NoError(t, store.RemoveSelfie(ctx, "selfie_missing.jpg"))
}

func TestFileStoreSweepOrphans(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	now := time.Now()
	old := now.Add(-time.Hour)

	write := func(name string, mtime time.Time) {
		path := filepath.Join(store.Dir(), name)
		require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))
		require.NoError(t, os.Chtimes(path, mtime, mtime))
	}

	write("selfie_paired_1.jpg", old)
	write("record_paired_1.json", old)
	write("selfie_orphan_2.jpg", old)
	write("selfie_fresh_3.jpg", now)
	write("notes.txt", old)

	removed, err := store.SweepOrphans(ctx, 5*time.Minute, now)
	require.NoError(t, err)
	assert.Equal(t, 1, removed)

	assert.ElementsMatch(t, []string{
		"selfie_paired_1.jpg",
		"record_paired_1.json",
		"selfie_fresh_3.jpg",
		"notes.txt",
	}, listFiles(t, store.Dir()))
}
