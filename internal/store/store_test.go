package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	st := NewMemoryStore()

	_, found, err := st.Get(ctx, SlotPatients)
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, st.Set(ctx, SlotPatients, `[{"id":"p1"}]`))
	v, found, err := st.Get(ctx, SlotPatients)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, `[{"id":"p1"}]`, v)

	require.NoError(t, st.Delete(ctx, SlotPatients))
	_, found, err = st.Get(ctx, SlotPatients)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestFileStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	st, err := NewFileStore(dir)
	require.NoError(t, err)

	_, found, err := st.Get(ctx, SlotDoctors)
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, st.Set(ctx, SlotDoctors, `[{"id":"d1"}]`))
	v, found, err := st.Get(ctx, SlotDoctors)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, `[{"id":"d1"}]`, v)

	// One file per slot, no leftover temp files after the rename.
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, SlotDoctors+".json", entries[0].Name())

	// A second store over the same directory sees the data.
	st2, err := NewFileStore(dir)
	require.NoError(t, err)
	v, found, err = st2.Get(ctx, SlotDoctors)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, `[{"id":"d1"}]`, v)

	require.NoError(t, st.Delete(ctx, SlotDoctors))
	assert.NoFileExists(t, filepath.Join(dir, SlotDoctors+".json"))
	require.NoError(t, st.Delete(ctx, SlotDoctors))
}

func TestFileStoreOverwrite(t *testing.T) {
	ctx := context.Background()
	st, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, st.Set(ctx, SlotInventory, "first"))
	require.NoError(t, st.Set(ctx, SlotInventory, "second"))

	v, found, err := st.Get(ctx, SlotInventory)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "second", v)
}

func TestEncryptedStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	inner := NewMemoryStore()
	st, err := NewEncryptedStore(inner, "clinic-passphrase")
	require.NoError(t, err)

	plain := `[{"id":"p1","name":"Alice"}]`
	require.NoError(t, st.Set(ctx, SlotPatients, plain))

	v, found, err := st.Get(ctx, SlotPatients)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, plain, v)

	// The backend never sees the clear text.
	raw, found, err := inner.Get(ctx, SlotPatients)
	require.NoError(t, err)
	require.True(t, found)
	assert.NotContains(t, raw, "Alice")

	_, found, err = st.Get(ctx, SlotDoctors)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestEncryptedStoreWrongPassphrase(t *testing.T) {
	ctx := context.Background()
	inner := NewMemoryStore()

	st1, err := NewEncryptedStore(inner, "right")
	require.NoError(t, err)
	require.NoError(t, st1.Set(ctx, SlotUsers, "payload"))

	st2, err := NewEncryptedStore(inner, "wrong")
	require.NoError(t, err)
	_, _, err = st2.Get(ctx, SlotUsers)
	assert.Error(t, err)
}
