package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFileStoreMaterializesEmptyCollection(t *testing.T) {
	dir := t.TempDir()
	st, err := NewFileStore(dir)
	require.NoError(t, err)

	data, err := st.ReadCollection(SlotInvestors)
	require.NoError(t, err)
	require.JSONEq(t, "[]", string(data))

	// The empty collection is persisted, not just returned.
	raw, err := os.ReadFile(filepath.Join(dir, SlotInvestors+".json"))
	require.NoError(t, err)
	require.JSONEq(t, "[]", string(raw))
}

func TestFileStoreSurvivesRestart(t *testing.T) {
	dir := t.TempDir()
	st, err := NewFileStore(dir)
	require.NoError(t, err)

	payload := []byte(`[{"username":"asha"}]`)
	require.NoError(t, st.WriteCollection(SlotInvestors, payload))

	// A second store on the same directory sees the same data.
	st2, err := NewFileStore(dir)
	require.NoError(t, err)
	data, err := st2.ReadCollection(SlotInvestors)
	require.NoError(t, err)
	require.JSONEq(t, string(payload), string(data))
}

func TestFileStoreWriteReplacesWholeSlot(t *testing.T) {
	st, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, st.WriteCollection(SlotVolunteers, []byte(`[1,2,3]`)))
	require.NoError(t, st.WriteCollection(SlotVolunteers, []byte(`[4]`)))

	data, err := st.ReadCollection(SlotVolunteers)
	require.NoError(t, err)
	require.JSONEq(t, `[4]`, string(data))
}

func TestFileStoreSessionSlot(t *testing.T) {
	st, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	_, ok, err := st.ReadSlot(SlotSession)
	require.NoError(t, err)
	require.False(t, ok, "absent slot must read as not present")

	require.NoError(t, st.WriteSlot(SlotSession, []byte(`{"appRole":"investor"}`)))
	data, ok, err := st.ReadSlot(SlotSession)
	require.NoError(t, err)
	require.True(t, ok)
	require.JSONEq(t, `{"appRole":"investor"}`, string(data))

	require.NoError(t, st.DeleteSlot(SlotSession))
	_, ok, err = st.ReadSlot(SlotSession)
	require.NoError(t, err)
	require.False(t, ok)

	// Deleting again is not an error.
	require.NoError(t, st.DeleteSlot(SlotSession))
}

func TestMemStoreMatchesFileStoreContract(t *testing.T) {
	st := NewMemStore()

	data, err := st.ReadCollection(SlotIdeas)
	require.NoError(t, err)
	require.JSONEq(t, "[]", string(data))

	require.NoError(t, st.WriteCollection(SlotIdeas, []byte(`[{"id":1}]`)))
	data, err = st.ReadCollection(SlotIdeas)
	require.NoError(t, err)
	require.JSONEq(t, `[{"id":1}]`, string(data))

	_, ok, err := st.ReadSlot(SlotSession)
	require.NoError(t, err)
	require.False(t, ok)

	require.NoError(t, st.WriteSlot(SlotSession, []byte(`{}`)))
	_, ok, err = st.ReadSlot(SlotSession)
	require.NoError(t, err)
	require.True(t, ok)

	require.NoError(t, st.DeleteSlot(SlotSession))
	_, ok, err = st.ReadSlot(SlotSession)
	require.NoError(t, err)
	require.False(t, ok)
}
