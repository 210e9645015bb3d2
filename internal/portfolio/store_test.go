package portfolio

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deptltd/dept-portal/internal/common"
	"github.com/deptltd/dept-portal/internal/models"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "portfolio-data.json")
	return NewStore(path, common.NewSilentLogger())
}

func TestStoreLoadMissingFile(t *testing.T) {
	store := newTestStore(t)

	doc, source := store.Load()
	assert.Equal(t, SourceMissing, source)
	assert.NotNil(t, doc.Wallets)
	assert.Empty(t, doc.Wallets)
	assert.Nil(t, doc.ActiveWalletID)
}

func TestStoreLoadCorruptFile(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, os.WriteFile(store.Path(), []byte("{not json"), 0o644))

	doc, source := store.Load()
	assert.Equal(t, SourceCorrupt, source)
	assert.Empty(t, doc.Wallets)
}

func TestStoreSaveLoadRoundTrip(t *testing.T) {
	store := newTestStore(t)

	active := 2
	doc := &models.Document{
		Wallets: []models.Wallet{
			{
				ID:      1,
				Name:    "Conservative",
				Capital: "$125,450",
				Assets:  []models.Asset{{Name: "USDT", Percentage: 60}, {Name: "BTC", Percentage: 40}},
			},
			{
				ID:     2,
				Name:   "Aggressive",
				Assets: []models.Asset{{Name: "ETH", Percentage: 100}},
			},
		},
		ActiveWalletID: &active,
	}
	require.NoError(t, store.Save(doc))

	loaded, source := store.Load()
	assert.Equal(t, SourceLoaded, source)
	assert.Equal(t, doc.Wallets, loaded.Wallets)
	require.NotNil(t, loaded.ActiveWalletID)
	assert.Equal(t, 2, *loaded.ActiveWalletID)
}

func TestStoreSaveFormat(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.Save(models.NewDocument()))

	data, err := os.ReadFile(store.Path())
	require.NoError(t, err)
	assert.Equal(t, "{\n    \"wallets\": [],\n    \"activeWalletId\": null\n}\n", string(data))
}

func TestStoreSaveKeepsUnicodeUnescaped(t *testing.T) {
	store := newTestStore(t)

	doc := models.NewDocument()
	doc.Wallets = append(doc.Wallets, models.Wallet{ID: 1, Name: "Fonds Européen"})
	require.NoError(t, store.Save(doc))

	data, err := os.ReadFile(store.Path())
	require.NoError(t, err)
	assert.Contains(t, string(data), "Fonds Européen")
	assert.NotContains(t, string(data), "\\u")
}

func TestStoreSaveNormalizesNilSlices(t *testing.T) {
	store := newTestStore(t)

	doc := &models.Document{
		Wallets: []models.Wallet{{ID: 1, Name: "Empty"}},
	}
	require.NoError(t, store.Save(doc))

	data, err := os.ReadFile(store.Path())
	require.NoError(t, err)
	assert.Contains(t, string(data), "\"assets\": []")
	assert.NotContains(t, string(data), "\"assets\": null")
}

func TestStoreSaveOverwritesAtomically(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.Save(models.NewDocument()))

	doc := models.NewDocument()
	doc.Wallets = append(doc.Wallets, models.Wallet{ID: 1, Name: "Main"})
	require.NoError(t, store.Save(doc))

	loaded, _ := store.Load()
	require.Len(t, loaded.Wallets, 1)

	// No temp files left behind.
	entries, err := os.ReadDir(filepath.Dir(store.Path()))
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestStoreFileSize(t *testing.T) {
	store := newTestStore(t)
	assert.Equal(t, int64(0), store.FileSize())

	require.NoError(t, store.Save(models.NewDocument()))
	assert.Greater(t, store.FileSize(), int64(0))
}
