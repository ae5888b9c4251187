package filestore

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/barpos/comanda_backend/internal/apperrors"
	"github.com/barpos/comanda_backend/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestWriteJSON_RemovesBackupOnSuccess(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.json")
	writeFile(t, path, `[1]`)

	require.NoError(t, writeJSON(path, []int{1, 2}))

	var got []int
	found, err := readJSON(path, &got)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, []int{1, 2}, got)
	assert.NoFileExists(t, path+backupSuffix)
}

func TestReadJSON_MissingAndEmpty(t *testing.T) {
	dir := t.TempDir()

	var v []int
	found, err := readJSON(filepath.Join(dir, "missing.json"), &v)
	require.NoError(t, err)
	assert.False(t, found)

	empty := filepath.Join(dir, "empty.json")
	writeFile(t, empty, "")
	found, err = readJSON(empty, &v)
	require.NoError(t, err)
	assert.False(t, found)

	broken := filepath.Join(dir, "broken.json")
	writeFile(t, broken, "{")
	_, err = readJSON(broken, &v)
	assert.Error(t, err)
}

func TestCatalogRepository(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, productsFile), `[
		{"id": 10, "description": "CERVEJA", "price": "5.00", "commissionPerUnit": 0},
		{"id": 20, "description": "DOSE", "price": 8, "commissionPerUnit": "2.00", "sector": "BAR"}
	]`)
	writeFile(t, filepath.Join(dir, attendantsFile), `[
		{"id": 1, "nickname": "ANA", "present": true, "active": true},
		{"id": 2, "nickname": "BETO", "present": false, "active": true},
		{"id": 3, "nickname": "CIDA", "present": true, "active": false}
	]`)
	repo := newFileCatalogRepository(dir)
	ctx := context.Background()

	product, err := repo.FindProductByID(ctx, 20)
	require.NoError(t, err)
	assert.Equal(t, "DOSE", product.Description)
	assert.True(t, decimal.RequireFromString("2").Equal(product.CommissionPerUnit))

	_, err = repo.FindProductByID(ctx, 99)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	products, err := repo.ListProducts(ctx)
	require.NoError(t, err)
	assert.Len(t, products, 2)

	onShift, err := repo.ListActivePresentAttendants(ctx)
	require.NoError(t, err)
	require.Len(t, onShift, 1)
	assert.Equal(t, "ANA", onShift[0].Nickname)

	absent, err := repo.FindAttendantByID(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, "BETO", absent.Nickname)
}

func TestCatalogRepository_CorruptFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, productsFile), `not json`)

	_, err := newFileCatalogRepository(dir).ListProducts(context.Background())
	assert.ErrorIs(t, err, apperrors.ErrStorage)
}

func TestTabRepository(t *testing.T) {
	repo := newFileTabRepository(t.TempDir())
	ctx := context.Background()
	opened := time.Date(2024, 3, 1, 20, 0, 0, 0, time.UTC)

	tabs, err := repo.ListTabs(ctx)
	require.NoError(t, err)
	assert.Empty(t, tabs)

	require.NoError(t, repo.SaveTab(ctx, domain.Tab{TabID: 7, CustomerLabel: "JOAO", Balance: decimal.Zero, OpenedAt: opened}))
	require.NoError(t, repo.SaveTab(ctx, domain.Tab{TabID: 3, CustomerLabel: "ANA", Balance: decimal.Zero, OpenedAt: opened}))

	tab, err := repo.FindTabByID(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, domain.TabOpen, tab.Status)

	tab.AddSale(decimal.RequireFromString("12.50"))
	require.NoError(t, repo.SaveTab(ctx, *tab))

	tabs, err = repo.ListTabs(ctx)
	require.NoError(t, err)
	require.Len(t, tabs, 2)
	assert.Equal(t, 3, tabs[0].TabID)
	assert.Equal(t, "12.5", tabs[1].Balance.String())

	require.NoError(t, repo.CloseTab(ctx, 7))
	tab, err = repo.FindTabByID(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, domain.TabClosed, tab.Status)
	assert.True(t, tab.Balance.IsZero())

	assert.ErrorIs(t, repo.CloseTab(ctx, 99), apperrors.ErrNotFound)
	_, err = repo.FindTabByID(ctx, 99)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestTabRepository_AddToBalanceAndRemove(t *testing.T) {
	repo := newFileTabRepository(t.TempDir())
	ctx := context.Background()
	opened := time.Date(2024, 3, 1, 20, 0, 0, 0, time.UTC)

	require.NoError(t, repo.SaveTab(ctx, domain.Tab{TabID: 1, CustomerLabel: "ANA", Balance: decimal.Zero, OpenedAt: opened, Status: domain.TabOpen}))
	require.NoError(t, repo.SaveTab(ctx, domain.Tab{TabID: 2, CustomerLabel: "BETO", Balance: decimal.Zero, OpenedAt: opened, Status: domain.TabOpen}))

	tab, err := repo.AddToBalance(ctx, 1, decimal.RequireFromString("7.50"))
	require.NoError(t, err)
	assert.Equal(t, "7.50", tab.Balance.StringFixed(2))
	assert.Equal(t, "ANA", tab.CustomerLabel)

	// a closed tab stays closed when a sale lands afterwards
	require.NoError(t, repo.CloseTab(ctx, 1))
	tab, err = repo.AddToBalance(ctx, 1, decimal.RequireFromString("2"))
	require.NoError(t, err)
	assert.Equal(t, domain.TabClosed, tab.Status)
	stored, err := repo.FindTabByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, domain.TabClosed, stored.Status)
	assert.Equal(t, "2.00", stored.Balance.StringFixed(2))

	_, err = repo.AddToBalance(ctx, 99, decimal.RequireFromString("1"))
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	require.NoError(t, repo.RemoveTab(ctx, 1))
	_, err = repo.FindTabByID(ctx, 1)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	tabs, err := repo.ListTabs(ctx)
	require.NoError(t, err)
	require.Len(t, tabs, 1)
	assert.Equal(t, 2, tabs[0].TabID)

	assert.ErrorIs(t, repo.RemoveTab(ctx, 1), apperrors.ErrNotFound)
}

func TestOperatorRepository(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, operatorsFile), `[
		{"id": 3, "name": "Maria", "username": "maria", "passwordHash": "$2a$hash", "level": 2, "active": true}
	]`)
	repo := newFileOperatorRepository(dir)

	op, err := repo.FindOperatorByUsername(context.Background(), "MARIA")
	require.NoError(t, err)
	assert.Equal(t, 3, op.OperatorID)
	assert.Equal(t, "$2a$hash", op.PasswordHash)

	_, err = repo.FindOperatorByUsername(context.Background(), "nobody")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	operators, err := repo.ListOperators(context.Background())
	require.NoError(t, err)
	require.Len(t, operators, 1)
	assert.Equal(t, "maria", operators[0].Username)
}

func TestRoomConfigRepository(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	t.Run("missing file gives defaults", func(t *testing.T) {
		cfg, err := newFileRoomConfigRepository(filepath.Join(dir, "none.json")).GetRoomConfig(ctx)
		require.NoError(t, err)
		assert.Equal(t, domain.DefaultRoomConfig(), cfg)
	})

	t.Run("single element array", func(t *testing.T) {
		path := filepath.Join(dir, "array.json")
		writeFile(t, path, `[{"room name": "Salão Azul", "print enabled": 0, "initial sequence number": 5000}]`)

		cfg, err := newFileRoomConfigRepository(path).GetRoomConfig(ctx)
		require.NoError(t, err)
		assert.Equal(t, "Salão Azul", cfg.RoomName)
		assert.False(t, cfg.PrintEnabled)
		assert.True(t, cfg.CommissionEnabled)
		assert.Equal(t, 5000, cfg.InitialSequenceNumber)
	})

	t.Run("object with string flags", func(t *testing.T) {
		path := filepath.Join(dir, "object.json")
		writeFile(t, path, `{"commission enabled": "0", "customer name required": "1"}`)

		cfg, err := newFileRoomConfigRepository(path).GetRoomConfig(ctx)
		require.NoError(t, err)
		assert.False(t, cfg.CommissionEnabled)
		assert.True(t, cfg.CustomerNameRequired)
	})

	t.Run("scalar document", func(t *testing.T) {
		path := filepath.Join(dir, "scalar.json")
		writeFile(t, path, `42`)

		_, err := newFileRoomConfigRepository(path).GetRoomConfig(ctx)
		assert.ErrorIs(t, err, apperrors.ErrStorage)
	})
}

func TestLedgerStore(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "sales")
	store := NewFileLedgerStore(dir)
	ctx := context.Background()

	names, err := store.ListRecordNames(ctx)
	require.NoError(t, err)
	assert.Empty(t, names)

	require.NoError(t, store.WriteRecord(ctx, "00001-01-00001.cv", "10!CERVEJA!2!!"))
	err = store.WriteRecord(ctx, "00001-01-00001.cv", "overwrite")
	assert.ErrorIs(t, err, apperrors.ErrDuplicate)

	writeFile(t, filepath.Join(dir, "notes.txt"), "ignored")

	names, err = store.ListRecordNames(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"00001-01-00001.cv"}, names)

	body, err := store.ReadRecord(ctx, "00001-01-00001.cv")
	require.NoError(t, err)
	assert.Equal(t, "10!CERVEJA!2!!", body)

	_, err = store.ReadRecord(ctx, "00002-01-00002.cv")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestLedgerStore_FailedWriteLeavesNoRecord(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "sales")
	store := &FileLedgerStore{dir: dir, write: func(w io.Writer, body string) (int, error) {
		n, _ := io.WriteString(w, body[:3])
		return n, errors.New("device full")
	}}
	ctx := context.Background()

	err := store.WriteRecord(ctx, "00001-01-00001.cv", "10!CERVEJA!2!!")
	assert.ErrorIs(t, err, apperrors.ErrStorage)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries, "neither the record nor its temporary file may remain")

	names, err := store.ListRecordNames(ctx)
	require.NoError(t, err)
	assert.Empty(t, names)

	store.write = io.WriteString
	require.NoError(t, store.WriteRecord(ctx, "00001-01-00001.cv", "10!CERVEJA!2!!"))
	body, err := store.ReadRecord(ctx, "00001-01-00001.cv")
	require.NoError(t, err)
	assert.Equal(t, "10!CERVEJA!2!!", body)
}

func TestLedgerStore_SkipsStaleTemporaryFiles(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "sales")
	store := NewFileLedgerStore(dir)
	ctx := context.Background()

	writeFile(t, filepath.Join(dir, ".00001-01-00001.cv.123"+tempSuffix), "10!CERV")
	require.NoError(t, store.WriteRecord(ctx, "00001-01-00002.cv", "10!CERVEJA!1!!"))

	names, err := store.ListRecordNames(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"00001-01-00002.cv"}, names)
}
