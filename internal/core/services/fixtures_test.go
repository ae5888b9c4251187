package services_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/barpos/comanda_backend/internal/core/domain"
	portsrepo "github.com/barpos/comanda_backend/internal/core/ports/repositories"
	"github.com/barpos/comanda_backend/internal/repositories/filestore"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

const (
	productsJSON = `[
		{"id": 10, "description": "CERVEJA", "price": "5.00", "commissionPerUnit": "0"},
		{"id": 20, "description": "DOSE", "price": "8.00", "commissionPerUnit": "2.00"}
	]`
	attendantsJSON = `[
		{"id": 1, "nickname": "ANA", "present": true, "active": true},
		{"id": 2, "nickname": "BETO", "present": true, "active": true}
	]`
)

// fileRepos builds file-backed repositories in a temp dir with a small
// catalog and tab 1 open with a zero balance. roomJSON may be empty.
func fileRepos(t *testing.T, roomJSON string) (portsrepo.RepositoryProvider, string) {
	t.Helper()
	dir := t.TempDir()
	write := func(name, content string) {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	}
	write("products.json", productsJSON)
	write("attendants.json", attendantsJSON)
	if roomJSON != "" {
		write("room.json", roomJSON)
	}

	ledgerDir := filepath.Join(dir, "sales")
	repos := filestore.NewRepositoryProvider(dir, ledgerDir, filepath.Join(dir, "room.json"))
	require.NoError(t, repos.TabRepo.SaveTab(context.Background(), domain.Tab{
		TabID:         1,
		CustomerLabel: "ANA",
		Balance:       decimal.Zero,
		OpenedAt:      time.Date(2026, 3, 14, 20, 0, 0, 0, time.UTC),
		Status:        domain.TabOpen,
	}))
	return repos, ledgerDir
}
