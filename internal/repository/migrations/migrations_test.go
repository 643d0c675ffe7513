package migrations

import (
	"io/fs"
	"regexp"
	"strconv"
	"testing"

	"auction-engine/internal/models"

	"github.com/stretchr/testify/require"
)

var numericColumn = regexp.MustCompile(`NUMERIC\((\d+), (\d+)\)`)

// every money column must hold exactly what models.FitsMoney accepts
func TestMoneyColumnsMatchModelScale(t *testing.T) {
	files, err := fs.Glob(Migrations, "*.sql")
	require.NoError(t, err)
	require.NotEmpty(t, files)

	found := 0
	for _, name := range files {
		body, err := fs.ReadFile(Migrations, name)
		require.NoError(t, err)

		for _, m := range numericColumn.FindAllStringSubmatch(string(body), -1) {
			precision, err := strconv.Atoi(m[1])
			require.NoError(t, err)
			scale, err := strconv.Atoi(m[2])
			require.NoError(t, err)
			require.Equal(t, models.MoneyPrecision, precision, "%s: %s", name, m[0])
			require.Equal(t, models.MoneyScale, scale, "%s: %s", name, m[0])
			found++
		}
	}
	require.NotZero(t, found)
}

var lotReference = regexp.MustCompile(`(?i)REFERENCES\s+lots\s*\(id\)(\s+ON\s+DELETE\s+CASCADE)?`)

// deleting a lot row must take its bids, ledger and rejections with it
func TestLotChildrenCascadeOnDelete(t *testing.T) {
	body, err := fs.ReadFile(Migrations, "00001_create_lots.sql")
	require.NoError(t, err)

	refs := lotReference.FindAllStringSubmatch(string(body), -1)
	require.Len(t, refs, 3)
	for _, ref := range refs {
		require.NotEmpty(t, ref[1], "missing cascade: %s", ref[0])
	}
}
