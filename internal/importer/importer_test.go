package importer_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hfaria/ventura/internal/auth"
	"github.com/hfaria/ventura/internal/importer"
)

func TestParse(t *testing.T) {
	input := "name,email,password,role\n" +
		"Maria Silva,maria@example.com,secret123,investor\n" +
		"Rui Costa,rui@example.com,secret456,business_owner\n"

	rows, err := importer.Parse(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, "Maria Silva", rows[0].Params.Name)
	assert.Equal(t, "maria@example.com", rows[0].Params.Email)
	assert.Equal(t, "secret123", rows[0].Params.Password)
	assert.Equal(t, auth.RoleInvestor, rows[0].Params.Role)
	assert.Equal(t, 2, rows[0].Line)

	assert.Equal(t, auth.RoleBusinessOwner, rows[1].Params.Role)
}

func TestParse_HeaderAfterPreamble(t *testing.T) {
	// Exports often carry report banners before the real header row.
	input := "Account export\n" +
		"Generated 2026-08-01\n" +
		"Name,Email,Password,Role\n" +
		"Maria Silva,maria@example.com,secret123,investor\n"

	rows, err := importer.Parse(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "maria@example.com", rows[0].Params.Email)
	assert.Equal(t, 4, rows[0].Line)
}

func TestParse_RoleDefaultsToInvestor(t *testing.T) {
	input := "name,email,password\n" +
		"Maria Silva,maria@example.com,secret123\n"

	rows, err := importer.Parse(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, auth.RoleInvestor, rows[0].Params.Role)
}

func TestParse_SkipsRowsWithoutEmail(t *testing.T) {
	input := "name,email,password,role\n" +
		"Maria Silva,maria@example.com,secret123,investor\n" +
		"No Email,,secret456,investor\n" +
		"Rui Costa,rui@example.com,secret789,investor\n"

	rows, err := importer.Parse(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "maria@example.com", rows[0].Params.Email)
	assert.Equal(t, "rui@example.com", rows[1].Params.Email)
}

func TestParse_SkipsShortRows(t *testing.T) {
	input := "name,email,password,role\n" +
		"just-one-field\n" +
		"Maria Silva,maria@example.com,secret123,investor\n"

	rows, err := importer.Parse(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, rows, 1)
}

func TestParse_MissingPasswordColumn(t *testing.T) {
	// A header without a password column must be rejected, not treated
	// as found with a dangling column index.
	input := "name,email,role\n" +
		"Maria Silva,maria@example.com,investor\n"

	_, err := importer.Parse(strings.NewReader(input))
	assert.Error(t, err)
}

func TestParse_MissingNameColumn(t *testing.T) {
	input := "email,password,role\n" +
		"maria@example.com,secret123,investor\n"

	_, err := importer.Parse(strings.NewReader(input))
	assert.Error(t, err)
}

func TestParse_NoHeader(t *testing.T) {
	input := "just,some,random\ncontent,without,headers\n"

	_, err := importer.Parse(strings.NewReader(input))
	assert.Error(t, err)
}
