package encoding_test

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hfaria/ventura/internal/encoding"
)

func TestUTF8Reader_UTF8Passthrough(t *testing.T) {
	// Valid UTF-8 with accented characters should pass through unchanged.
	input := "name,email,password\nJoão Brandão,joao@example.com,secret1\n"
	r, err := encoding.UTF8Reader(bytes.NewReader([]byte(input)))
	require.NoError(t, err)

	got, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, input, string(got))
}

func TestUTF8Reader_Latin1(t *testing.T) {
	// Windows-1252 encoded "João\n". In Windows-1252: ã = 0xE3
	latin1Bytes := []byte{'J', 'o', 0xE3, 'o', '\n'}

	r, err := encoding.UTF8Reader(bytes.NewReader(latin1Bytes))
	require.NoError(t, err)

	got, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, "João\n", string(got))
}

func TestUTF8Reader_UTF8BOM(t *testing.T) {
	// UTF-8 BOM (0xEF 0xBB 0xBF) should be stripped.
	bom := []byte{0xEF, 0xBB, 0xBF}
	content := []byte("name,email\nJoão,joao@example.com\n")
	input := append(bom, content...)

	r, err := encoding.UTF8Reader(bytes.NewReader(input))
	require.NoError(t, err)

	got, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, "name,email\nJoão,joao@example.com\n", string(got))
}
