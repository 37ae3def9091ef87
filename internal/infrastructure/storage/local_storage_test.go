package storage_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eustachekamala/virunga-inventory/internal/infrastructure/storage"
)

func TestSave_EscribeArchivoYDevuelveReferencia(t *testing.T) {
	dir := t.TempDir()
	s := storage.NewLocalStorage(dir)

	ref, err := s.Save([]byte{0x01, 0x02, 0x03})
	require.NoError(t, err)
	require.NotEmpty(t, ref)

	data, err := os.ReadFile(filepath.Join(dir, ref))
	require.NoError(t, err)
	assert.Equal(t, []byte{0x01, 0x02, 0x03}, data)
}

func TestSave_ArchivoVacioEsError(t *testing.T) {
	s := storage.NewLocalStorage(t.TempDir())

	_, err := s.Save(nil)
	assert.Error(t, err)

	_, err = s.Save([]byte{})
	assert.Error(t, err)
}

func TestSave_ReferenciasUnicas(t *testing.T) {
	s := storage.NewLocalStorage(t.TempDir())

	a, err := s.Save([]byte("a"))
	require.NoError(t, err)
	b, err := s.Save([]byte("b"))
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}
