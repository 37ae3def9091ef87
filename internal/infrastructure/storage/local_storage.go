// Package storage implementa el puerto FileStorage sobre el disco local.
// En producción la referencia apunta a un backend externo (S3, Cloudinary);
// este adaptador cubre desarrollo y pruebas.
package storage

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/eustachekamala/virunga-inventory/internal/application/ports"
)

var _ ports.FileStorage = (*LocalStorage)(nil)

// LocalStorage guarda las imágenes de producto en un directorio local con
// nombre aleatorio; la referencia devuelta es el nombre del archivo.
type LocalStorage struct {
	dir string
}

// NewLocalStorage construye el adaptador; el directorio se crea en el primer Save.
func NewLocalStorage(dir string) *LocalStorage {
	return &LocalStorage{dir: dir}
}

func (s *LocalStorage) Save(data []byte) (string, error) {
	if len(data) == 0 {
		return "", fmt.Errorf("no se puede guardar un archivo vacío")
	}

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("crear directorio de imágenes: %w", err)
	}

	name := uuid.New().String() + ".img"
	if err := os.WriteFile(filepath.Join(s.dir, name), data, 0o644); err != nil {
		return "", fmt.Errorf("escribir imagen: %w", err)
	}
	return name, nil
}
