// Package storage persiste las fotos de kilometraje (disco local o S3).
package storage

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/jhoicas/minegest-api/internal/application/ports"
)

var _ ports.PhotoStore = (*LocalStore)(nil)

// LocalStore guarda las fotos bajo Root, una carpeta por máquina y día.
type LocalStore struct {
	Root string
}

// NewLocalStore construye el store sobre el directorio root.
func NewLocalStore(root string) *LocalStore {
	return &LocalStore{Root: root}
}

// Save escribe data en Root/key y devuelve la clave relativa.
func (s *LocalStore) Save(_ context.Context, key, _ string, data []byte) (string, error) {
	clean, err := cleanKey(key)
	if err != nil {
		return "", err
	}
	path := filepath.Join(s.Root, clean)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("storage: crear carpeta: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("storage: escribir foto: %w", err)
	}
	return filepath.ToSlash(clean), nil
}

// Delete borra Root/key; si ya no existe no hace nada.
func (s *LocalStore) Delete(_ context.Context, key string) error {
	clean, err := cleanKey(key)
	if err != nil {
		return err
	}
	if err := os.Remove(filepath.Join(s.Root, clean)); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("storage: borrar foto: %w", err)
	}
	return nil
}

func cleanKey(key string) (string, error) {
	clean := filepath.Clean(filepath.FromSlash(key))
	if filepath.IsAbs(clean) || clean == "." || strings.HasPrefix(clean, "..") {
		return "", fmt.Errorf("storage: clave inválida %q", key)
	}
	return clean, nil
}
