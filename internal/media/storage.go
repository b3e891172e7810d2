package media

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Storage: medya dosyalarının konduğu object storage soyutlaması.
// Save verilen path altına yazar ve dosyanın public URL'ini döndürür.
type Storage interface {
	Save(path string, r io.Reader) (string, error)
	Delete(path string) error
}

// localStorage dosyaları diskte bir klasör altında tutar; public URL
// base adresin altına path eklenerek üretilir. Klasör Fiber Static ile
// servis edilir.
type localStorage struct {
	root       string
	publicBase string
}

func NewLocalStorage(root, publicBase string) (Storage, error) {
	if root == "" {
		return nil, fmt.Errorf("storage klasörü boş olamaz")
	}
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("storage klasörü oluşturulamadı: %w", err)
	}
	return &localStorage{
		root:       root,
		publicBase: strings.TrimRight(publicBase, "/"),
	}, nil
}

func (s *localStorage) Save(path string, r io.Reader) (string, error) {
	// path traversal'a izin verme
	clean := filepath.Clean("/" + path)
	fullPath := filepath.Join(s.root, clean)

	if err := os.MkdirAll(filepath.Dir(fullPath), 0o755); err != nil {
		return "", fmt.Errorf("klasör oluşturulamadı: %w", err)
	}

	f, err := os.Create(fullPath)
	if err != nil {
		return "", fmt.Errorf("dosya oluşturulamadı: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		os.Remove(fullPath)
		return "", fmt.Errorf("dosya yazılamadı: %w", err)
	}

	return s.publicBase + strings.ReplaceAll(clean, string(filepath.Separator), "/"), nil
}

func (s *localStorage) Delete(path string) error {
	clean := filepath.Clean("/" + path)
	if err := os.Remove(filepath.Join(s.root, clean)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("dosya silinemedi: %w", err)
	}
	return nil
}
