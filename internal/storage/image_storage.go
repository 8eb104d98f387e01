package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/h2non/filetype"

	"github.com/ignatzorin/creative-marketplace/internal/pkg/apperror"
)

const sniffLen = 512

var allowedMimeTypes = map[string]struct{}{
	"image/jpeg": {},
	"image/png":  {},
	"image/gif":  {},
	"image/webp": {},
}

var (
	ErrUnsupportedType = apperror.Validation("only jpeg, png, gif and webp images are allowed")
	ErrTooLarge        = apperror.Validation("file is too large")
	ErrEmptyFile       = apperror.Validation("file must not be empty")
)

// ImageStorage хранит загруженные изображения на диске под rootPath.
type ImageStorage struct {
	rootPath       string
	maxUploadBytes int64
}

func NewImageStorage(rootPath string, maxUploadMB int64) (*ImageStorage, error) {
	if err := os.MkdirAll(rootPath, 0o755); err != nil {
		return nil, fmt.Errorf("storage: create dir %s: %w", rootPath, err)
	}

	return &ImageStorage{
		rootPath:       rootPath,
		maxUploadBytes: maxUploadMB * 1024 * 1024,
	}, nil
}

func (s *ImageStorage) Root() string {
	return s.rootPath
}

// Save проверяет реальный тип по магическим байтам и сохраняет файл в dir
// под случайным именем. Возвращает путь относительно rootPath со слешами.
func (s *ImageStorage) Save(ctx context.Context, dir string, r io.Reader) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	head := make([]byte, sniffLen)
	n, err := io.ReadFull(r, head)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return "", fmt.Errorf("storage: read upload: %w", err)
	}
	if n == 0 {
		return "", ErrEmptyFile
	}
	head = head[:n]

	kind, err := filetype.Match(head)
	if err != nil || kind == filetype.Unknown {
		return "", ErrUnsupportedType
	}
	if _, ok := allowedMimeTypes[kind.MIME.Value]; !ok {
		return "", ErrUnsupportedType
	}

	targetDir := filepath.Join(s.rootPath, filepath.Clean("/" + dir))
	if err := os.MkdirAll(targetDir, 0o755); err != nil {
		return "", fmt.Errorf("storage: create dir: %w", err)
	}

	fileName := uuid.NewString() + "." + kind.Extension
	targetPath := filepath.Join(targetDir, fileName)
	tempPath := targetPath + ".tmp"

	f, err := os.Create(tempPath)
	if err != nil {
		return "", fmt.Errorf("storage: create file: %w", err)
	}
	defer f.Close()

	limited := io.LimitedReader{R: io.MultiReader(bytes.NewReader(head), r), N: s.maxUploadBytes + 1}
	written, err := io.Copy(f, &limited)
	if err != nil {
		_ = os.Remove(tempPath)
		return "", fmt.Errorf("storage: write file: %w", err)
	}
	if written > s.maxUploadBytes {
		_ = os.Remove(tempPath)
		return "", ErrTooLarge
	}

	if err := f.Close(); err != nil {
		_ = os.Remove(tempPath)
		return "", fmt.Errorf("storage: close file: %w", err)
	}
	if err := os.Rename(tempPath, targetPath); err != nil {
		return "", fmt.Errorf("storage: rename file: %w", err)
	}

	rel, err := filepath.Rel(s.rootPath, targetPath)
	if err != nil {
		return "", fmt.Errorf("storage: relative path: %w", err)
	}
	return filepath.ToSlash(rel), nil
}

// Delete удаляет файл; отсутствие файла не ошибка.
func (s *ImageStorage) Delete(ctx context.Context, relativePath string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if relativePath == "" {
		return nil
	}

	target := filepath.Join(s.rootPath, filepath.Clean("/"+relativePath))
	if err := os.Remove(target); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("storage: delete file: %w", err)
	}
	return nil
}
