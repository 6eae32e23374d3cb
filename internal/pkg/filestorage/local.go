package filestorage

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/hymavathi2704/thekatha-server/internal/pkg/logger"
)

// LocalStorage saves files under a directory on the local filesystem
type LocalStorage struct {
	basePath string
	baseURL  string // prepended to returned paths when set
}

// NewLocalStorage creates a LocalStorage rooted at basePath, creating the
// directory if needed
func NewLocalStorage(basePath, baseURL string) (*LocalStorage, error) {
	if err := os.MkdirAll(basePath, os.ModePerm); err != nil {
		return nil, fmt.Errorf("failed to create storage directory %s: %w", basePath, err)
	}
	logger.Info().Str("path", basePath).Msg("Local storage directory ensured")

	return &LocalStorage{
		basePath: basePath,
		baseURL:  baseURL,
	}, nil
}

// SaveFileWithPath stores the upload under subPath with a generated name, so
// concurrent uploads of identically named files never collide
func (ls *LocalStorage) SaveFileWithPath(fileHeader *multipart.FileHeader, subPath string) (string, error) {
	if fileHeader == nil {
		return "", nil
	}

	file, err := fileHeader.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer file.Close()

	dirPath := ls.basePath
	if subPath != "" {
		dirPath = filepath.Join(ls.basePath, subPath)
		if err := os.MkdirAll(dirPath, os.ModePerm); err != nil {
			return "", fmt.Errorf("failed to create subdirectory: %w", err)
		}
	}

	uniqueName := uuid.New().String() + filepath.Ext(fileHeader.Filename)
	dstPath := filepath.Join(dirPath, uniqueName)

	dst, err := os.Create(dstPath)
	if err != nil {
		return "", fmt.Errorf("failed to create destination file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		_ = os.Remove(dstPath)
		return "", fmt.Errorf("failed to save file content: %w", err)
	}

	relPath := path.Join(subPath, uniqueName)
	accessiblePath := relPath
	if ls.baseURL != "" {
		accessiblePath = strings.TrimRight(ls.baseURL, "/") + "/" + relPath
	}

	logger.Info().
		Str("filename", fileHeader.Filename).
		Str("savedAs", relPath).
		Msg("File saved")
	return accessiblePath, nil
}

// DeleteFile removes a stored file given the URL or path returned by
// SaveFileWithPath. Missing files are treated as already deleted.
func (ls *LocalStorage) DeleteFile(filePath string) error {
	if filePath == "" {
		return nil
	}

	relPath := filePath
	if ls.baseURL != "" {
		relPath = strings.TrimPrefix(relPath, strings.TrimRight(ls.baseURL, "/")+"/")
	}
	relPath = strings.TrimLeft(relPath, "/")

	// Refuse anything trying to escape the storage root
	cleaned := filepath.Clean(relPath)
	if cleaned == "." || strings.HasPrefix(cleaned, "..") || filepath.IsAbs(cleaned) {
		return fmt.Errorf("invalid file path: %s", filePath)
	}

	physicalPath := filepath.Join(ls.basePath, cleaned)
	if _, err := os.Stat(physicalPath); os.IsNotExist(err) {
		logger.Warn().Str("path", physicalPath).Msg("File to delete does not exist")
		return nil
	}

	if err := os.Remove(physicalPath); err != nil {
		return fmt.Errorf("failed to delete file: %w", err)
	}

	logger.Info().Str("path", physicalPath).Msg("File deleted")
	return nil
}
