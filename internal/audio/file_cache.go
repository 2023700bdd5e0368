package audio

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
)

// FileCache keeps downloaded pronunciations on disk, one file per term and accent.
type FileCache struct {
	rootDir string
}

func NewFileCache(cacheDirectory string) *FileCache {
	return &FileCache{
		rootDir: cacheDirectory,
	}
}

func (f *FileCache) filePath(term string, accent Accent) string {
	return filepath.Join(f.rootDir, fmt.Sprintf("%s_%s.mp3", url.PathEscape(term), accent))
}

// cache returns the path of the cached file, calling fetch and storing its result on a miss.
func (cache *FileCache) cache(term string, accent Accent, fetch func() ([]byte, error)) (string, error) {
	localFilePath := cache.filePath(term, accent)
	if info, err := os.Stat(localFilePath); err == nil && info.Size() > 0 {
		return localFilePath, nil
	}

	contents, err := fetch()
	if err != nil {
		return "", fmt.Errorf("fetch > %w", err)
	}

	if err := os.MkdirAll(cache.rootDir, 0755); err != nil {
		return "", fmt.Errorf("os.MkdirAll > %w", err)
	}
	if err := writeFileAtomically(cache.rootDir, localFilePath, contents); err != nil {
		return "", err
	}
	return localFilePath, nil
}

// writeFileAtomically writes contents to a temporary file in dir and renames it to path,
// so readers never see a partially written file.
func writeFileAtomically(dir string, path string, contents []byte) (err error) {
	file, err := os.CreateTemp(dir, "."+filepath.Base(path)+"-*.tmp")
	if err != nil {
		return fmt.Errorf("os.CreateTemp > %w", err)
	}
	defer func() {
		if err != nil {
			_ = os.Remove(file.Name())
		}
	}()

	if _, err := file.Write(contents); err != nil {
		_ = file.Close()
		return fmt.Errorf("file.Write > %w", err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("file.Close > %w", err)
	}
	if err := os.Rename(file.Name(), path); err != nil {
		return fmt.Errorf("os.Rename > %w", err)
	}
	return nil
}
