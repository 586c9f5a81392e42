package fs

import (
	"os"
	"path/filepath"

	"docsearch/config"
	"docsearch/internal/port"
	"github.com/bmatcuk/doublestar/v4"
)

var (
	_ port.FileWalker = (*Walker)(nil)
	_ port.FileReader = (*Reader)(nil)
)

type Walker struct {
	includes []string
	excludes []string
}

func NewWalker(includes, excludes []string) *Walker {
	if len(includes) == 0 {
		includes = []string{"**/*.txt"}
	}
	return &Walker{
		includes: includes,
		excludes: excludes,
	}
}

// Walk returns the matching files under root in lexical order. A root that
// names a single file is returned as is, without pattern matching. State
// directories holding an index are never walked, whatever the excludes say.
func (w *Walker) Walk(root string) ([]port.FileInfo, error) {
	var files []port.FileInfo

	root, err := filepath.Abs(root)
	if err != nil {
		return nil, err
	}

	info, err := os.Stat(root)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return []port.FileInfo{fileInfo(root, info)}, nil
	}

	err = filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		relPath, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		relPath = filepath.ToSlash(relPath)

		if info.IsDir() {
			if info.Name() == config.StateDirName && relPath != "." {
				return filepath.SkipDir
			}
			if relPath != "." && w.shouldExclude(relPath+"/") {
				return filepath.SkipDir
			}
			return nil
		}

		if w.shouldInclude(relPath) && !w.shouldExclude(relPath) {
			files = append(files, fileInfo(path, info))
		}

		return nil
	})

	return files, err
}

func fileInfo(path string, info os.FileInfo) port.FileInfo {
	return port.FileInfo{
		Path:    path,
		ModTime: info.ModTime().Unix(),
		Size:    info.Size(),
	}
}

func (w *Walker) shouldInclude(path string) bool {
	for _, pattern := range w.includes {
		matched, err := doublestar.Match(pattern, path)
		if err == nil && matched {
			return true
		}
	}
	return false
}

func (w *Walker) shouldExclude(path string) bool {
	for _, pattern := range w.excludes {
		matched, err := doublestar.Match(pattern, path)
		if err == nil && matched {
			return true
		}
	}
	return false
}

// Reader reads documents from the local filesystem.
type Reader struct{}

func (Reader) ReadFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
