package share

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/renato0307/shade/internal/logging"
)

// Link holds the share token of the latest theme. It is fed by the theme
// store after every change and can mirror the token to a file.
type Link struct {
	mu     sync.RWMutex
	token  string
	path   string
	logger *logging.Logger
}

// NewLink creates a link. An empty path keeps the token in memory only.
func NewLink(path string, logger *logging.Logger) *Link {
	if logger == nil {
		logger = logging.Noop()
	}
	return &Link{path: path, logger: logger.With("component", "share-link")}
}

// Update records token and writes it to the link file, if any. Write
// failures are logged; the in-memory token is always updated.
func (l *Link) Update(token string) {
	l.mu.Lock()
	l.token = token
	l.mu.Unlock()

	if l.path == "" {
		return
	}
	if err := writeFileAtomic(l.path, token+"\n"); err != nil {
		l.logger.Warn("write share link", "path", l.path, "error", err)
	}
}

// Token returns the latest token, or "" before the first Update.
func (l *Link) Token() string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.token
}

func writeFileAtomic(path, content string) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".shade-link-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.WriteString(content); err != nil {
		tmp.Close()
		return fmt.Errorf("write %s: %w", tmp.Name(), err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close %s: %w", tmp.Name(), err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("rename to %s: %w", path, err)
	}
	return nil
}
