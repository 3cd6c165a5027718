// Package client is the Go counterpart of the browser-side tracking code: a
// stable session identifier, a fire-and-forget visit recorder, and a polling
// stats fetcher.
package client

import (
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/google/uuid"
)

// sessionFileName is the fixed key the identifier is stored under, the
// equivalent of the browser's local-storage key.
const sessionFileName = "visitor_session_id"

// SessionProvider yields the stable per-installation session identifier used
// to deduplicate visitors. Implementations always return a usable string.
type SessionProvider interface {
	SessionID() string
}

// FileSessionProvider persists one random UUID in a file and returns it on
// every call. The identifier has no expiry; it survives until the file is
// removed, the same lifetime local storage gives the browser client.
//
// SessionID never fails: if the file cannot be read or written, it falls back
// to a process-lifetime identifier.
type FileSessionProvider struct {
	dir string

	mu     sync.Mutex
	cached string
}

// NewFileSessionProvider creates a provider storing the identifier under dir.
// An empty dir defaults to a "flashdeck" folder in the user config directory.
func NewFileSessionProvider(dir string) *FileSessionProvider {
	if dir == "" {
		if base, err := os.UserConfigDir(); err == nil {
			dir = filepath.Join(base, "flashdeck")
		} else {
			dir = "."
		}
	}
	return &FileSessionProvider{dir: dir}
}

// SessionID returns the stored identifier, generating and persisting a new
// one on first use.
func (p *FileSessionProvider) SessionID() string {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.cached != "" {
		return p.cached
	}

	path := filepath.Join(p.dir, sessionFileName)
	if b, err := os.ReadFile(path); err == nil {
		if id := strings.TrimSpace(string(b)); id != "" {
			p.cached = id
			return id
		}
	}

	id := uuid.NewString()
	if err := os.MkdirAll(p.dir, 0o755); err == nil {
		_ = os.WriteFile(path, []byte(id+"\n"), 0o600)
	}
	p.cached = id
	return id
}

// StaticSessionProvider returns a fixed identifier. Useful in tests.
type StaticSessionProvider string

func (p StaticSessionProvider) SessionID() string {
	return string(p)
}
