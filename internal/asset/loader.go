package asset

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path"
	"strings"
	"sync"

	"github.com/BurntSushi/toml"
)

//go:embed defaults/spritesheet.toml defaults/spritesheet.txt
var defaultFS embed.FS

// DefaultSheet is the description file name of the embedded sprite sheet.
const DefaultSheet = "spritesheet.toml"

// Handle is an opaque reference to a sprite sheet held by a Storage.
// The zero Handle is never valid.
type Handle int

// Storage owns loaded sprite sheets.
type Storage struct {
	mu     sync.RWMutex
	sheets []*SpriteSheet
}

// NewStorage creates an empty storage.
func NewStorage() *Storage {
	return &Storage{}
}

func (s *Storage) insert(sheet *SpriteSheet) Handle {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sheets = append(s.sheets, sheet)
	return Handle(len(s.sheets))
}

// Get resolves a handle.
func (s *Storage) Get(h Handle) (*SpriteSheet, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if h <= 0 || int(h) > len(s.sheets) {
		return nil, false
	}
	return s.sheets[h-1], true
}

// Loader reads sprite sheets from a file system and caches them by name.
type Loader struct {
	fsys    fs.FS
	storage *Storage

	mu     sync.Mutex
	loaded map[string]Handle
}

// NewLoader creates a loader over fsys. A nil fsys uses the embedded sheet.
func NewLoader(fsys fs.FS, storage *Storage) *Loader {
	if fsys == nil {
		sub, err := fs.Sub(defaultFS, "defaults")
		if err != nil {
			panic(fmt.Sprintf("asset: embedded defaults missing: %v", err))
		}
		fsys = sub
	}
	return &Loader{
		fsys:    fsys,
		storage: storage,
		loaded:  make(map[string]Handle),
	}
}

// NewDirLoader creates a loader reading from dir, or from the embedded
// sheet when dir is empty.
func NewDirLoader(dir string, storage *Storage) (*Loader, error) {
	if dir == "" {
		return NewLoader(nil, storage), nil
	}
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("asset: cannot open assets directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("asset: %s is not a directory", dir)
	}
	return NewLoader(os.DirFS(dir), storage), nil
}

// Storage returns the storage loaded sheets are placed in.
func (l *Loader) Storage() *Storage {
	return l.storage
}

// LoadSpriteSheet loads the description file name and the texture it
// references (relative to the description). Loading the same name twice
// returns the same handle.
func (l *Loader) LoadSpriteSheet(name string) (Handle, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if h, ok := l.loaded[name]; ok {
		return h, nil
	}

	data, err := fs.ReadFile(l.fsys, name)
	if err != nil {
		return 0, fmt.Errorf("asset: failed to read sprite sheet %s: %w", name, err)
	}

	var desc SheetDescription
	if _, err := toml.Decode(string(data), &desc); err != nil {
		return 0, fmt.Errorf("asset: failed to parse sprite sheet %s: %w", name, err)
	}
	if desc.Texture == "" {
		return 0, fmt.Errorf("asset: sprite sheet %s names no texture", name)
	}

	texturePath := path.Join(path.Dir(name), desc.Texture)
	texture, err := fs.ReadFile(l.fsys, texturePath)
	if err != nil {
		return 0, fmt.Errorf("asset: failed to read texture %s: %w", texturePath, err)
	}

	sheet, err := newSpriteSheet(desc, textureLines(string(texture)))
	if err != nil {
		return 0, fmt.Errorf("asset: sprite sheet %s: %w", name, err)
	}

	h := l.storage.insert(sheet)
	l.loaded[name] = h
	return h, nil
}

// textureLines splits a texture file into rows, dropping the trailing
// newline and carriage returns.
func textureLines(s string) []string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.TrimSuffix(s, "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}
