package repositories

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"relay/internal/utils"
)

const (
	qrFilePrefix = "qrcode-"
	qrFileExt    = ".png"
)

// QRFile describes one stored QR image.
type QRFile struct {
	Name    string
	Size    int64
	ModTime time.Time
}

// QRCodeRepository is a bounded store of rendered QR images.
type QRCodeRepository interface {
	// Put stores data under a fresh random name and applies the retention cap.
	Put(ctx context.Context, data []byte) (string, error)
	// List returns stored files, most recently modified first.
	List(ctx context.Context) ([]QRFile, error)
	// EvictBeyond deletes every file past the n most recent and reports how
	// many were removed.
	EvictBeyond(ctx context.Context, n int) (int, error)
	Dir() string
}

type fileQRCodeRepository struct {
	dir      string
	maxFiles int

	// mu serializes write-then-evict so concurrent requests never observe
	// or delete each other's half-applied retention.
	mu sync.Mutex
}

// NewQRCodeRepository opens (creating if needed) a directory-backed QR store
// retaining at most maxFiles images.
func NewQRCodeRepository(dir string, maxFiles int) (QRCodeRepository, error) {
	if maxFiles < 1 {
		return nil, fmt.Errorf("qr store: max files must be positive, got %d", maxFiles)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("qr store: create %s: %w", dir, err)
	}
	return &fileQRCodeRepository{dir: dir, maxFiles: maxFiles}, nil
}

func (r *fileQRCodeRepository) Dir() string {
	return r.dir
}

func (r *fileQRCodeRepository) Put(ctx context.Context, data []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	name := qrFilePrefix + utils.MustGenerateUniqueID(8) + qrFileExt

	// Write under a temp name and rename so readers never see a partial image.
	tmp, err := os.CreateTemp(r.dir, ".tmp-"+qrFilePrefix+"*")
	if err != nil {
		return "", fmt.Errorf("qr store: create temp file: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return "", fmt.Errorf("qr store: write %s: %w", name, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return "", fmt.Errorf("qr store: close %s: %w", name, err)
	}
	if err := os.Rename(tmp.Name(), filepath.Join(r.dir, name)); err != nil {
		os.Remove(tmp.Name())
		return "", fmt.Errorf("qr store: rename %s: %w", name, err)
	}

	if _, err := r.evictLocked(r.maxFiles, name); err != nil {
		log.Printf("qr store: retention after writing %s failed: %v", name, err)
	}

	return name, nil
}

func (r *fileQRCodeRepository) List(ctx context.Context) ([]QRFile, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	return r.listLocked("")
}

func (r *fileQRCodeRepository) EvictBeyond(ctx context.Context, n int) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if n < 0 {
		n = 0
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	return r.evictLocked(n, "")
}

// listLocked returns regular files newest first. A pinned name always sorts
// first so the file just written can't lose a modification-time tie.
func (r *fileQRCodeRepository) listLocked(pinned string) ([]QRFile, error) {
	entries, err := os.ReadDir(r.dir)
	if err != nil {
		return nil, fmt.Errorf("qr store: read %s: %w", r.dir, err)
	}

	files := make([]QRFile, 0, len(entries))
	for _, entry := range entries {
		if !entry.Type().IsRegular() || strings.HasPrefix(entry.Name(), ".tmp-") {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			// Removed between ReadDir and Info.
			continue
		}
		files = append(files, QRFile{
			Name:    entry.Name(),
			Size:    info.Size(),
			ModTime: info.ModTime(),
		})
	}

	sort.Slice(files, func(i, j int) bool {
		if files[i].Name == pinned {
			return files[j].Name != pinned
		}
		if files[j].Name == pinned {
			return false
		}
		if !files[i].ModTime.Equal(files[j].ModTime) {
			return files[i].ModTime.After(files[j].ModTime)
		}
		return files[i].Name > files[j].Name
	})

	return files, nil
}

func (r *fileQRCodeRepository) evictLocked(keep int, pinned string) (int, error) {
	files, err := r.listLocked(pinned)
	if err != nil {
		return 0, err
	}
	if len(files) <= keep {
		return 0, nil
	}

	removed := 0
	for _, f := range files[keep:] {
		if err := os.Remove(filepath.Join(r.dir, f.Name)); err != nil && !os.IsNotExist(err) {
			log.Printf("qr store: failed to delete %s: %v", f.Name, err)
			continue
		}
		removed++
	}
	return removed, nil
}
