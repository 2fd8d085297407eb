package logging

import (
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"
)

// LogFileName is the active log file inside FileOptions.Dir.
const LogFileName = "themesync.log"

const (
	logDirPerm  = 0o755
	logFilePerm = 0o600
	backupStamp = "20060102-150405.000"
)

// FileOptions configures rotated file output.
type FileOptions struct {
	Dir        string
	MaxSizeMB  int
	MaxBackups int // 0 keeps every backup
	MaxAgeDays int // 0 keeps backups forever
	Compress   bool
}

// Rotator is an io.WriteCloser that rotates LogFileName once it would
// grow past MaxSizeMB. Backups are named themesync.log.<timestamp>[.gz].
type Rotator struct {
	opts FileOptions
	now  func() time.Time

	mu   sync.Mutex
	file *os.File
	size int64
}

// NewRotator opens (or creates) the log file in opts.Dir.
func NewRotator(opts FileOptions) (*Rotator, error) {
	if opts.Dir == "" {
		return nil, fmt.Errorf("log directory is empty")
	}
	if opts.MaxSizeMB < 1 {
		opts.MaxSizeMB = 1
	}
	if err := os.MkdirAll(opts.Dir, logDirPerm); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}
	r := &Rotator{opts: opts, now: time.Now}
	if err := r.open(); err != nil {
		return nil, err
	}
	return r, nil
}

// Path returns the active log file path.
func (r *Rotator) Path() string {
	return filepath.Join(r.opts.Dir, LogFileName)
}

func (r *Rotator) maxBytes() int64 {
	return int64(r.opts.MaxSizeMB) << 20
}

func (r *Rotator) open() error {
	f, err := os.OpenFile(r.Path(), os.O_CREATE|os.O_WRONLY|os.O_APPEND, logFilePerm)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	info, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return fmt.Errorf("stat log file: %w", err)
	}
	r.file = f
	r.size = info.Size()
	return nil
}

func (r *Rotator) Write(p []byte) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.file == nil {
		if err := r.open(); err != nil {
			return 0, err
		}
	}
	if r.size > 0 && r.size+int64(len(p)) > r.maxBytes() {
		if err := r.rotate(); err != nil {
			return 0, err
		}
	}
	n, err := r.file.Write(p)
	r.size += int64(n)
	return n, err
}

// rotate moves the active file aside and reopens. Must hold mu.
func (r *Rotator) rotate() error {
	if err := r.file.Close(); err != nil {
		return fmt.Errorf("close log file: %w", err)
	}
	r.file = nil

	backup := r.Path() + "." + r.now().Format(backupStamp)
	if err := os.Rename(r.Path(), backup); err != nil {
		return fmt.Errorf("rotate log file: %w", err)
	}
	if r.opts.Compress {
		if err := gzipFile(backup); err != nil {
			fmt.Fprintf(os.Stderr, "themesync: compress %s: %v\n", backup, err)
		}
	}
	r.prune()
	return r.open()
}

// prune removes backups past MaxAgeDays, then the oldest past MaxBackups.
func (r *Rotator) prune() {
	entries, err := os.ReadDir(r.opts.Dir)
	if err != nil {
		return
	}

	type backup struct {
		path string
		mod  time.Time
	}
	var backups []backup
	cutoff := r.now().Add(-time.Duration(r.opts.MaxAgeDays) * 24 * time.Hour)
	for _, e := range entries {
		if e.IsDir() || !strings.HasPrefix(e.Name(), LogFileName+".") {
			continue
		}
		info, err := e.Info()
		if err != nil {
			continue
		}
		path := filepath.Join(r.opts.Dir, e.Name())
		if r.opts.MaxAgeDays > 0 && info.ModTime().Before(cutoff) {
			_ = os.Remove(path)
			continue
		}
		backups = append(backups, backup{path: path, mod: info.ModTime()})
	}

	if r.opts.MaxBackups <= 0 || len(backups) <= r.opts.MaxBackups {
		return
	}
	sort.Slice(backups, func(i, j int) bool { return backups[i].mod.Before(backups[j].mod) })
	for _, b := range backups[:len(backups)-r.opts.MaxBackups] {
		_ = os.Remove(b.path)
	}
}

// Close closes the active file.
func (r *Rotator) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.file == nil {
		return nil
	}
	err := r.file.Close()
	r.file = nil
	return err
}

// gzipFile replaces path with path.gz.
func gzipFile(path string) (err error) {
	in, err := os.Open(path)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(path+".gz", os.O_CREATE|os.O_WRONLY|os.O_TRUNC, logFilePerm)
	if err != nil {
		return err
	}
	gz := gzip.NewWriter(out)
	if _, err = io.Copy(gz, in); err != nil {
		_ = gz.Close()
		_ = out.Close()
		return err
	}
	if err = gz.Close(); err != nil {
		_ = out.Close()
		return err
	}
	if err = out.Close(); err != nil {
		return err
	}
	return os.Remove(path)
}
