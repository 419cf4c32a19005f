// Package export writes sample sets for the tools downstream of sampling:
// spreadsheets (CSV) and map viewers (GeoJSON).
package export

import (
	"compress/gzip"
	"io"
	"os"
	"path/filepath"
	"strings"
	"syscall"
)

type FileConfig struct {
	CompressionLevel int
	Flag             int
	FilePerm         os.FileMode
	DirPerm          os.FileMode
}

func DefaultFileConfig() *FileConfig {
	return &FileConfig{
		CompressionLevel: gzip.BestCompression,
		Flag:             os.O_WRONLY | os.O_TRUNC | os.O_CREATE,
		FilePerm:         0660,
		DirPerm:          0770,
	}
}

// File is an output file. Paths ending in .gz are gzip compressed.
// An exclusive lock is held on the file from the first write until Close.
type File struct {
	f      *os.File
	gzw    *gzip.Writer
	locked bool
	closed bool
}

// Create creates (or truncates) the file at path, and any missing parent directories.
func Create(path string, config *FileConfig) (*File, error) {
	if config == nil {
		config = DefaultFileConfig()
	}
	if err := os.MkdirAll(filepath.Dir(path), config.DirPerm); err != nil {
		return nil, err
	}
	fi, err := os.OpenFile(path, config.Flag, config.FilePerm)
	if err != nil {
		return nil, err
	}
	out := &File{f: fi}
	if IsGzip(path) {
		gzw, err := gzip.NewWriterLevel(fi, config.CompressionLevel)
		if err != nil {
			_ = fi.Close()
			return nil, err
		}
		out.gzw = gzw
	}
	return out, nil
}

// IsGzip reports whether path names a gzip file.
func IsGzip(path string) bool {
	return strings.HasSuffix(strings.ToLower(path), ".gz")
}

func (o *File) Write(p []byte) (int, error) {
	o.lock()
	if o.gzw != nil {
		return o.gzw.Write(p)
	}
	return o.f.Write(p)
}

// lock locks the file for exclusive access.
// The lock will be invalidated if and when the file is closed.
func (o *File) lock() {
	if o.locked || o.closed || o.f == nil {
		return
	}
	_ = syscall.Flock(int(o.f.Fd()), syscall.LOCK_EX)
	o.locked = true
}

func (o *File) unlock() {
	if !o.locked || o.closed || o.f == nil {
		return
	}
	_ = syscall.Flock(int(o.f.Fd()), syscall.LOCK_UN)
	o.locked = false
}

// Close flushes any compression, syncs, and closes the file. It is safe to call twice.
func (o *File) Close() error {
	if o.closed {
		return nil
	}
	defer func() {
		o.closed = true
	}()
	var err error
	if o.gzw != nil {
		err = o.gzw.Close()
	}
	if err == nil {
		err = o.f.Sync()
	}
	o.unlock()
	if cerr := o.f.Close(); err == nil {
		err = cerr
	}
	return err
}

func (o *File) Path() string {
	return o.f.Name()
}

// Open opens a file written by Create, decompressing .gz files.
func Open(path string) (io.ReadCloser, error) {
	fi, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	if !IsGzip(path) {
		return fi, nil
	}
	gzr, err := gzip.NewReader(fi)
	if err != nil {
		_ = fi.Close()
		return nil, err
	}
	return &gzReadCloser{Reader: gzr, f: fi}, nil
}

type gzReadCloser struct {
	*gzip.Reader
	f *os.File
}

func (g *gzReadCloser) Close() error {
	if err := g.Reader.Close(); err != nil {
		_ = g.f.Close()
		return err
	}
	return g.f.Close()
}
