package cartridge

import (
	"bytes"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/bodgit/sevenzip"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zip"
	"github.com/klauspost/compress/zstd"
	"github.com/thelolagemann/sm83/internal/fault"
	"github.com/ulikunitz/xz"
)

// readFile reads the whole of the given file into memory, decompressing
// it if the extension names a known archive format.
func readFile(filename string) ([]byte, error) {
	f, err := os.Open(filename)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fault.Wrap(fault.FileNotFound, err, "%s", filename)
		}
		return nil, fault.Wrap(fault.FileReadError, err, "opening %s", filename)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, fault.Wrap(fault.FileReadError, err, "stat %s", filename)
	}
	if info.IsDir() {
		return nil, fault.New(fault.FileReadError, "%s is a directory", filename)
	}

	data := make([]byte, info.Size())
	if _, err := io.ReadFull(f, data); err != nil {
		return nil, fault.Wrap(fault.FileReadError, err, "reading %s", filename)
	}

	data, err = decompress(filepath.Ext(filename), data)
	if err != nil {
		return nil, fault.Wrap(fault.FileReadError, err, "decompressing %s", filename)
	}
	return data, nil
}

// decompress decodes data according to the archive format named by ext.
// Unknown extensions (including .gb, .gbc and .bin) are returned as is.
func decompress(ext string, data []byte) ([]byte, error) {
	var decoder io.Reader
	switch strings.ToLower(ext) {
	case ".gz":
		r, err := gzip.NewReader(bytes.NewReader(data))
		if err != nil {
			return nil, err
		}
		defer r.Close()
		decoder = r
	case ".xz":
		r, err := xz.NewReader(bytes.NewReader(data))
		if err != nil {
			return nil, err
		}
		decoder = r
	case ".zst":
		r, err := zstd.NewReader(bytes.NewReader(data))
		if err != nil {
			return nil, err
		}
		defer r.Close()
		decoder = r
	case ".zip":
		r, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
		if err != nil {
			return nil, err
		}
		for _, file := range r.File {
			if file.FileInfo().IsDir() {
				continue
			}
			rc, err := file.Open()
			if err != nil {
				return nil, err
			}
			defer rc.Close()
			decoder = rc
			break
		}
	case ".7z":
		r, err := sevenzip.NewReader(bytes.NewReader(data), int64(len(data)))
		if err != nil {
			return nil, err
		}
		for _, file := range r.File {
			if file.FileInfo().IsDir() {
				continue
			}
			rc, err := file.Open()
			if err != nil {
				return nil, err
			}
			defer rc.Close()
			decoder = rc
			break
		}
	default:
		return data, nil
	}

	if decoder == nil {
		return nil, errors.New("archive contains no files")
	}
	return io.ReadAll(decoder)
}
