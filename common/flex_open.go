// Package common contains small helpers shared by the biogl tools:
// compressed-file opening, reverse complement, sliding windows and codon
// translation.
package common

import (
	"io"
	"os"

	"github.com/klauspost/pgzip"
)

// multiReadCloser closes every wrapped closer once.
type multiReadCloser struct {
	io.Reader
	closers []io.Closer
}

func (m *multiReadCloser) Close() error {
	var err error
	for _, c := range m.closers {
		if cerr := c.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	return err
}

// FlexOpen opens a plain or gzip-compressed file for reading, deciding by
// the leading magic bytes rather than the file extension. "-" reads from
// stdin.
func FlexOpen(path string) (io.ReadCloser, error) {
	if path == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	var sig [2]byte
	n, _ := fh.Read(sig[:])
	if _, err := fh.Seek(0, io.SeekStart); err != nil {
		fh.Close()
		return nil, err
	}
	if n == 2 && sig[0] == 0x1f && sig[1] == 0x8b {
		gr, err := pgzip.NewReader(fh)
		if err != nil {
			fh.Close()
			return nil, err
		}
		return &multiReadCloser{Reader: gr, closers: []io.Closer{gr, fh}}, nil
	}
	return fh, nil
}
