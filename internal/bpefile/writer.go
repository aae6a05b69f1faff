package bpefile

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Save writes the model to path, creating parent directories as needed.
func Save(path string, f *File) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create model directory: %w", err)
		}
	}

	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create model file: %w", err)
	}

	w := bufio.NewWriter(out)
	if err := Write(w, f); err != nil {
		out.Close()
		return err
	}
	if err := w.Flush(); err != nil {
		out.Close()
		return fmt.Errorf("failed to flush model file: %w", err)
	}
	return out.Close()
}

// Write serializes the model to w.
func Write(w io.Writer, f *File) error {
	var flags uint32
	if f.Pretokenize {
		flags |= flagPretokenize
	}

	header := struct {
		Magic      uint32
		Version    uint32
		Flags      uint32
		MergeCount uint32
	}{
		Magic:      Magic,
		Version:    FormatVersion,
		Flags:      flags,
		MergeCount: uint32(len(f.Merges)),
	}
	if err := binary.Write(w, binary.LittleEndian, header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for i, pair := range f.Merges {
		if err := binary.Write(w, binary.LittleEndian, pair); err != nil {
			return fmt.Errorf("failed to write merge %d: %w", i, err)
		}
	}
	return nil
}
