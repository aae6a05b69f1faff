package bpefile

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"os"
)

// Parse opens and parses a model file.
func Parse(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open model file: %w", err)
	}
	defer f.Close()

	return Read(bufio.NewReader(f))
}

// Read parses a model from r.
func Read(r io.Reader) (*File, error) {
	var header struct {
		Magic      uint32
		Version    uint32
		Flags      uint32
		MergeCount uint32
	}
	if err := binary.Read(r, binary.LittleEndian, &header); err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}
	if header.Magic != Magic {
		return nil, fmt.Errorf("invalid magic: expected 0x%x (BPEF), got 0x%x", Magic, header.Magic)
	}
	if header.Version != FormatVersion {
		return nil, fmt.Errorf("unsupported model file version: %d (supported: %d)", header.Version, FormatVersion)
	}

	out := &File{
		Version:     header.Version,
		Pretokenize: header.Flags&flagPretokenize != 0,
		Merges:      make([][2]uint32, header.MergeCount),
	}
	for i := range out.Merges {
		if err := binary.Read(r, binary.LittleEndian, &out.Merges[i]); err != nil {
			return nil, fmt.Errorf("failed to read merge %d: %w", i, err)
		}
	}
	return out, nil
}
