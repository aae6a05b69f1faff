package bpefile

import (
	"bytes"
	"encoding/binary"
	"path/filepath"
	"reflect"
	"testing"
)

func testFile() *File {
	return &File{
		Version:     FormatVersion,
		Pretokenize: true,
		Merges: [][2]uint32{
			{97, 97},
			{97, 98},
			{256, 100},
		},
	}
}

func TestWriteReadRoundTrip(t *testing.T) {
	for _, pretokenize := range []bool{true, false} {
		f := testFile()
		f.Pretokenize = pretokenize

		var buf bytes.Buffer
		if err := Write(&buf, f); err != nil {
			t.Fatalf("Write failed: %v", err)
		}

		got, err := Read(&buf)
		if err != nil {
			t.Fatalf("Read failed: %v", err)
		}
		if !reflect.DeepEqual(got, f) {
			t.Errorf("round trip = %+v, expected %+v", got, f)
		}
	}
}

func TestWriteReadEmpty(t *testing.T) {
	f := &File{Version: FormatVersion, Pretokenize: true, Merges: [][2]uint32{}}

	var buf bytes.Buffer
	if err := Write(&buf, f); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	got, err := Read(&buf)
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if len(got.Merges) != 0 {
		t.Errorf("expected no merges, got %v", got.Merges)
	}
}

func TestSaveParse(t *testing.T) {
	path := filepath.Join(t.TempDir(), "models", "test.bpe")

	f := testFile()
	if err := Save(path, f); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	got, err := Parse(path)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if !reflect.DeepEqual(got, f) {
		t.Errorf("Parse = %+v, expected %+v", got, f)
	}
}

func TestParseMissingFile(t *testing.T) {
	if _, err := Parse(filepath.Join(t.TempDir(), "nope.bpe")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestReadInvalidMagic(t *testing.T) {
	var buf bytes.Buffer
	binary.Write(&buf, binary.LittleEndian, uint32(0x46554747)) // "GGUF"
	binary.Write(&buf, binary.LittleEndian, uint32(FormatVersion))
	binary.Write(&buf, binary.LittleEndian, uint32(0))
	binary.Write(&buf, binary.LittleEndian, uint32(0))

	if _, err := Read(&buf); err == nil {
		t.Error("expected error for invalid magic")
	}
}

func TestReadUnsupportedVersion(t *testing.T) {
	var buf bytes.Buffer
	binary.Write(&buf, binary.LittleEndian, uint32(Magic))
	binary.Write(&buf, binary.LittleEndian, uint32(99))
	binary.Write(&buf, binary.LittleEndian, uint32(0))
	binary.Write(&buf, binary.LittleEndian, uint32(0))

	if _, err := Read(&buf); err == nil {
		t.Error("expected error for unsupported version")
	}
}

func TestReadTruncated(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, testFile()); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	truncated := buf.Bytes()[:buf.Len()-4]

	if _, err := Read(bytes.NewReader(truncated)); err == nil {
		t.Error("expected error for truncated file")
	}

	if _, err := Read(bytes.NewReader(truncated[:8])); err == nil {
		t.Error("expected error for truncated header")
	}
}
