// Package tableio reads and writes Arrow IPC payloads for the rendering
// pipeline. Both the streaming format and the file format (magic-prefixed)
// are accepted on the read side.
package tableio

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/ipc"
	"github.com/apache/arrow-go/v18/arrow/memory"
)

var fileMagic = []byte("ARROW1")

// Read deserializes every record batch from IPC bytes. Records are
// retained; callers release them when done.
func Read(data []byte) ([]arrow.Record, error) {
	if bytes.HasPrefix(data, fileMagic) {
		return readFileFormat(data)
	}
	return readStreamFormat(data)
}

// ReadFile loads all record batches from an Arrow IPC file on disk.
func ReadFile(path string) ([]arrow.Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return Read(data)
}

func readStreamFormat(data []byte) ([]arrow.Record, error) {
	reader, err := ipc.NewReader(bytes.NewReader(data), ipc.WithAllocator(memory.DefaultAllocator))
	if err != nil {
		return nil, fmt.Errorf("failed to open IPC stream: %w", err)
	}
	defer reader.Release()

	var records []arrow.Record
	for reader.Next() {
		rec := reader.Record()
		rec.Retain()
		records = append(records, rec)
	}
	if err := reader.Err(); err != nil {
		releaseAll(records)
		return nil, fmt.Errorf("failed to read IPC stream: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("no records in IPC data")
	}
	return records, nil
}

func readFileFormat(data []byte) ([]arrow.Record, error) {
	reader, err := ipc.NewFileReader(bytes.NewReader(data), ipc.WithAllocator(memory.DefaultAllocator))
	if err != nil {
		return nil, fmt.Errorf("failed to open IPC file: %w", err)
	}
	defer reader.Close()

	var records []arrow.Record
	for {
		rec, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			releaseAll(records)
			return nil, fmt.Errorf("failed to read record: %w", err)
		}
		rec.Retain()
		records = append(records, rec)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("no records in IPC data")
	}
	return records, nil
}

// Write serializes records to IPC stream bytes, mainly for tests and
// round-trip tooling.
func Write(records []arrow.Record) ([]byte, error) {
	if len(records) == 0 {
		return nil, fmt.Errorf("no records to write")
	}

	var buf bytes.Buffer
	writer := ipc.NewWriter(&buf, ipc.WithSchema(records[0].Schema()), ipc.WithAllocator(memory.DefaultAllocator))
	for _, rec := range records {
		if err := writer.Write(rec); err != nil {
			writer.Close()
			return nil, fmt.Errorf("failed to write record: %w", err)
		}
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("failed to close writer: %w", err)
	}
	return buf.Bytes(), nil
}

func releaseAll(records []arrow.Record) {
	for _, rec := range records {
		rec.Release()
	}
}
