// Package codec stores array snapshots as a CBOR sequence: a file is zero
// or more Snapshot items written back to back, so appending never rewrites
// earlier entries.
package codec

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fxamacker/cbor/v2"
)

// Snapshot is one stored array. Data holds the elements in column-major
// order using the native layout of Type.
type Snapshot struct {
	Key  string   `cbor:"1,keyasint"`
	Type int32    `cbor:"2,keyasint"`
	Dims [4]int64 `cbor:"3,keyasint"`
	Data []byte   `cbor:"4,keyasint"`
}

var (
	ErrCorrupt  = errors.New("codec: corrupt snapshot file")
	ErrNotFound = errors.New("codec: snapshot not found")
)

var encMode = func() cbor.EncMode {
	em, err := cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic(err)
	}
	return em
}()

// Write appends snaps to w.
func Write(w io.Writer, snaps ...Snapshot) error {
	enc := encMode.NewEncoder(w)
	for i := range snaps {
		if err := enc.Encode(&snaps[i]); err != nil {
			return fmt.Errorf("codec: encode %q: %w", snaps[i].Key, err)
		}
	}
	return nil
}

// Read decodes every snapshot in r.
func Read(r io.Reader) ([]Snapshot, error) {
	dec := cbor.NewDecoder(bufio.NewReader(r))
	var out []Snapshot
	for {
		var s Snapshot
		err := dec.Decode(&s)
		if errors.Is(err, io.EOF) {
			return out, nil
		}
		if err != nil {
			return nil, fmt.Errorf("%w: item %d: %v", ErrCorrupt, len(out), err)
		}
		if s.Dims[0] < 0 || s.Dims[1] < 0 || s.Dims[2] < 0 || s.Dims[3] < 0 {
			return nil, fmt.Errorf("%w: item %d has negative dimensions", ErrCorrupt, len(out))
		}
		out = append(out, s)
	}
}

// Load reads every snapshot in the file at path.
func Load(path string) ([]Snapshot, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Read(f)
}

// Save writes s to path and returns its index in the file. With appendTo
// set, s goes after the existing entries; otherwise the file is replaced.
func Save(path string, s Snapshot, appendTo bool) (int, error) {
	idx := 0
	flags := os.O_CREATE | os.O_WRONLY | os.O_TRUNC
	if appendTo {
		existing, err := Load(path)
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return 0, err
		}
		idx = len(existing)
		flags = os.O_CREATE | os.O_WRONLY | os.O_APPEND
	}
	f, err := os.OpenFile(path, flags, 0o644)
	if err != nil {
		return 0, err
	}
	if err := Write(f, s); err != nil {
		f.Close()
		return 0, err
	}
	if err := f.Close(); err != nil {
		return 0, err
	}
	return idx, nil
}

// IndexOf returns the position of the first snapshot stored under key,
// or -1.
func IndexOf(snaps []Snapshot, key string) int {
	for i := range snaps {
		if snaps[i].Key == key {
			return i
		}
	}
	return -1
}

// Lookup returns the first snapshot stored under key.
func Lookup(snaps []Snapshot, key string) (Snapshot, error) {
	if i := IndexOf(snaps, key); i >= 0 {
		return snaps[i], nil
	}
	return Snapshot{}, fmt.Errorf("%w: key %q", ErrNotFound, key)
}
