package persist

import (
	"encoding/gob"
	"errors"
	"fmt"
	"os"
)

// ErrDecode indicates the byte stream does not match the expected structure
// (truncated file, foreign format, or an unregistered concrete type).
var ErrDecode = errors.New("persist: cannot decode stream")

// Register declares a concrete type as storable through the any envelope.
// Call once per composite type, before the first Save or Load touching it;
// an init function of the calling package is the natural place.
func Register(v any) { gob.Register(v) }

// Save gob-encodes v into a newly created (or truncated) file at path.
// The value travels inside an any envelope, so Load can restore the concrete
// type without the caller naming it. On encode failure the partial file is
// removed.
//
// I/O failures are returned with their os error chain intact.
func Save(path string, v any) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("persist: create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("persist: close %s: %w", path, cerr)
		}
		if err != nil {
			_ = os.Remove(path) // never leave torn bytes behind
		}
	}()

	if err = gob.NewEncoder(f).Encode(&v); err != nil {
		return fmt.Errorf("persist: encode %s: %w", path, err)
	}

	return nil
}

// Load reads the file at path and decodes the value Save stored there,
// restoring its concrete type.
//
// Returns the os error chain when the file is missing or unreadable, and an
// error wrapping ErrDecode when the bytes do not form a valid envelope.
func Load(path string) (any, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("persist: open %s: %w", path, err)
	}
	defer f.Close() // read-only handle; close error carries no data loss

	var v any
	if err = gob.NewDecoder(f).Decode(&v); err != nil {
		return nil, fmt.Errorf("persist: decode %s: %v: %w", path, err, ErrDecode)
	}

	return v, nil
}
