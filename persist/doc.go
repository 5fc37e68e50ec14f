// Package persist snapshots toolkit values to binary files and restores them.
//
// What:
//
//   - Save(path, v) — gob-encode any value to a freshly created file.
//   - Load(path) — decode the file back; the concrete type round-trips.
//   - Register(v) — per-type registration hook for composite values.
//
// Why gob:
//
//   - The format only has to round-trip Go values back into the same process
//     family; there is no cross-language portability requirement, so a
//     Go-native stream beats a lossy generic one (CBOR/JSON decode composite
//     values into generic maps and lose the concrete type).
//   - gob's explicit Register step is the reflection-free, per-type
//     registration contract this toolkit wants: callers declare up front
//     which composite types may cross the boundary.
//
// Scalars, strings and byte slices work without registration; any other
// composite type stored through the any envelope (slices, maps, structs)
// must be Registered once before Save and once before Load (typically both
// from the same init function).
//
// The file handle is scoped to the call and closed on every exit path; a
// failed encode removes the partial file instead of leaving torn bytes.
//
// Errors:
//
//   - ErrDecode wraps any malformed-stream or type-mismatch failure on Load.
//   - I/O failures keep their os error chain, so errors.Is(err,
//     fs.ErrNotExist) works on a missing file.
package persist
