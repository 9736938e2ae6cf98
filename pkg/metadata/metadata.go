// Package metadata loads collection metadata files.
//
// Metadata files are plain JSON documents produced by galaxy-style servers.
// The loader reads a file, decodes it, and hands the structured value back to
// the caller; it performs no retries and no local recovery.
package metadata

import (
	"bytes"
	"encoding/json"
	"io"
	"os"

	"github.com/iancoleman/orderedmap"

	"github.com/ajxudir/galaxycheck/pkg/errors"
	"github.com/ajxudir/galaxycheck/pkg/verbose"
)

// ParseMetadata reads the file at path and decodes its contents as JSON.
//
// It performs the following operations:
//   - Step 1: Opens the file for reading (released on all exit paths)
//   - Step 2: Reads the full contents
//   - Step 3: Decodes the contents as JSON
//
// JSON objects are decoded into *orderedmap.OrderedMap so key order survives
// re-encoding; arrays and scalars decode to their natural Go values.
//
// Parameters:
//   - path: Filesystem path of the metadata file
//
// Returns:
//   - interface{}: The decoded JSON value (*orderedmap.OrderedMap for
//     objects, []interface{} for arrays, scalars otherwise)
//   - error: *errors.NotFoundError if the path cannot be read,
//     *errors.MalformedDataError if the contents are not valid JSON
func ParseMetadata(path string) (interface{}, error) {
	fd, err := os.Open(path)
	if err != nil {
		return nil, &errors.NotFoundError{Path: path, Err: err}
	}
	defer func() { _ = fd.Close() }()

	data, err := io.ReadAll(fd)
	if err != nil {
		return nil, &errors.NotFoundError{Path: path, Err: err}
	}

	verbose.Infof("Metadata: read %d bytes from %s", len(data), path)

	return decode(path, data)
}

// decode unmarshals metadata bytes, preserving object key order.
//
// Parameters:
//   - path: Source path, used in error messages only
//   - data: Raw JSON bytes
//
// Returns:
//   - interface{}: The decoded value
//   - error: *errors.MalformedDataError if the bytes are not valid JSON
func decode(path string, data []byte) (interface{}, error) {
	trimmed := bytes.TrimLeft(data, " \t\r\n")
	if len(trimmed) > 0 && trimmed[0] == '{' {
		ordered := orderedmap.New()
		if err := json.Unmarshal(data, ordered); err != nil {
			return nil, &errors.MalformedDataError{Path: path, Err: err}
		}
		return ordered, nil
	}

	var value interface{}
	if err := json.Unmarshal(data, &value); err != nil {
		return nil, &errors.MalformedDataError{Path: path, Err: err}
	}
	return value, nil
}
