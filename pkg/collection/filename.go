// Package collection parses distribution archive filenames.
//
// Collection archives are named {namespace}-{name}-{version}.tar.gz, where
// namespace and name are word characters only and the version is a full
// semantic version. Hyphen is never a valid namespace or name character, so
// the two leading hyphen-delimited segments are unambiguous even though the
// version segment may itself contain hyphens (pre-release identifiers).
package collection

import (
	"fmt"
	"regexp"

	"github.com/Masterminds/semver/v3"

	"github.com/ajxudir/galaxycheck/pkg/errors"
)

// FilenamePattern is the human-readable form of the archive filename grammar.
const FilenamePattern = "{namespace}-{name}-{version}.tar.gz"

var filenameRe = regexp.MustCompile(
	`^(?P<namespace>\w+)-(?P<name>\w+)-(?P<version>[0-9a-zA-Z.+-]+)\.tar\.gz$`,
)

// Filename is the parsed form of a collection archive filename.
//
// Values are never mutated after construction; callers use them for lookup
// and comparison.
//
// Fields:
//   - Namespace: Publisher/author identifier prefix
//   - Name: Collection name within the namespace
//   - Version: Semantic version string as it appeared in the filename
type Filename struct {
	// Namespace is the publisher identifier prefix of the collection.
	Namespace string

	// Name is the collection name within the namespace.
	Name string

	// Version is the validated semantic version string.
	Version string
}

// String formats the triple back into its archive filename.
//
// Returns:
//   - string: The filename in {namespace}-{name}-{version}.tar.gz form
func (f Filename) String() string {
	return fmt.Sprintf("%s-%s-%s.tar.gz", f.Namespace, f.Name, f.Version)
}

// FQN returns the fully qualified collection name.
//
// Returns:
//   - string: The namespace.name identifier
func (f Filename) FQN() string {
	return f.Namespace + "." + f.Name
}

// ParseCollectionFilename parses and validates a collection archive filename.
//
// It performs the following operations:
//   - Step 1: Matches the filename against the fixed archive grammar
//   - Step 2: Validates the extracted version segment as a strict semantic
//     version (major.minor.patch with optional pre-release/build segments)
//
// Parameters:
//   - filename: The archive filename to parse
//
// Returns:
//   - Filename: The parsed namespace/name/version triple
//   - error: *errors.InvalidFilenameError when the filename does not match
//     the grammar or its version segment is not a valid semantic version
func ParseCollectionFilename(filename string) (Filename, error) {
	match := filenameRe.FindStringSubmatch(filename)
	if match == nil {
		return Filename{}, &errors.InvalidFilenameError{
			Filename: filename,
			Expected: FilenamePattern,
		}
	}

	namespace, name, version := match[1], match[2], match[3]

	if _, err := semver.StrictNewVersion(version); err != nil {
		return Filename{}, &errors.InvalidFilenameError{
			Filename: filename,
			Version:  version,
			Err:      err,
		}
	}

	return Filename{Namespace: namespace, Name: name, Version: version}, nil
}
