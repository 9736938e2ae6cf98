// Package requirements parses collection requirements manifests.
//
// A requirements manifest is a YAML document of the form:
//
//	collections:
//	  - namespace.collection
//	  - name: namespace.collection
//	    version: ">=1.0.0,<2.0.0"
//	    source: https://galaxy.example.com
//
// Each entry is either a bare collection name or a mapping carrying a name
// plus optional version constraint and source override. The two shapes are
// told apart by YAML node kind, and entries come back in declaration order
// with duplicates preserved; merge and conflict handling belongs to the
// resolution layer downstream.
package requirements

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/ajxudir/galaxycheck/pkg/errors"
	"github.com/ajxudir/galaxycheck/pkg/verbose"
)

// DefaultVersion is the wildcard constraint used when an entry does not pin
// a version.
const DefaultVersion = "*"

// Entry is one requirement from a collections manifest.
//
// Fields:
//   - Name: Fully qualified collection name (namespace.name)
//   - Version: Version constraint, defaulting to "*" when unspecified
//   - Source: Source override URL or server name; empty means no override
type Entry struct {
	// Name is the fully qualified collection name.
	Name string

	// Version is the version constraint for the collection.
	// Defaults to "*" (any version) when the manifest does not specify one.
	Version string

	// Source is the URL or predefined server name to pull the collection
	// from. Empty means no source override.
	Source string
}

// ParseCollectionsRequirementsFile parses a requirements manifest and returns
// all collections defined in it.
//
// It performs the following operations:
//   - Step 1: Returns an empty list immediately for empty input
//   - Step 2: Parses the text as YAML
//   - Step 3: Validates the document is a mapping with a "collections" key
//     holding a sequence
//   - Step 4: Converts each sequence element to an Entry based on its node
//     kind (mapping = structured entry, scalar = bare name)
//
// Parameters:
//   - text: The raw manifest text, may be empty
//
// Returns:
//   - []Entry: Parsed entries in declaration order, duplicates preserved
//   - error: *errors.ValidationError for malformed YAML, a wrong top-level
//     shape, or a structured entry missing its name
func ParseCollectionsRequirementsFile(text string) ([]Entry, error) {
	entries := []Entry{}

	if text == "" {
		return entries, nil
	}

	var root yaml.Node
	if err := yaml.Unmarshal([]byte(text), &root); err != nil {
		return nil, &errors.ValidationError{
			Message: fmt.Sprintf(
				"failed to parse the collection requirements yml: %s with the following error: %v",
				text, err,
			),
			Err: err,
		}
	}

	collections, err := collectionsNode(&root)
	if err != nil {
		return nil, err
	}

	for _, item := range collections.Content {
		entry, err := parseEntry(item)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	verbose.Infof("Requirements: parsed %d collection entries", len(entries))

	return entries, nil
}

// shapeError is the ValidationError for documents that are not a mapping
// with a collections list.
func shapeError() *errors.ValidationError {
	return &errors.ValidationError{
		Message: "expecting collections requirements file to be a dict with the key " +
			"collections that contains a list of collections to install",
		Expected: "{collections: [...]}",
	}
}

// collectionsNode validates the top-level document shape and returns the
// sequence node under the "collections" key.
//
// Parameters:
//   - root: The document node produced by yaml.Unmarshal
//
// Returns:
//   - *yaml.Node: The sequence of collection entries
//   - error: *errors.ValidationError when the document is not a mapping,
//     lacks the collections key, or the key does not hold a sequence
func collectionsNode(root *yaml.Node) (*yaml.Node, error) {
	if root.Kind != yaml.DocumentNode || len(root.Content) == 0 {
		return nil, shapeError()
	}

	doc := resolveAlias(root.Content[0])
	if doc.Kind != yaml.MappingNode {
		return nil, shapeError()
	}

	// Mapping content alternates key, value.
	for i := 0; i+1 < len(doc.Content); i += 2 {
		key := doc.Content[i]
		if key.Kind == yaml.ScalarNode && key.Value == "collections" {
			value := resolveAlias(doc.Content[i+1])
			if value.Kind != yaml.SequenceNode {
				return nil, shapeError()
			}
			return value, nil
		}
	}

	return nil, shapeError()
}

// parseEntry converts a single sequence element into an Entry.
//
// Mapping nodes are the structured form and must carry a name; every other
// node kind is treated as a bare collection name.
//
// Parameters:
//   - item: The sequence element node
//
// Returns:
//   - Entry: The parsed entry with defaults applied
//   - error: *errors.ValidationError when a structured entry has no name or
//     a field value is not a scalar
func parseEntry(item *yaml.Node) (Entry, error) {
	item = resolveAlias(item)

	if item.Kind != yaml.MappingNode {
		var name string
		if err := item.Decode(&name); err != nil {
			return Entry{}, &errors.ValidationError{
				Message:  "collections requirement entry must be a string or a mapping",
				Expected: "name string or {name: ..., version: ..., source: ...}",
				Err:      err,
			}
		}
		return Entry{Name: name, Version: DefaultVersion}, nil
	}

	entry := Entry{Version: DefaultVersion}
	hasName := false

	for i := 0; i+1 < len(item.Content); i += 2 {
		key := resolveAlias(item.Content[i])
		value := resolveAlias(item.Content[i+1])
		if key.Kind != yaml.ScalarNode {
			continue
		}

		// Explicit nulls count as unspecified.
		if value.Tag == "!!null" {
			continue
		}

		switch key.Value {
		case "name":
			if err := value.Decode(&entry.Name); err != nil {
				return Entry{}, fieldError("name", err)
			}
			hasName = true
		case "version":
			if err := value.Decode(&entry.Version); err != nil {
				return Entry{}, fieldError("version", err)
			}
		case "source":
			if err := value.Decode(&entry.Source); err != nil {
				return Entry{}, fieldError("source", err)
			}
		}
	}

	if !hasName {
		return Entry{}, &errors.ValidationError{
			Message: "collections requirement entry should contain the key name",
		}
	}

	return entry, nil
}

// fieldError builds the ValidationError for a non-scalar entry field.
func fieldError(field string, err error) *errors.ValidationError {
	return &errors.ValidationError{
		Field:    field,
		Message:  "collections requirement entry field must be a string",
		Expected: "string value",
		Err:      err,
	}
}

// resolveAlias follows alias nodes to their anchor target.
//
// Parameters:
//   - node: The node to resolve
//
// Returns:
//   - *yaml.Node: The anchor target for alias nodes, the node itself otherwise
func resolveAlias(node *yaml.Node) *yaml.Node {
	if node.Kind == yaml.AliasNode && node.Alias != nil {
		return node.Alias
	}
	return node
}
