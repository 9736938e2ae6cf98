package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ajxudir/galaxycheck/pkg/metadata"
)

var metadataCmd = &cobra.Command{
	Use:   "metadata <file>",
	Short: "Load and re-emit a collection metadata file",
	Long: `Decode a collection metadata JSON file and re-emit it indented.

Object key order is preserved from the input. Fails with a not-found error
when the file cannot be read, or a malformed-data error when the contents
are not valid JSON.`,
	Args: cobra.ExactArgs(1),
	RunE: runMetadata,
}

// runMetadata executes the metadata command.
//
// It performs the following operations:
//   - Step 1: Loads and decodes the metadata file
//   - Step 2: Re-encodes the value indented, key order preserved
//
// Parameters:
//   - cmd: The cobra command being executed
//   - args: Positional arguments; args[0] is the metadata path
//
// Returns:
//   - error: NotFoundError or MalformedDataError from loading
func runMetadata(cmd *cobra.Command, args []string) error {
	value, err := metadata.ParseMetadata(args[0])
	if err != nil {
		return err
	}

	out, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), string(out))

	return nil
}
