package cmd

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/ajxudir/galaxycheck/pkg/display"
	"github.com/ajxudir/galaxycheck/pkg/errors"
	"github.com/ajxudir/galaxycheck/pkg/requirements"
	"github.com/ajxudir/galaxycheck/pkg/versions"
	"github.com/ajxudir/galaxycheck/pkg/warnings"
)

var checkConstraintsFlag bool

var requirementsCmd = &cobra.Command{
	Use:   "requirements <file|->",
	Short: "Parse and validate a collection requirements manifest",
	Long: `Parse a requirements.yml manifest and list the collections it declares.

Reads from the given file, or from stdin when the argument is "-". Each entry
is shown with its name, version constraint, and source override. With
--check-constraints, version constraints are additionally checked for
parseability and unparsable ones are reported as warnings.`,
	Args: cobra.ExactArgs(1),
	RunE: runRequirements,
}

// runRequirements executes the requirements command.
//
// It performs the following operations:
//   - Step 1: Reads the manifest text from the file argument or stdin
//   - Step 2: Parses it into requirement entries
//   - Step 3: Optionally checks each version constraint for parseability
//   - Step 4: Renders the entries as a table
//
// Parameters:
//   - cmd: The cobra command being executed
//   - args: Positional arguments; args[0] is the manifest path or "-"
//
// Returns:
//   - error: Validation errors from parsing, or a read failure
func runRequirements(cmd *cobra.Command, args []string) error {
	text, err := readInput(args[0])
	if err != nil {
		return errors.NewExitError(errors.ExitFailure, err)
	}

	entries, err := requirements.ParseCollectionsRequirementsFile(text)
	if err != nil {
		return err
	}

	if checkConstraintsFlag {
		checkEntryConstraints(entries)
	}

	table := display.NewTable(
		display.ColumnDef{Name: "NAME", MinWidth: 4},
		display.ColumnDef{Name: "VERSION", MinWidth: 7},
		display.ColumnDef{Name: "SOURCE", MinWidth: 6},
	)
	for _, entry := range entries {
		source := entry.Source
		if source == "" {
			source = "-"
		}
		table.AddRow(entry.Name, entry.Version, source)
	}
	table.Render(cmd.OutOrStdout())

	return nil
}

// checkEntryConstraints warns about version constraints that cannot be parsed.
//
// Unparsable constraints are reported via the warnings writer but do not
// fail the command; the manifest shape itself already validated.
//
// Parameters:
//   - entries: Parsed requirement entries to check
func checkEntryConstraints(entries []requirements.Entry) {
	for _, entry := range entries {
		if err := versions.CheckConstraint(entry.Version); err != nil {
			warnings.Warnf("Unparsable version constraint %q for collection '%s': %v\n",
				entry.Version, entry.Name, err)
		}
	}
}

// readInput reads manifest text from a path, or from stdin for "-".
//
// Parameters:
//   - path: The file path, or "-" for stdin
//
// Returns:
//   - string: The input text
//   - error: Any read error
func readInput(path string) (string, error) {
	if path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", err
		}
		return string(data), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func init() {
	requirementsCmd.Flags().BoolVar(&checkConstraintsFlag, "check-constraints", false,
		"Warn about version constraints that cannot be parsed")
}
