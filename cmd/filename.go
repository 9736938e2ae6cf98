package cmd

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ajxudir/galaxycheck/pkg/collection"
	"github.com/ajxudir/galaxycheck/pkg/display"
	"github.com/ajxudir/galaxycheck/pkg/errors"
	"github.com/ajxudir/galaxycheck/pkg/verbose"
	"github.com/ajxudir/galaxycheck/pkg/versions"
)

var (
	filenameDirFlag      string
	filenameLatestFlag   bool
	filenameContinueFlag bool
)

var filenameCmd = &cobra.Command{
	Use:   "filename [name...]",
	Short: "Parse and validate collection archive filenames",
	Long: `Parse collection archive filenames of the form {namespace}-{name}-{version}.tar.gz.

Filenames are given as arguments, or collected from a directory with --dir.
Each filename's version segment is validated as a strict semantic version.
With --latest, archives are grouped by collection and the highest version of
each collection is marked.`,
	Args: cobra.ArbitraryArgs,
	RunE: runFilename,
}

// runFilename executes the filename command.
//
// It performs the following operations:
//   - Step 1: Gathers filenames from arguments and, with --dir, a directory scan
//   - Step 2: Parses each filename, collecting failures
//   - Step 3: Renders parsed archives as a table, optionally marking the
//     highest version per collection
//   - Step 4: Reports failures, honoring --continue-on-fail
//
// Parameters:
//   - cmd: The cobra command being executed
//   - args: Filenames to parse
//
// Returns:
//   - error: The first parse error, a PartialSuccessError under
//     --continue-on-fail, or nil when everything validated
func runFilename(cmd *cobra.Command, args []string) error {
	names := append([]string{}, args...)

	if filenameDirFlag != "" {
		scanned, err := scanArchiveDir(filenameDirFlag)
		if err != nil {
			return errors.NewExitError(errors.ExitFailure, err)
		}
		names = append(names, scanned...)
	}

	if len(names) == 0 {
		return errors.NewExitErrorf(errors.ExitValidationError, "no filenames given; pass names or --dir")
	}

	var parsed []collection.Filename
	var failures []error

	for _, name := range names {
		cf, err := collection.ParseCollectionFilename(name)
		if err != nil {
			if !filenameContinueFlag {
				return err
			}
			failures = append(failures, err)
			continue
		}
		parsed = append(parsed, cf)
	}

	renderFilenames(cmd, parsed)

	if len(failures) > 0 {
		for _, err := range failures {
			reportError(err)
		}
		if len(parsed) == 0 {
			return errors.NewExitError(errors.ExitValidationError, failures[0])
		}
		return errors.NewPartialSuccessError(len(parsed), len(failures), failures)
	}

	return nil
}

// renderFilenames renders parsed archives as a table.
//
// With --latest, a LATEST column marks the highest version of each
// namespace.name group.
//
// Parameters:
//   - cmd: The cobra command, for output writer access
//   - parsed: Parsed archive filenames in input order
func renderFilenames(cmd *cobra.Command, parsed []collection.Filename) {
	if len(parsed) == 0 {
		return
	}

	columns := []display.ColumnDef{
		{Name: "NAMESPACE", MinWidth: 9},
		{Name: "NAME", MinWidth: 4},
		{Name: "VERSION", MinWidth: 7},
	}
	if filenameLatestFlag {
		columns = append(columns, display.ColumnDef{Name: "LATEST", MinWidth: 6})
	}

	highest := map[string]string{}
	if filenameLatestFlag {
		grouped := map[string][]string{}
		for _, cf := range parsed {
			grouped[cf.FQN()] = append(grouped[cf.FQN()], cf.Version)
		}
		for fqn, vs := range grouped {
			highest[fqn] = versions.Highest(vs)
		}
	}

	table := display.NewTable(columns...)
	for _, cf := range parsed {
		row := []string{cf.Namespace, cf.Name, cf.Version}
		if filenameLatestFlag {
			mark := ""
			if highest[cf.FQN()] == cf.Version {
				mark = "*"
			}
			row = append(row, mark)
		}
		table.AddRow(row...)
	}
	table.Render(cmd.OutOrStdout())
}

// scanArchiveDir lists the .tar.gz archive names in a directory.
//
// Only regular files with a .tar.gz suffix are returned; the base name is
// used so directory paths never leak into the filename grammar.
//
// Parameters:
//   - dir: The directory to scan
//
// Returns:
//   - []string: Archive base names in directory order
//   - error: Any error reading the directory
func scanArchiveDir(dir string) ([]string, error) {
	dirEntries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var names []string
	for _, de := range dirEntries {
		if de.IsDir() || !strings.HasSuffix(de.Name(), ".tar.gz") {
			continue
		}
		names = append(names, filepath.Base(de.Name()))
	}

	verbose.Infof("Filename: found %d archives in %s", len(names), dir)

	return names, nil
}

func init() {
	filenameCmd.Flags().StringVar(&filenameDirFlag, "dir", "", "Scan a directory for *.tar.gz archives")
	filenameCmd.Flags().BoolVar(&filenameLatestFlag, "latest", false, "Mark the highest version of each collection")
	filenameCmd.Flags().BoolVar(&filenameContinueFlag, "continue-on-fail", false, "Report invalid filenames but keep going")
}
