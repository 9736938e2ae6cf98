// Package cmd implements the command-line interface for galaxycheck.
// It provides commands for validating collection requirement manifests,
// archive filenames, metadata files, and pagination URLs.
package cmd

import (
	stderrors "errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ajxudir/galaxycheck/pkg/errors"
	"github.com/ajxudir/galaxycheck/pkg/verbose"
)

var exitFunc = os.Exit
var verboseFlag bool
var versionFlag bool

var rootCmd = &cobra.Command{
	Use:   "galaxycheck",
	Short: "Collection repository validation toolkit",
	Long:  `Validate collection requirement manifests, archive filenames, and metadata files.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verboseFlag {
			verbose.Enable()
		}
	},
	Run: func(cmd *cobra.Command, args []string) {
		if versionFlag {
			printVersionOutput()
			return
		}
		_ = cmd.Help()
	},
}

// Execute runs the root command and exits with appropriate code:
//   - 0: Success
//   - 1: Partial failure (some inputs failed, use --continue-on-fail)
//   - 2: Complete failure
//   - 3: Validation error
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		reportError(err)
		code := errors.GetExitCode(err)

		// Check for partial success
		var partialErr *errors.PartialSuccessError
		if stderrors.As(err, &partialErr) {
			code = errors.ExitPartialFailure
			verbose.Infof("Exit code %d: partial success - %d succeeded, %d failed", code, partialErr.Succeeded, partialErr.Failed)
		} else {
			verbose.Infof("Exit code %d: %v", code, err)
		}

		exitFunc(code)
	}
}

// ExecuteTest runs the root command for testing (returns error instead of exiting).
//
// Unlike Execute(), this function returns the error directly without calling
// os.Exit, making it suitable for use in test suites.
//
// Returns:
//   - error: Command execution error, or nil on success
func ExecuteTest() error {
	return rootCmd.Execute()
}

// SetArgs sets argv for the root command; used by tests.
//
// Parameters:
//   - args: The argument vector to parse on the next Execute call
func SetArgs(args []string) {
	rootCmd.SetArgs(args)
}

// reportError prints an error to stderr in a consistent format.
//
// Parameters:
//   - err: The error to report
func reportError(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&verboseFlag, "verbose", false, "Enable verbose debug output")

	// Add -v/--version as a LOCAL flag (not persistent) so it only works on root command
	rootCmd.Flags().BoolVarP(&versionFlag, "version", "v", false, "Show version information")

	rootCmd.SilenceUsage = true
	rootCmd.SilenceErrors = true

	// Commands ordered logically: info → parsing workflow
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(requirementsCmd)
	rootCmd.AddCommand(filenameCmd)
	rootCmd.AddCommand(metadataCmd)
	rootCmd.AddCommand(pageurlCmd)
}
