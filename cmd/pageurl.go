package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ajxudir/galaxycheck/pkg/pageurl"
)

var pageFlag int

var pageurlCmd = &cobra.Command{
	Use:   "pageurl <url>",
	Short: "Rewrite the pagination parameter of a repository URL",
	Long: `Set the "page" query parameter of a URL, replacing any existing value.

All other query parameters keep their original order and multi-values.
Malformed URLs are echoed back unchanged.`,
	Args: cobra.ExactArgs(1),
	RunE: runPageurl,
}

// runPageurl executes the pageurl command.
//
// Parameters:
//   - cmd: The cobra command being executed
//   - args: Positional arguments; args[0] is the URL to rewrite
//
// Returns:
//   - error: Always nil; URL rewriting is best-effort
func runPageurl(cmd *cobra.Command, args []string) error {
	fmt.Fprintln(cmd.OutOrStdout(), pageurl.GetPageURL(args[0], pageFlag))
	return nil
}

func init() {
	pageurlCmd.Flags().IntVar(&pageFlag, "page", 1, "Page number to set")
}
