package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/actionkit"
)

func newTreeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "tree",
		Short: "Print the nested action creators of a manifest",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			creators, err := a.build(cmd.Context())
			if err != nil {
				return err
			}
			return printTree(cmd.OutOrStdout(), creators, 0)
		},
	}
}

// printTree writes one line per key: creators as "key  TYPE", namespaces as
// "key/" followed by their children indented two spaces.
func printTree(w io.Writer, creators *actionkit.Creators, depth int) error {
	indent := strings.Repeat("  ", depth)
	for _, key := range creators.Keys() {
		if creator, ok := creators.Get(key); ok {
			if _, err := fmt.Fprintf(w, "%s%s  %s\n", indent, key, creator.Type()); err != nil {
				return err
			}
		}
		if ns, ok := creators.Namespace(key); ok {
			if _, err := fmt.Fprintf(w, "%s%s/\n", indent, key); err != nil {
				return err
			}
			if err := printTree(w, ns, depth+1); err != nil {
				return err
			}
		}
	}
	return nil
}
