package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"

	"github.com/dmitrymomot/actionkit"
	"github.com/dmitrymomot/actionkit/pkg/logger"
)

func newCreateCmd(a *app) *cobra.Command {
	var (
		dump     bool
		errorArg string
	)

	cmd := &cobra.Command{
		Use:   "create <path> [json-arg...]",
		Short: "Build one action from a manifest creator",
		Long: `Build one action by calling the creator at <path> with the given arguments.

<path> is the dotted creator key path, e.g. "app.loaded". Each argument is
decoded as JSON; arguments that are not valid JSON are passed as strings.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			creators, err := a.build(cmd.Context())
			if err != nil {
				return err
			}

			path := strings.Split(args[0], ".")
			creator, ok := creators.Lookup(path...)
			if !ok {
				return fmt.Errorf("no action creator at %q", args[0])
			}

			callArgs := decodeArgs(args[1:])
			if errorArg != "" {
				callArgs = append([]any{errors.New(errorArg)}, callArgs...)
			}

			action := creator.Create(callArgs...)
			a.log.DebugContext(cmd.Context(), "action created", logger.ActionType(action.Type))

			out := cmd.OutOrStdout()
			if dump {
				_, err := fmt.Fprint(out, spew.Sdump(action))
				return err
			}
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(printable(action))
		},
	}

	cmd.Flags().BoolVar(&dump, "dump", false, "print the action with go-spew instead of JSON")
	cmd.Flags().StringVar(&errorArg, "error", "", "prepend an error with this message to the arguments")
	return cmd
}

func decodeArgs(raw []string) []any {
	out := make([]any, len(raw))
	for i, s := range raw {
		var v any
		if err := json.Unmarshal([]byte(s), &v); err != nil {
			v = s
		}
		out[i] = v
	}
	return out
}

// printable replaces error payloads with their message, since error values
// have no JSON form.
func printable(action actionkit.Action) actionkit.Action {
	if err, ok := action.Payload.(error); ok {
		action.Payload = err.Error()
	}
	return action
}
