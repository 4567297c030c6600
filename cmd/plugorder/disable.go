// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/plugorder/plugorder/internal/catalog"
	"github.com/plugorder/plugorder/internal/issue"
)

var disableCmd = &cobra.Command{
	Use:   "disable <plugin-id>",
	Short: "Add a plugin to the disabled list",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore(cmd.ErrOrStderr())
		if err != nil {
			return err
		}
		identity := args[0]
		if store.Contains(identity) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s is already disabled\n", PluginStyle.Render(identity))
			return nil
		}
		if err := store.Append(identity); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "disabled %s\n", PluginStyle.Render(identity))
		return nil
	},
}

var enableCmd = &cobra.Command{
	Use:   "enable <plugin-id>",
	Short: "Remove a plugin from the disabled list",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore(cmd.ErrOrStderr())
		if err != nil {
			return err
		}
		identity := args[0]
		if !store.Contains(identity) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s is not disabled\n", PluginStyle.Render(identity))
			return nil
		}
		if err := store.Remove(identity); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "enabled %s\n", PluginStyle.Render(identity))
		return nil
	},
}

// openStore opens the disabled-plugin store, printing the corrupt-list
// help text to errOut when the file cannot be parsed.
func openStore(errOut io.Writer) (*catalog.FileStore, error) {
	store, err := catalog.OpenFileStore(cfg.DisabledFile)
	if err != nil {
		renderIssue(errOut, issue.DisabledListCorruptId)
		return nil, issue.NewErrorContext().
			WithOperation("load disabled-plugin list").
			WithResource(cfg.DisabledFile).
			WithSuggestion("Fix the file by hand; expected shape is: disabled = [\"id\"]").
			Wrap(err).
			BuildError()
	}
	return store, nil
}
