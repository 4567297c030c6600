// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"log/slog"
	"sort"

	"github.com/spf13/cobra"

	"github.com/plugorder/plugorder/internal/catalog"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List discovered plugins",
	Long: `Scan the configured plugin directories and list every plugin found,
without resolving an order. Bare placeholders and disabled plugins are
marked.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		descriptors, reports := catalog.NewScanner(cfg.PluginPaths, slog.Default()).Scan()

		store, err := catalog.OpenFileStore(cfg.DisabledFile)
		if err != nil {
			fmt.Fprintln(cmd.ErrOrStderr(), WarningStyle.Render("Warning: ")+err.Error())
			store = nil
		}

		sort.Slice(descriptors, func(i, j int) bool {
			return descriptors[i].Identity() < descriptors[j].Identity()
		})

		out := cmd.OutOrStdout()
		for _, d := range descriptors {
			line := fmt.Sprintf("%s %s", PluginStyle.Render(d.Identity()), SubtitleStyle.Render("v"+d.Version.String()))
			if d.IsBare {
				line += WarningStyle.Render("  (bare)")
			}
			if store != nil && store.Contains(d.Identity()) {
				line += WarningStyle.Render("  (disabled)")
			}
			fmt.Fprintln(out, line)
		}

		for _, r := range reports {
			fmt.Fprintln(out, ErrorStyle.Render("invalid: ")+r.Identity+SubtitleStyle.Render(": "+r.Detail))
		}

		if len(descriptors) == 0 && len(reports) == 0 {
			fmt.Fprintln(out, SubtitleStyle.Render("no plugins found"))
		}
		return nil
	},
}
