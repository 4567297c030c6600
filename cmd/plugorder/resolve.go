// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/plugorder/plugorder/internal/catalog"
	"github.com/plugorder/plugorder/pkg/feature"
	"github.com/plugorder/plugorder/pkg/resolve"
)

// SelfID is the identity of the loader's own descriptor. Plugins can
// depend on it to require a minimum plugorder version.
const SelfID = "plugorder"

var resolveCmd = &cobra.Command{
	Use:   "resolve",
	Short: "Compute and print the plugin load order",
	Long: `Scan the configured plugin directories, resolve duplicates, conflicts,
the disabled list, and ordering constraints, then print the final load
order along with every plugin that was disabled or ignored and why.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		session, result, err := runResolution(cmd.ErrOrStderr())
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()

		fmt.Fprintln(out, TitleStyle.Render("Load order"))
		if len(session.Accepted()) == 0 {
			fmt.Fprintln(out, SubtitleStyle.Render("  (no plugins accepted)"))
		}
		for i, d := range session.Accepted() {
			line := fmt.Sprintf("  %2d. %s %s", i+1, PluginStyle.Render(d.Identity()), SubtitleStyle.Render("v"+d.Version.String()))
			if n := len(result.Features[d]); n > 0 {
				line += SubtitleStyle.Render(fmt.Sprintf("  [%d feature(s)]", n))
			}
			fmt.Fprintln(out, line)
		}

		if len(session.Disabled()) > 0 {
			fmt.Fprintln(out, WarningStyle.Render("\nDisabled"))
			for _, d := range session.Disabled() {
				fmt.Fprintf(out, "  - %s\n", d.Identity())
			}
		}

		reasons := make([]resolve.Report, 0, len(session.Reports())+len(result.Reports))
		reasons = append(reasons, session.Reports()...)
		reasons = append(reasons, result.Reports...)
		if len(reasons) > 0 {
			fmt.Fprintln(out, ErrorStyle.Render("\nIssues"))
			for _, r := range reasons {
				fmt.Fprintf(out, "  - %s\n", r)
			}
		}

		return nil
	},
}

// runResolution performs the full pipeline: scan, resolve, negotiate.
func runResolution(errOut io.Writer) (*resolve.Session, *feature.Result, error) {
	store, err := openStore(errOut)
	if err != nil {
		return nil, nil, err
	}

	descriptors, scanReports := catalog.NewScanner(cfg.PluginPaths, slog.Default()).Scan()

	self, err := catalog.SelfDescriptor(SelfID, "Plugorder", selfVersion())
	if err != nil {
		return nil, nil, err
	}
	descriptors = append(descriptors, self)

	session := resolve.NewSession(slog.Default())
	for _, r := range scanReports {
		session.Record(r)
	}
	session.Resolve(descriptors, store)

	evaluator := feature.NewEvaluator(feature.NewRegistry(), slog.Default())
	result := evaluator.Evaluate(session.Accepted())

	return session, result, nil
}

// selfVersion maps the build version onto a valid semver for the self
// descriptor; dev builds report 0.0.0.
func selfVersion() string {
	if Version == "dev" {
		return "0.0.0"
	}
	return Version
}
