// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"github.com/charmbracelet/glamour"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

type Id int

const (
	PluginDirNotFoundId Id = iota + 1
	ManifestParseErrorId
	DependencyCycleId
	PluginConflictId
	ConfigLoadFailedId
	DisabledListCorruptId
	FeatureNotFoundId
)

type MarkdownMsg string

type HttpLink string

type Renderer interface {
	Render(in string, stylePath string) (string, error)
}

type Issue struct {
	id       Id          // ID used to lookup the issue
	mdMsg    MarkdownMsg // Markdown text that will be rendered
	docLinks []HttpLink  // must never be empty, because we need to have docs about all issue types
	extLinks []HttpLink  // external links that might be useful for the user
}

func (i *Issue) Id() Id {
	return i.id
}

func (i *Issue) MarkdownMsg() MarkdownMsg {
	return i.mdMsg
}

func (i *Issue) DocLinks() []HttpLink {
	return slices.Clone(i.docLinks)
}

func (i *Issue) ExtLinks() []HttpLink {
	return slices.Clone(i.extLinks)
}

func (i *Issue) Render(stylePath string) (string, error) {
	extraMd := ""
	if len(i.docLinks) > 0 || len(i.extLinks) > 0 {
		extraMd += "\n\n"
		extraMd += "## See also: "
		for _, link := range i.docLinks {
			extraMd += "- [" + string(link) + "]"
		}
		for _, link := range i.extLinks {
			extraMd += "- [" + string(link) + "]"
		}
	}
	return render(string(i.mdMsg)+extraMd, stylePath)
}

var (
	render = glamour.Render

	pluginDirNotFoundIssue = &Issue{
		id: PluginDirNotFoundId,
		mdMsg: `
# No plugin directory found!

None of the configured plugin search paths exist.

## Search locations (in order):
1. Paths from the ` + "`plugin_paths`" + ` config entry
2. ~/.plugorder/plugins/

## Things you can try:
- Create the plugins directory:
~~~
$ mkdir -p ~/.plugorder/plugins
~~~

- Or point plugorder at your plugins:
~~~cue
plugin_paths: ["/path/to/plugins"]
~~~`,
	}

	manifestParseErrorIssue = &Issue{
		id: ManifestParseErrorId,
		mdMsg: `
# Failed to parse a plugin manifest!

A plugin.cue file contains syntax errors or invalid fields. The plugin
was skipped; everything else still resolves.

## Common issues:
- Invalid CUE syntax (missing quotes, braces, etc.)
- Missing required fields (name, version)
- A version or range that is not valid semver

## Things you can try:
- Check the error message above for the specific line/column
- Run with verbose mode for more details:
~~~
$ plugorder --verbose resolve
~~~

## Example of a valid manifest:
~~~cue
id:      "example"
name:    "Example Plugin"
version: "1.2.0"

dependencies: {
  core: ">=2.0.0 <3.0.0"
}

loadAfter: ["other-plugin"]
~~~`,
	}

	dependencyCycleIssue = &Issue{
		id: DependencyCycleId,
		mdMsg: `
# Ordering cycle detected!

Some plugins declare ordering constraints that form a cycle, so no load
order can satisfy them. Every plugin in the cycle was skipped.

## Example of a cycle:
~~~cue
// a/plugin.cue
loadAfter: ["b"]

// b/plugin.cue
loadAfter: ["a"]  // Cycle: a -> b -> a
~~~

## Things you can try:
- Review the dependencies, loadBefore, and loadAfter fields of the
  plugins named in the message above
- Remove one constraint to break the cycle
- Disable one of the plugins involved`,
	}

	pluginConflictIssue = &Issue{
		id: PluginConflictId,
		mdMsg: `
# Conflicting plugins!

Two plugins declare they cannot coexist, so the lower-precedence one was
skipped. Precedence is version first, then identity.

## Things you can try:
- Keep only one of the conflicting plugins installed
- Check whether a newer release lifts the conflict
- Disable the one you need less:
~~~
$ plugorder disable <plugin-id>
~~~`,
	}

	configLoadFailedIssue = &Issue{
		id: ConfigLoadFailedId,
		mdMsg: `
# Failed to load configuration!

Could not load the plugorder configuration file.

## Configuration file locations:
- Linux: ~/.config/plugorder/config.cue
- macOS: ~/Library/Application Support/plugorder/config.cue
- Windows: %APPDATA%\plugorder\config.cue

## Things you can try:
- Check the configuration syntax
- Remove the config file to use defaults:
~~~
$ rm ~/.config/plugorder/config.cue
~~~

## Example configuration:
~~~cue
plugin_paths: ["/home/user/.plugorder/plugins"]
disabled_file: "/home/user/.plugorder/disabled.toml"

ui: {
  color_scheme: "auto"
  verbose: false
}
~~~`,
	}

	disabledListCorruptIssue = &Issue{
		id: DisabledListCorruptId,
		mdMsg: `
# Disabled-plugin list is corrupt!

The disabled.toml file could not be parsed, so plugorder cannot tell
which plugins you have turned off.

## Things you can try:
- Fix the file by hand; the expected shape is:
~~~toml
disabled = ["plugin-a", "plugin-b"]
~~~

- Or delete it to re-enable everything:
~~~
$ rm ~/.plugorder/disabled.toml
~~~`,
	}

	featureNotFoundIssue = &Issue{
		id: FeatureNotFoundId,
		mdMsg: `
# Feature request unresolved!

A plugin requested a feature no installed capability provides. The
plugin still loads; the feature is simply absent.

## Things you can try:
- Install the plugin that provides the feature
- Check the request string for typos in the plugin's manifest
- Ask the plugin author which provider they expect`,
	}

	issues = map[Id]*Issue{
		pluginDirNotFoundIssue.Id():   pluginDirNotFoundIssue,
		manifestParseErrorIssue.Id():  manifestParseErrorIssue,
		dependencyCycleIssue.Id():     dependencyCycleIssue,
		pluginConflictIssue.Id():      pluginConflictIssue,
		configLoadFailedIssue.Id():    configLoadFailedIssue,
		disabledListCorruptIssue.Id(): disabledListCorruptIssue,
		featureNotFoundIssue.Id():     featureNotFoundIssue,
	}
)

func Values() []*Issue {
	return maps.Values(issues)
}

func Get(id Id) *Issue {
	return issues[id]
}
