// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import "strings"

// ForConfigNotFound returns hints for config file not found errors.
func ForConfigNotFound() string {
	return format("use --config /path/to/file.yaml or place <name>.yaml in $XDG_CONFIG_HOME/mdpdf")
}

// ForLayout returns hints for invalid page geometry.
func ForLayout() string {
	return formatHints([]string{
		"page sizes: a4, letter, legal",
		"margins and font sizes are in points",
	})
}

// ForStyle returns hints for unknown or malformed style names.
func ForStyle(builtin []string) string {
	hints := []string{"pass a .css file path or a name from assets.basePath/styles"}
	if len(builtin) > 0 {
		hints = append([]string{"built-in styles: " + strings.Join(builtin, ", ")}, hints...)
	}
	return formatHints(hints)
}

// ForTerminalOutput returns hints for PDF output refused on a terminal.
func ForTerminalOutput() string {
	return format("redirect stdout (mdpdf - > out.pdf) or pass -o out.pdf")
}

// ForExtension returns hints for inputs that are not markdown files.
func ForExtension() string {
	return format("only .md and .markdown files are converted; pass a directory to convert a tree")
}

// ForBatchOutput returns hints for a directory input with a file output.
func ForBatchOutput() string {
	return format("pass -o with a directory; each PDF keeps its source's relative path")
}

// ForOutputDirectory returns hints for output write errors.
func ForOutputDirectory() string {
	return format("check parent directory exists and is writable")
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}

// formatHints joins multiple hints with consistent formatting.
func formatHints(hints []string) string {
	if len(hints) == 0 {
		return ""
	}
	return format(strings.Join(hints, "; "))
}
