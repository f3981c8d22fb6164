// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"strings"

	"github.com/vertekal/go-resume-docx/internal/fileutil"
)

// ForTemplateLoad returns hints for template loading failures.
func ForTemplateLoad(templatePath string) string {
	var hints []string

	if templatePath == "" {
		hints = append(hints, "pass --template or set template.path in the config file")
	} else if !fileutil.FileExists(templatePath) {
		hints = append(hints, "check the --template path; the file does not exist")
	} else {
		hints = append(hints, "the template must be a branded .docx with styles.xml and numbering.xml intact")
	}

	return formatHints(hints)
}

// ForBadgeAsset returns hints for badge asset resolution failures.
func ForBadgeAsset(badgeDir string) string {
	var hints []string

	if badgeDir == "" {
		hints = append(hints, "badges added via config need their PNG in --badge-dir or assets.badgeDir")
	} else {
		hints = append(hints, "place the badge PNG in "+badgeDir)
	}

	return formatHints(hints)
}

// formatHints joins hints with consistent indentation.
// Returns empty string if no hints apply.
func formatHints(hints []string) string {
	if len(hints) == 0 {
		return ""
	}
	var sb strings.Builder
	for _, h := range hints {
		sb.WriteString("\n  hint: ")
		sb.WriteString(h)
	}
	return sb.String()
}
