// Package render assembles finger response text. Every response leaves the
// dispatcher terminated by exactly one CRLF; Terminate enforces that.
package render

import (
	"strings"

	"fingerd/internal/domain"
)

// CRLF is the canonical protocol line terminator.
const CRLF = "\r\n"

const (
	forwardingDeniedText = "Finger forwarding service denied"
	userNotFoundText     = "Finger user not found"
	invalidQueryText     = "Finger invalid query"
)

// ProfileContent carries the three loaded profile resources.
type ProfileContent struct {
	Contact string
	Project string
	Plan    string
}

func ForwardingDenied() string { return forwardingDeniedText }

func UserNotFound() string { return userNotFoundText }

func InvalidQuery() string { return invalidQueryText }

// UserList names the single configured user.
func UserList(profile domain.Profile) string {
	return "There is only one user on this server: " + profile.Name
}

// Profile renders the matched user's full profile: contact text, then the
// project section, a blank line, then the plan section. With InfoLabels set
// the project section gets a "Project:" line of its own and the plan text an
// inline "Plan: " prefix. Plan text is trimmed of surrounding whitespace;
// project and contact text are used as loaded.
func Profile(profile domain.Profile, content ProfileContent) string {
	var b strings.Builder
	b.WriteString(content.Contact)
	b.WriteString(CRLF)
	if profile.InfoLabels {
		b.WriteString("Project:")
		b.WriteString(CRLF)
	}
	b.WriteString(content.Project)
	b.WriteString(CRLF)
	b.WriteString(CRLF)
	if profile.InfoLabels {
		b.WriteString("Plan: ")
	}
	b.WriteString(strings.TrimSpace(content.Plan))
	return b.String()
}

// Terminate returns s ending in exactly one CRLF. A trailing run of
// terminators (possible when a profile's last resource is empty) collapses
// to one; a response never leaves unterminated.
func Terminate(s string) string {
	return strings.TrimRight(s, "\r\n") + CRLF
}
