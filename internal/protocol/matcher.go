// Package protocol classifies raw finger request lines against the RFC 1288
// query grammar.
package protocol

import (
	"regexp"
	"strings"

	"fingerd/internal/domain"
)

// MaxQueryBytes caps a single request line, terminator included. The reading
// collaborator enforces it; the matcher only ever sees a line at or under it.
const MaxQueryBytes = 1024

// The three query forms, each a whole-line match so trailing garbage is never
// accepted. Deviations from a strict RFC reading: the carriage return before
// the final line feed is optional (not every client sends it), and a bare
// username with no /W prefix still matches the search form.
var (
	// {W} {S}*? {U}? @{H} (@{H})* — hostname forwarding, always denied.
	forwardRe = regexp.MustCompile(`\A(/W)?[ \t]*(\w*)((?:@[\w.-]+)+)\r?\n\z`)
	// {W}{S}+ prefix optional, then a required username token.
	searchRe = regexp.MustCompile(`\A(?:(/W)[ \t]+)?(\w+)\r?\n\z`)
	// Nothing but an optional verbose flag.
	listRe = regexp.MustCompile(`\A(?:(/W)[ \t]*)?\r?\n\z`)
)

// Classify matches line against the query forms in fixed priority order:
// forwarding, search, list. The forms overlap for some inputs; first match
// wins, which is what keeps the classifications mutually exclusive. Lines
// matching no form classify as Invalid.
func Classify(line string) (domain.Classification, domain.Query) {
	if m := forwardRe.FindStringSubmatch(line); m != nil {
		return domain.ClassificationForwardingDenied, domain.Query{
			Verbose:  m[1] != "",
			Username: m[2],
			Hosts:    splitHosts(m[3]),
		}
	}
	if m := searchRe.FindStringSubmatch(line); m != nil {
		return domain.ClassificationUserSearch, domain.Query{
			Verbose:  m[1] != "",
			Username: m[2],
		}
	}
	if m := listRe.FindStringSubmatch(line); m != nil {
		return domain.ClassificationUserList, domain.Query{Verbose: m[1] != ""}
	}
	return domain.ClassificationInvalid, domain.Query{}
}

// splitHosts turns "@a@b" into ["a", "b"].
func splitHosts(chain string) []string {
	parts := strings.Split(chain, "@")
	hosts := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			hosts = append(hosts, p)
		}
	}
	return hosts
}
