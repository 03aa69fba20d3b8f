package protocol

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"fingerd/internal/domain"
)

func TestClassifyListForm(t *testing.T) {
	tests := []struct {
		name    string
		line    string
		verbose bool
	}{
		{"bare crlf", "\r\n", false},
		{"bare lf", "\n", false},
		{"verbose flag only", "/W\r\n", true},
		{"verbose flag with trailing space", "/W \r\n", true},
		{"verbose flag with trailing tab", "/W\t\n", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cls, q := Classify(tt.line)
			assert.Equal(t, domain.ClassificationUserList, cls)
			assert.Equal(t, tt.verbose, q.Verbose)
			assert.Empty(t, q.Username)
		})
	}
}

func TestClassifySearchForm(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		username string
		verbose  bool
	}{
		{"bare username", "alice\r\n", "alice", false},
		{"bare username lf only", "alice\n", "alice", false},
		{"verbose then username", "/W alice\r\n", "alice", true},
		{"verbose tab separated", "/W\talice\r\n", "alice", true},
		{"underscore and digits", "bob_2\r\n", "bob_2", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cls, q := Classify(tt.line)
			assert.Equal(t, domain.ClassificationUserSearch, cls)
			assert.Equal(t, tt.username, q.Username)
			assert.Equal(t, tt.verbose, q.Verbose)
		})
	}
}

func TestClassifyForwardingForm(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		username string
		hosts    []string
	}{
		{"user at host", "bob@example.com\r\n", "bob", []string{"example.com"}},
		{"host only", "@example.com\r\n", "", []string{"example.com"}},
		{"host chain", "alice@relay@example.com\r\n", "alice", []string{"relay", "example.com"}},
		{"verbose user at host", "/W alice@example.com\r\n", "alice", []string{"example.com"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cls, q := Classify(tt.line)
			assert.Equal(t, domain.ClassificationForwardingDenied, cls)
			assert.Equal(t, tt.username, q.Username)
			assert.Equal(t, tt.hosts, q.Hosts)
		})
	}
}

func TestClassifyInvalid(t *testing.T) {
	tests := []struct {
		name string
		line string
	}{
		{"slashes", "///\r\n"},
		{"two tokens", "alice bob\r\n"},
		{"flag glued to username", "/Walice\r\n"},
		{"missing line feed", "alice\r"},
		{"no terminator at all", "alice"},
		{"empty input", ""},
		{"empty host segment", "alice@\r\n"},
		{"non word username", "al ice\r\n"},
		{"leading space", " alice\r\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cls, _ := Classify(tt.line)
			assert.Equal(t, domain.ClassificationInvalid, cls)
		})
	}
}

// The forwarding form wins over the search form whenever a host segment is
// present, and the search form wins over the list form for any username.
func TestClassifyPriorityOrder(t *testing.T) {
	cls, _ := Classify("alice@example.com\r\n")
	assert.Equal(t, domain.ClassificationForwardingDenied, cls)

	cls, _ = Classify("alice\r\n")
	assert.Equal(t, domain.ClassificationUserSearch, cls)

	cls, _ = Classify("/W\r\n")
	assert.Equal(t, domain.ClassificationUserList, cls)
}
