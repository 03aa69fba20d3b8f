// Package fsresource loads profile resources from the local filesystem.
package fsresource

import (
	"bufio"
	"context"
	"os"
	"strings"

	"fingerd/internal/repository"
)

type ResourceRepository struct{}

func NewResourceRepository() repository.ResourceRepository {
	return &ResourceRepository{}
}

// Load reads the resource at path line by line and returns its normalized
// text. Any failure (absent file, permission, read error) degrades to the
// empty string; resource problems are never the protocol peer's concern.
func (r *ResourceRepository) Load(_ context.Context, path string) string {
	f, err := os.Open(path)
	if err != nil {
		return ""
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if scanner.Err() != nil {
		return ""
	}
	return Normalize(lines)
}

// Normalize strips trailing whitespace from each line and rejoins the lines
// with the canonical CRLF terminator. Pure; the Load I/O stays out of it.
func Normalize(lines []string) string {
	trimmed := make([]string, len(lines))
	for i, line := range lines {
		trimmed[i] = strings.TrimRight(line, " \t\r\n")
	}
	return strings.Join(trimmed, "\r\n")
}
