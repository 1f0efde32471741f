// Package source gives diagnostics access to the text of the program being
// analyzed, one line at a time.
package source

import (
	"fmt"
	"os"
	"strings"
	"sync"
)

// SplitLines splits content on '\n'. A trailing newline does not produce
// an extra empty line, and "\r\n" endings are normalized.
func SplitLines(content string) []string {
	if content == "" {
		return []string{}
	}
	content = strings.TrimSuffix(content, "\n")
	lines := strings.Split(content, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

// GetSourceLines reads a file and splits it into lines.
func GetSourceLines(filepath string) ([]string, error) {
	content, err := os.ReadFile(filepath)
	if err != nil {
		return nil, err
	}
	return SplitLines(string(content)), nil
}

// Cache holds source lines per file. Files registered with AddSource are
// served from memory; anything else is read from disk on first use.
type Cache struct {
	mu    sync.Mutex
	files map[string][]string
}

func NewCache() *Cache {
	return &Cache{files: make(map[string][]string)}
}

// AddSource registers in-memory content for path (for in-memory compilation)
func (c *Cache) AddSource(path, content string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.files[path] = SplitLines(content)
}

// Line returns the 1-indexed line of path.
func (c *Cache) Line(path string, line int) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	lines, ok := c.files[path]
	if !ok {
		var err error
		lines, err = GetSourceLines(path)
		if err != nil {
			return "", err
		}
		c.files[path] = lines
	}

	if line < 1 || line > len(lines) {
		return "", fmt.Errorf("line %d out of range (file has %d lines)", line, len(lines))
	}
	return lines[line-1], nil
}
