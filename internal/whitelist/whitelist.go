// Package whitelist holds values a caseworker has approved as not personal,
// such as a programme name that looks like a full name.
package whitelist

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"
	"sync"

	"github.com/creaotrhubn26/tidsflyt-piiscan/internal/models"
	"github.com/creaotrhubn26/tidsflyt-piiscan/internal/pii"
)

// Whitelist is a file-backed set of approved values, matched
// case-insensitively against a finding's match.
type Whitelist struct {
	mu    sync.RWMutex
	items map[string]string // folded -> as entered
	path  string
}

// NewWhitelist creates or loads a whitelist from the given path. An empty
// path gives an in-memory whitelist.
func NewWhitelist(path string) (*Whitelist, error) {
	w := &Whitelist{
		items: make(map[string]string),
		path:  path,
	}
	if path == "" {
		return w, nil
	}
	if err := w.load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load whitelist %s: %w", path, err)
	}
	return w, nil
}

func key(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}

// load reads the whitelist file line by line; # starts a comment.
func (w *Whitelist) load() error {
	file, err := os.Open(w.path)
	if err != nil {
		return err
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" && !strings.HasPrefix(line, "#") {
			w.items[key(line)] = line
		}
	}
	return scanner.Err()
}

// Contains checks if the value is in the whitelist.
func (w *Whitelist) Contains(value string) bool {
	w.mu.RLock()
	defer w.mu.RUnlock()
	_, ok := w.items[key(value)]
	return ok
}

// Add adds a new value to the whitelist and appends it to the file.
func (w *Whitelist) Add(value string) error {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	k := key(value)
	if _, ok := w.items[k]; ok {
		return nil
	}

	if w.path != "" {
		f, err := os.OpenFile(w.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
		if err != nil {
			return err
		}
		defer f.Close()
		if _, err := f.WriteString(value + "\n"); err != nil {
			return err
		}
	}
	w.items[k] = value
	return nil
}

// Values returns the entries as entered, sorted.
func (w *Whitelist) Values() []string {
	w.mu.RLock()
	defer w.mu.RUnlock()
	out := make([]string, 0, len(w.items))
	for _, v := range w.items {
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}

// Len returns the number of entries.
func (w *Whitelist) Len() int {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return len(w.items)
}

// Filter drops whitelisted findings and recomputes the summary fields.
func (w *Whitelist) Filter(res models.ScanResult) models.ScanResult {
	if w.Len() == 0 {
		return res
	}
	kept := make([]models.Finding, 0, len(res.Warnings))
	for _, f := range res.Warnings {
		if !w.Contains(f.Match) {
			kept = append(kept, f)
		}
	}
	if len(kept) == len(res.Warnings) {
		return res
	}
	return pii.Aggregate(kept)
}

// FilterFields applies Filter to every field.
func (w *Whitelist) FilterFields(res models.MultiFieldScanResult) models.MultiFieldScanResult {
	if w.Len() == 0 {
		return res
	}
	return pii.Combine(res.Results, w.Filter)
}
