// Named sets of canonical strings, loaded once at process start and never
// mutated afterwards. The moderation engine keeps its forbidden-word
// blocklist here, under the "blocked-words" set.
package setstore

import (
	"bufio"
	"context"
	"encoding/json"
	"io"
	"os"
	"strings"
)

// Set name the profanity detector matches tokens against.
const BlockedWordsSet = "blocked-words"

type SetStore interface {
	InSet(ctx context.Context, name, val string) (bool, error)
}

type MemSetStore struct {
	Sets map[string]map[string]bool
}

func NewMemSetStore() MemSetStore {
	return MemSetStore{
		Sets: make(map[string]map[string]bool),
	}
}

func (s MemSetStore) InSet(ctx context.Context, name, val string) (bool, error) {
	set, ok := s.Sets[name]
	if !ok {
		// NOTE: returns false when the entire set isn't found
		return false, nil
	}
	_, ok = set[val]
	return ok, nil
}

// Loads sets from a JSON file mapping set name to a list of values.
func (s *MemSetStore) LoadFromFileJSON(p string) error {

	f, err := os.Open(p)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()

	raw, err := io.ReadAll(f)
	if err != nil {
		return err
	}

	var sets map[string][]string
	if err := json.Unmarshal(raw, &sets); err != nil {
		return err
	}

	for name, l := range sets {
		m := make(map[string]bool, len(l))
		for _, val := range l {
			m[val] = true
		}
		s.Sets[name] = m
	}
	return nil
}

// Loads a single named set from a plain word list: one word per line, blank
// lines and '#' comment lines skipped. Words are expected to already be in
// canonical (lower-case) form.
func (s *MemSetStore) LoadWordList(name string, r io.Reader) error {
	m, ok := s.Sets[name]
	if !ok {
		m = make(map[string]bool)
		s.Sets[name] = m
	}
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		m[line] = true
	}
	return scanner.Err()
}
