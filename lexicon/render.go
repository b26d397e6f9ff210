// SPDX-License-Identifier: MIT
// Package: genling/lexicon

package lexicon

import (
	"fmt"

	"github.com/katalvlaran/genling/sampler"
)

// Entry is one stem rendered in one script.
type Entry struct {
	Stem   string
	Script string
	Word   string
}

// Render runs every stem through the script's pipeline. src feeds
// probabilistic replacements and may be nil for deterministic scripts.
func Render(src sampler.Source, stems []string, script Script) ([]Entry, error) {
	out := make([]Entry, len(stems))
	for i, s := range stems {
		w, err := script.Word.Create(src, s)
		if err != nil {
			return nil, fmt.Errorf("Render: script %q: %w", script.Name, err)
		}
		out[i] = Entry{Stem: s, Script: script.Name, Word: w}
	}
	return out, nil
}

// Words extracts the rendered words.
func Words(entries []Entry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Word
	}
	return out
}
