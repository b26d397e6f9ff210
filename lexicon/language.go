// SPDX-License-Identifier: MIT
// Package: genling/lexicon

package lexicon

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"

	"github.com/katalvlaran/genling/stem"
	"github.com/katalvlaran/genling/word"
)

// RawScript names the implicit script that renders stems unchanged.
const RawScript = "Raw"

// Script is one writing system of a language.
type Script struct {
	Name string
	Tag  language.Tag
	Word *word.Word // nil renders the stem unchanged
}

// Raw reports whether the script is the implicit identity script.
func (s Script) Raw() bool { return s.Word == nil }

// Language is a named stem grammar with its scripts.
type Language struct {
	Name    string
	Stem    *stem.Stem
	Scripts []Script
}

// Validate checks that the language can generate.
func (l *Language) Validate() error {
	if l == nil || l.Stem == nil {
		return fmt.Errorf("language %v: %w", l, ErrInvalidLanguage)
	}
	seen := make(map[string]bool, len(l.Scripts))
	for i, s := range l.Scripts {
		key := strings.ToLower(s.Name)
		if key == "" || key == strings.ToLower(RawScript) {
			return fmt.Errorf("language %q: script[%d] name %q: %w", l.Name, i, s.Name, ErrInvalidLanguage)
		}
		if seen[key] {
			return fmt.Errorf("language %q: duplicate script %q: %w", l.Name, s.Name, ErrInvalidLanguage)
		}
		seen[key] = true
	}
	return nil
}

// Script looks a script up by case-insensitive name. The empty name selects
// the first script (Raw when there is none) and "raw" always resolves to
// the identity script.
func (l *Language) Script(name string) (Script, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		if len(l.Scripts) > 0 {
			return l.Scripts[0], nil
		}
		return Script{Name: RawScript}, nil
	}
	if strings.EqualFold(name, RawScript) {
		return Script{Name: RawScript}, nil
	}
	for _, s := range l.Scripts {
		if strings.EqualFold(s.Name, name) {
			return s, nil
		}
	}
	return Script{}, fmt.Errorf("language %q: %q (have %s): %w",
		l.Name, name, strings.Join(l.ScriptNames(), ", "), ErrUnknownScript)
}

// ScriptNames lists script names in definition order followed by Raw.
func (l *Language) ScriptNames() []string {
	out := make([]string, 0, len(l.Scripts)+1)
	for _, s := range l.Scripts {
		out = append(out, s.Name)
	}
	return append(out, RawScript)
}

func (l *Language) String() string {
	if l == nil {
		return "<nil>"
	}
	return l.Name
}
