// SPDX-License-Identifier: MIT
// Package: genling/grammarfile
//
// document.go — the YAML shape of a definition.

package grammarfile

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/genling/grammar"
)

type document struct {
	Name    string                       `yaml:"name"`
	Stem    stemDoc                      `yaml:"stem"`
	Tables  map[string]map[string]string `yaml:"tables"`
	Shared  map[string][]replacementDoc  `yaml:"shared"`
	Scripts []scriptDoc                  `yaml:"scripts"`
}

type stemDoc struct {
	Balance   []float64     `yaml:"balance"`
	Prefix    string        `yaml:"prefix"`
	Infix     string        `yaml:"infix"`
	Suffix    string        `yaml:"suffix"`
	Budget    *budgetDoc    `yaml:"budget"`
	Syllables []syllableDoc `yaml:"syllables"`
	Filters   []filterDoc   `yaml:"filters"`
}

type budgetDoc struct {
	Attempts int    `yaml:"attempts"`
	Timeout  string `yaml:"timeout"`
}

type syllableDoc struct {
	Position positionDoc  `yaml:"position"`
	Weight   *float64     `yaml:"weight"`
	Prefix   string       `yaml:"prefix"`
	Infix    string       `yaml:"infix"`
	Suffix   string       `yaml:"suffix"`
	Segments []segmentDoc `yaml:"segments"`
}

type segmentDoc struct {
	Prefix   string       `yaml:"prefix"`
	Suffix   string       `yaml:"suffix"`
	Phonemes []phonemeDoc `yaml:"phonemes"`
}

type filterDoc struct {
	Match    string   `yaml:"match"`
	Chance   *float64 `yaml:"chance"`
	Contains string   `yaml:"contains"`
}

type scriptDoc struct {
	Name         string           `yaml:"name"`
	Tag          string           `yaml:"tag"`
	Normalize    string           `yaml:"normalize"`
	Replacements []replacementDoc `yaml:"replacements"`
}

type replacementDoc struct {
	Pattern string   `yaml:"pattern"`
	Literal string   `yaml:"literal"`
	With    *string  `yaml:"with"`
	Table   string   `yaml:"table"`
	Include string   `yaml:"include"`
	Chance  *float64 `yaml:"chance"`
}

// positionDoc accepts null (anywhere), an index, or a [min, max] pair.
type positionDoc struct {
	grammar.Position
}

func (p *positionDoc) UnmarshalYAML(n *yaml.Node) error {
	switch n.Kind {
	case yaml.ScalarNode:
		var i int
		if err := n.Decode(&i); err != nil {
			return fmt.Errorf("line %d: position: %w", n.Line, err)
		}
		p.Position = grammar.At(i)
		return nil
	case yaml.SequenceNode:
		var r []int
		if err := n.Decode(&r); err != nil {
			return fmt.Errorf("line %d: position: %w", n.Line, err)
		}
		if len(r) != 2 {
			return fmt.Errorf("line %d: position range needs [min, max], got %d values", n.Line, len(r))
		}
		p.Position = grammar.Between(r[0], r[1])
		return nil
	default:
		return fmt.Errorf("line %d: position must be null, an index or [min, max]", n.Line)
	}
}

// phonemeDoc accepts "g", ["g"], ["g", w] or {grapheme: g, weight: w}.
type phonemeDoc struct {
	Grapheme string
	Weight   float64
}

func (p *phonemeDoc) UnmarshalYAML(n *yaml.Node) error {
	switch n.Kind {
	case yaml.ScalarNode:
		p.Weight = grammar.DefaultWeight
		return n.Decode(&p.Grapheme)
	case yaml.SequenceNode:
		if len(n.Content) == 0 || len(n.Content) > 2 {
			return fmt.Errorf("line %d: phoneme must be [grapheme] or [grapheme, weight]", n.Line)
		}
		if err := n.Content[0].Decode(&p.Grapheme); err != nil {
			return fmt.Errorf("line %d: phoneme grapheme: %w", n.Line, err)
		}
		p.Weight = grammar.DefaultWeight
		if len(n.Content) == 2 {
			if err := n.Content[1].Decode(&p.Weight); err != nil {
				return fmt.Errorf("line %d: phoneme weight: %w", n.Line, err)
			}
		}
		return nil
	case yaml.MappingNode:
		var m struct {
			Grapheme string   `yaml:"grapheme"`
			Weight   *float64 `yaml:"weight"`
		}
		if err := n.Decode(&m); err != nil {
			return fmt.Errorf("line %d: phoneme: %w", n.Line, err)
		}
		p.Grapheme, p.Weight = m.Grapheme, grammar.DefaultWeight
		if m.Weight != nil {
			p.Weight = *m.Weight
		}
		return nil
	default:
		return fmt.Errorf("line %d: unsupported phoneme form", n.Line)
	}
}
