// SPDX-License-Identifier: MIT
// Package: genling/grammarfile
//
// grammarfile.go — building a lexicon.Language from a decoded document.

package grammarfile

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"regexp"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/genling/grammar"
	"github.com/katalvlaran/genling/lexicon"
	"github.com/katalvlaran/genling/stem"
	"github.com/katalvlaran/genling/word"
)

// Load reads and decodes path from fsys.
func Load(fsys fs.FS, path string) (*lexicon.Language, error) {
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("grammarfile: load %s: %w", path, err)
	}
	l, err := Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return l, nil
}

// Decode parses one YAML definition.
func Decode(r io.Reader) (*lexicon.Language, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc document
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("empty document: %w", ErrInvalidDefinition)
		}
		return nil, fmt.Errorf("%w: %w", ErrInvalidDefinition, err)
	}
	return doc.build()
}

func (d *document) build() (*lexicon.Language, error) {
	name := strings.TrimSpace(d.Name)
	if name == "" {
		return nil, invalid("name", "must not be empty")
	}

	s, err := d.Stem.build()
	if err != nil {
		return nil, fmt.Errorf("language %q: %w", name, err)
	}

	lang := &lexicon.Language{Name: name, Stem: s}
	for i, sd := range d.Scripts {
		script, err := d.buildScript(sd)
		if err != nil {
			return nil, fmt.Errorf("language %q: scripts[%d]: %w", name, i, err)
		}
		lang.Scripts = append(lang.Scripts, script)
	}
	if err := lang.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDefinition, err)
	}
	return lang, nil
}

func (sd *stemDoc) build() (*stem.Stem, error) {
	if len(sd.Syllables) == 0 {
		return nil, invalid("stem.syllables", "must not be empty")
	}
	syllables := make([]grammar.Syllable, 0, len(sd.Syllables))
	for i, syl := range sd.Syllables {
		built, err := syl.build()
		if err != nil {
			return nil, fmt.Errorf("stem.syllables[%d]: %w", i, err)
		}
		syllables = append(syllables, built)
	}

	var opts []stem.Option
	if len(sd.Balance) > 0 {
		for _, w := range sd.Balance {
			if w < 0 {
				return nil, invalid("stem.balance", fmt.Sprintf("negative weight in %v", sd.Balance))
			}
		}
		opts = append(opts, stem.WithBalance(sd.Balance...))
	}
	opts = append(opts, stem.WithAffixes(sd.Prefix, sd.Infix, sd.Suffix))

	if sd.Budget != nil {
		b, err := sd.Budget.build()
		if err != nil {
			return nil, err
		}
		opts = append(opts, stem.WithBudget(b))
	}

	filters := make([]stem.Filter, 0, len(sd.Filters))
	for i, fd := range sd.Filters {
		f, err := fd.build()
		if err != nil {
			return nil, fmt.Errorf("stem.filters[%d]: %w", i, err)
		}
		filters = append(filters, f)
	}
	opts = append(opts, stem.WithFilters(filters...))

	s, err := stem.New(syllables, opts...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDefinition, err)
	}
	return s, nil
}

func (bd *budgetDoc) build() (stem.Budget, error) {
	b := stem.Budget{MaxAttempts: bd.Attempts}
	if bd.Timeout != "" {
		d, err := time.ParseDuration(bd.Timeout)
		if err != nil {
			return stem.Budget{}, fmt.Errorf("stem.budget.timeout: %w: %w", ErrInvalidDefinition, err)
		}
		b.Timeout = d
	}
	if err := b.Validate(); err != nil {
		return stem.Budget{}, fmt.Errorf("stem.budget: %w: %w", ErrInvalidDefinition, err)
	}
	return b, nil
}

func (sd *syllableDoc) build() (grammar.Syllable, error) {
	if len(sd.Segments) == 0 {
		return grammar.Syllable{}, invalid("segments", "must not be empty")
	}
	segments := make([]grammar.Segment, 0, len(sd.Segments))
	for i, seg := range sd.Segments {
		phonemes := make([]grammar.Phoneme, 0, len(seg.Phonemes))
		for _, p := range seg.Phonemes {
			phonemes = append(phonemes, grammar.Phoneme{Grapheme: p.Grapheme, Weight: p.Weight})
		}
		built := grammar.NewSegment(phonemes, grammar.WithSegmentAffixes(seg.Prefix, seg.Suffix))
		if err := built.Validate(); err != nil {
			return grammar.Syllable{}, fmt.Errorf("segments[%d]: %w: %w", i, ErrInvalidDefinition, err)
		}
		segments = append(segments, built)
	}

	opts := []grammar.SyllableOption{
		grammar.WithPosition(sd.Position.Position),
		grammar.WithAffixes(sd.Prefix, sd.Infix, sd.Suffix),
	}
	if sd.Weight != nil {
		if *sd.Weight < 0 {
			return grammar.Syllable{}, invalid("weight", fmt.Sprintf("%g must be ≥ 0", *sd.Weight))
		}
		opts = append(opts, grammar.WithWeight(*sd.Weight))
	}
	return grammar.NewSyllable(segments, opts...), nil
}

func (fd *filterDoc) build() (stem.Filter, error) {
	switch {
	case fd.Match != "" && fd.Contains != "":
		return stem.Filter{}, invalid("filter", "match and contains are exclusive")
	case fd.Contains != "":
		if fd.Chance != nil {
			return stem.Filter{}, invalid("filter", "chance applies to match filters only")
		}
		return stem.Contains(fd.Contains), nil
	case fd.Match != "":
		re, err := compile(fd.Match)
		if err != nil {
			return stem.Filter{}, err
		}
		if fd.Chance == nil {
			return stem.Match(re), nil
		}
		if !(*fd.Chance >= 0 && *fd.Chance <= 1) {
			return stem.Filter{}, invalid("filter.chance", fmt.Sprintf("%g must be in [0,1]", *fd.Chance))
		}
		return stem.Chance(re, *fd.Chance), nil
	default:
		return stem.Filter{}, invalid("filter", "needs match or contains")
	}
}

func (d *document) buildScript(sd scriptDoc) (lexicon.Script, error) {
	if strings.TrimSpace(sd.Name) == "" {
		return lexicon.Script{}, invalid("name", "must not be empty")
	}
	tag := language.Und
	if sd.Tag != "" {
		t, err := language.Parse(sd.Tag)
		if err != nil {
			return lexicon.Script{}, fmt.Errorf("tag %q: %w: %w", sd.Tag, ErrInvalidDefinition, err)
		}
		tag = t
	}

	var opts []word.Option
	if sd.Normalize != "" {
		form, err := normForm(sd.Normalize)
		if err != nil {
			return lexicon.Script{}, err
		}
		opts = append(opts, word.WithNormalization(form))
	}

	reps, err := d.replacements(sd.Replacements, nil)
	if err != nil {
		return lexicon.Script{}, err
	}
	return lexicon.Script{Name: sd.Name, Tag: tag, Word: word.New(reps, opts...)}, nil
}

// replacements expands a list, splicing shared lists for include entries.
// including guards against include cycles.
func (d *document) replacements(docs []replacementDoc, including []string) ([]word.Replacement, error) {
	var out []word.Replacement
	for i, rd := range docs {
		if rd.Include != "" {
			if rd.Pattern != "" || rd.Literal != "" || rd.With != nil || rd.Table != "" || rd.Chance != nil {
				return nil, invalid(fmt.Sprintf("replacements[%d]", i), "include takes no other keys")
			}
			for _, name := range including {
				if name == rd.Include {
					return nil, invalid(fmt.Sprintf("replacements[%d]", i), "include cycle through "+rd.Include)
				}
			}
			shared, ok := d.Shared[rd.Include]
			if !ok {
				return nil, invalid(fmt.Sprintf("replacements[%d]", i), "unknown shared list "+rd.Include)
			}
			expanded, err := d.replacements(shared, append(including, rd.Include))
			if err != nil {
				return nil, fmt.Errorf("include %s: %w", rd.Include, err)
			}
			out = append(out, expanded...)
			continue
		}

		r, err := d.replacement(rd)
		if err != nil {
			return nil, fmt.Errorf("replacements[%d]: %w", i, err)
		}
		out = append(out, r)
	}
	return out, nil
}

func (d *document) replacement(rd replacementDoc) (word.Replacement, error) {
	var r word.Replacement
	switch {
	case rd.Pattern != "" && rd.Literal != "":
		return r, invalid("replacement", "pattern and literal are exclusive")
	case rd.Pattern != "":
		re, err := compile(rd.Pattern)
		if err != nil {
			return r, err
		}
		switch {
		case rd.Table != "" && rd.With != nil:
			return r, invalid("replacement", "with and table are exclusive")
		case rd.Table != "":
			table, ok := d.Tables[rd.Table]
			if !ok {
				return r, invalid("replacement", "unknown table "+rd.Table)
			}
			r = word.Table(re, table)
		case rd.With != nil:
			r = word.Pattern(re, *rd.With)
		default:
			return r, invalid("replacement", "pattern needs with or table")
		}
	case rd.Literal != "":
		if rd.With == nil || rd.Table != "" {
			return r, invalid("replacement", "literal needs with")
		}
		r = word.Literal(rd.Literal, *rd.With)
	default:
		return r, invalid("replacement", "needs pattern, literal or include")
	}

	if rd.Chance != nil {
		if !(*rd.Chance >= 0 && *rd.Chance <= 1) {
			return r, invalid("replacement.chance", fmt.Sprintf("%g must be in [0,1]", *rd.Chance))
		}
		r = r.WithChance(*rd.Chance)
	}
	return r, nil
}

func compile(expr string) (*regexp.Regexp, error) {
	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, fmt.Errorf("pattern %q: %w: %w", expr, ErrInvalidDefinition, err)
	}
	return re, nil
}

func normForm(name string) (norm.Form, error) {
	switch strings.ToUpper(name) {
	case "NFC":
		return norm.NFC, nil
	case "NFD":
		return norm.NFD, nil
	case "NFKC":
		return norm.NFKC, nil
	case "NFKD":
		return norm.NFKD, nil
	default:
		return 0, invalid("normalize", fmt.Sprintf("unknown form %q", name))
	}
}

func invalid(field, msg string) error {
	return fmt.Errorf("%s: %s: %w", field, msg, ErrInvalidDefinition)
}
