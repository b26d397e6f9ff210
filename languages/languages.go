// SPDX-License-Identifier: MIT
// Package: genling/languages

// Package languages ships the built-in grammars as embedded YAML
// definitions (see package grammarfile) and looks them up by name.
package languages

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"sort"
	"strings"
	"sync"

	"github.com/katalvlaran/genling/grammarfile"
	"github.com/katalvlaran/genling/lexicon"
)

// FS holds the built-in definitions.
//
//go:embed *.yaml
var FS embed.FS

// ErrUnknownLanguage is returned by Lookup for names no definition carries.
var ErrUnknownLanguage = errors.New("languages: unknown language")

// order lists the built-ins the way menus show them.
var order = []string{"conlang.yaml", "japanese.yaml"}

var loadAll = sync.OnceValues(func() ([]*lexicon.Language, error) {
	return LoadDir(FS, ".", order...)
})

// All returns the built-in languages. Definitions are decoded once; the
// returned languages are shared and must not be modified.
func All() ([]*lexicon.Language, error) {
	langs, err := loadAll()
	if err != nil {
		return nil, err
	}
	return append([]*lexicon.Language(nil), langs...), nil
}

// Lookup finds a built-in language by case-insensitive name.
func Lookup(name string) (*lexicon.Language, error) {
	langs, err := loadAll()
	if err != nil {
		return nil, err
	}
	return Find(langs, name)
}

// Names lists the built-in language names.
func Names() []string {
	langs, err := loadAll()
	if err != nil {
		return nil
	}
	out := make([]string, len(langs))
	for i, l := range langs {
		out[i] = l.Name
	}
	return out
}

// Find picks a language by case-insensitive name from langs.
func Find(langs []*lexicon.Language, name string) (*lexicon.Language, error) {
	for _, l := range langs {
		if strings.EqualFold(l.Name, strings.TrimSpace(name)) {
			return l, nil
		}
	}
	names := make([]string, len(langs))
	for i, l := range langs {
		names[i] = l.Name
	}
	return nil, fmt.Errorf("%q (have %s): %w", name, strings.Join(names, ", "), ErrUnknownLanguage)
}

// LoadDir decodes the named files under dir, or every *.yaml file in
// lexical order when no names are given. Duplicate language names are an
// error.
func LoadDir(fsys fs.FS, dir string, names ...string) ([]*lexicon.Language, error) {
	var paths []string
	if len(names) == 0 {
		matches, err := fs.Glob(fsys, joinPath(dir, "*.yaml"))
		if err != nil {
			return nil, fmt.Errorf("languages: %w", err)
		}
		sort.Strings(matches)
		paths = matches
	} else {
		for _, n := range names {
			paths = append(paths, joinPath(dir, n))
		}
	}

	out := make([]*lexicon.Language, 0, len(paths))
	seen := make(map[string]string, len(paths))
	for _, path := range paths {
		l, err := grammarfile.Load(fsys, path)
		if err != nil {
			return nil, fmt.Errorf("languages: %w", err)
		}
		key := strings.ToLower(l.Name)
		if prev, dup := seen[key]; dup {
			return nil, fmt.Errorf("languages: %s and %s both define %q: %w", prev, path, l.Name, grammarfile.ErrInvalidDefinition)
		}
		seen[key] = path
		out = append(out, l)
	}
	return out, nil
}

func joinPath(dir, name string) string {
	if dir == "" || dir == "." {
		return name
	}
	return strings.TrimSuffix(dir, "/") + "/" + name
}
