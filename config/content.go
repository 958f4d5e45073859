package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/orchead/ambient"
	"github.com/lixenwraith/orchead/detect"
	"github.com/lixenwraith/orchead/effect"
	"github.com/lixenwraith/orchead/tally"
)

// Content is the optional TOML content file
// Every table extends the built-in one
type Content struct {
	ReducedMotion *bool             `toml:"reduced_motion"`
	Phrases       map[string]string `toml:"phrases"`
	Milestones    []tally.Rule      `toml:"milestones"`
	Quotes        []string          `toml:"quotes"`
	IdleMessages  []string          `toml:"idle_messages"`
}

// LoadContent decodes the content file at path
// An empty path yields empty content; a named file that is missing is an error
func LoadContent(path string) (Content, error) {
	var c Content
	if path == "" {
		return c, nil
	}
	md, err := toml.DecodeFile(path, &c)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return c, fmt.Errorf("content file %s: %w", path, err)
		}
		return c, fmt.Errorf("parse content file %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return c, fmt.Errorf("content file %s: unknown key %q", path, undecoded[0].String())
	}
	return c, nil
}

// Validate checks every entry against reg
func (c Content) Validate(reg *effect.Registry) error {
	for phrase, id := range c.Phrases {
		if phrase == "" {
			return errors.New("phrases: empty phrase")
		}
		for _, r := range phrase {
			if !(r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z') {
				return fmt.Errorf("phrases: %q must contain only letters", phrase)
			}
		}
		if !reg.Has(effect.ID(id)) {
			return fmt.Errorf("phrases: %q names unknown effect %q", phrase, id)
		}
	}
	if _, err := tally.Compile(c.Rules(), reg); err != nil {
		return fmt.Errorf("milestones: %w", err)
	}
	return nil
}

// PhraseTable returns the built-in phrases extended by the file's
func (c Content) PhraseTable() map[string]effect.ID {
	out := make(map[string]effect.ID, len(detect.DefaultPhrases)+len(c.Phrases))
	for k, v := range detect.DefaultPhrases {
		out[k] = v
	}
	for k, v := range c.Phrases {
		out[strings.ToLower(k)] = effect.ID(v)
	}
	return out
}

// Rules returns the built-in milestones followed by the file's
func (c Content) Rules() []tally.Rule {
	return append(append([]tally.Rule{}, tally.DefaultRules...), c.Milestones...)
}

// QuotePool returns the built-in quotes followed by the file's
func (c Content) QuotePool() []string {
	return append(append([]string{}, ambient.DefaultQuotes...), c.Quotes...)
}

// IdlePool returns the built-in idle messages followed by the file's
func (c Content) IdlePool() []string {
	return append(append([]string{}, detect.DefaultIdleMessages...), c.IdleMessages...)
}

// MotionPreference returns the file's reduced-motion setting, or fallback when unset
func (c Content) MotionPreference(fallback bool) bool {
	if c.ReducedMotion == nil {
		return fallback
	}
	return *c.ReducedMotion
}
