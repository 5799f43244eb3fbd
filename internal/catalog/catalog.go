// Package catalog loads the static keyword dictionaries used by every scorer:
// category registry, copywriting phrase tables, offer and price tables, and
// the keyword intent lists. All data is embedded and read-only after Load.
package catalog

import (
	"embed"

	"github.com/rotisserie/eris"
	"gopkg.in/yaml.v3"

	"github.com/sells-group/offerscore/internal/textnorm"
)

//go:embed data/*.yaml
var dataFS embed.FS

// PhraseGroup is an ordered, named list of phrases within a table.
type PhraseGroup struct {
	Name    string   `yaml:"name"`
	Phrases []string `yaml:"phrases"`
}

// WeightedSection is a named phrase table with a per-match (or per-section)
// weight attached.
type WeightedSection struct {
	Name   string        `yaml:"name"`
	Weight float64       `yaml:"weight"`
	Groups []PhraseGroup `yaml:"groups"`
}

// Theme is a flat phrase list that contributes a fixed bonus when any of its
// phrases is present.
type Theme struct {
	Name    string   `yaml:"name"`
	Weight  float64  `yaml:"weight"`
	Phrases []string `yaml:"phrases"`
}

// Community is a named group of subreddits searched for engagement signals.
type Community struct {
	Name       string   `yaml:"name"`
	Subreddits []string `yaml:"subreddits"`
}

// Category is one entry of the product category registry.
type Category struct {
	Key         string      `yaml:"key"`
	Display     string      `yaml:"display"`
	MeanCTR     float64     `yaml:"mean_ctr"`
	Aliases     []string    `yaml:"aliases"`
	SEOTerms    []string    `yaml:"seo_terms"`
	Communities []Community `yaml:"communities"`
}

// Subreddits returns all subreddits of the category, across communities.
func (c *Category) Subreddits() []string {
	var out []string
	for _, com := range c.Communities {
		out = append(out, com.Subreddits...)
	}
	return out
}

// Copywriting holds the nine copywriting phrase tables.
type Copywriting struct {
	TitleThemes      []PhraseGroup `yaml:"title_themes"`
	PainDesire       []PhraseGroup `yaml:"pain_desire"`
	ExplicitBenefits []PhraseGroup `yaml:"explicit_benefits"`
	CTA              []PhraseGroup `yaml:"cta"`
	SocialProof      []string      `yaml:"social_proof"`
	Guarantee        []string      `yaml:"guarantee"`
	Scarcity         []string      `yaml:"scarcity"`
	Narrative        []string      `yaml:"narrative"`
	PositiveEmotion  []string      `yaml:"positive_emotion"`
}

// Intent holds the keyword intent phrase lists, in classification order.
type Intent struct {
	Transactional []string `yaml:"transactional"`
	Informational []string `yaml:"informational"`
	Awareness     []string `yaml:"awareness"`
}

// Catalog is the full loaded dictionary set.
type Catalog struct {
	Categories  []Category
	Copywriting Copywriting
	Offers      []WeightedSection
	PriceValue  []WeightedSection
	PriceRange  []Theme
	Intent      Intent

	byAlias map[string]*Category
}

// Load parses the embedded dictionaries. The result is safe for concurrent
// read-only use.
func Load() (*Catalog, error) {
	c := &Catalog{}

	var cats struct {
		Categories []Category `yaml:"categories"`
	}
	if err := readYAML("data/categories.yaml", &cats); err != nil {
		return nil, err
	}
	c.Categories = cats.Categories

	if err := readYAML("data/copywriting.yaml", &c.Copywriting); err != nil {
		return nil, err
	}

	var offers struct {
		Subcriteria []WeightedSection `yaml:"subcriteria"`
	}
	if err := readYAML("data/offers.yaml", &offers); err != nil {
		return nil, err
	}
	c.Offers = offers.Subcriteria

	var pv struct {
		Subcriteria []WeightedSection `yaml:"subcriteria"`
	}
	if err := readYAML("data/pricevalue.yaml", &pv); err != nil {
		return nil, err
	}
	c.PriceValue = pv.Subcriteria

	var pr struct {
		Themes []Theme `yaml:"themes"`
	}
	if err := readYAML("data/pricerange.yaml", &pr); err != nil {
		return nil, err
	}
	c.PriceRange = pr.Themes

	if err := readYAML("data/intent.yaml", &c.Intent); err != nil {
		return nil, err
	}

	c.byAlias = make(map[string]*Category)
	for i := range c.Categories {
		cat := &c.Categories[i]
		c.byAlias[textnorm.Normalize(cat.Key)] = cat
		c.byAlias[textnorm.Normalize(cat.Display)] = cat
		for _, alias := range cat.Aliases {
			c.byAlias[textnorm.Normalize(alias)] = cat
		}
	}

	return c, nil
}

func readYAML(name string, out any) error {
	raw, err := dataFS.ReadFile(name)
	if err != nil {
		return eris.Wrapf(err, "catalog: read %s", name)
	}
	if err := yaml.Unmarshal(raw, out); err != nil {
		return eris.Wrapf(err, "catalog: parse %s", name)
	}
	return nil
}

// Resolve maps a caller-supplied category name to its canonical Category.
// Matching is case- and accent-insensitive and accepts subcategory aliases.
func (c *Catalog) Resolve(name string) (*Category, bool) {
	cat, ok := c.byAlias[textnorm.Normalize(name)]
	return cat, ok
}
