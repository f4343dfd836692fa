package career

import (
	"strings"

	"github.com/Abraxas-365/counsel/pkg/kernel"
)

// Course is a reference to an online course for a career domain.
type Course struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

// Domain is one career field in the catalog. Keywords are stored in
// normalized token form so they live in the same space as normalized
// profile text.
type Domain struct {
	Label       kernel.DomainLabel `json:"label"`
	Keywords    []string           `json:"keywords"`
	Description string             `json:"description"`
	Courses     []Course           `json:"courses"`
}

// KeywordText returns the space-joined keyword document used for scoring.
func (d Domain) KeywordText() string {
	return strings.Join(d.Keywords, " ")
}

// Catalog is the immutable set of career domains. It is built once at
// process start and shared read-only across all sessions; declaration
// order is preserved and is the tie-break order for scoring.
type Catalog struct {
	domains []Domain
	index   map[kernel.DomainLabel]int
}

// TokenNormalizer is the slice of the text pipeline the catalog needs to
// bring raw keyword strings into normalized form.
type TokenNormalizer interface {
	Normalize(text string) []string
}

// NewCatalog validates and builds a catalog from domain definitions.
// Keyword strings are normalized through the same pipeline as profile
// text; multi-word keywords contribute one token each.
func NewCatalog(definitions []Domain, norm TokenNormalizer) (*Catalog, error) {
	if len(definitions) == 0 {
		return nil, ErrInvalidCatalog().WithDetail("reason", "no domains defined")
	}

	c := &Catalog{
		domains: make([]Domain, 0, len(definitions)),
		index:   make(map[kernel.DomainLabel]int, len(definitions)),
	}

	for _, def := range definitions {
		if def.Label.IsEmpty() {
			return nil, ErrInvalidCatalog().WithDetail("reason", "empty domain label")
		}
		if _, exists := c.index[def.Label]; exists {
			return nil, ErrInvalidCatalog().
				WithDetail("reason", "duplicate domain label").
				WithDetail("label", def.Label)
		}

		var keywords []string
		for _, kw := range def.Keywords {
			keywords = append(keywords, norm.Normalize(kw)...)
		}
		if len(keywords) == 0 {
			return nil, ErrInvalidCatalog().
				WithDetail("reason", "domain has no usable keywords").
				WithDetail("label", def.Label)
		}

		c.index[def.Label] = len(c.domains)
		c.domains = append(c.domains, Domain{
			Label:       def.Label,
			Keywords:    keywords,
			Description: def.Description,
			Courses:     def.Courses,
		})
	}

	return c, nil
}

// Domains returns the domains in declaration order.
func (c *Catalog) Domains() []Domain {
	return c.domains
}

// Get looks up a domain by label.
func (c *Catalog) Get(label kernel.DomainLabel) (Domain, bool) {
	i, ok := c.index[label]
	if !ok {
		return Domain{}, false
	}
	return c.domains[i], true
}

// Contains reports whether the label is a valid catalog entry.
func (c *Catalog) Contains(label kernel.DomainLabel) bool {
	_, ok := c.index[label]
	return ok
}

// Len returns the number of domains.
func (c *Catalog) Len() int {
	return len(c.domains)
}
