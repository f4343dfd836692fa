package career

import (
	"math"
	"sort"

	"github.com/Abraxas-365/counsel/pkg/kernel"
)

// ScoredDomain pairs a domain with its similarity to a profile. Produced
// fresh on every scoring request, never persisted.
type ScoredDomain struct {
	Label kernel.DomainLabel `json:"label"`
	Score kernel.Similarity  `json:"score"`
}

// Recommendation is the outcome of scoring a profile against the catalog.
type Recommendation struct {
	Ranked []ScoredDomain `json:"ranked"`
	Best   Domain         `json:"best"`
}

// Score ranks every catalog domain against the normalized profile tokens
// and selects the best match.
//
// Each domain is compared independently: the vocabulary of the tf-idf
// vectors is scoped to the two documents being compared (profile vs. that
// domain's keywords), not the whole catalog. Ties on the maximum score,
// including the all-zero case, resolve to the domain declared first.
func (c *Catalog) Score(profileTokens []string) (*Recommendation, error) {
	if len(profileTokens) == 0 {
		return nil, ErrInsufficientProfile()
	}

	ranked := make([]ScoredDomain, 0, len(c.domains))
	for _, d := range c.domains {
		ranked = append(ranked, ScoredDomain{
			Label: d.Label,
			Score: kernel.Similarity(tfidfCosine(profileTokens, d.Keywords)),
		})
	}

	// Stable sort keeps declaration order among equal scores.
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})

	best, _ := c.Get(ranked[0].Label)
	return &Recommendation{Ranked: ranked, Best: best}, nil
}

// tfidfCosine computes the cosine similarity between two token documents
// using tf-idf weights over their joint two-document vocabulary. IDF is
// smoothed (ln((1+n)/(1+df))+1 with n=2) and vectors are l2-normalized,
// so the result is in [0,1] and a document scores 1 against itself.
func tfidfCosine(docA, docB []string) float64 {
	if len(docA) == 0 || len(docB) == 0 {
		return 0
	}

	vocab := make(map[string]int)
	addTerms := func(doc []string) {
		for _, t := range doc {
			if _, ok := vocab[t]; !ok {
				vocab[t] = len(vocab)
			}
		}
	}
	addTerms(docA)
	addTerms(docB)

	countVector := func(doc []string) []float64 {
		tf := make([]float64, len(vocab))
		for _, t := range doc {
			tf[vocab[t]]++
		}
		return tf
	}
	tfA := countVector(docA)
	tfB := countVector(docB)

	// Weight, then l2-normalize both vectors.
	const nDocs = 2
	for i := range tfA {
		df := 0.0
		if tfA[i] > 0 {
			df++
		}
		if tfB[i] > 0 {
			df++
		}
		idf := math.Log((1+nDocs)/(1+df)) + 1
		tfA[i] *= idf
		tfB[i] *= idf
	}
	normalize(tfA)
	normalize(tfB)

	dot := 0.0
	for i := range tfA {
		dot += tfA[i] * tfB[i]
	}
	// Clamp float noise so callers can rely on the [0,1] range.
	if dot > 1 {
		dot = 1
	}
	if dot < 0 {
		dot = 0
	}
	return dot
}

func normalize(v []float64) {
	sum := 0.0
	for _, x := range v {
		sum += x * x
	}
	if sum == 0 {
		return
	}
	norm := math.Sqrt(sum)
	for i := range v {
		v[i] /= norm
	}
}
