package catalog

import (
	"sort"
	"strings"

	"go-firestore-catalog/internal/model"
)

const (
	MaxRelated = 3

	brandBonus       = 10
	containmentBonus = 5
	sharedWordBonus  = 2
)

var DefaultBrandTokens = []string{"macbook", "dell", "hp", "lenovo", "asus", "acer"}

type Ranker struct {
	brandTokens []string
}

// NewRanker uses DefaultBrandTokens when tokens is empty.
func NewRanker(tokens []string) Ranker {
	normalized := make([]string, 0, len(tokens))
	for _, t := range tokens {
		if t = strings.ToLower(strings.TrimSpace(t)); t != "" {
			normalized = append(normalized, t)
		}
	}
	if len(normalized) == 0 {
		normalized = append(normalized, DefaultBrandTokens...)
	}
	return Ranker{brandTokens: normalized}
}

// Related returns up to MaxRelated products of the reference's category, best match first.
func (r Ranker) Related(ref model.Product, catalog []model.Product) []model.Product {
	candidates := make([]model.Product, 0)
	for _, p := range catalog {
		if p.Id != ref.Id && strings.EqualFold(p.Category, ref.Category) {
			candidates = append(candidates, p)
		}
	}

	if len(candidates) <= MaxRelated {
		return candidates
	}

	type scored struct {
		product model.Product
		score   int
	}

	ranked := make([]scored, 0, len(candidates))
	for _, c := range candidates {
		ranked = append(ranked, scored{product: c, score: r.Score(ref.Name, c.Name)})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].score > ranked[j].score
	})

	related := make([]model.Product, 0, MaxRelated)
	for _, s := range ranked[:MaxRelated] {
		related = append(related, s.product)
	}
	return related
}

// Score rates how similar the candidate name is to the reference name.
func (r Ranker) Score(refName, candidateName string) int {
	ref := strings.ToLower(refName)
	candidate := strings.ToLower(candidateName)

	score := 0
	for _, token := range r.brandTokens {
		if strings.Contains(ref, token) && strings.Contains(candidate, token) {
			score += brandBonus
		}
	}

	if strings.Contains(ref, candidate) || strings.Contains(candidate, ref) {
		score += containmentBonus
	}

	refWords := make(map[string]struct{})
	for _, w := range strings.Fields(ref) {
		refWords[w] = struct{}{}
	}
	for _, w := range strings.Fields(candidate) {
		if _, ok := refWords[w]; ok {
			score += sharedWordBonus
		}
	}

	return score
}
