package image

import (
	"fmt"
	"hash/fnv"
	"net/url"
)

const placeholderBase = "https://picsum.photos"

// Placeholders produces deterministic stand-in candidates for a query. The
// seed is derived from the query and index, so repeated calls with the same
// inputs yield the same URLs.
func Placeholders(query string, n int) []Candidate {
	if n <= 0 {
		return nil
	}
	candidates := make([]Candidate, 0, n)
	for i := 0; i < n; i++ {
		seed := placeholderSeed(query, i)
		candidates = append(candidates, Candidate{
			ID: fmt.Sprintf("placeholder-%s", seed),
			URLs: URLSet{
				Thumb:   seedURL(seed, 200, 200),
				Small:   seedURL(seed, 400, 400),
				Regular: seedURL(seed, 800, 800),
				Full:    seedURL(seed, 1200, 1200),
			},
			Alt:            fmt.Sprintf("Imagem ilustrativa para %s", query),
			Attribution:    Attribution{Name: "Lorem Picsum", Username: "picsum"},
			Source:         SourcePlaceholder,
			RelevanceScore: sourceScores[SourcePlaceholder],
			PageURL:        placeholderBase,
		})
	}
	return candidates
}

func placeholderSeed(query string, i int) string {
	h := fnv.New32a()
	fmt.Fprintf(h, "%s:%d", query, i)
	return fmt.Sprintf("%08x", h.Sum32())
}

func seedURL(seed string, w, h int) string {
	return fmt.Sprintf("%s/seed/%s/%d/%d", placeholderBase, url.PathEscape(seed), w, h)
}
