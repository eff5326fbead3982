package search

import (
	"sort"
	"strings"
)

// Field weights for the per-needle scoring pass.
const (
	titleBonus   = 6
	summaryBonus = 3
	bodyBonus    = 1
	tagBonus     = 4

	// wholeQueryCap caps the bonus for the full query appearing in the
	// combined projection.
	wholeQueryCap = 10

	// fallbackScore marks hits surfaced by the title-only rescue pass.
	fallbackScore = 0.1
)

// Search scores every indexed document against the query and returns the
// ranked hits. A blank query or an empty index yields no results. Ties on
// score are broken by ascending ref so the ordering is reproducible.
func (idx *Index) Search(query string) []QueryResult {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" || len(idx.Records) == 0 {
		return nil
	}

	needles := Needles(q)
	wholeBonus := float64(2 + len(q))
	if wholeBonus > wholeQueryCap {
		wholeBonus = wholeQueryCap
	}

	var results []QueryResult
	for ref, rec := range idx.Records {
		score := scoreRecord(rec, q, needles, wholeBonus)
		if score > 0 {
			results = append(results, QueryResult{Ref: ref, Score: score})
		}
	}

	// Rescue pass: a query can defeat every scoring needle (single-letter
	// tokens, for instance) while still naming a document. Surface any
	// title containing the whole query so it is never invisible.
	if len(results) == 0 {
		for ref, rec := range idx.Records {
			if strings.Contains(rec.Title, q) {
				results = append(results, QueryResult{Ref: ref, Score: fallbackScore})
			}
		}
	}

	sort.Slice(results, func(i, j int) bool {
		if results[i].Score != results[j].Score {
			return results[i].Score > results[j].Score
		}
		return results[i].Ref < results[j].Ref
	})
	return results
}

func scoreRecord(rec SearchRecord, query string, needles []string, wholeBonus float64) float64 {
	var score float64
	if strings.Contains(rec.Combined, query) {
		score += wholeBonus
	}
	for _, needle := range needles {
		if strings.Contains(rec.Title, needle) {
			score += titleBonus
		}
		if strings.Contains(rec.Summary, needle) {
			score += summaryBonus
		}
		if strings.Contains(rec.Body, needle) {
			score += bodyBonus
		}
		for _, tag := range rec.Tags {
			if strings.Contains(tag, needle) {
				score += tagBonus
				break
			}
		}
	}
	return score
}
