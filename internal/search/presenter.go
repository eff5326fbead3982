package search

// groupOrder fixes both the set of displayed categories and their order.
// Results of any other document type are dropped.
var groupOrder = []struct {
	Label string
	Type  DocType
}{
	{Label: "Pages", Type: TypePage},
	{Label: "FAQ", Type: TypeFaq},
}

// Group buckets ranked results into the fixed display categories,
// preserving rank order inside each group. Both groups are always
// present, possibly empty. Any per-group display cap is the caller's
// presentation policy, not part of ranking.
func (idx *Index) Group(results []QueryResult) []ResultGroup {
	groups := make([]ResultGroup, 0, len(groupOrder))
	for _, g := range groupOrder {
		items := make([]QueryResult, 0)
		for _, res := range results {
			doc, ok := idx.Documents[res.Ref]
			if ok && doc.Type == g.Type {
				items = append(items, res)
			}
		}
		groups = append(groups, ResultGroup{Label: g.Label, Items: items})
	}
	return groups
}
