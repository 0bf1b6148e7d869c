package catalog

// Progress counts entries by status.
type Progress struct {
	Complete int
	Planned  int
}

// Total returns the number of entries counted.
func (p Progress) Total() int {
	return p.Complete + p.Planned
}

// Ratio returns the complete fraction in [0, 1]. An empty category is 0.
func (p Progress) Ratio() float64 {
	if p.Total() == 0 {
		return 0
	}
	return float64(p.Complete) / float64(p.Total())
}

// Completeness maps every category to its progress. All three categories
// are always present.
type Completeness map[Category]Progress

// Overall sums progress across categories.
func (c Completeness) Overall() Progress {
	var total Progress
	for _, p := range c {
		total.Complete += p.Complete
		total.Planned += p.Planned
	}
	return total
}

// Completeness counts complete and planned entries per category.
func (c *Catalog) Completeness() Completeness {
	out := make(Completeness, numCategories)
	for _, category := range Categories() {
		var p Progress
		for _, e := range c.entries[category] {
			if e.Status == StatusComplete {
				p.Complete++
			} else {
				p.Planned++
			}
		}
		out[category] = p
	}
	return out
}
