package dataset

import "sort"

// Quality is the data-quality report for one load. None of these conditions
// abort the pipeline; they exist so operators can audit the zero-fallback
// coercion policy and grow the alias table instead of discovering problems in
// a rendered chart.
type Quality struct {
	// CoercionFailures counts cells that fell back to zero, per dataset and column.
	CoercionFailures map[string]map[string]int `json:"coercion_failures,omitempty"`
	// UnmappedNames lists raw region names that were title-cased without an
	// alias-table hit, per dataset. Distinct from MissingNames: these rows
	// have a name, just not one the alias table knows about.
	UnmappedNames map[string][]string `json:"unmapped_names,omitempty"`
	// MissingNames counts rows whose name cell was empty and became Unknown.
	MissingNames map[string]int `json:"missing_names,omitempty"`
}

func newQuality() *Quality {
	return &Quality{
		CoercionFailures: make(map[string]map[string]int),
		UnmappedNames:    make(map[string][]string),
		MissingNames:     make(map[string]int),
	}
}

func (q *Quality) recordCoercionFailure(dataset, column string) {
	cols := q.CoercionFailures[dataset]
	if cols == nil {
		cols = make(map[string]int)
		q.CoercionFailures[dataset] = cols
	}
	cols[column]++
}

func (q *Quality) recordUnmappedName(dataset, raw string) {
	for _, existing := range q.UnmappedNames[dataset] {
		if existing == raw {
			return
		}
	}
	q.UnmappedNames[dataset] = append(q.UnmappedNames[dataset], raw)
}

func (q *Quality) recordMissingName(dataset string) {
	q.MissingNames[dataset]++
}

// finalize sorts the unmapped-name lists so the report is deterministic.
func (q *Quality) finalize() {
	for _, names := range q.UnmappedNames {
		sort.Strings(names)
	}
}
