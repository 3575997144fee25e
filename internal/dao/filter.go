package dao

import "gorm.io/gorm"

// Sort modes recognized by PerfumeFilter. Anything else leaves the result in
// store-default order.
const (
	SortByLike   = "like"
	SortByRecent = "recent"
	SortByRandom = "random"
)

// likeCountSubquery counts perfume endorsements live at query time. The count
// is never materialized, so it can not go stale.
const likeCountSubquery = "(SELECT count(*) FROM like_perfumes lp WHERE lp.perfume_id = perfumes.id)"

// PerfumeFilter describes optional search criteria over the perfume catalog.
// Filter groups combine with AND; the values inside one group combine with OR.
type PerfumeFilter struct {
	Series   []string
	Brands   []string
	Keywords []string
	SortBy   string
}

// inPredicate is one conjunct: field must match one of the bound values.
type inPredicate struct {
	field  string
	values []string
}

// predicates lowers the filter groups into a conjunct list. Keyword filtering
// is recognized but not lowered yet; its presence must not disturb the other
// groups.
func (f PerfumeFilter) predicates() []inPredicate {
	var preds []inPredicate
	if len(f.Series) > 0 {
		preds = append(preds, inPredicate{field: "series.name", values: f.Series})
	}
	if len(f.Brands) > 0 {
		preds = append(preds, inPredicate{field: "brands.name", values: f.Brands})
	}
	return preds
}

// apply attaches WHERE and ORDER BY clauses to the catalog query. Field names
// come from the fixed predicate list above; user-supplied values are always
// bound parameters.
func (f PerfumeFilter) apply(query *gorm.DB) *gorm.DB {
	for _, pred := range f.predicates() {
		query = query.Where(pred.field+" IN ?", pred.values)
	}

	switch f.SortBy {
	case SortByLike:
		query = query.Order("like_cnt DESC")
	case SortByRecent:
		query = query.Order("perfumes.created_at DESC")
	case SortByRandom:
		query = query.Order("RANDOM()")
	}
	return query
}
