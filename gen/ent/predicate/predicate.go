// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Account is the predicate function for account builders.
type Account func(*sql.Selector)

// Analysis is the predicate function for analysis builders.
type Analysis func(*sql.Selector)

// AnalysisDetail is the predicate function for analysisdetail builders.
type AnalysisDetail func(*sql.Selector)
