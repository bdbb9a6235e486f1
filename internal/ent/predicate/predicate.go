// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Draft is the predicate function for draft builders.
type Draft func(*sql.Selector)

// SummaryCache is the predicate function for summarycache builders.
type SummaryCache func(*sql.Selector)

// TriageRun is the predicate function for triagerun builders.
type TriageRun func(*sql.Selector)
