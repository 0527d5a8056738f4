// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Comment is the predicate function for comment builders.
type Comment func(*sql.Selector)

// User is the predicate function for user builders.
type User func(*sql.Selector)

// Work is the predicate function for work builders.
type Work func(*sql.Selector)

// WorkProposal is the predicate function for workproposal builders.
type WorkProposal func(*sql.Selector)

// WorkStar is the predicate function for workstar builders.
type WorkStar func(*sql.Selector)

// WorkVersion is the predicate function for workversion builders.
type WorkVersion func(*sql.Selector)
