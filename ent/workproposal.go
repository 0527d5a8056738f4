// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/muselink-c/muselink-app/ent/work"
	"github.com/muselink-c/muselink-app/ent/workproposal"
	"github.com/muselink-c/muselink-app/ent/workversion"
)

// 协作提案表
type WorkProposal struct {
	config `json:"-"`
	// ID of the ent.
	ID uint `json:"id,omitempty"`
	// 关联的作品ID
	WorkID uint `json:"work_id,omitempty"`
	// 关联的版本ID，1:1 对应
	VersionID uint `json:"version_id,omitempty"`
	// 提案发起者的用户ID
	RequesterID uint `json:"requester_id,omitempty"`
	// 提案标题
	Title string `json:"title,omitempty"`
	// 提案描述
	Description string `json:"description,omitempty"`
	// 提案状态
	Status workproposal.Status `json:"status,omitempty"`
	// 审核者的用户ID
	ReviewedBy *uint `json:"reviewed_by,omitempty"`
	// 审核时间
	ReviewedAt *time.Time `json:"reviewed_at,omitempty"`
	// 审核意见
	ReviewComment string `json:"review_comment,omitempty"`
	// 创建时间
	CreatedAt time.Time `json:"created_at,omitempty"`
	// 更新时间
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the WorkProposalQuery when eager-loading is set.
	Edges        WorkProposalEdges `json:"edges"`
	selectValues sql.SelectValues
}

// WorkProposalEdges holds the relations/edges for other nodes in the graph.
type WorkProposalEdges struct {
	// Work holds the value of the work edge.
	Work *Work `json:"work,omitempty"`
	// Version holds the value of the version edge.
	Version *WorkVersion `json:"version,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// WorkOrErr returns the Work value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e WorkProposalEdges) WorkOrErr() (*Work, error) {
	if e.Work != nil {
		return e.Work, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: work.Label}
	}
	return nil, &NotLoadedError{edge: "work"}
}

// VersionOrErr returns the Version value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e WorkProposalEdges) VersionOrErr() (*WorkVersion, error) {
	if e.Version != nil {
		return e.Version, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: workversion.Label}
	}
	return nil, &NotLoadedError{edge: "version"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*WorkProposal) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case workproposal.FieldID, workproposal.FieldWorkID, workproposal.FieldVersionID, workproposal.FieldRequesterID, workproposal.FieldReviewedBy:
			values[i] = new(sql.NullInt64)
		case workproposal.FieldTitle, workproposal.FieldDescription, workproposal.FieldStatus, workproposal.FieldReviewComment:
			values[i] = new(sql.NullString)
		case workproposal.FieldReviewedAt, workproposal.FieldCreatedAt, workproposal.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the WorkProposal fields.
func (wp *WorkProposal) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case workproposal.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			wp.ID = uint(value.Int64)
		case workproposal.FieldWorkID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field work_id", values[i])
			} else if value.Valid {
				wp.WorkID = uint(value.Int64)
			}
		case workproposal.FieldVersionID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field version_id", values[i])
			} else if value.Valid {
				wp.VersionID = uint(value.Int64)
			}
		case workproposal.FieldRequesterID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field requester_id", values[i])
			} else if value.Valid {
				wp.RequesterID = uint(value.Int64)
			}
		case workproposal.FieldTitle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field title", values[i])
			} else if value.Valid {
				wp.Title = value.String
			}
		case workproposal.FieldDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field description", values[i])
			} else if value.Valid {
				wp.Description = value.String
			}
		case workproposal.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				wp.Status = workproposal.Status(value.String)
			}
		case workproposal.FieldReviewedBy:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field reviewed_by", values[i])
			} else if value.Valid {
				wp.ReviewedBy = new(uint)
				*wp.ReviewedBy = uint(value.Int64)
			}
		case workproposal.FieldReviewedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field reviewed_at", values[i])
			} else if value.Valid {
				wp.ReviewedAt = new(time.Time)
				*wp.ReviewedAt = value.Time
			}
		case workproposal.FieldReviewComment:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field review_comment", values[i])
			} else if value.Valid {
				wp.ReviewComment = value.String
			}
		case workproposal.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				wp.CreatedAt = value.Time
			}
		case workproposal.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				wp.UpdatedAt = value.Time
			}
		default:
			wp.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the WorkProposal.
// This includes values selected through modifiers, order, etc.
func (wp *WorkProposal) Value(name string) (ent.Value, error) {
	return wp.selectValues.Get(name)
}

// QueryWork queries the "work" edge of the WorkProposal entity.
func (wp *WorkProposal) QueryWork() *WorkQuery {
	return NewWorkProposalClient(wp.config).QueryWork(wp)
}

// QueryVersion queries the "version" edge of the WorkProposal entity.
func (wp *WorkProposal) QueryVersion() *WorkVersionQuery {
	return NewWorkProposalClient(wp.config).QueryVersion(wp)
}

// Update returns a builder for updating this WorkProposal.
// Note that you need to call WorkProposal.Unwrap() before calling this method if this WorkProposal
// was returned from a transaction, and the transaction was committed or rolled back.
func (wp *WorkProposal) Update() *WorkProposalUpdateOne {
	return NewWorkProposalClient(wp.config).UpdateOne(wp)
}

// Unwrap unwraps the WorkProposal entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (wp *WorkProposal) Unwrap() *WorkProposal {
	_tx, ok := wp.config.driver.(*txDriver)
	if !ok {
		panic("ent: WorkProposal is not a transactional entity")
	}
	wp.config.driver = _tx.drv
	return wp
}

// String implements the fmt.Stringer.
func (wp *WorkProposal) String() string {
	var builder strings.Builder
	builder.WriteString("WorkProposal(")
	builder.WriteString(fmt.Sprintf("id=%v, ", wp.ID))
	builder.WriteString("work_id=")
	builder.WriteString(fmt.Sprintf("%v", wp.WorkID))
	builder.WriteString(", ")
	builder.WriteString("version_id=")
	builder.WriteString(fmt.Sprintf("%v", wp.VersionID))
	builder.WriteString(", ")
	builder.WriteString("requester_id=")
	builder.WriteString(fmt.Sprintf("%v", wp.RequesterID))
	builder.WriteString(", ")
	builder.WriteString("title=")
	builder.WriteString(wp.Title)
	builder.WriteString(", ")
	builder.WriteString("description=")
	builder.WriteString(wp.Description)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", wp.Status))
	builder.WriteString(", ")
	if v := wp.ReviewedBy; v != nil {
		builder.WriteString("reviewed_by=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := wp.ReviewedAt; v != nil {
		builder.WriteString("reviewed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("review_comment=")
	builder.WriteString(wp.ReviewComment)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(wp.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(wp.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// WorkProposals is a parsable slice of WorkProposal.
type WorkProposals []*WorkProposal
