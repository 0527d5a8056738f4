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

// 作品历史版本表
type WorkVersion struct {
	config `json:"-"`
	// ID of the ent.
	ID uint `json:"id,omitempty"`
	// 关联的作品ID
	WorkID uint `json:"work_id,omitempty"`
	// 版本号，同一作品内从1开始单调递增
	Version int `json:"version,omitempty"`
	// 提交者的用户ID
	UserID uint `json:"user_id,omitempty"`
	// 提交说明
	CommitMessage string `json:"commit_message,omitempty"`
	// 变更摘要
	ChangesSummary string `json:"changes_summary,omitempty"`
	// 本版本 MIDI 文件的存储引用
	FilePath string `json:"file_path,omitempty"`
	// 文件字节大小
	FileSize int64 `json:"file_size,omitempty"`
	// 是否已被合并到作品
	IsMerged bool `json:"is_merged,omitempty"`
	// 合并时间
	MergedAt *time.Time `json:"merged_at,omitempty"`
	// 执行合并的用户ID（即审核者）
	MergedBy *uint `json:"merged_by,omitempty"`
	// 提交时间
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the WorkVersionQuery when eager-loading is set.
	Edges        WorkVersionEdges `json:"edges"`
	selectValues sql.SelectValues
}

// WorkVersionEdges holds the relations/edges for other nodes in the graph.
type WorkVersionEdges struct {
	// Work holds the value of the work edge.
	Work *Work `json:"work,omitempty"`
	// Proposal holds the value of the proposal edge.
	Proposal *WorkProposal `json:"proposal,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// WorkOrErr returns the Work value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e WorkVersionEdges) WorkOrErr() (*Work, error) {
	if e.Work != nil {
		return e.Work, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: work.Label}
	}
	return nil, &NotLoadedError{edge: "work"}
}

// ProposalOrErr returns the Proposal value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e WorkVersionEdges) ProposalOrErr() (*WorkProposal, error) {
	if e.Proposal != nil {
		return e.Proposal, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: workproposal.Label}
	}
	return nil, &NotLoadedError{edge: "proposal"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*WorkVersion) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case workversion.FieldIsMerged:
			values[i] = new(sql.NullBool)
		case workversion.FieldID, workversion.FieldWorkID, workversion.FieldVersion, workversion.FieldUserID, workversion.FieldFileSize, workversion.FieldMergedBy:
			values[i] = new(sql.NullInt64)
		case workversion.FieldCommitMessage, workversion.FieldChangesSummary, workversion.FieldFilePath:
			values[i] = new(sql.NullString)
		case workversion.FieldMergedAt, workversion.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the WorkVersion fields.
func (wv *WorkVersion) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case workversion.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			wv.ID = uint(value.Int64)
		case workversion.FieldWorkID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field work_id", values[i])
			} else if value.Valid {
				wv.WorkID = uint(value.Int64)
			}
		case workversion.FieldVersion:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field version", values[i])
			} else if value.Valid {
				wv.Version = int(value.Int64)
			}
		case workversion.FieldUserID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				wv.UserID = uint(value.Int64)
			}
		case workversion.FieldCommitMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field commit_message", values[i])
			} else if value.Valid {
				wv.CommitMessage = value.String
			}
		case workversion.FieldChangesSummary:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field changes_summary", values[i])
			} else if value.Valid {
				wv.ChangesSummary = value.String
			}
		case workversion.FieldFilePath:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field file_path", values[i])
			} else if value.Valid {
				wv.FilePath = value.String
			}
		case workversion.FieldFileSize:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field file_size", values[i])
			} else if value.Valid {
				wv.FileSize = value.Int64
			}
		case workversion.FieldIsMerged:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_merged", values[i])
			} else if value.Valid {
				wv.IsMerged = value.Bool
			}
		case workversion.FieldMergedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field merged_at", values[i])
			} else if value.Valid {
				wv.MergedAt = new(time.Time)
				*wv.MergedAt = value.Time
			}
		case workversion.FieldMergedBy:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field merged_by", values[i])
			} else if value.Valid {
				wv.MergedBy = new(uint)
				*wv.MergedBy = uint(value.Int64)
			}
		case workversion.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				wv.CreatedAt = value.Time
			}
		default:
			wv.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the WorkVersion.
// This includes values selected through modifiers, order, etc.
func (wv *WorkVersion) Value(name string) (ent.Value, error) {
	return wv.selectValues.Get(name)
}

// QueryWork queries the "work" edge of the WorkVersion entity.
func (wv *WorkVersion) QueryWork() *WorkQuery {
	return NewWorkVersionClient(wv.config).QueryWork(wv)
}

// QueryProposal queries the "proposal" edge of the WorkVersion entity.
func (wv *WorkVersion) QueryProposal() *WorkProposalQuery {
	return NewWorkVersionClient(wv.config).QueryProposal(wv)
}

// Update returns a builder for updating this WorkVersion.
// Note that you need to call WorkVersion.Unwrap() before calling this method if this WorkVersion
// was returned from a transaction, and the transaction was committed or rolled back.
func (wv *WorkVersion) Update() *WorkVersionUpdateOne {
	return NewWorkVersionClient(wv.config).UpdateOne(wv)
}

// Unwrap unwraps the WorkVersion entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (wv *WorkVersion) Unwrap() *WorkVersion {
	_tx, ok := wv.config.driver.(*txDriver)
	if !ok {
		panic("ent: WorkVersion is not a transactional entity")
	}
	wv.config.driver = _tx.drv
	return wv
}

// String implements the fmt.Stringer.
func (wv *WorkVersion) String() string {
	var builder strings.Builder
	builder.WriteString("WorkVersion(")
	builder.WriteString(fmt.Sprintf("id=%v, ", wv.ID))
	builder.WriteString("work_id=")
	builder.WriteString(fmt.Sprintf("%v", wv.WorkID))
	builder.WriteString(", ")
	builder.WriteString("version=")
	builder.WriteString(fmt.Sprintf("%v", wv.Version))
	builder.WriteString(", ")
	builder.WriteString("user_id=")
	builder.WriteString(fmt.Sprintf("%v", wv.UserID))
	builder.WriteString(", ")
	builder.WriteString("commit_message=")
	builder.WriteString(wv.CommitMessage)
	builder.WriteString(", ")
	builder.WriteString("changes_summary=")
	builder.WriteString(wv.ChangesSummary)
	builder.WriteString(", ")
	builder.WriteString("file_path=")
	builder.WriteString(wv.FilePath)
	builder.WriteString(", ")
	builder.WriteString("file_size=")
	builder.WriteString(fmt.Sprintf("%v", wv.FileSize))
	builder.WriteString(", ")
	builder.WriteString("is_merged=")
	builder.WriteString(fmt.Sprintf("%v", wv.IsMerged))
	builder.WriteString(", ")
	if v := wv.MergedAt; v != nil {
		builder.WriteString("merged_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := wv.MergedBy; v != nil {
		builder.WriteString("merged_by=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(wv.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// WorkVersions is a parsable slice of WorkVersion.
type WorkVersions []*WorkVersion
