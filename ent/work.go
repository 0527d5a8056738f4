// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/muselink-c/muselink-app/ent/user"
	"github.com/muselink-c/muselink-app/ent/work"
)

// 音乐作品表
type Work struct {
	config `json:"-"`
	// ID of the ent.
	ID uint `json:"id,omitempty"`
	// DeletedAt holds the value of the "deleted_at" field.
	DeletedAt *time.Time `json:"deleted_at,omitempty"`
	// 创建时间
	CreatedAt time.Time `json:"created_at,omitempty"`
	// 更新时间
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// 作品所有者的用户ID
	UserID uint `json:"user_id,omitempty"`
	// 作品标题
	Title string `json:"title,omitempty"`
	// 作品介绍
	Description string `json:"description,omitempty"`
	// 音乐流派
	Genre string `json:"genre,omitempty"`
	// 当前权威 MIDI 文件的存储引用
	FilePath string `json:"file_path,omitempty"`
	// 当前权威文件的字节大小
	FileSize int64 `json:"file_size,omitempty"`
	// 是否接受他人提交协作版本
	AllowCollaboration bool `json:"allow_collaboration,omitempty"`
	// 播放次数
	PlayCount int64 `json:"play_count,omitempty"`
	// 收藏次数
	StarCount int64 `json:"star_count,omitempty"`
	// 作品状态 1:公开 2:私密
	Status int `json:"status,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the WorkQuery when eager-loading is set.
	Edges        WorkEdges `json:"edges"`
	selectValues sql.SelectValues
}

// WorkEdges holds the relations/edges for other nodes in the graph.
type WorkEdges struct {
	// Owner holds the value of the owner edge.
	Owner *User `json:"owner,omitempty"`
	// Versions holds the value of the versions edge.
	Versions []*WorkVersion `json:"versions,omitempty"`
	// Proposals holds the value of the proposals edge.
	Proposals []*WorkProposal `json:"proposals,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [3]bool
}

// OwnerOrErr returns the Owner value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e WorkEdges) OwnerOrErr() (*User, error) {
	if e.Owner != nil {
		return e.Owner, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: user.Label}
	}
	return nil, &NotLoadedError{edge: "owner"}
}

// VersionsOrErr returns the Versions value or an error if the edge
// was not loaded in eager-loading.
func (e WorkEdges) VersionsOrErr() ([]*WorkVersion, error) {
	if e.loadedTypes[1] {
		return e.Versions, nil
	}
	return nil, &NotLoadedError{edge: "versions"}
}

// ProposalsOrErr returns the Proposals value or an error if the edge
// was not loaded in eager-loading.
func (e WorkEdges) ProposalsOrErr() ([]*WorkProposal, error) {
	if e.loadedTypes[2] {
		return e.Proposals, nil
	}
	return nil, &NotLoadedError{edge: "proposals"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Work) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case work.FieldAllowCollaboration:
			values[i] = new(sql.NullBool)
		case work.FieldID, work.FieldUserID, work.FieldFileSize, work.FieldPlayCount, work.FieldStarCount, work.FieldStatus:
			values[i] = new(sql.NullInt64)
		case work.FieldTitle, work.FieldDescription, work.FieldGenre, work.FieldFilePath:
			values[i] = new(sql.NullString)
		case work.FieldDeletedAt, work.FieldCreatedAt, work.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Work fields.
func (w *Work) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case work.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			w.ID = uint(value.Int64)
		case work.FieldDeletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field deleted_at", values[i])
			} else if value.Valid {
				w.DeletedAt = new(time.Time)
				*w.DeletedAt = value.Time
			}
		case work.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				w.CreatedAt = value.Time
			}
		case work.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				w.UpdatedAt = value.Time
			}
		case work.FieldUserID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				w.UserID = uint(value.Int64)
			}
		case work.FieldTitle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field title", values[i])
			} else if value.Valid {
				w.Title = value.String
			}
		case work.FieldDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field description", values[i])
			} else if value.Valid {
				w.Description = value.String
			}
		case work.FieldGenre:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field genre", values[i])
			} else if value.Valid {
				w.Genre = value.String
			}
		case work.FieldFilePath:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field file_path", values[i])
			} else if value.Valid {
				w.FilePath = value.String
			}
		case work.FieldFileSize:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field file_size", values[i])
			} else if value.Valid {
				w.FileSize = value.Int64
			}
		case work.FieldAllowCollaboration:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field allow_collaboration", values[i])
			} else if value.Valid {
				w.AllowCollaboration = value.Bool
			}
		case work.FieldPlayCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field play_count", values[i])
			} else if value.Valid {
				w.PlayCount = value.Int64
			}
		case work.FieldStarCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field star_count", values[i])
			} else if value.Valid {
				w.StarCount = value.Int64
			}
		case work.FieldStatus:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				w.Status = int(value.Int64)
			}
		default:
			w.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Work.
// This includes values selected through modifiers, order, etc.
func (w *Work) Value(name string) (ent.Value, error) {
	return w.selectValues.Get(name)
}

// QueryOwner queries the "owner" edge of the Work entity.
func (w *Work) QueryOwner() *UserQuery {
	return NewWorkClient(w.config).QueryOwner(w)
}

// QueryVersions queries the "versions" edge of the Work entity.
func (w *Work) QueryVersions() *WorkVersionQuery {
	return NewWorkClient(w.config).QueryVersions(w)
}

// QueryProposals queries the "proposals" edge of the Work entity.
func (w *Work) QueryProposals() *WorkProposalQuery {
	return NewWorkClient(w.config).QueryProposals(w)
}

// Update returns a builder for updating this Work.
// Note that you need to call Work.Unwrap() before calling this method if this Work
// was returned from a transaction, and the transaction was committed or rolled back.
func (w *Work) Update() *WorkUpdateOne {
	return NewWorkClient(w.config).UpdateOne(w)
}

// Unwrap unwraps the Work entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (w *Work) Unwrap() *Work {
	_tx, ok := w.config.driver.(*txDriver)
	if !ok {
		panic("ent: Work is not a transactional entity")
	}
	w.config.driver = _tx.drv
	return w
}

// String implements the fmt.Stringer.
func (w *Work) String() string {
	var builder strings.Builder
	builder.WriteString("Work(")
	builder.WriteString(fmt.Sprintf("id=%v, ", w.ID))
	if v := w.DeletedAt; v != nil {
		builder.WriteString("deleted_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(w.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(w.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("user_id=")
	builder.WriteString(fmt.Sprintf("%v", w.UserID))
	builder.WriteString(", ")
	builder.WriteString("title=")
	builder.WriteString(w.Title)
	builder.WriteString(", ")
	builder.WriteString("description=")
	builder.WriteString(w.Description)
	builder.WriteString(", ")
	builder.WriteString("genre=")
	builder.WriteString(w.Genre)
	builder.WriteString(", ")
	builder.WriteString("file_path=")
	builder.WriteString(w.FilePath)
	builder.WriteString(", ")
	builder.WriteString("file_size=")
	builder.WriteString(fmt.Sprintf("%v", w.FileSize))
	builder.WriteString(", ")
	builder.WriteString("allow_collaboration=")
	builder.WriteString(fmt.Sprintf("%v", w.AllowCollaboration))
	builder.WriteString(", ")
	builder.WriteString("play_count=")
	builder.WriteString(fmt.Sprintf("%v", w.PlayCount))
	builder.WriteString(", ")
	builder.WriteString("star_count=")
	builder.WriteString(fmt.Sprintf("%v", w.StarCount))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", w.Status))
	builder.WriteByte(')')
	return builder.String()
}

// Works is a parsable slice of Work.
type Works []*Work
