// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/muselink-c/muselink-app/ent/workstar"
)

// 作品收藏表
type WorkStar struct {
	config `json:"-"`
	// ID of the ent.
	ID uint `json:"id,omitempty"`
	// 被收藏的作品ID
	WorkID uint `json:"work_id,omitempty"`
	// 收藏者的用户ID
	UserID uint `json:"user_id,omitempty"`
	// 收藏时间
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*WorkStar) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case workstar.FieldID, workstar.FieldWorkID, workstar.FieldUserID:
			values[i] = new(sql.NullInt64)
		case workstar.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the WorkStar fields.
func (ws *WorkStar) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case workstar.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			ws.ID = uint(value.Int64)
		case workstar.FieldWorkID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field work_id", values[i])
			} else if value.Valid {
				ws.WorkID = uint(value.Int64)
			}
		case workstar.FieldUserID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				ws.UserID = uint(value.Int64)
			}
		case workstar.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				ws.CreatedAt = value.Time
			}
		default:
			ws.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the WorkStar.
// This includes values selected through modifiers, order, etc.
func (ws *WorkStar) Value(name string) (ent.Value, error) {
	return ws.selectValues.Get(name)
}

// Update returns a builder for updating this WorkStar.
// Note that you need to call WorkStar.Unwrap() before calling this method if this WorkStar
// was returned from a transaction, and the transaction was committed or rolled back.
func (ws *WorkStar) Update() *WorkStarUpdateOne {
	return NewWorkStarClient(ws.config).UpdateOne(ws)
}

// Unwrap unwraps the WorkStar entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (ws *WorkStar) Unwrap() *WorkStar {
	_tx, ok := ws.config.driver.(*txDriver)
	if !ok {
		panic("ent: WorkStar is not a transactional entity")
	}
	ws.config.driver = _tx.drv
	return ws
}

// String implements the fmt.Stringer.
func (ws *WorkStar) String() string {
	var builder strings.Builder
	builder.WriteString("WorkStar(")
	builder.WriteString(fmt.Sprintf("id=%v, ", ws.ID))
	builder.WriteString("work_id=")
	builder.WriteString(fmt.Sprintf("%v", ws.WorkID))
	builder.WriteString(", ")
	builder.WriteString("user_id=")
	builder.WriteString(fmt.Sprintf("%v", ws.UserID))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(ws.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// WorkStars is a parsable slice of WorkStar.
type WorkStars []*WorkStar
