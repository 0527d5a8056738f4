/*
 * @Description: 协作提案（合并请求）表
 * @Author: 沐音
 * @Date: 2025-09-05 14:45:19
 * @LastEditTime: 2025-12-18 15:07:12
 * @LastEditors: 沐音
 */
package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// WorkProposal holds the schema definition for the WorkProposal entity.
// 提案的状态机只有三个状态：pending（初始）-> approved / rejected（均为终态）。
// 离开 pending 之后记录不再变更。
type WorkProposal struct {
	ent.Schema
}

// Annotations of the WorkProposal.
func (WorkProposal) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.WithComments(true),
		schema.Comment("协作提案表"),
	}
}

// Fields of the WorkProposal.
func (WorkProposal) Fields() []ent.Field {
	return []ent.Field{
		field.Uint("id"),
		field.Uint("work_id").
			Comment("关联的作品ID"),
		field.Uint("version_id").
			Unique().
			Comment("关联的版本ID，1:1 对应"),
		field.Uint("requester_id").
			Comment("提案发起者的用户ID"),
		field.String("title").
			MaxLen(200).
			NotEmpty().
			Comment("提案标题"),
		field.Text("description").
			Optional().
			Comment("提案描述"),
		field.Enum("status").
			Values("pending", "approved", "rejected").
			Default("pending").
			Comment("提案状态"),
		field.Uint("reviewed_by").
			Optional().
			Nillable().
			Comment("审核者的用户ID"),
		field.Time("reviewed_at").
			Optional().
			Nillable().
			Comment("审核时间"),
		field.String("review_comment").
			MaxLen(500).
			Optional().
			Comment("审核意见"),
		field.Time("created_at").
			Default(time.Now).
			Immutable().
			Comment("创建时间"),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now).
			Comment("更新时间"),
	}
}

// Edges of the WorkProposal.
func (WorkProposal) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("work", Work.Type).
			Ref("proposals").
			Field("work_id").
			Required().
			Unique(),
		edge.From("version", WorkVersion.Type).
			Ref("proposal").
			Field("version_id").
			Required().
			Unique(),
	}
}

// Indexes of the WorkProposal.
func (WorkProposal) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("work_id", "created_at"),
		index.Fields("work_id", "status"),
		index.Fields("requester_id"),
	}
}
