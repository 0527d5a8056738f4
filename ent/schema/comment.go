// ent/schema/comment.go
package schema

import (
	"time"

	"github.com/muselink-c/muselink-app/ent/schema/mixin"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Comment 定义了 Comment 实体（即数据库中的作品评论表）的结构。
type Comment struct {
	ent.Schema
}

// Annotations of the Comment.
func (Comment) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.WithComments(true),
		schema.Comment("作品评论表"),
	}
}

// Mixin 为 Comment 实体混入可重用的功能。
// 这里我们使用 SoftDeleteMixin 来实现软删除，而不是真正从数据库中删除记录。
func (Comment) Mixin() []ent.Mixin {
	return []ent.Mixin{
		mixin.SoftDeleteMixin{},
	}
}

// Fields 定义了 Comment 实体的所有字段。
func (Comment) Fields() []ent.Field {
	return []ent.Field{
		field.Uint("id"),
		field.Time("created_at").
			Default(time.Now).
			Immutable().
			Comment("创建时间"),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now).
			Comment("更新时间"),
		field.Uint("work_id").
			Comment("评论所属的作品ID"),
		field.Uint("user_id").
			Comment("评论者的用户ID"),
		field.Uint("parent_id").
			Optional().
			Nillable().
			Comment("父评论ID (用于一级嵌套回复)"),
		field.Text("content").
			NotEmpty().
			Comment("评论内容（存储已消毒的HTML）"),
		field.Int("status").
			Default(1).
			Comment("评论状态 1:正常 2:已隐藏"),
	}
}

// Edges 定义了 Comment 实体的关联关系。
func (Comment) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("author", User.Type).
			Ref("comments").
			Field("user_id").
			Required().
			Unique(),
	}
}

// Indexes 定义了 Comment 实体的索引。
func (Comment) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("work_id", "created_at"),
		index.Fields("user_id"),
		index.Fields("parent_id"),
	}
}
