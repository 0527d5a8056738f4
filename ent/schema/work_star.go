/*
 * @Description: 作品收藏表
 * @Author: 沐音
 * @Date: 2025-09-08 11:02:55
 * @LastEditTime: 2025-10-30 19:21:46
 * @LastEditors: 沐音
 */
package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// WorkStar holds the schema definition for the WorkStar entity.
type WorkStar struct {
	ent.Schema
}

// Annotations of the WorkStar.
func (WorkStar) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.WithComments(true),
		schema.Comment("作品收藏表"),
	}
}

// Fields of the WorkStar.
func (WorkStar) Fields() []ent.Field {
	return []ent.Field{
		field.Uint("id"),
		field.Uint("work_id").
			Comment("被收藏的作品ID"),
		field.Uint("user_id").
			Comment("收藏者的用户ID"),
		field.Time("created_at").
			Default(time.Now).
			Immutable().
			Comment("收藏时间"),
	}
}

// Indexes of the WorkStar.
func (WorkStar) Indexes() []ent.Index {
	return []ent.Index{
		// 同一用户对同一作品只能收藏一次
		index.Fields("work_id", "user_id").Unique(),
		index.Fields("user_id", "created_at"),
	}
}
