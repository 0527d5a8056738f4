/*
 * @Description: 用户表
 * @Author: 沐音
 * @Date: 2025-09-02 21:14:08
 * @LastEditTime: 2025-11-20 18:42:31
 * @LastEditors: 沐音
 */
package schema

import (
	"time"

	"github.com/muselink-c/muselink-app/ent/schema/mixin"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
)

// User holds the schema definition for the User entity.
type User struct {
	ent.Schema
}

// Annotations of the User.
func (User) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.WithComments(true),
		schema.Comment("用户表"),
	}
}

// Mixin of the User.
func (User) Mixin() []ent.Mixin {
	return []ent.Mixin{
		mixin.SoftDeleteMixin{},
	}
}

// Fields of the User.
func (User) Fields() []ent.Field {
	return []ent.Field{
		field.Uint("id"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
		field.String("username").
			MaxLen(50).
			Unique().
			NotEmpty().
			Comment("用户账号"),
		field.String("password_hash").
			MaxLen(255).
			NotEmpty().
			Sensitive(),
		field.String("nickname").
			MaxLen(50).
			Optional().
			Comment("用户昵称"),
		field.String("avatar").
			MaxLen(255).
			Optional().
			Comment("用户头像URL"),
		field.String("email").
			MaxLen(100).
			Unique().
			Optional().
			Comment("用户邮箱"),
		field.String("bio").
			MaxLen(500).
			Optional().
			Comment("个人简介"),
		field.String("website").
			MaxLen(255).
			Optional().
			Comment("用户个人网站"),
		field.Time("last_login_at").
			Optional().
			Nillable(),
		field.Int("status").
			Default(1).
			Comment("用户状态 1:正常 2:未激活 3:已封禁"),
	}
}

// Edges of the User.
func (User) Edges() []ent.Edge {
	return []ent.Edge{
		// 一个用户可以拥有多个作品
		edge.To("works", Work.Type),
		// 一个用户可以发表多条评论
		edge.To("comments", Comment.Type),
	}
}
