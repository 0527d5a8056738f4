/*
 * @Description: 音乐作品表
 * @Author: 沐音
 * @Date: 2025-09-03 10:22:40
 * @LastEditTime: 2025-12-18 15:07:12
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
	"entgo.io/ent/schema/index"
)

// Work holds the schema definition for the Work entity.
// 一首作品归属于唯一的用户；file_path 始终指向当前的权威 MIDI 文件，
// 只有合并协调逻辑（批准协作提案时）才会改写它。
type Work struct {
	ent.Schema
}

// Annotations of the Work.
func (Work) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.WithComments(true),
		schema.Comment("音乐作品表"),
	}
}

// Mixin of the Work.
func (Work) Mixin() []ent.Mixin {
	return []ent.Mixin{
		mixin.SoftDeleteMixin{},
	}
}

// Fields of the Work.
func (Work) Fields() []ent.Field {
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
		field.Uint("user_id").
			Comment("作品所有者的用户ID"),
		field.String("title").
			MaxLen(200).
			NotEmpty().
			Comment("作品标题"),
		field.Text("description").
			Optional().
			Comment("作品介绍"),
		field.String("genre").
			MaxLen(50).
			Optional().
			Comment("音乐流派"),
		field.String("file_path").
			MaxLen(512).
			NotEmpty().
			Comment("当前权威 MIDI 文件的存储引用"),
		field.Int64("file_size").
			Default(0).
			NonNegative().
			Comment("当前权威文件的字节大小"),
		field.Bool("allow_collaboration").
			Default(false).
			Comment("是否接受他人提交协作版本"),
		field.Int64("play_count").
			Default(0).
			NonNegative().
			Comment("播放次数"),
		field.Int64("star_count").
			Default(0).
			NonNegative().
			Comment("收藏次数"),
		field.Int("status").
			Default(1).
			Comment("作品状态 1:公开 2:私密"),
	}
}

// Edges of the Work.
func (Work) Edges() []ent.Edge {
	return []ent.Edge{
		// 作品归属于一个用户
		edge.From("owner", User.Type).
			Ref("works").
			Field("user_id").
			Required().
			Unique(),
		// 一个作品可以有多个历史版本
		edge.To("versions", WorkVersion.Type),
		// 一个作品可以有多个协作提案
		edge.To("proposals", WorkProposal.Type),
	}
}

// Indexes of the Work.
func (Work) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "created_at"),
		index.Fields("status", "created_at"),
	}
}
