/*
 * @Description: 作品历史版本表
 * @Author: 沐音
 * @Date: 2025-09-05 14:31:02
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

// WorkVersion holds the schema definition for the WorkVersion entity.
// 版本记录是只追加的审计历史：创建后唯一允许的变更是合并协调逻辑
// 执行的一次性 is_merged false -> true 翻转（同时写入合并元数据）。
type WorkVersion struct {
	ent.Schema
}

// Annotations of the WorkVersion.
func (WorkVersion) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.WithComments(true),
		schema.Comment("作品历史版本表"),
	}
}

// Fields of the WorkVersion.
func (WorkVersion) Fields() []ent.Field {
	return []ent.Field{
		field.Uint("id"),
		field.Uint("work_id").
			Comment("关联的作品ID"),
		field.Int("version").
			Comment("版本号，同一作品内从1开始单调递增").
			Positive(),
		field.Uint("user_id").
			Comment("提交者的用户ID"),
		field.String("commit_message").
			MaxLen(500).
			NotEmpty().
			Comment("提交说明"),
		field.Text("changes_summary").
			Optional().
			Comment("变更摘要"),
		field.String("file_path").
			MaxLen(512).
			NotEmpty().
			Comment("本版本 MIDI 文件的存储引用"),
		field.Int64("file_size").
			Default(0).
			NonNegative().
			Comment("文件字节大小"),
		field.Bool("is_merged").
			Default(false).
			Comment("是否已被合并到作品"),
		field.Time("merged_at").
			Optional().
			Nillable().
			Comment("合并时间"),
		field.Uint("merged_by").
			Optional().
			Nillable().
			Comment("执行合并的用户ID（即审核者）"),
		field.Time("created_at").
			Default(time.Now).
			Immutable().
			Comment("提交时间"),
	}
}

// Edges of the WorkVersion.
func (WorkVersion) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("work", Work.Type).
			Ref("versions").
			Field("work_id").
			Required().
			Unique(),
		// 每个版本至多对应一个提案（提交时一并创建）
		edge.To("proposal", WorkProposal.Type).
			Unique(),
	}
}

// Indexes of the WorkVersion.
func (WorkVersion) Indexes() []ent.Index {
	return []ent.Index{
		// 同一作品内版本号唯一，保证单调编号在并发提交下不会冲突成功
		index.Fields("work_id", "version").Unique(),
		index.Fields("work_id", "created_at"),
		index.Fields("user_id"),
	}
}
