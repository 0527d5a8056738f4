// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// CommentsColumns holds the columns for the "comments" table.
	CommentsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUint, Increment: true},
		{Name: "deleted_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime, Comment: "创建时间"},
		{Name: "updated_at", Type: field.TypeTime, Comment: "更新时间"},
		{Name: "work_id", Type: field.TypeUint, Comment: "评论所属的作品ID"},
		{Name: "parent_id", Type: field.TypeUint, Nullable: true, Comment: "父评论ID (用于一级嵌套回复)"},
		{Name: "content", Type: field.TypeString, Size: 2147483647, Comment: "评论内容（存储已消毒的HTML）"},
		{Name: "status", Type: field.TypeInt, Comment: "评论状态 1:正常 2:已隐藏", Default: 1},
		{Name: "user_id", Type: field.TypeUint, Comment: "评论者的用户ID"},
	}
	// CommentsTable holds the schema information for the "comments" table.
	CommentsTable = &schema.Table{
		Name:       "comments",
		Comment:    "作品评论表",
		Columns:    CommentsColumns,
		PrimaryKey: []*schema.Column{CommentsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "comments_users_comments",
				Columns:    []*schema.Column{CommentsColumns[8]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "comment_work_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{CommentsColumns[4], CommentsColumns[2]},
			},
			{
				Name:    "comment_user_id",
				Unique:  false,
				Columns: []*schema.Column{CommentsColumns[8]},
			},
			{
				Name:    "comment_parent_id",
				Unique:  false,
				Columns: []*schema.Column{CommentsColumns[5]},
			},
		},
	}
	// UsersColumns holds the columns for the "users" table.
	UsersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUint, Increment: true},
		{Name: "deleted_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "username", Type: field.TypeString, Unique: true, Size: 50, Comment: "用户账号"},
		{Name: "password_hash", Type: field.TypeString, Size: 255},
		{Name: "nickname", Type: field.TypeString, Nullable: true, Size: 50, Comment: "用户昵称"},
		{Name: "avatar", Type: field.TypeString, Nullable: true, Size: 255, Comment: "用户头像URL"},
		{Name: "email", Type: field.TypeString, Unique: true, Nullable: true, Size: 100, Comment: "用户邮箱"},
		{Name: "bio", Type: field.TypeString, Nullable: true, Size: 500, Comment: "个人简介"},
		{Name: "website", Type: field.TypeString, Nullable: true, Size: 255, Comment: "用户个人网站"},
		{Name: "last_login_at", Type: field.TypeTime, Nullable: true},
		{Name: "status", Type: field.TypeInt, Comment: "用户状态 1:正常 2:未激活 3:已封禁", Default: 1},
	}
	// UsersTable holds the schema information for the "users" table.
	UsersTable = &schema.Table{
		Name:       "users",
		Comment:    "用户表",
		Columns:    UsersColumns,
		PrimaryKey: []*schema.Column{UsersColumns[0]},
	}
	// WorksColumns holds the columns for the "works" table.
	WorksColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUint, Increment: true},
		{Name: "deleted_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime, Comment: "创建时间"},
		{Name: "updated_at", Type: field.TypeTime, Comment: "更新时间"},
		{Name: "title", Type: field.TypeString, Size: 200, Comment: "作品标题"},
		{Name: "description", Type: field.TypeString, Nullable: true, Size: 2147483647, Comment: "作品介绍"},
		{Name: "genre", Type: field.TypeString, Nullable: true, Size: 50, Comment: "音乐流派"},
		{Name: "file_path", Type: field.TypeString, Size: 512, Comment: "当前权威 MIDI 文件的存储引用"},
		{Name: "file_size", Type: field.TypeInt64, Comment: "当前权威文件的字节大小", Default: 0},
		{Name: "allow_collaboration", Type: field.TypeBool, Comment: "是否接受他人提交协作版本", Default: false},
		{Name: "play_count", Type: field.TypeInt64, Comment: "播放次数", Default: 0},
		{Name: "star_count", Type: field.TypeInt64, Comment: "收藏次数", Default: 0},
		{Name: "status", Type: field.TypeInt, Comment: "作品状态 1:公开 2:私密", Default: 1},
		{Name: "user_id", Type: field.TypeUint, Comment: "作品所有者的用户ID"},
	}
	// WorksTable holds the schema information for the "works" table.
	WorksTable = &schema.Table{
		Name:       "works",
		Comment:    "音乐作品表",
		Columns:    WorksColumns,
		PrimaryKey: []*schema.Column{WorksColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "works_users_works",
				Columns:    []*schema.Column{WorksColumns[13]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "work_user_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{WorksColumns[13], WorksColumns[2]},
			},
			{
				Name:    "work_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{WorksColumns[12], WorksColumns[2]},
			},
		},
	}
	// WorkProposalsColumns holds the columns for the "work_proposals" table.
	WorkProposalsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUint, Increment: true},
		{Name: "requester_id", Type: field.TypeUint, Comment: "提案发起者的用户ID"},
		{Name: "title", Type: field.TypeString, Size: 200, Comment: "提案标题"},
		{Name: "description", Type: field.TypeString, Nullable: true, Size: 2147483647, Comment: "提案描述"},
		{Name: "status", Type: field.TypeEnum, Comment: "提案状态", Enums: []string{"pending", "approved", "rejected"}, Default: "pending"},
		{Name: "reviewed_by", Type: field.TypeUint, Nullable: true, Comment: "审核者的用户ID"},
		{Name: "reviewed_at", Type: field.TypeTime, Nullable: true, Comment: "审核时间"},
		{Name: "review_comment", Type: field.TypeString, Nullable: true, Size: 500, Comment: "审核意见"},
		{Name: "created_at", Type: field.TypeTime, Comment: "创建时间"},
		{Name: "updated_at", Type: field.TypeTime, Comment: "更新时间"},
		{Name: "work_id", Type: field.TypeUint, Comment: "关联的作品ID"},
		{Name: "version_id", Type: field.TypeUint, Unique: true, Comment: "关联的版本ID，1:1 对应"},
	}
	// WorkProposalsTable holds the schema information for the "work_proposals" table.
	WorkProposalsTable = &schema.Table{
		Name:       "work_proposals",
		Comment:    "协作提案表",
		Columns:    WorkProposalsColumns,
		PrimaryKey: []*schema.Column{WorkProposalsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "work_proposals_works_proposals",
				Columns:    []*schema.Column{WorkProposalsColumns[10]},
				RefColumns: []*schema.Column{WorksColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "work_proposals_work_versions_proposal",
				Columns:    []*schema.Column{WorkProposalsColumns[11]},
				RefColumns: []*schema.Column{WorkVersionsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "workproposal_work_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{WorkProposalsColumns[10], WorkProposalsColumns[8]},
			},
			{
				Name:    "workproposal_work_id_status",
				Unique:  false,
				Columns: []*schema.Column{WorkProposalsColumns[10], WorkProposalsColumns[4]},
			},
			{
				Name:    "workproposal_requester_id",
				Unique:  false,
				Columns: []*schema.Column{WorkProposalsColumns[1]},
			},
		},
	}
	// WorkStarsColumns holds the columns for the "work_stars" table.
	WorkStarsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUint, Increment: true},
		{Name: "work_id", Type: field.TypeUint, Comment: "被收藏的作品ID"},
		{Name: "user_id", Type: field.TypeUint, Comment: "收藏者的用户ID"},
		{Name: "created_at", Type: field.TypeTime, Comment: "收藏时间"},
	}
	// WorkStarsTable holds the schema information for the "work_stars" table.
	WorkStarsTable = &schema.Table{
		Name:       "work_stars",
		Comment:    "作品收藏表",
		Columns:    WorkStarsColumns,
		PrimaryKey: []*schema.Column{WorkStarsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "workstar_work_id_user_id",
				Unique:  true,
				Columns: []*schema.Column{WorkStarsColumns[1], WorkStarsColumns[2]},
			},
			{
				Name:    "workstar_user_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{WorkStarsColumns[2], WorkStarsColumns[3]},
			},
		},
	}
	// WorkVersionsColumns holds the columns for the "work_versions" table.
	WorkVersionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUint, Increment: true},
		{Name: "version", Type: field.TypeInt, Comment: "版本号，同一作品内从1开始单调递增"},
		{Name: "user_id", Type: field.TypeUint, Comment: "提交者的用户ID"},
		{Name: "commit_message", Type: field.TypeString, Size: 500, Comment: "提交说明"},
		{Name: "changes_summary", Type: field.TypeString, Nullable: true, Size: 2147483647, Comment: "变更摘要"},
		{Name: "file_path", Type: field.TypeString, Size: 512, Comment: "本版本 MIDI 文件的存储引用"},
		{Name: "file_size", Type: field.TypeInt64, Comment: "文件字节大小", Default: 0},
		{Name: "is_merged", Type: field.TypeBool, Comment: "是否已被合并到作品", Default: false},
		{Name: "merged_at", Type: field.TypeTime, Nullable: true, Comment: "合并时间"},
		{Name: "merged_by", Type: field.TypeUint, Nullable: true, Comment: "执行合并的用户ID（即审核者）"},
		{Name: "created_at", Type: field.TypeTime, Comment: "提交时间"},
		{Name: "work_id", Type: field.TypeUint, Comment: "关联的作品ID"},
	}
	// WorkVersionsTable holds the schema information for the "work_versions" table.
	WorkVersionsTable = &schema.Table{
		Name:       "work_versions",
		Comment:    "作品历史版本表",
		Columns:    WorkVersionsColumns,
		PrimaryKey: []*schema.Column{WorkVersionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "work_versions_works_versions",
				Columns:    []*schema.Column{WorkVersionsColumns[11]},
				RefColumns: []*schema.Column{WorksColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "workversion_work_id_version",
				Unique:  true,
				Columns: []*schema.Column{WorkVersionsColumns[11], WorkVersionsColumns[1]},
			},
			{
				Name:    "workversion_work_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{WorkVersionsColumns[11], WorkVersionsColumns[10]},
			},
			{
				Name:    "workversion_user_id",
				Unique:  false,
				Columns: []*schema.Column{WorkVersionsColumns[2]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		CommentsTable,
		UsersTable,
		WorksTable,
		WorkProposalsTable,
		WorkStarsTable,
		WorkVersionsTable,
	}
)

func init() {
	CommentsTable.ForeignKeys[0].RefTable = UsersTable
	WorksTable.ForeignKeys[0].RefTable = UsersTable
	WorkProposalsTable.ForeignKeys[0].RefTable = WorksTable
	WorkProposalsTable.ForeignKeys[1].RefTable = WorkVersionsTable
	WorkVersionsTable.ForeignKeys[0].RefTable = WorksTable
}
