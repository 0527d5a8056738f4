package idgen

import (
	"os"
	"testing"
)

func TestMain(m *testing.M) {
	if err := InitSqidsEncoder(); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

func TestGenerateAndDecodePublicID(t *testing.T) {
	tests := []struct {
		name       string
		dbID       uint
		entityType uint64
	}{
		{"用户实体", 1, EntityTypeUser},
		{"作品实体", 42, EntityTypeWork},
		{"历史版本实体", 100, EntityTypeWorkVersion},
		{"协作提案实体", 7, EntityTypeWorkProposal},
		{"评论实体", 99999, EntityTypeComment},
		{"收藏实体", 3, EntityTypeWorkStar},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			publicID, err := GeneratePublicID(tt.dbID, tt.entityType)
			if err != nil {
				t.Fatalf("GeneratePublicID() error = %v", err)
			}
			if len(publicID) < 4 {
				t.Errorf("公共ID长度 = %d，应不小于最小长度4", len(publicID))
			}

			dbID, entityType, err := DecodePublicID(publicID)
			if err != nil {
				t.Fatalf("DecodePublicID() error = %v", err)
			}
			if dbID != tt.dbID || entityType != tt.entityType {
				t.Errorf("解码结果 = (%d, %d), want (%d, %d)", dbID, entityType, tt.dbID, tt.entityType)
			}
		})
	}
}

func TestDecodePublicIDWithType(t *testing.T) {
	workID, err := GeneratePublicID(10, EntityTypeWork)
	if err != nil {
		t.Fatalf("GeneratePublicID() error = %v", err)
	}

	t.Run("类型匹配", func(t *testing.T) {
		dbID, err := DecodePublicIDWithType(workID, EntityTypeWork)
		if err != nil {
			t.Fatalf("DecodePublicIDWithType() error = %v", err)
		}
		if dbID != 10 {
			t.Errorf("dbID = %d, want 10", dbID)
		}
	})

	t.Run("类型不匹配", func(t *testing.T) {
		if _, err := DecodePublicIDWithType(workID, EntityTypeUser); err == nil {
			t.Error("作品ID按用户类型解码应当失败")
		}
	})

	t.Run("非法输入", func(t *testing.T) {
		if _, err := DecodePublicIDWithType("!!invalid!!", EntityTypeWork); err == nil {
			t.Error("非法字符串解码应当失败")
		}
	})
}

func TestPublicIDUniqueAcrossEntityTypes(t *testing.T) {
	// 相同的内部ID在不同实体类型下必须编码出不同的公共ID
	userID, _ := GeneratePublicID(1, EntityTypeUser)
	workID, _ := GeneratePublicID(1, EntityTypeWork)
	if userID == workID {
		t.Errorf("不同实体类型编码出了相同的公共ID: %q", userID)
	}
}
