package comment

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"testing"

	"github.com/muselink-c/muselink-app/pkg/constant"
	"github.com/muselink-c/muselink-app/pkg/domain/model"
	"github.com/muselink-c/muselink-app/pkg/idgen"
)

func TestMain(m *testing.M) {
	if err := idgen.InitSqidsEncoder(); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

// fakeWorkRepo 只提供评论服务用到的查询能力。
type fakeWorkRepo struct {
	works map[uint]*model.Work
}

func (r *fakeWorkRepo) Create(ctx context.Context, params *model.CreateWorkParams) (*model.Work, error) {
	return nil, errors.New("not implemented")
}

func (r *fakeWorkRepo) FindByID(ctx context.Context, id uint) (*model.Work, error) {
	if w, ok := r.works[id]; ok {
		return w, nil
	}
	return nil, fmt.Errorf("%w: 作品不存在", constant.ErrNotFound)
}

func (r *fakeWorkRepo) Update(ctx context.Context, id uint, params *model.UpdateWorkParams) (*model.Work, error) {
	return nil, errors.New("not implemented")
}

func (r *fakeWorkRepo) UpdateCanonicalFile(ctx context.Context, id uint, filePath string, fileSize int64) error {
	return errors.New("not implemented")
}

func (r *fakeWorkRepo) Delete(ctx context.Context, id uint) error {
	return errors.New("not implemented")
}

func (r *fakeWorkRepo) ListByUser(ctx context.Context, userDBID uint, page, pageSize int) ([]model.WorkListItem, int64, error) {
	return nil, 0, errors.New("not implemented")
}

func (r *fakeWorkRepo) ListLatest(ctx context.Context, page, pageSize int) ([]model.WorkListItem, int64, error) {
	return nil, 0, errors.New("not implemented")
}

func (r *fakeWorkRepo) IncrementPlayCount(ctx context.Context, id uint, delta int64) error {
	return errors.New("not implemented")
}

func (r *fakeWorkRepo) SetStarCount(ctx context.Context, id uint, count int64) error {
	return errors.New("not implemented")
}

// fakeCommentRepo 是 CommentRepository 的内存实现。
type fakeCommentRepo struct {
	comments map[uint]*model.Comment
	nextID   uint
}

func newFakeCommentRepo() *fakeCommentRepo {
	return &fakeCommentRepo{comments: make(map[uint]*model.Comment), nextID: 1}
}

func (r *fakeCommentRepo) Create(ctx context.Context, params *model.CreateCommentParams) (*model.Comment, error) {
	dbID := r.nextID
	r.nextID++
	publicID, err := idgen.GeneratePublicID(dbID, idgen.EntityTypeComment)
	if err != nil {
		return nil, err
	}
	workID, err := idgen.GeneratePublicID(params.WorkDBID, idgen.EntityTypeWork)
	if err != nil {
		return nil, err
	}
	userID, err := idgen.GeneratePublicID(params.UserDBID, idgen.EntityTypeUser)
	if err != nil {
		return nil, err
	}
	cm := &model.Comment{
		ID:      publicID,
		DBID:    dbID,
		WorkID:  workID,
		UserID:  userID,
		Content: params.Content,
		Status:  model.CommentStatusNormal,
	}
	if params.ParentDBID != nil {
		parentID, err := idgen.GeneratePublicID(*params.ParentDBID, idgen.EntityTypeComment)
		if err != nil {
			return nil, err
		}
		cm.ParentID = parentID
	}
	r.comments[dbID] = cm
	return cm, nil
}

func (r *fakeCommentRepo) FindByID(ctx context.Context, id uint) (*model.Comment, error) {
	if cm, ok := r.comments[id]; ok {
		return cm, nil
	}
	return nil, fmt.Errorf("%w: 评论不存在", constant.ErrNotFound)
}

func (r *fakeCommentRepo) ListByWork(ctx context.Context, workDBID uint, page, pageSize int) ([]model.Comment, int64, error) {
	workID, err := idgen.GeneratePublicID(workDBID, idgen.EntityTypeWork)
	if err != nil {
		return nil, 0, err
	}
	var items []model.Comment
	for _, cm := range r.comments {
		if cm.WorkID == workID && cm.ParentID == "" {
			items = append(items, *cm)
		}
	}
	return items, int64(len(items)), nil
}

func (r *fakeCommentRepo) Delete(ctx context.Context, id uint) error {
	if _, ok := r.comments[id]; !ok {
		return fmt.Errorf("%w: 评论不存在", constant.ErrNotFound)
	}
	delete(r.comments, id)
	return nil
}

type fixture struct {
	svc         Service
	commentRepo *fakeCommentRepo
	ownerDBID   uint
	otherDBID   uint
	workID      string
	privateID   string
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	const (
		ownerDBID     = uint(1)
		otherDBID     = uint(2)
		workDBID      = uint(10)
		privateDBID   = uint(11)
		strangerOwner = uint(3)
	)

	workID, err := idgen.GeneratePublicID(workDBID, idgen.EntityTypeWork)
	if err != nil {
		t.Fatal(err)
	}
	privateID, err := idgen.GeneratePublicID(privateDBID, idgen.EntityTypeWork)
	if err != nil {
		t.Fatal(err)
	}

	workRepo := &fakeWorkRepo{works: map[uint]*model.Work{
		workDBID: {
			ID:        workID,
			DBID:      workDBID,
			OwnerDBID: ownerDBID,
			Status:    model.WorkStatusPublished,
		},
		privateDBID: {
			ID:        privateID,
			DBID:      privateDBID,
			OwnerDBID: strangerOwner,
			Status:    model.WorkStatusPrivate,
		},
	}}
	commentRepo := newFakeCommentRepo()

	return &fixture{
		svc:         NewService(commentRepo, workRepo),
		commentRepo: commentRepo,
		ownerDBID:   ownerDBID,
		otherDBID:   otherDBID,
		workID:      workID,
		privateID:   privateID,
	}
}

func TestCreateComment(t *testing.T) {
	ctx := context.Background()

	t.Run("发表顶级评论", func(t *testing.T) {
		f := newFixture(t)
		cm, err := f.svc.Create(ctx, f.otherDBID, f.workID, "", "好听！")
		if err != nil {
			t.Fatalf("Create() error = %v", err)
		}
		if cm.ParentID != "" {
			t.Errorf("顶级评论不应有父评论: %q", cm.ParentID)
		}
		if cm.WorkID != f.workID {
			t.Errorf("WorkID = %q, want %q", cm.WorkID, f.workID)
		}
	})

	t.Run("HTML标签被剥离", func(t *testing.T) {
		f := newFixture(t)
		cm, err := f.svc.Create(ctx, f.otherDBID, f.workID, "", `旋律很棒<script>alert("x")</script>`)
		if err != nil {
			t.Fatalf("Create() error = %v", err)
		}
		if strings.Contains(cm.Content, "<script>") || strings.Contains(cm.Content, "alert") {
			t.Errorf("脚本标签未被剥离: %q", cm.Content)
		}
		if !strings.Contains(cm.Content, "旋律很棒") {
			t.Errorf("正文不应被误删: %q", cm.Content)
		}
	})

	t.Run("剥离后为空按空内容拒绝", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.svc.Create(ctx, f.otherDBID, f.workID, "", "<img src=x>")
		if !errors.Is(err, constant.ErrValidation) {
			t.Errorf("应返回 ErrValidation, got %v", err)
		}
	})

	t.Run("超长评论被拒绝", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.svc.Create(ctx, f.otherDBID, f.workID, "", strings.Repeat("赞", MaxCommentLength+1))
		if !errors.Is(err, constant.ErrValidation) {
			t.Errorf("应返回 ErrValidation, got %v", err)
		}
	})

	t.Run("回复顶级评论", func(t *testing.T) {
		f := newFixture(t)
		top, err := f.svc.Create(ctx, f.ownerDBID, f.workID, "", "顶级评论")
		if err != nil {
			t.Fatalf("Create() error = %v", err)
		}
		reply, err := f.svc.Create(ctx, f.otherDBID, f.workID, top.ID, "回复")
		if err != nil {
			t.Fatalf("Create() error = %v", err)
		}
		if reply.ParentID != top.ID {
			t.Errorf("ParentID = %q, want %q", reply.ParentID, top.ID)
		}
	})

	t.Run("不允许对回复再回复", func(t *testing.T) {
		f := newFixture(t)
		top, _ := f.svc.Create(ctx, f.ownerDBID, f.workID, "", "顶级评论")
		reply, _ := f.svc.Create(ctx, f.otherDBID, f.workID, top.ID, "回复")
		_, err := f.svc.Create(ctx, f.ownerDBID, f.workID, reply.ID, "套娃回复")
		if !errors.Is(err, constant.ErrBadRequest) {
			t.Errorf("应返回 ErrBadRequest, got %v", err)
		}
	})

	t.Run("父评论不属于该作品", func(t *testing.T) {
		f := newFixture(t)
		top, _ := f.svc.Create(ctx, f.ownerDBID, f.workID, "", "顶级评论")
		// 私有作品的所有者是用户3，此处以其身份在私有作品下引用别的作品的评论
		_, err := f.svc.Create(ctx, 3, f.privateID, top.ID, "跨作品回复")
		if !errors.Is(err, constant.ErrBadRequest) {
			t.Errorf("应返回 ErrBadRequest, got %v", err)
		}
	})

	t.Run("私有作品对陌生人按不存在处理", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.svc.Create(ctx, f.otherDBID, f.privateID, "", "评论")
		if !errors.Is(err, constant.ErrNotFound) {
			t.Errorf("应返回 ErrNotFound, got %v", err)
		}
	})

	t.Run("作品ID无效按不存在处理", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.svc.Create(ctx, f.otherDBID, "!!bad!!", "", "评论")
		if !errors.Is(err, constant.ErrNotFound) {
			t.Errorf("应返回 ErrNotFound, got %v", err)
		}
	})
}

func TestListComments(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	top, err := f.svc.Create(ctx, f.ownerDBID, f.workID, "", "顶级评论")
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if _, err := f.svc.Create(ctx, f.otherDBID, f.workID, top.ID, "回复"); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	resp, err := f.svc.ListByWork(ctx, f.workID, 0, 0)
	if err != nil {
		t.Fatalf("ListByWork() error = %v", err)
	}
	if resp.Total != 1 {
		t.Errorf("顶级评论总数 = %d, want 1", resp.Total)
	}
	if resp.Page != 1 || resp.PageSize != 10 {
		t.Errorf("分页参数应回退默认值, got page=%d size=%d", resp.Page, resp.PageSize)
	}
}

func TestDeleteComment(t *testing.T) {
	ctx := context.Background()

	t.Run("评论作者可删除", func(t *testing.T) {
		f := newFixture(t)
		cm, _ := f.svc.Create(ctx, f.otherDBID, f.workID, "", "评论")
		if err := f.svc.Delete(ctx, cm.ID, f.otherDBID); err != nil {
			t.Fatalf("Delete() error = %v", err)
		}
		if _, ok := f.commentRepo.comments[cm.DBID]; ok {
			t.Error("评论应已被删除")
		}
	})

	t.Run("作品所有者可删除他人评论", func(t *testing.T) {
		f := newFixture(t)
		cm, _ := f.svc.Create(ctx, f.otherDBID, f.workID, "", "评论")
		if err := f.svc.Delete(ctx, cm.ID, f.ownerDBID); err != nil {
			t.Fatalf("Delete() error = %v", err)
		}
	})

	t.Run("无关用户无权删除", func(t *testing.T) {
		f := newFixture(t)
		cm, _ := f.svc.Create(ctx, f.otherDBID, f.workID, "", "评论")
		if err := f.svc.Delete(ctx, cm.ID, 99); !errors.Is(err, constant.ErrForbidden) {
			t.Errorf("应返回 ErrForbidden, got %v", err)
		}
	})

	t.Run("评论ID无效按不存在处理", func(t *testing.T) {
		f := newFixture(t)
		if err := f.svc.Delete(ctx, "!!bad!!", f.ownerDBID); !errors.Is(err, constant.ErrNotFound) {
			t.Errorf("应返回 ErrNotFound, got %v", err)
		}
	})
}
