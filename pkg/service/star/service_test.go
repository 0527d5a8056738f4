package star

import (
	"context"
	"errors"
	"fmt"
	"os"
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

type starKey struct {
	workDBID uint
	userDBID uint
}

// fakeStarRepo 模拟 (work_id, user_id) 唯一索引的收藏表。
type fakeStarRepo struct {
	stars map[starKey]bool
}

func newFakeStarRepo() *fakeStarRepo {
	return &fakeStarRepo{stars: make(map[starKey]bool)}
}

func (r *fakeStarRepo) Star(ctx context.Context, workDBID, userDBID uint) error {
	key := starKey{workDBID, userDBID}
	if r.stars[key] {
		return fmt.Errorf("%w: 请勿重复收藏", constant.ErrAlreadyStarred)
	}
	r.stars[key] = true
	return nil
}

func (r *fakeStarRepo) Unstar(ctx context.Context, workDBID, userDBID uint) error {
	delete(r.stars, starKey{workDBID, userDBID})
	return nil
}

func (r *fakeStarRepo) IsStarred(ctx context.Context, workDBID, userDBID uint) (bool, error) {
	return r.stars[starKey{workDBID, userDBID}], nil
}

func (r *fakeStarRepo) CountByWork(ctx context.Context, workDBID uint) (int64, error) {
	var count int64
	for key := range r.stars {
		if key.workDBID == workDBID {
			count++
		}
	}
	return count, nil
}

func (r *fakeStarRepo) WorkIDsWithStars(ctx context.Context) ([]uint, error) {
	seen := make(map[uint]bool)
	var ids []uint
	for key := range r.stars {
		if !seen[key.workDBID] {
			seen[key.workDBID] = true
			ids = append(ids, key.workDBID)
		}
	}
	return ids, nil
}

// fakeWorkRepo 只提供收藏服务用到的查询与计数回写。
type fakeWorkRepo struct {
	works      map[uint]*model.Work
	starCounts map[uint]int64
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
	r.starCounts[id] = count
	return nil
}

type fixture struct {
	svc       Service
	starRepo  *fakeStarRepo
	workRepo  *fakeWorkRepo
	workID    string
	workDBID  uint
	privateID string
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	const (
		ownerDBID   = uint(1)
		workDBID    = uint(10)
		privateDBID = uint(11)
	)

	workID, err := idgen.GeneratePublicID(workDBID, idgen.EntityTypeWork)
	if err != nil {
		t.Fatal(err)
	}
	privateID, err := idgen.GeneratePublicID(privateDBID, idgen.EntityTypeWork)
	if err != nil {
		t.Fatal(err)
	}

	workRepo := &fakeWorkRepo{
		works: map[uint]*model.Work{
			workDBID: {
				ID:        workID,
				DBID:      workDBID,
				OwnerDBID: ownerDBID,
				Status:    model.WorkStatusPublished,
			},
			privateDBID: {
				ID:        privateID,
				DBID:      privateDBID,
				OwnerDBID: ownerDBID,
				Status:    model.WorkStatusPrivate,
			},
		},
		starCounts: make(map[uint]int64),
	}
	starRepo := newFakeStarRepo()

	return &fixture{
		svc:       NewService(starRepo, workRepo),
		starRepo:  starRepo,
		workRepo:  workRepo,
		workID:    workID,
		workDBID:  workDBID,
		privateID: privateID,
	}
}

func TestStar(t *testing.T) {
	ctx := context.Background()

	t.Run("收藏成功并刷新计数", func(t *testing.T) {
		f := newFixture(t)
		if err := f.svc.Star(ctx, 2, f.workID); err != nil {
			t.Fatalf("Star() error = %v", err)
		}
		starred, err := f.svc.IsStarred(ctx, 2, f.workID)
		if err != nil {
			t.Fatalf("IsStarred() error = %v", err)
		}
		if !starred {
			t.Error("收藏后 IsStarred 应为 true")
		}
		if f.workRepo.starCounts[f.workDBID] != 1 {
			t.Errorf("作品冗余计数 = %d, want 1", f.workRepo.starCounts[f.workDBID])
		}
	})

	t.Run("重复收藏返回冲突", func(t *testing.T) {
		f := newFixture(t)
		if err := f.svc.Star(ctx, 2, f.workID); err != nil {
			t.Fatalf("Star() error = %v", err)
		}
		if err := f.svc.Star(ctx, 2, f.workID); !errors.Is(err, constant.ErrAlreadyStarred) {
			t.Errorf("应返回 ErrAlreadyStarred, got %v", err)
		}
	})

	t.Run("私有作品对陌生人按不存在处理", func(t *testing.T) {
		f := newFixture(t)
		if err := f.svc.Star(ctx, 2, f.privateID); !errors.Is(err, constant.ErrNotFound) {
			t.Errorf("应返回 ErrNotFound, got %v", err)
		}
	})

	t.Run("所有者可收藏自己的私有作品", func(t *testing.T) {
		f := newFixture(t)
		if err := f.svc.Star(ctx, 1, f.privateID); err != nil {
			t.Fatalf("Star() error = %v", err)
		}
	})
}

func TestUnstar(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	if err := f.svc.Star(ctx, 2, f.workID); err != nil {
		t.Fatalf("Star() error = %v", err)
	}

	t.Run("取消收藏后计数归零", func(t *testing.T) {
		if err := f.svc.Unstar(ctx, 2, f.workID); err != nil {
			t.Fatalf("Unstar() error = %v", err)
		}
		starred, _ := f.svc.IsStarred(ctx, 2, f.workID)
		if starred {
			t.Error("取消收藏后 IsStarred 应为 false")
		}
		if f.workRepo.starCounts[f.workDBID] != 0 {
			t.Errorf("作品冗余计数 = %d, want 0", f.workRepo.starCounts[f.workDBID])
		}
	})

	t.Run("未收藏时取消为空操作", func(t *testing.T) {
		if err := f.svc.Unstar(ctx, 99, f.workID); err != nil {
			t.Errorf("Unstar() error = %v", err)
		}
	})
}

func TestReconcileStarCounts(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	for _, userDBID := range []uint{2, 3, 4} {
		if err := f.svc.Star(ctx, userDBID, f.workID); err != nil {
			t.Fatalf("Star() error = %v", err)
		}
	}

	// 模拟即时刷新失败造成的计数漂移
	f.workRepo.starCounts[f.workDBID] = 99

	if err := f.svc.ReconcileStarCounts(ctx); err != nil {
		t.Fatalf("ReconcileStarCounts() error = %v", err)
	}
	if got := f.workRepo.starCounts[f.workDBID]; got != 3 {
		t.Errorf("对账后的计数 = %d, want 3", got)
	}
}
