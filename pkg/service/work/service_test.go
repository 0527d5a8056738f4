package work

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/muselink-c/muselink-app/internal/infra/storage"
	"github.com/muselink-c/muselink-app/pkg/constant"
	"github.com/muselink-c/muselink-app/pkg/domain/model"
	"github.com/muselink-c/muselink-app/pkg/idgen"
	"github.com/muselink-c/muselink-app/pkg/service/utility"
)

func TestMain(m *testing.M) {
	if err := idgen.InitSqidsEncoder(); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

// fakeWorkRepo 是 WorkRepository 的内存实现。
type fakeWorkRepo struct {
	works      map[uint]*model.Work
	nextID     uint
	playCounts map[uint]int64
	starCounts map[uint]int64
	createErr  error
}

func newFakeWorkRepo() *fakeWorkRepo {
	return &fakeWorkRepo{
		works:      make(map[uint]*model.Work),
		nextID:     1,
		playCounts: make(map[uint]int64),
		starCounts: make(map[uint]int64),
	}
}

func (r *fakeWorkRepo) Create(ctx context.Context, params *model.CreateWorkParams) (*model.Work, error) {
	if r.createErr != nil {
		return nil, r.createErr
	}
	dbID := r.nextID
	r.nextID++
	publicID, err := idgen.GeneratePublicID(dbID, idgen.EntityTypeWork)
	if err != nil {
		return nil, err
	}
	ownerID, err := idgen.GeneratePublicID(params.OwnerDBID, idgen.EntityTypeUser)
	if err != nil {
		return nil, err
	}
	work := &model.Work{
		ID:                 publicID,
		DBID:               dbID,
		OwnerID:            ownerID,
		OwnerDBID:          params.OwnerDBID,
		Title:              params.Title,
		Description:        params.Description,
		Genre:              params.Genre,
		FilePath:           params.FilePath,
		FileSize:           params.FileSize,
		AllowCollaboration: params.AllowCollaboration,
		Status:             params.Status,
	}
	r.works[dbID] = work
	return work, nil
}

func (r *fakeWorkRepo) FindByID(ctx context.Context, id uint) (*model.Work, error) {
	if w, ok := r.works[id]; ok {
		return w, nil
	}
	return nil, fmt.Errorf("%w: 作品不存在", constant.ErrNotFound)
}

func (r *fakeWorkRepo) Update(ctx context.Context, id uint, params *model.UpdateWorkParams) (*model.Work, error) {
	w, ok := r.works[id]
	if !ok {
		return nil, fmt.Errorf("%w: 作品不存在", constant.ErrNotFound)
	}
	if params.Title != nil {
		w.Title = *params.Title
	}
	if params.Description != nil {
		w.Description = *params.Description
	}
	if params.Status != nil {
		w.Status = *params.Status
	}
	if params.AllowCollaboration != nil {
		w.AllowCollaboration = *params.AllowCollaboration
	}
	return w, nil
}

func (r *fakeWorkRepo) UpdateCanonicalFile(ctx context.Context, id uint, filePath string, fileSize int64) error {
	w, ok := r.works[id]
	if !ok {
		return fmt.Errorf("%w: 作品不存在", constant.ErrNotFound)
	}
	w.FilePath = filePath
	w.FileSize = fileSize
	return nil
}

func (r *fakeWorkRepo) Delete(ctx context.Context, id uint) error {
	if _, ok := r.works[id]; !ok {
		return fmt.Errorf("%w: 作品不存在", constant.ErrNotFound)
	}
	delete(r.works, id)
	return nil
}

func (r *fakeWorkRepo) ListByUser(ctx context.Context, userDBID uint, page, pageSize int) ([]model.WorkListItem, int64, error) {
	var items []model.WorkListItem
	for _, w := range r.works {
		if w.OwnerDBID == userDBID {
			items = append(items, model.WorkListItem{ID: w.ID, Title: w.Title})
		}
	}
	return items, int64(len(items)), nil
}

func (r *fakeWorkRepo) ListLatest(ctx context.Context, page, pageSize int) ([]model.WorkListItem, int64, error) {
	var items []model.WorkListItem
	for _, w := range r.works {
		if w.Status == model.WorkStatusPublished {
			items = append(items, model.WorkListItem{ID: w.ID, Title: w.Title})
		}
	}
	return items, int64(len(items)), nil
}

func (r *fakeWorkRepo) IncrementPlayCount(ctx context.Context, id uint, delta int64) error {
	r.playCounts[id] += delta
	return nil
}

func (r *fakeWorkRepo) SetStarCount(ctx context.Context, id uint, count int64) error {
	r.starCounts[id] = count
	return nil
}

// fakeStorage 记录上传与删除调用的存储桩。
type fakeStorage struct {
	uploads []string
	deleted []string
}

func (f *fakeStorage) Upload(ctx context.Context, file io.Reader, objectKey string) (*storage.UploadResult, error) {
	size, err := io.Copy(io.Discard, file)
	if err != nil {
		return nil, err
	}
	f.uploads = append(f.uploads, objectKey)
	return &storage.UploadResult{Source: "/uploads/" + objectKey, Size: size, MimeType: "audio/midi"}, nil
}

func (f *fakeStorage) Get(ctx context.Context, source string) (io.ReadCloser, error) {
	return io.NopCloser(strings.NewReader("midi-bytes")), nil
}

func (f *fakeStorage) Stream(ctx context.Context, source string, writer io.Writer) error {
	_, err := writer.Write([]byte("midi-bytes"))
	return err
}

func (f *fakeStorage) Delete(ctx context.Context, sources []string) error {
	f.deleted = append(f.deleted, sources...)
	return nil
}

func (f *fakeStorage) GetDownloadURL(ctx context.Context, source string, options storage.DownloadURLOptions) (string, error) {
	return "/api/download/local/" + options.PublicID + "?expires=1&sign=s", nil
}

func (f *fakeStorage) IsExist(ctx context.Context, source string) (bool, error) {
	return true, nil
}

func (f *fakeStorage) List(ctx context.Context, prefix string) ([]storage.FileInfo, error) {
	return nil, nil
}

type fixture struct {
	svc     Service
	repo    *fakeWorkRepo
	storage *fakeStorage
	cache   utility.CacheService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	repo := newFakeWorkRepo()
	st := &fakeStorage{}
	cache := utility.NewMemoryCacheService()
	t.Cleanup(func() {
		if stopper, ok := cache.(interface{ Stop() }); ok {
			stopper.Stop()
		}
	})
	return &fixture{
		svc:     NewService(repo, st, cache),
		repo:    repo,
		storage: st,
		cache:   cache,
	}
}

func midiInput(title string, status int) *CreateWorkInput {
	content := []byte("MThd\x00\x00\x00\x06")
	return &CreateWorkInput{
		Title:    title,
		Genre:    "classical",
		Status:   status,
		File:     bytes.NewReader(content),
		FileName: "piece.mid",
		FileSize: int64(len(content)),
	}
}

func TestCreateWork(t *testing.T) {
	ctx := context.Background()

	t.Run("创建成功并保存权威文件", func(t *testing.T) {
		f := newFixture(t)
		work, err := f.svc.Create(ctx, 1, midiInput("  月光奏鸣曲  ", model.WorkStatusPublished))
		if err != nil {
			t.Fatalf("Create() error = %v", err)
		}
		if work.Title != "月光奏鸣曲" {
			t.Errorf("标题应被修剪, got %q", work.Title)
		}
		if len(f.storage.uploads) != 1 {
			t.Fatalf("应上传1个文件, got %d", len(f.storage.uploads))
		}
		if !strings.HasPrefix(f.storage.uploads[0], "works/canonical/") {
			t.Errorf("上传键前缀异常: %q", f.storage.uploads[0])
		}
		if !strings.HasSuffix(f.storage.uploads[0], ".mid") {
			t.Errorf("上传键应保留扩展名: %q", f.storage.uploads[0])
		}
		if work.FilePath != "/uploads/"+f.storage.uploads[0] {
			t.Errorf("FilePath = %q, 应指向上传结果", work.FilePath)
		}
	})

	t.Run("建档失败时回收已上传的文件", func(t *testing.T) {
		f := newFixture(t)
		f.repo.createErr = errors.New("db down")
		_, err := f.svc.Create(ctx, 1, midiInput("标题", model.WorkStatusPublished))
		if err == nil {
			t.Fatal("建档失败应返回错误")
		}
		if len(f.storage.deleted) != 1 {
			t.Errorf("应回收1个文件, got %d", len(f.storage.deleted))
		}
	})
}

func TestCreateWorkValidation(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	tests := []struct {
		name  string
		input *CreateWorkInput
	}{
		{"缺少文件", &CreateWorkInput{Title: "t", FileName: "a.mid", FileSize: 10, Status: model.WorkStatusPublished}},
		{"非MIDI扩展名", &CreateWorkInput{Title: "t", File: strings.NewReader("x"), FileName: "a.mp3", FileSize: 10, Status: model.WorkStatusPublished}},
		{"文件超过大小上限", &CreateWorkInput{Title: "t", File: strings.NewReader("x"), FileName: "a.mid", FileSize: MaxWorkFileSize + 1, Status: model.WorkStatusPublished}},
		{"空文件", &CreateWorkInput{Title: "t", File: strings.NewReader(""), FileName: "a.mid", FileSize: 0, Status: model.WorkStatusPublished}},
		{"标题为空", &CreateWorkInput{Title: "   ", File: strings.NewReader("x"), FileName: "a.mid", FileSize: 10, Status: model.WorkStatusPublished}},
		{"非法状态", &CreateWorkInput{Title: "t", File: strings.NewReader("x"), FileName: "a.mid", FileSize: 10, Status: 99}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.svc.Create(ctx, 1, tt.input)
			if !errors.Is(err, constant.ErrValidation) {
				t.Errorf("应返回 ErrValidation, got %v", err)
			}
		})
	}

	if len(f.storage.uploads) != 0 {
		t.Errorf("校验失败不应产生上传, got %d", len(f.storage.uploads))
	}
}

func TestGetWork(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	private, err := f.svc.Create(ctx, 1, midiInput("私有作品", model.WorkStatusPrivate))
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	t.Run("所有者可见私有作品", func(t *testing.T) {
		got, err := f.svc.Get(ctx, private.ID, 1)
		if err != nil {
			t.Fatalf("Get() error = %v", err)
		}
		if got.DBID != private.DBID {
			t.Errorf("返回了错误的作品: %d", got.DBID)
		}
	})

	t.Run("私有作品对陌生人按不存在处理", func(t *testing.T) {
		if _, err := f.svc.Get(ctx, private.ID, 2); !errors.Is(err, constant.ErrNotFound) {
			t.Errorf("应返回 ErrNotFound, got %v", err)
		}
	})

	t.Run("非法公共ID按不存在处理", func(t *testing.T) {
		if _, err := f.svc.Get(ctx, "!!bad!!", 1); !errors.Is(err, constant.ErrNotFound) {
			t.Errorf("应返回 ErrNotFound, got %v", err)
		}
	})
}

func TestUpdateAndDeleteAuthorization(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	work, err := f.svc.Create(ctx, 1, midiInput("作品", model.WorkStatusPublished))
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	t.Run("非所有者不能修改", func(t *testing.T) {
		title := "改名"
		_, err := f.svc.Update(ctx, work.ID, 2, &model.UpdateWorkParams{Title: &title})
		if !errors.Is(err, constant.ErrForbidden) {
			t.Errorf("应返回 ErrForbidden, got %v", err)
		}
	})

	t.Run("非法状态更新被拒绝", func(t *testing.T) {
		bad := 99
		_, err := f.svc.Update(ctx, work.ID, 1, &model.UpdateWorkParams{Status: &bad})
		if !errors.Is(err, constant.ErrValidation) {
			t.Errorf("应返回 ErrValidation, got %v", err)
		}
	})

	t.Run("所有者修改成功", func(t *testing.T) {
		title := "新标题"
		updated, err := f.svc.Update(ctx, work.ID, 1, &model.UpdateWorkParams{Title: &title})
		if err != nil {
			t.Fatalf("Update() error = %v", err)
		}
		if updated.Title != "新标题" {
			t.Errorf("Title = %q, want 新标题", updated.Title)
		}
	})

	t.Run("非所有者不能删除", func(t *testing.T) {
		if err := f.svc.Delete(ctx, work.ID, 2); !errors.Is(err, constant.ErrForbidden) {
			t.Errorf("应返回 ErrForbidden, got %v", err)
		}
	})

	t.Run("所有者删除成功", func(t *testing.T) {
		if err := f.svc.Delete(ctx, work.ID, 1); err != nil {
			t.Fatalf("Delete() error = %v", err)
		}
	})
}

func TestRecordPlay(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	published, err := f.svc.Create(ctx, 1, midiInput("公开作品", model.WorkStatusPublished))
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	private, err := f.svc.Create(ctx, 1, midiInput("私有作品", model.WorkStatusPrivate))
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	countKey := fmt.Sprintf("muselink:play:count:%d", published.DBID)

	t.Run("同一访问者24小时内只计一次", func(t *testing.T) {
		if err := f.svc.RecordPlay(ctx, published.ID, "1.2.3.4"); err != nil {
			t.Fatalf("RecordPlay() error = %v", err)
		}
		if err := f.svc.RecordPlay(ctx, published.ID, "1.2.3.4"); err != nil {
			t.Fatalf("RecordPlay() error = %v", err)
		}
		got, _ := f.cache.Get(ctx, countKey)
		if got != "1" {
			t.Errorf("缓存计数 = %q, want 1", got)
		}
	})

	t.Run("不同访问者分别计数", func(t *testing.T) {
		if err := f.svc.RecordPlay(ctx, published.ID, "5.6.7.8"); err != nil {
			t.Fatalf("RecordPlay() error = %v", err)
		}
		got, _ := f.cache.Get(ctx, countKey)
		if got != "2" {
			t.Errorf("缓存计数 = %q, want 2", got)
		}
	})

	t.Run("私有作品播放按不存在处理", func(t *testing.T) {
		if err := f.svc.RecordPlay(ctx, private.ID, "1.2.3.4"); !errors.Is(err, constant.ErrNotFound) {
			t.Errorf("应返回 ErrNotFound, got %v", err)
		}
	})
}

func TestFlushPlayCounts(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	published, err := f.svc.Create(ctx, 1, midiInput("公开作品", model.WorkStatusPublished))
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	for _, visitor := range []string{"a", "b", "c"} {
		if err := f.svc.RecordPlay(ctx, published.ID, visitor); err != nil {
			t.Fatalf("RecordPlay() error = %v", err)
		}
	}

	if err := f.svc.FlushPlayCounts(ctx); err != nil {
		t.Fatalf("FlushPlayCounts() error = %v", err)
	}
	if got := f.repo.playCounts[published.DBID]; got != 3 {
		t.Errorf("刷库后的播放数 = %d, want 3", got)
	}

	// 刷库后缓存计数被清零，重复刷库不再累加
	if err := f.svc.FlushPlayCounts(ctx); err != nil {
		t.Fatalf("FlushPlayCounts() error = %v", err)
	}
	if got := f.repo.playCounts[published.DBID]; got != 3 {
		t.Errorf("重复刷库不应再累加, got %d", got)
	}
}

func TestGetDownloadURL(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	work, err := f.svc.Create(ctx, 1, midiInput("作品", model.WorkStatusPrivate))
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	t.Run("所有者可获取下载链接", func(t *testing.T) {
		url, err := f.svc.GetDownloadURL(ctx, work.ID, 1)
		if err != nil {
			t.Fatalf("GetDownloadURL() error = %v", err)
		}
		if !strings.Contains(url, work.ID) {
			t.Errorf("下载链接应包含作品公共ID: %q", url)
		}
	})

	t.Run("陌生人无法获取私有作品链接", func(t *testing.T) {
		if _, err := f.svc.GetDownloadURL(ctx, work.ID, 2); !errors.Is(err, constant.ErrNotFound) {
			t.Errorf("应返回 ErrNotFound, got %v", err)
		}
	})
}

func TestNormalizePage(t *testing.T) {
	tests := []struct {
		name         string
		page, size   int
		wantPage     int
		wantPageSize int
	}{
		{"默认值", 0, 0, 1, 10},
		{"负数页码", -3, 20, 1, 20},
		{"超过上限", 2, 500, 2, 100},
		{"正常范围", 3, 30, 3, 30},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, size := normalizePage(tt.page, tt.size)
			if page != tt.wantPage || size != tt.wantPageSize {
				t.Errorf("normalizePage(%d, %d) = (%d, %d), want (%d, %d)",
					tt.page, tt.size, page, size, tt.wantPage, tt.wantPageSize)
			}
		})
	}
}
