package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/muselink-c/muselink-app/internal/pkg/security"
	"github.com/muselink-c/muselink-app/pkg/constant"
	"github.com/muselink-c/muselink-app/pkg/domain/model"
)

// fakeUserRepo 是 UserRepository 的内存实现，仅覆盖认证逻辑用到的方法。
type fakeUserRepo struct {
	users      map[uint]*model.User
	nextID     uint
	lastLogins map[uint]int
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		users:      make(map[uint]*model.User),
		nextID:     1,
		lastLogins: make(map[uint]int),
	}
}

func (r *fakeUserRepo) FindByID(ctx context.Context, id uint) (*model.User, error) {
	if u, ok := r.users[id]; ok {
		return u, nil
	}
	return nil, nil
}

func (r *fakeUserRepo) Create(ctx context.Context, entity *model.User) error {
	entity.ID = r.nextID
	r.nextID++
	r.users[entity.ID] = entity
	return nil
}

func (r *fakeUserRepo) Update(ctx context.Context, entity *model.User) error {
	r.users[entity.ID] = entity
	return nil
}

func (r *fakeUserRepo) Delete(ctx context.Context, id uint) error {
	delete(r.users, id)
	return nil
}

func (r *fakeUserRepo) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) FindByIDs(ctx context.Context, ids []uint) (map[uint]*model.User, error) {
	result := make(map[uint]*model.User)
	for _, id := range ids {
		if u, ok := r.users[id]; ok {
			result[id] = u
		}
	}
	return result, nil
}

func (r *fakeUserRepo) UpdateLastLogin(ctx context.Context, id uint) error {
	r.lastLogins[id]++
	return nil
}

func mustRegister(t *testing.T, svc AuthService, username, email, password string) *model.User {
	t.Helper()
	user, err := svc.Register(context.Background(), username, email, "", password)
	if err != nil {
		t.Fatalf("Register(%q) error = %v", username, err)
	}
	return user
}

func TestRegister(t *testing.T) {
	ctx := context.Background()
	repo := newFakeUserRepo()
	svc := NewAuthService(repo)

	t.Run("注册成功并写入密码哈希", func(t *testing.T) {
		user := mustRegister(t, svc, "composer", "c@muselink.dev", "s3cret-pass")
		if user.ID == 0 {
			t.Error("注册后应分配内部ID")
		}
		if user.PasswordHash == "s3cret-pass" {
			t.Error("密码不应明文存储")
		}
		if !security.CheckPasswordHash("s3cret-pass", user.PasswordHash) {
			t.Error("密码哈希校验失败")
		}
		if user.Status != model.UserStatusActive {
			t.Errorf("新用户状态 = %v, want Active", user.Status)
		}
	})

	t.Run("昵称缺省时回退为用户名", func(t *testing.T) {
		user := mustRegister(t, svc, "nameless", "n@muselink.dev", "pass-word-1")
		if user.Nickname != "nameless" {
			t.Errorf("Nickname = %q, want nameless", user.Nickname)
		}
	})

	t.Run("用户名重复返回冲突", func(t *testing.T) {
		_, err := svc.Register(ctx, "composer", "other@muselink.dev", "", "pass-word-1")
		if !errors.Is(err, constant.ErrConflict) {
			t.Errorf("重复用户名应返回 ErrConflict, got %v", err)
		}
	})

	t.Run("邮箱重复返回冲突且忽略大小写", func(t *testing.T) {
		_, err := svc.Register(ctx, "another", "C@MuseLink.dev", "", "pass-word-1")
		if !errors.Is(err, constant.ErrConflict) {
			t.Errorf("重复邮箱应返回 ErrConflict, got %v", err)
		}
	})

	t.Run("用户名首尾空白被修剪", func(t *testing.T) {
		user := mustRegister(t, svc, "  trimmed  ", "t@muselink.dev", "pass-word-1")
		if user.Username != "trimmed" {
			t.Errorf("Username = %q, want trimmed", user.Username)
		}
	})
}

func TestLogin(t *testing.T) {
	ctx := context.Background()
	repo := newFakeUserRepo()
	svc := NewAuthService(repo)
	registered := mustRegister(t, svc, "composer", "c@muselink.dev", "s3cret-pass")

	t.Run("登录成功并刷新最后登录时间", func(t *testing.T) {
		user, err := svc.Login(ctx, "composer", "s3cret-pass")
		if err != nil {
			t.Fatalf("Login() error = %v", err)
		}
		if user.ID != registered.ID {
			t.Errorf("登录返回的用户ID = %d, want %d", user.ID, registered.ID)
		}
		if repo.lastLogins[registered.ID] != 1 {
			t.Error("登录成功后应更新最后登录时间")
		}
	})

	t.Run("密码错误与用户不存在返回同一错误", func(t *testing.T) {
		_, errWrongPass := svc.Login(ctx, "composer", "wrong-pass")
		_, errNoUser := svc.Login(ctx, "ghost", "whatever")
		if !errors.Is(errWrongPass, constant.ErrUnauthorized) {
			t.Errorf("密码错误应返回 ErrUnauthorized, got %v", errWrongPass)
		}
		if !errors.Is(errNoUser, constant.ErrUnauthorized) {
			t.Errorf("用户不存在应返回 ErrUnauthorized, got %v", errNoUser)
		}
	})

	t.Run("被封禁的账号拒绝登录", func(t *testing.T) {
		banned := mustRegister(t, svc, "banned", "b@muselink.dev", "pass-word-1")
		banned.Status = model.UserStatusBanned
		_, err := svc.Login(ctx, "banned", "pass-word-1")
		if !errors.Is(err, constant.ErrForbidden) {
			t.Errorf("封禁账号登录应返回 ErrForbidden, got %v", err)
		}
	})
}
