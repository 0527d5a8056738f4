package auth

import (
	"os"
	"strings"
	"testing"

	"github.com/muselink-c/muselink-app/pkg/idgen"
)

func TestMain(m *testing.M) {
	if err := idgen.InitSqidsEncoder(); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

func TestGenerateAndParseToken(t *testing.T) {
	secret := []byte("test-secret-key")

	token, err := GenerateToken(42, "composer", secret)
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}

	claims, err := ParseToken(token, secret)
	if err != nil {
		t.Fatalf("ParseToken() error = %v", err)
	}
	if claims.Username != "composer" {
		t.Errorf("Username = %q, want composer", claims.Username)
	}
	if claims.Issuer != "muselink-app" {
		t.Errorf("Issuer = %q, want muselink-app", claims.Issuer)
	}

	dbID, err := idgen.DecodePublicIDWithType(claims.UserID, idgen.EntityTypeUser)
	if err != nil {
		t.Fatalf("解码用户公共ID失败: %v", err)
	}
	if dbID != 42 {
		t.Errorf("用户ID = %d, want 42", dbID)
	}
}

func TestParseToken(t *testing.T) {
	secret := []byte("test-secret-key")
	token, err := GenerateToken(1, "composer", secret)
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}

	tests := []struct {
		name    string
		token   string
		secret  []byte
		wantErr bool
	}{
		{
			name:    "合法令牌",
			token:   token,
			secret:  secret,
			wantErr: false,
		},
		{
			name:    "错误的密钥",
			token:   token,
			secret:  []byte("wrong-secret"),
			wantErr: true,
		},
		{
			name:    "被篡改的令牌",
			token:   token[:len(token)-4] + "xxxx",
			secret:  secret,
			wantErr: true,
		},
		{
			name:    "空密钥",
			token:   token,
			secret:  nil,
			wantErr: true,
		},
		{
			name:    "非法格式",
			token:   "not.a.jwt",
			secret:  secret,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseToken(tt.token, tt.secret)
			if (err != nil) != tt.wantErr {
				t.Errorf("ParseToken() error = %v, wantErr = %v", err, tt.wantErr)
			}
		})
	}
}

func TestGenerateTokenRequiresSecret(t *testing.T) {
	if _, err := GenerateToken(1, "composer", nil); err == nil {
		t.Error("空密钥应当报错")
	}
	if _, err := GenerateRefreshToken(1, nil); err == nil {
		t.Error("空密钥应当报错")
	}
}

func TestRefreshTokenCarriesNoUsername(t *testing.T) {
	secret := []byte("test-secret-key")
	token, err := GenerateRefreshToken(7, secret)
	if err != nil {
		t.Fatalf("GenerateRefreshToken() error = %v", err)
	}
	claims, err := ParseToken(token, secret)
	if err != nil {
		t.Fatalf("ParseToken() error = %v", err)
	}
	if claims.Username != "" {
		t.Errorf("Refresh Token 不应携带用户名，got %q", claims.Username)
	}
	if !strings.HasPrefix(token, "eyJ") {
		t.Errorf("令牌格式异常: %q", token[:10])
	}
}
