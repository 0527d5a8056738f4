package storage

import (
	"bytes"
	"context"
	"errors"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/muselink-c/muselink-app/pkg/constant"
)

func newTestLocalProvider(t *testing.T) *LocalProvider {
	t.Helper()
	provider := NewLocalProvider(t.TempDir(), "test-signing-secret")
	return provider.(*LocalProvider)
}

func TestLocalUploadAndStream(t *testing.T) {
	ctx := context.Background()
	p := newTestLocalProvider(t)

	content := []byte("MThd\x00\x00\x00\x06\x00\x01\x00\x02\x01\xe0")
	result, err := p.Upload(ctx, bytes.NewReader(content), "works/1/versions/demo.mid")
	if err != nil {
		t.Fatalf("Upload() error = %v", err)
	}
	if result.Size != int64(len(content)) {
		t.Errorf("Size = %d, want %d", result.Size, len(content))
	}
	if result.MimeType != "audio/midi" {
		t.Errorf("MimeType = %q, want audio/midi", result.MimeType)
	}

	exists, err := p.IsExist(ctx, result.Source)
	if err != nil {
		t.Fatalf("IsExist() error = %v", err)
	}
	if !exists {
		t.Error("上传后的文件应当存在")
	}

	var buf bytes.Buffer
	if err := p.Stream(ctx, result.Source, &buf); err != nil {
		t.Fatalf("Stream() error = %v", err)
	}
	if !bytes.Equal(buf.Bytes(), content) {
		t.Error("读出的内容与写入不一致")
	}
}

func TestLocalStreamMissingFile(t *testing.T) {
	ctx := context.Background()
	p := newTestLocalProvider(t)

	err := p.Stream(ctx, filepath.Join(p.basePath, "no-such-file.mid"), &bytes.Buffer{})
	if !errors.Is(err, constant.ErrNotFound) {
		t.Errorf("缺失文件应返回 ErrNotFound, got %v", err)
	}
}

func TestLocalDelete(t *testing.T) {
	ctx := context.Background()
	p := newTestLocalProvider(t)

	result, err := p.Upload(ctx, strings.NewReader("data"), "works/1/versions/tmp.mid")
	if err != nil {
		t.Fatalf("Upload() error = %v", err)
	}

	// 含不存在路径的批量删除不应报错
	if err := p.Delete(ctx, []string{result.Source, filepath.Join(p.basePath, "ghost.mid")}); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}

	exists, err := p.IsExist(ctx, result.Source)
	if err != nil {
		t.Fatalf("IsExist() error = %v", err)
	}
	if exists {
		t.Error("删除后的文件不应存在")
	}
}

func TestLocalDownloadURLSignature(t *testing.T) {
	ctx := context.Background()
	p := newTestLocalProvider(t)

	downloadURL, err := p.GetDownloadURL(ctx, "ignored", DownloadURLOptions{
		PublicID:  "aB3x",
		ExpiresIn: 600,
	})
	if err != nil {
		t.Fatalf("GetDownloadURL() error = %v", err)
	}

	parsed, err := url.Parse(downloadURL)
	if err != nil {
		t.Fatalf("下载链接无法解析: %v", err)
	}
	if !strings.HasPrefix(parsed.Path, "/api/download/local/") {
		t.Errorf("下载链接路径异常: %q", parsed.Path)
	}
	expires, err := strconv.ParseInt(parsed.Query().Get("expires"), 10, 64)
	if err != nil {
		t.Fatalf("expires 参数解析失败: %v", err)
	}
	sign := parsed.Query().Get("sign")

	tests := []struct {
		name     string
		publicID string
		expires  int64
		sign     string
		want     bool
	}{
		{"合法签名", "aB3x", expires, sign, true},
		{"签名被篡改", "aB3x", expires, sign + "x", false},
		{"公共ID不匹配", "zZ9q", expires, sign, false},
		{"有效期被篡改", "aB3x", expires + 100, sign, false},
		{"已过期", "aB3x", time.Now().Add(-time.Minute).Unix(), p.sign("aB3x", time.Now().Add(-time.Minute).Unix()), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := p.VerifySignature(tt.publicID, tt.expires, tt.sign); got != tt.want {
				t.Errorf("VerifySignature() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestLocalDownloadURLRequiresSecret(t *testing.T) {
	ctx := context.Background()
	p := NewLocalProvider(t.TempDir(), "").(*LocalProvider)

	if _, err := p.GetDownloadURL(ctx, "src", DownloadURLOptions{PublicID: "aB3x"}); err == nil {
		t.Error("无签名密钥时应当报错")
	}
	if _, err := newTestLocalProvider(t).GetDownloadURL(ctx, "src", DownloadURLOptions{}); err == nil {
		t.Error("缺少公共ID时应当报错")
	}
}

func TestLocalList(t *testing.T) {
	ctx := context.Background()
	p := newTestLocalProvider(t)

	for _, key := range []string{"works/1/versions/a.mid", "works/1/versions/b.mid", "works/2/cover.png"} {
		if _, err := p.Upload(ctx, strings.NewReader("x"), key); err != nil {
			t.Fatalf("Upload(%q) error = %v", key, err)
		}
	}

	files, err := p.List(ctx, "works/1")
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(files) != 2 {
		t.Errorf("List() 返回 %d 个文件, want 2", len(files))
	}

	// 不存在的前缀返回空列表而不是错误
	files, err = p.List(ctx, "works/999")
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(files) != 0 {
		t.Errorf("空前缀应返回空列表, got %d", len(files))
	}
}

func TestDetectAudioMimeType(t *testing.T) {
	tests := []struct {
		name   string
		header []byte
		file   string
		want   string
	}{
		{"MIDI 按扩展名修正", []byte("MThd\x00\x00\x00\x06"), "song.mid", "audio/midi"},
		{"MIDI 大写扩展名", []byte("MThd\x00\x00\x00\x06"), "song.MIDI", "audio/midi"},
		{"未知二进制按流处理", []byte{0x00, 0x01, 0x02}, "blob.bin", "application/octet-stream"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := detectAudioMimeType(tt.header, tt.file); got != tt.want {
				t.Errorf("detectAudioMimeType() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestLocalUploadNoLeftoverTempFiles(t *testing.T) {
	ctx := context.Background()
	p := newTestLocalProvider(t)

	if _, err := p.Upload(ctx, strings.NewReader("payload"), "works/3/versions/c.mid"); err != nil {
		t.Fatalf("Upload() error = %v", err)
	}

	entries, err := os.ReadDir("data/temp")
	if err != nil {
		if os.IsNotExist(err) {
			return
		}
		t.Fatalf("读取临时目录失败: %v", err)
	}
	for _, e := range entries {
		if strings.HasPrefix(e.Name(), "muselink-app-processing-") {
			t.Errorf("上传完成后临时文件未清理: %s", e.Name())
		}
	}
}
