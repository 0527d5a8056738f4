/*
 * @Description: 定义了所有存储驱动需要遵守的接口和公共结构
 * @Author: 沐音
 * @Date: 2025-09-12 00:35:10
 * @LastEditTime: 2025-11-28 14:02:46
 * @LastEditors: 沐音
 */
package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/muselink-c/muselink-app/pkg/config"
)

// FileInfo 封装了 List 操作返回的单个对象的信息。
// 统一本地和云端存储的列表返回结构，让孤儿文件清理任务可以透明处理。
type FileInfo struct {
	Key     string
	Size    int64
	ModTime time.Time
}

// UploadResult 封装了上传操作成功后的文件信息。
type UploadResult struct {
	Source   string
	Size     int64
	MimeType string
}

// DownloadURLOptions 包含了生成下载链接时可能需要的额外参数
type DownloadURLOptions struct {
	PublicID  string // 文件的公共ID，用于本地存储签名
	ExpiresIn int64  // 链接的有效时长（秒）
}

// ErrFeatureNotSupported 表示某个功能不被当前 Provider 支持
var ErrFeatureNotSupported = errors.New("feature not supported by this provider")

// IStorageProvider 定义了所有存储提供者必须实现的接口。
// 音频文件按 objectKey（相对键）存放；source 是存储返回的权威引用，
// 本地存储为绝对路径，S3 为对象键。
type IStorageProvider interface {
	// Upload 将文件流写入指定的对象键。
	Upload(ctx context.Context, file io.Reader, objectKey string) (*UploadResult, error)
	// Get 返回一个可读的文件流，用于服务内部的文件处理。
	Get(ctx context.Context, source string) (io.ReadCloser, error)
	// Stream 将文件内容以流式传输到给定的写入器。
	Stream(ctx context.Context, source string, writer io.Writer) error
	// Delete 删除一个或多个物理文件。
	Delete(ctx context.Context, sources []string) error
	// GetDownloadURL 为文件生成一个临时的、可公开访问的下载链接。
	GetDownloadURL(ctx context.Context, source string, options DownloadURLOptions) (string, error)
	// IsExist 检查给定的源路径是否存在物理文件。
	IsExist(ctx context.Context, source string) (bool, error)
	// List 列出指定前缀下的所有对象。
	List(ctx context.Context, prefix string) ([]FileInfo, error)
}

// NewProviderFromConfig 根据配置构建存储提供者，默认使用本地磁盘。
func NewProviderFromConfig(cfg *config.Config) (IStorageProvider, error) {
	provider := cfg.GetString(config.KeyStorageProvider)
	switch provider {
	case "", "local":
		basePath := cfg.GetString(config.KeyStorageBasePath)
		if basePath == "" {
			basePath = "data/uploads"
		}
		return NewLocalProvider(basePath, cfg.GetString(config.KeyStorageSigningSecret)), nil
	case "s3":
		return NewAWSS3Provider(cfg)
	default:
		return nil, fmt.Errorf("不支持的存储提供者: %s (支持: local, s3)", provider)
	}
}
