/*
 * @Description: 本地磁盘存储驱动
 * @Author: 沐音
 * @Date: 2025-09-12 00:58:24
 * @LastEditTime: 2025-12-02 10:11:33
 * @LastEditors: 沐音
 */
package storage

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/muselink-c/muselink-app/pkg/constant"
)

// LocalProvider 实现了 IStorageProvider 接口，用于处理与本机磁盘文件系统的所有交互。
type LocalProvider struct {
	basePath      string
	signingSecret string
}

// NewLocalProvider 是 LocalProvider 的构造函数，接收存储根目录和用于URL签名的密钥。
func NewLocalProvider(basePath, secret string) IStorageProvider {
	return &LocalProvider{
		basePath:      basePath,
		signingSecret: secret,
	}
}

// detectAudioMimeType 根据文件头和扩展名推断 MIME 类型。
// http.DetectContentType 不认识 MIDI，需要按扩展名修正。
func detectAudioMimeType(header []byte, name string) string {
	mimeType := http.DetectContentType(header)

	switch strings.ToLower(filepath.Ext(name)) {
	case ".mid", ".midi":
		mimeType = "audio/midi"
	case ".mp3":
		if mimeType == "application/octet-stream" {
			mimeType = "audio/mpeg"
		}
	case ".wav":
		if mimeType == "application/octet-stream" {
			mimeType = "audio/wav"
		}
	}
	return mimeType
}

// copyFile 复制文件从 src 到 dst，用于跨文件系统的文件移动
func copyFile(src, dst string) error {
	sourceFile, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("无法打开源文件: %w", err)
	}
	defer sourceFile.Close()

	destFile, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("无法创建目标文件: %w", err)
	}
	defer destFile.Close()

	if _, err := io.Copy(destFile, sourceFile); err != nil {
		return fmt.Errorf("复制文件内容失败: %w", err)
	}

	// 确保数据写入磁盘
	if err := destFile.Sync(); err != nil {
		return fmt.Errorf("同步文件到磁盘失败: %w", err)
	}

	return nil
}

// Upload 实现了将文件流保存到本机磁盘的逻辑。
// 先写临时文件再移动到最终位置，避免出现半截文件。
func (p *LocalProvider) Upload(ctx context.Context, file io.Reader, objectKey string) (*UploadResult, error) {
	processingTempDir := "data/temp"
	if err := os.MkdirAll(processingTempDir, os.ModePerm); err != nil {
		return nil, fmt.Errorf("无法创建用于处理的临时目录 '%s': %w", processingTempDir, err)
	}

	tempFile, err := os.CreateTemp(processingTempDir, "muselink-app-processing-*.tmp")
	if err != nil {
		return nil, fmt.Errorf("无法在 '%s' 目录创建临时文件: %w", processingTempDir, err)
	}
	defer os.Remove(tempFile.Name())
	defer tempFile.Close()

	size, err := io.Copy(tempFile, file)
	if err != nil {
		return nil, fmt.Errorf("写入处理临时文件失败: %w", err)
	}

	if _, err := tempFile.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("无法重置临时文件指针以检测MIME类型: %w", err)
	}
	buffer := make([]byte, 512)
	n, err := tempFile.Read(buffer)
	if err != nil && err != io.EOF {
		return nil, fmt.Errorf("读取文件头以检测MIME类型失败: %w", err)
	}
	mimeType := detectAudioMimeType(buffer[:n], objectKey)

	finalPath := filepath.Join(p.basePath, objectKey)
	finalDir := filepath.Dir(finalPath)
	if err := os.MkdirAll(finalDir, os.ModePerm); err != nil {
		return nil, fmt.Errorf("无法创建存储子目录 '%s': %w", finalDir, err)
	}

	// 关闭文件句柄，准备移动
	tempFileName := tempFile.Name()
	tempFile.Close()

	// 尝试使用 os.Rename (高效)，如果失败则使用 copy + delete (兼容跨文件系统)
	if err := os.Rename(tempFileName, finalPath); err != nil {
		if err := copyFile(tempFileName, finalPath); err != nil {
			os.Remove(tempFileName)
			return nil, fmt.Errorf("复制文件到最终存储位置 '%s' 失败: %w", finalPath, err)
		}
		os.Remove(tempFileName)
	}

	result := &UploadResult{
		Source:   finalPath,
		Size:     size,
		MimeType: mimeType,
	}
	return result, nil
}

// Get 实现了从本机磁盘获取文件读取器的逻辑。
// 数据库中存储的是绝对路径，因此 source 本身就是要打开的完整路径。
func (p *LocalProvider) Get(ctx context.Context, source string) (io.ReadCloser, error) {
	file, err := os.Open(source)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: 物理文件不存在: %s", constant.ErrNotFound, source)
		}
		return nil, fmt.Errorf("无法打开物理文件 '%s': %w", source, err)
	}
	return file, nil
}

// Stream 实现了从本机磁盘流式读取文件并将其内容写入给定的 io.Writer。
func (p *LocalProvider) Stream(ctx context.Context, source string, writer io.Writer) error {
	file, err := os.Open(source)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: 物理文件不存在: %s", constant.ErrNotFound, source)
		}
		return fmt.Errorf("无法打开物理文件 '%s': %w", source, err)
	}
	defer file.Close()
	_, err = io.Copy(writer, file)
	if err != nil {
		return fmt.Errorf("流式传输文件内容时发生错误: %w", err)
	}
	return nil
}

// Delete 实现了删除本机上一个或多个物理文件的逻辑。
func (p *LocalProvider) Delete(ctx context.Context, sources []string) error {
	for _, source := range sources {
		err := os.Remove(source)
		if err != nil && !os.IsNotExist(err) {
			// 只记录错误，不中断整个批量删除过程
			log.Printf("警告: 删除本地资源 '%s' 失败: %v\n", source, err)
		}
	}
	return nil
}

// GetDownloadURL 为本地文件生成一个带签名的、有时间限制的临时下载链接。
func (p *LocalProvider) GetDownloadURL(ctx context.Context, source string, options DownloadURLOptions) (string, error) {
	if options.PublicID == "" {
		return "", errors.New("生成本地下载链接需要文件公共ID")
	}
	if p.signingSecret == "" {
		return "", errors.New("签名密钥未提供给LocalProvider")
	}
	expiresIn := options.ExpiresIn
	if expiresIn <= 0 {
		expiresIn = 3600 // 默认1小时
	}
	expires := time.Now().Add(time.Duration(expiresIn) * time.Second).Unix()
	signature := p.sign(options.PublicID, expires)
	downloadURL := fmt.Sprintf(
		"/api/download/local/%s?expires=%d&sign=%s",
		url.PathEscape(options.PublicID),
		expires,
		url.QueryEscape(signature),
	)
	return downloadURL, nil
}

// VerifySignature 校验本地下载链接的签名与有效期，供下载接口使用。
func (p *LocalProvider) VerifySignature(publicID string, expires int64, signature string) bool {
	if time.Now().Unix() > expires {
		return false
	}
	expected := p.sign(publicID, expires)
	return hmac.Equal([]byte(expected), []byte(signature))
}

func (p *LocalProvider) sign(publicID string, expires int64) string {
	stringToSign := fmt.Sprintf("%s:%d", publicID, expires)
	mac := hmac.New(sha256.New, []byte(p.signingSecret))
	mac.Write([]byte(stringToSign))
	return base64.URLEncoding.EncodeToString(mac.Sum(nil))
}

// IsExist 检查本地文件系统中指定路径的文件是否存在。
func (p *LocalProvider) IsExist(ctx context.Context, source string) (bool, error) {
	_, err := os.Stat(source)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, err
}

// List 递归列出指定前缀目录下的所有文件。
func (p *LocalProvider) List(ctx context.Context, prefix string) ([]FileInfo, error) {
	root := filepath.Join(p.basePath, prefix)

	var result []FileInfo
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if os.IsNotExist(err) {
				return nil
			}
			return err
		}
		if d.IsDir() {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			log.Printf("警告: 无法获取文件 '%s' 的信息: %v", path, err)
			return nil
		}
		result = append(result, FileInfo{
			Key:     path,
			Size:    info.Size(),
			ModTime: info.ModTime(),
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("无法遍历本地目录 '%s': %w", root, err)
	}

	return result, nil
}
