/*
 * @Description: AWS S3 存储驱动（兼容 S3 协议的对象存储）
 * @Author: 沐音
 * @Date: 2025-09-13 21:19:40
 * @LastEditTime: 2025-12-02 10:11:33
 * @LastEditors: 沐音
 */
package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"

	appconfig "github.com/muselink-c/muselink-app/pkg/config"
	"github.com/muselink-c/muselink-app/pkg/constant"
)

// AWSS3Provider 实现了 IStorageProvider 接口，用于 AWS S3 及兼容 S3 协议的对象存储。
type AWSS3Provider struct {
	client *s3.Client
	bucket string
}

// NewAWSS3Provider 根据配置构建 S3 客户端。
// Endpoint 非空时作为自定义端点（MinIO、R2 等兼容服务）。
func NewAWSS3Provider(cfg *appconfig.Config) (IStorageProvider, error) {
	region := cfg.GetString(appconfig.KeyS3Region)
	bucket := cfg.GetString(appconfig.KeyS3Bucket)
	accessKeyID := cfg.GetString(appconfig.KeyS3AccessKeyID)
	secretAccessKey := cfg.GetString(appconfig.KeyS3SecretAccessKey)
	endpoint := cfg.GetString(appconfig.KeyS3Endpoint)

	if bucket == "" {
		return nil, errors.New("S3 存储需要配置 Bucket")
	}
	if region == "" {
		region = "us-east-1"
	}

	var opts []func(*awsconfig.LoadOptions) error
	opts = append(opts, awsconfig.WithRegion(region))
	if accessKeyID != "" && secretAccessKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			accessKeyID, secretAccessKey, "",
		)))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(), opts...)
	if err != nil {
		return nil, fmt.Errorf("加载 AWS 配置失败: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
			o.UsePathStyle = true // 兼容 MinIO 等自建服务
		}
	})

	log.Printf("✅ S3 存储客户端初始化成功 (bucket=%s, region=%s)", bucket, region)
	return &AWSS3Provider{client: client, bucket: bucket}, nil
}

// Upload 将文件流上传为指定的对象键。
// 先落临时文件以获得长度和可重读的文件头，再执行 PutObject。
func (p *AWSS3Provider) Upload(ctx context.Context, file io.Reader, objectKey string) (*UploadResult, error) {
	tempFile, err := os.CreateTemp("", "muselink-app-s3-*.tmp")
	if err != nil {
		return nil, fmt.Errorf("无法创建临时文件: %w", err)
	}
	defer os.Remove(tempFile.Name())
	defer tempFile.Close()

	size, err := io.Copy(tempFile, file)
	if err != nil {
		return nil, fmt.Errorf("写入临时文件失败: %w", err)
	}

	if _, err := tempFile.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("无法重置临时文件指针: %w", err)
	}
	buffer := make([]byte, 512)
	n, err := tempFile.Read(buffer)
	if err != nil && err != io.EOF {
		return nil, fmt.Errorf("读取文件头以检测MIME类型失败: %w", err)
	}
	mimeType := detectAudioMimeType(buffer[:n], objectKey)

	if _, err := tempFile.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("无法重置临时文件指针以上传: %w", err)
	}

	_, err = p.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(p.bucket),
		Key:           aws.String(objectKey),
		Body:          tempFile,
		ContentLength: aws.Int64(size),
		ContentType:   aws.String(mimeType),
	})
	if err != nil {
		return nil, fmt.Errorf("上传对象 '%s' 到 S3 失败: %w", objectKey, err)
	}

	return &UploadResult{
		Source:   objectKey,
		Size:     size,
		MimeType: mimeType,
	}, nil
}

// Get 返回对象的可读流。
func (p *AWSS3Provider) Get(ctx context.Context, source string) (io.ReadCloser, error) {
	output, err := p.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(p.bucket),
		Key:    aws.String(source),
	})
	if err != nil {
		var noSuchKey *types.NoSuchKey
		if errors.As(err, &noSuchKey) {
			return nil, fmt.Errorf("%w: 对象不存在: %s", constant.ErrNotFound, source)
		}
		return nil, fmt.Errorf("获取 S3 对象 '%s' 失败: %w", source, err)
	}
	return output.Body, nil
}

// Stream 将对象内容流式写入给定的写入器。
func (p *AWSS3Provider) Stream(ctx context.Context, source string, writer io.Writer) error {
	body, err := p.Get(ctx, source)
	if err != nil {
		return err
	}
	defer body.Close()

	if _, err := io.Copy(writer, body); err != nil {
		return fmt.Errorf("流式传输 S3 对象内容时发生错误: %w", err)
	}
	return nil
}

// Delete 逐个删除对象，单个失败不中断整体流程。
func (p *AWSS3Provider) Delete(ctx context.Context, sources []string) error {
	for _, source := range sources {
		_, err := p.client.DeleteObject(ctx, &s3.DeleteObjectInput{
			Bucket: aws.String(p.bucket),
			Key:    aws.String(source),
		})
		if err != nil {
			log.Printf("警告: 删除 S3 对象 '%s' 失败: %v", source, err)
		}
	}
	return nil
}

// GetDownloadURL 使用预签名为对象生成临时下载链接。
func (p *AWSS3Provider) GetDownloadURL(ctx context.Context, source string, options DownloadURLOptions) (string, error) {
	expiresIn := options.ExpiresIn
	if expiresIn <= 0 {
		expiresIn = 3600 // 默认1小时
	}

	presignClient := s3.NewPresignClient(p.client)
	presignResult, err := presignClient.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(p.bucket),
		Key:    aws.String(source),
	}, func(opts *s3.PresignOptions) {
		opts.Expires = time.Duration(expiresIn) * time.Second
	})
	if err != nil {
		return "", fmt.Errorf("生成 S3 预签名下载链接失败: %w", err)
	}

	return presignResult.URL, nil
}

// IsExist 通过 HeadObject 检查对象是否存在。
func (p *AWSS3Provider) IsExist(ctx context.Context, source string) (bool, error) {
	_, err := p.client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(p.bucket),
		Key:    aws.String(source),
	})
	if err != nil {
		var notFound *types.NotFound
		if errors.As(err, &notFound) {
			return false, nil
		}
		return false, fmt.Errorf("检查 S3 对象 '%s' 是否存在失败: %w", source, err)
	}
	return true, nil
}

// List 列出指定前缀下的所有对象，自动翻页。
func (p *AWSS3Provider) List(ctx context.Context, prefix string) ([]FileInfo, error) {
	var result []FileInfo

	paginator := s3.NewListObjectsV2Paginator(p.client, &s3.ListObjectsV2Input{
		Bucket: aws.String(p.bucket),
		Prefix: aws.String(prefix),
	})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("列举 S3 对象失败 (prefix=%s): %w", prefix, err)
		}
		for _, obj := range page.Contents {
			info := FileInfo{
				Key:  aws.ToString(obj.Key),
				Size: aws.ToInt64(obj.Size),
			}
			if obj.LastModified != nil {
				info.ModTime = *obj.LastModified
			}
			result = append(result, info)
		}
	}

	return result, nil
}
