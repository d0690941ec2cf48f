// Package storage 本地磁盘对象存储
// 按桶目录组织上传文件，公开访问由 HTTP 服务以静态目录方式映射
package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"consulado_admin_server/internal/config"
)

// 存储桶
const (
	BucketPhotos  = "photos"  // 会员照片
	BucketLogos   = "logos"   // 分会会徽
	BucketBanners = "banners" // 分会横幅
)

var buckets = []string{BucketPhotos, BucketLogos, BucketBanners}

// Init 创建各桶目录
func Init() error {
	root := config.GetConfig().StorageConfig.RootPath
	for _, bucket := range buckets {
		if err := os.MkdirAll(filepath.Join(root, bucket), 0o755); err != nil {
			return fmt.Errorf("create bucket dir %s: %w", bucket, err)
		}
	}
	zap.L().Info("本地对象存储初始化完成", zap.String("root", root))
	return nil
}

// IsValidBucket 校验桶名
func IsValidBucket(bucket string) bool {
	for _, b := range buckets {
		if b == bucket {
			return true
		}
	}
	return false
}

// RootPath 静态目录映射使用的根路径
func RootPath() string {
	return config.GetConfig().StorageConfig.RootPath
}

// Save 将内容写入指定桶，返回公开访问 URL
// filename 由调用方保证唯一（雪花 ID + 扩展名）
func Save(bucket, filename string, src io.Reader) (string, error) {
	if !IsValidBucket(bucket) {
		return "", fmt.Errorf("unknown bucket %s", bucket)
	}
	// 防止路径穿越
	if filename != filepath.Base(filename) {
		return "", fmt.Errorf("invalid filename %s", filename)
	}

	path := filepath.Join(RootPath(), bucket, filename)
	dst, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		os.Remove(path)
		return "", err
	}
	return PublicURL(bucket, filename), nil
}

// Remove 删除桶内文件，文件不存在不视为错误
func Remove(bucket, filename string) error {
	if !IsValidBucket(bucket) || filename != filepath.Base(filename) {
		return fmt.Errorf("invalid bucket or filename")
	}
	err := os.Remove(filepath.Join(RootPath(), bucket, filename))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// PublicURL 文件的公开访问地址
func PublicURL(bucket, filename string) string {
	base := strings.TrimRight(config.GetConfig().StorageConfig.PublicBaseURL, "/")
	return base + "/" + bucket + "/" + filename
}
