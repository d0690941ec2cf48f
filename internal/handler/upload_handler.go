// 本文件处理图片上传请求
// 上传流程：落盘 -> 旧审计记录置为 inactive -> 写入新审计记录 -> 回写实体 URL
package handler

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	dao "consulado_admin_server/internal/dao/mysql"
	"consulado_admin_server/internal/infrastructure/storage"
	"consulado_admin_server/internal/model"
	"consulado_admin_server/internal/service"
	"consulado_admin_server/pkg/constants"
	"consulado_admin_server/pkg/errorx"
	"consulado_admin_server/pkg/util/snowflake"
)

// UploadHandler 图片上传处理器
type UploadHandler struct {
	memberSvc  service.MemberService
	chapterSvc service.ChapterService
}

// NewUploadHandler 创建上传处理器实例
func NewUploadHandler(memberSvc service.MemberService, chapterSvc service.ChapterService) *UploadHandler {
	return &UploadHandler{memberSvc: memberSvc, chapterSvc: chapterSvc}
}

// 字段与存储桶的映射
var fieldBuckets = map[string]string{
	"photo":  storage.BucketPhotos,
	"logo":   storage.BucketLogos,
	"banner": storage.BucketBanners,
}

var allowedExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
}

// UploadImage 上传实体图片
// POST /upload/image (multipart form)
// 表单字段: owner_type(member/chapter), owner_uuid, field(photo/logo/banner), file
func (h *UploadHandler) UploadImage(c *gin.Context) {
	ownerType := c.PostForm("owner_type")
	ownerUuid := c.PostForm("owner_uuid")
	field := c.PostForm("field")

	bucket, ok := fieldBuckets[field]
	if !ok || ownerUuid == "" {
		HandleError(c, errorx.ErrInvalidParam)
		return
	}
	if (ownerType == "member") != (field == "photo") {
		// 会员只有照片，分会只有会徽/横幅
		HandleError(c, errorx.New(errorx.CodeInvalidParam, "实体类型与图片字段不匹配"))
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		HandleParamError(c, err)
		return
	}
	if fileHeader.Size > constants.FILE_MAX_SIZE {
		HandleError(c, errorx.New(errorx.CodeInvalidParam, "图片大小超过 5MB 限制"))
		return
	}
	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	if !allowedExts[ext] {
		HandleError(c, errorx.New(errorx.CodeInvalidParam, "只支持 jpg/jpeg/png/webp 格式"))
		return
	}

	src, err := fileHeader.Open()
	if err != nil {
		HandleError(c, err)
		return
	}
	defer src.Close()

	filename := fmt.Sprintf("%s_%s%s", field, snowflake.GenerateIDString(), ext)
	url, err := storage.Save(bucket, filename, src)
	if err != nil {
		zap.L().Error("图片落盘失败", zap.Error(err))
		HandleError(c, errorx.ErrServerBusy)
		return
	}

	// 审计：旧记录置为 inactive，登记新记录
	if err := dao.Repos.UploadedFile.DeactivateByOwnerField(ownerType, ownerUuid, field); err != nil {
		zap.L().Error("上传审计记录置位失败", zap.Error(err))
	}
	record := model.UploadedFile{
		Bucket:    bucket,
		Path:      filename,
		OwnerType: ownerType,
		OwnerUuid: ownerUuid,
		Field:     field,
		URL:       url,
		Active:    true,
	}
	if err := dao.Repos.UploadedFile.Create(&record); err != nil {
		zap.L().Error("写入上传审计记录失败", zap.Error(err))
	}

	// 回写实体字段
	if ownerType == "member" {
		err = h.memberSvc.SetPhotoURL(ownerUuid, url)
	} else {
		err = h.chapterSvc.SetImageURL(ownerUuid, field, url)
	}
	if err != nil {
		HandleError(c, err)
		return
	}

	HandleSuccess(c, gin.H{"url": url})
}
