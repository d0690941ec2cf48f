// Package auth 管理员认证业务逻辑
// 双 Token 方案：短期 Access Token 做接口认证，长期 Refresh Token 做续期，
// Refresh Token ID 存 Redis 实现单点互踢
package auth

import (
	"context"
	"time"

	"go.uber.org/zap"

	"consulado_admin_server/internal/dao/mysql/repository"
	myredis "consulado_admin_server/internal/dao/redis"
	"consulado_admin_server/internal/dto/request"
	"consulado_admin_server/internal/dto/respond"
	"consulado_admin_server/pkg/constants"
	"consulado_admin_server/pkg/errorx"
	"consulado_admin_server/pkg/util/jwt"
)

// authService 认证业务逻辑实现
// 管理员账号不进花名册缓存，直接走 Repository
type authService struct {
	repos *repository.Repositories
}

// NewAuthService 构造函数，注入 Repository
func NewAuthService(repos *repository.Repositories) *authService {
	return &authService{repos: repos}
}

// storeTokenID 将 Refresh Token ID 写入 Redis，旧 ID 随之失效
func storeTokenID(adminUuid, tokenID string) {
	key := "admin_token:" + adminUuid
	expiry := time.Duration(constants.REFRESH_TOKEN_EXPIRY_HOURS) * time.Hour
	if err := myredis.SetKeyEx(context.Background(), key, tokenID, expiry); err != nil {
		// 不阻塞登录流程，仅记录日志
		zap.L().Error("存储 Token ID 到 Redis 失败", zap.Error(err))
	}
}

// Login 密码登录
func (a *authService) Login(req request.LoginRequest) (*respond.LoginRespond, error) {
	admin, err := a.repos.Admin.FindByUsername(req.Username)
	if err != nil {
		if errorx.GetCode(err) == errorx.CodeNotFound {
			return nil, errorx.New(errorx.CodeUnauthorized, "账号或密码不正确")
		}
		zap.L().Error(err.Error())
		return nil, errorx.ErrServerBusy
	}
	if !admin.CheckPassword(req.Password) {
		return nil, errorx.New(errorx.CodeUnauthorized, "账号或密码不正确")
	}

	accessToken, err := jwt.GenerateAccessToken(admin.Uuid)
	if err != nil {
		zap.L().Error("生成 Access Token 失败", zap.Error(err))
		return nil, errorx.ErrServerBusy
	}
	refreshToken, tokenID, err := jwt.GenerateRefreshToken(admin.Uuid)
	if err != nil {
		zap.L().Error("生成 Refresh Token 失败", zap.Error(err))
		return nil, errorx.ErrServerBusy
	}
	storeTokenID(admin.Uuid, tokenID)

	return &respond.LoginRespond{
		Uuid:         admin.Uuid,
		Username:     admin.Username,
		DisplayName:  admin.DisplayName,
		ChapterUuid:  admin.ChapterUuid,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

// RefreshToken 旋转刷新：校验旧 Refresh Token 后签发新的双 Token
// 旧 Refresh Token 随 Redis 中 Token ID 的覆盖而失效
func (a *authService) RefreshToken(req request.RefreshTokenRequest) (*respond.RefreshTokenRespond, error) {
	claims, err := jwt.ParseToken(req.RefreshToken)
	if err != nil {
		return nil, errorx.New(errorx.CodeUnauthorized, "Refresh Token 无效或已过期")
	}
	if claims.Subject != "refresh_token" || claims.TokenID == "" {
		return nil, errorx.New(errorx.CodeUnauthorized, "Token 类型不正确")
	}

	// 与 Redis 中登记的 Token ID 比对，被互踢的旧 Token 在此被拒绝
	stored, err := myredis.GetKeyNilIsErr(context.Background(), "admin_token:"+claims.AdminID)
	if err != nil {
		if errorx.GetCode(err) == errorx.CodeNotFound {
			return nil, errorx.New(errorx.CodeUnauthorized, "Refresh Token 已失效，请重新登录")
		}
		zap.L().Error(err.Error())
		return nil, errorx.ErrServerBusy
	}
	if stored != claims.TokenID {
		return nil, errorx.New(errorx.CodeUnauthorized, "Refresh Token 已失效，请重新登录")
	}

	if _, err := a.repos.Admin.FindByUuid(claims.AdminID); err != nil {
		return nil, errorx.New(errorx.CodeUnauthorized, "账号不存在或已停用")
	}

	accessToken, err := jwt.GenerateAccessToken(claims.AdminID)
	if err != nil {
		zap.L().Error("生成 Access Token 失败", zap.Error(err))
		return nil, errorx.ErrServerBusy
	}
	refreshToken, tokenID, err := jwt.GenerateRefreshToken(claims.AdminID)
	if err != nil {
		zap.L().Error("生成 Refresh Token 失败", zap.Error(err))
		return nil, errorx.ErrServerBusy
	}
	storeTokenID(claims.AdminID, tokenID)

	return &respond.RefreshTokenRespond{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}
