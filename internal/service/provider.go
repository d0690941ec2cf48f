// Package service 提供业务逻辑层
// 本文件实现 Service 层的依赖注入和聚合
package service

import (
	"consulado_admin_server/internal/dao/mysql/repository"
	"consulado_admin_server/internal/service/auth"
	"consulado_admin_server/internal/service/chapter"
	"consulado_admin_server/internal/service/member"
	"consulado_admin_server/internal/service/roster"
	"consulado_admin_server/internal/service/transfer"
)

// Services 聚合所有 Service 实例
// 作为依赖注入的入口，Handler 层通过 service.Svc 访问各个 Service
type Services struct {
	Auth     AuthService     // 认证 Service
	Member   MemberService   // 会员 Service
	Chapter  ChapterService  // 分会 Service
	Transfer TransferService // 调动 Service
	Roster   *roster.Cache   // 花名册缓存（订阅入口）
}

// NewServices 创建并注入所有 Service 实例
// 依赖注入流程：
//  1. 基于 Repository 聚合构造花名册缓存并加载数据
//  2. 创建各个 Service 实例，注入缓存或 Repository 依赖
//  3. 返回 Services 聚合
func NewServices(repos *repository.Repositories) (*Services, error) {
	cache := roster.NewCache(roster.NewMysqlStore(repos))
	if err := cache.Init(); err != nil {
		return nil, err
	}

	return &Services{
		Auth:     auth.NewAuthService(repos),
		Member:   member.NewMemberService(cache),
		Chapter:  chapter.NewChapterService(cache),
		Transfer: transfer.NewTransferService(cache),
		Roster:   cache,
	}, nil
}

// Svc 全局 Services 实例
// Handler 层通过 service.Svc.Member.GetMemberList() 等方式调用
var Svc *Services

// InitServices 初始化全局 Services 实例
// 应在 main.go 中调用，在 Repository 初始化之后
func InitServices(repos *repository.Repositories) error {
	svc, err := NewServices(repos)
	if err != nil {
		return err
	}
	Svc = svc
	return nil
}
