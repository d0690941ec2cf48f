// Package https_server 提供 HTTP/HTTPS 服务器的初始化和配置
// 负责创建 Gin 引擎实例并配置中间件、静态资源和路由
package https_server

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"consulado_admin_server/internal/config"
	"consulado_admin_server/internal/handler"
	"consulado_admin_server/internal/infrastructure/logger"
	"consulado_admin_server/internal/infrastructure/middleware"
	"consulado_admin_server/internal/infrastructure/storage"
	"consulado_admin_server/internal/router"
)

// Init 初始化 HTTP 服务器并返回 Gin 引擎实例
// 配置顺序：
//  1. 创建空白 Gin 引擎（不含默认中间件）
//  2. 注册日志和恢复中间件
//  3. 配置 CORS 跨域规则
//  4. 映射对象存储的静态目录
//  5. 注册业务路由
func Init(handlers *handler.Handlers) *gin.Engine {
	conf := config.GetConfig()

	if conf.MainConfig.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()

	// 自定义 Zap 日志中间件替代 Gin 默认日志
	engine.Use(logger.GinLogger())
	engine.Use(logger.GinRecovery(true))

	// CORS 跨域规则（生产环境应指定具体域名）
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{"*"}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	engine.Use(cors.New(corsConfig))

	// TLS 重定向（由 Nginx 终结 SSL 时通过配置关闭）
	if conf.SecurityConfig.SSLRedirect {
		engine.Use(middleware.TlsHandler(conf.MainConfig.Host, conf.MainConfig.Port))
	}

	// 对象存储各桶以静态目录方式对外提供
	engine.Static("/static", storage.RootPath())

	router.RegisterRoutes(engine, handlers)

	return engine
}
