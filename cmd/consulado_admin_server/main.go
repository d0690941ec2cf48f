package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"consulado_admin_server/internal/config"
	dao "consulado_admin_server/internal/dao/mysql"
	myredis "consulado_admin_server/internal/dao/redis"
	ws "consulado_admin_server/internal/gateway/websocket"
	"consulado_admin_server/internal/handler"
	"consulado_admin_server/internal/https_server"
	"consulado_admin_server/internal/infrastructure/logger"
	"consulado_admin_server/internal/infrastructure/mq"
	"consulado_admin_server/internal/infrastructure/storage"
	"consulado_admin_server/internal/service"
	"consulado_admin_server/internal/service/roster"
	"consulado_admin_server/pkg/aes"
	"consulado_admin_server/pkg/util/jwt"
	"consulado_admin_server/pkg/util/snowflake"
)

func main() {
	// 1. 加载配置
	conf := config.GetConfig()

	// 2. 初始化日志
	if err := logger.Init(&conf.LogConfig, conf.MainConfig.Mode); err != nil {
		log.Fatalf("init logger failed: %v", err)
	}
	zap.L().Info("日志初始化成功")

	// 3. 初始化参数校验翻译器
	if err := handler.InitTrans("es"); err != nil {
		zap.L().Fatal("翻译器初始化失败", zap.Error(err))
	}

	// 4. 初始化证件号加密组件与雪花节点
	aes.Init(conf.SecurityConfig.AesSecret)
	snowflake.Init()

	// 5. 初始化数据库
	dao.Init()
	zap.L().Info("数据库初始化成功")

	// 6. 初始化 Redis
	myredis.Init()
	zap.L().Info("Redis 初始化成功")

	// 7. 初始化 JWT
	jwt.Init(conf.JWTConfig.Secret, conf.JWTConfig.AccessTokenExpiry, conf.JWTConfig.RefreshTokenExpiry)
	zap.L().Info("JWT 初始化成功")

	// 8. 初始化对象存储
	if err := storage.Init(); err != nil {
		zap.L().Fatal("对象存储初始化失败", zap.Error(err))
	}

	// 9. 初始化 Service 层（含花名册缓存加载）
	if err := service.InitServices(dao.Repos); err != nil {
		zap.L().Fatal("Service 层初始化失败", zap.Error(err))
	}
	zap.L().Info("Service 层初始化成功")

	// 10. 挂载花名册订阅者：WebSocket 推送 + Redis 派生键清理 + 审计流
	rosterPush := &ws.RosterPush{}
	rosterPush.Attach(service.Svc.Roster)

	invalidator := &roster.Invalidator{}
	invalidator.Attach(service.Svc.Roster)

	auditPublisher := mq.NewAuditPublisher()
	if conf.AuditConfig.Mode == mq.ModeKafka {
		auditPublisher.CreateTopic()
	}
	auditPublisher.Attach(service.Svc.Roster)
	zap.L().Info("花名册订阅者挂载成功")

	// 11. 初始化 HTTP 服务器并启动
	engine := https_server.Init(handler.NewHandlers(service.Svc))
	go func() {
		addr := fmt.Sprintf("%s:%d", conf.MainConfig.Host, conf.MainConfig.Port)
		if err := engine.Run(addr); err != nil {
			zap.L().Fatal("server running fault", zap.Error(err))
		}
	}()
	zap.L().Info("HTTP 服务器启动成功",
		zap.String("host", conf.MainConfig.Host), zap.Int("port", conf.MainConfig.Port))

	// 12. 等待退出信号
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zap.L().Info("关闭服务器...")

	auditPublisher.Close()
	invalidator.Detach()
	rosterPush.Detach()
	service.Svc.Roster.Shutdown()

	zap.L().Info("服务器已关闭")
}
