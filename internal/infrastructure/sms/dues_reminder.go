// Package sms 欠费提醒短信发送
// 生产走阿里云 SMS；未配置真实 AK 时自动降级为本地 Mock，
// 便于本机跑通提醒链路
package sms

import (
	"fmt"
	"os"
	"strings"
	"sync"

	openapi "github.com/alibabacloud-go/darabonba-openapi/v2/client"
	dysmsapi20170525 "github.com/alibabacloud-go/dysmsapi-20170525/v4/client"
	util "github.com/alibabacloud-go/tea-utils/v2/service"
	"github.com/alibabacloud-go/tea/tea"
	"go.uber.org/zap"

	"consulado_admin_server/internal/config"
	"consulado_admin_server/pkg/errorx"
)

var (
	smsClient *dysmsapi20170525.Client
	initOnce  sync.Once
)

// shouldUseMock 没配真实 AK 或显式指定时走 Mock
func shouldUseMock(cfg config.SmsConfig) bool {
	mode := strings.ToLower(strings.TrimSpace(os.Getenv("CONSULADO_SMS_MODE")))
	if mode == "mock" || mode == "local" || mode == "test" {
		return true
	}
	ak := strings.ToLower(strings.TrimSpace(cfg.AccessKeyID))
	ask := strings.ToLower(strings.TrimSpace(cfg.AccessKeySecret))
	if ak == "" || ask == "" {
		return true
	}
	if strings.Contains(ak, "your accesskey") || strings.Contains(ask, "your accesskey") {
		return true
	}
	return false
}

// initClient 延迟初始化阿里云 SMS Client
func initClient() {
	initOnce.Do(func() {
		cfg := config.GetConfig().SmsConfig
		if shouldUseMock(cfg) {
			zap.L().Warn("SMS 使用本地 Mock 模式（只打印，不调用第三方短信）")
			return
		}
		conf := &openapi.Config{
			AccessKeyId:     tea.String(cfg.AccessKeyID),
			AccessKeySecret: tea.String(cfg.AccessKeySecret),
		}
		conf.Endpoint = tea.String("dysmsapi.aliyuncs.com")
		client, err := dysmsapi20170525.NewClient(conf)
		if err != nil {
			zap.L().Error("Aliyun SMS Client Init Failed", zap.Error(err))
			return
		}
		smsClient = client
	})
}

// DuesReminder 发送欠费提醒短信
// telephone: 会员电话; fullName: 会员全名; duesStatus: 当前缴费状态
// 节流由调用方负责（同一会员 24 小时一次）
func DuesReminder(telephone, fullName, duesStatus string) error {
	initClient()

	if smsClient == nil {
		// Mock 模式：只打印不外发
		fmt.Printf("【MockSMS】手机号: %s, 会员: %s, 缴费状态: %s\n", telephone, fullName, duesStatus)
		return nil
	}

	cfg := config.GetConfig().SmsConfig
	signName := cfg.SignName
	if signName == "" {
		signName = "阿里云短信测试"
	}
	templateCode := cfg.TemplateCode
	if templateCode == "" {
		templateCode = "SMS_154950909"
	}

	sendSmsRequest := &dysmsapi20170525.SendSmsRequest{
		SignName:      tea.String(signName),
		TemplateCode:  tea.String(templateCode),
		PhoneNumbers:  tea.String(telephone),
		TemplateParam: tea.String(fmt.Sprintf("{\"name\":%q,\"status\":%q}", fullName, duesStatus)),
	}

	runtime := &util.RuntimeOptions{}
	rsp, err := smsClient.SendSmsWithOptions(sendSmsRequest, runtime)
	if err != nil {
		zap.L().Error("调用阿里云短信接口发生系统级错误", zap.Error(err))
		return errorx.ErrServerBusy
	}

	// err 为 nil 时也要看 rsp.Body.Code 是否为 "OK"
	zap.L().Info("欠费提醒短信发送响应", zap.String("response", *util.ToJSONString(rsp)))
	return nil
}
