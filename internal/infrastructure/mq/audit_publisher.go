// Package mq 花名册变更审计流
// 订阅花名册缓存的变更事件，按配置发布到 Kafka 审计主题或仅写本地日志
package mq

import (
	"context"
	"encoding/json"
	"time"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	myconfig "consulado_admin_server/internal/config"
	"consulado_admin_server/internal/service/roster"
)

// 审计模式
const (
	ModeLog   = "log"
	ModeKafka = "kafka"
)

// auditRecord 审计事件的落盘/上报格式
type auditRecord struct {
	Entity     string `json:"entity"`
	Action     string `json:"action"`
	Uuid       string `json:"uuid"`
	OccurredAt string `json:"occurred_at"`
}

// AuditPublisher 审计发布器，实现 roster.Subscriber
type AuditPublisher struct {
	mode        string
	writer      *kafka.Writer
	unsubscribe func()
}

// NewAuditPublisher 按配置创建审计发布器
// mode 非 "kafka" 时一律退化为本地日志模式
func NewAuditPublisher() *AuditPublisher {
	auditConfig := myconfig.GetConfig().AuditConfig
	p := &AuditPublisher{mode: auditConfig.Mode}
	if p.mode != ModeKafka {
		p.mode = ModeLog
		return p
	}

	p.writer = &kafka.Writer{
		Addr:                   kafka.TCP(auditConfig.HostPort),
		Topic:                  auditConfig.Topic,
		Balancer:               &kafka.Hash{},
		WriteTimeout:           auditConfig.Timeout * time.Second,
		RequiredAcks:           kafka.RequireNone,
		AllowAutoTopicCreation: false,
	}
	return p
}

// CreateTopic 创建审计主题（已存在时报错仅记录）
func (p *AuditPublisher) CreateTopic() {
	if p.mode != ModeKafka {
		return
	}
	auditConfig := myconfig.GetConfig().AuditConfig

	conn, err := kafka.Dial("tcp", auditConfig.HostPort)
	if err != nil {
		zap.L().Error(err.Error())
		return
	}
	defer conn.Close()

	topicConfigs := []kafka.TopicConfig{
		{
			Topic:             auditConfig.Topic,
			NumPartitions:     auditConfig.Partition,
			ReplicationFactor: 1,
		},
	}
	if err = conn.CreateTopics(topicConfigs...); err != nil {
		zap.L().Error(err.Error())
	}
}

// Attach 订阅花名册缓存
func (p *AuditPublisher) Attach(cache *roster.Cache) {
	p.unsubscribe = cache.Subscribe(p)
	zap.L().Info("审计发布器已挂载", zap.String("mode", p.mode))
}

// RosterChanged 实现 roster.Subscriber
// 通知回调内不能阻塞写操作，Kafka 写入放到独立协程
func (p *AuditPublisher) RosterChanged(ev roster.Event) {
	record := auditRecord{
		Entity:     ev.Entity,
		Action:     ev.Action,
		Uuid:       ev.Uuid,
		OccurredAt: time.Now().Format(time.RFC3339),
	}

	if p.mode != ModeKafka {
		zap.L().Info("roster audit",
			zap.String("entity", record.Entity),
			zap.String("action", record.Action),
			zap.String("uuid", record.Uuid))
		return
	}

	value, err := json.Marshal(record)
	if err != nil {
		zap.L().Error("审计事件序列化失败", zap.Error(err))
		return
	}
	go func() {
		err := p.writer.WriteMessages(context.Background(), kafka.Message{
			Key:   []byte(ev.Entity + ":" + ev.Uuid),
			Value: value,
		})
		if err != nil {
			zap.L().Error("审计事件写入 Kafka 失败", zap.Error(err))
		}
	}()
}

// Close 取消订阅并关闭 Kafka Writer
func (p *AuditPublisher) Close() {
	if p.unsubscribe != nil {
		p.unsubscribe()
	}
	if p.writer != nil {
		if err := p.writer.Close(); err != nil {
			zap.L().Error(err.Error())
		}
	}
}
