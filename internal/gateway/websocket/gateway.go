// Package websocket 后台管理端的 WebSocket 推送网关
// 管理端是纯接收方：花名册发生变更时收到 roster_changed 通知，
// 然后通过 HTTP 接口重新拉取数据（notify-then-refetch）
package websocket

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"consulado_admin_server/internal/service/roster"
	"consulado_admin_server/pkg/constants"
)

// AdminConn 一个在线管理端连接
type AdminConn struct {
	Conn      *websocket.Conn
	AdminUuid string
	Send      chan []byte
}

// 浏览器前端与后端不同源，默认的 Origin 检查会拦截连接
var upgrader = websocket.Upgrader{
	ReadBufferSize:  2048,
	WriteBufferSize: 2048,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// ConnManager 在线管理端连接管理
type ConnManager struct {
	mu      sync.RWMutex
	clients map[string]*AdminConn
}

// GlobalManager 全局连接管理器
var GlobalManager = &ConnManager{clients: make(map[string]*AdminConn)}

// Register 登记连接，同一管理员重复连接时踢掉旧连接
func (m *ConnManager) Register(client *AdminConn) {
	m.mu.Lock()
	old := m.clients[client.AdminUuid]
	m.clients[client.AdminUuid] = client
	m.mu.Unlock()

	if old != nil {
		old.Conn.Close()
		close(old.Send)
	}
}

// Unregister 注销连接（只注销仍登记中的那条）
func (m *ConnManager) Unregister(client *AdminConn) {
	m.mu.Lock()
	current, ok := m.clients[client.AdminUuid]
	if ok && current == client {
		delete(m.clients, client.AdminUuid)
	}
	m.mu.Unlock()

	if ok && current == client {
		client.Conn.Close()
		close(client.Send)
	}
}

// Broadcast 向全部在线管理端推送
// 发送通道满时丢弃该客户端的此条通知，客户端下次刷新时仍能拉到最新数据
func (m *ConnManager) Broadcast(payload []byte) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, client := range m.clients {
		select {
		case client.Send <- payload:
		default:
			zap.L().Warn("管理端推送通道已满，丢弃通知",
				zap.String("admin", client.AdminUuid))
		}
	}
}

// OnlineCount 在线管理端数量
func (m *ConnManager) OnlineCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.clients)
}

// Read 读协程：管理端不上行业务消息，循环只负责感知断连
func (c *AdminConn) Read() {
	defer GlobalManager.Unregister(c)
	for {
		if _, _, err := c.Conn.ReadMessage(); err != nil {
			zap.L().Info("ws连接断开", zap.String("admin", c.AdminUuid))
			return
		}
	}
}

// Write 写协程：从 Send 通道取通知推给前端
func (c *AdminConn) Write() {
	for payload := range c.Send {
		if err := c.Conn.WriteMessage(websocket.TextMessage, payload); err != nil {
			zap.L().Error(err.Error())
			return
		}
	}
}

// NewClientInit 管理端建立 WebSocket 连接时调用
func NewClientInit(c *gin.Context, adminUuid string) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		zap.L().Error(err.Error())
		return
	}
	client := &AdminConn{
		Conn:      conn,
		AdminUuid: adminUuid,
		Send:      make(chan []byte, constants.CHANNEL_SIZE),
	}
	GlobalManager.Register(client)
	go client.Read()
	go client.Write()
	zap.L().Info("ws连接成功", zap.String("admin", adminUuid))
}

// ==================== 花名册推送 ====================

// rosterNotice 推送给前端的通知格式
type rosterNotice struct {
	Type   string `json:"type"`
	Entity string `json:"entity"`
	Action string `json:"action"`
	Uuid   string `json:"uuid"`
}

// RosterPush 花名册变更推送器，实现 roster.Subscriber
type RosterPush struct {
	unsubscribe func()
}

// Attach 订阅花名册缓存
func (p *RosterPush) Attach(cache *roster.Cache) {
	p.unsubscribe = cache.Subscribe(p)
}

// Detach 取消订阅
func (p *RosterPush) Detach() {
	if p.unsubscribe != nil {
		p.unsubscribe()
	}
}

// RosterChanged 实现 roster.Subscriber
func (p *RosterPush) RosterChanged(ev roster.Event) {
	payload, err := json.Marshal(rosterNotice{
		Type:   "roster_changed",
		Entity: ev.Entity,
		Action: ev.Action,
		Uuid:   ev.Uuid,
	})
	if err != nil {
		zap.L().Error(err.Error())
		return
	}
	GlobalManager.Broadcast(payload)
}
