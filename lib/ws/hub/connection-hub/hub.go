package connectionhub

import (
	"sync"

	log "github.com/sirupsen/logrus"
	wsmodels "hr-admin-backend/models/ws"
)

type Provider interface {
	AddClient(userID string, conn Conn)
	// DeleteClient удаляет сессию, только если она принадлежит этому соединению
	DeleteClient(userID string, conn Conn)
	SendMessage(msg wsmodels.ServerMessage) bool
	IsConnected(userID string) bool
}

var Instance Provider

func Init() {
	Instance = NewHub()
}

func NewHub() Provider {
	return &impl{
		clients: map[string]clientSession{},
	}
}

type impl struct {
	mu      sync.Mutex
	clients map[string]clientSession //map[userID]
}

func (i *impl) DeleteClient(userID string, conn Conn) {
	i.mu.Lock()
	defer i.mu.Unlock()
	sess, ok := i.clients[userID]
	if !ok || sess.conn != conn {
		return
	}
	delete(i.clients, userID)
	sess.stop()
}

func (i *impl) AddClient(userID string, conn Conn) {
	i.mu.Lock()
	defer i.mu.Unlock()
	oldSess, ok := i.clients[userID]
	if ok {
		oldSess.stop()
	}
	i.clients[userID] = newSession(conn)
}

// SendMessage false - пользователь не подключен или буфер отправки переполнен
func (i *impl) SendMessage(msg wsmodels.ServerMessage) bool {
	i.mu.Lock()
	sess, ok := i.clients[msg.ToUserID]
	i.mu.Unlock()
	if !ok {
		return false
	}
	select {
	case sess.sendCh <- msg:
		return true
	default:
		log.WithField("user_id", msg.ToUserID).Warn("буфер отправки переполнен, сообщение пропущено")
		return false
	}
}

func (i *impl) IsConnected(userID string) bool {
	i.mu.Lock()
	defer i.mu.Unlock()
	sess, ok := i.clients[userID]
	return ok && sess.conn != nil
}
