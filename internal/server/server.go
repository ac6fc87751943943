package server

import (
	"context"
	"log"
	"time"

	"github.com/npezzotti/birdseye/internal/database"
	"github.com/npezzotti/birdseye/internal/stats"
	"github.com/npezzotti/birdseye/internal/types"
)

const (
	metricConnections     = "NumConnections"
	metricOnlineUsers     = "NumOnlineUsers"
	metricMessagesSent    = "NumMessagesSent"
	metricDeliveredEvents = "NumDeliveredEvents"
)

// ChatServer drives the per-connection session lifecycle and routes events
// to live connections. Registry mutations and their presence side effects
// happen synchronously on the calling goroutine, so events from one
// connection are applied in arrival order.
type ChatServer struct {
	log      *log.Logger
	db       database.BirdseyeRepository
	stats    stats.StatsProvider
	registry *Registry
}

func NewChatServer(logger *log.Logger, db database.BirdseyeRepository, sp stats.StatsProvider) (*ChatServer, error) {
	cs := &ChatServer{
		log:      logger,
		db:       db,
		stats:    sp,
		registry: NewRegistry(),
	}

	for _, m := range []string{
		metricConnections,
		metricOnlineUsers,
		metricMessagesSent,
		metricDeliveredEvents,
	} {
		cs.stats.RegisterMetric(m)
	}

	return cs, nil
}

// Connect registers a new, unauthenticated connection. The presence count is
// unchanged but a broadcast is still sent, per the wire contract.
func (cs *ChatServer) Connect(c *Client) error {
	if err := cs.registry.Register(c.id, c); err != nil {
		cs.log.Printf("register connection %q: %v", c.id, err)
		return err
	}

	cs.log.Printf("connection %q registered", c.id)
	cs.stats.Incr(metricConnections)
	cs.broadcastPresence()
	return nil
}

// Authenticate binds the connection to the requested user and joins the
// user's room. Failures are reported to the requesting connection only.
func (cs *ChatServer) Authenticate(c *Client, msg *ClientMessage) {
	userId := msg.Authenticate.UserId

	account, err := cs.db.GetAccountById(userId)
	if err != nil {
		cs.log.Printf("authenticate %q: lookup user %q: %v", c.id, userId, err)
		c.queueMessage(ErrUnauthorized(msg.Id))
		return
	}

	cameOnline, err := cs.registry.Bind(c.id, userId)
	if err != nil {
		cs.log.Printf("authenticate %q as %q: %v", c.id, userId, err)
		switch err {
		case ErrAlreadyAuthenticated:
			c.queueMessage(ErrAlreadyBound(msg.Id))
		case ErrUnknownConnection:
			// connection disconnected mid-flight, nothing to notify
		}
		return
	}

	c.user = types.User{Id: account.Id, Username: account.Username}
	if cameOnline {
		cs.stats.Incr(metricOnlineUsers)
	}

	cs.log.Printf("connection %q authenticated as %q", c.id, account.Username)
	c.queueMessage(NoErrOK(msg.Id, types.User{Id: account.Id, Username: account.Username}))
	cs.broadcastPresence()
}

// Disconnect removes the connection from the registry and its room.
// Disconnecting an already-removed connection is a no-op.
func (cs *ChatServer) Disconnect(c *Client) {
	userId, offline, ok := cs.registry.Unregister(c.id)
	if !ok {
		return
	}

	cs.stats.Decr(metricConnections)
	if offline {
		cs.log.Printf("user %q went offline", userId)
		cs.stats.Decr(metricOnlineUsers)
	}

	cs.log.Printf("connection %q disconnected", c.id)
	cs.broadcastPresence()
}

// SendMessage persists a direct message and fans it out to every live
// session of the sender and the recipient.
func (cs *ChatServer) SendMessage(c *Client, msg *ClientMessage) {
	fromId, ok := cs.registry.BoundUser(c.id)
	if !ok {
		cs.log.Printf("send from %q: %v", c.id, ErrNotAuthenticated)
		c.queueMessage(ErrUnauthorized(msg.Id))
		return
	}

	recipient, err := cs.db.GetAccountByUsername(msg.Send.To)
	if err != nil {
		cs.log.Printf("send from %q: lookup recipient %q: %v", fromId, msg.Send.To, err)
		c.queueMessage(ErrUserNotFound(msg.Id))
		return
	}

	dbMsg, err := cs.db.CreateMessage(fromId, recipient.Id, msg.Send.Content)
	if err != nil {
		cs.log.Println("create message:", err)
		c.queueMessage(ErrInternalError(msg.Id))
		return
	}

	cs.stats.Incr(metricMessagesSent)
	c.queueMessage(NoErrAccepted(msg.Id))

	cs.deliverToSelfAndPeer(fromId, recipient.Id, &ServerMessage{
		BaseMessage: BaseMessage{
			Timestamp: dbMsg.CreatedAt,
		},
		Message: &types.Message{
			Id:        dbMsg.Id,
			From:      c.user.Username,
			Content:   dbMsg.Content,
			Timestamp: dbMsg.CreatedAt,
		},
	})
}

// NotifyFriendRequest pushes a friend-request notification to every live
// session of the recipient. Called by the HTTP layer after the request
// record is created.
func (cs *ChatServer) NotifyFriendRequest(toUserId, fromUsername string) {
	cs.deliverToUser(toUserId, &ServerMessage{
		BaseMessage: BaseMessage{
			Timestamp: Now(),
		},
		Notification: &Notification{
			FriendRequest: &FriendRequestNotification{From: fromUsername},
		},
	})
}

// NotifyFriendAccepted pushes an acceptance notification to every live
// session of the given user.
func (cs *ChatServer) NotifyFriendAccepted(toUserId, friendUsername string) {
	cs.deliverToUser(toUserId, &ServerMessage{
		BaseMessage: BaseMessage{
			Timestamp: Now(),
		},
		Notification: &Notification{
			FriendAccepted: &FriendAcceptedNotification{Friend: friendUsername},
		},
	})
}

// OnlineUserCount returns the number of distinct online users.
func (cs *ChatServer) OnlineUserCount() int {
	return cs.registry.OnlineUserCount()
}

// Shutdown stops every client and waits for their read pumps to drain the
// registry, or until ctx expires.
func (cs *ChatServer) Shutdown(ctx context.Context) error {
	cs.log.Println("shutting down chat server")
	for _, c := range cs.registry.Clients() {
		c.stopClient()
	}

	ticker := time.NewTicker(10 * time.Millisecond)
	defer ticker.Stop()

	for {
		if cs.registry.Len() == 0 {
			return nil
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}
