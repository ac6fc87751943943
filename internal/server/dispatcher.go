package server

// deliverToUser pushes msg to every live connection bound to userId. Each
// delivery is an independent non-blocking attempt; connections that vanished
// between lookup and push simply miss the event.
func (cs *ChatServer) deliverToUser(userId string, msg *ServerMessage) {
	for _, c := range cs.registry.MembersOf(userId) {
		if c.queueMessage(msg) {
			cs.stats.Incr(metricDeliveredEvents)
		}
	}
}

// deliverToSelfAndPeer pushes msg to all of the sender's sessions and all of
// the peer's sessions, so the sender's other devices see the sent message.
func (cs *ChatServer) deliverToSelfAndPeer(fromUserId, toUserId string, msg *ServerMessage) {
	cs.deliverToUser(fromUserId, msg)
	if toUserId != fromUserId {
		cs.deliverToUser(toUserId, msg)
	}
}

// broadcastPresence pushes the current online-user count to every registered
// connection, regardless of authentication state.
func (cs *ChatServer) broadcastPresence() {
	msg := &ServerMessage{
		BaseMessage: BaseMessage{
			Timestamp: Now(),
		},
		Presence: &Presence{
			Count: cs.registry.OnlineUserCount(),
		},
	}

	for _, c := range cs.registry.Clients() {
		c.queueMessage(msg)
	}
}
