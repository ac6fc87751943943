package server

import (
	"errors"
	"net/http"
	"time"

	"github.com/npezzotti/birdseye/internal/types"
)

type BaseMessage struct {
	Id        int       `json:"id,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// ClientMessage is an inbound frame. Exactly one of the variant fields must
// be set; frames failing validation are rejected before they reach the
// session state machine.
type ClientMessage struct {
	BaseMessage
	Authenticate *Authenticate `json:"authenticate,omitempty"`
	Send         *Send         `json:"send,omitempty"`
	client       *Client       `json:"-"`
}

type Authenticate struct {
	UserId string `json:"user_id"`
}

type Send struct {
	To      string `json:"to"`
	Content string `json:"content"`
}

var errInvalidMessage = errors.New("invalid message")

func (m *ClientMessage) validate() error {
	var variants int
	if m.Authenticate != nil {
		variants++
		if m.Authenticate.UserId == "" {
			return errInvalidMessage
		}
	}
	if m.Send != nil {
		variants++
		if m.Send.To == "" || m.Send.Content == "" {
			return errInvalidMessage
		}
	}

	if variants != 1 {
		return errInvalidMessage
	}

	return nil
}

type ServerMessage struct {
	BaseMessage
	Response     *Response      `json:"response,omitempty"`
	Presence     *Presence      `json:"presence,omitempty"`
	Message      *types.Message `json:"message,omitempty"`
	Notification *Notification  `json:"notification,omitempty"`
}

type Response struct {
	ResponseCode int    `json:"response_code"`
	Error        string `json:"error,omitempty"`
	Data         any    `json:"data,omitempty"`
}

// Presence carries the current online-user count, broadcast to every
// connection on connect, authenticate and disconnect.
type Presence struct {
	Count int `json:"count"`
}

type Notification struct {
	FriendRequest  *FriendRequestNotification  `json:"friend_request,omitempty"`
	FriendAccepted *FriendAcceptedNotification `json:"friend_accepted,omitempty"`
}

type FriendRequestNotification struct {
	From string `json:"from"`
}

type FriendAcceptedNotification struct {
	Friend string `json:"friend"`
}

func NoErrOK(id int, data any) *ServerMessage {
	return &ServerMessage{
		BaseMessage: BaseMessage{
			Id:        id,
			Timestamp: Now(),
		},
		Response: &Response{
			ResponseCode: http.StatusOK,
			Data:         data,
		},
	}
}

func NoErrAccepted(id int) *ServerMessage {
	return &ServerMessage{
		BaseMessage: BaseMessage{
			Id:        id,
			Timestamp: Now(),
		},
		Response: &Response{
			ResponseCode: http.StatusAccepted,
		},
	}
}

func ErrUnauthorized(id int) *ServerMessage {
	return &ServerMessage{
		BaseMessage: BaseMessage{
			Id:        id,
			Timestamp: Now(),
		},
		Response: &Response{
			ResponseCode: http.StatusUnauthorized,
			Error:        "unauthorized",
		},
	}
}

func ErrAlreadyBound(id int) *ServerMessage {
	return &ServerMessage{
		BaseMessage: BaseMessage{
			Id:        id,
			Timestamp: Now(),
		},
		Response: &Response{
			ResponseCode: http.StatusConflict,
			Error:        "already authenticated",
		},
	}
}

func ErrUserNotFound(id int) *ServerMessage {
	return &ServerMessage{
		BaseMessage: BaseMessage{
			Id:        id,
			Timestamp: Now(),
		},
		Response: &Response{
			ResponseCode: http.StatusNotFound,
			Error:        "user not found",
		},
	}
}

func ErrInternalError(id int) *ServerMessage {
	return &ServerMessage{
		BaseMessage: BaseMessage{
			Id:        id,
			Timestamp: Now(),
		},
		Response: &Response{
			ResponseCode: http.StatusInternalServerError,
			Error:        "internal server error",
		},
	}
}

func ErrInvalidMessage(id int) *ServerMessage {
	msg := &ServerMessage{
		BaseMessage: BaseMessage{
			Timestamp: Now(),
		},
		Response: &Response{
			ResponseCode: http.StatusBadRequest,
			Error:        "invalid message format",
		},
	}

	if id > 0 {
		msg.Id = id
	}
	return msg
}

func Now() time.Time {
	return time.Now().UTC().Round(time.Millisecond)
}
