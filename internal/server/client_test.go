package server

import (
	"testing"
	"time"

	"github.com/npezzotti/birdseye/internal/testutil"
	"github.com/stretchr/testify/assert"
)

func TestClient_queueMessage(t *testing.T) {
	c := newTestClient(t, "c1")

	msg := NoErrOK(1, nil)
	ok := c.queueMessage(msg)
	assert.True(t, ok, "expected message to be queued")
	assert.Equal(t, msg, <-c.send, "expected queued message to be received")
}

func TestClient_queueMessageFullChannel(t *testing.T) {
	c := &Client{
		id:   "c1",
		send: make(chan *ServerMessage, 1),
		log:  testutil.TestLogger(t),
	}

	assert.True(t, c.queueMessage(NoErrOK(1, nil)), "expected first message to be queued")
	assert.False(t, c.queueMessage(NoErrOK(2, nil)), "expected message to be dropped when channel is full")
	assert.Len(t, c.send, 1, "expected only the first message in the channel")
}

func Test_serializeMessage(t *testing.T) {
	msg := &ServerMessage{
		BaseMessage: BaseMessage{
			Id:        1,
			Timestamp: time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC),
		},
		Response: &Response{
			ResponseCode: 200,
			Data:         "test data",
		},
	}

	bytes, err := serializeMessage(msg)
	assert.NoError(t, err, "expected no error serializing message")
	assert.JSONEq(t,
		`{"id":1,"timestamp":"2025-01-02T03:04:05Z","response":{"response_code":200,"data":"test data"}}`,
		string(bytes))
}

func TestClient_stopClient(t *testing.T) {
	c := newTestClient(t, "c1")

	c.stopClient()
	select {
	case <-c.stop:
	default:
		t.Fatal("expected stop channel to be closed")
	}

	// stopping twice must not panic
	c.stopClient()
}
