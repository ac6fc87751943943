package database

import (
	"github.com/stretchr/testify/mock"
)

type MockBirdseyeRepository struct {
	mock.Mock
}

func (m *MockBirdseyeRepository) Ping() error {
	args := m.Called()
	return args.Error(0)
}
func (m *MockBirdseyeRepository) CreateAccount(params CreateAccountParams) (Account, error) {
	args := m.Called(params)
	return args.Get(0).(Account), args.Error(1)
}
func (m *MockBirdseyeRepository) GetAccountById(id string) (Account, error) {
	args := m.Called(id)
	return args.Get(0).(Account), args.Error(1)
}
func (m *MockBirdseyeRepository) GetAccountByUsername(username string) (Account, error) {
	args := m.Called(username)
	return args.Get(0).(Account), args.Error(1)
}
func (m *MockBirdseyeRepository) CreateMessage(fromId, toId, content string) (Message, error) {
	args := m.Called(fromId, toId, content)
	return args.Get(0).(Message), args.Error(1)
}
func (m *MockBirdseyeRepository) ListConversation(accountId, peerId string, limit int) ([]Message, error) {
	args := m.Called(accountId, peerId, limit)
	return args.Get(0).([]Message), args.Error(1)
}
func (m *MockBirdseyeRepository) CreateFriendRequest(fromId, toId string) (FriendRequest, error) {
	args := m.Called(fromId, toId)
	return args.Get(0).(FriendRequest), args.Error(1)
}
func (m *MockBirdseyeRepository) GetFriendRequestById(id int) (FriendRequest, error) {
	args := m.Called(id)
	return args.Get(0).(FriendRequest), args.Error(1)
}
func (m *MockBirdseyeRepository) ListFriendRequestsFor(accountId string) ([]FriendRequest, error) {
	args := m.Called(accountId)
	return args.Get(0).([]FriendRequest), args.Error(1)
}
func (m *MockBirdseyeRepository) DeleteFriendRequest(id int) error {
	args := m.Called(id)
	return args.Error(0)
}
func (m *MockBirdseyeRepository) FriendRequestExists(fromId, toId string) bool {
	args := m.Called(fromId, toId)
	return args.Bool(0)
}
func (m *MockBirdseyeRepository) CreateFriendship(accountId1, accountId2 string) (Friendship, error) {
	args := m.Called(accountId1, accountId2)
	return args.Get(0).(Friendship), args.Error(1)
}
func (m *MockBirdseyeRepository) DeleteFriendship(accountId1, accountId2 string) error {
	args := m.Called(accountId1, accountId2)
	return args.Error(0)
}
func (m *MockBirdseyeRepository) FriendshipExists(accountId1, accountId2 string) bool {
	args := m.Called(accountId1, accountId2)
	return args.Bool(0)
}
func (m *MockBirdseyeRepository) ListFriends(accountId string) ([]Account, error) {
	args := m.Called(accountId)
	return args.Get(0).([]Account), args.Error(1)
}
