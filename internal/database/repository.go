package database

type BirdseyeRepository interface {
	Ping() error
	CreateAccount(params CreateAccountParams) (Account, error)
	GetAccountById(id string) (Account, error)
	GetAccountByUsername(username string) (Account, error)
	CreateMessage(fromId, toId, content string) (Message, error)
	ListConversation(accountId, peerId string, limit int) ([]Message, error)
	CreateFriendRequest(fromId, toId string) (FriendRequest, error)
	GetFriendRequestById(id int) (FriendRequest, error)
	ListFriendRequestsFor(accountId string) ([]FriendRequest, error)
	DeleteFriendRequest(id int) error
	FriendRequestExists(fromId, toId string) bool
	CreateFriendship(accountId1, accountId2 string) (Friendship, error)
	DeleteFriendship(accountId1, accountId2 string) error
	FriendshipExists(accountId1, accountId2 string) bool
	ListFriends(accountId string) ([]Account, error)
}
