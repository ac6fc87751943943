package database

import "time"

type Account struct {
	Id           string
	Username     string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type Message struct {
	Id            int
	FromAccountId string
	ToAccountId   string
	Content       string
	CreatedAt     time.Time
}

type FriendRequest struct {
	Id            int
	FromAccountId string
	ToAccountId   string
	FromUsername  string
	CreatedAt     time.Time
}

type Friendship struct {
	Id         int
	AccountId1 string
	AccountId2 string
	CreatedAt  time.Time
}

type CreateAccountParams struct {
	Id           string
	Username     string
	PasswordHash string
}
