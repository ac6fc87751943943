package database

import (
	"time"
)

func (db *PgBirdseyeRepository) CreateAccount(params CreateAccountParams) (Account, error) {
	res := db.conn.QueryRow(
		"INSERT INTO accounts (id, username, password_hash, created_at) "+
			"VALUES ($1, $2, $3, $4) RETURNING id, username, created_at",
		params.Id,
		params.Username,
		params.PasswordHash,
		time.Now().UTC(),
	)

	var a Account
	err := res.Scan(
		&a.Id,
		&a.Username,
		&a.CreatedAt,
	)

	return a, err
}

func (db *PgBirdseyeRepository) GetAccountById(id string) (Account, error) {
	row := db.conn.QueryRow(
		"SELECT id, username, password_hash, created_at FROM accounts "+
			"WHERE id = $1 LIMIT 1",
		id,
	)

	var a Account
	err := row.Scan(
		&a.Id,
		&a.Username,
		&a.PasswordHash,
		&a.CreatedAt,
	)

	return a, err
}

func (db *PgBirdseyeRepository) GetAccountByUsername(username string) (Account, error) {
	row := db.conn.QueryRow(
		"SELECT id, username, password_hash, created_at FROM accounts "+
			"WHERE username = $1 LIMIT 1",
		username,
	)

	var a Account
	err := row.Scan(
		&a.Id,
		&a.Username,
		&a.PasswordHash,
		&a.CreatedAt,
	)

	return a, err
}

func (db *PgBirdseyeRepository) CreateMessage(fromId, toId, content string) (Message, error) {
	res := db.conn.QueryRow(
		"INSERT INTO messages (from_account_id, to_account_id, content, created_at) "+
			"VALUES ($1, $2, $3, $4) RETURNING id, from_account_id, to_account_id, content, created_at",
		fromId,
		toId,
		content,
		time.Now().UTC(),
	)

	var m Message
	err := res.Scan(
		&m.Id,
		&m.FromAccountId,
		&m.ToAccountId,
		&m.Content,
		&m.CreatedAt,
	)

	return m, err
}

func (db *PgBirdseyeRepository) ListConversation(accountId, peerId string, limit int) ([]Message, error) {
	if limit <= 0 {
		limit = 100
	}

	rows, err := db.conn.Query(
		"SELECT id, from_account_id, to_account_id, content, created_at FROM messages "+
			"WHERE (from_account_id = $1 AND to_account_id = $2) "+
			"OR (from_account_id = $2 AND to_account_id = $1) "+
			"ORDER BY created_at ASC LIMIT $3",
		accountId,
		peerId,
		limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var messages []Message
	for rows.Next() {
		var m Message
		if err := rows.Scan(
			&m.Id,
			&m.FromAccountId,
			&m.ToAccountId,
			&m.Content,
			&m.CreatedAt,
		); err != nil {
			return nil, err
		}
		messages = append(messages, m)
	}

	return messages, rows.Err()
}

func (db *PgBirdseyeRepository) CreateFriendRequest(fromId, toId string) (FriendRequest, error) {
	res := db.conn.QueryRow(
		"INSERT INTO friend_requests (from_account_id, to_account_id, created_at) "+
			"VALUES ($1, $2, $3) RETURNING id, from_account_id, to_account_id, created_at",
		fromId,
		toId,
		time.Now().UTC(),
	)

	var fr FriendRequest
	err := res.Scan(
		&fr.Id,
		&fr.FromAccountId,
		&fr.ToAccountId,
		&fr.CreatedAt,
	)

	return fr, err
}

func (db *PgBirdseyeRepository) GetFriendRequestById(id int) (FriendRequest, error) {
	row := db.conn.QueryRow(
		"SELECT fr.id, fr.from_account_id, fr.to_account_id, a.username, fr.created_at "+
			"FROM friend_requests fr JOIN accounts a ON a.id = fr.from_account_id "+
			"WHERE fr.id = $1 LIMIT 1",
		id,
	)

	var fr FriendRequest
	err := row.Scan(
		&fr.Id,
		&fr.FromAccountId,
		&fr.ToAccountId,
		&fr.FromUsername,
		&fr.CreatedAt,
	)

	return fr, err
}

func (db *PgBirdseyeRepository) ListFriendRequestsFor(accountId string) ([]FriendRequest, error) {
	rows, err := db.conn.Query(
		"SELECT fr.id, fr.from_account_id, fr.to_account_id, a.username, fr.created_at "+
			"FROM friend_requests fr JOIN accounts a ON a.id = fr.from_account_id "+
			"WHERE fr.to_account_id = $1 ORDER BY fr.created_at ASC",
		accountId,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var requests []FriendRequest
	for rows.Next() {
		var fr FriendRequest
		if err := rows.Scan(
			&fr.Id,
			&fr.FromAccountId,
			&fr.ToAccountId,
			&fr.FromUsername,
			&fr.CreatedAt,
		); err != nil {
			return nil, err
		}
		requests = append(requests, fr)
	}

	return requests, rows.Err()
}

func (db *PgBirdseyeRepository) DeleteFriendRequest(id int) error {
	_, err := db.conn.Exec(
		"DELETE FROM friend_requests WHERE id = $1",
		id,
	)

	return err
}

func (db *PgBirdseyeRepository) FriendRequestExists(fromId, toId string) bool {
	row := db.conn.QueryRow(
		"SELECT EXISTS (SELECT 1 FROM friend_requests "+
			"WHERE from_account_id = $1 AND to_account_id = $2)",
		fromId,
		toId,
	)

	var exists bool
	if err := row.Scan(&exists); err != nil {
		return false
	}

	return exists
}

func (db *PgBirdseyeRepository) CreateFriendship(accountId1, accountId2 string) (Friendship, error) {
	res := db.conn.QueryRow(
		"INSERT INTO friendships (account_id_1, account_id_2, created_at) "+
			"VALUES ($1, $2, $3) RETURNING id, account_id_1, account_id_2, created_at",
		accountId1,
		accountId2,
		time.Now().UTC(),
	)

	var f Friendship
	err := res.Scan(
		&f.Id,
		&f.AccountId1,
		&f.AccountId2,
		&f.CreatedAt,
	)

	return f, err
}

func (db *PgBirdseyeRepository) DeleteFriendship(accountId1, accountId2 string) error {
	_, err := db.conn.Exec(
		"DELETE FROM friendships "+
			"WHERE (account_id_1 = $1 AND account_id_2 = $2) "+
			"OR (account_id_1 = $2 AND account_id_2 = $1)",
		accountId1,
		accountId2,
	)

	return err
}

func (db *PgBirdseyeRepository) FriendshipExists(accountId1, accountId2 string) bool {
	row := db.conn.QueryRow(
		"SELECT EXISTS (SELECT 1 FROM friendships "+
			"WHERE (account_id_1 = $1 AND account_id_2 = $2) "+
			"OR (account_id_1 = $2 AND account_id_2 = $1))",
		accountId1,
		accountId2,
	)

	var exists bool
	if err := row.Scan(&exists); err != nil {
		return false
	}

	return exists
}

func (db *PgBirdseyeRepository) ListFriends(accountId string) ([]Account, error) {
	rows, err := db.conn.Query(
		"SELECT a.id, a.username, a.created_at FROM accounts a "+
			"JOIN friendships f ON (a.id = f.account_id_1 AND f.account_id_2 = $1) "+
			"OR (a.id = f.account_id_2 AND f.account_id_1 = $1) "+
			"ORDER BY a.username ASC",
		accountId,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var friends []Account
	for rows.Next() {
		var a Account
		if err := rows.Scan(
			&a.Id,
			&a.Username,
			&a.CreatedAt,
		); err != nil {
			return nil, err
		}
		friends = append(friends, a)
	}

	return friends, rows.Err()
}
