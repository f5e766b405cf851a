package activity

import (
	"encoding/json"
	"fmt"

	"libros/models"

	"gopkg.in/redis.v5"
)

// Journal keeps the latest requests made by each user.
type Journal interface {
	Write(username string, request models.UserRequest) error
	Read(username string) ([]models.UserRequest, error)
}

var _ Journal = (*RedisJournal)(nil)

// RedisJournal stores each user's requests in a Redis list named after the
// user, newest first, trimmed to MaxNumber entries.
type RedisJournal struct {
	Client    *redis.Client
	MaxNumber int
}

func NewRedisJournal(client *redis.Client, maxNumber int) *RedisJournal {
	return &RedisJournal{client, maxNumber}
}

func (journal *RedisJournal) Write(username string, request models.UserRequest) error {
	value, err := json.Marshal(request)
	if err != nil {
		return err
	}

	pushCmd := journal.Client.LPush(username, value)

	if pushCmd.Err() != nil {
		return fmt.Errorf("can not push request for %s: %w", username, pushCmd.Err())
	}

	trimCmd := journal.Client.LTrim(username, 0, int64(journal.MaxNumber-1))

	if trimCmd.Err() != nil {
		return fmt.Errorf("can not trim requests for %s: %w", username, trimCmd.Err())
	}

	return nil
}

func (journal *RedisJournal) Read(username string) ([]models.UserRequest, error) {
	raw, err := journal.Client.LRange(username, 0, int64(journal.MaxNumber-1)).Result()
	if err != nil {
		return nil, fmt.Errorf("can not read requests for %s: %w", username, err)
	}

	requests := make([]models.UserRequest, 0, len(raw))
	for _, entry := range raw {
		var request models.UserRequest
		if err := json.Unmarshal([]byte(entry), &request); err != nil {
			return nil, fmt.Errorf("can not decode request for %s: %w", username, err)
		}
		requests = append(requests, request)
	}

	return requests, nil
}
