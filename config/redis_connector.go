package config

import (
	"gopkg.in/redis.v5"
)

func SetupRedis(cfg *Config) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr: cfg.Activity.RedisURL,
	})

	if err := client.Ping().Err(); err != nil {
		_ = client.Close()
		return nil, err
	}

	return client, nil
}
