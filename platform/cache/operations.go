package cache

import (
	"github.com/gomodule/redigo/redis"
)

func Get(key string, conn *redis.Conn) (string, error) {
	return redis.String((*conn).Do("GET", key))
}

func Set(key string, value interface{}, conn *redis.Conn) error {
	_, err := (*conn).Do("SET", key, value)
	return err
}

// SetEx stores a key that expires after ttl seconds; room codes are kept
// alive this way so abandoned rooms fall out of the lobby on their own.
func SetEx(key string, ttl int, value interface{}, conn *redis.Conn) error {
	_, err := (*conn).Do("SETEX", key, ttl, value)
	return err
}

func Del(key string, conn *redis.Conn) error {
	_, err := (*conn).Do("DEL", key)
	return err
}

func Exists(key string, conn *redis.Conn) (bool, error) {
	return redis.Bool((*conn).Do("EXISTS", key))
}
