package services

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/Amitsjoysm/LEADGENIE/internal/database"
)

// Logged-out tokens are denylisted in redis until they would have
// expired anyway.

func denylistKey(token string) string {
	sum := sha256.Sum256([]byte(token))
	return fmt.Sprintf("token:denylist:%s", hex.EncodeToString(sum[:]))
}

func DenylistToken(token string, ttl time.Duration) error {
	if database.RedisClient == nil {
		return nil
	}
	if ttl <= 0 {
		return nil
	}
	return database.RedisClient.Set(database.Ctx, denylistKey(token), 1, ttl).Err()
}

func IsDenylisted(token string) (bool, error) {
	if database.RedisClient == nil {
		return false, nil
	}
	n, err := database.RedisClient.Exists(database.Ctx, denylistKey(token)).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
