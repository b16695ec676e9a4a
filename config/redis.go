package config

import (
	"log"

	"reweightapp/global"

	"github.com/go-redis/redis"
)

func initRedis() {
	client := redis.NewClient(&redis.Options{
		Addr:     AppConfig.Redis.Addr,
		DB:       AppConfig.Redis.DB,
		Password: AppConfig.Redis.Password,
	})

	if _, err := client.Ping().Result(); err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}

	global.RedisDB = client
}
