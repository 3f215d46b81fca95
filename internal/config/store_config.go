package config

import "strconv"

const (
	// StoreBackendFile keeps the session in a JSON file under the data folder.
	StoreBackendFile = "file"
	// StoreBackendRedis keeps the session in Redis.
	StoreBackendRedis = "redis"
)

type Store struct{}

var _ StoreConfig = Store{}

func (Store) GetStoreBackend() string {
	return GetEnv("STORE_BACKEND", StoreBackendFile)
}

func (Store) GetDataFolder() string {
	return GetEnv("DATA_FOLDER", "./data")
}

func (Store) GetRedisAddr() string {
	return GetEnv("REDIS_ADDR", "localhost:6379")
}

func (Store) GetRedisPassword() string {
	return GetEnv("REDIS_PASSWORD", "")
}

func (Store) GetRedisDB() int {
	db, err := strconv.Atoi(GetEnv("REDIS_DB", "0"))
	if err != nil {
		return 0
	}
	return db
}
