package api

import (
	"github.com/spf13/viper"

	"github.com/lcardenas7/Edusyn-sub000/logging"
)

type Config struct {
	StorageConfig
	ServerConfig
}

type StorageConfig struct {
	DatabasePath string
}

type ServerConfig struct {
	Port    int
	GinMode string
}

func ReadConfig() *Config {
	return &Config{
		StorageConfig: StorageConfig{
			DatabasePath: getStringOrDefault("storage.path", "databases/elections.db"),
		},
		ServerConfig: ServerConfig{
			Port:    getIntOrDefault("server.port", 8080),
			GinMode: getStringOrDefault("server.ginMode", "debug"),
		},
	}
}

func getIntOrDefault(name string, def int) int {
	if viper.IsSet(name) {
		v := viper.GetInt(name)
		logging.Log.Printf("found '%s' in viper", name)
		return v
	}
	logging.Log.Printf("could not find '%s' in viper! Returning default", name)
	return def
}

func getStringOrDefault(name string, def string) string {
	if viper.IsSet(name) {
		v := viper.GetString(name)
		logging.Log.Printf("found '%s' in viper", name)
		return v
	}
	logging.Log.Printf("could not find '%s' in viper! Returning default", name)
	return def
}
