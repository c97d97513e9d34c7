package config

import "os"

func Addr() string {
	if addr, ok := os.LookupEnv("APP_ADDR"); ok {
		return addr
	}
	return ":8080"
}

func BasePath() string {
	return os.Getenv("APP_BASE_PATH")
}


