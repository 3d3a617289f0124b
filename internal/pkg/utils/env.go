package utils

import (
	"log"
	"os"
	"strconv"
	"strings"
)

// lookupEnv returns defaultValue when key is unset or cannot be parsed.
func lookupEnv[T any](key string, defaultValue T, parse func(string) (T, error)) T {
	raw, ok := os.LookupEnv(key)
	if !ok {
		return defaultValue
	}

	value, err := parse(raw)
	if err != nil {
		log.Printf("invalid value for %s, using default %v: %v", key, defaultValue, err)
		return defaultValue
	}
	return value
}

func GetEnvString(key, defaultValue string) string {
	return lookupEnv(key, defaultValue, func(raw string) (string, error) {
		return raw, nil
	})
}

func GetEnvInt(key string, defaultValue int) int {
	return lookupEnv(key, defaultValue, func(raw string) (int, error) {
		return strconv.Atoi(strings.TrimSpace(raw))
	})
}

func GetEnvFloat(key string, defaultValue float64) float64 {
	return lookupEnv(key, defaultValue, func(raw string) (float64, error) {
		return strconv.ParseFloat(strings.TrimSpace(raw), 64)
	})
}
