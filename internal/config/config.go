package config

import "os"

type Config struct {
	OrgID              string
	DatabasePath       string
	Port               string
	RelayURL           string
	LegacySettingsPath string
	LogLevel           string
}

func Load() *Config {
	port := getEnv("PORT", "3000")

	return &Config{
		OrgID:              getEnv("ORG_ID", ""),
		DatabasePath:       getEnv("DATABASE_PATH", "./taskpm.db"),
		Port:               port,
		RelayURL:           getEnv("RELAY_URL", "http://127.0.0.1:"+port+"/api/line/relay"),
		LegacySettingsPath: getEnv("LEGACY_SETTINGS_PATH", "./notification-settings.legacy.json"),
		LogLevel:           getEnv("LOG_LEVEL", "info"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
