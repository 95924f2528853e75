package config

import "os"

type Config struct {
	ReportDir    string
	DBPath       string
	Restore      bool
	ScenarioFile string
	LogLevel     string
	LogFile      string
}

// Load reads the configuration from the environment. An empty DBPath
// disables the journal; an empty ScenarioFile selects the built-in sample.
func Load() *Config {
	return &Config{
		ReportDir:    getEnv("REPORT_DIR", "."),
		DBPath:       getEnv("DB_PATH", ""),
		Restore:      os.Getenv("RESTORE") == "1",
		ScenarioFile: getEnv("SCENARIO_FILE", ""),
		LogLevel:     getEnv("LOG_LEVEL", "info"),
		LogFile:      getEnv("LOG_FILE", ""),
	}
}

func getEnv(key, defaultVal string) string {
	if val, exists := os.LookupEnv(key); exists {
		return val
	}
	return defaultVal
}
