package config

import (
	"os"
	"strconv"
)

// applyEnv overlays environment variables onto a loaded config so
// deployments can tune the game without editing the yaml file.
func applyEnv(cfg *Config) {
	if v := getEnvFloat("WURSTEL_STARTING_BALANCE"); v > 0 {
		cfg.Balance.StartingBalance = v
	}
	if v := getEnvInt("WURSTEL_BASE_WANT"); v > 0 {
		cfg.Balance.BaseWant = v
	}
	if v := getEnvInt("WURSTEL_JITTER_BOUND"); v > 0 {
		cfg.Balance.JitterBound = v
	}
	if v, ok := lookupEnvFloat("WURSTEL_SAVINGS_RATE"); ok && v >= 0 {
		cfg.Balance.SavingsRateAnnual = v
	}
	if v, ok := lookupEnvFloat("WURSTEL_LOAN_RATE"); ok && v >= 0 {
		cfg.Balance.LoanRateAnnual = v
	}
	if v := os.Getenv("WURSTEL_SAVES_DIR"); v != "" {
		cfg.Saves.Dir = v
	}
	if v := getEnvInt("WURSTEL_AUTOSAVE_KEEP"); v > 0 {
		cfg.Saves.AutosaveKeep = v
	}
	if v := os.Getenv("WURSTEL_HISTORY_PATH"); v != "" {
		cfg.History.Path = v
	}
	if v := os.Getenv("WURSTEL_HISTORY_ENABLED"); v != "" {
		cfg.History.Enabled = v == "1" || v == "true"
	}
}

func getEnvInt(key string) int {
	val := os.Getenv(key)
	if val == "" {
		return 0
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return 0
	}
	return n
}

func getEnvFloat(key string) float64 {
	f, _ := lookupEnvFloat(key)
	return f
}

func lookupEnvFloat(key string) (float64, bool) {
	val := os.Getenv(key)
	if val == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(val, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}
