package handlers

import (
	"log"
	"os"
	"strconv"
	"time"
)

// Config holds the application-wide settings the handlers thread into the
// pure services.
type Config struct {
	// ProgramYear is the calendar year all project durations must fall in.
	ProgramYear int

	// Now supplies the current time; nil means time.Now. Tests pin it.
	Now func() time.Time
}

func (c Config) now() time.Time {
	if c.Now != nil {
		return c.Now()
	}
	return time.Now()
}

// LoadConfig reads the configuration from the environment (godotenv has
// already been applied at startup). An unset or invalid WBSO_PROGRAM_YEAR
// falls back to the current calendar year.
func LoadConfig() Config {
	year := time.Now().Year()
	if v := os.Getenv("WBSO_PROGRAM_YEAR"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			log.Printf("config: ignoring invalid WBSO_PROGRAM_YEAR %q: %v", v, err)
		} else {
			year = n
		}
	}
	return Config{ProgramYear: year}
}
