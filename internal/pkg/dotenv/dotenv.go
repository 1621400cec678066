package dotenv

import (
	"fmt"

	"github.com/joho/godotenv"
)

// Load reads the .env file in the working directory into the process
// environment. Variables already set in the environment win.
func Load() error {
	if err := godotenv.Load(); err != nil {
		return fmt.Errorf("load .env: %w", err)
	}
	return nil
}
