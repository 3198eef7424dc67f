package main

import (
	"os"

	"github.com/joho/godotenv"
)

// loadDotEnv exports variables from ./.env when the file exists. Variables
// already set in the environment win.
func loadDotEnv() error {
	if _, err := os.Stat(".env"); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	return godotenv.Load(".env")
}
