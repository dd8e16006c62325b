package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

func main() {
	// Secrets such as GEMINI_API_KEYS may live in .env
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
