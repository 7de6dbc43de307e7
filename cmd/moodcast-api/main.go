package main

import "github.com/joho/godotenv"

func main() {
	// Load .env for local development; absence is not an error.
	_ = godotenv.Load()

	Execute()
}
