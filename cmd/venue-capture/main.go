package main

import (
	"github.com/joho/godotenv"
	"github.com/rvagigs/venue-capture/internal/cli"
)

func main() {
	// Optional .env with Twitter/Postgres credentials; absence is fine.
	_ = godotenv.Load()

	cli.Execute()
}
