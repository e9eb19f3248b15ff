package main

import (
	"log"

	"github.com/joho/godotenv"

	"github.com/iamasit07/4-in-a-row/console/internal/cli"
)

func main() {
	if err := godotenv.Load(); err != nil {
		if err := godotenv.Load("../.env"); err != nil {
			log.Println("No .env file found, using environment variables")
		}
	}

	cli.Execute()
}
