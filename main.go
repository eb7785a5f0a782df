package main

import (
	"log"

	"aestheti-qr-server/confs"
	"aestheti-qr-server/db"
	"aestheti-qr-server/server"
)

func main() {
	// load config
	err := confs.LoadConfig()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	// connect to database Postgres
	database, err := db.Connect()
	if err != nil {
		log.Fatalf("Failed to connect to DB: %v", err)
	}

	// run server
	apiServer := server.NewServer(database)
	apiServer.Start()
}
