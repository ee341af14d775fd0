package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strconv"

	kpg "github.com/opst/trackfab/pkg/domain/trackfab/db/postgres"
)

func main() {
	ctx, cancel := signal.NotifyContext(
		context.Background(),
		os.Interrupt, os.Kill,
	)
	defer cancel()

	defaultPort := 5432
	if sp := os.Getenv("DB_PORT"); sp != "" {
		if p, err := strconv.Atoi(sp); err == nil {
			defaultPort = p
		}
	}

	host := flag.String("host", os.Getenv("DB_HOST"), "The host of the database.")
	port := flag.Int("port", defaultPort, "The port of the database.")
	user := flag.String("user", os.Getenv("DB_USER"), "The user of the database.")
	password := flag.String("pass", os.Getenv("DB_PASSWORD"), "The password of the database.")
	database := flag.String("database", os.Getenv("DB_NAME"), "The name of the database.")
	schema := flag.String("schema", os.Getenv("TRACKFAB_SCHEMA"), "The path to the schema repository directory.")
	flag.Parse()

	db, err := kpg.New(
		ctx,
		fmt.Sprintf(
			"postgres://%s:%s@%s:%d/%s",
			*user, *password, *host, *port, *database,
		),
		kpg.WithSchemaRepository(*schema),
	)
	if err != nil {
		log.Fatalf("can not connect to database: %s", err)
	}
	defer db.Close()

	if err := db.Schema().Upgrade(ctx); err != nil {
		log.Fatalf("can not upgrade schema: %s", err)
	}
	log.Println("schema is up to date.")
}
