package main

import (
	"flag"

	"wtfTimeline/crud"
	"wtfTimeline/http"
	"wtfTimeline/logger"
)

// main is the app's entry point.
func main() {
	// Check if the flag "-prod" has been provided. It means that we're running in production.
	productionBool := flag.Bool("prod", false, "Provide this flag in production to ensure that a .config.json file is provided before the application starts.")
	flag.Parse()

	// Load configuration from a .config.json file if present, otherwise use
	// the default dev setup. With -prod the file is required and the app
	// panics if none is found.
	config := LoadConfig(*productionBool)

	logger.Init(config.IsProd())
	defer logger.Sync()

	// Open a database connection and execute migrations.
	db := NewDB(config.Database.ConnectionInfo())
	must(Open(db, config.IsProd()))
	defer Close(db)
	must(AutoMigrate(db))

	// Start the crud services. The feed service composes the others,
	// so it must come last.
	services, err := crud.NewServices(
		db.Gorm,
		crud.WithUser(config.Pepper, config.HMACKey),
		crud.WithTweet(),
		crud.WithFollow(),
		crud.WithLike(),
		crud.WithFeed(),
	)
	must(err)

	// Set up a webserver and serve the app.
	server := http.NewServer(config.IsProd(), config.CSRFKey, services)
	server.Run(config.Port)
}

// must is a little helper for shortening the panic instruction.
func must(err error) {
	if err != nil {
		panic(err)
	}
}
