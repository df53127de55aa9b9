package main

import (
	"os"

	"horse.fit/translategw/internal/app"
)

func main() {
	os.Exit(app.Run(os.Args[1:]))
}
