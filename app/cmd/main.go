package main

import (
	"os"

	"github.com/ribgsilva/notes-web/app/cmd/schema"
)

func main() {
	if len(os.Args) < 2 {
		listCommands()
		return
	}
	switch os.Args[1] {
	case "schema":
		schema.Run(os.Args[2:])
	default:
		listCommands()
	}
}

func listCommands() {
	println("Commands")
	println("\tschema\t\t\t- Manages the database schema")
}
