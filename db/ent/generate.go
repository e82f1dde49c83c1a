package main

import (
	"log"

	"entgo.io/ent/entc"
	"entgo.io/ent/entc/gen"
)

//go:generate go run .

func main() {
	err := entc.Generate(
		"./schema",
		&gen.Config{
			Target:  "../../gen/ent",
			Package: "github.com/carbux/fuel-receipts/gen/ent",
			Schema:  "github.com/carbux/fuel-receipts/db/ent/schema",
		},
	)
	if err != nil {
		log.Fatal(err)
	}
}
