// Command apiclient creates credentials for the simulation API. It prints
// the secret to hand to the client and the API_CLIENTS entry for the server.
package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/iamasit07/connect4-agents/pkg/auth"
)

func main() {
	name := flag.String("name", "", "client name")
	secret := flag.String("secret", "", "client secret; generated when empty")
	flag.Parse()

	if *name == "" {
		log.Fatal("-name is required")
	}
	if *secret == "" {
		*secret = auth.GenerateSecret()
	}
	if err := auth.ValidateSecretStrength(*secret); err != nil {
		log.Fatal(err)
	}

	hash, err := auth.HashSecret(*secret)
	if err != nil {
		log.Fatalf("Failed to hash secret: %v", err)
	}

	fmt.Printf("secret:      %s\n", *secret)
	fmt.Printf("API_CLIENTS: %s:%s\n", *name, hash)
}
