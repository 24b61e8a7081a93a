//go:build ignore

// genhash prints bcrypt hashes for seeding recruiter accounts by hand.
//
//	go run scripts/genhash.go <password> [password...]
package main

import (
	"fmt"
	"os"

	"go-screening-backend/pkg/security"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: go run scripts/genhash.go <password> [password...]")
		os.Exit(2)
	}

	for _, pass := range os.Args[1:] {
		hash, err := security.HashPassword(pass)
		if err != nil {
			fmt.Println("Error:", err)
			continue
		}
		fmt.Printf("Hash: %s\n", hash)
	}
}
