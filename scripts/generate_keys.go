//go:build ignore

// generate_keys prints a JWT verification secret and one or more admin API
// keys with the bcrypt hashes API_KEY_HASHES expects.
//
//	go run scripts/generate_keys.go -keys 2
package main

import (
	"crypto/rand"
	"encoding/base64"
	"flag"
	"fmt"
	"os"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

func randomToken(n int) string {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		fmt.Fprintf(os.Stderr, "read random bytes: %v\n", err)
		os.Exit(1)
	}
	return base64.RawURLEncoding.EncodeToString(b)
}

func main() {
	keys := flag.Int("keys", 1, "number of API keys to generate")
	cost := flag.Int("cost", bcrypt.DefaultCost, "bcrypt cost")
	flag.Parse()

	if *keys < 1 {
		fmt.Fprintln(os.Stderr, "-keys must be at least 1")
		os.Exit(2)
	}

	apiKeys := make([]string, *keys)
	hashes := make([]string, *keys)
	for i := range apiKeys {
		apiKeys[i] = randomToken(24)
		h, err := bcrypt.GenerateFromPassword([]byte(apiKeys[i]), *cost)
		if err != nil {
			fmt.Fprintf(os.Stderr, "hash API key: %v\n", err)
			os.Exit(1)
		}
		hashes[i] = string(h)
	}

	fmt.Println("# service environment")
	fmt.Printf("JWT_SECRET_KEY=%s\n", randomToken(32))
	fmt.Printf("API_KEY_HASHES=%s\n", strings.Join(hashes, ","))
	fmt.Println()
	fmt.Println("# X-API-Key values for the admin console; only the hashes go into the service")
	for _, k := range apiKeys {
		fmt.Println(k)
	}
	fmt.Println()
	fmt.Println("# JWT_SECRET_KEY must match the storefront backend that issues customer tokens")
}
