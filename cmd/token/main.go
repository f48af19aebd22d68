package main

import (
	"chat-relay/auth"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Mints a token signed with JWT_SECRET for local testing, e.g.
//
//	go run ./cmd/token -user api -roles publisher
func main() {
	_ = godotenv.Load()
	userID := flag.String("user", "local-dev", "user id carried by the token")
	roles := flag.String("roles", auth.RoleSubscriber, "comma separated roles: publisher, subscriber")
	ttl := flag.Duration("ttl", time.Hour, "token lifetime")
	issuer := flag.String("issuer", envOr("JWT_ISSUER", "chat-relay"), "token issuer")
	flag.Parse()

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		fmt.Fprintln(os.Stderr, "JWT_SECRET is not set")
		os.Exit(2)
	}

	token, err := auth.NewTokenManager(secret, *issuer, *ttl).
		GenerateToken(*userID, strings.Split(*roles, ","))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Unable to sign token: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(token)
}

func envOr(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}
