package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/piresc/hubber/internal/pkg/config"
	jwtpkg "github.com/piresc/hubber/internal/pkg/jwt"
	"github.com/piresc/hubber/internal/pkg/models"
)

// gentoken signs a development bearer token with the configured JWT secret.
//
//	APP_ENV=local go run ./cmd/gentoken -role driver
func main() {
	configPath := flag.String("config", "config/hubber.env", "path to the env file loaded when APP_ENV=local")
	userID := flag.String("user", "", "user id to embed (random when empty)")
	role := flag.String("role", string(models.RolePassenger), "passenger, driver or admin")
	flag.Parse()

	if !models.IsValidRole(*role) {
		log.Fatalf("unknown role %q", *role)
	}

	id := uuid.New()
	if *userID != "" {
		parsed, err := uuid.Parse(*userID)
		if err != nil {
			log.Fatalf("invalid user id: %v", err)
		}
		id = parsed
	}

	configs := config.InitConfig(*configPath)
	token, expiresAt, err := jwtpkg.GenerateToken(id, models.Role(*role), configs)
	if err != nil {
		log.Fatalf("failed to sign token: %v", err)
	}

	fmt.Fprintf(os.Stderr, "user_id=%s role=%s expires=%s\n", id, *role, time.Unix(expiresAt, 0).UTC().Format(time.RFC3339))
	fmt.Println(token)
}
