package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/pflag"
	"github.com/vfg2006/budget-guard-api/internal/config"
	"github.com/vfg2006/budget-guard-api/internal/domain"
	"github.com/vfg2006/budget-guard-api/internal/usecases/authenticating"
	"github.com/vfg2006/budget-guard-api/pkg/log"
)

// Prints a signed operator token for the admin API, e.g.
//
//	go run ./cmd/token --operator alice --role operator --ttl 8h
func main() {
	operator := pflag.StringP("operator", "o", "", "operator name carried in the token")
	roleName := pflag.StringP("role", "r", "viewer", "admin, operator or viewer")
	ttl := pflag.Duration("ttl", 0, "token lifetime, defaults to AUTH_TOKEN_TTL")
	pflag.Parse()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatal(err)
	}
	log.Setup(cfg.App.LogLevel)

	role, err := domain.ParseOperatorRole(*roleName)
	if err != nil {
		log.Fatal(err)
	}

	authCfg := cfg.Auth
	if *ttl > 0 {
		authCfg.TokenTTL = *ttl
	}

	token, err := authenticating.NewService(authCfg).IssueToken(*operator, role)
	if err != nil {
		log.Fatal(err)
	}

	log.L.WithFields(log.Fields{
		"operator":   *operator,
		"role":       role.String(),
		"expires_at": time.Now().Add(authCfg.TokenTTL).Format(time.RFC3339),
	}).Info("Token issued")

	fmt.Fprintln(os.Stdout, token)
}
