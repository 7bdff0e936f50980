package main

import (
	"cla/internal/config"
	"cla/pkg/logger"
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// JWTCommand constructs the 'jwt' subcommand that generates a signed RS256
// GitHub App JWT from the configured credentials. Useful for exercising the
// GitHub API with curl while debugging an installation.
func JWTCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "jwt",
		Short: "Generates a GitHub App JWT from the configured credentials",
		Run: func(cmd *cobra.Command, args []string) {
			key, err := jwt.ParseRSAPrivateKeyFromPEM([]byte(cfg.GithubApp.PrivateKey))
			if err != nil {
				logger.Fatal(context.Background(), "could not parse RSA private key", zap.Error(err))
			}

			now := time.Now()
			claims := jwt.RegisteredClaims{
				Issuer:    strconv.FormatInt(cfg.GithubApp.ID, 10),
				IssuedAt:  jwt.NewNumericDate(now.Add(-time.Minute)),
				ExpiresAt: jwt.NewNumericDate(now.Add(9 * time.Minute)),
			}
			token := jwt.NewWithClaims(jwt.SigningMethodRS256, claims)
			signed, err := token.SignedString(key)
			if err != nil {
				logger.Fatal(context.Background(), "could not sign JWT", zap.Error(err))
			}

			fmt.Println(signed) //nolint: forbidigo
		},
	}

	return cmd
}
