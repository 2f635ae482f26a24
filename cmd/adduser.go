package main

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"newsletter/internal/auth"
	"newsletter/internal/config"
	"newsletter/pkg/domain"
	"newsletter/pkg/logger"
)

// addUserCommand constructs the 'add-user' subcommand that registers an
// operator allowed to publish newsletter issues. The password is hashed with
// Argon2id before it is stored.
func addUserCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add-user",
		Short: "Registers an operator allowed to publish newsletters",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()

			username, _ := cmd.Flags().GetString("username")
			password, _ := cmd.Flags().GetString("password")

			passwordHash, err := auth.HashPassword(password)
			if err != nil {
				logger.Fatal(ctx, "could not hash password", zap.Error(err))
			}

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			userID := domain.UserID(uuid.New())
			if err := strg.StoreUser(ctx, userID, username, passwordHash); err != nil {
				logger.Fatal(ctx, "could not store user", zap.Error(err))
			}

			fmt.Println(uuid.UUID(userID).String()) //nolint: forbidigo
		},
	}

	cmd.Flags().String("username", "", "Operator username")
	cmd.Flags().String("password", "", "Operator password (hashed before storage)")
	_ = cmd.MarkFlagRequired("username")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}
