package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lexbridge/legal-assistant/internal/core/domain"
	"github.com/lexbridge/legal-assistant/internal/infrastructure/config"
	mongodb "github.com/lexbridge/legal-assistant/internal/infrastructure/db/mongo"
)

func newUsersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "users",
		Short: "Manage user accounts",
	}
	cmd.AddCommand(newSetRoleCmd("promote", domain.RoleAdmin), newSetRoleCmd("demote", domain.RoleUser))
	return cmd
}

// newSetRoleCmd changes a user's role straight in the database. Used to
// bootstrap the first admin, who cannot be promoted through the API.
func newSetRoleCmd(use string, role domain.Role) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <email>",
		Short: fmt.Sprintf("Set the role of a user to %q", role),
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			cfg, err := config.Load(ctx)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}

			client, db, err := mongodb.Connect(ctx, mongodb.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
			if err != nil {
				return err
			}
			defer client.Disconnect(ctx)

			users := mongodb.NewUserRepository(db)
			email := strings.ToLower(strings.TrimSpace(args[0]))
			user, err := users.FindByEmail(ctx, email)
			if errors.Is(err, domain.ErrUserNotFound) {
				return fmt.Errorf("no user registered with email %s", email)
			}
			if err != nil {
				return err
			}

			if _, err := users.UpdateRole(ctx, user.ID, role); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s is now %s\n", email, role)
			return nil
		},
	}
}
