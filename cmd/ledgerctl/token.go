package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/MrJamesThe3rd/pledger/internal/auth"
	"github.com/MrJamesThe3rd/pledger/internal/config"
)

func tokenCmd() *cobra.Command {
	var (
		user   string
		name   string
		region string
		role   string
		ttl    time.Duration
	)

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Mint a bearer token for local development",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}

			if cfg.Auth.JWTSecret == "" {
				return errors.New("JWT_SECRET must be set")
			}

			id := uuid.New()
			if user != "" {
				if id, err = uuid.Parse(user); err != nil {
					return fmt.Errorf("invalid --user %q", user)
				}
			}

			switch role {
			case auth.RoleMember, auth.RoleStaff, auth.RoleAdmin:
			default:
				return fmt.Errorf("unknown role %q", role)
			}

			token, err := auth.NewVerifier(cfg.Auth.JWTSecret, cfg.Auth.Issuer).Issue(auth.Identity{
				UserID: id,
				Name:   name,
				Region: region,
				Role:   role,
			}, ttl)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), token)

			return nil
		},
	}

	cmd.Flags().StringVar(&user, "user", "", "User id (random when empty)")
	cmd.Flags().StringVar(&name, "name", "", "Display name")
	cmd.Flags().StringVar(&region, "region", "", "Home region used as the pledge default")
	cmd.Flags().StringVar(&role, "role", auth.RoleMember, "member, staff or admin")
	cmd.Flags().DurationVar(&ttl, "ttl", 24*time.Hour, "Token lifetime")

	return cmd
}
