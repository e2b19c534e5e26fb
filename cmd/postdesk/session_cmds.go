package main

import (
	"errors"

	"github.com/spf13/cobra"

	sessionadapter "postdesk/internal/adapter/session"
	"postdesk/internal/config"
	"postdesk/internal/core/domain"
)

func newLoginCmd(cfg *config.Config) *cobra.Command {
	var (
		token   string
		actorID uint64
		email   string
	)

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Store the bearer credential for this workstation",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := sessionadapter.InspectToken(token); err != nil {
				if errors.Is(err, domain.ErrSessionExpired) {
					return errors.New("token is already expired")
				}
				return errors.New("token is missing or malformed")
			}

			store, err := sessionadapter.Open(cfg.SessionDBPath)
			if err != nil {
				return err
			}
			defer store.Close()

			if err := store.Save(cmd.Context(), domain.Session{
				Token:   token,
				ActorID: actorID,
				Email:   email,
			}); err != nil {
				return err
			}
			cmd.Println("session saved")
			return nil
		},
	}

	cmd.Flags().StringVar(&token, "token", "", "bearer token issued by the login surface")
	cmd.Flags().Uint64Var(&actorID, "actor", 0, "actor (employee) id the token belongs to")
	cmd.Flags().StringVar(&email, "email", "", "actor email")
	_ = cmd.MarkFlagRequired("token")
	_ = cmd.MarkFlagRequired("actor")
	return cmd
}

func newLogoutCmd(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Clear the stored session",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := sessionadapter.Open(cfg.SessionDBPath)
			if err != nil {
				return err
			}
			defer store.Close()

			if err := store.Clear(cmd.Context()); err != nil {
				return err
			}
			cmd.Println("session cleared")
			return nil
		},
	}
}
