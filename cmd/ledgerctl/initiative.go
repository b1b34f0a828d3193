package main

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/MrJamesThe3rd/pledger/cmd/ledgerctl/internal/view"
	"github.com/MrJamesThe3rd/pledger/internal/initiative"
	initiativeStore "github.com/MrJamesThe3rd/pledger/internal/initiative/store"
)

func initiativeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "initiative",
		Short: "Create, inspect and move initiatives through their lifecycle",
	}

	cmd.AddCommand(initiativeCreateCmd())
	cmd.AddCommand(initiativeStatusCmd())
	cmd.AddCommand(initiativeShowCmd())

	return cmd
}

func initiativeCreateCmd() *cobra.Command {
	var (
		description  string
		target       string
		participants int
	)

	cmd := &cobra.Command{
		Use:   "create [title]",
		Short: "Create a draft initiative",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := decimal.NewFromString(target)
			if err != nil {
				return fmt.Errorf("invalid --target %q: %w", target, err)
			}

			_, db, err := connect()
			if err != nil {
				return err
			}
			defer db.Close()

			svc := initiative.NewService(initiativeStore.New(db))

			in, err := svc.Create(cmd.Context(), initiative.CreateParams{
				Title:              args[0],
				Description:        description,
				TargetAmount:       amount,
				TargetParticipants: participants,
			})
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), view.Initiative(in))

			return nil
		},
	}

	cmd.Flags().StringVarP(&description, "description", "d", "", "Initiative description")
	cmd.Flags().StringVarP(&target, "target", "t", "0", "Target amount")
	cmd.Flags().IntVarP(&participants, "participants", "p", 1, "Target number of participants")

	return cmd
}

func initiativeStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "status [id] [draft|active|closed|completed]",
		Short:     "Move an initiative to another lifecycle status",
		Args:      cobra.ExactArgs(2),
		ValidArgs: []string{"active", "closed", "completed"},
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := uuid.Parse(args[0])
			if err != nil {
				return fmt.Errorf("invalid initiative id %q", args[0])
			}

			next := initiative.Status(args[1])
			if !next.Valid() {
				return fmt.Errorf("unknown status %q", args[1])
			}

			_, db, err := connect()
			if err != nil {
				return err
			}
			defer db.Close()

			svc := initiative.NewService(initiativeStore.New(db))

			in, err := svc.UpdateStatus(cmd.Context(), id, next)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), view.Initiative(in))

			return nil
		},
	}
}

func initiativeShowCmd() *cobra.Command {
	var status string

	cmd := &cobra.Command{
		Use:   "show [id]",
		Short: "Show one initiative, or list all when no id is given",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				id     uuid.UUID
				filter initiative.ListFilter
			)

			if len(args) == 1 {
				parsed, err := uuid.Parse(args[0])
				if err != nil {
					return fmt.Errorf("invalid initiative id %q", args[0])
				}

				id = parsed
			}

			if status != "" {
				s := initiative.Status(status)
				if !s.Valid() {
					return fmt.Errorf("unknown status %q", status)
				}

				filter.Status = &s
			}

			_, db, err := connect()
			if err != nil {
				return err
			}
			defer db.Close()

			svc := initiative.NewService(initiativeStore.New(db))

			if len(args) == 1 {
				in, err := svc.Get(cmd.Context(), id)
				if err != nil {
					return err
				}

				fmt.Fprintln(cmd.OutOrStdout(), view.Initiative(in))

				return nil
			}

			list, err := svc.List(cmd.Context(), filter)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), view.Initiatives(list))

			return nil
		},
	}

	cmd.Flags().StringVarP(&status, "status", "s", "", "Only list initiatives in this status")

	return cmd
}
