package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ngxhuy/viva/internal/store"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Manage candidate profiles",
}

var profileAddCmd = &cobra.Command{
	Use:   "add <candidate-id> <profile text>",
	Short: "Add or replace a candidate profile",
	Long: `Add or replace a candidate profile. The profile text is free-form;
a "prior score: N" fragment, if present, seeds the ability classification.`,
	Args: cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		id := args[0]
		profile := strings.Join(args[1:], " ")
		if err := store.NewProfileRepository(st).Put(context.Background(), id, profile); err != nil {
			return fmt.Errorf("save profile: %w", err)
		}
		fmt.Printf("Profile saved for %s\n", id)
		return nil
	},
}

var profileShowCmd = &cobra.Command{
	Use:   "show <candidate-id>",
	Short: "Show a candidate profile",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		profile, err := store.NewProfileRepository(st).Lookup(context.Background(), args[0])
		if err != nil {
			return err
		}
		fmt.Println(profile)
		return nil
	},
}

var profileListCmd = &cobra.Command{
	Use:   "list",
	Short: "List candidate IDs with stored profiles",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		ids, err := store.NewProfileRepository(st).List(context.Background())
		if err != nil {
			return fmt.Errorf("list profiles: %w", err)
		}
		if len(ids) == 0 {
			fmt.Println("No profiles stored yet.")
			return nil
		}
		for _, id := range ids {
			fmt.Println(id)
		}
		return nil
	},
}

func init() {
	profileCmd.AddCommand(profileAddCmd)
	profileCmd.AddCommand(profileShowCmd)
	profileCmd.AddCommand(profileListCmd)
}
