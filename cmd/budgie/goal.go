package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/budgie-cli/budgie/internal/cli"
)

func goalCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "goal",
		Short: "Track the savings goal",
		Long: `Show, set, and pay into the savings goal. A transfer moves existing
balance into savings: it increases the saved amount and records a matching
"Savings Transfer" expense, so the ledger stays honest.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			sess, err := openSession(ctx)
			if err != nil {
				return err
			}
			defer sess.Close()

			goal, err := sess.store.GetGoal(ctx)
			if err != nil {
				return fmt.Errorf("failed to get savings goal: %w", err)
			}

			if !goal.IsSet() {
				fmt.Println(cli.InfoStyle.Render("No savings goal set. Use 'budgie goal set TARGET' to create one."))
				return nil
			}

			ratio := goal.Progress()
			fmt.Println(cli.TitleStyle.Render("Savings Goal"))
			fmt.Printf("Saved %s of %s\n", cli.FormatAmount(goal.Saved), cli.FormatAmount(goal.Target))
			fmt.Printf("%s %3.0f%%\n", cli.ProgressBar(ratio, 12), ratio*100)
			if ratio >= 1 {
				fmt.Println(cli.SuccessStyle.Render("Goal achieved!"))
			}
			return nil
		},
	}

	cmd.AddCommand(setGoalCmd())
	cmd.AddCommand(transferGoalCmd())

	return cmd
}

func setGoalCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set TARGET",
		Short: "Set or update the goal target",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			target, err := parseAmount(args[0])
			if err != nil {
				return err
			}

			sess, err := openSession(ctx)
			if err != nil {
				return err
			}
			defer sess.Close()

			if err := sess.store.SetGoalTarget(ctx, target); err != nil {
				return fmt.Errorf("failed to set goal target: %w", err)
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Savings goal set to %s", cli.FormatAmount(target))))
			return nil
		},
	}
}

func transferGoalCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "transfer AMOUNT",
		Short: "Move money into the savings goal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			amount, err := parseAmount(args[0])
			if err != nil {
				return err
			}

			sess, err := openSession(ctx)
			if err != nil {
				return err
			}
			defer sess.Close()

			if err := sess.store.TransferToGoal(ctx, amount, sess.today); err != nil {
				return fmt.Errorf("failed to transfer to goal: %w", err)
			}

			goal, err := sess.store.GetGoal(ctx)
			if err != nil {
				return fmt.Errorf("failed to get savings goal: %w", err)
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Moved %s into savings, %s saved so far",
				cli.FormatAmount(amount), cli.FormatAmount(goal.Saved))))
			return nil
		},
	}
}
