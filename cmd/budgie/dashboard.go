package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/budgie-cli/budgie/internal/calendar"
	"github.com/budgie-cli/budgie/internal/cli"
	"github.com/budgie-cli/budgie/internal/report"
	"github.com/budgie-cli/budgie/internal/service"
)

// runDashboard renders the all-time overview shown when budgie runs without
// a subcommand.
func runDashboard(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	sess, err := openSession(ctx)
	if err != nil {
		return err
	}
	defer sess.Close()

	transactions, err := sess.store.GetTransactions(ctx, service.TransactionFilter{})
	if err != nil {
		return fmt.Errorf("failed to load transactions: %w", err)
	}

	earliest := sess.today
	if n := len(transactions); n > 0 {
		// Transactions come back newest first.
		earliest = transactions[n-1].Date
	}
	summary := report.Summarize(transactions, earliest, sess.today)

	fmt.Println(cli.TitleStyle.Render("budgie — " + sess.today.Format("Monday, 02 Jan 2006")))

	fmt.Println(cli.TableHeaderStyle.Render("Financial overview (all time)"))
	fmt.Printf("  Total income:  %s\n", cli.IncomeStyle.Render(cli.FormatAmount(summary.TotalIncome)))
	fmt.Printf("  Total expense: %s\n", cli.ExpenseStyle.Render(cli.FormatAmount(summary.TotalExpense)))
	fmt.Printf("  Net balance:   %s\n", cli.FormatNet(summary.Net()))

	goal, err := sess.store.GetGoal(ctx)
	if err != nil {
		return fmt.Errorf("failed to get savings goal: %w", err)
	}
	fmt.Println()
	if goal.IsSet() {
		ratio := goal.Progress()
		fmt.Println(cli.TableHeaderStyle.Render("Savings goal"))
		fmt.Printf("  %s / %s  %s %3.0f%%\n",
			cli.FormatAmount(goal.Saved), cli.FormatAmount(goal.Target),
			cli.ProgressBar(ratio, 12), ratio*100)
	} else {
		fmt.Println(cli.SubtleStyle.Render("No savings goal set — 'budgie goal set TARGET'"))
	}

	templates, err := sess.store.GetTemplates(ctx)
	if err != nil {
		return fmt.Errorf("failed to load templates: %w", err)
	}
	view := calendar.BuildWeekView(sess.today, templates, transactions)
	dueCount := 0
	for _, day := range view.Days {
		dueCount += len(day.DueTemplates)
	}
	fmt.Println()
	if dueCount > 0 {
		fmt.Println(cli.WarningStyle.Render(fmt.Sprintf("%d recurring payment(s) fall in this week — see 'budgie calendar'", dueCount)))
	} else {
		fmt.Println(cli.SubtleStyle.Render("No recurring payments due this week"))
	}

	return nil
}
