package main

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/budgie-cli/budgie/internal/cli"
	"github.com/budgie-cli/budgie/internal/report"
	"github.com/budgie-cli/budgie/internal/service"
)

func reportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Summaries of income and spending",
	}

	cmd.AddCommand(reportWindowCmd("week", "Summary for the current week (from Monday)", report.WeekStart))
	cmd.AddCommand(reportWindowCmd("month", "Summary for the current month", report.MonthStart))

	return cmd
}

func reportWindowCmd(name, short string, windowStart func(time.Time) time.Time) *cobra.Command {
	return &cobra.Command{
		Use:   name,
		Short: short,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			sess, err := openSession(ctx)
			if err != nil {
				return err
			}
			defer sess.Close()

			start := windowStart(sess.today)
			transactions, err := sess.store.GetTransactions(ctx, service.TransactionFilter{
				StartDate: &start,
				EndDate:   &sess.today,
			})
			if err != nil {
				return fmt.Errorf("failed to load transactions: %w", err)
			}

			summary := report.Summarize(transactions, start, sess.today)
			if len(summary.ByCategory) == 0 {
				fmt.Println(cli.InfoStyle.Render(fmt.Sprintf("No transactions recorded this %s.", name)))
				return nil
			}

			fmt.Println(cli.TitleStyle.Render(fmt.Sprintf("Summary: current %s (from %s)",
				name, start.Format("02-01-2006"))))

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
				cli.TableHeaderStyle.Render("Category"),
				cli.TableHeaderStyle.Render("Income"),
				cli.TableHeaderStyle.Render("Expense"),
				cli.TableHeaderStyle.Render("Net"))
			for _, cat := range summary.ByCategory {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
					cat.Category,
					cli.IncomeStyle.Render(cli.FormatAmount(cat.Income)),
					cli.ExpenseStyle.Render(cli.FormatAmount(cat.Expense)),
					cli.FormatNet(cat.Net()))
			}
			_ = w.Flush()

			fmt.Printf("\nTotal income:  %s\n", cli.IncomeStyle.Render(cli.FormatAmount(summary.TotalIncome)))
			fmt.Printf("Total expense: %s\n", cli.ExpenseStyle.Render(cli.FormatAmount(summary.TotalExpense)))
			fmt.Printf("Net flow:      %s\n", cli.FormatNet(summary.Net()))
			return nil
		},
	}
}
