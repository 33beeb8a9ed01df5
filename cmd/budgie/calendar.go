package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/budgie-cli/budgie/internal/calendar"
	"github.com/budgie-cli/budgie/internal/cli"
	"github.com/budgie-cli/budgie/internal/service"
)

func calendarCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "calendar",
		Short: "Show this week's due dates and large expenses",
		Long: `Show the Monday-to-Sunday week containing today, annotated with the
recurring templates due each day and any major expenses already recorded.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			sess, err := openSession(ctx)
			if err != nil {
				return err
			}
			defer sess.Close()

			templates, err := sess.store.GetTemplates(ctx)
			if err != nil {
				return fmt.Errorf("failed to load templates: %w", err)
			}

			weekStart := calendar.WeekStart(sess.today)
			weekEnd := weekStart.AddDate(0, 0, 6)
			transactions, err := sess.store.GetTransactions(ctx, service.TransactionFilter{
				StartDate: &weekStart,
				EndDate:   &weekEnd,
			})
			if err != nil {
				return fmt.Errorf("failed to load transactions: %w", err)
			}

			view := calendar.BuildWeekView(sess.today, templates, transactions)

			fmt.Println(cli.TitleStyle.Render(fmt.Sprintf("Week of %s", view.Start.Format("02 Jan 2006"))))
			for _, day := range view.Days {
				label := day.Date.Format("Mon 02 Jan")
				if day.IsToday {
					label = cli.TodayStyle.Render(label + " (today)")
				}

				var notes []string
				for _, name := range day.DueTemplates {
					notes = append(notes, cli.WarningStyle.Render(cli.DueIcon+" due: "+name))
				}
				for _, desc := range day.MajorExpenses {
					notes = append(notes, cli.ExpenseStyle.Render("major expense: "+desc))
				}

				if len(notes) == 0 {
					fmt.Printf("  %s\n", label)
					continue
				}
				fmt.Printf("  %s  %s\n", label, strings.Join(notes, ", "))
			}
			return nil
		},
	}
}
