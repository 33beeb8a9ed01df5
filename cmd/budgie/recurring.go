package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/budgie-cli/budgie/internal/cli"
	"github.com/budgie-cli/budgie/internal/model"
)

func recurringCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "recurring",
		Short: "Manage recurring payment templates",
		Long: `Manage recurring payment templates. A template fires once a month on its
due day (clamped to the month's length) and is applied automatically at the
start of the next session on or after that day.`,
	}

	cmd.AddCommand(listTemplatesCmd())
	cmd.AddCommand(addTemplateCmd())
	cmd.AddCommand(editTemplateCmd())
	cmd.AddCommand(deleteTemplateCmd())

	return cmd
}

func listTemplatesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List recurring templates",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			sess, err := openSession(ctx)
			if err != nil {
				return err
			}
			defer sess.Close()

			templates, err := sess.store.GetTemplates(ctx)
			if err != nil {
				return fmt.Errorf("failed to get templates: %w", err)
			}

			if len(templates) == 0 {
				fmt.Println(cli.InfoStyle.Render("No recurring templates. Use 'budgie recurring add' to create one."))
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer func() { _ = w.Flush() }()

			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
				cli.TableHeaderStyle.Render("ID"),
				cli.TableHeaderStyle.Render("Name"),
				cli.TableHeaderStyle.Render("Amount"),
				cli.TableHeaderStyle.Render("Category"),
				cli.TableHeaderStyle.Render("Due day"))
			for _, tpl := range templates {
				due := tpl.DueDateIn(sess.today.Year(), sess.today.Month())
				dueStr := strconv.Itoa(tpl.DueDay)
				if due.Day() != tpl.DueDay {
					dueStr += cli.SubtleStyle.Render(fmt.Sprintf(" (%d this month)", due.Day()))
				}
				fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n",
					tpl.ID, tpl.Name, cli.ExpenseStyle.Render(cli.FormatAmount(tpl.Amount)),
					tpl.Category, dueStr)
			}
			return nil
		},
	}
}

func addTemplateCmd() *cobra.Command {
	var (
		amountStr string
		category  string
		dueDay    int
	)

	cmd := &cobra.Command{
		Use:   "add NAME",
		Short: "Add a recurring template",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			amount, err := parseAmount(amountStr)
			if err != nil {
				return err
			}

			sess, err := openSession(ctx)
			if err != nil {
				return err
			}
			defer sess.Close()

			tpl := model.RecurringTemplate{
				Name:     strings.TrimSpace(args[0]),
				Amount:   amount,
				Category: strings.TrimSpace(category),
				DueDay:   dueDay,
			}
			if err := sess.store.CreateTemplate(ctx, &tpl); err != nil {
				return fmt.Errorf("failed to create template: %w", err)
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Template %q added, due on day %d (id %d)",
				tpl.Name, tpl.DueDay, tpl.ID)))
			return nil
		},
	}

	cmd.Flags().StringVarP(&amountStr, "amount", "a", "", "payment amount (required)")
	cmd.Flags().StringVarP(&category, "category", "c", "", "category name (required)")
	cmd.Flags().IntVarP(&dueDay, "day", "d", 1, "day of month the payment is due (1-31)")
	_ = cmd.MarkFlagRequired("amount")
	_ = cmd.MarkFlagRequired("category")

	return cmd
}

func editTemplateCmd() *cobra.Command {
	var (
		name      string
		amountStr string
		category  string
		dueDay    int
	)

	cmd := &cobra.Command{
		Use:   "edit ID",
		Short: "Edit a recurring template",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid template ID %q: %w", args[0], err)
			}

			sess, err := openSession(ctx)
			if err != nil {
				return err
			}
			defer sess.Close()

			tpl, err := sess.store.GetTemplateByID(ctx, id)
			if err != nil {
				return err
			}

			if cmd.Flags().Changed("name") {
				tpl.Name = strings.TrimSpace(name)
			}
			if cmd.Flags().Changed("amount") {
				if tpl.Amount, err = parseAmount(amountStr); err != nil {
					return err
				}
			}
			if cmd.Flags().Changed("category") {
				tpl.Category = strings.TrimSpace(category)
			}
			if cmd.Flags().Changed("day") {
				tpl.DueDay = dueDay
			}

			if err := sess.store.UpdateTemplate(ctx, tpl); err != nil {
				return fmt.Errorf("failed to update template: %w", err)
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Template %d updated", id)))
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "new template name")
	cmd.Flags().StringVarP(&amountStr, "amount", "a", "", "new payment amount")
	cmd.Flags().StringVarP(&category, "category", "c", "", "new category")
	cmd.Flags().IntVarP(&dueDay, "day", "d", 0, "new due day (1-31)")

	return cmd
}

func deleteTemplateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete ID",
		Short: "Delete a recurring template",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid template ID %q: %w", args[0], err)
			}

			sess, err := openSession(ctx)
			if err != nil {
				return err
			}
			defer sess.Close()

			if err := sess.store.DeleteTemplate(ctx, id); err != nil {
				return fmt.Errorf("failed to delete template: %w", err)
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Deleted template %d", id)))
			return nil
		},
	}
}
