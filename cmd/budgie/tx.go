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
	"github.com/budgie-cli/budgie/internal/service"
)

func txCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tx",
		Short: "Manage transactions",
		Long:  `Add, list, and delete income and expense transactions.`,
	}

	cmd.AddCommand(addTxCmd())
	cmd.AddCommand(listTxCmd())
	cmd.AddCommand(deleteTxCmd())

	return cmd
}

func addTxCmd() *cobra.Command {
	var (
		income      bool
		category    string
		description string
		dateStr     string
	)

	cmd := &cobra.Command{
		Use:   "add AMOUNT",
		Short: "Record a transaction",
		Long: `Record a new transaction. Amounts are always positive; use --income for
money coming in, otherwise the transaction is an expense.`,
		Args: cobra.ExactArgs(1),
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

			date := sess.today
			if dateStr != "" {
				if date, err = parseUserDate(dateStr); err != nil {
					return err
				}
			}

			kind := model.KindExpense
			if income {
				kind = model.KindIncome
			}

			txn := model.Transaction{
				Kind:        kind,
				Amount:      amount,
				Category:    strings.TrimSpace(category),
				Description: strings.TrimSpace(description),
				Date:        date,
			}
			if err := sess.store.SaveTransaction(ctx, &txn); err != nil {
				return fmt.Errorf("failed to save transaction: %w", err)
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Added %s under %s (id %d)",
				cli.FormatSigned(txn.Amount, txn.Kind), txn.Category, txn.ID)))
			return nil
		},
	}

	cmd.Flags().BoolVar(&income, "income", false, "record as income instead of expense")
	cmd.Flags().StringVarP(&category, "category", "c", "", "category name (default: Uncategorized)")
	cmd.Flags().StringVarP(&description, "description", "m", "", "optional description")
	cmd.Flags().StringVar(&dateStr, "date", "", "transaction date as DD-MM-YYYY (default: today)")

	return cmd
}

func listTxCmd() *cobra.Command {
	var (
		category string
		limit    int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recent transactions",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			sess, err := openSession(ctx)
			if err != nil {
				return err
			}
			defer sess.Close()

			transactions, err := sess.store.GetTransactions(ctx, service.TransactionFilter{
				Category: strings.TrimSpace(category),
				Limit:    limit,
			})
			if err != nil {
				return fmt.Errorf("failed to list transactions: %w", err)
			}

			if len(transactions) == 0 {
				fmt.Println(cli.InfoStyle.Render("No transactions recorded yet. Use 'budgie tx add' to create one."))
				return nil
			}

			renderTransactionTable(transactions)
			return nil
		},
	}

	cmd.Flags().StringVarP(&category, "category", "c", "", "only show this category")
	cmd.Flags().IntVarP(&limit, "limit", "n", 15, "maximum number of transactions to show")

	return cmd
}

func deleteTxCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete ID",
		Short: "Delete a transaction by ID",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid transaction ID %q: %w", args[0], err)
			}

			sess, err := openSession(ctx)
			if err != nil {
				return err
			}
			defer sess.Close()

			if err := sess.store.DeleteTransaction(ctx, id); err != nil {
				return fmt.Errorf("failed to delete transaction: %w", err)
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Deleted transaction %d", id)))
			return nil
		},
	}
}

func renderTransactionTable(transactions []model.Transaction) {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	defer func() { _ = w.Flush() }()

	fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
		cli.TableHeaderStyle.Render("ID"),
		cli.TableHeaderStyle.Render("Date"),
		cli.TableHeaderStyle.Render("Amount"),
		cli.TableHeaderStyle.Render("Category"),
		cli.TableHeaderStyle.Render("Description"))

	for _, txn := range transactions {
		desc := txn.Description
		if desc == "" {
			desc = cli.SubtleStyle.Render("(none)")
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n",
			txn.ID,
			txn.Date.Format("02-01-2006"),
			cli.FormatSigned(txn.Amount, txn.Kind),
			txn.Category,
			desc)
	}
}
