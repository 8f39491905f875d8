// Command cli is a thin operational console over the ledger core: open
// accounts, move funds and inspect balances and history from a terminal.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"

	"github.com/amitdube/netbank/infra/initializer"
	"github.com/amitdube/netbank/pkg/domain/account"
	"github.com/amitdube/netbank/pkg/dto"
)

func usage() {
	fmt.Println("Usage: cli <command> [arguments]")
	fmt.Println("Commands:")
	fmt.Println("  open <number> <customer_id> <kind>")
	fmt.Println("  deposit <number> <amount>")
	fmt.Println("  withdraw <number> <amount>")
	fmt.Println("  transfer <from_number> <to_number> <amount>")
	fmt.Println("  balance <number>")
	fmt.Println("  history <customer_id>")
	fmt.Println("  status <number> <active|frozen|deactivated>")
	fmt.Println("  check-limit <number> <amount>")
}

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	deps, err := initializer.Initialize()
	if err != nil {
		fmt.Println("Failed to initialize:", err)
		os.Exit(1)
	}
	defer deps.Close() //nolint:errcheck

	if err := run(deps, os.Args[1], os.Args[2:]); err != nil {
		fmt.Println("Error:", err)
		os.Exit(1)
	}
}

func run(deps *initializer.Deps, cmd string, args []string) error {
	ctx := context.Background()
	svc := deps.Ledger

	switch cmd {
	case "open":
		if len(args) < 3 {
			return fmt.Errorf("usage: open <number> <customer_id> <kind>")
		}
		customerID, err := uuid.Parse(args[1])
		if err != nil {
			return fmt.Errorf("invalid customer id: %w", err)
		}
		view, err := svc.OpenAccount(ctx, dto.AccountCreate{
			Number:     args[0],
			CustomerID: customerID,
			Kind:       args[2],
		})
		if err != nil {
			return err
		}
		fmt.Printf("Account opened: number=%s balance=%s %s status=%s\n",
			view.Number, view.Balance, view.Currency, view.Status)

	case "deposit":
		if len(args) < 2 {
			return fmt.Errorf("usage: deposit <number> <amount>")
		}
		result, err := svc.Deposit(ctx, dto.DepositCommand{
			AccountNumber: args[0],
			Amount:        args[1],
			Channel:       string(account.ChannelDeposit),
		})
		if err != nil {
			return err
		}
		fmt.Printf("Deposited. operation=%s new balance=%s\n", result.OperationID, result.NewBalance)

	case "withdraw":
		if len(args) < 2 {
			return fmt.Errorf("usage: withdraw <number> <amount>")
		}
		result, err := svc.Withdraw(ctx, dto.WithdrawCommand{
			AccountNumber: args[0],
			Amount:        args[1],
			Channel:       string(account.ChannelWithdrawal),
		})
		if err != nil {
			return err
		}
		fmt.Printf("Withdrawn. operation=%s new balance=%s\n", result.OperationID, result.NewBalance)

	case "transfer":
		if len(args) < 3 {
			return fmt.Errorf("usage: transfer <from_number> <to_number> <amount>")
		}
		result, err := svc.Transfer(ctx, dto.TransferCommand{
			FromAccountNumber: args[0],
			ToAccountNumber:   args[1],
			Amount:            args[2],
			Channel:           string(account.ChannelTransfer),
		})
		if err != nil {
			return err
		}
		fmt.Printf("Transferred. operation=%s source balance=%s\n", result.OperationID, result.NewBalance)

	case "balance":
		if len(args) < 1 {
			return fmt.Errorf("usage: balance <number>")
		}
		balance, err := svc.GetBalance(ctx, args[0])
		if err != nil {
			return err
		}
		fmt.Printf("Balance: %s\n", balance)

	case "history":
		if len(args) < 1 {
			return fmt.Errorf("usage: history <customer_id>")
		}
		customerID, err := uuid.Parse(args[0])
		if err != nil {
			return fmt.Errorf("invalid customer id: %w", err)
		}
		rows, err := svc.History(ctx, customerID, dto.HistoryFilter{})
		if err != nil {
			return err
		}
		for _, row := range rows {
			fmt.Printf("%s  %-6s %10s %s  channel=%s operation=%s\n",
				row.CreatedAt.Format("2006-01-02 15:04:05"),
				row.Kind, row.Amount, row.Currency, row.Channel, row.OperationID)
		}
		fmt.Printf("%d transaction(s)\n", len(rows))

	case "status":
		if len(args) < 2 {
			return fmt.Errorf("usage: status <number> <active|frozen|deactivated>")
		}
		if err := svc.SetStatus(ctx, args[0], account.Status(args[1])); err != nil {
			return err
		}
		fmt.Printf("Account %s is now %s\n", args[0], args[1])

	case "check-limit":
		if len(args) < 2 {
			return fmt.Errorf("usage: check-limit <number> <amount>")
		}
		if err := svc.CheckLimit(ctx, args[0], args[1]); err != nil {
			return err
		}
		fmt.Println("Within today's limits (advisory; re-checked at execution)")

	default:
		usage()
		return fmt.Errorf("unknown command %q", cmd)
	}
	return nil
}
