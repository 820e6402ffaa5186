package cli

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"shopcart/domain"
	"sort"

	"github.com/spf13/cobra"
)

// parseQuantityArg applies the untyped quantity rules to a command-line word,
// so "10.4" and "10.0" are type errors and "0" is a range error.
func parseQuantityArg(s string) (int, error) {
	q, err := domain.ParseQuantity(json.Number(s))
	if err != nil {
		return 0, err
	}
	return q.Value(), nil
}

type stockLine struct {
	SKU   domain.SKU `json:"sku"`
	Stock int        `json:"stock"`
}

func stockLines() []stockLine {
	stock := inventory.Stock()
	out := make([]stockLine, 0, len(stock))
	for s, n := range stock {
		out = append(out, stockLine{SKU: s, Stock: n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].SKU.Code() < out[j].SKU.Code() })
	return out
}

func stockMutation(use, short, event string, apply func(sku string, quantity int) error) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <sku> <quantity>",
		Short: short,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			q, err := parseQuantityArg(args[1])
			if err != nil {
				return err
			}
			if err := apply(args[0], q); err != nil {
				slog.Error(event+" failed", "sku", args[0], "quantity", q, "error", err)
				return err
			}
			slog.Info(event, "sku", args[0], "quantity", q)
			fmt.Printf("%s | %d\n", args[0], inventory.Stock()[domain.MustSKU(args[0])])
			return nil
		},
	}
}

func init() {
	inventoryCmd := &cobra.Command{
		Use:   "inventory",
		Short: "Inspect and adjust stock",
	}

	// list
	var lOutput string
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List stock levels",
		RunE: func(cmd *cobra.Command, args []string) error {
			lines := stockLines()
			if lOutput == "json" {
				printJSON(lines)
				return nil
			}
			for _, l := range lines {
				fmt.Printf("%s | %d\n", l.SKU, l.Stock)
			}
			return nil
		},
	}
	listCmd.Flags().StringVar(&lOutput, "output", "", "output format")
	inventoryCmd.AddCommand(listCmd)

	inventoryCmd.AddCommand(
		stockMutation("add", "Add stock", "stock added", func(sku string, q int) error {
			return inventory.AddItem(sku, q)
		}),
		stockMutation("subtract", "Subtract stock", "stock subtracted", func(sku string, q int) error {
			return inventory.SubtractItem(sku, q)
		}),
		stockMutation("set", "Replace stock", "stock set", func(sku string, q int) error {
			return inventory.SetItemStock(sku, q)
		}),
	)

	// remove
	removeCmd := &cobra.Command{
		Use:   "remove <sku>",
		Short: "Remove a sku from the inventory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := inventory.RemoveItem(args[0]); err != nil {
				return err
			}
			slog.Info("stock removed", "sku", args[0])
			fmt.Println("removed")
			return nil
		},
	}
	inventoryCmd.AddCommand(removeCmd)

	// check
	var cQuantity string
	checkCmd := &cobra.Command{
		Use:   "check <sku>",
		Short: "Check that a quantity of a sku is in stock",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			q, err := parseQuantityArg(cQuantity)
			if err != nil {
				return err
			}
			if _, err := inventory.ValidateInStock(args[0], q); err != nil {
				return err
			}
			n, err := inventory.Lookup(args[0])
			if err != nil {
				return err
			}
			fmt.Printf("%s | %d\n", args[0], n)
			return nil
		},
	}
	checkCmd.Flags().StringVar(&cQuantity, "quantity", "1", "quantity required")
	inventoryCmd.AddCommand(checkCmd)

	rootCmd.AddCommand(inventoryCmd)
}
