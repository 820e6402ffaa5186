package cli

import (
	"fmt"
	"log/slog"
	"os"
	"shopcart/domain"

	"github.com/spf13/cobra"
)

func init() {
	catalogueCmd := &cobra.Command{
		Use:     "catalogue",
		Aliases: []string{"catalog"},
		Short:   "Inspect the catalogue",
	}

	// list
	var lOutput string
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List catalogue items",
		RunE: func(cmd *cobra.Command, args []string) error {
			items := catalogue.Items()
			if lOutput == "json" {
				printJSON(items)
				return nil
			}
			for _, it := range items {
				fmt.Printf("%s | %s | %s\n", it.SKU, it.Price.StringFixed(2), it.Description)
			}
			return nil
		},
	}
	listCmd.Flags().StringVar(&lOutput, "output", "", "output format")
	catalogueCmd.AddCommand(listCmd)

	// show
	showCmd := &cobra.Command{
		Use:   "show <sku>",
		Short: "Show one catalogue item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			it, err := catalogue.Lookup(args[0])
			if err != nil {
				if domain.IsRangeError(err) {
					fmt.Fprintln(os.Stderr, err)
					return nil
				}
				return err
			}
			printJSON(it)
			return nil
		},
	}
	catalogueCmd.AddCommand(showCmd)

	// remove
	removeCmd := &cobra.Command{
		Use:   "remove <sku>",
		Short: "Remove an item from the catalogue",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := catalogue.Remove(args[0]); err != nil {
				return err
			}
			slog.Info("catalogue item removed", "sku", args[0])
			fmt.Println("removed")
			return nil
		},
	}
	catalogueCmd.AddCommand(removeCmd)

	rootCmd.AddCommand(catalogueCmd)
}
