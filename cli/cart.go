package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"shopcart/domain"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

// cartView is the printed form of a cart.
type cartView struct {
	ID         uuid.UUID          `json:"id"`
	CustomerID string             `json:"customer_id"`
	Items      map[domain.SKU]int `json:"items"`
}

func viewOf(c *domain.Cart) cartView {
	return cartView{ID: c.ID(), CustomerID: c.CustomerID().String(), Items: c.Items()}
}

func parseCartID(s string) (uuid.UUID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid cart id %q: %w", s, err)
	}
	return id, nil
}

// cartLine builds add and update, which share arguments and preconditions.
func cartLine(use, short, event string, apply func(c *domain.Cart, sku string, quantity int) error) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <cart-id> <sku> <quantity>",
		Short: short,
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseCartID(args[0])
			if err != nil {
				return err
			}
			q, err := parseQuantityArg(args[2])
			if err != nil {
				return err
			}
			var view cartView
			start := time.Now()
			err = cartStore.Update(context.Background(), id, func(c *domain.Cart) error {
				if err := apply(c, args[1], q); err != nil {
					return err
				}
				view = viewOf(c)
				return nil
			})
			if err != nil {
				slog.Error(event+" failed", "cart_id", id, "sku", args[1], "error", err)
				return err
			}
			slog.Info(event,
				"cart_id", id,
				"sku", args[1],
				"quantity", q,
				"duration_ms", time.Since(start).Milliseconds(),
			)
			printJSON(view)
			return nil
		},
	}
}

func init() {
	cartCmd := &cobra.Command{
		Use:   "cart",
		Short: "Open and fill shopping carts",
	}

	// new
	var customer string
	newCmd := &cobra.Command{
		Use:   "new --customer <id>",
		Short: "Open an empty cart for a customer",
		RunE: func(cmd *cobra.Command, args []string) error {
			if customer == "" {
				return errors.New("--customer required")
			}
			id, err := cartStore.Create(context.Background(), customer)
			if err != nil {
				slog.Error("cart open failed", "customer_id", customer, "error", err)
				return err
			}
			slog.Info("cart opened", "cart_id", id, "customer_id", customer)
			fmt.Println(id.String())
			return nil
		},
	}
	newCmd.Flags().StringVar(&customer, "customer", "", "customer id")
	cartCmd.AddCommand(newCmd)

	cartCmd.AddCommand(
		cartLine("add", "Add units of a sku to a cart", "cart items added", func(c *domain.Cart, sku string, q int) error {
			return c.AddItems(sku, q, catalogue, inventory)
		}),
		cartLine("update", "Set the quantity of a sku in a cart", "cart quantity updated", func(c *domain.Cart, sku string, q int) error {
			return c.UpdateItemQuantity(sku, q, catalogue, inventory)
		}),
	)

	// remove
	removeCmd := &cobra.Command{
		Use:   "remove <cart-id> <sku>",
		Short: "Remove a sku from a cart",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseCartID(args[0])
			if err != nil {
				return err
			}
			var view cartView
			err = cartStore.Update(context.Background(), id, func(c *domain.Cart) error {
				if err := c.RemoveItem(args[1]); err != nil {
					return err
				}
				view = viewOf(c)
				return nil
			})
			if err != nil {
				return err
			}
			slog.Info("cart item removed", "cart_id", id, "sku", args[1])
			printJSON(view)
			return nil
		},
	}
	cartCmd.AddCommand(removeCmd)

	// show
	showCmd := &cobra.Command{
		Use:   "show <cart-id>",
		Short: "Show the contents of a cart",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseCartID(args[0])
			if err != nil {
				return err
			}
			var view cartView
			err = cartStore.View(context.Background(), id, func(c *domain.Cart) error {
				view = viewOf(c)
				return nil
			})
			if err != nil {
				if domain.IsCartNotFoundError(err) {
					fmt.Fprintln(os.Stderr, err)
					return nil
				}
				return err
			}
			printJSON(view)
			return nil
		},
	}
	cartCmd.AddCommand(showCmd)

	// total
	totalCmd := &cobra.Command{
		Use:   "total <cart-id>",
		Short: "Price a cart against the catalogue",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseCartID(args[0])
			if err != nil {
				return err
			}
			return cartStore.View(context.Background(), id, func(c *domain.Cart) error {
				total, err := c.TotalCost(catalogue)
				if err != nil {
					return err
				}
				fmt.Println(total.StringFixed(2))
				return nil
			})
		},
	}
	cartCmd.AddCommand(totalCmd)

	// list
	var lCustomer string
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List open carts",
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := cartStore.List(context.Background(), domain.CartFilter{CustomerID: lCustomer})
			if err != nil {
				return err
			}
			for _, s := range out {
				fmt.Printf("%s | %s | %d\n", s.ID, s.CustomerID, s.Lines)
			}
			return nil
		},
	}
	listCmd.Flags().StringVar(&lCustomer, "customer", "", "customer id")
	cartCmd.AddCommand(listCmd)

	// drop
	dropCmd := &cobra.Command{
		Use:   "drop <cart-id>",
		Short: "Discard a cart",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseCartID(args[0])
			if err != nil {
				return err
			}
			if err := cartStore.Delete(context.Background(), id); err != nil {
				return err
			}
			slog.Info("cart dropped", "cart_id", id)
			fmt.Println("dropped")
			return nil
		},
	}
	cartCmd.AddCommand(dropCmd)

	rootCmd.AddCommand(cartCmd)
}
