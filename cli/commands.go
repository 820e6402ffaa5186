// Package cli provides the Cobra-based CLI for shopcart.
package cli

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"shopcart/domain"
	"shopcart/store"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

var (
	rootCmd = &cobra.Command{
		Use:   "shopcart",
		Short: "Shopping carts against a catalogue and an inventory",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// tests and the shell reuse already loaded state
			if cartStore != nil {
				return nil
			}

			if cfg := viper.GetString("config"); cfg != "" {
				viper.SetConfigFile(cfg)
				if err := viper.ReadInConfig(); err != nil {
					return err
				}
			}

			lvlStr := strings.ToLower(viper.GetString("log-level"))
			lvl := slog.LevelInfo
			switch lvlStr {
			case "debug":
				lvl = slog.LevelDebug
			case "warn", "warning":
				lvl = slog.LevelWarn
			case "error":
				lvl = slog.LevelError
			}
			slog.SetDefault(slog.New(
				slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}),
			))

			src, err := store.NewSeedSource(
				viper.GetString("seed"),
				viper.GetString("seed-file"),
			)
			if err != nil {
				return err
			}
			if err := loadSeed(context.Background(), src); err != nil {
				return err
			}
			cartStore = store.NewInMemoryCartStore()
			return nil
		},
	}

	catalogue *domain.Catalogue
	inventory *domain.Inventory
	cartStore domain.CartStore
)

// loadSeed replaces the session catalogue and inventory. Open carts are kept
// and may refer to skus the new catalogue no longer has.
func loadSeed(ctx context.Context, src store.SeedSource) error {
	start := time.Now()
	seed, err := src.Load(ctx)
	if err != nil {
		return err
	}
	cat, inv, err := seed.Build()
	if err != nil {
		return err
	}
	catalogue, inventory = cat, inv
	slog.Debug("seed loaded",
		"items", cat.Len(),
		"stocked", inv.Len(),
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return nil
}

// execLine runs one shell command and puts every flag back to its default,
// so a flag given on one line does not leak into the next.
func execLine(args []string) error {
	defer resetFlags(rootCmd)
	rootCmd.SetArgs(args)
	defer rootCmd.SetArgs(nil)
	return rootCmd.Execute()
}

func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		if !f.Changed {
			return
		}
		if sv, ok := f.Value.(pflag.SliceValue); ok {
			_ = sv.Replace(nil)
		} else {
			_ = f.Value.Set(f.DefValue)
		}
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

func printJSON(v any) {
	b, _ := json.MarshalIndent(v, "", "  ")
	fmt.Println(string(b))
}

func init() {
	// shell
	shellCmd := &cobra.Command{
		Use:   "shell",
		Short: "Interactive shell mode",
		RunE: func(cmd *cobra.Command, args []string) error {
			r := bufio.NewReader(os.Stdin)
			for {
				fmt.Print("shopcart> ")
				line, err := r.ReadString('\n')
				if err != nil {
					return nil
				}
				line = strings.TrimSpace(line)
				if line == "" {
					continue
				}
				if line == "exit" || line == "quit" {
					return nil
				}
				if err := execLine(strings.Fields(line)); err != nil {
					fmt.Fprintln(os.Stderr, err)
				}
			}
		},
	}
	rootCmd.AddCommand(shellCmd)

	rootCmd.PersistentFlags().String("seed", "memory", "seed source: memory|file")
	rootCmd.PersistentFlags().String("seed-file", "data/seed.json", "seed file path (.json, .ndjson, .yaml)")
	rootCmd.PersistentFlags().String("config", "", "config file")
	rootCmd.PersistentFlags().String("log-level", "info", "log level")

	viper.BindPFlag("seed", rootCmd.PersistentFlags().Lookup("seed"))
	viper.BindPFlag("seed-file", rootCmd.PersistentFlags().Lookup("seed-file"))
	viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
	viper.BindPFlag("log-level", rootCmd.PersistentFlags().Lookup("log-level"))
	viper.SetEnvPrefix("SHOPCART")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	// import
	var importFile string
	importCmd := &cobra.Command{
		Use:   "import --file <file>",
		Short: "Replace the catalogue and inventory from a seed file",
		RunE: func(cmd *cobra.Command, args []string) error {
			if importFile == "" {
				return errors.New("--file required")
			}
			src, err := store.NewFileSeedSource(importFile)
			if err != nil {
				return err
			}
			if err := loadSeed(context.Background(), src); err != nil {
				slog.Error("import failed", "file", importFile, "error", err)
				return err
			}
			slog.Info("seed imported", "file", importFile, "items", catalogue.Len(), "stocked", inventory.Len())
			return nil
		},
	}
	importCmd.Flags().StringVar(&importFile, "file", "", "input file")
	rootCmd.AddCommand(importCmd)
}

func Execute() error {
	return rootCmd.Execute()
}
