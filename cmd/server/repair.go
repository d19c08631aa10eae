package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-narrative/internal/config"
	"github.com/KirkDiggler/rpg-narrative/internal/redis"
	"github.com/KirkDiggler/rpg-narrative/internal/repositories/progress"
)

var (
	repairRedisAddr string
	repairFix       bool
)

var repairCmd = &cobra.Command{
	Use:   "repair-progress",
	Short: "Find and reset progress records in Redis that no longer decode",
	Long: `Scan every progress:player:* key in Redis and report the ones whose
line, location or timestamp fields cannot be read. With --fix a corrupt
record restarts at the first line (the hero name is kept) and keys that are
not hashes are deleted.

  rpg-narrative repair-progress --redis-addr localhost:6379 --fix`,
	RunE: runRepair,
}

func init() {
	repairCmd.Flags().StringVar(&repairRedisAddr, "redis-addr", "", "Redis address (overrides NARRATIVE_REDIS_ADDR)")
	repairCmd.Flags().BoolVar(&repairFix, "fix", false, "rewrite corrupt records instead of only listing them")
}

func runRepair(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if repairRedisAddr != "" {
		cfg.RedisAddr = repairRedisAddr
	}

	client, err := redis.NewClient(cfg.RedisAddr, cfg.RedisOptions())
	if err != nil {
		return fmt.Errorf("failed to create redis client: %w", err)
	}
	defer func() {
		_ = client.Close() // nolint:errcheck // safe to ignore in cleanup
	}()

	if err := client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("failed to connect to redis at %s: %w", cfg.RedisAddr, err)
	}

	out, err := progress.RepairRedis(ctx, &progress.RepairInput{Client: client, Fix: repairFix})
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "Checked %d progress records, %d corrupt\n", out.Checked, len(out.Corrupt))
	for _, id := range out.Corrupt {
		fmt.Fprintf(w, "  %s\n", id)
	}
	if repairFix {
		fmt.Fprintf(w, "Repaired %d records\n", len(out.Repaired))
	} else if len(out.Corrupt) > 0 {
		fmt.Fprintln(w, "Run again with --fix to reset them")
	}
	return nil
}
