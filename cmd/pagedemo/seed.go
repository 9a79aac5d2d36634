package main

import (
	"fmt"
	"time"

	"github.com/Sternrassler/go-webkit/pkg/logging"
	"github.com/Sternrassler/go-webkit/pkg/store"
	"github.com/spf13/cobra"
)

const seedBatchSize = 100

func newSeedCmd(a *app) *cobra.Command {
	var (
		count int
		reset bool
	)

	cmd := &cobra.Command{
		Use:   "seed",
		Args:  cobra.NoArgs,
		Short: "Push sample items to the demo list",
		RunE: func(cmd *cobra.Command, args []string) error {
			if count < 0 {
				return fmt.Errorf("--count must be >= 0 (got %d)", count)
			}

			redisClient := a.redisClient()
			defer redisClient.Close()

			logger := logging.NewLogger("seed")
			list := store.NewList[Item](redisClient, a.cfg.Redis.ListKey())
			ctx := cmd.Context()

			if reset {
				if err := list.Delete(ctx); err != nil {
					return err
				}
			}

			offset, err := list.Len(ctx)
			if err != nil {
				return err
			}

			for _, batch := range sampleItems(offset, count, time.Now()) {
				if err := list.Push(ctx, batch...); err != nil {
					return err
				}
			}

			logger.Info().
				Str("key", list.Key().String()).
				Int("added", count).
				Int("total", offset+count).
				Msg("Seeded demo list")
			return nil
		},
	}

	cmd.Flags().IntVarP(&count, "count", "n", 100, "number of items to push")
	cmd.Flags().BoolVar(&reset, "reset", false, "delete the list before seeding")

	return cmd
}

// sampleItems returns count items numbered after offset, split into batches
// of at most seedBatchSize.
func sampleItems(offset, count int, now time.Time) [][]Item {
	var batches [][]Item
	for start := 0; start < count; start += seedBatchSize {
		end := min(start+seedBatchSize, count)
		batch := make([]Item, 0, end-start)
		for i := start; i < end; i++ {
			id := offset + i + 1
			batch = append(batch, Item{
				ID:        id,
				Name:      fmt.Sprintf("Item %d", id),
				CreatedAt: now.UTC(),
			})
		}
		batches = append(batches, batch)
	}
	return batches
}
