package cmd

import (
	"fmt"
	"time"

	"inventory-manager/core/database"
	"inventory-manager/feature/inventory"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var skipReports bool

// snapshotCmd represents the snapshot command
var snapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Save the merged inventory into the database",
	Long:  `Loads the input lists and upserts every item into the inventory_items table. Reports are written too unless --skip-reports is set.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := bootstrap()
		if err != nil {
			return err
		}
		defer rt.logger.Sync()

		db, err := database.Connect(rt.cfg.Database)
		if err != nil {
			return fmt.Errorf("database connection required: %w", err)
		}

		var svc *inventory.Service
		if skipReports {
			svc, err = rt.load()
		} else {
			svc, _, err = rt.pipeline()
		}
		if err != nil {
			return err
		}

		store := inventory.NewStore(db)
		if err := store.Migrate(); err != nil {
			return err
		}
		n, err := store.SaveSnapshot(cmd.Context(), svc.Inventory().Records(), time.Now())
		if err != nil {
			return err
		}
		rt.logger.Info("Snapshot saved", zap.String("driver", rt.cfg.Database.Driver), zap.Int64("rows", n))
		return nil
	},
}

func init() {
	RootCmd.AddCommand(snapshotCmd)
	snapshotCmd.Flags().BoolVar(&skipReports, "skip-reports", false, "Only save the snapshot, do not write report files")
}
