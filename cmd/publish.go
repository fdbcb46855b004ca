package cmd

import (
	"fmt"

	"inventory-manager/core/storage"
	"inventory-manager/feature/inventory"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// publishCmd represents the publish command
var publishCmd = &cobra.Command{
	Use:   "publish",
	Short: "Write all reports and upload them to object storage",
	Long:  `Runs the report pipeline, then uploads every written report to <bucket>/<prefix>/<run id>/ on the configured S3/MinIO storage.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := bootstrap()
		if err != nil {
			return err
		}
		defer rt.logger.Sync()

		client, err := storage.NewClient(rt.cfg.Storage)
		if err != nil {
			return fmt.Errorf("failed to create storage client: %w", err)
		}

		_, summary, err := rt.pipeline()
		if err != nil {
			return err
		}

		publisher := inventory.NewPublisher(client, rt.cfg.Storage, rt.logger)
		keys, err := publisher.Publish(cmd.Context(), rt.runID, rt.cfg.Inventory.OutputDir, summary.Written)
		rt.logger.Info("Publish finished", zap.String("bucket", rt.cfg.Storage.Bucket), zap.Strings("objects", keys))
		if err != nil {
			return fmt.Errorf("publish failed: %w", err)
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(publishCmd)
}
