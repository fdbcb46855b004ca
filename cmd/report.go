package cmd

import (
	"github.com/spf13/cobra"
)

// reportCmd represents the report command
var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Load the input lists and write all inventory reports",
	Long: `Reads ManufacturerList.csv, PriceList.csv and ServiceDatesList.csv (paths
configurable through INVENTORY_* variables) and writes FullInventory.csv,
one <Type>Inventory.csv per item type, PastServiceDateInventory.csv and
DamagedInventory.csv.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runReport()
	},
}

func init() {
	RootCmd.AddCommand(reportCmd)
}

func runReport() error {
	rt, err := bootstrap()
	if err != nil {
		return err
	}
	defer rt.logger.Sync()

	_, _, err = rt.pipeline()
	return err
}
