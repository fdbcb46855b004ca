package inventory

// Config holds the input and output locations of the pipeline.
type Config struct {
	// ManufacturerFile lists id, manufacturer, item type and an optional damaged flag.
	ManufacturerFile string `mapstructure:"manufacturer_file" default:"ManufacturerList.csv"`
	// PriceFile lists id and price.
	PriceFile string `mapstructure:"price_file" default:"PriceList.csv"`
	// ServiceDatesFile lists id and service date (MM/DD/YYYY).
	ServiceDatesFile string `mapstructure:"service_dates_file" default:"ServiceDatesList.csv"`
	// OutputDir is where the report files are written.
	OutputDir string `mapstructure:"output_dir" default:"."`
}
