package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/getaroundlab/pricing/client"
	"github.com/getaroundlab/pricing/config"
	"github.com/getaroundlab/pricing/core/pricing"
)

var quoteFlags struct {
	modelKey    string
	mileage     float64
	enginePower float64
	fuel        string
	paintColor  string
	carType     string
	parking     bool
	gps         bool
	airCon      bool
	automatic   bool
	connect     bool
	speedReg    bool
	winterTires bool
}

var quoteCmd = &cobra.Command{
	Use:   "quote",
	Short: "Quote a daily price for one vehicle against a running service",
	RunE:  quote,
}

func init() {
	f := quoteCmd.Flags()
	f.StringVar(&quoteFlags.modelKey, "model-key", "Volkswagen Golf", "vehicle model key")
	f.Float64Var(&quoteFlags.mileage, "mileage", 80000, "mileage in km")
	f.Float64Var(&quoteFlags.enginePower, "engine-power", 110, "engine power in hp")
	f.StringVar(&quoteFlags.fuel, "fuel", "petrol", "fuel type")
	f.StringVar(&quoteFlags.paintColor, "paint-color", "black", "paint color")
	f.StringVar(&quoteFlags.carType, "car-type", "sedan", "car type")
	f.BoolVar(&quoteFlags.parking, "private-parking", false, "private parking available")
	f.BoolVar(&quoteFlags.gps, "gps", false, "has GPS")
	f.BoolVar(&quoteFlags.airCon, "air-conditioning", false, "has air conditioning")
	f.BoolVar(&quoteFlags.automatic, "automatic", false, "automatic gearbox")
	f.BoolVar(&quoteFlags.connect, "connect", false, "has Getaround Connect")
	f.BoolVar(&quoteFlags.speedReg, "speed-regulator", false, "has speed regulator")
	f.BoolVar(&quoteFlags.winterTires, "winter-tires", false, "winter tires mounted")
	rootCmd.AddCommand(quoteCmd)
}

func quote(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	record := pricing.FeatureRecord{
		ModelKey:                quoteFlags.modelKey,
		Mileage:                 quoteFlags.mileage,
		EnginePower:             quoteFlags.enginePower,
		Fuel:                    quoteFlags.fuel,
		PaintColor:              quoteFlags.paintColor,
		CarType:                 quoteFlags.carType,
		PrivateParkingAvailable: boolFlag(quoteFlags.parking),
		HasGPS:                  boolFlag(quoteFlags.gps),
		HasAirConditioning:      boolFlag(quoteFlags.airCon),
		AutomaticCar:            boolFlag(quoteFlags.automatic),
		HasGetaroundConnect:     boolFlag(quoteFlags.connect),
		HasSpeedRegulator:       boolFlag(quoteFlags.speedReg),
		WinterTires:             boolFlag(quoteFlags.winterTires),
	}

	c := client.New(cfg.Client.URL, time.Duration(cfg.Client.TimeoutSeconds)*time.Second)
	price, err := c.QuoteOne(context.Background(), record)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s (%s, %.0f km): %.0f EUR/day\n",
		record.ModelKey, record.CarType, record.Mileage, price)
	return nil
}

func boolFlag(b bool) int {
	if b {
		return 1
	}
	return 0
}
