package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/dimensional/internal/config"
)

var (
	convertDim  string
	convertFrom string
	convertTo   string
)

var convertCmd = &cobra.Command{
	Use:   "convert [value]",
	Short: "Convert a value between two units of one dimension",
	Long: `Converts a numeric value from one unit to another within a single
dimension. The value is routed through the dimension's base unit, so
non-base targets may carry floating-point rounding.`,
	Args: cobra.ExactArgs(1),
	RunE: runConvert,
}

func init() {
	convertCmd.Flags().StringVar(&convertDim, "dim", "", "dimension to convert in (force, mass, temperature, duration)")
	convertCmd.Flags().StringVar(&convertFrom, "from", "", "unit the value is measured in")
	convertCmd.Flags().StringVar(&convertTo, "to", "", "unit to convert into")
	_ = convertCmd.MarkFlagRequired("from")
	_ = convertCmd.MarkFlagRequired("to")
	rootCmd.AddCommand(convertCmd)
}

func runConvert(cmd *cobra.Command, args []string) error {
	value, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return fmt.Errorf("invalid value %q: %w", args[0], err)
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	name := convertDim
	if name == "" {
		name = cfg.DefaultDimension
	}
	dim, err := lookupDimension(name)
	if err != nil {
		return err
	}

	out, err := dim.Convert(value, convertFrom, convertTo)
	if err != nil {
		return err
	}

	symbol, err := dim.Symbol(convertTo)
	if err != nil {
		return err
	}

	cmd.Printf("%.*f %s\n", cfg.Precision, out, symbol)
	return nil
}
