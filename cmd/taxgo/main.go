package main

import (
	"errors"
	"fmt"
	"log"
	"os"
	"runtime/debug"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/myca/taxgo/internal/compare"
	"github.com/myca/taxgo/internal/config"
	"github.com/myca/taxgo/internal/domain"
	"github.com/myca/taxgo/internal/rules"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(os.Stdout, "taxgo %s (commit %s, built %s)\n", version, commit, date)
			if info := buildInfo(); info != "" {
				fmt.Fprintln(os.Stdout, info)
			}
		},
	}
}

func buildInfo() string {
	if bi, ok := debug.ReadBuildInfo(); ok && bi != nil {
		return bi.String()
	}
	return ""
}

var rootCmd = &cobra.Command{
	Use:   "taxgo",
	Short: "Indian income tax regime comparison CLI",
	Long:  "Computes income tax liability under the old and new regimes and recommends the cheaper one",
}

// loadRegistry builds the rule-table registry, replacing the built-in
// tables when a rules file is supplied.
func loadRegistry(cmd *cobra.Command) (*rules.Registry, error) {
	rulesFile, _ := cmd.Flags().GetString("rules")
	if rulesFile != "" {
		return rules.NewRegistryFromFile(rulesFile)
	}
	return rules.NewRegistry()
}

// inputFromFlags assembles a TaxInput from --income, --fy, and repeated
// --deduction category=amount flags.
func inputFromFlags(cmd *cobra.Command) (*domain.TaxInput, error) {
	incomeStr, _ := cmd.Flags().GetString("income")
	fiscalYear, _ := cmd.Flags().GetString("fy")
	deductionFlags, _ := cmd.Flags().GetStringArray("deduction")

	if incomeStr == "" {
		return nil, fmt.Errorf("%w: --income is required when no input file is given", domain.ErrInvalidInput)
	}
	income, err := decimal.NewFromString(incomeStr)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid income %q", domain.ErrInvalidInput, incomeStr)
	}

	deductions := make(map[domain.DeductionCategory]decimal.Decimal, len(deductionFlags))
	for _, d := range deductionFlags {
		category, amountStr, ok := strings.Cut(d, "=")
		if !ok {
			return nil, fmt.Errorf("%w: deduction must be category=amount, got %q", domain.ErrInvalidInput, d)
		}
		amount, err := decimal.NewFromString(amountStr)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid deduction amount %q", domain.ErrInvalidInput, amountStr)
		}
		deductions[domain.DeductionCategory(strings.ToLower(category))] = amount
	}

	input := &domain.TaxInput{
		GrossAnnualIncome: income,
		Deductions:        deductions,
		FiscalYear:        fiscalYear,
	}

	parser := config.NewInputParser()
	if err := parser.ValidateInput(input); err != nil {
		return nil, err
	}
	return input, nil
}

var compareCmd = &cobra.Command{
	Use:   "compare [input-file]",
	Short: "Compare tax liability under both regimes",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		registry, err := loadRegistry(cmd)
		if err != nil {
			log.Fatal(err)
		}

		var input *domain.TaxInput
		if len(args) == 1 {
			parser := config.NewInputParser()
			input, err = parser.LoadFromFile(args[0])
		} else {
			input, err = inputFromFlags(cmd)
		}
		if err != nil {
			log.Fatal(err)
		}

		comparator := compare.NewComparator(registry)
		result, err := comparator.Compare(*input)
		if err != nil {
			if errors.Is(err, domain.ErrUnsupportedFiscalYear) {
				log.Fatalf("%v (registered years: %s)", err, strings.Join(registry.FiscalYears(), ", "))
			}
			log.Fatal(err)
		}

		outputFormat, _ := cmd.Flags().GetString("format")
		formatter := compare.GetFormatterByName(outputFormat)
		if formatter == nil {
			log.Fatalf("unknown output format %q (supported: json, table, csv)", outputFormat)
		}
		out, err := formatter.Format(result)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Print(out)
	},
}

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "Show the registered rule tables",
	Run: func(cmd *cobra.Command, args []string) {
		registry, err := loadRegistry(cmd)
		if err != nil {
			log.Fatal(err)
		}

		fiscalYear, _ := cmd.Flags().GetString("fy")
		years := registry.FiscalYears()
		if fiscalYear != "" {
			years = []string{fiscalYear}
		}

		for _, year := range years {
			oldTable, newTable, err := registry.Lookup(year)
			if err != nil {
				log.Fatal(err)
			}
			printTable(oldTable)
			printTable(newTable)
		}
	},
}

func printTable(table domain.RegimeRuleTable) {
	fmt.Printf("%s / %s regime\n", table.FiscalYear, table.Regime)
	for _, slab := range table.Slabs {
		if slab.Unbounded() {
			fmt.Printf("  %12s and above  @ %s%%\n", slab.Lower.StringFixed(0), slab.Rate.Mul(decimal.NewFromInt(100)).StringFixed(0))
			continue
		}
		fmt.Printf("  %12s - %-12s @ %s%%\n", slab.Lower.StringFixed(0), slab.Upper.StringFixed(0), slab.Rate.Mul(decimal.NewFromInt(100)).StringFixed(0))
	}
	fmt.Printf("  standard deduction %s, rebate up to %s below %s, cess %s%%\n\n",
		table.StandardDeduction.StringFixed(0),
		table.RebateMaxAmount.StringFixed(0),
		table.RebateIncomeThreshold.StringFixed(0),
		table.CessRate.Mul(decimal.NewFromInt(100)).StringFixed(0))
}

var validateCmd = &cobra.Command{
	Use:   "validate [file]",
	Short: "Validate an input or rules file",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		filename := args[0]
		asRules, _ := cmd.Flags().GetBool("rules-file")

		if asRules {
			if _, err := rules.LoadTablesFromFile(filename); err != nil {
				log.Fatal(err)
			}
		} else {
			parser := config.NewInputParser()
			if _, err := parser.LoadFromFile(filename); err != nil {
				log.Fatal(err)
			}
		}

		fmt.Printf("File %s is valid\n", filename)
	},
}

func init() {
	compareCmd.Flags().String("format", "table", "Output format: json, table, csv")
	compareCmd.Flags().String("income", "", "Gross annual income (when no input file is given)")
	compareCmd.Flags().String("fy", "2024-25", "Fiscal year selecting the rule tables")
	compareCmd.Flags().StringArray("deduction", nil, "Deduction as category=amount (repeatable; categories: 80c, 80d, hra, other)")
	compareCmd.Flags().String("rules", "", "Rule tables YAML file (replaces built-in tables)")

	rulesCmd.Flags().String("fy", "", "Only show tables for this fiscal year")
	rulesCmd.Flags().String("rules", "", "Rule tables YAML file (replaces built-in tables)")

	validateCmd.Flags().Bool("rules-file", false, "Treat the file as a rule tables file")

	rootCmd.AddCommand(compareCmd)
	rootCmd.AddCommand(rulesCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(versionCmd())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
