package cmd

import (
	"fmt"
	"strconv"

	"paydown/internal/cli"
	"paydown/internal/model"
	"paydown/internal/source"

	"github.com/spf13/cobra"
)

var (
	flagDebtName    string
	flagDebtBalance float64
	flagDebtRate    float64
	flagDebtEMI     float64
	flagDebtType    string
)

var debtsCmd = &cobra.Command{
	Use:   "debts",
	Short: "Manage the debt ledger",
	RunE:  runDebtsList,
}

var debtsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all debts",
	RunE:  runDebtsList,
}

var debtsAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a debt",
	RunE:  runDebtsAdd,
}

var debtsEditCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Edit a debt's fields",
	Args:  cobra.ExactArgs(1),
	RunE:  runDebtsEdit,
}

var debtsRmCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Remove a debt",
	Args:  cobra.ExactArgs(1),
	RunE:  runDebtsRm,
}

var debtsClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove all debts",
	RunE:  runDebtsClear,
}

var debtsImportCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Replace the ledger with debts from a JSON file",
	Args:  cobra.ExactArgs(1),
	RunE:  runDebtsImport,
}

var debtsExportCmd = &cobra.Command{
	Use:   "export <file>",
	Short: "Write the ledger to a JSON file",
	Args:  cobra.ExactArgs(1),
	RunE:  runDebtsExport,
}

var debtsSampleCmd = &cobra.Command{
	Use:   "sample",
	Short: "Load the built-in example ledger",
	RunE:  runDebtsSample,
}

func init() {
	for _, c := range []*cobra.Command{debtsAddCmd, debtsEditCmd} {
		c.Flags().StringVar(&flagDebtName, "name", "", "Debt name")
		c.Flags().Float64Var(&flagDebtBalance, "balance", -1, "Outstanding balance")
		c.Flags().Float64Var(&flagDebtRate, "rate", -1, "Annual interest rate in percent")
		c.Flags().Float64Var(&flagDebtEMI, "emi", -1, "Fixed monthly payment")
		c.Flags().StringVar(&flagDebtType, "type", "", "Debt type: secured, unsecured, revolving")
	}

	debtsCmd.AddCommand(debtsListCmd, debtsAddCmd, debtsEditCmd, debtsRmCmd,
		debtsClearCmd, debtsImportCmd, debtsExportCmd, debtsSampleCmd)
	rootCmd.AddCommand(debtsCmd)
}

func runDebtsList(_ *cobra.Command, _ []string) error {
	debts, _, err := loadLedger()
	if err != nil {
		return err
	}
	if !requireDebts(debts) {
		return nil
	}

	var totalBalance, totalEMI float64
	rows := make([][]string, 0, len(debts)+2)
	for _, d := range debts {
		totalBalance += d.Balance
		totalEMI += d.EMI
		rows = append(rows, []string{
			strconv.FormatInt(d.ID, 10),
			d.Name,
			string(d.Type),
			cli.FormatMoney(d.Balance),
			cli.FormatRate(d.Rate),
			cli.FormatMoney(d.EMI),
		})
	}
	rows = append(rows, []string{"---"})
	rows = append(rows, []string{"", "Total", "", cli.FormatMoney(totalBalance), "", cli.FormatMoney(totalEMI)})

	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"ID", "Name", "Type", "Balance", "Rate", "EMI"},
		Rows:    rows,
	}))
	return nil
}

func runDebtsAdd(_ *cobra.Command, _ []string) error {
	if flagDebtName == "" || flagDebtBalance < 0 || flagDebtRate < 0 || flagDebtEMI < 0 {
		return fmt.Errorf("--name, --balance, --rate, and --emi are required")
	}
	typ := model.DebtType(flagDebtType)
	if flagDebtType == "" {
		typ = model.DebtUnsecured
	}

	d, err := model.NewDebt(0, flagDebtName, flagDebtBalance, flagDebtRate, flagDebtEMI, typ)
	if err != nil {
		return err
	}

	l, _, err := openLedger()
	if err != nil {
		return err
	}
	defer func() { _ = l.Close() }()

	added, err := l.Add(d)
	if err != nil {
		return err
	}
	fmt.Printf("  Added %q (id %d).\n", added.Name, added.ID)
	return nil
}

func runDebtsEdit(cmd *cobra.Command, args []string) error {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid id %q", args[0])
	}

	l, _, err := openLedger()
	if err != nil {
		return err
	}
	defer func() { _ = l.Close() }()

	d, err := l.Get(id)
	if err != nil {
		return err
	}

	if cmd.Flags().Changed("name") {
		d.Name = flagDebtName
	}
	if cmd.Flags().Changed("balance") {
		d.Balance = flagDebtBalance
	}
	if cmd.Flags().Changed("rate") {
		d.Rate = flagDebtRate
	}
	if cmd.Flags().Changed("emi") {
		d.EMI = flagDebtEMI
	}
	if cmd.Flags().Changed("type") {
		d.Type = model.DebtType(flagDebtType)
	}

	if _, err := model.NewDebt(d.ID, d.Name, d.Balance, d.Rate, d.EMI, d.Type); err != nil {
		return err
	}
	if err := l.Update(d); err != nil {
		return err
	}
	fmt.Printf("  Updated %q (id %d).\n", d.Name, d.ID)
	return nil
}

func runDebtsRm(_ *cobra.Command, args []string) error {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid id %q", args[0])
	}

	l, _, err := openLedger()
	if err != nil {
		return err
	}
	defer func() { _ = l.Close() }()

	if err := l.Remove(id); err != nil {
		return err
	}
	fmt.Printf("  Removed debt %d.\n", id)
	return nil
}

func runDebtsClear(_ *cobra.Command, _ []string) error {
	l, _, err := openLedger()
	if err != nil {
		return err
	}
	defer func() { _ = l.Close() }()

	n, err := l.Count()
	if err != nil {
		return err
	}
	if err := l.Clear(); err != nil {
		return err
	}
	fmt.Printf("  Ledger cleared (%d debts removed).\n", n)
	return nil
}

func runDebtsImport(_ *cobra.Command, args []string) error {
	debts, skipped, err := source.ReadLedgerFile(args[0])
	if err != nil {
		return err
	}

	l, _, err := openLedger()
	if err != nil {
		return err
	}
	defer func() { _ = l.Close() }()

	if err := l.Replace(debts); err != nil {
		return err
	}

	fmt.Printf("  Imported %d debts.\n", len(debts))
	if skipped > 0 {
		fmt.Printf("  Skipped %d invalid entries.\n", skipped)
	}
	return nil
}

func runDebtsExport(_ *cobra.Command, args []string) error {
	debts, _, err := loadLedger()
	if err != nil {
		return err
	}
	if err := source.WriteLedgerFile(args[0], debts); err != nil {
		return err
	}
	fmt.Printf("  Wrote %d debts to %s.\n", len(debts), args[0])
	return nil
}

func runDebtsSample(_ *cobra.Command, _ []string) error {
	l, _, err := openLedger()
	if err != nil {
		return err
	}
	defer func() { _ = l.Close() }()

	if err := l.Replace(model.SampleLedger()); err != nil {
		return err
	}
	fmt.Println("  Loaded the sample ledger (4 debts).")
	fmt.Println("  Try `paydown score --income 125000`.")
	return nil
}
