package command

import (
	commandHandler "mannamsalon/internal/command/handler"

	"github.com/google/wire"
	"github.com/spf13/cobra"
)

var ProviderSet = wire.NewSet(NewCommand, commandHandler.NewMaintenanceHandler, commandHandler.NewPayrollHandler)

type Command struct {
	maintenanceHandler *commandHandler.MaintenanceHandler
	payrollHandler     *commandHandler.PayrollHandler
}

// NewCommand .
func NewCommand(
	maintenanceHandler *commandHandler.MaintenanceHandler,
	payrollHandler *commandHandler.PayrollHandler,
) *Command {
	return &Command{
		maintenanceHandler: maintenanceHandler,
		payrollHandler:     payrollHandler,
	}
}

// run 每個子命令各自建立依賴，結束時釋放連線
func run(newCmd func() (*Command, func(), error), fn func(*Command, *cobra.Command, []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		command, cleanup, err := newCmd()
		if err != nil {
			return err
		}
		defer cleanup()
		return fn(command, cmd, args)
	}
}

func Register(rootCmd *cobra.Command, newCmd func() (*Command, func(), error)) {
	cleanupAuth := &cobra.Command{
		Use:   "cleanup-auth",
		Short: "delete identity accounts that no longer have a users document",
		RunE: run(newCmd, func(c *Command, cmd *cobra.Command, args []string) error {
			return c.maintenanceHandler.CleanupAuth(cmd, args)
		}),
	}

	payroll := &cobra.Command{
		Use:   "payroll",
		Short: "payroll utilities",
	}
	export := &cobra.Command{
		Use:   "export",
		Short: "export monthly payroll as xlsx",
		RunE: run(newCmd, func(c *Command, cmd *cobra.Command, args []string) error {
			return c.payrollHandler.Export(cmd, args)
		}),
	}
	export.Flags().Int("year", 0, "year, defaults to current")
	export.Flags().Int("month", 0, "month 1-12, defaults to current")
	export.Flags().String("store", "", "filter by store")
	export.Flags().StringP("out", "o", "", "output file")
	payroll.AddCommand(export)

	rootCmd.AddCommand(cleanupAuth, payroll)
}
