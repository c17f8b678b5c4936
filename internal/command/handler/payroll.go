package command

import (
	"context"
	"fmt"
	"os"
	"time"

	"mannamsalon/internal/dto"
	"mannamsalon/internal/service"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type PayrollHandler struct {
	logger         *zap.Logger
	payrollService *service.PayrollService
}

func NewPayrollHandler(logger *zap.Logger, payrollService *service.PayrollService) *PayrollHandler {
	return &PayrollHandler{
		logger:         logger,
		payrollService: payrollService,
	}
}

// Export 產出指定月份的 xlsx；未指定 --out 時寫到 payroll-YYYY-MM.xlsx
func (handler *PayrollHandler) Export(cmd *cobra.Command, args []string) error {
	flags := cmd.Flags()
	year, _ := flags.GetInt("year")
	month, _ := flags.GetInt("month")
	store, _ := flags.GetString("store")
	out, _ := flags.GetString("out")

	if year == 0 || month == 0 {
		now := time.Now()
		year, month = now.Year(), int(now.Month())
	}
	if out == "" {
		out = fmt.Sprintf("payroll-%d-%02d.xlsx", year, month)
	}

	file, err := os.Create(out)
	if err != nil {
		return err
	}
	defer file.Close()

	ctx, cancel := context.WithTimeout(cmd.Context(), 2*time.Minute)
	defer cancel()
	query := &dto.SalaryQueryDto{Year: year, Month: month, Store: store}
	if err := handler.payrollService.Export(ctx, query, file); err != nil {
		_ = os.Remove(out)
		return err
	}
	handler.logger.Info("payroll exported", zap.String("file", out), zap.Int("year", year), zap.Int("month", month))
	cmd.Println("written", out)
	return nil
}
