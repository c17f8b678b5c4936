package command

import (
	"context"
	"encoding/json"
	"time"

	"mannamsalon/internal/service"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type MaintenanceHandler struct {
	logger          *zap.Logger
	identityService *service.IdentityService
}

func NewMaintenanceHandler(logger *zap.Logger, identityService *service.IdentityService) *MaintenanceHandler {
	return &MaintenanceHandler{
		logger:          logger,
		identityService: identityService,
	}
}

// CleanupAuth 手動執行一次孤兒帳號清除，結果以 JSON 印出
func (handler *MaintenanceHandler) CleanupAuth(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(cmd.Context(), 5*time.Minute)
	defer cancel()

	result, err := handler.identityService.CleanupOrphans(ctx, "cli")
	if err != nil {
		return err
	}
	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	return encoder.Encode(result)
}
