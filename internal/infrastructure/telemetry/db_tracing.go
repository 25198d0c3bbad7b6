package telemetry

import (
	"github.com/uptrace/opentelemetry-go-extra/otelgorm"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/crm/backend/internal/infrastructure/config"
)

// RegisterDBTracing attaches the otelgorm plugin so every query shows
// up as a span under the request trace. Query variables are excluded
// from the recorded statements. No-op when tracing is disabled.
func RegisterDBTracing(db *gorm.DB, cfg config.TelemetryConfig, logger *zap.Logger) error {
	if !cfg.Enabled {
		logger.Debug("telemetry disabled, skipping database tracing")
		return nil
	}

	plugin := otelgorm.NewPlugin(
		otelgorm.WithDBName("postgresql"),
		otelgorm.WithoutQueryVariables(),
	)
	if err := db.Use(plugin); err != nil {
		return err
	}

	logger.Info("database tracing enabled")
	return nil
}
