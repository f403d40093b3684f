package ports

import (
	"context"
	"time"

	"github.com/jhoicas/softcon-wm/internal/domain/entity"
)

// ReportePDF genera el PDF del estado de resultados de un proyecto.
type ReportePDF interface {
	EstadoResultadoPDF(ctx context.Context, er *entity.EstadoResultado, emitido time.Time) ([]byte, error)
}
