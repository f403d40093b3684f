// Package pdf genera el estado de resultados de un proyecto en PDF.
//
// Layout de la página carta:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  SOFTCON-MYS CONSTRU-WM        │  ESTADO DE RESULTADOS       │
//	│  ─────────────────────────────────────────────────────────  │
//	│  Proyecto: nombre + id         │  Emitido: fecha             │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Concepto | Monto                                    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  UTILIDAD NETA / MARGEN                                     │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strings"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/softcon-wm/internal/application/ports"
	"github.com/jhoicas/softcon-wm/internal/domain/entity"
)

var _ ports.ReportePDF = (*MarotoReportes)(nil)

var (
	colorMarca  = &props.Color{Red: 15, Green: 23, Blue: 42}
	colorAcento = &props.Color{Red: 202, Green: 138, Blue: 4}
	colorGris   = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorRojo   = &props.Color{Red: 185, Green: 28, Blue: 28}
)

// MarotoReportes genera reportes con Maroto v2.
type MarotoReportes struct {
	empresa string
}

// NewMarotoReportes construye el generador; empresa aparece en el encabezado.
func NewMarotoReportes(empresa string) *MarotoReportes {
	if strings.TrimSpace(empresa) == "" {
		empresa = "SOFTCON-MYS CONSTRU-WM"
	}
	return &MarotoReportes{empresa: empresa}
}

// EstadoResultadoPDF genera el PDF y devuelve sus bytes.
func (g *MarotoReportes) EstadoResultadoPDF(_ context.Context, er *entity.EstadoResultado, emitido time.Time) ([]byte, error) {
	if er == nil {
		return nil, fmt.Errorf("pdf: estado de resultados nil")
	}
	cfg := config.NewBuilder().
		WithPageSize(pagesize.Letter).
		WithLeftMargin(15).WithRightMargin(15).
		WithTopMargin(12).WithBottomMargin(12).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 10}).
		WithTitle("Estado de resultados "+nombreProyecto(er), true).
		WithAuthor(g.empresa, true).
		Build()

	m := maroto.New(cfg)
	m.AddRows(g.encabezado())
	m.AddRows(line.NewRow(1, props.Line{Color: colorAcento, Thickness: 0.6}))
	m.AddRows(proyectoRow(er, emitido))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGris, Thickness: 0.2}))
	m.AddRows(filaTitulo())
	m.AddRows(
		filaConcepto("Ingresos (cobros a cliente)", er.Ingresos, false),
		filaConcepto("Egresos en materiales", er.EgresosMateriales, true),
		filaConcepto("Egresos en planilla", er.EgresosPlanilla, true),
		filaConcepto("Egresos totales", er.EgresosTotales, true),
	)
	m.AddRows(line.NewRow(1, props.Line{Color: colorMarca, Thickness: 0.4}))
	m.AddRows(resultadoRow(er))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

func (g *MarotoReportes) encabezado() core.Row {
	return row.New(16).Add(
		col.New(7).Add(
			text.New(g.empresa, props.Text{Style: fontstyle.Bold, Size: 14, Color: colorMarca, Top: 2}),
			text.New("CONSTRUYENDO TU FUTURO", props.Text{Size: 8, Color: colorGris, Top: 10}),
		),
		col.New(5).Add(
			text.New("ESTADO DE RESULTADOS", props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Right, Color: colorAcento, Top: 4,
			}),
		),
	)
}

func proyectoRow(er *entity.EstadoResultado, emitido time.Time) core.Row {
	return row.New(14).Add(
		col.New(8).Add(
			text.New("Proyecto: "+nombreProyecto(er), props.Text{Style: fontstyle.Bold, Size: 10, Top: 2}),
			text.New("ID: "+er.ProyectoID, props.Text{Size: 7, Color: colorGris, Top: 8}),
		),
		col.New(4).Add(
			text.New("Emitido: "+emitido.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Color: colorGris, Top: 3,
			}),
		),
	)
}

func filaTitulo() core.Row {
	return row.New(8).Add(
		col.New(8).Add(text.New("Concepto", props.Text{Style: fontstyle.Bold, Size: 9, Top: 2})),
		col.New(4).Add(text.New("Monto", props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right, Top: 2})),
	)
}

func filaConcepto(concepto string, monto decimal.Decimal, egreso bool) core.Row {
	p := props.Text{Size: 9, Align: align.Right, Top: 1}
	if egreso && monto.IsPositive() {
		p.Color = colorRojo
	}
	return row.New(7).Add(
		col.New(8).Add(text.New(concepto, props.Text{Size: 9, Top: 1, Left: 2})),
		col.New(4).Add(text.New(FormatQuetzales(monto), p)),
	)
}

func resultadoRow(er *entity.EstadoResultado) core.Row {
	colorUtilidad := colorMarca
	if er.UtilidadNeta.IsNegative() {
		colorUtilidad = colorRojo
	}
	return row.New(16).Add(
		col.New(8).Add(
			text.New("UTILIDAD NETA", props.Text{Style: fontstyle.Bold, Size: 11, Top: 2}),
			text.New("Margen de utilidad", props.Text{Size: 9, Color: colorGris, Top: 9}),
		),
		col.New(4).Add(
			text.New(FormatQuetzales(er.UtilidadNeta), props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Right, Color: colorUtilidad, Top: 2,
			}),
			text.New(er.MargenUtilidad.StringFixed(2)+" %", props.Text{
				Size: 9, Align: align.Right, Color: colorGris, Top: 9,
			}),
		),
	)
}

func nombreProyecto(er *entity.EstadoResultado) string {
	if n := strings.TrimSpace(er.NombreProyecto); n != "" {
		return n
	}
	return er.ProyectoID
}

// FormatQuetzales formatea un monto como "Q 1,234,567.89" (negativos con signo).
func FormatQuetzales(d decimal.Decimal) string {
	s := d.Abs().StringFixed(2)
	entero, dec, _ := strings.Cut(s, ".")
	n := len(entero)
	var b strings.Builder
	for i, c := range entero {
		if i > 0 && (n-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(c)
	}
	signo := ""
	if d.IsNegative() {
		signo = "-"
	}
	return signo + "Q " + b.String() + "." + dec
}
