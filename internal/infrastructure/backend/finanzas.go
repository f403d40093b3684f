package backend

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/softcon-wm/internal/application/dto"
	"github.com/jhoicas/softcon-wm/internal/domain"
	"github.com/jhoicas/softcon-wm/internal/domain/entity"
	"github.com/jhoicas/softcon-wm/internal/domain/finanzas"
	"github.com/jhoicas/softcon-wm/internal/infrastructure/apiclient"
)

const categoriaPorDefecto = "Hogar"

// gastoRaw admite las dos formas de gasto: {desc, cat} y {descripcion, categoria}.
type gastoRaw struct {
	ID          texto           `json:"id"`
	Descripcion texto           `json:"descripcion"`
	Desc        texto           `json:"desc"`
	Categoria   texto           `json:"categoria"`
	Cat         texto           `json:"cat"`
	Monto       decimal.Decimal `json:"monto"`
	Fecha       texto           `json:"fecha"`
}

func (r gastoRaw) entity() entity.GastoPersonal {
	return entity.GastoPersonal{
		ID:          string(r.ID),
		Descripcion: primero(r.Descripcion, r.Desc),
		Categoria:   primero(r.Categoria, r.Cat),
		Monto:       r.Monto,
		Fecha:       parseFecha(r.Fecha),
	}
}

// resumenRaw une las formas de /finanzas-personales/resumen (gastos_lista) y de
// /finanzas/resumen (lista, sin ingresos).
type resumenRaw struct {
	Ingresos    decimal.NullDecimal `json:"ingresos"`
	TotalGastos decimal.NullDecimal `json:"total_gastos"`
	GastosLista []gastoRaw          `json:"gastos_lista"`
	Lista       []gastoRaw          `json:"lista"`
	Items       []gastoRaw          `json:"items"`
}

func (r resumenRaw) entity() *entity.ResumenFinanzasPersonales {
	raws := r.GastosLista
	if raws == nil {
		raws = r.Lista
	}
	if raws == nil {
		raws = r.Items
	}
	gastos := make([]entity.GastoPersonal, 0, len(raws))
	montos := make([]decimal.Decimal, 0, len(raws))
	for _, g := range raws {
		e := g.entity()
		gastos = append(gastos, e)
		montos = append(montos, e.Monto)
	}

	total := finanzas.TotalGastos(montos...)
	if r.TotalGastos.Valid {
		total = r.TotalGastos.Decimal
	}
	ingresos := decimal.Zero
	if r.Ingresos.Valid {
		ingresos = r.Ingresos.Decimal
	}
	return &entity.ResumenFinanzasPersonales{
		Ingresos:    ingresos,
		TotalGastos: total,
		SaldoNeto:   finanzas.SaldoNeto(ingresos, total),
		Gastos:      gastos,
	}
}

// ResumenFinanzasPersonales GET /finanzas-personales/resumen con alternativa
// GET /finanzas/resumen.
func (s *Service) ResumenFinanzasPersonales(ctx context.Context) (*entity.ResumenFinanzasPersonales, error) {
	resp, err := s.firstSuccess(ctx,
		apiclient.Request{Method: "GET", Path: "/finanzas-personales/resumen"},
		apiclient.Request{Method: "GET", Path: "/finanzas/resumen"},
	)
	if err != nil {
		return nil, err
	}
	var raw resumenRaw
	if err := resp.Decode(&raw); err != nil {
		return nil, err
	}
	return raw.entity(), nil
}

// RegistrarGastoPersonal POST /finanzas-personales/gasto con alternativa
// POST /gastos-personales; ambas reciben el mismo cuerpo.
func (s *Service) RegistrarGastoPersonal(ctx context.Context, in dto.RegistrarGastoRequest) (*entity.GastoPersonal, error) {
	desc := strings.TrimSpace(in.Descripcion)
	if desc == "" {
		return nil, fmt.Errorf("descripcion requerida: %w", domain.ErrInvalidInput)
	}
	if !in.Monto.IsPositive() {
		return nil, fmt.Errorf("monto debe ser mayor que cero: %w", domain.ErrInvalidInput)
	}
	cat := strings.TrimSpace(in.Categoria)
	if cat == "" {
		cat = categoriaPorDefecto
	}

	body := map[string]any{
		"descripcion": desc,
		"monto":       in.Monto,
		"categoria":   cat,
	}
	if in.Fecha != nil {
		body["fecha"] = in.Fecha.Format(time.RFC3339)
	}

	resp, err := s.firstSuccess(ctx,
		apiclient.Request{Method: "POST", Path: "/finanzas-personales/gasto", Body: body},
		apiclient.Request{Method: "POST", Path: "/gastos-personales", Body: body},
	)
	if err != nil {
		return nil, err
	}
	var out dto.StatusResponse
	if err := resp.Decode(&out); err != nil {
		return nil, err
	}
	return &entity.GastoPersonal{
		ID:          out.ID,
		Descripcion: desc,
		Categoria:   cat,
		Monto:       in.Monto,
		Fecha:       in.Fecha,
	}, nil
}

// EstadoResultado GET /finanzas/estado-resultado/{id}: ingresos contra egresos del proyecto.
func (s *Service) EstadoResultado(ctx context.Context, proyectoID string) (*entity.EstadoResultado, error) {
	seg, err := segmento("proyecto_id", proyectoID)
	if err != nil {
		return nil, err
	}
	var out entity.EstadoResultado
	if err := s.get(ctx, "/finanzas/estado-resultado/"+seg, nil, &out); err != nil {
		return nil, err
	}
	if out.ProyectoID == "" {
		out.ProyectoID = strings.TrimSpace(proyectoID)
	}
	if out.EgresosTotales.IsZero() {
		out.EgresosTotales = out.EgresosMateriales.Add(out.EgresosPlanilla)
	}
	if out.MargenUtilidad.IsZero() && out.Ingresos.IsPositive() {
		out.MargenUtilidad = finanzas.MargenUtilidad(out.Ingresos, out.EgresosTotales)
	}
	return &out, nil
}

// BalanceVidaNegocio GET /finanzas/balance-vida-negocio/{usuario_id}.
func (s *Service) BalanceVidaNegocio(ctx context.Context, usuarioID string) (*entity.BalanceVidaNegocio, error) {
	seg, err := segmento("usuario_id", usuarioID)
	if err != nil {
		return nil, err
	}
	var out entity.BalanceVidaNegocio
	if err := s.get(ctx, "/finanzas/balance-vida-negocio/"+seg, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// RegistrarCobroCliente POST /finanzas/registrar-cobro-cliente; el backend lee
// todos los campos como query params.
func (s *Service) RegistrarCobroCliente(ctx context.Context, in dto.CobroClienteRequest) (*dto.StatusResponse, error) {
	if strings.TrimSpace(in.ProyectoID) == "" {
		return nil, fmt.Errorf("proyecto_id requerido: %w", domain.ErrInvalidInput)
	}
	if !in.Monto.IsPositive() {
		return nil, fmt.Errorf("monto debe ser mayor que cero: %w", domain.ErrInvalidInput)
	}
	q := url.Values{
		"proyecto_id": {strings.TrimSpace(in.ProyectoID)},
		"monto":       {in.Monto.String()},
		"concepto":    {in.Concepto},
		"ref":         {in.Referencia},
	}
	resp, err := s.do(ctx, apiclient.Request{Method: "POST", Path: "/finanzas/registrar-cobro-cliente", Query: q})
	if err != nil {
		return nil, err
	}
	var out dto.StatusResponse
	if err := resp.Decode(&out); err != nil {
		return nil, err
	}
	return &out, nil
}
