package inventory_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Doarmfando/Inventario-Cevi-sub000/internal/application/dto"
	appinv "github.com/Doarmfando/Inventario-Cevi-sub000/internal/application/inventory"
	"github.com/Doarmfando/Inventario-Cevi-sub000/internal/domain"
	"github.com/Doarmfando/Inventario-Cevi-sub000/internal/domain/entity"
	"github.com/Doarmfando/Inventario-Cevi-sub000/internal/domain/repository"
	"github.com/Doarmfando/Inventario-Cevi-sub000/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeProductoRepo struct {
	productos map[string]*entity.Producto
}

func (f *fakeProductoRepo) Create(ctx context.Context, p *entity.Producto) error { return nil }
func (f *fakeProductoRepo) GetByID(ctx context.Context, id string) (*entity.Producto, error) {
	return f.productos[id], nil
}
func (f *fakeProductoRepo) Update(ctx context.Context, p *entity.Producto) error { return nil }
func (f *fakeProductoRepo) List(ctx context.Context, busqueda string, limit, offset int) ([]*entity.Producto, error) {
	return nil, nil
}
func (f *fakeProductoRepo) SoftDelete(ctx context.Context, id string) error { return nil }

type fakeContenedorRepo struct {
	contenedores map[string]*entity.Contenedor
}

func (f *fakeContenedorRepo) Create(ctx context.Context, c *entity.Contenedor) error { return nil }
func (f *fakeContenedorRepo) GetByID(ctx context.Context, id string) (*entity.Contenedor, error) {
	return f.contenedores[id], nil
}
func (f *fakeContenedorRepo) Update(ctx context.Context, c *entity.Contenedor) error { return nil }
func (f *fakeContenedorRepo) List(ctx context.Context, limit, offset int) ([]*entity.Contenedor, error) {
	return nil, nil
}
func (f *fakeContenedorRepo) SoftDelete(ctx context.Context, id string) error { return nil }

// fakeRegistroRepo guarda existencias por clave contenedor|producto.
type fakeRegistroRepo struct {
	registros map[string]*entity.ContenedorProducto
	upserts   int
}

func key(contenedorID, productoID string) string { return contenedorID + "|" + productoID }

func (f *fakeRegistroRepo) Create(ctx context.Context, r *entity.ContenedorProducto) error {
	return nil
}
func (f *fakeRegistroRepo) GetByID(ctx context.Context, id string) (*entity.ContenedorProducto, error) {
	return nil, nil
}
func (f *fakeRegistroRepo) Get(ctx context.Context, contenedorID, productoID string) (*entity.ContenedorProducto, error) {
	return f.registros[key(contenedorID, productoID)], nil
}

// GetForUpdate imita al repo real: sin fila devuelve un registro cero listo
// para Upsert (ID vacío, cantidad cero).
func (f *fakeRegistroRepo) GetForUpdate(ctx context.Context, contenedorID, productoID string) (*entity.ContenedorProducto, error) {
	if r, ok := f.registros[key(contenedorID, productoID)]; ok {
		copia := *r
		return &copia, nil
	}
	return &entity.ContenedorProducto{
		ContenedorID: contenedorID,
		ProductoID:   productoID,
		Cantidad:     decimal.Zero,
		Visible:      true,
	}, nil
}

func (f *fakeRegistroRepo) Upsert(ctx context.Context, r *entity.ContenedorProducto) error {
	f.upserts++
	copia := *r
	f.registros[key(r.ContenedorID, r.ProductoID)] = &copia
	return nil
}
func (f *fakeRegistroRepo) Update(ctx context.Context, r *entity.ContenedorProducto) error {
	copia := *r
	f.registros[key(r.ContenedorID, r.ProductoID)] = &copia
	return nil
}
func (f *fakeRegistroRepo) ListByContenedor(ctx context.Context, contenedorID string) ([]*entity.ContenedorProducto, error) {
	return nil, nil
}
func (f *fakeRegistroRepo) ListVisibles(ctx context.Context) ([]*entity.ContenedorProducto, error) {
	return nil, nil
}
func (f *fakeRegistroRepo) CountByContenedor(ctx context.Context, contenedorID string) (int, error) {
	return 0, nil
}
func (f *fakeRegistroRepo) SoftDelete(ctx context.Context, id string) error { return nil }
func (f *fakeRegistroRepo) UpdateEstadoCalculado(ctx context.Context, id, estado string) error {
	return nil
}

type fakeMovimientoRepo struct {
	creados []*entity.Movimiento
}

func (f *fakeMovimientoRepo) Create(ctx context.Context, m *entity.Movimiento) error {
	copia := *m
	f.creados = append(f.creados, &copia)
	return nil
}
func (f *fakeMovimientoRepo) GetByID(ctx context.Context, id string) (*entity.Movimiento, error) {
	return nil, nil
}
func (f *fakeMovimientoRepo) List(ctx context.Context, fl repository.MovimientoFilter) ([]*entity.Movimiento, error) {
	return nil, nil
}
func (f *fakeMovimientoRepo) ListKardex(ctx context.Context, productoID, contenedorID string) ([]*entity.Movimiento, error) {
	return nil, nil
}

// fakeTxRunner ejecuta el callback sin transacción real.
type fakeTxRunner struct {
	movRepo      *fakeMovimientoRepo
	registroRepo *fakeRegistroRepo
}

func (f *fakeTxRunner) Run(ctx context.Context, fn func(
	movRepo repository.MovimientoRepository,
	registroRepo repository.ContenedorProductoRepository,
) error) error {
	return fn(f.movRepo, f.registroRepo)
}

// ──────────────────────────────────────────────────────────────────────────────
// Setup
// ──────────────────────────────────────────────────────────────────────────────

const (
	prodPescado   = "11111111-1111-1111-1111-111111111111"
	prodSal       = "22222222-2222-2222-2222-222222222222"
	contCongelado = "33333333-3333-3333-3333-333333333333"
	usuario       = "44444444-4444-4444-4444-444444444444"
)

type engineFixture struct {
	uc        *appinv.RegisterMovimientoUseCase
	registros *fakeRegistroRepo
	movs      *fakeMovimientoRepo
}

func newEngineFixture(t *testing.T) *engineFixture {
	t.Helper()
	productos := &fakeProductoRepo{productos: map[string]*entity.Producto{
		prodPescado: {
			ID: prodPescado, Nombre: "Pescado bonito", UnidadMedida: "kg",
			PrecioRealUnidad: decimal.RequireFromString("18.50"), Perecedero: true,
		},
		prodSal: {
			ID: prodSal, Nombre: "Sal", UnidadMedida: "kg",
			PrecioRealUnidad: decimal.RequireFromString("2.00"), Perecedero: false,
		},
	}}
	contenedores := &fakeContenedorRepo{contenedores: map[string]*entity.Contenedor{
		contCongelado: {ID: contCongelado, Nombre: "Congelador 1", Tipo: entity.ContenedorCongelador, Estado: entity.ContenedorActivo},
	}}
	registros := &fakeRegistroRepo{registros: make(map[string]*entity.ContenedorProducto)}
	movs := &fakeMovimientoRepo{}
	runner := &fakeTxRunner{movRepo: movs, registroRepo: registros}
	log := logger.New(logger.Config{Env: "test", Level: "error"})

	return &engineFixture{
		uc:        appinv.NewRegisterMovimientoUseCase(runner, productos, contenedores, log, 7),
		registros: registros,
		movs:      movs,
	}
}

func fechaFutura() *time.Time {
	t := time.Now().AddDate(0, 1, 0)
	return &t
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestRegister_EntradaCreaExistencia(t *testing.T) {
	fx := newEngineFixture(t)
	precio := decimal.RequireFromString("20.00")

	out, err := fx.uc.Register(context.Background(), usuario, dto.RegisterMovimientoRequest{
		ProductoID:       prodPescado,
		ContenedorID:     contCongelado,
		Tipo:             entity.MovimientoEntrada,
		Cantidad:         decimal.NewFromInt(20),
		PrecioUnidad:     &precio,
		Motivo:           entity.MotivoCompra,
		FechaVencimiento: fechaFutura(),
	})
	require.NoError(t, err)
	require.NotNil(t, out)

	assert.True(t, out.StockAnterior.IsZero(), "el stock anterior de una existencia nueva es 0")
	assert.True(t, out.StockNuevo.Equal(decimal.NewFromInt(20)))
	assert.Equal(t, usuario, out.CreatedBy)

	r := fx.registros.registros[key(contCongelado, prodPescado)]
	require.NotNil(t, r, "la existencia debe quedar persistida")
	assert.True(t, r.Cantidad.Equal(decimal.NewFromInt(20)))
	assert.True(t, r.PrecioRealUnidad.Equal(precio), "la entrada actualiza el precio real")
	assert.NotEmpty(t, r.ID)
	require.Len(t, fx.movs.creados, 1)
}

func TestRegister_SalidaDescuentaYEncadenaSaldos(t *testing.T) {
	fx := newEngineFixture(t)

	_, err := fx.uc.Register(context.Background(), usuario, dto.RegisterMovimientoRequest{
		ProductoID: prodSal, ContenedorID: contCongelado,
		Tipo: entity.MovimientoEntrada, Cantidad: decimal.NewFromInt(20),
	})
	require.NoError(t, err)

	out, err := fx.uc.Register(context.Background(), usuario, dto.RegisterMovimientoRequest{
		ProductoID: prodSal, ContenedorID: contCongelado,
		Tipo: entity.MovimientoSalida, Cantidad: decimal.NewFromInt(5),
		Motivo: entity.MotivoConsumo,
	})
	require.NoError(t, err)

	// stock_anterior del segundo movimiento == stock_nuevo del primero
	assert.True(t, out.StockAnterior.Equal(decimal.NewFromInt(20)))
	assert.True(t, out.StockNuevo.Equal(decimal.NewFromInt(15)))
}

func TestRegister_SalidaPermiteSaldoNegativo(t *testing.T) {
	fx := newEngineFixture(t)

	// Sin stock previo: la salida se registra igual y el saldo queda negativo.
	out, err := fx.uc.Register(context.Background(), usuario, dto.RegisterMovimientoRequest{
		ProductoID: prodSal, ContenedorID: contCongelado,
		Tipo: entity.MovimientoSalida, Cantidad: decimal.NewFromInt(3),
	})
	require.NoError(t, err, "una salida que deja saldo negativo no se rechaza")
	assert.True(t, out.StockNuevo.Equal(decimal.NewFromInt(-3)))
}

func TestRegister_AjusteEsDeltaConSigno(t *testing.T) {
	fx := newEngineFixture(t)

	_, err := fx.uc.Register(context.Background(), usuario, dto.RegisterMovimientoRequest{
		ProductoID: prodSal, ContenedorID: contCongelado,
		Tipo: entity.MovimientoEntrada, Cantidad: decimal.NewFromInt(10),
	})
	require.NoError(t, err)

	// Ajuste negativo: se aplica tal cual, sin invertir el signo.
	out, err := fx.uc.Register(context.Background(), usuario, dto.RegisterMovimientoRequest{
		ProductoID: prodSal, ContenedorID: contCongelado,
		Tipo: entity.MovimientoAjuste, Cantidad: decimal.NewFromInt(-4),
		Motivo: entity.MotivoCorreccion,
	})
	require.NoError(t, err)
	assert.True(t, out.StockNuevo.Equal(decimal.NewFromInt(6)))

	// Ajuste positivo
	out, err = fx.uc.Register(context.Background(), usuario, dto.RegisterMovimientoRequest{
		ProductoID: prodSal, ContenedorID: contCongelado,
		Tipo: entity.MovimientoAjuste, Cantidad: decimal.NewFromInt(2),
	})
	require.NoError(t, err)
	assert.True(t, out.StockNuevo.Equal(decimal.NewFromInt(8)))
}

func TestRegister_ValidacionesDeEntrada(t *testing.T) {
	fx := newEngineFixture(t)
	ctx := context.Background()

	casos := []struct {
		nombre string
		in     dto.RegisterMovimientoRequest
		want   error
	}{
		{
			"tipo desconocido",
			dto.RegisterMovimientoRequest{ProductoID: prodSal, ContenedorID: contCongelado, Tipo: "traslado", Cantidad: decimal.NewFromInt(1)},
			domain.ErrInvalidInput,
		},
		{
			"salida con cantidad negativa",
			dto.RegisterMovimientoRequest{ProductoID: prodSal, ContenedorID: contCongelado, Tipo: entity.MovimientoSalida, Cantidad: decimal.NewFromInt(-5)},
			domain.ErrInvalidInput,
		},
		{
			"entrada con cantidad cero",
			dto.RegisterMovimientoRequest{ProductoID: prodSal, ContenedorID: contCongelado, Tipo: entity.MovimientoEntrada, Cantidad: decimal.Zero},
			domain.ErrInvalidInput,
		},
		{
			"ajuste con delta cero",
			dto.RegisterMovimientoRequest{ProductoID: prodSal, ContenedorID: contCongelado, Tipo: entity.MovimientoAjuste, Cantidad: decimal.Zero},
			domain.ErrInvalidInput,
		},
		{
			"entrada de perecedero sin fecha de vencimiento",
			dto.RegisterMovimientoRequest{ProductoID: prodPescado, ContenedorID: contCongelado, Tipo: entity.MovimientoEntrada, Cantidad: decimal.NewFromInt(1)},
			domain.ErrInvalidInput,
		},
		{
			"producto inexistente",
			dto.RegisterMovimientoRequest{ProductoID: "99999999-9999-9999-9999-999999999999", ContenedorID: contCongelado, Tipo: entity.MovimientoEntrada, Cantidad: decimal.NewFromInt(1)},
			domain.ErrNotFound,
		},
		{
			"contenedor inexistente",
			dto.RegisterMovimientoRequest{ProductoID: prodSal, ContenedorID: "99999999-9999-9999-9999-999999999999", Tipo: entity.MovimientoEntrada, Cantidad: decimal.NewFromInt(1)},
			domain.ErrNotFound,
		},
	}

	for _, tc := range casos {
		t.Run(tc.nombre, func(t *testing.T) {
			_, err := fx.uc.Register(ctx, usuario, tc.in)
			assert.ErrorIs(t, err, tc.want)
		})
	}

	assert.Empty(t, fx.movs.creados, "ninguna validación fallida debe persistir movimientos")
}

func TestRegister_EntradaRefrescaEstadoCalculado(t *testing.T) {
	fx := newEngineFixture(t)

	_, err := fx.uc.Register(context.Background(), usuario, dto.RegisterMovimientoRequest{
		ProductoID: prodPescado, ContenedorID: contCongelado,
		Tipo: entity.MovimientoEntrada, Cantidad: decimal.NewFromInt(5),
		FechaVencimiento: fechaFutura(),
	})
	require.NoError(t, err)

	r := fx.registros.registros[key(contCongelado, prodPescado)]
	require.NotNil(t, r)
	// En un congelador con fecha lejana la etiqueta cacheada es "congelado".
	assert.Equal(t, "congelado", r.EstadoCalculado)
}
