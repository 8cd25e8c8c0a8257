package usecase_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Doarmfando/Inventario-Cevi-sub000/internal/application/dto"
	"github.com/Doarmfando/Inventario-Cevi-sub000/internal/application/usecase"
	"github.com/Doarmfando/Inventario-Cevi-sub000/internal/domain"
	"github.com/Doarmfando/Inventario-Cevi-sub000/internal/domain/entity"
	"github.com/Doarmfando/Inventario-Cevi-sub000/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type memContenedorRepo struct {
	contenedores map[string]*entity.Contenedor
	borrados     []string
}

func (m *memContenedorRepo) Create(ctx context.Context, c *entity.Contenedor) error {
	copia := *c
	m.contenedores[c.ID] = &copia
	return nil
}
func (m *memContenedorRepo) GetByID(ctx context.Context, id string) (*entity.Contenedor, error) {
	return m.contenedores[id], nil
}
func (m *memContenedorRepo) Update(ctx context.Context, c *entity.Contenedor) error {
	copia := *c
	m.contenedores[c.ID] = &copia
	return nil
}
func (m *memContenedorRepo) List(ctx context.Context, limit, offset int) ([]*entity.Contenedor, error) {
	out := make([]*entity.Contenedor, 0, len(m.contenedores))
	for _, c := range m.contenedores {
		out = append(out, c)
	}
	return out, nil
}
func (m *memContenedorRepo) SoftDelete(ctx context.Context, id string) error {
	m.borrados = append(m.borrados, id)
	delete(m.contenedores, id)
	return nil
}

// memRegistroCounter solo implementa el conteo; el resto no se usa aquí.
type memRegistroCounter struct {
	repository.ContenedorProductoRepository
	porContenedor map[string]int
}

func (m *memRegistroCounter) CountByContenedor(ctx context.Context, contenedorID string) (int, error) {
	return m.porContenedor[contenedorID], nil
}

func newContenedorFixture() (*usecase.ContenedorUseCase, *memContenedorRepo, *memRegistroCounter) {
	repo := &memContenedorRepo{contenedores: make(map[string]*entity.Contenedor)}
	counter := &memRegistroCounter{porContenedor: make(map[string]int)}
	return usecase.NewContenedorUseCase(repo, counter), repo, counter
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestContenedorCreate_TipoInvalido(t *testing.T) {
	uc, _, _ := newContenedorFixture()

	_, err := uc.Create(context.Background(), dto.CreateContenedorRequest{
		Nombre: "Cámara X", Tipo: "camara_rara",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestContenedorCreate_CapacidadNegativa(t *testing.T) {
	uc, _, _ := newContenedorFixture()

	_, err := uc.Create(context.Background(), dto.CreateContenedorRequest{
		Nombre: "Congelador 2", Tipo: entity.ContenedorCongelador,
		Capacidad: decimal.NewFromInt(-10),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestContenedorCreate_NaceActivoYVisible(t *testing.T) {
	uc, repo, _ := newContenedorFixture()

	out, err := uc.Create(context.Background(), dto.CreateContenedorRequest{
		Nombre: "Almacén seco", Tipo: entity.ContenedorAlmacenSeco,
		Capacidad: decimal.NewFromInt(100), UnidadCapacidad: "kg",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.ContenedorActivo, out.Estado)

	guardado := repo.contenedores[out.ID]
	require.NotNil(t, guardado)
	assert.True(t, guardado.Visible)
}

func TestContenedorDelete_ConExistencias_Rechazado(t *testing.T) {
	uc, repo, counter := newContenedorFixture()

	out, err := uc.Create(context.Background(), dto.CreateContenedorRequest{
		Nombre: "Refrigerador 1", Tipo: entity.ContenedorRefrigerador,
	})
	require.NoError(t, err)
	counter.porContenedor[out.ID] = 3

	err = uc.Delete(context.Background(), out.ID)
	assert.ErrorIs(t, err, domain.ErrHasDependents,
		"un contenedor con existencias no se borra, ni en cascada")
	assert.Empty(t, repo.borrados, "el soft delete no debe ejecutarse")
}

func TestContenedorDelete_Vacio_SoftDelete(t *testing.T) {
	uc, repo, _ := newContenedorFixture()

	out, err := uc.Create(context.Background(), dto.CreateContenedorRequest{
		Nombre: "Refrigerador 2", Tipo: entity.ContenedorRefrigerador,
	})
	require.NoError(t, err)

	require.NoError(t, uc.Delete(context.Background(), out.ID))
	assert.Equal(t, []string{out.ID}, repo.borrados)
}

func TestContenedorDelete_NoExiste(t *testing.T) {
	uc, _, _ := newContenedorFixture()

	err := uc.Delete(context.Background(), "00000000-0000-0000-0000-000000000000")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestContenedorUpdate_EstadoInvalido(t *testing.T) {
	uc, _, _ := newContenedorFixture()

	out, err := uc.Create(context.Background(), dto.CreateContenedorRequest{
		Nombre: "Congelador 3", Tipo: entity.ContenedorCongelador,
	})
	require.NoError(t, err)

	estado := "apagado"
	_, err = uc.Update(context.Background(), out.ID, dto.UpdateContenedorRequest{Estado: &estado})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
