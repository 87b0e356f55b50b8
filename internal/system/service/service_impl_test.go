package service

import (
	"context"
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/slzdigital/catalogo/internal/clock"
	"github.com/slzdigital/catalogo/internal/system/domain"
	"github.com/slzdigital/catalogo/internal/system/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T, name string) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file:"+name+"?mode=memory&cache=shared"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&domain.System{},
		&domain.SystemFeature{},
		&domain.Review{},
	))
	return db
}

func newTestService(t *testing.T, db *gorm.DB, clk clock.Clock) domain.Service {
	t.Helper()

	node, err := snowflake.NewNode(1)
	require.NoError(t, err)

	return New(Params{
		DB:    db,
		Log:   zap.NewNop(),
		GenID: node,
		Repo:  repository.Provide(),
		Clock: clk,
	})
}

func TestCreateAndGet(t *testing.T) {
	db := newTestDB(t, "systemsvc_create")
	clk := clock.NewFakeClock(time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC))
	svc := newTestService(t, db, clk)
	ctx := context.Background()

	created, err := svc.Create(ctx, domain.CreateRequest{
		Name:        "Agenda Saúde",
		Description: "Agendamento de consultas",
		Secretary:   "semus",
		Category:    "cidadao",
		Features:    []string{"Agendamento online", "", "Lembretes"},
	})
	require.NoError(t, err)
	assert.Equal(t, "SEMUS", created.Secretary)
	assert.True(t, created.IsNew)
	assert.Equal(t, domain.NoveltyWindowDays, created.DaysRemaining)
	assert.Equal(t, []string{"Agendamento online", "Lembretes"}, created.Features)
	assert.Nil(t, created.Rating)
	assert.Equal(t, 0, created.ReviewCount)

	fetched, err := svc.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, fetched.ID)
	assert.Equal(t, "Agenda Saúde", fetched.Name)
	assert.Equal(t, []string{"Agendamento online", "Lembretes"}, fetched.Features)
}

func TestCreateValidation(t *testing.T) {
	db := newTestDB(t, "systemsvc_validation")
	svc := newTestService(t, db, clock.NewFakeClock(time.Now()))
	ctx := context.Background()

	_, err := svc.Create(ctx, domain.CreateRequest{Description: "d", Secretary: "SEMUS", Category: "cidadao"})
	assert.ErrorIs(t, err, domain.ErrInvalidName)

	_, err = svc.Create(ctx, domain.CreateRequest{Name: "n", Secretary: "SEMUS", Category: "cidadao"})
	assert.ErrorIs(t, err, domain.ErrInvalidDescription)

	_, err = svc.Create(ctx, domain.CreateRequest{Name: "n", Description: "d", Category: "cidadao"})
	assert.ErrorIs(t, err, domain.ErrInvalidSecretary)

	_, err = svc.Create(ctx, domain.CreateRequest{Name: "n", Description: "d", Secretary: "SEMUS"})
	assert.ErrorIs(t, err, domain.ErrInvalidCategory)
}

func TestListFiltersCombineWithAND(t *testing.T) {
	db := newTestDB(t, "systemsvc_filters")
	clk := clock.NewFakeClock(time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC))
	svc := newTestService(t, db, clk)
	ctx := context.Background()

	highlight := true
	_, err := svc.Create(ctx, domain.CreateRequest{
		Name: "Portal da Saúde", Description: "Serviços de saúde",
		Secretary: "SEMUS", Category: "destaques", Highlight: &highlight,
	})
	require.NoError(t, err)
	_, err = svc.Create(ctx, domain.CreateRequest{
		Name: "Matrícula Escolar", Description: "Matrícula na rede municipal",
		Secretary: "SEMED", Category: "destaques",
	})
	require.NoError(t, err)
	_, err = svc.Create(ctx, domain.CreateRequest{
		Name: "Prontuário", Description: "Prontuário eletrônico",
		Secretary: "SEMUS", Category: "interno",
	})
	require.NoError(t, err)

	all, err := svc.List(ctx, domain.ListRequest{})
	require.NoError(t, err)
	assert.Len(t, all, 3)

	byCategory, err := svc.List(ctx, domain.ListRequest{Category: "destaques"})
	require.NoError(t, err)
	assert.Len(t, byCategory, 2)

	bySecretary, err := svc.List(ctx, domain.ListRequest{Secretary: "semus"})
	require.NoError(t, err)
	assert.Len(t, bySecretary, 2)

	// category AND secretary must both hold
	both, err := svc.List(ctx, domain.ListRequest{Category: "destaques", Secretary: "SEMUS"})
	require.NoError(t, err)
	require.Len(t, both, 1)
	assert.Equal(t, "Portal da Saúde", both[0].Name)

	highlighted, err := svc.List(ctx, domain.ListRequest{Highlight: &highlight})
	require.NoError(t, err)
	require.Len(t, highlighted, 1)
	assert.Equal(t, "Portal da Saúde", highlighted[0].Name)
}

func TestSearchIsCaseInsensitive(t *testing.T) {
	db := newTestDB(t, "systemsvc_search")
	svc := newTestService(t, db, clock.NewFakeClock(time.Now()))
	ctx := context.Background()

	_, err := svc.Create(ctx, domain.CreateRequest{
		Name: "Portal da Saúde", Description: "Serviços ao cidadão",
		Secretary: "SEMUS", Category: "cidadao",
	})
	require.NoError(t, err)

	for _, query := range []string{"portal", "PORTAL", "Cidadão", "CIDADÃO"} {
		results, err := svc.Search(ctx, query)
		require.NoError(t, err)
		assert.Len(t, results, 1, "query %q", query)
	}

	none, err := svc.Search(ctx, "inexistente")
	require.NoError(t, err)
	assert.Empty(t, none)

	_, err = svc.Search(ctx, "   ")
	assert.ErrorIs(t, err, domain.ErrInvalidQuery)
}

func TestListOnlyNewUsesWindow(t *testing.T) {
	db := newTestDB(t, "systemsvc_onlynew")
	clk := clock.NewFakeClock(time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC))
	svc := newTestService(t, db, clk)
	ctx := context.Background()

	old, err := svc.Create(ctx, domain.CreateRequest{
		Name: "Sistema Antigo", Description: "d", Secretary: "SEMUS", Category: "cidadao",
	})
	require.NoError(t, err)

	clk.Advance(90 * 24 * time.Hour)

	recent, err := svc.Create(ctx, domain.CreateRequest{
		Name: "Sistema Recente", Description: "d", Secretary: "SEMED", Category: "cidadao",
	})
	require.NoError(t, err)

	onlyNew, err := svc.List(ctx, domain.ListRequest{OnlyNew: true})
	require.NoError(t, err)
	require.Len(t, onlyNew, 1)
	assert.Equal(t, recent.ID, onlyNew[0].ID)
	assert.True(t, onlyNew[0].IsNew)

	fetched, err := svc.GetByID(ctx, old.ID)
	require.NoError(t, err)
	assert.False(t, fetched.IsNew)
	assert.Equal(t, 0, fetched.DaysRemaining)
}

func TestListOnlyNewExcludesFutureTimestamps(t *testing.T) {
	db := newTestDB(t, "systemsvc_future")
	clk := clock.NewFakeClock(time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC))
	svc := newTestService(t, db, clk)
	ctx := context.Background()

	current, err := svc.Create(ctx, domain.CreateRequest{
		Name: "Sistema Atual", Description: "d", Secretary: "SEMUS", Category: "cidadao",
	})
	require.NoError(t, err)

	// clock-skewed row, stamped a month ahead of now
	node, err := snowflake.NewNode(9)
	require.NoError(t, err)
	future := domain.System{
		ID:            node.Generate(),
		Name:          "Sistema Futuro",
		Description:   "d",
		SecretaryCode: "SEMUS",
		CategoryCode:  "cidadao",
		CreatedAt:     clk.Now().AddDate(0, 0, 30),
		UpdatedAt:     clk.Now().AddDate(0, 0, 30),
	}
	require.NoError(t, db.Create(&future).Error)

	onlyNew, err := svc.List(ctx, domain.ListRequest{OnlyNew: true})
	require.NoError(t, err)
	require.Len(t, onlyNew, 1)
	assert.Equal(t, current.ID, onlyNew[0].ID)

	// the skewed row still lists without the filter, classified not-new
	all, err := svc.List(ctx, domain.ListRequest{})
	require.NoError(t, err)
	require.Len(t, all, 2)
	for _, item := range all {
		if item.ID == future.ID.String() {
			assert.False(t, item.IsNew)
			assert.Equal(t, 0, item.DaysRemaining)
		}
	}
}

func TestListOrdersNewestFirst(t *testing.T) {
	db := newTestDB(t, "systemsvc_order")
	clk := clock.NewFakeClock(time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC))
	svc := newTestService(t, db, clk)
	ctx := context.Background()

	first, err := svc.Create(ctx, domain.CreateRequest{Name: "Primeiro", Description: "d", Secretary: "SEMUS", Category: "cidadao"})
	require.NoError(t, err)

	clk.Advance(24 * time.Hour)
	second, err := svc.Create(ctx, domain.CreateRequest{Name: "Segundo", Description: "d", Secretary: "SEMUS", Category: "cidadao"})
	require.NoError(t, err)

	list, err := svc.List(ctx, domain.ListRequest{})
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, second.ID, list[0].ID)
	assert.Equal(t, first.ID, list[1].ID)
}

func TestUpdatePatchesOnlyProvidedFields(t *testing.T) {
	db := newTestDB(t, "systemsvc_update")
	clk := clock.NewFakeClock(time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC))
	svc := newTestService(t, db, clk)
	ctx := context.Background()

	created, err := svc.Create(ctx, domain.CreateRequest{
		Name: "Nome Original", Description: "Descrição original",
		Secretary: "SEMUS", Category: "cidadao",
		Features: []string{"A", "B"},
	})
	require.NoError(t, err)

	newName := "Nome Novo"
	updated, err := svc.Update(ctx, domain.UpdateRequest{ID: created.ID, Name: &newName})
	require.NoError(t, err)
	assert.Equal(t, "Nome Novo", updated.Name)
	assert.Equal(t, "Descrição original", updated.Description)
	assert.Equal(t, "SEMUS", updated.Secretary)
	assert.Equal(t, []string{"A", "B"}, updated.Features)

	features := []string{"C"}
	updated, err = svc.Update(ctx, domain.UpdateRequest{ID: created.ID, Features: &features})
	require.NoError(t, err)
	assert.Equal(t, []string{"C"}, updated.Features)

	empty := "  "
	_, err = svc.Update(ctx, domain.UpdateRequest{ID: created.ID, Name: &empty})
	assert.ErrorIs(t, err, domain.ErrInvalidName)

	_, err = svc.Update(ctx, domain.UpdateRequest{ID: "999999999", Name: &newName})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDelete(t *testing.T) {
	db := newTestDB(t, "systemsvc_delete")
	svc := newTestService(t, db, clock.NewFakeClock(time.Now()))
	ctx := context.Background()

	created, err := svc.Create(ctx, domain.CreateRequest{
		Name: "Descartável", Description: "d", Secretary: "SEMUS", Category: "cidadao",
		Features: []string{"F"},
	})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, created.ID))

	_, err = svc.GetByID(ctx, created.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	var featureCount int64
	require.NoError(t, db.Model(&domain.SystemFeature{}).Count(&featureCount).Error)
	assert.Zero(t, featureCount)

	assert.ErrorIs(t, svc.Delete(ctx, created.ID), domain.ErrNotFound)
	assert.ErrorIs(t, svc.Delete(ctx, "abc"), domain.ErrInvalidID)
}
