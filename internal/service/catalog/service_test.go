package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BarbershopService/internal/domain"
	"github.com/m04kA/SMC-BarbershopService/internal/service/catalog/models"
	"github.com/m04kA/SMC-BarbershopService/internal/testfixtures"
	"github.com/m04kA/SMC-BarbershopService/pkg/logger"
)

func TestHome(t *testing.T) {
	inactive := &domain.Service{ID: testfixtures.BeardID, Name: "Antiga", Active: false}
	repo := testfixtures.NewCatalog(testfixtures.Haircut(), inactive)
	shop := models.ShopInfo{Name: "BarbeariaTop", Hours: []string{"Domingo: Fechado"}}

	resp, err := NewService(repo, shop, logger.Nop()).Home(context.Background())
	require.NoError(t, err)

	assert.Equal(t, shop, resp.Shop)
	require.Len(t, resp.Services, 1)
	assert.Equal(t, "Corte Masculino", resp.Services[0].Name)
	assert.Equal(t, "R$ 25,00", resp.Services[0].Price)
	assert.Equal(t, "30 min", resp.Services[0].Duration)
}

func TestListActive_Error(t *testing.T) {
	repo := testfixtures.NewCatalog()
	repo.Err = errors.New("boom")

	_, err := NewService(repo, models.ShopInfo{}, logger.Nop()).ListActive(context.Background())
	assert.ErrorIs(t, err, ErrInternal)
}
