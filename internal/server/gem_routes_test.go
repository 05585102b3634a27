package server

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"testing"

	"wiccapedia-api/internal/dto"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedGems(t *testing.T, app *fiber.App) map[string]dto.GemResponse {
	t.Helper()
	gems := []dto.CreateGemRequest{
		{Name: "Amatista", MagicalDescription: "Calma e intuición", Category: "Cuarzo", Color: "Violeta", ChemicalFormula: "SiO2"},
		{Name: "Cuarzo Rosa", MagicalDescription: "Amor propio", Category: "Cuarzo", Color: "Rosa", ChemicalFormula: "SiO2"},
		{Name: "Ágata Azul", MagicalDescription: "Comunicación serena", Category: "Calcedonia", Color: "Azul", ChemicalFormula: "SiO2"},
		{Name: "Obsidiana", MagicalDescription: "Escudo protector", Category: "Vidrio volcánico", Color: "Negro", ChemicalFormula: "SiO2 + MgO"},
		{Name: "Turmalina", MagicalDescription: "Purifica la energía", Category: "Ciclosilicato", Color: "Negro", ChemicalFormula: "Na(Mg,Fe)3Al6"},
	}

	created := make(map[string]dto.GemResponse, len(gems))
	for _, g := range gems {
		resp := doJSON(t, app, "POST", "/api/gems", g)
		require.Equal(t, fiber.StatusCreated, resp.StatusCode, g.Name)
		gem := decode[dto.GemResponse](t, resp)
		created[gem.Name] = gem
	}
	return created
}

func names(gems []*dto.GemResponse) []string {
	out := make([]string, len(gems))
	for i, g := range gems {
		out[i] = g.Name
	}
	return out
}

func TestGemCreateDerivesImage(t *testing.T) {
	app := newTestApp(t, testConfig(t))
	gems := seedGems(t, app)

	assert.Equal(t, "images/agata-azul.jpg", gems["Ágata Azul"].Image)

	resp := doJSON(t, app, "POST", "/api/gems", dto.CreateGemRequest{Name: "Amatista"})
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
}

func TestGemListFiltersAndSorts(t *testing.T) {
	app := newTestApp(t, testConfig(t))
	seedGems(t, app)

	tests := []struct {
		name  string
		query url.Values
		want  []string
	}{
		{"default sort", url.Values{}, []string{"Amatista", "Cuarzo Rosa", "Obsidiana", "Turmalina", "Ágata Azul"}},
		{"accent insensitive search", url.Values{"$search": {"agata"}}, []string{"Ágata Azul"}},
		{"search over description", url.Values{"$search": {"ENERGIA"}}, []string{"Turmalina"}},
		{"odata filter", url.Values{"$filter": {"category eq 'cuarzo' and color eq 'Rosa'"}}, []string{"Cuarzo Rosa"}},
		{"plain filter", url.Values{"color": {"negro"}}, []string{"Obsidiana", "Turmalina"}},
		{"order desc", url.Values{"color": {"Negro"}, "$orderby": {"name desc"}}, []string{"Turmalina", "Obsidiana"}},
		{"name filter", url.Values{"name": {"rosa"}}, []string{"Cuarzo Rosa"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := doJSON(t, app, "GET", "/api/gems?"+tt.query.Encode(), nil)
			require.Equal(t, fiber.StatusOK, resp.StatusCode)
			page := decode[dto.GemPageResponse](t, resp)
			assert.Equal(t, tt.want, names(page.Data))
			assert.Equal(t, int64(len(tt.want)), page.Pagination.TotalCount)
		})
	}
}

func TestGemListCursorPagination(t *testing.T) {
	app := newTestApp(t, testConfig(t))
	seedGems(t, app)

	resp := doJSON(t, app, "GET", "/api/gems?limit=2", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	first := decode[dto.GemPageResponse](t, resp)
	assert.Equal(t, []string{"Amatista", "Cuarzo Rosa"}, names(first.Data))
	assert.True(t, first.Pagination.HasNext)
	assert.False(t, first.Pagination.HasPrevious)
	assert.Nil(t, first.Pagination.PreviousCursor)
	require.NotNil(t, first.Pagination.NextCursor)

	resp = doJSON(t, app, "GET", "/api/gems?limit=2&cursor="+url.QueryEscape(*first.Pagination.NextCursor), nil)
	second := decode[dto.GemPageResponse](t, resp)
	assert.Equal(t, []string{"Obsidiana", "Turmalina"}, names(second.Data))
	assert.True(t, second.Pagination.HasPrevious)
	require.NotNil(t, second.Pagination.NextCursor)

	resp = doJSON(t, app, "GET", "/api/gems?limit=2&cursor="+url.QueryEscape(*second.Pagination.NextCursor), nil)
	third := decode[dto.GemPageResponse](t, resp)
	assert.Equal(t, []string{"Ágata Azul"}, names(third.Data))
	assert.False(t, third.Pagination.HasNext)

	require.NotNil(t, second.Pagination.PreviousCursor)
	resp = doJSON(t, app, "GET", "/api/gems?limit=2&cursor="+url.QueryEscape(*second.Pagination.PreviousCursor), nil)
	back := decode[dto.GemPageResponse](t, resp)
	assert.Equal(t, names(first.Data), names(back.Data))

	resp = doJSON(t, app, "GET", "/api/gems?limit=2&cursor=garbage", nil)
	restart := decode[dto.GemPageResponse](t, resp)
	assert.Equal(t, names(first.Data), names(restart.Data))
}

func TestGemSearchEndpoint(t *testing.T) {
	app := newTestApp(t, testConfig(t))
	seedGems(t, app)

	resp := doJSON(t, app, "GET", "/api/gems/search?q=cuarzo", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, []string{"Amatista", "Cuarzo Rosa"}, names(decode[[]*dto.GemResponse](t, resp)))

	resp = doJSON(t, app, "GET", "/api/gems/search", nil)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestGemCrudAndMetadata(t *testing.T) {
	app := newTestApp(t, testConfig(t))
	gems := seedGems(t, app)
	turmalina := gems["Turmalina"]

	resp := doJSON(t, app, "GET", "/api/gems/metadata/colors", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, []string{"Azul", "Negro", "Rosa", "Violeta"}, decode[[]string](t, resp))

	update := dto.UpdateGemRequest{Name: "Turmalina", MagicalDescription: "Ancla", Category: "Ciclosilicato", Color: "Verde"}
	resp = doJSON(t, app, "PUT", "/api/gems/"+turmalina.Id.String(), update)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	updated := decode[dto.GemResponse](t, resp)
	assert.Equal(t, "Verde", updated.Color)
	assert.Equal(t, "images/turmalina.jpg", updated.Image)

	// the write invalidated the cached list
	resp = doJSON(t, app, "GET", "/api/gems/metadata/colors", nil)
	assert.Equal(t, []string{"Azul", "Negro", "Rosa", "Verde", "Violeta"}, decode[[]string](t, resp))

	resp = doJSON(t, app, "GET", "/api/gems/"+turmalina.Id.String(), nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "Ancla", decode[dto.GemResponse](t, resp).MagicalDescription)

	resp = doJSON(t, app, "DELETE", "/api/gems/"+turmalina.Id.String(), nil)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)

	resp = doJSON(t, app, "GET", "/api/gems/"+turmalina.Id.String(), nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	resp = doJSON(t, app, "DELETE", "/api/gems/"+turmalina.Id.String(), nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	resp = doJSON(t, app, "GET", "/api/gems/not-a-uuid", nil)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	resp = doJSON(t, app, "GET", "/api/gems/metadata/sizes", nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	resp = doJSON(t, app, "GET", "/api/gems/metadata/formulas", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, []string{"SiO2", "SiO2 + MgO"}, decode[[]string](t, resp))
}

func TestGemImagesAreServed(t *testing.T) {
	cfg := testConfig(t)
	require.NoError(t, os.WriteFile(filepath.Join(cfg.App.GemImageDir, "jade.jpg"), []byte("jpeg"), 0o644))
	app := newTestApp(t, cfg)

	resp := doJSON(t, app, "GET", "/images/jade.jpg", nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp = doJSON(t, app, "GET", fmt.Sprintf("/images/%s", "missing.jpg"), nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}
