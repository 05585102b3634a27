package catalog

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Ágata Azúl", "agata azul"},
		{"  CUARZO  ", "cuarzo"},
		{"Ónix", "onix"},
		{"Piedra Lunar", "piedra lunar"},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Normalize(tt.in), tt.in)
	}
}

func TestSlugAndImagePath(t *testing.T) {
	assert.Equal(t, "agata-azul", Slug("Ágata  Azul"))
	assert.Equal(t, "images/cuarzo-rosa.jpg", ImagePath("Cuarzo Rosa"))
}

func TestEscapeLike(t *testing.T) {
	assert.Equal(t, `100\%`, EscapeLike("100%"))
	assert.Equal(t, `a\_b`, EscapeLike("a_b"))
	assert.Equal(t, `c:\\x`, EscapeLike(`c:\x`))
}

func TestFiltersApplyOData(t *testing.T) {
	var f Filters
	f.ApplyOData("color eq 'Azul Cielo' and category eq 'Cuarzo' and weight gt 3 and chemical_formula eq 'SiO2'")

	assert.Equal(t, "Azul Cielo", f.Color)
	assert.Equal(t, "Cuarzo", f.Category)
	assert.Equal(t, "SiO2", f.ChemicalFormula)
	assert.Empty(t, f.Name)
	assert.False(t, f.IsEmpty())
}

func TestFiltersIgnoreMalformedOData(t *testing.T) {
	var f Filters
	f.ApplyOData("color 'Azul'")
	f.ApplyOData("   ")
	assert.True(t, f.IsEmpty())
}

func TestSearchTerm(t *testing.T) {
	assert.Equal(t, "cuarzo", Filters{Search: "cuarzo", Name: "ambar"}.SearchTerm())
	assert.Equal(t, "ambar", Filters{Name: "ambar"}.SearchTerm())
}

func TestParseOrderBy(t *testing.T) {
	assert.Equal(t, DefaultSort, ParseOrderBy(""))
	assert.Equal(t, DefaultSort, ParseOrderBy("weight desc"))
	assert.Equal(t, []SortOption{
		{Field: FieldColor, Desc: true},
		{Field: FieldName},
	}, ParseOrderBy("color desc, name asc, price"))
}

func TestWindow(t *testing.T) {
	tests := []struct {
		name       string
		cursor     string
		limit      int
		wantOffset int
		wantSize   int
	}{
		{"first page", "", 10, 0, 10},
		{"default limit", "", 0, 0, DefaultLimit},
		{"clamped limit", "", 500, 0, MaxLimit},
		{"forward", Cursor{Offset: 20, Direction: Forward}.Encode(), 10, 20, 10},
		{"backward", Cursor{Offset: 20, Direction: Backward}.Encode(), 10, 10, 10},
		{"backward near start", Cursor{Offset: 4, Direction: Backward}.Encode(), 10, 0, 4},
		{"garbage restarts", "not-a-cursor", 10, 0, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			offset, size := Window(tt.cursor, tt.limit)
			assert.Equal(t, tt.wantOffset, offset)
			assert.Equal(t, tt.wantSize, size)
		})
	}
}

func TestDecodeCursorRejectsInvalidPositions(t *testing.T) {
	_, err := DecodeCursor(Cursor{Offset: -1, Direction: Forward}.Encode())
	assert.Error(t, err)

	_, err = DecodeCursor(Cursor{Offset: 1, Direction: "Sideways"}.Encode())
	assert.Error(t, err)
}

func TestPaginateWalksAllRows(t *testing.T) {
	const total = 25
	seen := 0
	cursor := ""

	for pages := 0; pages < 10; pages++ {
		offset, size := Window(cursor, 10)
		count := size
		if offset+count > total {
			count = total - offset
		}
		seen += count

		page := Paginate(offset, count, total, 10)
		assert.Equal(t, offset > 0, page.HasPrevious)
		if !page.HasNext {
			assert.Empty(t, page.NextCursor)
			break
		}
		cursor = page.NextCursor
	}

	assert.Equal(t, total, seen)
}

func TestPaginatePreviousCursorReturnsToPriorPage(t *testing.T) {
	page := Paginate(20, 10, 50, 10)
	require.True(t, page.HasPrevious)

	offset, size := Window(page.PreviousCursor, 10)
	assert.Equal(t, 10, offset)
	assert.Equal(t, 10, size)
}

func TestLoadRecords(t *testing.T) {
	input := `[
		{"name": "Ágata Azul", "color": "Azul"},
		{"name": "", "color": "Rojo"},
		{"name": "Jade", "image": "images/jade-verde.jpg", "magical_description": "Sabiduría", "category": "Silicato", "color": "Verde", "chemical_formula": "NaAlSi2O6"},
		42
	]`

	records, skipped, err := LoadRecords(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, []int{1, 3}, skipped)
	require.Len(t, records, 2)

	agata := records[0]
	assert.Equal(t, "images/agata-azul.jpg", agata.Image)
	assert.Equal(t, DefaultDescription, agata.MagicalDescription)
	assert.Equal(t, DefaultCategory, agata.Category)
	assert.Equal(t, "Azul", agata.Color)
	assert.Equal(t, DefaultFormula, agata.ChemicalFormula)

	assert.Equal(t, "images/jade-verde.jpg", records[1].Image)
	assert.Equal(t, "NaAlSi2O6", records[1].ChemicalFormula)
}

func TestLoadRecordsRejectsNonArray(t *testing.T) {
	_, _, err := LoadRecords(strings.NewReader(`{"name": "Jade"}`))
	assert.Error(t, err)
}
