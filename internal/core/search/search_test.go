package search_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ndjimba/internal/adapters/memory"
	"ndjimba/internal/core/domain"
	"ndjimba/internal/core/search"
	"ndjimba/internal/mocks"
)

func ids(records []domain.Property) []string {
	out := make([]string, len(records))
	for i, p := range records {
		out[i] = p.ID
	}
	return out
}

func int64Ptr(v int64) *int64       { return &v }
func intPtr(v int) *int             { return &v }
func float64Ptr(v float64) *float64 { return &v }

func TestFilter(t *testing.T) {
	catalog := memory.SampleProperties()

	tests := []struct {
		name    string
		filters func() domain.SearchFilters
		want    []string
	}{
		{
			name:    "empty filters pass everything through",
			filters: domain.NewSearchFilters,
			want:    []string{"1", "2", "3", "4", "5", "6", "7", "8"},
		},
		{
			name: "land only",
			filters: func() domain.SearchFilters {
				f := domain.NewSearchFilters()
				f.PropertyTypes = []domain.PropertyType{domain.TypeLand}
				return f
			},
			want: []string{"7", "8"},
		},
		{
			name: "city",
			filters: func() domain.SearchFilters {
				f := domain.NewSearchFilters()
				f.City = domain.CityAkanda
				return f
			},
			want: []string{"3", "7"},
		},
		{
			name: "neighborhoods are ORed",
			filters: func() domain.SearchFilters {
				f := domain.NewSearchFilters()
				f.Neighborhoods = []string{"Glass", "PK5"}
				return f
			},
			want: []string{"4", "6"},
		},
		{
			name: "types are ORed and ANDed with city",
			filters: func() domain.SearchFilters {
				f := domain.NewSearchFilters()
				f.City = domain.CityLibreville
				f.PropertyTypes = []domain.PropertyType{domain.TypeVilla, domain.TypeHouse}
				return f
			},
			want: []string{"5"},
		},
		{
			name: "bounded bracket",
			filters: func() domain.SearchFilters {
				f := domain.NewSearchFilters()
				require.NoError(t, f.SelectPriceRange(1))
				return f
			},
			want: []string{"2"},
		},
		{
			name: "unbounded top bracket",
			filters: func() domain.SearchFilters {
				f := domain.NewSearchFilters()
				require.NoError(t, f.SelectPriceRange(4))
				return f
			},
			want: []string{"3", "6", "7", "8"},
		},
		{
			name: "explicit unbounded ceiling alone filters nothing",
			filters: func() domain.SearchFilters {
				f := domain.NewSearchFilters()
				f.MaxPrice = domain.UnboundedCeiling()
				return f
			},
			want: []string{"1", "2", "3", "4", "5", "6", "7", "8"},
		},
		{
			name: "max price only",
			filters: func() domain.SearchFilters {
				f := domain.NewSearchFilters()
				f.MaxPrice = domain.CeilingAt(250000)
				return f
			},
			want: []string{"1", "2", "4"},
		},
		{
			name: "min price only",
			filters: func() domain.SearchFilters {
				f := domain.NewSearchFilters()
				f.MinPrice = int64Ptr(25000000)
				return f
			},
			want: []string{"7", "8"},
		},
		{
			name: "min rooms",
			filters: func() domain.SearchFilters {
				f := domain.NewSearchFilters()
				f.MinRooms = intPtr(4)
				return f
			},
			want: []string{"3", "5"},
		},
		{
			name: "min surface",
			filters: func() domain.SearchFilters {
				f := domain.NewSearchFilters()
				f.MinSurface = float64Ptr(120)
				return f
			},
			want: []string{"3", "5", "7", "8"},
		},
		{
			name: "query is accent and case insensitive",
			filters: func() domain.SearchFilters {
				f := domain.NewSearchFilters()
				f.Query = "ANGONDJE"
				return f
			},
			want: []string{"3", "7"},
		},
		{
			name: "query words must all match",
			filters: func() domain.SearchFilters {
				f := domain.NewSearchFilters()
				f.Query = "terrain pk12"
				return f
			},
			want: []string{"8"},
		},
		{
			name: "no match",
			filters: func() domain.SearchFilters {
				f := domain.NewSearchFilters()
				f.City = domain.CityOwendo
				return f
			},
			want: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := search.Filter(catalog, tt.filters())
			assert.Equal(t, tt.want, ids(got))
		})
	}
}

func TestFilter_LandRecordsHaveNoRooms(t *testing.T) {
	f := domain.NewSearchFilters()
	f.PropertyTypes = []domain.PropertyType{domain.TypeLand}
	for _, p := range search.Filter(memory.SampleProperties(), f) {
		assert.Zero(t, p.Rooms)
		assert.Zero(t, p.Bathrooms)
	}
}

func TestFilter_CityIsAlwaysHonoured(t *testing.T) {
	catalog := memory.SampleProperties()
	for _, city := range domain.Cities {
		f := domain.NewSearchFilters()
		require.NoError(t, f.SelectCity(city))
		for _, n := range domain.NeighborhoodsOf(city) {
			require.NoError(t, f.ToggleNeighborhood(n))
		}
		for _, p := range search.Filter(catalog, f) {
			assert.Equal(t, city, p.City)
		}
	}
}

func TestFilter_DoesNotAliasInput(t *testing.T) {
	catalog := memory.SampleProperties()
	out := search.Filter(catalog, domain.NewSearchFilters())
	out[0].Title = "changed"
	out[0].Images[0] = "changed"
	assert.Equal(t, "Appartement moderne à Akébé", catalog[0].Title)
	assert.NotEqual(t, "changed", catalog[0].Images[0])
}

func TestFilter_EmptyFiltersIsIdentity(t *testing.T) {
	catalog := memory.SampleProperties()
	if diff := cmp.Diff(catalog, search.Filter(catalog, domain.NewSearchFilters())); diff != "" {
		t.Errorf("empty filters changed the records (-want +got):\n%s", diff)
	}
}

func TestSort(t *testing.T) {
	catalog := memory.SampleProperties()

	assert.Equal(t, []string{"4", "2", "1", "5", "6", "3", "8", "7"}, ids(search.Sort(catalog, domain.SortPriceAsc)))
	assert.Equal(t, []string{"7", "8", "3", "6", "5", "1", "2", "4"}, ids(search.Sort(catalog, domain.SortPriceDesc)))
	assert.Equal(t, []string{"8", "7", "6", "5", "4", "3", "2", "1"}, ids(search.Sort(catalog, domain.SortDateDesc)))
	assert.Equal(t, []string{"1", "2", "3", "4", "5", "6", "7", "8"}, ids(catalog), "input untouched")
}

func TestSort_IsStable(t *testing.T) {
	catalog := memory.SampleProperties()
	catalog[1].Price = catalog[0].Price
	catalog[2].Price = catalog[0].Price

	got := ids(search.Sort(catalog[:3], domain.SortPriceAsc))
	assert.Equal(t, []string{"1", "2", "3"}, got)
	got = ids(search.Sort(catalog[:3], domain.SortPriceDesc))
	assert.Equal(t, []string{"1", "2", "3"}, got)
}

func TestFold(t *testing.T) {
	assert.Equal(t, "akebe ville", search.Fold("  Akébé Ville "))
	assert.Equal(t, search.Fold("CAP ESTÉRIAS"), search.Fold("cap esterias"))
}

func TestEngine_Search(t *testing.T) {
	engine := search.NewEngine(memory.NewSampleCatalog())
	f := domain.NewSearchFilters()
	f.City = domain.CityLibreville

	res, err := engine.Search(context.Background(), f, domain.SortPriceAsc)
	require.NoError(t, err)
	assert.Equal(t, 6, res.Total)
	assert.Equal(t, []string{"4", "2", "1", "5", "6", "8"}, ids(res.Properties))

	res, err = engine.Search(context.Background(), f, "")
	require.NoError(t, err)
	assert.Equal(t, domain.SortDateDesc, res.Sort)

	_, err = engine.Search(context.Background(), f, "rating")
	assert.ErrorIs(t, err, domain.ErrUnknownSortKey)
}

func TestEngine_SearchCatalogError(t *testing.T) {
	catalog := mocks.NewMockCatalog()
	boom := errors.New("db down")
	catalog.AllFunc = func(ctx context.Context) ([]domain.Property, error) { return nil, boom }

	_, err := search.NewEngine(catalog).Search(context.Background(), domain.NewSearchFilters(), domain.SortDateDesc)
	assert.ErrorIs(t, err, boom)
}

func TestSession(t *testing.T) {
	s, err := search.NewEngine(memory.NewSampleCatalog()).NewSession(context.Background())
	require.NoError(t, err)

	assert.Equal(t, domain.SortDateDesc, s.SortKey())
	assert.Equal(t, []string{"1", "2", "3", "4", "5", "6", "7", "8"}, ids(s.Results()), "initial results keep catalog order")

	require.NoError(t, s.Filters().SelectCity(domain.CityLibreville))
	assert.Len(t, s.Results(), 8, "draft changes wait for Apply")

	got := s.Apply()
	assert.Equal(t, []string{"8", "6", "5", "4", "2", "1"}, ids(got))

	sorted, err := s.ChangeSort(domain.SortPriceAsc)
	require.NoError(t, err)
	assert.Equal(t, []string{"4", "2", "1", "5", "6", "8"}, ids(sorted))

	// a draft change is not picked up by a sort change
	require.NoError(t, s.Filters().TogglePropertyType(domain.TypeLand))
	sorted, err = s.ChangeSort(domain.SortPriceDesc)
	require.NoError(t, err)
	assert.Equal(t, []string{"8", "6", "5", "1", "2", "4"}, ids(sorted))

	_, err = s.ChangeSort("rating")
	assert.ErrorIs(t, err, domain.ErrUnknownSortKey)

	reset := s.Reset()
	assert.Equal(t, []string{"1", "2", "3", "4", "5", "6", "7", "8"}, ids(reset))
	assert.True(t, s.Filters().IsEmpty())
}
