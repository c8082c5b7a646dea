package catalogfile

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ndjimba/internal/adapters/memory"
	"ndjimba/internal/core/domain"
)

func TestEncodeParseRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, memory.SampleProperties()))

	records, err := Parse(buf.Bytes())
	require.NoError(t, err)
	assert.Equal(t, memory.SampleProperties(), records)
}

func TestLoad(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, memory.SampleProperties()))
	path := filepath.Join(t.TempDir(), "catalog.json")
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o600))

	catalog, err := Load(path)
	require.NoError(t, err)
	p, err := catalog.FindByID(context.Background(), "7")
	require.NoError(t, err)
	assert.Equal(t, domain.TypeLand, p.Type)

	_, err = Load(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestParse_RejectsInvalidRecords(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(p *domain.Property)
	}{
		{name: "cross-city neighborhood", mutate: func(p *domain.Property) { p.Neighborhood = "Barracuda" }},
		{name: "land with rooms", mutate: func(p *domain.Property) { p.Type = domain.TypeLand }},
		{name: "unknown type", mutate: func(p *domain.Property) { p.Type = "castle" }},
		{name: "no images", mutate: func(p *domain.Property) { p.Images = []string{} }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			records := memory.SampleProperties()
			tt.mutate(&records[0])
			var buf bytes.Buffer
			require.NoError(t, Encode(&buf, records))

			_, err := Parse(buf.Bytes())
			assert.ErrorIs(t, err, domain.ErrInvalidProperty)
		})
	}
}
