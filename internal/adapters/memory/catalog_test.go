package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ndjimba/internal/core/domain"
)

func TestSampleCatalog(t *testing.T) {
	c := NewSampleCatalog()
	require.Equal(t, 8, c.Len())

	all, err := c.All(context.Background())
	require.NoError(t, err)
	for i, p := range all {
		assert.Equal(t, string(rune('1'+i)), p.ID, "catalog order")
		assert.NoError(t, p.Validate())
	}
}

func TestCatalog_AllReturnsCopies(t *testing.T) {
	c := NewSampleCatalog()
	all, err := c.All(context.Background())
	require.NoError(t, err)
	all[0].Title = "changed"
	all[0].Images[0] = "changed"

	again, err := c.All(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Appartement moderne à Akébé", again[0].Title)
	assert.NotEqual(t, "changed", again[0].Images[0])
}

func TestCatalog_FindByID(t *testing.T) {
	c := NewSampleCatalog()

	p, err := c.FindByID(context.Background(), "3")
	require.NoError(t, err)
	assert.Equal(t, "Villa spacieuse à Angondjé", p.Title)

	_, err = c.FindByID(context.Background(), "42")
	assert.ErrorIs(t, err, domain.ErrPropertyNotFound)
}

func TestNewCatalog_Rejects(t *testing.T) {
	records := SampleProperties()
	records[1].ID = records[0].ID
	_, err := NewCatalog(records)
	assert.ErrorIs(t, err, domain.ErrInvalidProperty)

	records = SampleProperties()
	records[0].Neighborhood = "Okala"
	_, err = NewCatalog(records)
	assert.ErrorIs(t, err, domain.ErrInvalidProperty)
}

func TestCatalog_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewSampleCatalog().All(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
