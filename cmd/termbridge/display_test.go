package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/standardbeagle/termbridge/internal/terms"
)

func TestCollectStats(t *testing.T) {
	store := terms.NewStore()
	store.Add("Quote", "Tilbud", "da-DK")
	store.AddWeighted("Customer", "Kunde", "da-DK", "Sales", 1.0)
	store.AddWeighted("Customer", "Debitor", "da-DK", "Finance", 1.5)
	store.Add("Customer", "Klient", "da-DK")
	store.Add("Quote", "Offerte", "nl-BE")

	stats := collectStats(store)
	require.Len(t, stats, 2)

	da := stats[0]
	assert.Equal(t, "da-DK", da.language)
	assert.Equal(t, 2, da.terms)
	assert.Equal(t, 4, da.records)
	assert.Equal(t, 2, da.defaults)
	assert.Equal(t, 2, da.contexted)

	nl := stats[1]
	assert.Equal(t, "nl-BE", nl.language)
	assert.Equal(t, 1, nl.terms)
	assert.Equal(t, 1, nl.records)
	assert.Equal(t, 1, nl.defaults)
	assert.Equal(t, 0, nl.contexted)
}

func TestCollectStatsEmptyStore(t *testing.T) {
	assert.Empty(t, collectStats(terms.NewStore()))
}
