package terms

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreAddAndGetAll(t *testing.T) {
	store := NewStore()
	store.Add("Quote", "Tilbud", "da-DK")

	records := store.GetAll("Quote", "da-DK")
	require.Len(t, records, 1)
	assert.Equal(t, "Tilbud", records[0].Text)
	assert.True(t, records[0].IsDefault())
	assert.Equal(t, DefaultWeight, records[0].Weight)

	// Lookup is keyed on the normalized term.
	assert.Len(t, store.GetAll("  quote ", "da-DK"), 1)
	assert.Nil(t, store.GetAll("Quote", "nl-BE"))
	assert.Nil(t, store.GetAll("Order", "da-DK"))
}

func TestStoreReplacesDefaultRecord(t *testing.T) {
	store := NewStore()
	store.Add("Quote", "Tilbud", "da-DK")
	store.Add("Quote", "Tilbud2", "da-DK")

	records := store.GetAll("Quote", "da-DK")
	require.Len(t, records, 1, "context-less add must replace, not duplicate")
	assert.Equal(t, "Tilbud2", records[0].Text)
}

func TestStoreReplacesSameContextOnly(t *testing.T) {
	store := NewStore()
	store.AddWeighted("Customer", "Kunde", "da-DK", "Sales", 1.0)
	store.AddWeighted("Customer", "Debitor", "da-DK", "Finance", 1.0)
	store.AddWeighted("Customer", "Kunde2", "da-DK", "Sales", 1.2)
	store.Add("Customer", "Klient", "da-DK")

	records := store.GetAll("Customer", "da-DK")
	require.Len(t, records, 3)

	byContext := make(map[string]TranslationRecord)
	for _, rec := range records {
		byContext[rec.Context] = rec
	}
	assert.Equal(t, "Kunde2", byContext["Sales"].Text)
	assert.Equal(t, 1.2, byContext["Sales"].Weight)
	assert.Equal(t, "Debitor", byContext["Finance"].Text)
	assert.Equal(t, "Klient", byContext[""].Text)
}

func TestStoreLanguagesAndTermsOrder(t *testing.T) {
	store := NewStore()
	store.Add("Quote", "Tilbud", "da-DK")
	store.Add("Posted", "Bogført", "da-DK")
	store.Add("Quote", "Offerte", "nl-BE")
	store.Add("Quote", "Tilbud2", "da-DK") // replace, not a new term

	assert.Equal(t, []string{"da-DK", "nl-BE"}, store.Languages())
	assert.Equal(t, []string{"quote", "posted"}, store.Terms("da-DK"))
	assert.Equal(t, []string{"quote"}, store.Terms("nl-BE"))
	assert.Equal(t, 2, store.Len("da-DK"))
	assert.Equal(t, 0, store.Len("xx"))
	assert.Nil(t, store.Terms("xx"))
}

func TestStoreGetAllReturnsCopy(t *testing.T) {
	store := NewStore()
	store.Add("Quote", "Tilbud", "da-DK")

	records := store.GetAll("Quote", "da-DK")
	records[0].Text = "mutated"

	fresh := store.GetAll("Quote", "da-DK")
	assert.Equal(t, "Tilbud", fresh[0].Text)
}
