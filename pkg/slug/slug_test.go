// Copyright (c) 2026 Vow Directory. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package slug_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/vowdirectory/pkg/slug"
)

func TestFrom(t *testing.T) {
	tests := map[string]string{
		"Nice Print Photography":   "nice-print-photography",
		"  Café & Crème Catering ": "cafe-creme-catering",
		"Bridal---Styling!!":       "bridal-styling",
		"Venue 360":                "venue-360",
	}

	for in, want := range tests {
		assert.Equal(t, want, slug.From(in), in)
	}
}

func TestFrom_DropsLettersWithoutASCIIBase(t *testing.T) {
	assert.Equal(t, "chateau-de-la-colline", slug.From("Château de la Colline"))
	assert.Equal(t, "mega-studio", slug.From("Ωmega Studio"))
	assert.Equal(t, "", slug.From("  ---  "))
}

func TestValid(t *testing.T) {
	tests := []struct {
		slug  string
		valid bool
	}{
		{"lumiere-studio", true},
		{"venue360", true},
		{"Lumiere", false},
		{"-lead", false},
		{"trail-", false},
		{"a--b", false},
		{"café", false},
		{"", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.valid, slug.Valid(tt.slug), tt.slug)
	}

	for _, name := range []string{"Nice Print Photography", "Baie des Anges Films", "Maison Saveurs"} {
		assert.True(t, slug.Valid(slug.From(name)), name)
	}
}
