package textutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFold(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Violín", "violín"},
		{"  PIANO ", "piano"},
		{"Violi\u0301n", "violín"},
		{"SAXOFÓN", "saxofón"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Fold(tt.in), "Fold(%q)", tt.in)
	}
}

func TestEqualFold(t *testing.T) {
	assert.True(t, EqualFold("Percusión", "percusión"))
	assert.True(t, EqualFold("Violi\u0301n", "VIOLÍN"))
	assert.False(t, EqualFold("Flauta", "Frauta"))
}

func TestContainsFold(t *testing.T) {
	assert.True(t, ContainsFold("¿Cómo subo un recurso?", "cómo subo un recurso"))
	assert.True(t, ContainsFold("partitura_FIRMA.pdf", "firma"))
	assert.False(t, ContainsFold("partitura.pdf", "firma"))
}
