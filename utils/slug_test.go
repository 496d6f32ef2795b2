package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Miel de Abeja", "miel-de-abeja"},
		{"Café Orgánico", "cafe-organico"},
		{"Niño & Niña", "nino-nina"},
		{"  --Hello,  World!--  ", "hello-world"},
		{"UPPER case 123", "upper-case-123"},
		{"", ""},
		{"---", ""},
		{"ação", "ac-o"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, Slugify(c.in), "Slugify(%q)", c.in)
	}
}

func TestTitle(t *testing.T) {
	assert.Equal(t, "Aceite De Oliva", Title("aceite de oliva"))
	assert.Equal(t, "Miel", Title("MIEL"))
	assert.Equal(t, "Two Spaces", Title("two  spaces"))
	assert.Equal(t, "", Title(""))
}
