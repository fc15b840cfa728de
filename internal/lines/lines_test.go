package lines_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pkordes/torquehub/internal/lines"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"blank line dropped and trimmed", "a\n\nb \n c\n", []string{"a", "b", "c"}},
		{"crlf", "Tomei exhaust\r\nGreddy turbo\r\n", []string{"Tomei exhaust", "Greddy turbo"}},
		{"mixed endings", "one\r\ntwo\nthree", []string{"one", "two", "three"}},
		{"single entry", "IG: @miarunsboost", []string{"IG: @miarunsboost"}},
		{"whitespace only", "  \n\t\n", []string{}},
		{"empty", "", []string{}},
		{"duplicates kept", "@a\n@a", []string{"@a", "@a"}},
		{"inner spaces kept", "  Bride Zeta III seats  ", []string{"Bride Zeta III seats"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, lines.Parse(tt.in))
		})
	}
}

func TestParse_NeverNil(t *testing.T) {
	assert.NotNil(t, lines.Parse(""))
}

func TestParse_Idempotent(t *testing.T) {
	inputs := []string{
		"a\n\nb \n c\n",
		"\r\n x \r\n\r\ny",
		"Carbon fairing kit\nOhlins steering damper\nFlashTune ECU",
	}
	for _, in := range inputs {
		first := lines.Parse(in)
		assert.Equal(t, first, lines.Parse(lines.Join(first)), in)
	}
}
