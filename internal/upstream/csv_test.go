package upstream

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCSV(t *testing.T) {
	t.Run("Quoted comma stays one field", func(t *testing.T) {
		input := `id,name,capital
1,"Bolivia, Plurinational State of",Sucre
2,Chile,Santiago`

		records, err := ParseCSV(strings.NewReader(input))
		require.NoError(t, err)
		require.Len(t, records, 2)

		assert.Equal(t, "Bolivia, Plurinational State of", records[0].Str("name"))
		assert.Equal(t, "Sucre", records[0].Str("capital"))
		assert.Equal(t, "Chile", records[1].Str("name"))
	})

	t.Run("Fields are trimmed", func(t *testing.T) {
		input := "id,name\n1,  Andorra  "

		records, err := ParseCSV(strings.NewReader(input))
		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, "Andorra", records[0].Str("name"))
	})

	t.Run("Rows without id are discarded", func(t *testing.T) {
		input := "id,name\n,Nowhere\n2,Chile\n"

		records, err := ParseCSV(strings.NewReader(input))
		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, 2, records[0].Int("id"))
	})

	t.Run("Short rows pad missing columns", func(t *testing.T) {
		input := "id,name,capital\n1,Andorra"

		records, err := ParseCSV(strings.NewReader(input))
		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, "", records[0].Str("capital"))
	})

	t.Run("Blank lines and CRLF endings", func(t *testing.T) {
		input := "id,name\r\n\r\n1,Andorra\r\n"

		records, err := ParseCSV(strings.NewReader(input))
		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, "Andorra", records[0].Str("name"))
	})

	t.Run("BOM on header is ignored", func(t *testing.T) {
		input := "\uFEFFid,name\n1,Andorra\n"

		records, err := ParseCSV(strings.NewReader(input))
		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, 1, records[0].Int("id"))
	})
}

func TestSplitLine(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		expected []string
	}{
		{
			name:     "plain fields",
			line:     "1,Andorra,Andorra la Vella",
			expected: []string{"1", "Andorra", "Andorra la Vella"},
		},
		{
			name:     "quoted span with comma",
			line:     `7,"Virgin Islands, British",Road Town`,
			expected: []string{"7", "Virgin Islands, British", "Road Town"},
		},
		{
			name:     "bare quote toggles region",
			line:     `1,Ta" iz,unquoted`,
			expected: []string{"1", "Ta iz,unquoted"},
		},
		{
			name:     "trailing empty field",
			line:     "1,Andorra,",
			expected: []string{"1", "Andorra", ""},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, splitLine(tt.line))
		})
	}
}

func TestRecordCoercion(t *testing.T) {
	r := Record{
		"id":        "42",
		"bad_id":    "abc",
		"latitude":  "42.5462",
		"longitude": "",
		"name":      " Andorra ",
	}

	assert.Equal(t, 42, r.Int("id"))
	assert.Equal(t, 0, r.Int("bad_id"))
	assert.Equal(t, 0, r.Int("missing"))

	require.NotNil(t, r.Float("latitude"))
	assert.InDelta(t, 42.5462, *r.Float("latitude"), 0.0001)
	assert.Nil(t, r.Float("longitude"))
	assert.Nil(t, r.Float("missing"))

	assert.Equal(t, "Andorra", r.Str("name"))
}
