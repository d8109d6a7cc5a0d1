package schemagen

import (
	"testing"

	"github.com/goccy/go-json"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func generateDocument(t *testing.T, p Params) map[string]any {
	out, err := Generate(p)
	assert.Nil(t, err)

	var doc map[string]any
	assert.Nil(t, json.Unmarshal([]byte(out), &doc))
	return doc
}

func TestGenerateTwoExamples(t *testing.T) {
	doc := generateDocument(t, Params{
		Input: `{"foo": true, "bar": "xxx"}
			{"foo": false, "bar": null, "baz": 5}`,
	})

	want := map[string]any{
		"properties": map[string]any{
			"foo": map[string]any{"type": "boolean"},
			"bar": map[string]any{"type": "string", "nullable": true},
		},
		"optionalProperties": map[string]any{
			"baz": map[string]any{"type": "uint8"},
		},
	}
	assert.Empty(t, cmp.Diff(want, doc))
}

func TestGenerateEnumHintPointer(t *testing.T) {
	doc := generateDocument(t, Params{
		Input:     `{"color":"red"} {"color":"blue"}`,
		EnumHints: []string{"/color"},
	})

	props := doc["properties"].(map[string]any)
	color := props["color"].(map[string]any)
	assert.Equal(t, []any{"blue", "red"}, color["enum"])
}

func TestGenerateEscapedPointer(t *testing.T) {
	// /a~1b addresses the literal key "a/b", /m~0n the key "m~n"
	doc := generateDocument(t, Params{
		Input:     `{"a/b":"x"} {"m~n":"y"} {"a/b":"z","m~n":"y"}`,
		EnumHints: []string{"/a~1b", "/m~0n"},
	})

	opt := doc["optionalProperties"].(map[string]any)
	ab := opt["a/b"].(map[string]any)
	mn := opt["m~n"].(map[string]any)
	assert.Equal(t, []any{"x", "z"}, ab["enum"])
	assert.Equal(t, []any{"y"}, mn["enum"])
}

func TestGenerateDiscriminatorHint(t *testing.T) {
	doc := generateDocument(t, Params{
		Input:              `{"kind":"a","x":1} {"kind":"b","y":true}`,
		DiscriminatorHints: []string{"/kind"},
	})

	assert.Equal(t, "kind", doc["discriminator"])
	mapping := doc["mapping"].(map[string]any)
	assert.Contains(t, mapping, "a")
	assert.Contains(t, mapping, "b")
}

func TestGenerateValuesHintAtRoot(t *testing.T) {
	doc := generateDocument(t, Params{
		Input:       `{"a": 1, "b": 300}`,
		ValuesHints: []string{""},
	})

	values := doc["values"].(map[string]any)
	assert.Equal(t, "uint16", values["type"])
}

func TestGenerateDefaultNumberType(t *testing.T) {
	doc := generateDocument(t, Params{
		Input:             `5`,
		DefaultNumberType: "float64",
	})
	assert.Equal(t, "float64", doc["type"])
}

func TestGenerateUnknownNumberType(t *testing.T) {
	_, err := Generate(Params{Input: `5`, DefaultNumberType: "double"})
	assert.NotNil(t, err)
}

func TestGenerateMalformedInput(t *testing.T) {
	_, err := Generate(Params{Input: `{"a": 1} {"b": `})
	assert.NotNil(t, err)
}

func TestGenerateEmptyInput(t *testing.T) {
	out, err := Generate(Params{Input: ""})
	assert.Nil(t, err)
	assert.Equal(t, "{}", out)
}
