// Package schemagen is the process boundary around the inference
// engine: it takes raw input text plus hint configuration and returns
// the inferred schema as JSON text.
package schemagen

import (
	"fmt"

	"github.com/go-openapi/jsonpointer"
	"github.com/goccy/go-json"
	"github.com/valyala/fastjson"

	"github.com/siegeai/jtdinfer/infer"
)

// Params carries everything one inference run needs: the input text (a
// stream of whitespace-separated JSON values), the three hint path
// lists as RFC 6901 JSON Pointers, and the name of the default numeric
// type. An empty DefaultNumberType means uint8.
type Params struct {
	Input              string   `json:"input"`
	EnumHints          []string `json:"enumHints"`
	ValuesHints        []string `json:"valuesHints"`
	DiscriminatorHints []string `json:"discriminatorHints"`
	DefaultNumberType  string   `json:"defaultNumberType"`
}

// Generate folds every JSON value in the input into one inference and
// returns the resulting schema document as JSON text. Either every
// value is incorporated or an error is returned with no partial schema.
func Generate(p Params) (string, error) {
	hints, err := buildHints(p)
	if err != nil {
		return "", err
	}

	inf := infer.NewInferrer(hints)

	var sc fastjson.Scanner
	sc.Init(p.Input)
	for sc.Next() {
		inf.Infer(sc.Value())
	}
	if err := sc.Error(); err != nil {
		return "", fmt.Errorf("decode input: %w", err)
	}

	bs, err := json.Marshal(inf.Schema())
	if err != nil {
		return "", err
	}
	return string(bs), nil
}

func buildHints(p Params) (*infer.Hints, error) {
	def := infer.Uint8
	if p.DefaultNumberType != "" {
		var err error
		def, err = infer.ParseNumType(p.DefaultNumberType)
		if err != nil {
			return nil, err
		}
	}

	enums, err := parsePointers(p.EnumHints)
	if err != nil {
		return nil, err
	}
	values, err := parsePointers(p.ValuesHints)
	if err != nil {
		return nil, err
	}
	discriminators, err := parsePointers(p.DiscriminatorHints)
	if err != nil {
		return nil, err
	}

	return &infer.Hints{
		DefaultNumType: def,
		Enums:          enums,
		Values:         values,
		Discriminators: discriminators,
	}, nil
}

func parsePointers(ss []string) (infer.HintSet, error) {
	hs := make(infer.HintSet, 0, len(ss))
	for _, s := range ss {
		ptr, err := jsonpointer.New(s)
		if err != nil {
			return nil, fmt.Errorf("parse hint %q: %w", s, err)
		}
		hs = append(hs, ptr.DecodedTokens())
	}
	return hs, nil
}
