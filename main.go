package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/siegeai/jtdinfer/schemagen"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	var enumHints, valuesHints, discriminatorHints pointerList
	flag.Var(&enumHints, "enum-hint", "JSON Pointer to a string position to infer as an enum, repeatable")
	flag.Var(&valuesHints, "values-hint", "JSON Pointer to an object to infer as a free-form map, repeatable")
	flag.Var(&discriminatorHints, "discriminator-hint", "JSON Pointer to the tag property of a discriminated union, repeatable")
	defaultNumberType := flag.String("default-number-type", "uint8", "numeric type for the first number seen at a position")
	format := flag.String("format", "json", "output format, json or yaml")
	flag.Parse()

	input, err := readInput(flag.Arg(0))
	if err != nil {
		return err
	}

	out, err := schemagen.Generate(schemagen.Params{
		Input:              input,
		EnumHints:          enumHints,
		ValuesHints:        valuesHints,
		DiscriminatorHints: discriminatorHints,
		DefaultNumberType:  *defaultNumberType,
	})
	if err != nil {
		return err
	}

	switch *format {
	case "json":
		fmt.Println(out)
	case "yaml":
		var doc map[string]interface{}
		if err := json.Unmarshal([]byte(out), &doc); err != nil {
			return err
		}
		bs, err := yaml.Marshal(doc)
		if err != nil {
			return err
		}
		fmt.Print(string(bs))
	default:
		return fmt.Errorf("unknown format %q", *format)
	}

	return nil
}

func readInput(name string) (string, error) {
	if name == "" || name == "-" {
		bs, err := io.ReadAll(os.Stdin)
		return string(bs), err
	}
	bs, err := os.ReadFile(name)
	return string(bs), err
}

type pointerList []string

func (p *pointerList) String() string {
	return strings.Join(*p, ",")
}

func (p *pointerList) Set(v string) error {
	*p = append(*p, v)
	return nil
}
