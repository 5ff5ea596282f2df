package main

import (
	"context"
	"fmt"
	"strings"
)

// PriceCmd prints the current gold price for a country.
type PriceCmd struct {
	Country []string `arg:"" optional:"" help:"Country to quote (default USA)"`
}

func (p *PriceCmd) Run(cli *CLI) error {
	application, err := buildApp(cli)
	if err != nil {
		return err
	}
	defer application.Close()

	country := strings.Join(p.Country, " ")
	if country == "" {
		country = "usa"
	}

	quote := application.price.Lookup(context.Background(), country)

	fmt.Printf("Gold price for %s: %.2f %s per troy ounce (%s, %s)\n",
		quote.Country, quote.Price, quote.Currency, quote.Source, quote.Timestamp)
	return nil
}
