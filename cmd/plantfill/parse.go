package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/raingarden/plantfill"
)

// Run executes the parse command.
func (c *ParseCmd) Run(deps *Dependencies) error {
	isURL := strings.HasPrefix(c.Target, "http://") || strings.HasPrefix(c.Target, "https://")

	var html string
	if isURL {
		if deps.Fetcher == nil {
			err := plantfill.Errorf(plantfill.EINTERNAL, "no fetcher configured")
			fmt.Fprintf(deps.Stderr, "error: %s\n", plantfill.ErrorMessage(err))
			return err
		}
		var err error
		if html, err = deps.Fetcher.Fetch(deps.Ctx, c.Target); err != nil {
			fmt.Fprintf(deps.Stderr, "error: %v\n", err)
			return err
		}
	} else {
		data, err := os.ReadFile(c.Target)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %v\n", err)
			return err
		}
		html = string(data)
	}

	parser, err := c.parser(deps, html, isURL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", plantfill.ErrorMessage(err))
		return err
	}

	rec, err := parser.Parse(html)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %v\n", err)
		return err
	}

	src := parser.Source()
	fmt.Fprintf(deps.Stdout, "Source: %s\n", src.Name())
	if len(rec) == 0 {
		fmt.Fprintln(deps.Stdout, "No fields found.")
		return nil
	}
	for _, f := range src.Fields() {
		if v, ok := rec[f]; ok {
			fmt.Fprintf(deps.Stdout, "%s: %s\n", f, v)
		}
	}
	return nil
}

// parser picks the site parser named by --source, or detects it from the
// URL or the page itself.
func (c *ParseCmd) parser(deps *Dependencies, html string, isURL bool) (plantfill.SiteParser, error) {
	if c.Source != "" && c.Source != "auto" {
		src, err := plantfill.ParseSource(c.Source)
		if err != nil {
			return nil, err
		}
		if p := deps.Parsers.Get(src); p != nil {
			return p, nil
		}
		return nil, plantfill.Errorf(plantfill.ENOTFOUND, "no parser for %s", src.Name())
	}

	if isURL {
		if src, ok := plantfill.SourceForURL(c.Target); ok {
			if p := deps.Parsers.Get(src); p != nil {
				return p, nil
			}
		}
	}
	if deps.Detect != nil {
		if p := deps.Detect(html); p != nil {
			return p, nil
		}
	}
	return nil, plantfill.Errorf(plantfill.ENOTFOUND, "cannot tell which site published %s; pass --source", c.Target)
}
