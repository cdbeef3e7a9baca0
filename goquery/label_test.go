package goquery_test

import "github.com/raingarden/plantfill/normalize"

func plantfillConditions(extra map[string]string) normalize.Conditions {
	return normalize.NewConditions(extra)
}
