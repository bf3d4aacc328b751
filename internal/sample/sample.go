// Package sample provides a small document for trying out the tool.
package sample

import (
	"github.com/mcncl/jsonsmith/internal/formatter"
	"github.com/mcncl/jsonsmith/internal/models"
)

// Value returns the sample document.
func Value() models.Value {
	return models.Object{
		{Key: "name", Value: models.String("JSON Formatter")},
		{Key: "version", Value: models.String("1.0.0")},
		{Key: "description", Value: models.String("A powerful tool for formatting, validating, and beautifying JSON data")},
		{Key: "features", Value: models.Array{
			models.String("Format & Beautify"),
			models.String("Validate & Debug"),
			models.String("Minify"),
			models.String("Tree View"),
			models.String("Dark Mode"),
		}},
		{Key: "settings", Value: models.Object{
			{Key: "theme", Value: models.String("dark")},
			{Key: "fontSize", Value: models.Number(14)},
			{Key: "autoFormat", Value: models.Bool(true)},
		}},
		{Key: "stats", Value: models.Object{
			{Key: "users", Value: models.Number(10000)},
			{Key: "requests", Value: models.Number(1500000)},
			{Key: "uptime", Value: models.Number(99.9)},
		}},
		{Key: "active", Value: models.Bool(true)},
		{Key: "metadata", Value: models.Null{}},
	}
}

// JSON returns the sample document with two-space indentation.
func JSON() string {
	return formatter.Encode(Value(), formatter.DefaultIndent)
}
