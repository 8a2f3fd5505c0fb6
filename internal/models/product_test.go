package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
)

func strPtr(s string) *string     { return &s }
func floatPtr(f float64) *float64 { return &f }
func boolPtr(b bool) *bool        { return &b }

func TestProductInputDefaults(t *testing.T) {
	in := ProductInput{
		Title:    strPtr("Mug"),
		Price:    floatPtr(9.5),
		Category: strPtr("Custom"),
	}

	p := in.ToProduct()

	assert.Equal(t, "Mug", p.Title)
	assert.Equal(t, 9.5, p.Price)
	assert.Equal(t, "Custom", p.Category)
	assert.Equal(t, []string{}, p.Materials)
	assert.Equal(t, []string{}, p.Techniques)
	assert.Equal(t, []string{}, p.Images)
	assert.True(t, p.Customizable)
	assert.False(t, p.Featured)
	assert.True(t, p.InStock)
}

func TestProductInputExplicitValues(t *testing.T) {
	in := ProductInput{
		Title:        strPtr("Board"),
		Description:  strPtr("Oak serving board"),
		Price:        floatPtr(24),
		Category:     strPtr("Wood"),
		Materials:    []string{"oak"},
		Techniques:   []string{"laser cut"},
		Images:       []string{"https://example.com/board.jpg"},
		Customizable: boolPtr(false),
		Featured:     boolPtr(true),
		InStock:      boolPtr(false),
	}

	p := in.ToProduct()

	assert.Equal(t, "Oak serving board", p.Description)
	assert.Equal(t, []string{"oak"}, p.Materials)
	assert.False(t, p.Customizable)
	assert.True(t, p.Featured)
	assert.False(t, p.InStock)
}

func TestProductFromDocumentDefaults(t *testing.T) {
	p := ProductFromDocument(bson.M{"title": "Old item"})

	assert.Equal(t, "Old item", p.Title)
	assert.Equal(t, "", p.Description)
	assert.Equal(t, 0.0, p.Price)
	assert.Equal(t, "Custom", p.Category)
	assert.Equal(t, []string{}, p.Materials)
	assert.Equal(t, []string{}, p.Techniques)
	assert.Equal(t, []string{}, p.Images)
	assert.True(t, p.Customizable)
	assert.False(t, p.Featured)
	assert.True(t, p.InStock)
}

func TestProductFromDocumentFull(t *testing.T) {
	doc := bson.M{
		"title":        "Keychain",
		"description":  "Engraved acrylic keychain",
		"price":        4.5,
		"category":     "Acrylic",
		"materials":    bson.A{"acrylic"},
		"techniques":   bson.A{"engraving"},
		"images":       bson.A{"https://example.com/k.jpg"},
		"customizable": false,
		"featured":     true,
		"in_stock":     false,
	}

	p := ProductFromDocument(doc)

	assert.Equal(t, "Keychain", p.Title)
	assert.Equal(t, 4.5, p.Price)
	assert.Equal(t, "Acrylic", p.Category)
	assert.Equal(t, []string{"acrylic"}, p.Materials)
	assert.Equal(t, []string{"engraving"}, p.Techniques)
	assert.False(t, p.Customizable)
	assert.True(t, p.Featured)
	assert.False(t, p.InStock)
}

func TestProductFromDocumentNumericKinds(t *testing.T) {
	// Price may come back as any BSON numeric kind depending on the writer.
	cases := []struct {
		name string
		val  interface{}
		want float64
	}{
		{"double", 12.5, 12.5},
		{"int32", int32(12), 12},
		{"int64", int64(12), 12},
		{"wrong type", "12", 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := ProductFromDocument(bson.M{"price": tc.val})
			assert.Equal(t, tc.want, p.Price)
		})
	}
}

func TestProductFromDocumentSkipsNonStringListEntries(t *testing.T) {
	p := ProductFromDocument(bson.M{"materials": bson.A{"wood", int32(3), "resin"}})
	assert.Equal(t, []string{"wood", "resin"}, p.Materials)
}
