package models

import "go.mongodb.org/mongo-driver/bson"

// Product represents a catalog item as stored and as returned by the API.
type Product struct {
	Title        string   `json:"title" bson:"title"`
	Description  string   `json:"description,omitempty" bson:"description,omitempty"`
	Price        float64  `json:"price" bson:"price"`
	Category     string   `json:"category" bson:"category"`
	Materials    []string `json:"materials" bson:"materials"`
	Techniques   []string `json:"techniques" bson:"techniques"`
	Images       []string `json:"images" bson:"images"`
	Customizable bool     `json:"customizable" bson:"customizable"`
	Featured     bool     `json:"featured" bson:"featured"`
	InStock      bool     `json:"in_stock" bson:"in_stock"`
}

// ProductInput is the create-request body. Pointer fields distinguish
// "absent" from "present but zero", so defaults only fill in when a field
// is actually missing from the request.
type ProductInput struct {
	Title        *string  `json:"title" binding:"required"`
	Description  *string  `json:"description"`
	Price        *float64 `json:"price" binding:"required,gte=0"`
	Category     *string  `json:"category" binding:"required"`
	Materials    []string `json:"materials"`
	Techniques   []string `json:"techniques"`
	Images       []string `json:"images"`
	Customizable *bool    `json:"customizable"`
	Featured     *bool    `json:"featured"`
	InStock      *bool    `json:"in_stock"`
}

// ToProduct resolves defaults and returns the entity to persist.
func (in *ProductInput) ToProduct() Product {
	return Product{
		Title:        strValue(in.Title),
		Description:  strValue(in.Description),
		Price:        floatValue(in.Price),
		Category:     strValue(in.Category),
		Materials:    sliceValue(in.Materials),
		Techniques:   sliceValue(in.Techniques),
		Images:       sliceValue(in.Images),
		Customizable: boolValue(in.Customizable, true),
		Featured:     boolValue(in.Featured, false),
		InStock:      boolValue(in.InStock, true),
	}
}

// ProductFromDocument maps a raw document to a Product field by field,
// back-filling defaults for anything the document is missing. Documents
// written by older clients may lack fields; a read never fails over that.
func ProductFromDocument(doc bson.M) Product {
	return Product{
		Title:        docString(doc, "title", ""),
		Description:  docString(doc, "description", ""),
		Price:        docFloat(doc, "price", 0),
		Category:     docString(doc, "category", "Custom"),
		Materials:    docStringSlice(doc, "materials"),
		Techniques:   docStringSlice(doc, "techniques"),
		Images:       docStringSlice(doc, "images"),
		Customizable: docBool(doc, "customizable", true),
		Featured:     docBool(doc, "featured", false),
		InStock:      docBool(doc, "in_stock", true),
	}
}
