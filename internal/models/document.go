package models

import "go.mongodb.org/mongo-driver/bson"

// Lookup-with-default helpers for mapping raw documents to entities.
// They never coerce across types: a field of the wrong type counts as absent.

func docString(doc bson.M, key, fallback string) string {
	if v, ok := doc[key].(string); ok {
		return v
	}
	return fallback
}

func docFloat(doc bson.M, key string, fallback float64) float64 {
	// BSON stores numbers as double, int32 or int64 depending on the writer.
	switch v := doc[key].(type) {
	case float64:
		return v
	case int32:
		return float64(v)
	case int64:
		return float64(v)
	}
	return fallback
}

func docBool(doc bson.M, key string, fallback bool) bool {
	if v, ok := doc[key].(bool); ok {
		return v
	}
	return fallback
}

func docStringSlice(doc bson.M, key string) []string {
	out := make([]string, 0)
	switch v := doc[key].(type) {
	case []string:
		out = append(out, v...)
	case bson.A:
		for _, e := range v {
			if s, ok := e.(string); ok {
				out = append(out, s)
			}
		}
	}
	return out
}

// Pointer-dereference helpers for resolving input defaults.

func strValue(p *string) string {
	if p != nil {
		return *p
	}
	return ""
}

func floatValue(p *float64) float64 {
	if p != nil {
		return *p
	}
	return 0
}

func boolValue(p *bool, fallback bool) bool {
	if p != nil {
		return *p
	}
	return fallback
}

func sliceValue(s []string) []string {
	if s != nil {
		return s
	}
	return []string{}
}
