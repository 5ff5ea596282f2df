package schema

import (
	jsonschema "github.com/swaggest/jsonschema-go"
)

// CreateStringSchema creates a JSON schema for a string field
func CreateStringSchema(description string) *jsonschema.Schema {
	strType := jsonschema.SimpleType("string")
	return &jsonschema.Schema{
		Type:        &jsonschema.Type{SimpleTypes: &strType},
		Description: &description,
	}
}

// CreateNumberSchema creates a JSON schema for a numeric field
func CreateNumberSchema(description string) *jsonschema.Schema {
	numType := jsonschema.SimpleType("number")
	return &jsonschema.Schema{
		Type:        &jsonschema.Type{SimpleTypes: &numType},
		Description: &description,
	}
}

// CreateArraySchema creates a JSON schema for an array whose items follow the
// given schema.
func CreateArraySchema(description string, items *jsonschema.Schema) *jsonschema.Schema {
	arrType := jsonschema.SimpleType("array")
	return &jsonschema.Schema{
		Type:        &jsonschema.Type{SimpleTypes: &arrType},
		Description: &description,
		Items: &jsonschema.Items{
			SchemaOrBool: &jsonschema.SchemaOrBool{TypeObject: items},
		},
	}
}

// CreateObjectSchema creates a strict JSON schema for an object: the listed
// properties, the required set, and no additional properties.
func CreateObjectSchema(properties map[string]*jsonschema.Schema, required []string) *jsonschema.Schema {
	schemaProps := make(map[string]jsonschema.SchemaOrBool)
	for name, prop := range properties {
		schemaProps[name] = jsonschema.SchemaOrBool{TypeObject: prop}
	}

	objType := jsonschema.SimpleType("object")
	noExtra := false
	return &jsonschema.Schema{
		Type:                 &jsonschema.Type{SimpleTypes: &objType},
		Properties:           schemaProps,
		Required:             required,
		AdditionalProperties: &jsonschema.SchemaOrBool{TypeBoolean: &noExtra},
	}
}

// CreateStringSchemaEnum creates a JSON schema for a string field with enum values
func CreateStringSchemaEnum(description string, enumValues []string) *jsonschema.Schema {
	strType := jsonschema.SimpleType("string")
	enum := make([]interface{}, len(enumValues))
	for i, v := range enumValues {
		enum[i] = v
	}
	return &jsonschema.Schema{
		Type:        &jsonschema.Type{SimpleTypes: &strType},
		Description: &description,
		Enum:        enum,
	}
}
