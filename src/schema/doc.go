// Package schema provides small constructors for the JSON schemas that
// describe tool parameters to the model.
package schema
