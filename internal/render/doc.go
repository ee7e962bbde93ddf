// Package render serializes a generated document into the text formats Bedrock
// reads: indented JSON, or a Jx9 script that creates the database directories
// before returning the configuration.
package render
