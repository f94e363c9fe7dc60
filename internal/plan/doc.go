// Package plan decides which accessor methods a record gets and what they
// look like.
//
// The pipeline for one record is:
//
//  1. NewContainer parses the container directives and the field tags into
//     one conf.FieldConf per field.
//  2. Each field type is classified with package taxonomy.
//  3. ReadPolicy, WritePolicy and ClearPolicy combine the taxonomy with the
//     configuration.
//  4. Build turns the decisions into Method descriptors, ordered by field and
//     then by operation.
//
// Planning is pure. BuildAll runs records concurrently; a failing record
// yields an error result and never affects the others.
package plan
