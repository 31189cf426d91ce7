// Package model provides the intermediate representation for extracted
// tabular content.
//
// This package defines the value types that the docx extractor produces and
// the export package consumes, making them the primary API for working with
// extracted tables.
//
// # Tables
//
// A [Table] is an ordered sequence of rows; a [Row] is an ordered sequence
// of cell strings. Rows within one table may have differing lengths - the
// source container is loose about rectangularity and this package does not
// tighten it.
//
// Cell values are always normalized strings (see [NormalizeCell]); there is
// no distinction between a missing cell and an empty one.
package model
