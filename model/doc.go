// Package model defines the document model produced by slide extraction:
// styled runs and paragraphs, tables, filled shapes, the positioned items
// that carry layout coordinates, and the ordered block list that rendering
// consumes.
package model
