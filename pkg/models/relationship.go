package models

// Relationship describes a graph edge between two records.
//
// ID identifies the edge record itself and may be nil when the edge is
// known only by its relation table and endpoints. In and Out are the
// records the edge points from and to, and Relation is the edge table.
type Relationship struct {
	ID       *RecordID      `json:"id"`
	In       RecordID       `json:"in"`
	Out      RecordID       `json:"out"`
	Relation Table          `json:"relation"`
	Data     map[string]any `json:"data"`
}
