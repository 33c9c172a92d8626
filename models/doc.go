// Package models contains the data records returned by the Passage
// management API. They are plain pass-through structures: every field
// mirrors the wire representation and carries no behavior.
package models
