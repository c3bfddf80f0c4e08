/*
 * Copyright © 2025 Casetrail Systems Inc., All rights reserved.
 */

// Package testmodels holds shared entity fixtures for tests across the
// module.
package testmodels

import "github.com/go-openapi/strfmt"

// Landmark is a map landmark attached to a case.
type Landmark struct {

	// Unique identifier for the landmark.
	// Required: true
	Id string `json:"Id"`

	// Display label shown on the map.
	Label string `json:"Label"`

	// Latitude in decimal degrees.
	Lat float64 `json:"Lat"`

	// Longitude in decimal degrees.
	Lon float64 `json:"Lon"`

	// Free-form note attached to the landmark.
	Note string `json:"Note,omitempty"`

	// Timestamp when the landmark was created.
	// Format: date-time
	CreatedAt strfmt.DateTime `json:"CreatedAt,omitempty"`

	// Timestamp when the landmark was last updated.
	// Format: date-time
	UpdatedAt strfmt.DateTime `json:"UpdatedAt,omitempty"`
}

// ID returns the landmark identity.
func (l Landmark) ID() string { return l.Id }

// CaseNote is a note record attached to a case notebook.
type CaseNote struct {

	// Unique identifier for the note.
	// Required: true
	Id string `json:"Id"`

	// Title of the note.
	Title string `json:"Title"`

	// Body text of the note.
	Body string `json:"Body,omitempty"`

	// Revision counter, incremented on every edit.
	Revision int64 `json:"Revision,omitempty"`
}

// ID returns the note identity.
func (n CaseNote) ID() string { return n.Id }
