package guide

import (
	"github.com/ymgch/epg-comb/app/airtime"
)

// Decoded feed types

// Schedule is the structurally decoded guide payload: stations, each with
// per-date schedule blocks.
type Schedule struct {
	Stations []Station
}

type Station struct {
	ID     string
	Name   string
	Blocks []DateBlock
}

// DateBlock is one nominal broadcast day of a station's schedule. Program
// entries keep the feed's original order; the feed lists them
// chronologically on the extended clock.
type DateBlock struct {
	Date     airtime.DateString
	Programs []RawProgram
}

// RawProgram is one feed entry before normalization. Ftl and Tol are
// extended-clock digit tokens (HHmm or HHmmss, hour 0-29); everything
// besides ID and the time tokens is optional and defaults to empty.
type RawProgram struct {
	ID    string
	Ftl   string
	Tol   string
	Dur   string
	Title string
	Info  string
	Pfm   string
	Img   string
}

// Program is a normalized timeline record. Ft and To are absolute
// timestamps; records are immutable once committed, corrections go through
// delete and reinsert. Filler records carry empty descriptive fields.
type Program struct {
	StationID string
	ProgramID string
	Ft        airtime.DateTimeString
	To        airtime.DateTimeString
	Title     string
	Info      string
	Pfm       string
	Img       string
}
