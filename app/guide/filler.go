package guide

import (
	"fmt"

	"github.com/ymgch/epg-comb/app/airtime"
)

// extendedBoundary is the extended-day closing time: 29:00:00 on the nominal
// date, i.e. 05:00:00 of the following calendar day.
const extendedBoundary = "290000"

// Filler closes temporal holes in one station's daily schedule block. The
// input must already be converted and in feed order; the output timeline is
// contiguous from the block's midnight to its extended boundary.
type Filler struct{}

func NewFiller() *Filler {
	return &Filler{}
}

// Run folds over the block's programs with a running previous-end cursor,
// starting at the block date's 00:00:00. A gap before a program, or between
// the last program and the 29:00 boundary, is covered with a synthesized
// record carrying empty descriptive fields; a zero-length gap synthesizes
// nothing. An empty block emits no timeline.
func (f *Filler) Run(stationID string, date airtime.DateOnly, programs []Program) ([]Program, error) {
	if len(programs) == 0 {
		return nil, nil
	}

	boundary, err := airtime.ConvertExtended(date, extendedBoundary, airtime.DefaultEndFill)
	if err != nil {
		return nil, fmt.Errorf("station %s: day boundary: %w", stationID, err)
	}

	prevEnd := date.DateTime().String()
	timeline := make([]Program, 0, len(programs)+1)

	for _, prog := range programs {
		if prevEnd < prog.Ft {
			timeline = append(timeline, fillerRecord(stationID, prevEnd, prog.Ft))
		}
		timeline = append(timeline, prog)
		prevEnd = prog.To
	}

	if prevEnd < boundary {
		timeline = append(timeline, fillerRecord(stationID, prevEnd, boundary))
	}

	return timeline, nil
}

// fillerRecord builds a synthesized record over [ft, to). Its id derives
// from the station and the gap's start so a reingested day reproduces the
// same ids.
func fillerRecord(stationID string, ft, to airtime.DateTimeString) Program {
	return Program{
		StationID: stationID,
		ProgramID: fmt.Sprintf("%s_%s", stationID, ft),
		Ft:        ft,
		To:        to,
	}
}
