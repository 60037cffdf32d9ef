package guide

import (
	"fmt"

	"github.com/ymgch/epg-comb/app/airtime"
)

// ConvertProgram turns one raw feed entry into a normalized record: both
// extended-clock tokens are resolved against the block's nominal date, and
// the record id is derived deterministically from the station, the source
// program id and the normalized start.
func ConvertProgram(stationID string, date airtime.DateOnly, raw RawProgram) (Program, error) {
	ft, err := airtime.ConvertExtended(date, raw.Ftl, airtime.DefaultStartFill)
	if err != nil {
		return Program{}, fmt.Errorf("station %s program %s: start %q: %w", stationID, raw.ID, raw.Ftl, err)
	}
	to, err := airtime.ConvertExtended(date, raw.Tol, airtime.DefaultEndFill)
	if err != nil {
		return Program{}, fmt.Errorf("station %s program %s: end %q: %w", stationID, raw.ID, raw.Tol, err)
	}

	return Program{
		StationID: stationID,
		ProgramID: fmt.Sprintf("%s_%s_%s", stationID, raw.ID, ft),
		Ft:        ft,
		To:        to,
		Title:     raw.Title,
		Info:      raw.Info,
		Pfm:       raw.Pfm,
		Img:       raw.Img,
	}, nil
}
