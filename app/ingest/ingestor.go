package ingest

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ymgch/epg-comb/app/airtime"
	"github.com/ymgch/epg-comb/app/database"
	"github.com/ymgch/epg-comb/app/guide"
)

// Ingestor turns a raw guide payload into committed station timelines. One
// run owns the store exclusively; stations, blocks and programs are handled
// strictly in feed order because the gap filler's cursor depends on it.
type Ingestor struct {
	parser      *guide.Parser
	filler      *guide.Filler
	programRepo database.ProgramRepository
	stationRepo database.StationRepository
}

func NewIngestor(programRepo database.ProgramRepository, stationRepo database.StationRepository) *Ingestor {
	return &Ingestor{
		parser:      guide.NewParser(),
		filler:      guide.NewFiller(),
		programRepo: programRepo,
		stationRepo: stationRepo,
	}
}

// Run decodes the payload and commits a gapless timeline per station,
// skipping the station ids in skip. The returned slice holds the ids whose
// records were all committed, in processing order.
//
// Any conversion or persistence error aborts the whole call. Because every
// insert completes before the next is issued, the records already committed
// for the failing station form a prefix of its intended timeline; a caller
// wanting partial-success semantics retries with the returned ids added to
// the skip set.
func (i *Ingestor) Run(ctx context.Context, payload []byte, areaID string, skip map[string]bool) ([]string, error) {
	schedule, err := i.parser.Run(payload)
	if err != nil {
		return nil, err
	}
	return i.RunSchedule(ctx, schedule, areaID, skip)
}

// RunSchedule ingests an already-decoded schedule; see Run.
func (i *Ingestor) RunSchedule(ctx context.Context, schedule *guide.Schedule, areaID string, skip map[string]bool) ([]string, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	processed := make([]string, 0, len(schedule.Stations))
	for _, station := range schedule.Stations {
		if skip[station.ID] {
			slog.Debug("Station already processed, skipping", "station", station.ID)
			continue
		}

		timeline, err := i.buildTimeline(station)
		if err != nil {
			return processed, err
		}
		if len(timeline) == 0 {
			slog.Debug("Station has no programs, skipping", "station", station.ID)
			continue
		}

		if err := i.stationRepo.Upsert(station.ID, station.Name, areaID); err != nil {
			return processed, fmt.Errorf("station %s: %w", station.ID, err)
		}

		if err := i.commitTimeline(ctx, timeline); err != nil {
			return processed, err
		}

		processed = append(processed, station.ID)
		slog.Info("Station ingested", "station", station.ID, "records", len(timeline))
	}

	return processed, nil
}

// buildTimeline converts and gap-fills every date block of one station,
// concatenated in block order.
func (i *Ingestor) buildTimeline(station guide.Station) ([]guide.Program, error) {
	var timeline []guide.Program
	for _, block := range station.Blocks {
		date, err := airtime.ParseDate(string(block.Date))
		if err != nil {
			return nil, fmt.Errorf("station %s: block date %s: %w", station.ID, block.Date, err)
		}

		converted := make([]guide.Program, 0, len(block.Programs))
		for _, raw := range block.Programs {
			prog, err := guide.ConvertProgram(station.ID, date, raw)
			if err != nil {
				return nil, err
			}
			converted = append(converted, prog)
		}

		filled, err := i.filler.Run(station.ID, date, converted)
		if err != nil {
			return nil, err
		}
		timeline = append(timeline, filled...)
	}

	return timeline, nil
}

// commitTimeline inserts the records one at a time, each awaited before the
// next, so a mid-run failure leaves an in-order prefix behind.
func (i *Ingestor) commitTimeline(ctx context.Context, timeline []guide.Program) error {
	for _, prog := range timeline {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		_, err := i.programRepo.Insert(database.NewProgram{
			StationID: prog.StationID,
			ProgramID: prog.ProgramID,
			Ft:        string(prog.Ft),
			To:        string(prog.To),
			Title:     prog.Title,
			Info:      prog.Info,
			Pfm:       prog.Pfm,
			Img:       prog.Img,
		})
		if err != nil {
			return fmt.Errorf("station %s: %w", prog.StationID, err)
		}
	}

	return nil
}
