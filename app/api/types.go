package api

import (
	"context"

	"github.com/ymgch/epg-comb/app/config"
	"github.com/ymgch/epg-comb/app/database"
	"github.com/ymgch/epg-comb/app/guide"
	"github.com/ymgch/epg-comb/app/ingest"
)

type IngestorInterface interface {
	RunSchedule(ctx context.Context, schedule *guide.Schedule, areaID string, skip map[string]bool) ([]string, error)
}

var _ IngestorInterface = (*ingest.Ingestor)(nil)

type Handler struct {
	programRepo database.ProgramRepository
	stationRepo database.StationRepository
	parser      *guide.Parser
	ingestor    IngestorInterface
	configs     map[string]*config.AreaConfig
}
