package api

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ymgch/epg-comb/app/airtime"
	"github.com/ymgch/epg-comb/app/area"
	"github.com/ymgch/epg-comb/app/config"
	"github.com/ymgch/epg-comb/app/database"
	"github.com/ymgch/epg-comb/app/guide"
)

func NewHandler(programRepo database.ProgramRepository, stationRepo database.StationRepository,
	ingestor IngestorInterface, configs map[string]*config.AreaConfig) *Handler {
	return &Handler{
		programRepo: programRepo,
		stationRepo: stationRepo,
		parser:      guide.NewParser(),
		ingestor:    ingestor,
		configs:     configs,
	}
}

// Ingest accepts a raw guide payload in the request body and commits the
// resulting timelines. The area query parameter selects an area config
// whose skip list and allow-list are applied; without one the whole payload
// is ingested.
func (h *Handler) Ingest(c *gin.Context) {
	payload, err := io.ReadAll(c.Request.Body)
	if err != nil || len(payload) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing guide payload"})
		return
	}

	areaID := c.Query("area")
	skip := make(map[string]bool)

	var areaConfig *config.AreaConfig
	if areaID != "" {
		if !area.IsValid(areaID) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown area id"})
			return
		}
		areaConfig = h.configs[areaID]
		if areaConfig != nil {
			if !areaConfig.Settings.Enabled {
				c.JSON(http.StatusConflict, gin.H{"error": "Area is disabled"})
				return
			}
			skip = areaConfig.SkipSet()
		}
	}

	schedule, err := h.parser.Run(payload)
	if err != nil {
		if errors.Is(err, guide.ErrMalformedFeed) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
			return
		}
		slog.Error("Guide decode error", "area", areaID, "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to decode guide payload"})
		return
	}

	if areaConfig != nil {
		for _, station := range schedule.Stations {
			if !areaConfig.AllowsStation(station.ID) {
				skip[station.ID] = true
			}
		}
	}

	// Records are immutable once committed, so a station whose every block
	// date already has records in the store is skipped; corrections go
	// through DELETE first. A station with records for only some of its
	// block dates was cut short by an earlier failed run, and the leftover
	// prefix would collide with the unique program id index on retry, so it
	// is cleared before reingestion.
	for _, station := range schedule.Stations {
		if skip[station.ID] || len(station.Blocks) == 0 {
			continue
		}
		var stale []string
		for _, block := range station.Blocks {
			count, err := h.programRepo.CountTimeline(station.ID, string(block.Date))
			if err != nil {
				slog.Error("Database error", "operation", "count_timeline", "station", station.ID, "error", err)
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
				return
			}
			if count > 0 {
				stale = append(stale, string(block.Date))
			}
		}
		if len(stale) == len(station.Blocks) {
			slog.Debug("Station timelines already present, skipping", "station", station.ID)
			skip[station.ID] = true
			continue
		}
		for _, date := range stale {
			removed, err := h.programRepo.DeleteTimeline(station.ID, date)
			if err != nil {
				slog.Error("Database error", "operation", "delete_timeline", "station", station.ID, "error", err)
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
				return
			}
			slog.Info("Cleared partial timeline before reingest", "station", station.ID, "date", date, "records", removed)
		}
	}

	processed, err := h.ingestor.RunSchedule(c.Request.Context(), schedule, areaID, skip)
	if err != nil {
		slog.Error("Ingestion failed", "area", areaID, "processed", len(processed), "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Ingestion failed",
			"processed": processed,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"processed": processed,
		"stations":  len(processed),
	})
}

// ListStations returns the known stations enriched with area information.
func (h *Handler) ListStations(c *gin.Context) {
	stations, err := h.stationRepo.List()
	if err != nil {
		slog.Error("Database error", "operation", "list_stations", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	out := make([]map[string]interface{}, 0, len(stations))
	for _, s := range stations {
		info := map[string]interface{}{
			"station_id":       s.StationID,
			"name":             s.Name,
			"area_id":          s.AreaID,
			"last_ingested_at": s.LastIngestedAt,
		}
		if a, ok := area.Lookup(s.AreaID); ok {
			info["prefecture"] = a.Prefecture
			info["region"] = a.Region
		}
		out = append(out, info)
	}

	c.JSON(http.StatusOK, map[string]interface{}{
		"stations": out,
		"total":    len(out),
	})
}

// GetTimeline returns a station's committed records for one nominal date.
func (h *Handler) GetTimeline(c *gin.Context) {
	stationID := c.Param("id")
	date := c.Query("date")
	if _, err := airtime.ParseDate(date); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date must be a valid yyyyMMdd value"})
		return
	}

	programs, err := h.programRepo.GetTimeline(stationID, date)
	if err != nil {
		slog.Error("Database error", "operation", "get_timeline", "station", stationID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	c.JSON(http.StatusOK, map[string]interface{}{
		"station_id": stationID,
		"date":       date,
		"programs":   toProgramViews(programs),
		"total":      len(programs),
	})
}

// GetOnAir returns the record covering the at instant, defaulting to the
// current time in the configured timezone.
func (h *Handler) GetOnAir(c *gin.Context) {
	stationID := c.Param("id")

	at := c.Query("at")
	if at == "" {
		at = string(airtime.DateTimeFromTime(time.Now().In(time.Local)).String())
	} else if _, err := airtime.ParseDateTime(at); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "at must be a valid yyyyMMddHHmmss value"})
		return
	}

	program, err := h.programRepo.GetOnAir(stationID, at)
	if err != nil {
		slog.Error("Database error", "operation", "get_on_air", "station", stationID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	if program == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Nothing on air at the requested time"})
		return
	}

	c.JSON(http.StatusOK, toProgramView(*program))
}

// DeleteTimeline removes a station's records for one date; corrections are
// a delete followed by reingestion.
func (h *Handler) DeleteTimeline(c *gin.Context) {
	stationID := c.Param("id")
	date := c.Query("date")
	if _, err := airtime.ParseDate(date); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date must be a valid yyyyMMdd value"})
		return
	}

	removed, err := h.programRepo.DeleteTimeline(stationID, date)
	if err != nil {
		slog.Error("Database error", "operation", "delete_timeline", "station", stationID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	slog.Info("Timeline removed", "station", stationID, "date", date, "records", removed)
	c.JSON(http.StatusOK, gin.H{
		"station_id": stationID,
		"date":       date,
		"removed":    removed,
	})
}

func (h *Handler) GetHealth(c *gin.Context) {
	health := map[string]interface{}{
		"timestamp": time.Now().In(time.Local).Format(time.RFC3339),
	}

	if stationCount, err := h.stationRepo.GetCount(); err == nil {
		health["stations"] = stationCount
	}

	health["loaded_configurations"] = len(h.configs)

	c.JSON(http.StatusOK, health)
}

func (h *Handler) GetStats(c *gin.Context) {
	stats := map[string]interface{}{
		"loaded_configurations": len(h.configs),
	}

	if stationCount, err := h.stationRepo.GetCount(); err == nil {
		stats["stations"] = stationCount
	}
	if programCount, err := h.programRepo.CountAll(); err == nil {
		stats["programs"] = programCount
	}

	c.JSON(http.StatusOK, stats)
}

func toProgramViews(programs []database.Program) []map[string]interface{} {
	out := make([]map[string]interface{}, 0, len(programs))
	for _, p := range programs {
		out = append(out, toProgramView(p))
	}
	return out
}

func toProgramView(p database.Program) map[string]interface{} {
	return map[string]interface{}{
		"program_id": p.ProgramID,
		"ft":         p.Ft,
		"to":         p.To,
		"title":      p.Title,
		"info":       p.Info,
		"pfm":        p.Pfm,
		"img":        p.Img,
	}
}
