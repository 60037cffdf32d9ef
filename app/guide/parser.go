package guide

import (
	"encoding/xml"
	"errors"
	"fmt"

	"golang.org/x/text/width"

	"github.com/ymgch/epg-comb/app/airtime"
)

// ErrMalformedFeed reports a payload without the expected root station
// container. It is always fatal for the whole ingestion call.
var ErrMalformedFeed = errors.New("malformed feed: missing station container")

// Wire shape of the guide XML. Times on <prog> come in two encodings: ft/to
// are precomputed absolute stamps we ignore, ftl/tol are the authoritative
// extended-clock tokens relative to the block's <date>.
type feedDoc struct {
	XMLName  xml.Name      `xml:"radiko"`
	Stations *feedStations `xml:"stations"`
}

type feedStations struct {
	Stations []feedStation `xml:"station"`
}

type feedStation struct {
	ID     string      `xml:"id,attr"`
	Name   string      `xml:"name"`
	Blocks []feedProgs `xml:"scd>progs"`
}

type feedProgs struct {
	Date  string     `xml:"date"`
	Progs []feedProg `xml:"prog"`
}

type feedProg struct {
	ID    string `xml:"id,attr"`
	Ftl   string `xml:"ftl,attr"`
	Tol   string `xml:"tol,attr"`
	Dur   string `xml:"dur,attr"`
	Title string `xml:"title"`
	Info  string `xml:"info"`
	Pfm   string `xml:"pfm"`
	Img   string `xml:"img"`
}

// Parser decodes raw guide XML into the Schedule form.
type Parser struct{}

func NewParser() *Parser {
	return &Parser{}
}

// Run decodes a guide payload. A payload without the station container
// fails with ErrMalformedFeed; individual field problems are left for the
// conversion step so the error names the offending program.
func (p *Parser) Run(data []byte) (*Schedule, error) {
	var doc feedDoc
	if err := xml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode guide payload: %w", err)
	}
	if doc.Stations == nil {
		return nil, ErrMalformedFeed
	}

	schedule := &Schedule{
		Stations: make([]Station, 0, len(doc.Stations.Stations)),
	}
	for _, st := range doc.Stations.Stations {
		station := Station{
			ID:     st.ID,
			Name:   foldText(st.Name),
			Blocks: make([]DateBlock, 0, len(st.Blocks)),
		}
		for _, block := range st.Blocks {
			date, err := airtime.NewDateString(block.Date)
			if err != nil {
				return nil, fmt.Errorf("station %s: bad block date %q: %w", st.ID, block.Date, err)
			}
			db := DateBlock{
				Date:     date,
				Programs: make([]RawProgram, 0, len(block.Progs)),
			}
			for _, prog := range block.Progs {
				db.Programs = append(db.Programs, RawProgram{
					ID:    prog.ID,
					Ftl:   prog.Ftl,
					Tol:   prog.Tol,
					Dur:   prog.Dur,
					Title: foldText(prog.Title),
					Info:  foldText(prog.Info),
					Pfm:   foldText(prog.Pfm),
					Img:   prog.Img,
				})
			}
			station.Blocks = append(station.Blocks, db)
		}
		schedule.Stations = append(schedule.Stations, station)
	}

	return schedule, nil
}

// foldText normalizes full-width alphanumerics that broadcasters mix into
// titles, descriptions and performer names.
func foldText(s string) string {
	return width.Fold.String(s)
}
