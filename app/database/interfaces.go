package database

// NewProgram carries the fields of a record being committed; the repository
// assigns the row id and created_at.
type NewProgram struct {
	StationID string
	ProgramID string
	Ft        string
	To        string
	Title     string
	Info      string
	Pfm       string
	Img       string
}

type ProgramRepository interface {
	Insert(p NewProgram) (*Program, error)
	GetByProgramID(programID string) (*Program, error)
	GetTimeline(stationID, date string) ([]Program, error)
	GetOnAir(stationID, at string) (*Program, error)
	DeleteTimeline(stationID, date string) (int, error)
	CountTimeline(stationID, date string) (int, error)
	CountAll() (int, error)
}

type StationRepository interface {
	Upsert(stationID, name, areaID string) error
	Get(stationID string) (*Station, error)
	List() ([]Station, error)
	GetCount() (int, error)
}
