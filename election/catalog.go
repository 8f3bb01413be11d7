package election

// OfficeType is the kind of seat an election is contesting.
type OfficeType string

const (
	OfficePersonero OfficeType = "personero"
	OfficeContralor OfficeType = "contralor"
	OfficeGradeRep  OfficeType = "grade_representative"
	OfficeGroupRep  OfficeType = "group_representative"
)

// CatalogConfig mirrors the office-enabled flags of a process.
type CatalogConfig struct {
	Personero           bool
	Contralor           bool
	GradeRepresentative bool
	GroupRepresentative bool
}

// GradeRef is the slice of a grade the catalog generator needs.
type GradeRef struct {
	ID   string
	Name string
}

// GroupRef is the slice of a group the catalog generator needs.
type GroupRef struct {
	ID      string
	GradeID string
	Name    string
	Active  bool
}

// Seat describes one contestable election to be created for a process.
// GradeID and GroupID are empty for institution-wide offices.
type Seat struct {
	Office  OfficeType
	GradeID string
	GroupID string
}

// BuildCatalog instantiates the concrete seats for a newly created process:
// one institution-wide seat per enabled office, one per grade when the
// grade-representative office is enabled, and one per active group when the
// group-representative office is enabled. No candidates or votes are
// created here, only the empty seats.
func BuildCatalog(cfg CatalogConfig, grades []GradeRef, groups []GroupRef) []Seat {
	var seats []Seat

	if cfg.Personero {
		seats = append(seats, Seat{Office: OfficePersonero})
	}
	if cfg.Contralor {
		seats = append(seats, Seat{Office: OfficeContralor})
	}

	if cfg.GradeRepresentative {
		for _, grade := range grades {
			seats = append(seats, Seat{Office: OfficeGradeRep, GradeID: grade.ID})
		}
	}

	if cfg.GroupRepresentative {
		for _, group := range groups {
			if !group.Active {
				continue
			}
			seats = append(seats, Seat{Office: OfficeGroupRep, GradeID: group.GradeID, GroupID: group.ID})
		}
	}

	return seats
}
