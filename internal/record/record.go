package record

// Gender is the competition class a listing belongs to.
type Gender string

const (
	Men   Gender = "Men"
	Women Gender = "Women"
)

// Valid reports whether g is one of the two supported classes.
func (g Gender) Valid() bool {
	return g == Men || g == Women
}

// Row is one raw result extracted from a source listing.
//
// AthleteID is positive when the source exposed a native identifier and
// negative when it was derived synthetically (see package identity). Optional
// fields are empty strings / zero values; Wind uses a pointer because 0.0 is a
// legal reading.
type Row struct {
	Season      int
	Gender      Gender
	EventLabel  string // event name exactly as the source printed it, post-canonicalization
	RankInList  int
	RawPerf     string // performance as displayed by the source
	CleanPerf   string // cleaned, comparable form
	Wind        *float64
	AthleteID   int64
	AthleteName string
	ClubName    string
	BirthDate   string // ISO YYYY-MM-DD, or YYYY for year-only, or empty
	Nationality string // ISO 3166-1 alpha-3; empty means the domestic default
	Placement   string
	VenueCity   string
	Stadium     string
	CompID      int64 // 0 when the source has no stable competition identifier
	CompName    string
	ResultDate  string // ISO YYYY-MM-DD, or empty
	SourceURL   string
}
