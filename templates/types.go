package templates

type SeasonLink struct {
	Year   int
	Href   string
	Active bool
}

type SortLink struct {
	Label  string
	Href   string
	Active bool
}

type DriverRow struct {
	Rank      int
	Number    int
	Code      string
	FullName  string
	TeamName  string
	TeamColor string
	Delta     string
	Href      string
	Selected  bool
}

type SessionOption struct {
	Name     string
	Selected bool
}

type SessionDetail struct {
	Name      string
	Baseline  string
	DryMedian string
	WetMedian string
	DryLaps   int
	WetLaps   int
	Compound  string
	Delta     string
}

type BestSession struct {
	Name      string
	Delta     string
	DryMedian string
	WetMedian string
	Compound  string
}

type DriverPanel struct {
	Season       int
	Code         string
	Sort         string
	Number       int
	FullName     string
	TeamName     string
	TeamColor    string
	TeamImage    string
	DriverImage  string
	SessionCount int // always the length of Sessions
	Sessions     []SessionOption
	Detail       *SessionDetail
	Best         *BestSession
	CareerHref   string
}

type DashboardPage struct {
	Seasons    []SeasonLink
	Phase      string // no-season, loading, loaded, error
	Season     int
	RefreshURL string
	Standings  []DriverRow
	SortLinks  []SortLink
	Panel      *DriverPanel
}

type CareerRow struct {
	Season      int
	Team        string
	TeamColor   string
	Rank        int
	Delta       string
	Sessions    int
	BestSession string
	Href        string
}

type CareerPage struct {
	Code     string
	FullName string
	Rows     []CareerRow
	Failed   bool
}
