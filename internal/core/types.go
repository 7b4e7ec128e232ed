package core

// Link is an in-app or external hyperlink.
type Link struct {
	Label       string
	To          string
	Class       string
	Description string
}

type Row struct {
	Cells []string
}

// TableSection groups rows under a category row spanning the table width.
// An empty Title renders no category row.
type TableSection struct {
	Title string
	Rows  []Row
}

type Table struct {
	Title    string
	Headers  []string
	Sections []TableSection
}

// BodyRowCount counts data rows only, excluding category rows.
func (t Table) BodyRowCount() int {
	n := 0
	for _, s := range t.Sections {
		n += len(s.Rows)
	}
	return n
}

type Card struct {
	Title    string
	Subtitle string
	Body     string
	Items    []string
	Link     *Link
	Color    string
}

type CardGrid struct {
	Title   string
	Variant string
	Cards   []Card
}

type Feature struct {
	Title       string
	Icon        string
	Description string
}

type Hero struct {
	Title    string
	Subtitle string
	Buttons  []Link
}

type SectionKind int

const (
	SectionHero SectionKind = iota
	SectionFeatures
	SectionTables
	SectionCards
	SectionDoc
)

// Section is one vertical block of a page. Exactly the field matching Kind
// is populated.
type Section struct {
	Kind     SectionKind
	Hero     *Hero
	Features []Feature
	Tables   []Table
	Cards    *CardGrid
	Doc      *DocBody
}

type DocBody struct {
	Title       string
	Description string
	HTML        string
	Children    []Link
}

type Page struct {
	Route       string
	Title       string
	Description string
	Sections    []Section
}
