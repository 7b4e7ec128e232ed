package core

// BuildTable assembles a table view. Sections and rows keep their input
// order. Every row is fitted to the header width: missing cells become
// empty strings and surplus cells are dropped, so columns never shift.
func BuildTable(title string, headers []string, sections ...TableSection) Table {
	width := len(headers)
	out := Table{
		Title:    title,
		Headers:  append([]string(nil), headers...),
		Sections: make([]TableSection, 0, len(sections)),
	}

	for _, s := range sections {
		rows := make([]Row, len(s.Rows))
		for i, r := range s.Rows {
			rows[i] = fitRow(r, width)
		}
		out.Sections = append(out.Sections, TableSection{Title: s.Title, Rows: rows})
	}

	return out
}

func NewRow(cells ...string) Row {
	return Row{Cells: cells}
}

func fitRow(r Row, width int) Row {
	cells := make([]string, width)
	copy(cells, r.Cells)
	return Row{Cells: cells}
}
