package site

import (
	"fmt"
	"strings"

	"github.com/dsawizard/dsawizard/internal/content"
	"github.com/dsawizard/dsawizard/internal/core"
)

func DataStructureTable() core.Table {
	groups := content.DataStructures()
	sections := make([]core.TableSection, len(groups))
	for i, g := range groups {
		sections[i] = core.TableSection{Title: g.Title, Rows: rowsOf(g.Rows, content.DataStructure.Cells)}
	}
	return core.BuildTable("", content.DataStructureHeaders(), sections...)
}

func AlgorithmTable() core.Table {
	groups := content.Algorithms()
	sections := make([]core.TableSection, len(groups))
	for i, g := range groups {
		sections[i] = core.TableSection{Title: g.Title, Rows: rowsOf(g.Rows, content.Algorithm.Cells)}
	}
	return core.BuildTable("", content.AlgorithmHeaders(), sections...)
}

func TraversalTable() core.Table {
	rows := rowsOf(content.TraversalUseCases(), content.UseCase.Cells)
	return core.BuildTable(content.TraversalTitle, content.TraversalHeaders(), core.TableSection{Rows: rows})
}

func CompanyTopicsGrid() core.CardGrid {
	order, topics := content.CompanyTopics()
	grid := core.BuildCardGrid(content.CompanyTopicsTitle, order, topics)
	grid.Variant = "topics"
	return grid
}

func rowsOf[T any](records []T, cells func(T) []string) []core.Row {
	rows := make([]core.Row, len(records))
	for i, r := range records {
		rows[i] = core.NewRow(cells(r)...)
	}
	return rows
}

func heroSection(title, subtitle, learnPath string) core.Section {
	return core.Section{
		Kind: core.SectionHero,
		Hero: &core.Hero{
			Title:    title,
			Subtitle: subtitle,
			Buttons: []core.Link{
				{Label: "Explore Patterns →", To: learnPath, Class: "button--secondary button--lg"},
				{Label: "Start Learning", To: learnPath, Class: "button--primary button--lg margin-left--md"},
			},
		},
	}
}

func featuresSection() core.Section {
	list := content.Features()
	features := make([]core.Feature, len(list))
	for i, f := range list {
		features[i] = core.Feature{Title: f.Title, Icon: f.Icon, Description: f.Description}
	}
	return core.Section{Kind: core.SectionFeatures, Features: features}
}

func cardsSection(grid core.CardGrid) core.Section {
	return core.Section{Kind: core.SectionCards, Cards: &grid}
}

func popularPatternsGrid() core.CardGrid {
	grid := core.CardGrid{Title: "Popular Patterns", Variant: "pattern"}
	for _, p := range content.PopularPatterns() {
		grid.Cards = append(grid.Cards, core.Card{
			Title: p,
			Body:  "Master this pattern with our interactive examples",
			Link:  &core.Link{Label: "Learn Now", To: core.PatternDocPath(p), Class: "button--secondary"},
		})
	}
	return grid
}

func categoriesGrid() core.CardGrid {
	grid := core.CardGrid{Title: "Top Interview Pattern Categories", Variant: "category"}
	for _, c := range content.PatternCategories() {
		grid.Cards = append(grid.Cards, core.Card{Title: c.Name, Subtitle: c.Count, Body: c.Description})
	}
	return grid
}

func difficultyGrid() core.CardGrid {
	grid := core.CardGrid{Title: "Pattern Difficulty Distribution", Variant: "difficulty"}
	for _, d := range content.Difficulties() {
		grid.Cards = append(grid.Cards, core.Card{
			Title:    d.Level,
			Subtitle: d.Count + " Problems",
			Body:     "Master " + strings.ToLower(d.Level) + " level patterns",
			Color:    d.Color,
		})
	}
	return grid
}

func companyPatternsGrid() core.CardGrid {
	list := content.CompanyPatterns()
	keys := make([]string, len(list))
	items := make(map[string][]string, len(list))
	for i, cp := range list {
		keys[i] = cp.Company
		items[cp.Company] = cp.Patterns
	}
	grid := core.BuildCardGrid("Most Asked Company Patterns", keys, items)
	grid.Variant = "company"
	return grid
}

func learningPathGrid() core.CardGrid {
	grid := core.CardGrid{Title: "Pattern Learning Path", Variant: "path"}
	for _, s := range content.LearningPath() {
		grid.Cards = append(grid.Cards, core.Card{
			Title: fmt.Sprintf("Step %d: %s", s.Step, s.Title),
			Body:  s.Desc,
		})
	}
	return grid
}

func statsGrid() core.CardGrid {
	grid := core.CardGrid{Title: "Pattern Success Statistics", Variant: "stats"}
	for _, s := range content.Stats() {
		grid.Cards = append(grid.Cards, core.Card{Title: s.Stat, Body: s.Desc})
	}
	return grid
}
