package site

import (
	"github.com/dsawizard/dsawizard/internal/config"
	"github.com/dsawizard/dsawizard/internal/core"
	"github.com/dsawizard/dsawizard/internal/docs"
)

// HomePage is the landing page: hero, features, then the fixed run of card
// sections. Nothing is conditional.
func HomePage(cfg *config.Site, categoryRoute string) core.Page {
	hero := heroSection(cfg.Tagline, "Ace your coding interviews with our comprehensive DSA patterns guide", categoryRoute)

	return core.Page{
		Route:       "/",
		Title:       "Hello from " + cfg.Title,
		Description: cfg.Tagline,
		Sections: []core.Section{
			hero,
			featuresSection(),
			cardsSection(popularPatternsGrid()),
			cardsSection(categoriesGrid()),
			cardsSection(difficultyGrid()),
			cardsSection(companyPatternsGrid()),
			cardsSection(learningPathGrid()),
			cardsSection(statsGrid()),
		},
	}
}

// ComplexityPage places the data-structure and algorithm tables side by side,
// followed by the company focus areas.
func ComplexityPage() core.Page {
	return core.Page{
		Route:       "/complexity",
		Title:       "Complexity Cheat Sheet",
		Description: "Time and space complexity of common data structures and algorithms.",
		Sections: []core.Section{
			{Kind: core.SectionTables, Tables: []core.Table{DataStructureTable(), AlgorithmTable()}},
			cardsSection(CompanyTopicsGrid()),
		},
	}
}

func TraversalPage() core.Page {
	return core.Page{
		Route:       "/traversal",
		Title:       "DFS and BFS Use Cases",
		Description: "Typical DFS and BFS questions with their time complexity.",
		Sections: []core.Section{
			{Kind: core.SectionTables, Tables: []core.Table{TraversalTable()}},
		},
	}
}

func CategoryPage(set *docs.Set) core.Page {
	cat := set.Category
	body := &core.DocBody{Title: cat.Label, Description: cat.Description}
	for _, d := range set.Docs() {
		body.Children = append(body.Children, core.Link{Label: d.Title, To: d.Route, Description: d.Description})
	}

	return core.Page{
		Route:       cat.Route(),
		Title:       cat.Label,
		Description: cat.Description,
		Sections:    []core.Section{{Kind: core.SectionDoc, Doc: body}},
	}
}

func DocPage(d docs.Doc) core.Page {
	return core.Page{
		Route:       d.Route,
		Title:       d.Title,
		Description: d.Description,
		Sections: []core.Section{{
			Kind: core.SectionDoc,
			Doc:  &core.DocBody{Title: d.Title, Description: d.Description, HTML: d.HTML},
		}},
	}
}
