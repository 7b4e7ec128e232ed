package content

const CompanyTopicsTitle = "Company-Specific Focus Areas"

// companyOrder is the display order; map iteration order is not.
var companyOrder = []string{
	"Google",
	"Microsoft",
	"Amazon",
	"Flipkart",
	"Meta",
	"Oracle",
	"Cisco",
	"Atlassian",
	"Salesforce",
}

var companyTopics = map[string][]string{
	"Google": {
		"Graph Algorithms",
		"Dynamic Programming",
		"Trees (especially balanced BSTs)",
		"Recursion and Backtracking",
		"String Manipulation",
	},
	"Microsoft": {
		"Binary Trees and BSTs",
		"Graph Traversals (BFS/DFS)",
		"Dynamic Programming",
		"Arrays and Strings",
		"System Design",
	},
	"Amazon": {
		"Arrays and Hash Tables",
		"Trees (especially Binary Search Trees)",
		"Graphs (BFS/DFS)",
		"Dynamic Programming",
		"Object-Oriented Design",
	},
	"Flipkart": {
		"Arrays and Strings",
		"Hash Tables",
		"Linked Lists",
		"Trees and Graphs",
		"Dynamic Programming",
	},
	"Meta": {
		"Arrays and Strings",
		"Graphs (especially BFS/DFS)",
		"Dynamic Programming",
		"Hash Tables",
		"Binary Search",
	},
	"Oracle": {
		"SQL Optimization",
		"Trees and Graphs",
		"Arrays and LinkedLists",
		"Hash Tables",
		"Dynamic Programming",
	},
	"Cisco": {
		"Networking Algorithms",
		"Trees and Graphs",
		"Dynamic Programming",
		"Arrays and Strings",
		"System Design",
	},
	"Atlassian": {
		"Arrays and Strings",
		"Hash Tables",
		"Trees and Graphs",
		"Sorting and Searching",
		"Object-Oriented Design",
	},
	"Salesforce": {
		"Array Manipulation",
		"Hash Tables",
		"Trees and Graphs",
		"Dynamic Programming",
		"SQL and Database Concepts",
	},
}

// CompanyTopics returns the companies in display order and a copy of each
// company's topic list.
func CompanyTopics() ([]string, map[string][]string) {
	topics := make(map[string][]string, len(companyTopics))
	for k, v := range companyTopics {
		topics[k] = clone(v)
	}
	return clone(companyOrder), topics
}
