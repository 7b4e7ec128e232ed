package content

type Feature struct {
	Title       string
	Icon        string
	Description string
}

type Category struct {
	Name        string
	Count       string
	Description string
}

type Difficulty struct {
	Level string
	Count string
	Color string
}

type CompanyPattern struct {
	Company  string
	Patterns []string
}

type PathStep struct {
	Step  int
	Title string
	Desc  string
}

type Stat struct {
	Stat string
	Desc string
}

var features = []Feature{
	{
		Title:       "Two Pointers",
		Icon:        "/img/two_pointers.svg",
		Description: "Master the two pointers technique for solving array and string problems efficiently.",
	},
	{
		Title:       "Sliding Window",
		Icon:        "/img/sliding_window.svg",
		Description: "Learn how to optimize solutions using the sliding window pattern for subarray problems.",
	},
	{
		Title:       "Binary Search",
		Icon:        "/img/binary_search.svg",
		Description: "Understand when and how to apply binary search beyond simple sorted array searches.",
	},
}

var popularPatterns = []string{"Two Pointers", "Sliding Window", "BFS/DFS", "Dynamic Programming"}

var categories = []Category{
	{Name: "Arrays & Strings", Count: "150+ problems", Description: "Master fundamental data structure patterns"},
	{Name: "Tree & Graph", Count: "100+ problems", Description: "Tackle hierarchical and network problems"},
	{Name: "Dynamic Programming", Count: "80+ problems", Description: "Learn optimal substructure patterns"},
	{Name: "System Design", Count: "40+ problems", Description: "Design scalable distributed systems"},
	{Name: "Backtracking", Count: "50+ problems", Description: "Solve complex recursive problems"},
	{Name: "Binary Search", Count: "40+ problems", Description: "Optimize search operations"},
}

var difficulties = []Difficulty{
	{Level: "Easy", Count: "200+", Color: "#00b894"},
	{Level: "Medium", Count: "400+", Color: "#fdcb6e"},
	{Level: "Hard", Count: "150+", Color: "#d63031"},
}

var companyPatterns = []CompanyPattern{
	{Company: "Google", Patterns: []string{"Sliding Window", "Dynamic Programming", "Graphs"}},
	{Company: "Meta", Patterns: []string{"Trees", "System Design", "Arrays"}},
	{Company: "Amazon", Patterns: []string{"Two Pointers", "BFS/DFS", "Design"}},
	{Company: "Microsoft", Patterns: []string{"DP", "Trees", "Graphs"}},
}

var learningPath = []PathStep{
	{Step: 1, Title: "Foundation Patterns", Desc: "Arrays, Strings, and Basic Data Structures"},
	{Step: 2, Title: "Intermediate Algorithms", Desc: "Sorting, Searching, and Two Pointers"},
	{Step: 3, Title: "Advanced Data Structures", Desc: "Trees, Graphs, and Heaps"},
	{Step: 4, Title: "Dynamic Programming", Desc: "Pattern Recognition and Optimization"},
	{Step: 5, Title: "System Design", Desc: "Scalable Architecture Patterns"},
}

var stats = []Stat{
	{Stat: "95%", Desc: "Interview Success Rate"},
	{Stat: "1000+", Desc: "Problems Covered"},
	{Stat: "50+", Desc: "Unique Patterns"},
	{Stat: "10K+", Desc: "Active Learners"},
}

func Features() []Feature { return clone(features) }

func PopularPatterns() []string { return clone(popularPatterns) }

func PatternCategories() []Category { return clone(categories) }

func Difficulties() []Difficulty { return clone(difficulties) }

func CompanyPatterns() []CompanyPattern {
	out := make([]CompanyPattern, len(companyPatterns))
	for i, cp := range companyPatterns {
		out[i] = CompanyPattern{Company: cp.Company, Patterns: clone(cp.Patterns)}
	}
	return out
}

func LearningPath() []PathStep { return clone(learningPath) }

func Stats() []Stat { return clone(stats) }
