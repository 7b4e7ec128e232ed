package content

// UseCase is one row of the DFS/BFS use case table. An empty Category
// continues the category of the row above it.
type UseCase struct {
	Category   string
	Questions  string
	Complexity string
}

func (u UseCase) Cells() []string {
	return []string{u.Category, u.Questions, u.Complexity}
}

const TraversalTitle = "DFS and BFS Use Cases"

var traversalHeaders = []string{"Category", "Sample Questions", "Time Complexity"}

func TraversalHeaders() []string { return clone(traversalHeaders) }

var traversalUseCases = []UseCase{
	{Category: "DFS"},
	{Category: "DFS in tree", Questions: "Tree in-order traversal", Complexity: "O(n)"},
	{Category: "DFS in string", Questions: "Word break with recursion", Complexity: "O(2^s)"},
	{Questions: "Word break with recursion and memoization", Complexity: "O(s²)"},
	{Category: "DFS in graph", Questions: "Graph DFS traversal with memoization", Complexity: "O(V+E)"},
	{Category: "DFS in matrix", Questions: "Number of islands with memoization", Complexity: "O(m*n)"},
	{Category: "BFS"},
	{Category: "BFS in tree", Questions: "Tree level order traversal", Complexity: "O(n)"},
	{Category: "BFS in string", Questions: "Word ladder BFS or Bi-directional BFS with memoization", Complexity: "O(s*n)"},
	{Category: "BFS in graph", Questions: "Graph BFS traversal with memoization", Complexity: "O(V+E)"},
	{Category: "Find path", Questions: "BFS without memoization", Complexity: "O(b^d)"},
	{Questions: "Bi-directional BFS without memoization", Complexity: "O(b^(d/2))"},
	{Category: "Shortest path", Questions: "Shortest path in unweighted and undirected graph with memoization", Complexity: "O(V+E)"},
	{Questions: "Shortest path in adjacent matrix with memoization", Complexity: "O(m*n)"},
}

func TraversalUseCases() []UseCase {
	return clone(traversalUseCases)
}
