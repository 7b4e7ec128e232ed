// Package content holds the authored reference data shown on the site.
//
// Every accessor returns a fresh copy of its literal, so callers may keep or
// modify what they get without affecting later renders.
package content

// DataStructure is one row of the data-structure complexity table.
type DataStructure struct {
	Structure string
	Access    string
	Insert    string
	Delete    string
	Search    string
	Traverse  string
}

func (d DataStructure) Cells() []string {
	return []string{d.Structure, d.Access, d.Insert, d.Delete, d.Search, d.Traverse}
}

// Algorithm is one row of the algorithm complexity table.
type Algorithm struct {
	Algorithm string
	Time      string
	Space     string
	UsedArea  string
}

func (a Algorithm) Cells() []string {
	return []string{a.Algorithm, a.Time, a.Space, a.UsedArea}
}

// Group is a titled run of rows rendered under a category row.
type Group[T any] struct {
	Title string
	Rows  []T
}

var dataStructureHeaders = []string{"Data structure", "Access", "Insert", "Delete", "Search", "Traverse"}

var algorithmHeaders = []string{"Algorithms", "Time", "Space", "Used area"}

func DataStructureHeaders() []string { return clone(dataStructureHeaders) }

func AlgorithmHeaders() []string { return clone(algorithmHeaders) }

var linearStructures = []DataStructure{
	{Structure: "Array", Access: "O(1)", Insert: "O(1)", Delete: "O(n)", Search: "O(n)", Traverse: "O(n)"},
	{Structure: "Ordered array", Access: "O(1)", Insert: "O(n)", Delete: "O(n)", Search: "O(logn)", Traverse: "O(n)"},
	{Structure: "Linked list", Access: "O(n)", Insert: "O(1)", Delete: "O(n)", Search: "O(n)", Traverse: "O(n)"},
	{Structure: "Matrix", Access: "O(1)", Insert: "O(1)", Delete: "O(1)", Search: "O(m*n)", Traverse: "O(m*n)"},
	{Structure: "Stack", Access: "O(1)", Insert: "O(1)", Delete: "O(1)", Search: "O(n)", Traverse: "O(n)"},
	{Structure: "Queue", Access: "O(1)", Insert: "O(1)", Delete: "O(1)", Search: "O(n)", Traverse: "O(n)"},
}

var nonLinearStructures = []DataStructure{
	{Structure: "Tree", Access: "O(n)", Insert: "O(1)", Delete: "O(n)", Search: "O(n)", Traverse: "O(n)"},
	{Structure: "Balanced tree", Access: "O(logn)", Insert: "O(logn)", Delete: "O(logn)", Search: "O(logn)", Traverse: "O(n)"},
	{Structure: "Graph", Access: "O(V)", Insert: "O(1)", Delete: "O(V+E)", Search: "O(V+E)", Traverse: "O(V+E)"},
	{Structure: "Trie", Access: "O(s)", Insert: "O(s)", Delete: "O(s)", Search: "O(s)", Traverse: "O(n*s)"},
	{Structure: "Suffix trie", Access: "O(s)", Insert: "O(s)", Delete: "O(s)", Search: "O(s)", Traverse: "O(s^2)"},
}

var sortingAlgorithms = []Algorithm{
	{Algorithm: "Bubble, Selection, Insertion", Time: "O(n^2)", Space: "O(1)", UsedArea: "Simple sort"},
	{Algorithm: "Merge sort", Time: "O(n*logn)", Space: "O(n)", UsedArea: "Stable sort"},
	{Algorithm: "Quick sort", Time: "O(n*logn)", Space: "O(logn)", UsedArea: "Quick sort"},
}

var searchingAlgorithms = []Algorithm{
	{Algorithm: "Linear search", Time: "O(n)", Space: "O(1)", UsedArea: "Search in non-sorted array"},
	{Algorithm: "Binary search", Time: "O(logn)", Space: "O(1)", UsedArea: "Search in sorted array"},
}

var recursionAlgorithms = []Algorithm{
	{Algorithm: "Factorial", Time: "O(n)", Space: "O(n)", UsedArea: "Math"},
	{Algorithm: "Valid parentheses", Time: "O(Cn)", Space: "O(Cn)", UsedArea: "String"},
	{Algorithm: "Permutation", Time: "O(n!)", Space: "O(n!)", UsedArea: "Array, String"},
	{Algorithm: "All subsets", Time: "O(2^n)", Space: "O(2^n)", UsedArea: "Array, String"},
}

var dynamicProgrammingAlgorithms = []Algorithm{
	{Algorithm: "Fibonacci", Time: "O(n)", Space: "O(1)", UsedArea: "Math"},
	{Algorithm: "Knapsack", Time: "O(n*w)", Space: "O(n*w)", UsedArea: "Array"},
	{Algorithm: "Edit distance", Time: "O(s*t)", Space: "O(t)", UsedArea: "String"},
	{Algorithm: "Num of unique paths in matrix", Time: "O(m*n)", Space: "O(n)", UsedArea: "Matrix"},
}

func DataStructures() []Group[DataStructure] {
	return []Group[DataStructure]{
		{Title: "Linear", Rows: clone(linearStructures)},
		{Title: "Non-linear", Rows: clone(nonLinearStructures)},
	}
}

func Algorithms() []Group[Algorithm] {
	return []Group[Algorithm]{
		{Title: "Sorting", Rows: clone(sortingAlgorithms)},
		{Title: "Searching", Rows: clone(searchingAlgorithms)},
		{Title: "Recursion", Rows: clone(recursionAlgorithms)},
		{Title: "Dynamic Programming", Rows: clone(dynamicProgrammingAlgorithms)},
	}
}

func clone[T any](s []T) []T {
	return append([]T(nil), s...)
}
