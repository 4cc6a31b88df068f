package services

// Keyword tables backing the scoring heuristics. They are kept as named
// tables so signal sets can be tuned and tested without touching the scoring
// control flow.

// structureKeywords signal that an answer frames context and structure.
var structureKeywords = []string{
	"situation", "task", "action", "result", "when", "where", "how", "why",
}

// starGroups cover the Situation/Task/Action/Result structure expected from
// behavioral answers. One completeness credit per matched group.
var starGroups = [][]string{
	{"situation", "context", "background", "faced", "challenge"},
	{"task", "goal", "objective", "responsible", "needed to"},
	{"action", "implemented", "decided", "led", "built", "organized"},
	{"result", "outcome", "achieved", "improved", "increased", "reduced", "learned"},
}

// technicalGroups cover the problem/approach/trade-off/feasibility structure
// expected from technical answers.
var technicalGroups = [][]string{
	{"problem", "issue", "requirement", "constraint"},
	{"approach", "design", "architecture", "solution", "algorithm"},
	{"trade-off", "tradeoff", "alternative", "instead", "compared", "versus"},
	{"scale", "performance", "feasible", "complexity", "cost", "maintain"},
}

var technicalTerms = []string{
	"api", "database", "architecture", "algorithm", "deployment", "testing",
	"latency", "cache", "scalability", "framework", "pipeline", "monitoring",
}

var roleTerms = []string{
	"team", "ownership", "stakeholder", "collaborate", "mentor", "deliver",
	"customer", "business", "impact", "responsibility",
}

var fillerWords = []string{
	"uh", "um", "like", "you know", "sort of", "kind of", "basically", "actually",
}
