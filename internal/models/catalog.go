package models

// SampleThread is a built-in placeholder thread used by the local data source
// and by the per-category top lists.
type SampleThread struct {
	Title    string
	Author   string
	Replies  int
	Category string
}

// SampleThreads is the fixed placeholder list, in display order.
var SampleThreads = []SampleThread{
	{Title: "Welcome! Read this first", Author: "ModTeam", Replies: 42, Category: "general"},
	{Title: "Best camera phone in 2025?", Author: "PixelPioneer", Replies: 31, Category: "photos"},
	{Title: "Your top 3 comfort movies", Author: "ReelFeely", Replies: 64, Category: "movies"},
	{Title: "Share your study hacks", Author: "FocusBuddy", Replies: 28, Category: "learn"},
	{Title: "Underrated indie games", Author: "QuestGiver", Replies: 57, Category: "gaming"},
	{Title: "Daily music rec thread 🎧", Author: "CrateDigger", Replies: 51, Category: "music"},
	{Title: "Resume roast (be nice)", Author: "HiringHelper", Replies: 19, Category: "work"},
	{Title: "Laptop buyers guide", Author: "NerdBird", Replies: 44, Category: "tech"},
	{Title: "Good deeds of the day", Author: "HelpHive", Replies: 22, Category: "help"},
	{Title: "World news catch‑up", Author: "MapMaker", Replies: 33, Category: "world"},
}

// maxTopThreads caps the per-category list.
const maxTopThreads = 8

// TopThreads returns the sample threads of the given category, at most 8.
// The "general" category lists every sample thread.
func TopThreads(categoryKey string) []SampleThread {
	result := make([]SampleThread, 0, maxTopThreads)
	for _, t := range SampleThreads {
		if len(result) == maxTopThreads {
			break
		}
		if t.Category == categoryKey || categoryKey == "general" {
			result = append(result, t)
		}
	}
	return result
}

// Download is a static file offered in the downloads section.
type Download struct {
	Name string
	Size string
}

var Downloads = []Download{
	{Name: "Community Guidelines.pdf", Size: "320 KB"},
	{Name: "Media Pack.zip", Size: "14.2 MB"},
	{Name: "Brand Palette (ASE).ase", Size: "120 KB"},
	{Name: "Starter Templates.zip", Size: "6.3 MB"},
}
