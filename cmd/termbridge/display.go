package main

import (
	"fmt"

	"github.com/fatih/color"

	"github.com/standardbeagle/termbridge/internal/lookup"
	"github.com/standardbeagle/termbridge/internal/terms"
)

// matchColors maps resolution attribution to output color: vetted matches
// print green/cyan, heuristic ones yellow.
var matchColors = map[lookup.MatchType]*color.Color{
	lookup.MatchExact:   color.New(color.FgGreen, color.Bold),
	lookup.MatchContext: color.New(color.FgCyan),
	lookup.MatchDefault: color.New(color.FgWhite),
	lookup.MatchFuzzy:   color.New(color.FgYellow),
}

func printResolution(term, language string, res lookup.Resolution) {
	c := matchColors[res.Match]
	if c == nil {
		c = color.New(color.FgWhite)
	}
	c.Printf("%s\n", res.Translation)
	if res.Match == lookup.MatchContext || res.Match == lookup.MatchFuzzy {
		fmt.Printf("  %s → %s  (%s, score %.2f)\n", term, language, res.Match, res.Score)
	} else {
		fmt.Printf("  %s → %s  (%s)\n", term, language, res.Match)
	}
}

func printMiss(term, language string) {
	color.New(color.FgRed).Printf("no match for %q in %s\n", term, language)
}

func printLanguages(store *terms.Store) {
	languages := store.Languages()
	if len(languages) == 0 {
		fmt.Println("terminology store is empty")
		return
	}
	for _, language := range languages {
		fmt.Printf("%-8s %d terms\n", language, store.Len(language))
	}
}

// languageStats summarizes one language's store contents: distinct terms,
// total records, and the default/contexted record split.
type languageStats struct {
	language  string
	terms     int
	records   int
	defaults  int
	contexted int
}

func collectStats(store *terms.Store) []languageStats {
	var stats []languageStats
	for _, language := range store.Languages() {
		st := languageStats{language: language, terms: store.Len(language)}
		for _, term := range store.Terms(language) {
			for _, rec := range store.GetAll(term, language) {
				st.records++
				if rec.IsDefault() {
					st.defaults++
				} else {
					st.contexted++
				}
			}
		}
		stats = append(stats, st)
	}
	return stats
}

func printStats(store *terms.Store) {
	stats := collectStats(store)
	if len(stats) == 0 {
		fmt.Println("terminology store is empty")
		return
	}
	for _, st := range stats {
		fmt.Printf("%-8s %d terms, %d records (%d default, %d contexted)\n",
			st.language, st.terms, st.records, st.defaults, st.contexted)
	}
}
