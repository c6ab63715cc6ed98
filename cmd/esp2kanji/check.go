package main

import (
	"fmt"

	esp2kanji "github.com/takatakatake/go-esp2kanji"
)

// runCheckCommand validates a rule file and reports its shape: per-list
// rule counts, duplicate source words within a list, and placeholder
// collisions across lists. Exit code is non-zero only when the file
// cannot be loaded; duplicates are warnings.
func runCheckCommand(args []string, env *Environment) int {
	if len(args) != 1 {
		fmt.Fprintln(env.Stderr, "usage: esp2kanji check <rules.json>")
		return ExitUsage
	}

	rules, err := esp2kanji.LoadRuleSet(args[0])
	if err != nil {
		fmt.Fprintln(env.Stderr, err)
		return exitCodeFor(err)
	}

	fmt.Fprintf(env.Stdout, "%s: %d rule(s)\n", args[0], rules.Len())
	fmt.Fprintf(env.Stdout, "  global:    %d\n", len(rules.Global))
	fmt.Fprintf(env.Stdout, "  localized: %d\n", len(rules.Localized))
	fmt.Fprintf(env.Stdout, "  two-char:  %d\n", len(rules.TwoChar))

	warnings := 0
	warnings += reportDuplicateSources("global", rules.Global, env)
	warnings += reportDuplicateSources("localized", rules.Localized, env)
	warnings += reportDuplicateSources("two-char", rules.TwoChar, env)
	warnings += reportPlaceholderCollisions(rules, env)

	if warnings > 0 {
		fmt.Fprintf(env.Stdout, "%d warning(s)\n", warnings)
	} else {
		fmt.Fprintln(env.Stdout, "no issues found")
	}
	return ExitSuccess
}

// reportDuplicateSources warns about repeated source words within one list.
// Only the first occurrence of a duplicated word ever matches, so later
// entries are dead rules.
func reportDuplicateSources(list string, rules []esp2kanji.Rule, env *Environment) int {
	seen := make(map[string]int, len(rules))
	warnings := 0
	for i, r := range rules {
		if first, ok := seen[r.From]; ok {
			fmt.Fprintf(env.Stderr, "warning: %s rule %d duplicates %q (first at %d); the later rule never matches\n",
				list, i, r.From, first)
			warnings++
			continue
		}
		seen[r.From] = i
	}
	return warnings
}

// reportPlaceholderCollisions warns when the same placeholder string is
// used by more than one rule anywhere in the set. A shared placeholder
// makes the restore phase ambiguous.
func reportPlaceholderCollisions(rules *esp2kanji.RuleSet, env *Environment) int {
	type owner struct {
		list  string
		index int
	}
	seen := make(map[string]owner)
	warnings := 0

	check := func(list string, rs []esp2kanji.Rule) {
		for i, r := range rs {
			if r.Placeholder == "" {
				continue
			}
			if prev, ok := seen[r.Placeholder]; ok {
				fmt.Fprintf(env.Stderr, "warning: placeholder %q shared by %s rule %d and %s rule %d\n",
					r.Placeholder, prev.list, prev.index, list, i)
				warnings++
				continue
			}
			seen[r.Placeholder] = owner{list: list, index: i}
		}
	}

	check("global", rules.Global)
	check("localized", rules.Localized)
	check("two-char", rules.TwoChar)
	return warnings
}
