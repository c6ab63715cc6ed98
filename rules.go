package esp2kanji

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/takatakatake/go-esp2kanji/internal/pipeline"
)

// Rule is a single ordered replacement: a source literal, a target
// Kanji/markup string, and an optional per-rule sentinel. Rules missing a
// sentinel get a collision-free generated one at parse time.
type Rule struct {
	From        string
	To          string
	Placeholder string
}

// RuleSet holds the three disjoint ordered rule lists. Order within each
// list is significant: earlier rules take priority and are never reapplied
// to already-substituted spans.
type RuleSet struct {
	Global    []Rule // applied to all unguarded text
	Localized []Rule // applied only inside @...@ spans
	TwoChar   []Rule // two-character morphological roots, applied last
}

// JSON key names for the three rule lists. The long spellings are the keys
// used by the original rule-generation tooling; both are accepted.
var (
	globalKeys = []string{
		"global",
		"全域替换用のリスト(列表)型配列(replacements_final_list)",
	}
	localizedKeys = []string{
		"localized",
		"局部文字替换用のリスト(列表)型配列(replacements_list_for_localized_string)",
	}
	twoCharKeys = []string{
		"twochar",
		"二文字词根替换用のリスト(列表)型配列(replacements_list_for_2char)",
	}
)

// ParseRuleSet parses rule JSON: an object whose three named arrays each
// hold [from, to] or [from, to, placeholder] string tuples. Missing lists
// are treated as empty.
func ParseRuleSet(data []byte) (*RuleSet, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRuleParse, err)
	}

	global, err := parseRuleList(raw, globalKeys, "g")
	if err != nil {
		return nil, err
	}
	localized, err := parseRuleList(raw, localizedKeys, "l")
	if err != nil {
		return nil, err
	}
	twoChar, err := parseRuleList(raw, twoCharKeys, "t")
	if err != nil {
		return nil, err
	}

	return &RuleSet{Global: global, Localized: localized, TwoChar: twoChar}, nil
}

// parseRuleList decodes the first present key from keys into a rule list.
func parseRuleList(raw map[string]json.RawMessage, keys []string, kind string) ([]Rule, error) {
	var msg json.RawMessage
	for _, k := range keys {
		if m, ok := raw[k]; ok {
			msg = m
			break
		}
	}
	if msg == nil {
		return nil, nil
	}

	var tuples [][]string
	if err := json.Unmarshal(msg, &tuples); err != nil {
		return nil, fmt.Errorf("%w: list %q: %v", ErrRuleParse, keys[0], err)
	}

	rules := make([]Rule, 0, len(tuples))
	for i, tuple := range tuples {
		if len(tuple) < 2 || len(tuple) > 3 {
			return nil, fmt.Errorf("%w: list %q entry %d has %d elements (want 2 or 3)",
				ErrInvalidRule, keys[0], i, len(tuple))
		}
		if tuple[0] == "" {
			return nil, fmt.Errorf("%w: list %q entry %d has empty source", ErrInvalidRule, keys[0], i)
		}
		rule := Rule{From: tuple[0], To: tuple[1]}
		if len(tuple) == 3 && tuple[2] != "" {
			rule.Placeholder = tuple[2]
		} else {
			rule.Placeholder = pipeline.RuleSentinel(kind, i)
		}
		rules = append(rules, rule)
	}
	return rules, nil
}

// LoadRuleSet reads and parses a rule JSON file.
func LoadRuleSet(path string) (*RuleSet, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- user-provided path
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrRuleFileNotFound, path)
		}
		return nil, fmt.Errorf("reading rule file: %w", err)
	}
	return ParseRuleSet(data)
}

// Len returns the total number of rules across all three lists.
func (rs *RuleSet) Len() int {
	if rs == nil {
		return 0
	}
	return len(rs.Global) + len(rs.Localized) + len(rs.TwoChar)
}

// toPipelineRules converts a rule list to the engine's representation.
func toPipelineRules(rules []Rule) []pipeline.Rule {
	out := make([]pipeline.Rule, len(rules))
	for i, r := range rules {
		out[i] = pipeline.Rule(r)
	}
	return out
}
