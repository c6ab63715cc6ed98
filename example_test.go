package esp2kanji_test

import (
	"context"
	"fmt"

	esp2kanji "github.com/takatakatake/go-esp2kanji"
)

// Example demonstrates basic text replacement with a custom rule set.
func Example() {
	rules, err := esp2kanji.ParseRuleSet([]byte(`{"global": [["kafo", "珈琲"]]}`))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	conv, err := esp2kanji.NewConverter(esp2kanji.WithRules(rules))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	defer conv.Close()

	result, err := conv.Convert(context.Background(), esp2kanji.Input{
		Text:   "mi ŝatas kafon",
		Format: esp2kanji.FormatText,
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(result.Text)
	// Output: mi ŝatas 珈琲n
}

// Example_markedSpans demonstrates the two span markers: %...% protects
// text from replacement, @...@ applies only the localized rule list.
func Example_markedSpans() {
	rules, err := esp2kanji.ParseRuleSet([]byte(`{
		"global": [["pano", "パン"]],
		"localized": [["pano", "麺麭"]]
	}`))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	conv, err := esp2kanji.NewConverter(esp2kanji.WithRules(rules))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	defer conv.Close()

	result, err := conv.Convert(context.Background(), esp2kanji.Input{
		Text:   "%pano% kaj @pano@ kaj pano",
		Format: esp2kanji.FormatText,
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(result.Text)
	// Output: %pano% kaj 麺麭 kaj パン
}

// Example_notation demonstrates diacritic notation conversion. Input may
// mix notations; the output uses the requested one.
func Example_notation() {
	rules, err := esp2kanji.ParseRuleSet([]byte(`{}`))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	conv, err := esp2kanji.NewConverter(esp2kanji.WithRules(rules))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	defer conv.Close()

	result, err := conv.Convert(context.Background(), esp2kanji.Input{
		Text:     "cxu vi s^atas ĵaŭdon",
		Format:   esp2kanji.FormatText,
		Notation: esp2kanji.NotationX,
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(result.Text)
	// Output: cxu vi sxatas jxauxdon
}
