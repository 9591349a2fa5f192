package card

import "regexp"

// Placeholder stands in for hidden cloze content until the card is revealed.
const Placeholder = "____"

// clozeSpan matches {{cN::hidden}} with a lazy capture of the hidden text.
var clozeSpan = regexp.MustCompile(`\{\{c\d+::(.*?)\}\}`)

// RenderCloze produces the display string for cloze text. Every span is
// replaced with its hidden content when revealed, or with the placeholder
// otherwise; reveal is all-or-nothing for the whole card. Text without any
// span passes through unchanged.
func RenderCloze(text string, revealed bool) string {
	if revealed {
		return clozeSpan.ReplaceAllString(text, "$1")
	}
	return clozeSpan.ReplaceAllString(text, Placeholder)
}
