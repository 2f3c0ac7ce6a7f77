package chat

import "regexp"

// currentInfoRe matches lexical cues that a question is about the live
// world: temporal words, news/weather/market vocabulary, and recent years.
// Word boundaries keep "now" from firing inside "know".
var currentInfoRe = regexp.MustCompile(`(?i)\b(` +
	`today|tonight|yesterday|tomorrow|right now|currently|latest|recent(ly)?|` +
	`news|headlines|breaking|happening|` +
	`weather|forecast|temperature|` +
	`price|prices|cost|stock|stocks|market|exchange rate|crypto|bitcoin|` +
	`score|scores|who won|playing|` +
	`this (week|month|year|morning|evening)|` +
	`20(2[3-9]|[3-9][0-9])` +
	`)\b`)

// ShouldSearch decides, from the message text alone, whether external
// retrieval is worth attempting. Pure and stateless: it never consults a
// service and never blocks. False negatives are fine: the system prompt
// already tells the model to caveat stale knowledge. False positives cost
// one retrieval call.
func ShouldSearch(message string) bool {
	return currentInfoRe.MatchString(message)
}
