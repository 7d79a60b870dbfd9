package agent

import "strings"

// trailingPunct is stripped from the end of candidate order-id tokens.
const trailingPunct = "?.!:,"

// ExtractOrderID pulls an order id such as ORD123 or a bare numeric id out of
// free text. "#" and "," act as separators, trailing punctuation is ignored,
// and the generic word "order" never counts as an id. The first qualifying
// token wins; existence is checked downstream by the order store.
func ExtractOrderID(text string) (string, bool) {
	replacer := strings.NewReplacer("#", " ", ",", " ")
	for _, token := range strings.Fields(replacer.Replace(text)) {
		candidate := strings.TrimRight(strings.ToUpper(token), trailingPunct)
		if candidate == "" || candidate == "ORDER" {
			continue
		}
		if strings.HasPrefix(candidate, "ORD") && len(candidate) > 3 {
			return candidate, true
		}
		if isDigits(candidate) {
			return candidate, true
		}
	}
	return "", false
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return len(s) > 0
}
