// Package receipt extracts a currency and total amount from raw receipt
// text, e.g. the output of an OCR pass done client-side.
package receipt

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
)

var currencySymbols = map[string]string{
	"$":   "USD",
	"€":   "EUR",
	"£":   "GBP",
	"₹":   "INR",
	"¥":   "JPY",
	"₩":   "KRW",
	"₽":   "RUB",
	"R$":  "BRL",
	"C$":  "CAD",
	"A$":  "AUD",
	"NZ$": "NZD",
	"CHF": "CHF",
}

// multi-char symbols shadow the bare "$", so they are tested first
var multiCharSymbols = []string{"R$", "A$", "C$", "NZ$"}

var singleCharSymbols = []string{"₹", "$", "€", "£", "¥", "₩", "₽"}

var isoCodes = map[string]struct{}{
	"USD": {}, "EUR": {}, "GBP": {}, "INR": {}, "JPY": {}, "KRW": {}, "RUB": {},
	"BRL": {}, "CAD": {}, "AUD": {}, "NZD": {}, "CHF": {}, "SGD": {}, "HKD": {},
	"ZAR": {}, "AED": {}, "SAR": {}, "NOK": {}, "SEK": {}, "DKK": {},
}

var totalHints = []string{"total", "amount due", "grand total", "balance due", "amount", "sum"}

var (
	moneyRe = regexp.MustCompile(`(\d{1,3}(?:[, ]\d{3})+|\d+)([.,]\d{2})?`)
	isoRe   = regexp.MustCompile(`\b([A-Z]{3})\b`)
)

// Result is what could be recovered from the text. Either field may be
// empty/nil when detection fails.
type Result struct {
	CurrencyCode string
	Amount       *float64
}

// Parse scans the text line by line. The currency is the first symbol or ISO
// code found. Amount candidates are scored: +5 when the line carries a total
// hint, +3 when it carries the detected currency, ties broken toward later
// lines since totals usually sit at the bottom.
func Parse(text string) Result {
	var lines []string
	for _, l := range strings.Split(text, "\n") {
		if l = strings.TrimSpace(l); l != "" {
			lines = append(lines, l)
		}
	}

	currency := detectCurrency(lines)

	type candidate struct {
		score int
		idx   int
		val   float64
	}
	var cands []candidate
	for idx, line := range lines {
		matches := moneyRe.FindAllStringSubmatch(line, -1)
		if len(matches) == 0 {
			continue
		}
		score := 0
		lc := strings.ToLower(line)
		for _, h := range totalHints {
			if strings.Contains(lc, h) {
				score += 5
				break
			}
		}
		if currency != "" && strings.Contains(line, currency) {
			score += 3
		}
		for _, m := range matches {
			raw := strings.NewReplacer(" ", "", ",", "").Replace(m[1])
			if m[2] != "" {
				raw += "." + m[2][1:]
			}
			val, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				continue
			}
			cands = append(cands, candidate{score: score, idx: idx, val: val})
		}
	}

	res := Result{CurrencyCode: currency}
	if len(cands) > 0 {
		sort.SliceStable(cands, func(i, j int) bool {
			if cands[i].score != cands[j].score {
				return cands[i].score > cands[j].score
			}
			return cands[i].idx > cands[j].idx
		})
		res.Amount = &cands[0].val
	}
	return res
}

func detectCurrency(lines []string) string {
	for _, line := range lines {
		for _, sym := range multiCharSymbols {
			if strings.Contains(line, sym) {
				return currencySymbols[sym]
			}
		}
		for _, sym := range singleCharSymbols {
			if strings.Contains(line, sym) {
				return currencySymbols[sym]
			}
		}
		for _, m := range isoRe.FindAllStringSubmatch(line, -1) {
			if _, ok := isoCodes[m[1]]; ok {
				return m[1]
			}
		}
	}
	return ""
}
