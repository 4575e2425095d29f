package importer

import (
	"strconv"
	"strings"
)

// Import files arrive with headers in English or Portuguese, with BOMs and
// inconsistent casing. norm flattens a header cell so aliases can match.
func norm(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "﻿")
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, "-", "")
	s = strings.ReplaceAll(s, "_", "")
	return s
}

type headerIndex map[string]int

func indexHeader(head []string) headerIndex {
	h := headerIndex{}
	for i, c := range head {
		h[norm(c)] = i
	}
	return h
}

func (h headerIndex) findAny(keys ...string) int {
	for _, k := range keys {
		if idx, ok := h[norm(k)]; ok {
			return idx
		}
	}
	return -1
}

// get guards against short rows.
func get(rec []string, idx int) string {
	if idx < 0 || idx >= len(rec) {
		return ""
	}
	return strings.TrimSpace(rec[idx])
}

// parseFloat accepts pt-BR comma decimals alongside dot decimals.
func parseFloat(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	if v, err := strconv.ParseFloat(s, 64); err == nil {
		return v, true
	}
	if v, err := strconv.ParseFloat(strings.ReplaceAll(s, ",", "."), 64); err == nil {
		return v, true
	}
	return 0, false
}
