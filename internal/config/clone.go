// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0

package config

func cloneStringSlice(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}

func cloneStringMap(in map[string]string) map[string]string {
	if in == nil {
		return nil
	}
	out := make(map[string]string, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}

func cloneExtensions(in map[string]map[string]TokenValue) map[string]map[string]TokenValue {
	if in == nil {
		return nil
	}
	out := make(map[string]map[string]TokenValue, len(in))
	for category, tokens := range in {
		if tokens == nil {
			out[category] = nil
			continue
		}
		inner := make(map[string]TokenValue, len(tokens))
		for token, val := range tokens {
			inner[token] = TokenValue(cloneStringSlice(val))
		}
		out[category] = inner
	}
	return out
}
