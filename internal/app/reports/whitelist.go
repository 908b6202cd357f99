package reports

import (
	"net/url"
	"strings"
)

// likeEscaper makes user text match literally inside a LIKE pattern
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// Filter is a whitelisted filter with a non-empty value
type Filter struct {
	Field FilterField
	Value string
}

// Arg returns the positional argument bound for the filter
func (f Filter) Arg() string {
	if f.Field.Match == MatchSubstring {
		return "%" + likeEscaper.Replace(f.Value) + "%"
	}
	return f.Value
}

// Normalized is the whitelisted form of a report request
type Normalized struct {
	Kind Kind
	// Filters holds the applied filters in the order the definition declares them
	Filters []Filter
	Sort    SortField
	// Echo holds every declared filter parameter exactly as supplied ("" when absent)
	Echo map[string]string
	// SortEcho is the sort parameter exactly as supplied
	SortEcho string
}

// Values returns the applied filters keyed by parameter name
func (n Normalized) Values() map[string]string {
	out := make(map[string]string, len(n.Filters))
	for _, f := range n.Filters {
		out[f.Field.Param] = f.Value
	}
	return out
}

// Normalize keeps only the parameters the report whitelists. Unknown keys are dropped,
// blank values are ignored and an unknown sort key falls back to the report default.
// It never fails; an unregistered kind yields an empty result.
func Normalize(kind Kind, params url.Values) Normalized {
	def, ok := Lookup(kind)
	if !ok {
		return Normalized{Kind: kind, Echo: map[string]string{}, SortEcho: params.Get(SortParam)}
	}
	return normalize(def, params)
}

func normalize(def *Definition, params url.Values) Normalized {
	n := Normalized{
		Kind:     def.Kind,
		Sort:     def.sortField(strings.TrimSpace(params.Get(SortParam))),
		Echo:     make(map[string]string, len(def.Filters)),
		SortEcho: params.Get(SortParam),
	}

	for _, field := range def.Filters {
		raw := params.Get(field.Param)
		n.Echo[field.Param] = raw

		value := strings.TrimSpace(raw)
		if value == "" {
			continue
		}
		n.Filters = append(n.Filters, Filter{Field: field, Value: value})
	}

	return n
}
