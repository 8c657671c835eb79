package freight

import "strings"

// tagKeys are the key names under which stored vehicle/body type objects
// have been observed to carry their tag. Normalization tries them in order.
var tagKeys = []string{"tag", "label", "nome", "type", "value", "categoria"}

var labelKeys = []string{"label", "nome"}

// NormalizeTagged converts a heterogeneous stored collection (plain string
// tags, or objects keyed by any of the known key names) into canonical
// TaggedOption values. Unrecognizable entries are dropped rather than
// guessed at. Runs once at the read boundary so matching code never sees raw
// shapes.
func NormalizeTagged(raw []interface{}) []TaggedOption {
	if len(raw) == 0 {
		return nil
	}
	out := make([]TaggedOption, 0, len(raw))
	for _, item := range raw {
		switch v := item.(type) {
		case string:
			if tag := strings.TrimSpace(v); tag != "" {
				out = append(out, TaggedOption{Tag: tag, Label: tag, Selected: true})
			}
		case map[string]interface{}:
			opt, ok := normalizeObject(v)
			if ok {
				out = append(out, opt)
			}
		}
	}
	return out
}

func normalizeObject(obj map[string]interface{}) (TaggedOption, bool) {
	var opt TaggedOption

	for _, key := range tagKeys {
		if s, ok := stringValue(obj[key]); ok {
			opt.Tag = s
			break
		}
	}
	if opt.Tag == "" {
		return TaggedOption{}, false
	}

	opt.Label = opt.Tag
	for _, key := range labelKeys {
		if s, ok := stringValue(obj[key]); ok {
			opt.Label = s
			break
		}
	}

	opt.Selected = true
	if sel, ok := obj["selected"].(bool); ok {
		opt.Selected = sel
	}

	return opt, true
}

func stringValue(v interface{}) (string, bool) {
	s, ok := v.(string)
	if !ok {
		return "", false
	}
	s = strings.TrimSpace(s)
	return s, s != ""
}

// TagSet builds a case-folded lookup set from a tag list.
func TagSet(tags []string) map[string]struct{} {
	set := make(map[string]struct{}, len(tags))
	for _, t := range tags {
		t = strings.ToLower(strings.TrimSpace(t))
		if t != "" {
			set[t] = struct{}{}
		}
	}
	return set
}

// IntersectsTags reports whether any selected option's tag is in the filter
// set. Comparison is case-insensitive over normalized tags.
func IntersectsTags(options []TaggedOption, filterSet map[string]struct{}) bool {
	for _, opt := range options {
		if !opt.Selected {
			continue
		}
		if _, ok := filterSet[strings.ToLower(opt.Tag)]; ok {
			return true
		}
	}
	return false
}
