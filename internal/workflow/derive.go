package workflow

import (
	"strings"

	"video-dashboard/internal/model"
)

// derivedRules maps reserved task keys to the predicate that fully determines
// their completion. Every other key is operator-controlled.
var derivedRules = map[string]func(model.Video) bool{
	// productType is the legacy key for the title task; both follow the title.
	"title":       titleFilled,
	"productType": titleFilled,
	"selectProducts": func(v model.Video) bool {
		if len(v.Products) == 0 {
			return false
		}
		for _, p := range v.Products {
			if strings.TrimSpace(p.Name) == "" {
				return false
			}
		}
		return true
	},
	"affiliateLinks": affiliateLinksReady,
	"generateDescription": func(v model.Video) bool {
		return strings.TrimSpace(v.Description) != ""
	},
	"tags": func(v model.Video) bool {
		return strings.TrimSpace(v.Tags) != ""
	},
	"thumbnail": func(v model.Video) bool {
		return strings.TrimSpace(v.Thumbnail) != ""
	},
	"generateScript": func(v model.Video) bool {
		return strings.TrimSpace(v.Script) != ""
	},
	"chapters": func(v model.Video) bool {
		return strings.TrimSpace(v.Chapters) != ""
	},
}

func titleFilled(v model.Video) bool {
	return strings.TrimSpace(v.Title) != ""
}

func affiliateLinksReady(v model.Video) bool {
	if len(v.Products) == 0 {
		return false
	}
	for _, p := range v.Products {
		if strings.TrimSpace(p.Name) == "" {
			return false
		}
		if len(p.Stores) == 0 {
			return false
		}
		for _, s := range p.Stores {
			if s.IsNotBivolt {
				if strings.TrimSpace(s.URL110V) == "" || strings.TrimSpace(s.URL220V) == "" {
					return false
				}
			} else if strings.TrimSpace(s.URL) == "" {
				return false
			}
		}
	}
	return true
}

// IsReservedKey reports whether a task key is governed by a derivation rule.
// Reserved keys cannot be toggled manually and cannot be reused for custom
// tasks in the stage editor.
func IsReservedKey(key string) bool {
	_, ok := derivedRules[key]
	return ok
}

// Derive returns a new checklist with every derived entry recomputed from the
// video's fields. Operator-controlled entries pass through untouched. Call
// ChecklistsEqual against the input to decide whether a writeback is needed.
func Derive(v model.Video) []model.ChecklistItem {
	out := make([]model.ChecklistItem, len(v.Checklist))
	copy(out, v.Checklist)
	for i, item := range out {
		if rule, ok := derivedRules[item.Key]; ok {
			out[i].Completed = rule(v)
		}
	}
	return out
}
