package cli

import (
	"fmt"
	"strconv"
	"strings"

	"video-dashboard/internal/library"
	"video-dashboard/internal/model"
)

// resolveVideo matches a user-supplied reference against the library. A
// reference is a full id, a unique id prefix, or a video number written as
// "#12" or "12". Numbers match drafts first, then published.
func resolveVideo(lib *library.Library, ref string) (model.Video, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return model.Video{}, fmt.Errorf("empty video reference")
	}

	if num, ok := parseVideoNumber(ref); ok {
		for _, v := range append(lib.Drafts(), lib.Published()...) {
			if v.VideoNumber == num {
				return v, nil
			}
		}
		return model.Video{}, fmt.Errorf("no video with number %d", num)
	}

	if v, ok := lib.Get(ref); ok {
		return v, nil
	}

	var matches []model.Video
	for _, v := range append(lib.Drafts(), lib.Published()...) {
		if strings.HasPrefix(v.ID, ref) {
			matches = append(matches, v)
		}
	}
	switch len(matches) {
	case 0:
		return model.Video{}, fmt.Errorf("no video matches %q", ref)
	case 1:
		return matches[0], nil
	default:
		return model.Video{}, fmt.Errorf("reference %q is ambiguous (%d matches)", ref, len(matches))
	}
}

func parseVideoNumber(ref string) (int, bool) {
	s, hadHash := strings.CutPrefix(ref, "#")
	// A bare number only counts when short enough to not collide with
	// id prefixes.
	if !hadHash && len(s) > 6 {
		return 0, false
	}
	num, err := strconv.Atoi(s)
	if err != nil || num <= 0 {
		return 0, false
	}
	return num, true
}
