package unspsc

import "sort"

// restrictedSegments denote licensed or professional services. Codes in these
// segments may be requested but never offered.
var restrictedSegments = map[string]bool{
	"82": true,
	"83": true,
	"84": true,
	"85": true,
	"90": true,
}

// allowedSegments are safe in both requests and responses.
var allowedSegments = map[string]bool{
	"10": true,
	"25": true,
	"31": true,
	"39": true,
	"43": true,
	"45": true,
	"46": true,
	"47": true,
	"48": true,
	"49": true,
	"50": true,
	"55": true,
	"60": true,
	"72": true,
	"93": true,
}

var segmentTitles = map[string]string{
	"10": "Animal & Vegetable Products",
	"25": "Transportation & Storage",
	"31": "Tools & Hardware",
	"39": "Electrical Equipment",
	"43": "Information Technology & Telecom",
	"45": "Musical Instruments",
	"46": "Environmental & Weather",
	"47": "Arts, Crafts & Hobbies",
	"48": "Sports, Toys & Recreation",
	"49": "Baby & Infant Products",
	"50": "Food, Beverage & Tobacco Products",
	"55": "Books, Media & Publishing",
	"60": "Education & Training",
	"72": "Medical Supplies & Personal Care",
	"82": "Legal Services",
	"83": "Licensed Trade Services",
	"84": "Financial & Insurance Services",
	"85": "Healthcare Services",
	"90": "Clinical Counseling & Therapy",
	"93": "Social Services & Community Support",
}

// IsRestrictedSegment reports whether segment is a professional-service segment.
func IsRestrictedSegment(segment string) bool {
	return restrictedSegments[segment]
}

// IsAllowedSegment reports whether segment may appear in any message type.
func IsAllowedSegment(segment string) bool {
	return allowedSegments[segment]
}

// RestrictedSegments returns the restricted segments in ascending order.
func RestrictedSegments() []string {
	return sortedKeys(restrictedSegments)
}

// AllowedSegments returns the always-allowed segments in ascending order.
func AllowedSegments() []string {
	return sortedKeys(allowedSegments)
}

// SegmentTitle returns the human-readable title of a segment.
func SegmentTitle(segment string) (string, bool) {
	t, ok := segmentTitles[segment]
	return t, ok
}

// Segments returns the distinct segments present in the registry, in
// registry order.
func Segments() []string {
	seen := make(map[string]bool)
	var out []string
	for _, e := range table {
		s := Segment(string(e.Code))
		if !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	return out
}

func sortedKeys(m map[string]bool) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
