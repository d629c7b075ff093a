// Package section partitions a block's text into ordered, non-overlapping
// sections according to entity ranges and detected hashtag spans.
package section

import (
	"sort"

	"github.com/riverfjs/draftmd-go/internal/textutil"
	"github.com/riverfjs/draftmd-go/internal/types"
)

// Kind tags a section with its origin.
type Kind int

const (
	// KindPlain is untagged gap text between entity/hashtag spans.
	KindPlain Kind = iota
	// KindEntity is a span backed by an entity range.
	KindEntity
	// KindHashtag is a detected hashtag span.
	KindHashtag
)

// Section is a resolved half-open [Start, End) interval of block text in
// UTF-16 code units. EntityKey is meaningful only for KindEntity.
type Section struct {
	Kind      Kind
	EntityKey int
	Start     int
	End       int
}

// Split merges the block's entity ranges with detected hashtag spans into
// an ascending, non-overlapping, gap-filling partition of [0, len(text)).
//
// Entity ranges are listed before hashtag spans and the sort is stable on
// offset alone, so an entity wins a tie at the same offset; any range that
// starts inside an already-emitted section is dropped.
func Split(text []uint16, entityRanges []types.EntityRange, hash types.HashConfig) []Section {
	type tagged struct {
		kind   Kind
		key    int
		offset int
		length int
	}

	ranges := make([]tagged, 0, len(entityRanges))
	for _, er := range entityRanges {
		ranges = append(ranges, tagged{kind: KindEntity, key: er.Key, offset: er.Offset, length: er.Length})
	}
	for _, hr := range hashtagSpans(text, hash) {
		ranges = append(ranges, tagged{kind: KindHashtag, offset: hr.offset, length: hr.length})
	}
	sort.SliceStable(ranges, func(i, j int) bool { return ranges[i].offset < ranges[j].offset })

	var sections []Section
	cursor := 0
	n := len(text)
	for _, r := range ranges {
		if r.offset < cursor || r.offset >= n || r.length <= 0 {
			continue
		}
		if r.offset > cursor {
			sections = append(sections, Section{Kind: KindPlain, Start: cursor, End: r.offset})
		}
		end := r.offset + r.length
		if end > n {
			end = n
		}
		sections = append(sections, Section{Kind: r.kind, EntityKey: r.key, Start: r.offset, End: end})
		cursor = end
	}
	if cursor < n {
		sections = append(sections, Section{Kind: KindPlain, Start: cursor, End: n})
	}
	return sections
}

type span struct {
	offset int
	length int
}

// hashtagSpans scans text for hashtags. A hashtag starts at offset 0 when
// the text begins with the trigger, otherwise immediately after each
// separator+trigger occurrence, and runs until the next separator or end
// of text. Empty bodies are discarded. The scan restarts on the remaining
// text after each hashtag with a running base offset.
func hashtagSpans(text []uint16, cfg types.HashConfig) []span {
	trigger := textutil.Encode(cfg.Trigger)
	sep := textutil.Encode(cfg.Separator)
	if len(trigger) == 0 || len(sep) == 0 {
		return nil
	}
	sepTrigger := append(append([]uint16{}, sep...), trigger...)

	var spans []span
	base := 0
	rest := text
	for len(rest) > 0 {
		var hashStart int
		if textutil.HasPrefix(rest, trigger) {
			hashStart = 0
		} else {
			i := textutil.Index(rest, sepTrigger, 0)
			if i < 0 {
				break
			}
			hashStart = i + len(sep)
		}

		bodyStart := hashStart + len(trigger)
		hashEnd := textutil.Index(rest, sep, bodyStart)
		if hashEnd < 0 {
			hashEnd = len(rest)
		}
		if hashEnd > bodyStart {
			spans = append(spans, span{offset: base + hashStart, length: hashEnd - hashStart})
		}

		advance := hashEnd
		if advance < bodyStart {
			advance = bodyStart
		}
		if advance > len(rest) {
			advance = len(rest)
		}
		base += advance
		rest = rest[advance:]
	}
	return spans
}
