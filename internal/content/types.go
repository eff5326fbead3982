package content

import (
	"encoding/json"
	"strconv"
)

// PageRecord is one entry of the site page feed
type PageRecord struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	Summary    string    `json:"summary"`
	URL        string    `json:"url"`
	Tags       TagList   `json:"tags"`
	Headings   []Heading `json:"headings"`
	Highlights []string  `json:"highlights"`
}

// Heading is a section title listed for a page
type Heading struct {
	Title string `json:"title"`
}

// FaqRecord is one entry of the FAQ feed. Answer carries HTML markup.
type FaqRecord struct {
	ID       string      `json:"id"`
	Question string      `json:"question"`
	Answer   string      `json:"answer"`
	Tags     TagList     `json:"tags"`
	Sources  []FaqSource `json:"sources"`
}

// FaqSource cites supporting material for an answer
type FaqSource struct {
	Label string `json:"label"`
	URL   string `json:"url"`
}

// TagList tolerates the loosely typed tag arrays the feeds carry:
// numbers and booleans are coerced to their string form, anything else
// non-string is dropped.
type TagList []string

func (t *TagList) UnmarshalJSON(data []byte) error {
	var raw []any
	if err := json.Unmarshal(data, &raw); err != nil {
		// A lone scalar tag is treated as a single-element list.
		var one string
		if err2 := json.Unmarshal(data, &one); err2 == nil {
			*t = TagList{one}
			return nil
		}
		return err
	}

	tags := make(TagList, 0, len(raw))
	for _, v := range raw {
		switch tag := v.(type) {
		case string:
			tags = append(tags, tag)
		case float64:
			tags = append(tags, strconv.FormatFloat(tag, 'f', -1, 64))
		case bool:
			tags = append(tags, strconv.FormatBool(tag))
		}
	}
	*t = tags
	return nil
}
