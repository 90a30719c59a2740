package settings

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMetaPreprocessor(t *testing.T) {
	tests := []struct {
		name string
		text string
		meta Metadata
		body []string
	}{
		{
			name: "DashDelimited",
			text: "---\nproject: Demo\nauthor: Someone\n---\nBody",
			meta: Metadata{"project": []string{"Demo"}, "author": []string{"Someone"}},
			body: []string{"Body"},
		},
		{
			name: "BlankLineTerminator",
			text: "project: Demo\n\nFirst\n\nSecond\n",
			meta: Metadata{"project": []string{"Demo"}},
			body: []string{"First", "", "Second"},
		},
		{
			name: "DotsTerminator",
			text: "project: Demo\n...\nBody",
			meta: Metadata{"project": []string{"Demo"}},
			body: []string{"Body"},
		},
		{
			name: "ContinuationLines",
			text: "src_dir: ./a\n    ./b\n\t./c\nquiet: false\n\nBody",
			meta: Metadata{"src_dir": []string{"./a", "./b", "./c"}, "quiet": []string{"false"}},
			body: []string{"Body"},
		},
		{
			name: "KeysLowerCased",
			text: "Project_URL: https://example.com\n\n",
			meta: Metadata{"project_url": []string{"https://example.com"}},
			body: []string{},
		},
		{
			name: "RepeatedKeyAppends",
			text: "macro: A\nmacro: B\n\nBody",
			meta: Metadata{"macro": []string{"A", "B"}},
			body: []string{"Body"},
		},
		{
			name: "NoMetadata",
			text: "# Heading\n\nText",
			meta: Metadata{},
			body: []string{"# Heading", "", "Text"},
		},
		{
			name: "BodyStartsWithoutTerminator",
			text: "project: Demo\n# Heading",
			meta: Metadata{"project": []string{"Demo"}},
			body: []string{"# Heading"},
		},
		{
			name: "WindowsLineEndings",
			text: "project: Demo\r\n\r\nBody\r\n",
			meta: Metadata{"project": []string{"Demo"}},
			body: []string{"Body"},
		},
		{
			name: "Empty",
			text: "",
			meta: Metadata{},
			body: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			meta, body := MetaPreprocessor{}.Extract(tt.text)
			assert.Equal(t, tt.meta, meta)
			assert.Equal(t, tt.body, body)
		})
	}
}
