package keywords

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const sampleName = "(000)[111](222) [333(444)] (9)(00){zzz} aaa_bbb-ccc ddd,eee.txt"

func TestExtract(t *testing.T) {
	got := NewExtractor().Extract(sampleName)
	assert.Equal(t,
		[]string{"000", "111", "222", "333(444)", "00", "zzz", "aaa", "bbb", "ccc", "ddd", "eee"},
		got)
}

func TestExtract_ExtensionIsIgnored(t *testing.T) {
	e := NewExtractor()
	names := []string{
		"report_2021-01-01",
		"(draft) invoice,tax",
		"写真_旅行",
		"[a]bc-de",
	}
	for _, name := range names {
		for _, ext := range []string{".txt", ".JPEG", ".mp4", ".7z"} {
			assert.Equal(t, e.Extract(name), e.Extract(name+ext), "%s%s", name, ext)
		}
	}
}

func TestExtract_Delimiters(t *testing.T) {
	e := NewExtractor()
	for _, d := range Delimiters {
		name := "alpha" + string(d) + "beta"
		assert.Equal(t, []string{"alpha", "beta"}, e.Extract(name), "delimiter %q", d)

		// 括号内部不拆分
		name = "[alpha" + string(d) + "beta]"
		assert.Equal(t, []string{"alpha" + string(d) + "beta"}, e.Extract(name), "bracketed delimiter %q", d)
	}
}

func TestExtract_DropsSingleCharacters(t *testing.T) {
	tests := []struct {
		name string
		want []string
	}{
		{"a_b_c.txt", nil},
		{"(x)[y]{z} ok.txt", []string{"ok"}},
		{"あ_いい_ううう.txt", []string{"いい", "ううう"}},
		{"é-ab", []string{"ab"}},
		{"", nil},
		{".txt", nil},
	}

	e := NewExtractor()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := e.Extract(tt.name)
			assert.Equal(t, tt.want, got)
			for _, k := range got {
				assert.Greater(t, len([]rune(k)), 1)
			}
		})
	}
}

func TestExtract_NonGreedyBrackets(t *testing.T) {
	e := NewExtractor()
	assert.Equal(t, []string{"ab", "cd"}, e.Extract("(ab)(cd)"))
	assert.Equal(t, []string{"ab)(cd"}, e.Extract("[ab)(cd]"))
	// 未闭合的括号保留在剩余文本中
	assert.Equal(t, []string{"(open", "close"}, e.Extract("(open close"))
}

func TestExtract_CamelCase(t *testing.T) {
	e := &Extractor{SplitCamelCase: true}
	assert.Equal(t,
		[]string{"camel", "Case", "File", "Name", "Could", "Be", "Parsed"},
		e.Extract("camelCase FileName Could BeParsed"))

	// 括号捕获不受影响
	assert.Equal(t, []string{"KeepMe", "split", "Me"}, e.Extract("[KeepMe] splitMe.txt"))
}

func TestExtract_CamelCaseBoundaries(t *testing.T) {
	e := &Extractor{SplitCamelCase: true}

	tests := []struct {
		in   string
		want []string
	}{
		{"Report2021.pdf", []string{"Report", "2021"}},
		{"HTTPServer_log.txt", []string{"HTTP", "Server", "log"}},
		{"aBcD.txt", []string{"Bc"}},
		{"lower.txt", []string{"lower"}},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, e.Extract(tt.in))
		})
	}
}

func TestStripExtension(t *testing.T) {
	assert.Equal(t, "archive.tar", StripExtension("archive.tar.gz"))
	assert.Equal(t, "notes", StripExtension("notes"))
	assert.Equal(t, "v1.2 notes", StripExtension("v1.2 notes"))
	assert.Equal(t, "photo.", StripExtension("photo."))
}
