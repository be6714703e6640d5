package loader

import (
	"bytes"
	"strings"
	"testing"

	"github.com/infinivision/datrie/errmsg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/unicode"
)

func TestLoad(t *testing.T) {
	in := "# comment\ncat\tX\r\n\ndog\tbow\twow\ncat\tY\nempty\t\n"
	ps, err := Load(strings.NewReader(in), Config{})
	require.NoError(t, err)
	assert.Equal(t, []Pair{
		{"cat", "X"},
		{"dog", "bow\twow"},
		{"cat", "Y"},
		{"empty", ""},
	}, ps)
}

func TestLoadSeparator(t *testing.T) {
	ps, err := Load(strings.NewReader("a => 1\nb => 2\n"), Config{Separator: " => "})
	require.NoError(t, err)
	assert.Equal(t, []Pair{{"a", "1"}, {"b", "2"}}, ps)
}

func TestLoadBadLine(t *testing.T) {
	_, err := Load(strings.NewReader("a\t1\nnoseparator\n"), Config{})
	require.ErrorIs(t, err, errmsg.BadLine)
	assert.Contains(t, err.Error(), "line 2")
}

func TestLoadEncodings(t *testing.T) {
	const text = "辞書\tdictionary\n日本語\tJapanese\n"
	want := []Pair{{"辞書", "dictionary"}, {"日本語", "Japanese"}}

	sjis, err := japanese.ShiftJIS.NewEncoder().String(text)
	require.NoError(t, err)
	eucjp, err := japanese.EUCJP.NewEncoder().String(text)
	require.NoError(t, err)
	utf16, err := unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewEncoder().String(text)
	require.NoError(t, err)

	tests := []struct {
		encoding string
		in       string
	}{
		{"", text},
		{"utf-8", "\ufeff" + text},
		{"Shift_JIS", sjis},
		{"euc-jp", eucjp},
		{"utf-16", utf16},
	}
	for _, tt := range tests {
		t.Run(tt.encoding, func(t *testing.T) {
			ps, err := Load(bytes.NewBufferString(tt.in), Config{Encoding: tt.encoding})
			require.NoError(t, err)
			assert.Equal(t, want, ps)
		})
	}
}

func TestUnknownEncoding(t *testing.T) {
	_, err := Load(strings.NewReader(""), Config{Encoding: "ebcdic"})
	assert.ErrorIs(t, err, errmsg.UnknownEncoding)
}
