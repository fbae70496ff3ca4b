package dump

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/grindlemire/go-imui"
)

func frame(t *testing.T) *imui.Context {
	t.Helper()
	c, err := imui.New(imui.WithMeasurer(imui.NewMockBackend(10)))
	if err != nil {
		t.Fatalf("imui.New() error: %v", err)
	}
	c.Begin(100, 50)
	c.Open(imui.BoxConfig{
		SizingX: imui.SizingFixed, SizingY: imui.SizingFixed,
		Width: 40, Height: 20,
		Padding: imui.EdgeAll(2),
		Margin:  imui.EdgeAll(1),
	})
	c.Text("hi", imui.TextStyle{Size: 10})
	c.Close()
	c.Layout()
	return c
}

func TestString_Plain(t *testing.T) {
	c := frame(t)

	got := String(c.Store(), Options{Plain: true})
	want := strings.Join([]string{
		"[0] content[x=0 y=0 w=100 h=50] padding[x=0 y=0 w=100 h=50] margin[x=0 y=0 w=100 h=50]",
		"    [1] content[x=3 y=3 w=40 h=20] padding[x=1 y=1 w=44 h=24] margin[x=0 y=0 w=46 h=26]",
		`        [2] "hi" content[x=3 y=3 w=20 h=10] padding[x=3 y=3 w=20 h=10] margin[x=3 y=3 w=20 h=10]`,
	}, "\n") + "\n"

	if got != want {
		t.Errorf("String() =\n%s\nwant\n%s", got, want)
	}
}

func TestLine_Options(t *testing.T) {
	type tc struct {
		id   imui.BoxID
		opts Options
		want string
	}

	c := frame(t)
	tests := map[string]tc{
		"cursor": {
			id:   0,
			opts: Options{Plain: true, Cursor: true},
			want: "cursor[x=100 y=50]",
		},
		"config": {
			id:   1,
			opts: Options{Plain: true, Config: true},
			want: "fixed/fixed top-to-bottom",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got := Line(c.Box(tt.id), tt.opts)
			if !strings.HasSuffix(got, tt.want) {
				t.Errorf("Line() = %q, want suffix %q", got, tt.want)
			}
		})
	}

	if got := Line(c.Box(2), Options{Plain: true, Config: true}); strings.Contains(got, "fixed") {
		t.Errorf("text line shows config: %q", got)
	}
}

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) { return 0, errors.New("closed") }

func TestWrite(t *testing.T) {
	c := frame(t)

	var buf bytes.Buffer
	if err := Write(&buf, c.Store(), Options{}); err != nil {
		t.Fatalf("Write() error: %v", err)
	}
	if n := strings.Count(buf.String(), "\n"); n != 3 {
		t.Errorf("Write() printed %d lines, want 3", n)
	}
	if !strings.Contains(buf.String(), `"hi"`) {
		t.Error("styled output lost the text")
	}

	if err := Write(failWriter{}, c.Store(), Options{}); err == nil {
		t.Error("Write() to a failing writer succeeded")
	}
}
