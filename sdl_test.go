package sdl

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/signadot/sdl-format/go-sdl/ir"
	"github.com/signadot/sdl-format/go-sdl/literal"

	"github.com/google/go-cmp/cmp"
)

type valueTest struct {
	in  string
	out string
	err bool
}

var valueTests = []valueTest{
	{in: `"hi"`, out: `"hi"`},
	{in: "`raw\\n`", out: `"raw\\n"`},
	{in: `'x'`, out: `'x'`},
	{in: `5`, out: `5`},
	{in: `5L`, out: `5L`},
	{in: `5.5f`, out: `5.5F`},
	{in: `1.25bd`, out: `1.25BD`},
	{in: ` on `, out: `true`},
	{in: `null`, out: `null`},
	{in: `[aGk=]`, out: `[aGk=]`},
	{in: `2005/12/31`, out: `2005/12/31`},
	{in: `2005/12/31 12:30-UTC`, out: `2005/12/31 12:30:00-UTC`},
	{in: `1d:2:03:04.5`, out: `1d:02:03:04.500`},
	{in: `foo`, err: true},
	{in: `"open`, err: true},
	{in: `2005/13/01`, err: true},
}

func TestValue(t *testing.T) {
	for _, vt := range valueTests {
		t.Run(vt.in, func(t *testing.T) {
			v, err := Value(vt.in)
			if vt.err {
				if err == nil {
					t.Fatalf("expected error, got %s", v)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if got := v.String(); got != vt.out {
				t.Errorf("got %s want %s", got, vt.out)
			}
		})
	}
}

func TestListMap(t *testing.T) {
	vs, err := List(`1 "two" 3.0 2005/12/31 12:30`)
	if err != nil {
		t.Fatal(err)
	}
	want := []literal.Value{
		literal.Int32(1),
		literal.String("two"),
		literal.Float64(3),
		literal.DateTime(time.Date(2005, 12, 31, 12, 30, 0, 0, time.Local), ""),
	}
	if diff := cmp.Diff(want, vs, cmp.Comparer(literal.Equal)); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}

	m, err := Map(`size=5 x:name="joe" d=00:01:00`)
	if err != nil {
		t.Fatal(err)
	}
	wantMap := map[string]literal.Value{
		"size": literal.Int32(5),
		"name": literal.String("joe"),
		"d":    literal.FromDuration(literal.Minute),
	}
	if diff := cmp.Diff(wantMap, m, cmp.Comparer(literal.Equal)); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestFormat(t *testing.T) {
	s, err := Format(int64(7))
	if err != nil {
		t.Fatal(err)
	}
	if s != "7L" {
		t.Errorf("got %s", s)
	}
	if _, err := Format(struct{}{}); err == nil {
		t.Error("expected error")
	}
}

const doc = `# people
person:name "Akiko" birthday=1976/04/18 {
    address "Tokyo"
    1 2 3
}
empty
`

func TestReadWrite(t *testing.T) {
	root, err := ReadString(doc)
	if err != nil {
		t.Fatal(err)
	}
	if root.Name() != RootName || root.NumChildren() != 2 {
		t.Fatalf("unexpected root %v", root.Children())
	}

	buf := bytes.NewBuffer(nil)
	if err := Write(buf, root, false); err != nil {
		t.Fatal(err)
	}
	want := "person:name \"Akiko\" birthday=1976/04/18 {\n    address \"Tokyo\"\n    1 2 3\n}\nempty\n"
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}

	buf.Reset()
	if err := Write(buf, root, true); err != nil {
		t.Fatal(err)
	}
	again, err := ReadString(buf.String())
	if err != nil {
		t.Fatal(err)
	}
	if again.NumChildren() != 1 || !ir.Equal(again.Children()[0], root) {
		t.Errorf("root round trip:\n%s", buf.String())
	}
}

func TestReadWriteFile(t *testing.T) {
	root, err := ReadString(doc)
	if err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(t.TempDir(), "out.sdl")
	if err := WriteFile(path, root, false); err != nil {
		t.Fatal(err)
	}
	got, err := ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !ir.Equal(root, got) {
		d, _ := os.ReadFile(path)
		t.Errorf("file round trip:\n%s", d)
	}
	if _, err := ReadFile(filepath.Join(t.TempDir(), "missing.sdl")); err == nil {
		t.Error("expected error")
	}
}
