package chapters

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"

	"mdbi/book"
	"mdbi/common"
)

func TestRenumber(t *testing.T) {
	tests := []struct {
		name  string
		input []book.Item
		want  []book.Item
	}{
		{
			name:  "empty",
			input: []book.Item{},
			want:  []book.Item{},
		},
		{
			name: "unnumbered and separators do not take positions",
			input: []book.Item{
				ch("A", "a.md", num(1)),
				book.NewSeparatorItem(),
				ch("B", "b.md", nil),
				ch("C", "c.md", num(2)),
			},
			want: []book.Item{
				ch("A", "a.md", num(1)),
				book.NewSeparatorItem(),
				ch("B", "b.md", nil),
				ch("C", "c.md", num(2)),
			},
		},
		{
			name: "gaps are closed",
			input: []book.Item{
				ch("A", "a.md", num(1)),
				ch("C", "c.md", num(3)),
				book.NewPartTitleItem("Part"),
				ch("E", "e.md", num(5)),
			},
			want: []book.Item{
				ch("A", "a.md", num(1)),
				ch("C", "c.md", num(2)),
				book.NewPartTitleItem("Part"),
				ch("E", "e.md", num(3)),
			},
		},
		{
			name: "children nested under new parent number",
			input: []book.Item{
				ch("A", "a.md", num(1)),
				ch("C", "c.md", num(3),
					ch("D", "d.md", num(3, 2)),
					ch("E", "e.md", num(3, 5), ch("F", "f.md", num(3, 5, 1))),
				),
			},
			want: []book.Item{
				ch("A", "a.md", num(1)),
				ch("C", "c.md", num(2),
					ch("D", "d.md", num(2, 1)),
					ch("E", "e.md", num(2, 2), ch("F", "f.md", num(2, 2, 1))),
				),
			},
		},
		{
			name: "subtree of unnumbered chapter is frozen",
			input: []book.Item{
				ch("Prefix", "prefix.md", nil, ch("X", "x.md", num(7, 3))),
				ch("A", "a.md", num(4)),
			},
			want: []book.Item{
				ch("Prefix", "prefix.md", nil, ch("X", "x.md", num(7, 3))),
				ch("A", "a.md", num(1)),
			},
		},
		{
			name: "unnumbered child does not shift numbered siblings",
			input: []book.Item{
				ch("A", "a.md", num(1),
					ch("B", "b.md", nil),
					ch("C", "c.md", num(1, 9)),
				),
			},
			want: []book.Item{
				ch("A", "a.md", num(1),
					ch("B", "b.md", nil),
					ch("C", "c.md", num(1, 1)),
				),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Renumber(tt.input)
			if diff := diffItems(tt.want, got); diff != "" {
				t.Errorf("Renumber() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestRenumber_NumbersDoNotShareStorage(t *testing.T) {
	items := Renumber([]book.Item{
		ch("A", "a.md", num(1), ch("B", "b.md", num(1, 1)), ch("C", "c.md", num(1, 2))),
		ch("D", "d.md", num(2)),
	})

	b := items[0].Chapter.SubItems[0].Chapter
	c := items[0].Chapter.SubItems[1].Chapter
	b.Number[0] = 99

	if items[0].Chapter.Number[0] != 1 || c.Number[0] != 1 || items[1].Chapter.Number[0] != 2 {
		t.Errorf("numbers share storage: A=%v C=%v D=%v", items[0].Chapter.Number, c.Number, items[1].Chapter.Number)
	}
}

func TestRenumber_NumberedStateKept(t *testing.T) {
	items := Renumber([]book.Item{
		ch("Draft", "", nil),
		ch("A", "a.md", num(3), ch("Aside", "a/aside.md", nil, ch("X", "a/x.md", num(3, 1, 1)))),
		ch("Appendix", "appendix.md", nil),
	})

	var got []string
	(&book.Book{Sections: items}).Chapters(func(c *book.Chapter) {
		got = append(got, fmt.Sprintf("%s:%v", c.Name, c.Numbered()))
	})
	want := []string{"Draft:false", "A:true", "Aside:false", "X:true", "Appendix:false"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("numbered state mismatch (-want +got):\n%s", diff)
	}
}

func TestRemoveThenRenumber(t *testing.T) {
	input := []book.Item{
		ch("A", "a.md", num(1)),
		ch("B", "_b.md", num(2), ch("C", "c.md", num(2, 1)), ch("D", "_d.md", num(2, 2)), ch("E", "e.md", num(2, 3))),
		ch("F", "f.md", num(3)),
	}

	got := Renumber(Remove(input, "_", common.ChildrenPolicyKeep))
	want := []book.Item{
		ch("A", "a.md", num(1)),
		placeholder("B", num(2), ch("C", "c.md", num(2, 1)), ch("E", "e.md", num(2, 2))),
		ch("F", "f.md", num(3)),
	}
	if diff := diffItems(want, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}
