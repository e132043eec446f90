package catalog_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/kaheicheng13-source/Interactive-Teaching/internal/catalog"
)

const sampleCSV = `id,question,A,B,C,D,correctIndex,correctLetter,category,difficulty,tip
1,"What does Math.floor(4.7) return?",4,5,4.7,undefined,0,A,math,easy,Floor always rounds down
2,"What does [1,2,3].map(x => x*2) return?","[2,4,6]","[1,2,3]",undefined,6,0,A,arrays,medium,
`

func TestFromText(t *testing.T) {
	cat := catalog.FromText(sampleCSV)

	if cat.Count() != 2 {
		t.Fatalf("expected 2 questions, got %d", cat.Count())
	}

	q := cat.Questions()[1]
	if q.ID != 2 {
		t.Errorf("expected id 2, got %d", q.ID)
	}
	if q.Choices[0] != "[2,4,6]" {
		t.Errorf("expected quoted choice preserved, got %q", q.Choices[0])
	}
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "questions.csv")
	if err := os.WriteFile(path, []byte(sampleCSV), 0o644); err != nil {
		t.Fatal(err)
	}

	cat, err := catalog.Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cat.Count() != 2 {
		t.Errorf("expected 2 questions, got %d", cat.Count())
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := catalog.Load(filepath.Join(t.TempDir(), "absent.csv"))
	if err == nil {
		t.Error("expected error for missing catalog file")
	}
}

func TestCategories_DistinctFirstSeenOrder(t *testing.T) {
	csv := "id,question,A,B,C,D,correctIndex,correctLetter,category,difficulty,tip\n" +
		"1,q1,a,b,c,d,0,A,math,easy,\n" +
		"2,q2,a,b,c,d,0,A,arrays,easy,\n" +
		"3,q3,a,b,c,d,0,A,math,easy,\n" +
		"4,q4,a,b,c,d,0,A,,easy,\n"

	got := catalog.FromText(csv).Categories()

	want := []string{"math", "arrays"}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("category %d: expected %q, got %q", i, want[i], got[i])
		}
	}
}

func TestEmpty(t *testing.T) {
	if catalog.Empty().Count() != 0 {
		t.Error("expected empty catalog to hold no questions")
	}
}
