package hardware

import "testing"

func TestLookup(t *testing.T) {
	tests := []struct {
		raw    string
		want   string
		wantOK bool
	}{
		{raw: "iPhone6,1", want: "iPhone 5s", wantOK: true},
		{raw: "iPod4,1", want: "iPod touch (4th generation)", wantOK: true},
		{raw: "iPad2,5", want: "iPad mini", wantOK: true},
		{raw: "iPhone99,1", wantOK: false},
		{raw: "x86_64", wantOK: false},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, ok := Lookup(Parse(tt.raw))
			if ok != tt.wantOK {
				t.Fatalf("Lookup(%q) ok = %v, want %v", tt.raw, ok, tt.wantOK)
			}
			if got.Name != tt.want {
				t.Errorf("Lookup(%q).Name = %q, want %q", tt.raw, got.Name, tt.want)
			}
		})
	}
}

func TestCatalog_Ordered(t *testing.T) {
	models := Catalog()
	if len(models) == 0 {
		t.Fatal("Catalog() is empty")
	}

	prev := Parse(models[0].Identifier)
	for _, m := range models[1:] {
		cur := Parse(m.Identifier)
		if !cur.Valid() {
			t.Fatalf("catalog entry %q does not parse", m.Identifier)
		}
		if cur.Family < prev.Family ||
			(cur.Family == prev.Family && cur.Major < prev.Major) ||
			(cur.Family == prev.Family && cur.Major == prev.Major && cur.Minor <= prev.Minor) {
			t.Errorf("catalog out of order: %s after %s", m.Identifier, prev)
		}
		prev = cur
	}
}
