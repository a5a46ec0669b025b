package pairing

import "testing"

func starter(qty int, price int64) Line {
	return Line{DishID: 1, Category: Starter, UnitPrice: price, Qty: qty}
}

func mainDish(qty int, price int64) Line {
	return Line{DishID: 2, Category: Main, UnitPrice: price, Qty: qty}
}

func TestParseCategory(t *testing.T) {
	tests := []struct {
		in      string
		want    Category
		wantErr bool
	}{
		{"STARTER", Starter, false},
		{"MAIN", Main, false},
		{"DESSERT", Dessert, false},
		{"OTHER", Other, false},
		{"", "", true},
		{"starter", "", true},
		{"ENTRADA", "", true},
	}
	for _, tt := range tests {
		got, err := ParseCategory(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseCategory(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseCategory(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestComputeCountsAndSurplus(t *testing.T) {
	tests := []struct {
		name          string
		lines         []Line
		wantStarters  int
		wantMains     int
		wantMenus     int
		wantStarterEx int
		wantMainEx    int
	}{
		{name: "empty cart"},
		{
			name:         "one of each",
			lines:        []Line{starter(1, 1000), mainDish(1, 1500)},
			wantStarters: 1, wantMains: 1, wantMenus: 1,
		},
		{
			name:         "extra starters",
			lines:        []Line{starter(3, 1000), mainDish(1, 1500)},
			wantStarters: 3, wantMains: 1, wantMenus: 1, wantStarterEx: 2,
		},
		{
			name:      "only mains",
			lines:     []Line{mainDish(2, 1500)},
			wantMains: 2, wantMainEx: 2,
		},
		{
			name:         "desserts do not participate",
			lines:        []Line{starter(1, 1000), mainDish(1, 1500), {DishID: 3, Category: Dessert, UnitPrice: 500, Qty: 4}},
			wantStarters: 1, wantMains: 1, wantMenus: 1,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := Compute(tt.lines)
			if b.TotalStarters != tt.wantStarters {
				t.Errorf("TotalStarters = %d, want %d", b.TotalStarters, tt.wantStarters)
			}
			if b.TotalMains != tt.wantMains {
				t.Errorf("TotalMains = %d, want %d", b.TotalMains, tt.wantMains)
			}
			if b.CompleteMenus != tt.wantMenus {
				t.Errorf("CompleteMenus = %d, want %d", b.CompleteMenus, tt.wantMenus)
			}
			if b.StarterSurplus != tt.wantStarterEx {
				t.Errorf("StarterSurplus = %d, want %d", b.StarterSurplus, tt.wantStarterEx)
			}
			if b.MainSurplus != tt.wantMainEx {
				t.Errorf("MainSurplus = %d, want %d", b.MainSurplus, tt.wantMainEx)
			}

			// CompleteMenus is min(starters, mains) no matter what
			want := min(b.TotalStarters, b.TotalMains)
			if b.CompleteMenus != want {
				t.Errorf("CompleteMenus = %d, want min = %d", b.CompleteMenus, want)
			}
		})
	}
}

func TestEligibility(t *testing.T) {
	tests := []struct {
		name  string
		lines []Line
		want  bool
	}{
		{"empty", nil, false},
		{"paired", []Line{starter(2, 1000), mainDish(2, 1500)}, true},
		{"positive minimum but unequal", []Line{starter(2, 1000), mainDish(1, 1500)}, false},
		{"only starters", []Line{starter(1, 1000)}, false},
		{"dessert only", []Line{{DishID: 3, Category: Dessert, UnitPrice: 500, Qty: 2}}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := Compute(tt.lines)
			if got := b.Eligible(); got != tt.want {
				t.Errorf("Eligible() = %v, want %v", got, tt.want)
			}
			// message is empty iff eligible
			if (b.ValidationMessage() == "") != tt.want {
				t.Errorf("ValidationMessage() = %q with eligibility %v", b.ValidationMessage(), tt.want)
			}
		})
	}
}

func TestValidationMessages(t *testing.T) {
	tests := []struct {
		name  string
		lines []Line
		want  string
	}{
		{
			name: "empty cart",
			want: "Add at least one starter and one main dish to build a complete menu",
		},
		{
			name:  "missing starters",
			lines: []Line{mainDish(2, 1500)},
			want:  "You need 2 starter(s) to complete your menu(s)",
		},
		{
			name:  "missing mains",
			lines: []Line{starter(3, 1000)},
			want:  "You need 3 main dish(es) to complete your menu(s)",
		},
		{
			name:  "extra starter",
			lines: []Line{starter(2, 1000), mainDish(1, 1500)},
			want:  "You have 1 extra starter(s). Add 1 more main dish(es) or remove some starters",
		},
		{
			name:  "extra mains",
			lines: []Line{starter(1, 1000), mainDish(3, 1500)},
			want:  "You have 2 extra main dish(es). Add 2 more starter(s) or remove some mains",
		},
		{
			name:  "complete",
			lines: []Line{starter(1, 1000), mainDish(1, 1500)},
			want:  "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Compute(tt.lines).ValidationMessage(); got != tt.want {
				t.Errorf("ValidationMessage() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTotalPrice(t *testing.T) {
	if got := TotalPrice(nil); got != 0 {
		t.Errorf("TotalPrice(empty) = %d, want 0", got)
	}
	// 2 starters at 10.00 + 1 main at 15.00 = 35.00, eligibility aside
	lines := []Line{starter(2, 1000), mainDish(1, 1500)}
	if got := TotalPrice(lines); got != 3500 {
		t.Errorf("TotalPrice = %d, want 3500", got)
	}
}
