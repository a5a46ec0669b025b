package pairing

import "fmt"

// Category of a dish: the daily menu pairs starters with mains 1:1;
// desserts and everything else ride along without participating.
type Category string

const (
	Starter Category = "STARTER"
	Main    Category = "MAIN"
	Dessert Category = "DESSERT"
	Other   Category = "OTHER"
)

// ParseCategory is strict: unknown values are an error, never coerced.
func ParseCategory(s string) (Category, error) {
	switch Category(s) {
	case Starter, Main, Dessert, Other:
		return Category(s), nil
	}
	return "", fmt.Errorf("unknown dish category %q", s)
}

// Line is one cart line as the engine sees it. Prices are in céntimos.
type Line struct {
	DishID    uint
	Category  Category
	UnitPrice int64
	Qty       int
}

// Breakdown is derived state. Recompute it from the cart on every read;
// never store it.
type Breakdown struct {
	Starters []Line
	Mains    []Line

	TotalStarters  int
	TotalMains     int
	CompleteMenus  int
	StarterSurplus int
	MainSurplus    int
}

// Compute splits the lines by category and counts complete menus.
// CompleteMenus is always min(starters, mains), eligibility aside.
func Compute(lines []Line) Breakdown {
	var b Breakdown
	for _, l := range lines {
		switch l.Category {
		case Starter:
			b.Starters = append(b.Starters, l)
			b.TotalStarters += l.Qty
		case Main:
			b.Mains = append(b.Mains, l)
			b.TotalMains += l.Qty
		}
	}
	b.CompleteMenus = min(b.TotalStarters, b.TotalMains)
	b.StarterSurplus = max(0, b.TotalStarters-b.TotalMains)
	b.MainSurplus = max(0, b.TotalMains-b.TotalStarters)
	return b
}

// TotalPrice is the flat sum across all lines, whatever the category.
func TotalPrice(lines []Line) int64 {
	var total int64
	for _, l := range lines {
		total += l.UnitPrice * int64(l.Qty)
	}
	return total
}

// Eligible: the order may be confirmed only when starters and mains pair
// exactly, with no loose plates left over.
func (b Breakdown) Eligible() bool {
	return b.TotalStarters > 0 && b.TotalStarters == b.TotalMains
}

// ValidationMessage explains what is missing. Empty string means the cart
// is a confirmable set of complete menus.
func (b Breakdown) ValidationMessage() string {
	if b.TotalStarters == 0 && b.TotalMains == 0 {
		return "Add at least one starter and one main dish to build a complete menu"
	}
	if b.TotalStarters == 0 {
		return fmt.Sprintf("You need %d starter(s) to complete your menu(s)", b.TotalMains)
	}
	if b.TotalMains == 0 {
		return fmt.Sprintf("You need %d main dish(es) to complete your menu(s)", b.TotalStarters)
	}
	if b.TotalStarters > b.TotalMains {
		d := b.TotalStarters - b.TotalMains
		return fmt.Sprintf("You have %d extra starter(s). Add %d more main dish(es) or remove some starters", d, d)
	}
	if b.TotalMains > b.TotalStarters {
		d := b.TotalMains - b.TotalStarters
		return fmt.Sprintf("You have %d extra main dish(es). Add %d more starter(s) or remove some mains", d, d)
	}
	return ""
}
