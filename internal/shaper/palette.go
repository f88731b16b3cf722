package shaper

type Palette []string

var (
	DefaultColors   = Palette{"#4F81BD", "#C0504D", "#9BBB59", "#8064A2", "#4BACC6", "#F79646", "#2C4D75", "#772C2A"}
	CompanyColors   = Palette{"#1E88E5", "#43A047", "#FB8C00", "#8E24AA", "#E53935", "#00ACC1", "#FDD835", "#6D4C41"}
	RegionColors    = Palette{"#3949AB", "#00897B", "#F4511E", "#7CB342", "#C0CA33", "#5E35B1", "#D81B60", "#039BE5"}
	AreaColors      = Palette{"#26A69A", "#AB47BC", "#FFA726", "#42A5F5", "#EC407A", "#9CCC65", "#8D6E63", "#78909C"}
	WarehouseColors = Palette{"#0D47A1", "#1B5E20", "#E65100", "#4A148C", "#B71C1C", "#006064", "#F57F17", "#3E2723"}
	ItemColors      = Palette{"#FF6384", "#36A2EB", "#FFCE56", "#4BC0C0", "#9966FF", "#FF9F40", "#C9CBCF", "#7BC043"}
	CustomerColors  = Palette{"#5C6BC0", "#26C6DA", "#D4E157", "#FF7043", "#8D6E63", "#66BB6A", "#EF5350", "#AB47BC"}
)

// At picks a color cyclically. An empty palette falls back to DefaultColors.
func (p Palette) At(i int) string {
	if len(p) == 0 {
		return DefaultColors.At(i)
	}
	if i < 0 {
		i = -i
	}
	return p[i%len(p)]
}
