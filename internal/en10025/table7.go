package en10025

// Built-in copy of the EN_10025_2_2004 table, used to seed the database.
// One fy/fu pair per thickness band, in BandUpperBounds order.

type gradeValues struct {
	calidad string
	fy      [10]int
	fu      [10]int
}

var table7 = []gradeValues{
	{"S 235 JR",
		[10]int{235, 225, 215, 215, 215, 195, 185, 175, 165, 155},
		[10]int{360, 360, 360, 360, 360, 350, 350, 340, 340, 330}},
	{"S 235 J0",
		[10]int{235, 225, 215, 215, 215, 195, 185, 175, 165, 155},
		[10]int{360, 360, 360, 360, 360, 350, 350, 340, 340, 330}},
	{"S 235 J2",
		[10]int{235, 225, 215, 215, 215, 195, 185, 175, 165, 155},
		[10]int{360, 360, 360, 360, 360, 350, 350, 340, 340, 330}},
	{"S 275 JR",
		[10]int{275, 265, 255, 245, 235, 225, 215, 205, 195, 185},
		[10]int{410, 410, 410, 410, 410, 400, 400, 380, 380, 380}},
	{"S 275 J0",
		[10]int{275, 265, 255, 245, 235, 225, 215, 205, 195, 185},
		[10]int{410, 410, 410, 410, 410, 400, 400, 380, 380, 380}},
	{"S 275 J2",
		[10]int{275, 265, 255, 245, 235, 225, 215, 205, 195, 185},
		[10]int{410, 410, 410, 410, 410, 400, 400, 380, 380, 380}},
	{"S 355 JR",
		[10]int{355, 345, 345, 325, 315, 295, 285, 275, 265, 255},
		[10]int{470, 470, 470, 470, 470, 450, 450, 450, 450, 450}},
	{"S 355 J0",
		[10]int{355, 345, 345, 325, 315, 295, 285, 275, 265, 255},
		[10]int{470, 470, 470, 470, 470, 450, 450, 450, 450, 450}},
	{"S 355 J2",
		[10]int{355, 345, 345, 325, 315, 295, 285, 275, 265, 255},
		[10]int{470, 470, 470, 470, 470, 450, 450, 450, 450, 450}},
	{"S 355 K2",
		[10]int{355, 345, 345, 325, 315, 295, 285, 275, 265, 255},
		[10]int{470, 470, 470, 470, 470, 450, 450, 450, 450, 450}},
	{"S 450 J0",
		[10]int{450, 430, 410, 390, 380, 370, 360, 350, 340, 330},
		[10]int{550, 550, 550, 550, 550, 530, 530, 520, 520, 500}},
}

// ReferenceRows expands the built-in dataset to table rows, grade by grade,
// bands ascending.
func ReferenceRows() []Row {
	rows := make([]Row, 0, len(table7)*len(BandUpperBounds))

	for _, g := range table7 {
		for i, tmax := range BandUpperBounds {
			rows = append(rows, Row{
				Calidad: g.calidad,
				Tmax:    tmax,
				Fy:      g.fy[i],
				Fu:      g.fu[i],
			})
		}
	}

	return rows
}
