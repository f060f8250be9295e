package employee

// Record is the export view of an Employee. Field order is the column order
// of every output format.
type Record struct {
	FullName string `json:"ФИО" csv:"ФИО"`
	Position string `json:"Должность" csv:"Должность"`
	HireDate string `json:"Дата найма" csv:"Дата найма"`
	Salary   int64  `json:"Оклад" csv:"Оклад"`
	Sex      string `json:"Пол" csv:"Пол"`
	Premium  int64  `json:"Размер премии" csv:"Размер премии"`
}

func (e *Employee) Record() Record {
	return Record{
		FullName: e.FullName(),
		Position: e.position,
		HireDate: FormatDate(e.hireDate),
		Salary:   e.salary,
		Sex:      string(e.sex),
		Premium:  e.premium,
	}
}

// Records maps employees to their export view, preserving order.
func Records(employees []*Employee) []Record {
	res := make([]Record, len(employees))
	for i, e := range employees {
		res[i] = e.Record()
	}
	return res
}
