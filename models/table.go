package models

type Table struct {
	ID       int
	Capacity int
}

// DefaultTables -> konfigurasi meja statis, tidak berubah saat runtime
func DefaultTables() []Table {
	return []Table{
		{ID: 1, Capacity: 2},
		{ID: 2, Capacity: 2},
		{ID: 3, Capacity: 4},
		{ID: 4, Capacity: 4},
		{ID: 5, Capacity: 4},
		{ID: 6, Capacity: 6},
		{ID: 7, Capacity: 6},
		{ID: 8, Capacity: 8},
		{ID: 9, Capacity: 8},
		{ID: 10, Capacity: 10},
	}
}
