package store

// RoomSpec describes one room in a hostel setup request.
type RoomSpec struct {
	Floor    int    `json:"floor"`
	RoomNo   string `json:"roomNo"`
	Capacity int    `json:"capacity"`
}

// Tenant carries the fields set when a bed is booked.
type Tenant struct {
	ClientName         string
	ClientMobile       string
	JoinDate           string
	LeaveDate          *string
	AdvanceAmount      float64
	MaintenanceCharges float64
	RentAmount         float64
}

// TenantUpdate carries the mutable financial fields of an occupied bed.
type TenantUpdate struct {
	AdvanceAmount      float64
	MaintenanceCharges float64
	RentAmount         float64
	LeaveDate          *string
}

// ImportRecord is one parsed tenant candidate supplied by an external
// importer.
type ImportRecord struct {
	RoomNo   string `json:"roomNo"`
	Name     string `json:"name"`
	Mobile   string `json:"mobile"`
	JoinDate string `json:"joinDate"`
}

// ImportReport summarizes a bulk tenant import. Errors holds one message per
// failed record; the rest of the batch still commits.
type ImportReport struct {
	Imported int      `json:"imported"`
	Skipped  int      `json:"skipped"`
	Errors   []string `json:"errors"`
}

// RentTotals is the monthly rent section of a finance snapshot.
type RentTotals struct {
	Total     float64 `json:"total"`
	Collected float64 `json:"collected"`
	Pending   float64 `json:"pending"`
}

// ProfitSummary is the income/outflow rollup of a finance snapshot.
type ProfitSummary struct {
	Income  float64 `json:"income"`
	Outflow float64 `json:"outflow"`
	Profit  float64 `json:"profit"`
}

// FinanceSnapshot is the per-owner, per-month financial rollup. Expense and
// salary totals are not month-scoped; see the finance aggregator notes.
type FinanceSnapshot struct {
	Month         string        `json:"month"`
	Rent          RentTotals    `json:"rent"`
	TotalExpenses float64       `json:"totalExpenses"`
	TotalSalaries float64       `json:"totalSalaries"`
	Summary       ProfitSummary `json:"summary"`
}
