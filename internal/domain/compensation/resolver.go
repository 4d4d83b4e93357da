package compensation

import "time"

// Resolve finds the compensation of employeeID. A matching hourly record wins
// even when a salaried one also exists. With no match at all the hourly
// default with a nil rate is returned alongside ErrCompensationNotFound.
func Resolve(employeeID int64, hourly []Hourly, salaried []Salaried) (Record, error) {
	for _, h := range hourly {
		if h.EmployeeID == employeeID {
			return h.Record(), nil
		}
	}
	for _, s := range salaried {
		if s.EmployeeID == employeeID {
			return s.Record(), nil
		}
	}
	return Record{Kind: KindHourly, EmployeeID: employeeID}, ErrCompensationNotFound
}

// FindHourly is the linear scan used before every upsert
func FindHourly(employeeID int64, records []Hourly) (Hourly, bool) {
	for _, h := range records {
		if h.EmployeeID == employeeID {
			return h, true
		}
	}
	return Hourly{}, false
}

func FindSalaried(employeeID int64, records []Salaried) (Salaried, bool) {
	for _, s := range records {
		if s.EmployeeID == employeeID {
			return s, true
		}
	}
	return Salaried{}, false
}

// ActiveHourly keeps the records that have not ended by now
func ActiveHourly(records []Hourly, now time.Time) []Hourly {
	active := make([]Hourly, 0, len(records))
	for _, h := range records {
		if h.Record().Active(now) {
			active = append(active, h)
		}
	}
	return active
}

func ActiveSalaried(records []Salaried, now time.Time) []Salaried {
	active := make([]Salaried, 0, len(records))
	for _, s := range records {
		if s.Record().Active(now) {
			active = append(active, s)
		}
	}
	return active
}

// FindDeduction returns nil when id is nil or unknown
func FindDeduction(id *int64, deductions []Deduction) *Deduction {
	if id == nil {
		return nil
	}
	for i := range deductions {
		if deductions[i].ID == *id {
			return &deductions[i]
		}
	}
	return nil
}

func FindPayrollMonth(id *int64, months []PayrollMonth) *PayrollMonth {
	if id == nil {
		return nil
	}
	for i := range months {
		if months[i].ID == *id {
			return &months[i]
		}
	}
	return nil
}
