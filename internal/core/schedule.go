package core

// Schedule is the result of one policy run.
type Schedule struct {
	// Records in emission order. FIFO, SJF and STCF emit one record per
	// process; RR and MLFQ emit one per slice.
	Records  []ScheduledProcess
	Timeline []Slice
	Metric   CpuMetric
}

// Finals reduces Records to one record per process, in completion order. The
// first slice gives StartTime, the last one gives FinishTime and Waiting.
func (s *Schedule) Finals() []ScheduledProcess {
	first := make(map[int]int, len(s.Records))
	finals := make([]ScheduledProcess, 0, len(s.Records))
	for _, r := range s.Records {
		if _, ok := first[r.ID]; !ok {
			first[r.ID] = r.StartTime
		}
		if r.Remaining > 0 {
			continue
		}
		r.StartTime = first[r.ID]
		finals = append(finals, r)
	}
	return finals
}
