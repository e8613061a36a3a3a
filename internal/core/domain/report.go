package domain

// ReportSummary aggregates a report selection.
type ReportSummary struct {
	Total          int
	ByStatus       map[Status]int
	ByPropertyType map[PropertyType]int
	ByRequestType  map[RequestType]int
}

type PropertyReport struct {
	Properties []Property
	Summary    ReportSummary
}

// Summarize counts the given records.
func Summarize(properties []Property) ReportSummary {
	summary := ReportSummary{
		Total:          len(properties),
		ByStatus:       make(map[Status]int),
		ByPropertyType: make(map[PropertyType]int),
		ByRequestType:  make(map[RequestType]int),
	}
	for _, p := range properties {
		summary.ByStatus[p.Status]++
		summary.ByPropertyType[p.PropertyType]++
		summary.ByRequestType[p.RequestType]++
	}
	return summary
}
